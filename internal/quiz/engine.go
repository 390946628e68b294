// Package quiz runs a single untimed question sequence for one user and
// commits the result when it finishes.
package quiz

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"skilltest/internal/domain"
)

// maxQuestions caps how many bank questions one session administers.
const maxQuestions = 10

// BankSource supplies the question sequence for a language.
type BankSource interface {
	Questions(ctx context.Context, language string) ([]domain.Question, error)
}

// Recorder persists the completed result. The session calls it exactly
// once, on entering the finished state.
type Recorder interface {
	AppendResult(domain.Result) error
}

// Engine creates quiz sessions.
type Engine struct {
	bank     BankSource
	recorder Recorder
	log      *zap.Logger
	now      func() time.Time
}

func NewEngine(bank BankSource, recorder Recorder, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{bank: bank, recorder: recorder, log: log, now: time.Now}
}

// NewEngineWithClock is test-only for deterministic result timestamps.
func NewEngineWithClock(bank BankSource, recorder Recorder, log *zap.Logger, now func() time.Time) *Engine {
	e := NewEngine(bank, recorder, log)
	e.now = now
	return e
}

// Start selects up to 10 questions for the language, in bank order, and
// returns a session in progress at index 0.
func (e *Engine) Start(ctx context.Context, username domain.Identity, language string) (*Session, error) {
	questions, err := e.bank.Questions(ctx, language)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, domain.ErrNoQuestions
	}
	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}

	s := &Session{
		id:        uuid.NewString(),
		username:  username,
		language:  language,
		questions: questions,
		state:     StateInProgress,
		recorder:  e.recorder,
		now:       e.now,
		log:       e.log,
	}
	e.log.Info("quiz started",
		zap.String("session", s.id),
		zap.String("username", string(username)),
		zap.String("language", language),
		zap.Int("questions", len(questions)))
	return s, nil
}

// State is the session lifecycle phase.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateFinished
)

// Session is the transient state of one quiz attempt. It is owned by a
// single user action loop and is never persisted mid-flight; only the
// final Result reaches the store.
type Session struct {
	id        string
	username  domain.Identity
	language  string
	questions []domain.Question
	index     int
	score     int
	answers   []domain.AnswerDetail
	state     State

	recorder Recorder
	now      func() time.Time
	log      *zap.Logger
	result   *domain.Result
}

// ID is the session identifier used for log correlation.
func (s *Session) ID() string { return s.id }

// Language is the quiz language this session administers.
func (s *Session) Language() string { return s.language }

// State reports the lifecycle phase.
func (s *Session) State() State { return s.state }

// Score is the running score.
func (s *Session) Score() int { return s.score }

// Index is the zero-based position of the current question.
func (s *Session) Index() int { return s.index }

// QuestionCount is the number of questions selected for this session.
func (s *Session) QuestionCount() int { return len(s.questions) }

// Answers returns the answer log recorded so far.
func (s *Session) Answers() []domain.AnswerDetail { return s.answers }

// CurrentQuestion returns the question at the current index. Valid only
// while the session is in progress.
func (s *Session) CurrentQuestion() (domain.Question, error) {
	if err := s.requireInProgress(); err != nil {
		return domain.Question{}, err
	}
	return s.questions[s.index], nil
}

// SubmitAnswer records the selection for the current question and
// advances. A nil selection means the question was skipped: it still
// produces an answer-log entry, preserving the correct index for
// review, but never scores. Answering the last question finishes the
// session, which commits the result.
func (s *Session) SubmitAnswer(selected *int) error {
	if err := s.requireInProgress(); err != nil {
		return err
	}
	q := s.questions[s.index]
	s.answers = append(s.answers, domain.AnswerDetail{
		Question: q.Text,
		Selected: selected,
		Correct:  q.Answer,
	})
	if selected != nil && *selected == q.Answer {
		s.score++
	}
	s.index++
	if s.index == len(s.questions) {
		_, err := s.finish()
		return err
	}
	return nil
}

// Finish ends the session. Explicit early termination is allowed at any
// point while in progress; the total reflects only the questions
// administered so far. Calling Finish on an already finished session
// returns the same result without committing again.
func (s *Session) Finish() (domain.Result, error) {
	switch s.state {
	case StateNotStarted:
		return domain.Result{}, domain.ErrQuizNotStarted
	case StateFinished:
		return *s.result, nil
	}
	return s.finish()
}

func (s *Session) finish() (domain.Result, error) {
	s.state = StateFinished
	res := domain.Result{
		Username: string(s.username),
		Language: s.language,
		Score:    s.score,
		Total:    len(s.answers),
		Date:     s.now(),
		Details:  s.answers,
	}
	s.result = &res

	if err := s.recorder.AppendResult(res); err != nil {
		s.log.Error("result commit failed",
			zap.String("session", s.id), zap.Error(err))
		return res, fmt.Errorf("record result: %w", err)
	}
	s.log.Info("quiz finished",
		zap.String("session", s.id),
		zap.String("username", string(s.username)),
		zap.Int("score", res.Score),
		zap.Int("total", res.Total))
	return res, nil
}

func (s *Session) requireInProgress() error {
	switch s.state {
	case StateNotStarted:
		return domain.ErrQuizNotStarted
	case StateFinished:
		return domain.ErrQuizFinished
	}
	return nil
}
