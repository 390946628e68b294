package quiz_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skilltest/internal/bank"
	"skilltest/internal/domain"
	"skilltest/internal/quiz"
)

func intp(v int) *int { return &v }

type recordingStore struct {
	results []domain.Result
	err     error
}

func (r *recordingStore) AppendResult(res domain.Result) error {
	if r.err != nil {
		return r.err
	}
	r.results = append(r.results, res)
	return nil
}

func threeQuestionBank() quiz.BankSource {
	return bank.NewRepository(bank.NewStaticLoader(domain.Bank{
		Languages: []domain.Language{
			{
				Name: "Python",
				Questions: []domain.Question{
					{Text: "q1", Options: []string{"a", "b", "c", "d"}, Answer: 1},
					{Text: "q2", Options: []string{"a", "b", "c", "d"}, Answer: 0},
					{Text: "q3", Options: []string{"a", "b", "c", "d"}, Answer: 3},
				},
			},
		},
	}), time.Minute)
}

func newTestEngine(rec *recordingStore) *quiz.Engine {
	clock := func() time.Time {
		return time.Date(2025, 3, 2, 15, 0, 0, 0, time.UTC)
	}
	return quiz.NewEngineWithClock(threeQuestionBank(), rec, nil, clock)
}

func TestScoringWithSkip(t *testing.T) {
	rec := &recordingStore{}
	engine := newTestEngine(rec)

	s, err := engine.Start(context.Background(), "alice", "Python")
	require.NoError(t, err)
	assert.Equal(t, quiz.StateInProgress, s.State())

	// correct indices are [1,0,3]; submit [1, 2, skip]
	require.NoError(t, s.SubmitAnswer(intp(1)))
	require.NoError(t, s.SubmitAnswer(intp(2)))
	require.NoError(t, s.SubmitAnswer(nil))

	res, err := s.Finish()
	require.NoError(t, err)
	assert.Equal(t, 1, res.Score)
	assert.Equal(t, 3, res.Total)

	require.Len(t, res.Details, 3)
	require.NotNil(t, res.Details[1].Selected)
	assert.Equal(t, 2, *res.Details[1].Selected)
	assert.Equal(t, 0, res.Details[1].Correct)
	assert.Nil(t, res.Details[2].Selected)
	assert.Equal(t, 3, res.Details[2].Correct)
}

func TestLastAnswerFinishesAndCommitsOnce(t *testing.T) {
	rec := &recordingStore{}
	engine := newTestEngine(rec)

	s, err := engine.Start(context.Background(), "alice", "Python")
	require.NoError(t, err)

	require.NoError(t, s.SubmitAnswer(intp(1)))
	require.NoError(t, s.SubmitAnswer(intp(0)))
	require.NoError(t, s.SubmitAnswer(intp(3)))
	assert.Equal(t, quiz.StateFinished, s.State())
	require.Len(t, rec.results, 1)

	// Finish after the implicit finish returns the same result, no recommit.
	res, err := s.Finish()
	require.NoError(t, err)
	assert.Equal(t, rec.results[0], res)
	assert.Len(t, rec.results, 1)
	assert.Equal(t, 3, res.Score)
}

func TestEarlyFinishCountsAdministeredOnly(t *testing.T) {
	rec := &recordingStore{}
	engine := newTestEngine(rec)

	s, err := engine.Start(context.Background(), "alice", "Python")
	require.NoError(t, err)
	require.NoError(t, s.SubmitAnswer(intp(1)))

	res, err := s.Finish()
	require.NoError(t, err)
	assert.Equal(t, 1, res.Score)
	assert.Equal(t, 1, res.Total)
	assert.Len(t, res.Details, 1)
	require.Len(t, rec.results, 1)
	assert.Equal(t, "alice", rec.results[0].Username)
	assert.Equal(t, "Python", rec.results[0].Language)
	assert.Equal(t, time.Date(2025, 3, 2, 15, 0, 0, 0, time.UTC), rec.results[0].Date)
}

func TestScoreWithinBounds(t *testing.T) {
	rec := &recordingStore{}
	engine := newTestEngine(rec)

	s, err := engine.Start(context.Background(), "alice", "Python")
	require.NoError(t, err)
	require.NoError(t, s.SubmitAnswer(intp(0)))
	require.NoError(t, s.SubmitAnswer(intp(0)))

	res, err := s.Finish()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Score, 0)
	assert.LessOrEqual(t, res.Score, res.Total)
	assert.Equal(t, res.Total, len(res.Details))
}

func TestStateErrors(t *testing.T) {
	rec := &recordingStore{}
	engine := newTestEngine(rec)

	s, err := engine.Start(context.Background(), "alice", "Python")
	require.NoError(t, err)

	_, err = s.Finish()
	require.NoError(t, err)

	_, err = s.CurrentQuestion()
	assert.ErrorIs(t, err, domain.ErrQuizFinished)
	assert.ErrorIs(t, s.SubmitAnswer(intp(0)), domain.ErrQuizFinished)
}

func TestStartUnknownLanguage(t *testing.T) {
	engine := newTestEngine(&recordingStore{})
	_, err := engine.Start(context.Background(), "alice", "COBOL")
	assert.ErrorIs(t, err, domain.ErrNoQuestions)
}

func TestStartCapsAtTenQuestions(t *testing.T) {
	questions := make([]domain.Question, 14)
	for i := range questions {
		questions[i] = domain.Question{Text: "q", Options: []string{"a", "b"}, Answer: 0}
	}
	src := bank.NewRepository(bank.NewStaticLoader(domain.Bank{
		Languages: []domain.Language{{Name: "Java", Questions: questions}},
	}), time.Minute)
	engine := quiz.NewEngine(src, &recordingStore{}, nil)

	s, err := engine.Start(context.Background(), "alice", "Java")
	require.NoError(t, err)
	assert.Equal(t, 10, s.QuestionCount())
}

func TestCommitFailurePropagates(t *testing.T) {
	rec := &recordingStore{err: errors.New("disk full")}
	engine := newTestEngine(rec)

	s, err := engine.Start(context.Background(), "alice", "Python")
	require.NoError(t, err)
	require.NoError(t, s.SubmitAnswer(intp(1)))

	_, err = s.Finish()
	require.Error(t, err)
	assert.Equal(t, quiz.StateFinished, s.State())
}
