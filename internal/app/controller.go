// Package app binds authentication, the quiz engine and the record
// store to the current authenticated identity.
package app

import (
	"context"

	"go.uber.org/zap"

	"skilltest/internal/domain"
	"skilltest/internal/quiz"
)

// Authenticator is the auth surface the controller drives.
type Authenticator interface {
	Register(username, password, name, email string) (domain.User, error)
	Login(username, password string) (domain.Identity, error)
}

// RecordSource reads the persisted relations for the progress view.
type RecordSource interface {
	LoadAll() ([]domain.User, []domain.Result)
}

// LanguageSource lists the quiz languages offered by the bank.
type LanguageSource interface {
	Languages(ctx context.Context) ([]string, error)
}

// QuizStarter creates quiz sessions for an authenticated identity.
type QuizStarter interface {
	Start(ctx context.Context, username domain.Identity, language string) (*quiz.Session, error)
}

// SessionController is the top-level orchestrator: it owns the current
// identity and the active quiz session and mediates every view action.
// All operations run on the single user-action loop; nothing here is
// shared across goroutines.
type SessionController struct {
	auth    Authenticator
	records RecordSource
	bank    LanguageSource
	engine  QuizStarter
	log     *zap.Logger

	identity domain.Identity
	active   *quiz.Session
}

func NewSessionController(auth Authenticator, records RecordSource, bank LanguageSource, engine QuizStarter, log *zap.Logger) *SessionController {
	if log == nil {
		log = zap.NewNop()
	}
	return &SessionController{
		auth:    auth,
		records: records,
		bank:    bank,
		engine:  engine,
		log:     log,
	}
}

// Register creates an account. It does not log the new user in; the
// login screen stays the single entry point.
func (c *SessionController) Register(username, password, name, email string) (domain.User, error) {
	return c.auth.Register(username, password, name, email)
}

// Login authenticates and makes the identity current.
func (c *SessionController) Login(username, password string) error {
	id, err := c.auth.Login(username, password)
	if err != nil {
		return err
	}
	c.identity = id
	return nil
}

// Logout clears the current identity and abandons any active quiz.
func (c *SessionController) Logout() {
	c.log.Info("logout", zap.String("username", string(c.identity)))
	c.identity = ""
	c.active = nil
}

// Identity returns the current identity, empty when logged out.
func (c *SessionController) Identity() domain.Identity { return c.identity }

// LoggedIn reports whether a user is authenticated.
func (c *SessionController) LoggedIn() bool { return c.identity != "" }

// Languages lists the quiz languages for the main menu.
func (c *SessionController) Languages(ctx context.Context) ([]string, error) {
	return c.bank.Languages(ctx)
}

// StartQuiz begins a quiz for the current identity. Starting a new quiz
// abandons any unfinished one without persisting it.
func (c *SessionController) StartQuiz(ctx context.Context, language string) (*quiz.Session, error) {
	if !c.LoggedIn() {
		return nil, domain.ErrNotAuthenticated
	}
	session, err := c.engine.Start(ctx, c.identity, language)
	if err != nil {
		return nil, err
	}
	c.active = session
	return session, nil
}

// ActiveSession returns the in-flight quiz session, nil when idle.
func (c *SessionController) ActiveSession() *quiz.Session { return c.active }

// AbandonQuiz drops the active session without finishing it. Abandoned
// sessions are never persisted.
func (c *SessionController) AbandonQuiz() {
	if c.active != nil {
		c.log.Info("quiz abandoned", zap.String("session", c.active.ID()))
	}
	c.active = nil
}

// Progress returns the current identity's results in insertion order.
func (c *SessionController) Progress() ([]domain.Result, error) {
	if !c.LoggedIn() {
		return nil, domain.ErrNotAuthenticated
	}
	_, results := c.records.LoadAll()
	var mine []domain.Result
	for _, r := range results {
		if r.Username == string(c.identity) {
			mine = append(mine, r)
		}
	}
	return mine, nil
}
