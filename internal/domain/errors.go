package domain

import (
	"errors"
	"fmt"
)

// Registration validation errors, checked in order and short-circuiting
// on the first failure. Views switch on these to pick a message.
var (
	// ErrMissingCredentials is returned when username or password is empty.
	ErrMissingCredentials = errors.New("username and password required")
	// ErrInvalidEmail is returned when the email lacks an '@'.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrWeakPassword is the common ancestor of the password policy errors.
	ErrWeakPassword = errors.New("weak password")
	// ErrPasswordNoUpper is a weak-password reason: no uppercase letter.
	ErrPasswordNoUpper = fmt.Errorf("%w: needs an uppercase letter", ErrWeakPassword)
	// ErrPasswordNoDigit is a weak-password reason: no digit.
	ErrPasswordNoDigit = fmt.Errorf("%w: needs a digit", ErrWeakPassword)
	// ErrUsernameTaken is returned when the username already has an account.
	ErrUsernameTaken = errors.New("username already exists")
)

// Authentication errors.
var (
	// ErrUserNotFound indicates no account matches the username.
	ErrUserNotFound = errors.New("user not found")
	// ErrIncorrectPassword indicates the password hash did not match.
	ErrIncorrectPassword = errors.New("incorrect password")
	// ErrNotAuthenticated indicates an operation that needs a logged-in user.
	ErrNotAuthenticated = errors.New("not logged in")
)

// Quiz engine errors. The state errors are contract violations, not
// user-facing conditions: the engine refuses instead of corrupting state.
var (
	// ErrNoQuestions indicates the bank has no questions for a language.
	ErrNoQuestions = errors.New("no questions for this language")
	// ErrQuizNotStarted is returned for operations before Start.
	ErrQuizNotStarted = errors.New("quiz not started")
	// ErrQuizFinished is returned for operations after the quiz ended.
	ErrQuizFinished = errors.New("quiz already finished")
)
