// Package tui renders the application screens: login, registration,
// main menu, quiz and progress. All record-store and quiz operations
// run synchronously inside Update, which keeps the whole application on
// one logical thread.
package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"skilltest/internal/app"
	"skilltest/internal/domain"
)

type page int

const (
	pageLogin page = iota
	pageRegister
	pageMenu
	pageQuiz
	pageProgress
)

// Model is the root bubbletea model. It owns one page model per screen
// and routes messages to whichever page is active.
type Model struct {
	ctrl   *app.SessionController
	styles Styles
	page   page

	login    loginModel
	register registerModel
	menu     menuModel
	quiz     quizModel
	progress progressModel

	width  int
	height int
}

func New(ctrl *app.SessionController) Model {
	styles := DefaultStyles()
	return Model{
		ctrl:   ctrl,
		styles: styles,
		page:   pageLogin,
		login:  newLoginModel(styles),
	}
}

func (m Model) Init() tea.Cmd {
	return m.login.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.page {
	case pageLogin:
		return m.updateLogin(msg)
	case pageRegister:
		return m.updateRegister(msg)
	case pageMenu:
		return m.updateMenu(msg)
	case pageQuiz:
		return m.updateQuiz(msg)
	case pageProgress:
		return m.updateProgress(msg)
	}
	return m, nil
}

func (m Model) View() string {
	switch m.page {
	case pageLogin:
		return m.viewLogin()
	case pageRegister:
		return m.viewRegister()
	case pageMenu:
		return m.viewMenu()
	case pageQuiz:
		return m.viewQuiz()
	case pageProgress:
		return m.viewProgress()
	}
	return ""
}

// errorMessage maps domain errors to the text shown under a form.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingCredentials):
		return "Username and password required"
	case errors.Is(err, domain.ErrInvalidEmail):
		return "Invalid email address. Must contain '@'."
	case errors.Is(err, domain.ErrPasswordNoUpper):
		return "Password must contain at least one uppercase letter."
	case errors.Is(err, domain.ErrPasswordNoDigit):
		return "Password must contain at least one number."
	case errors.Is(err, domain.ErrUsernameTaken):
		return "Username already exists"
	case errors.Is(err, domain.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, domain.ErrIncorrectPassword):
		return "Incorrect password"
	case errors.Is(err, domain.ErrNoQuestions):
		return "No questions for this language."
	default:
		return err.Error()
	}
}
