package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"skilltest/internal/app"
)

const (
	menuProgress = "View Progress"
	menuLogout   = "Logout"
	menuQuit     = "Quit"
)

type menuModel struct {
	styles    Styles
	languages []string
	entries   []string
	cursor    int
	errMsg    string
}

func newMenuModel(styles Styles, ctrl *app.SessionController) menuModel {
	m := menuModel{styles: styles}
	languages, err := ctrl.Languages(context.Background())
	if err != nil {
		m.errMsg = errorMessage(err)
	}
	m.languages = languages
	m.entries = append(append([]string{}, languages...), menuProgress, menuLogout, menuQuit)
	return m
}

func (m Model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.menu.cursor > 0 {
			m.menu.cursor--
		}
	case "down", "j":
		if m.menu.cursor < len(m.menu.entries)-1 {
			m.menu.cursor++
		}
	case "enter":
		return m.selectMenuEntry()
	}
	return m, nil
}

func (m Model) selectMenuEntry() (tea.Model, tea.Cmd) {
	if len(m.menu.entries) == 0 {
		return m, nil
	}
	switch entry := m.menu.entries[m.menu.cursor]; entry {
	case menuQuit:
		return m, tea.Quit
	case menuLogout:
		m.ctrl.Logout()
		m.page = pageLogin
		m.login = newLoginModel(m.styles)
		return m, textinput.Blink
	case menuProgress:
		m.page = pageProgress
		m.progress = newProgressModel(m.styles, m.ctrl)
		return m, nil
	default:
		session, err := m.ctrl.StartQuiz(context.Background(), entry)
		if err != nil {
			m.menu.errMsg = errorMessage(err)
			return m, nil
		}
		m.page = pageQuiz
		m.quiz = newQuizModel(m.styles, session)
		return m, nil
	}
}

func (m Model) viewMenu() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(fmt.Sprintf("Welcome, %s", m.ctrl.Identity())))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Label.Render("Choose a language to take the test:"))
	b.WriteString("\n\n")
	for i, entry := range m.menu.entries {
		cursor := "  "
		line := entry
		if i == m.menu.cursor {
			cursor = m.styles.Cursor.Render("> ")
			line = m.styles.Selected.Render(entry)
		}
		b.WriteString(cursor)
		b.WriteString(line)
		b.WriteString("\n")
		// separate languages from the fixed entries
		if i == len(m.menu.languages)-1 {
			b.WriteString("\n")
		}
	}
	if m.menu.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.menu.errMsg))
	}
	b.WriteString(m.styles.Help.Render("↑/↓ move • enter select"))
	return b.String()
}
