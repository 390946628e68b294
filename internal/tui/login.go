package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type loginModel struct {
	styles Styles
	inputs []textinput.Model
	focus  int
	errMsg string
	notice string
}

func newLoginModel(styles Styles) loginModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword

	return loginModel{
		styles: styles,
		inputs: []textinput.Model{username, password},
	}
}

func (l loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, tea.Quit
		case "ctrl+r":
			m.page = pageRegister
			m.register = newRegisterModel(m.styles)
			return m, textinput.Blink
		case "tab", "down":
			m.login.focus = (m.login.focus + 1) % len(m.login.inputs)
			m.login.refocus()
			return m, nil
		case "shift+tab", "up":
			m.login.focus = (m.login.focus + len(m.login.inputs) - 1) % len(m.login.inputs)
			m.login.refocus()
			return m, nil
		case "enter":
			username := strings.TrimSpace(m.login.inputs[0].Value())
			password := m.login.inputs[1].Value()
			if username == "" || password == "" {
				m.login.errMsg = "Enter username and password"
				m.login.notice = ""
				return m, nil
			}
			if err := m.ctrl.Login(username, password); err != nil {
				m.login.errMsg = errorMessage(err)
				m.login.notice = ""
				return m, nil
			}
			m.page = pageMenu
			m.menu = newMenuModel(m.styles, m.ctrl)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (l *loginModel) refocus() {
	for i := range l.inputs {
		if i == l.focus {
			l.inputs[i].Focus()
		} else {
			l.inputs[i].Blur()
		}
	}
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Skill Test"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Label.Render("Username"))
	b.WriteString("\n")
	b.WriteString(m.login.inputs[0].View())
	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render("Password"))
	b.WriteString("\n")
	b.WriteString(m.login.inputs[1].View())
	b.WriteString("\n")
	if m.login.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.login.errMsg))
	}
	if m.login.notice != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Success.Render(m.login.notice))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("enter login • ctrl+r register • esc quit"))
	return b.String()
}
