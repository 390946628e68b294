package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type registerModel struct {
	styles Styles
	inputs []textinput.Model
	labels []string
	focus  int
	errMsg string
}

func newRegisterModel(styles Styles) registerModel {
	labels := []string{"Full name", "Email", "Username", "Password"}
	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		ti := textinput.New()
		ti.Placeholder = strings.ToLower(label)
		ti.CharLimit = 64
		inputs[i] = ti
	}
	inputs[3].EchoMode = textinput.EchoPassword
	inputs[0].Focus()

	return registerModel{
		styles: styles,
		inputs: inputs,
		labels: labels,
	}
}

func (m Model) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.page = pageLogin
			m.login = newLoginModel(m.styles)
			return m, textinput.Blink
		case "tab", "down":
			m.register.focus = (m.register.focus + 1) % len(m.register.inputs)
			m.register.refocus()
			return m, nil
		case "shift+tab", "up":
			m.register.focus = (m.register.focus + len(m.register.inputs) - 1) % len(m.register.inputs)
			m.register.refocus()
			return m, nil
		case "enter":
			name := strings.TrimSpace(m.register.inputs[0].Value())
			email := strings.TrimSpace(m.register.inputs[1].Value())
			username := strings.TrimSpace(m.register.inputs[2].Value())
			password := m.register.inputs[3].Value()
			if _, err := m.ctrl.Register(username, password, name, email); err != nil {
				m.register.errMsg = errorMessage(err)
				return m, nil
			}
			m.page = pageLogin
			m.login = newLoginModel(m.styles)
			m.login.notice = "Registered! Please login."
			return m, textinput.Blink
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (r *registerModel) refocus() {
	for i := range r.inputs {
		if i == r.focus {
			r.inputs[i].Focus()
		} else {
			r.inputs[i].Blur()
		}
	}
}

func (m Model) viewRegister() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Register"))
	b.WriteString("\n\n")
	for i, label := range m.register.labels {
		b.WriteString(m.styles.Label.Render(label))
		b.WriteString("\n")
		b.WriteString(m.register.inputs[i].View())
		b.WriteString("\n")
	}
	if m.register.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.register.errMsg))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("enter create account • esc back"))
	return b.String()
}
