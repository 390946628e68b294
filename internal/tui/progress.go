package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"skilltest/internal/app"
)

type progressModel struct {
	styles Styles
	table  table.Model
	empty  bool
	errMsg string
}

func newProgressModel(styles Styles, ctrl *app.SessionController) progressModel {
	m := progressModel{styles: styles}

	results, err := ctrl.Progress()
	if err != nil {
		m.errMsg = errorMessage(err)
		return m
	}
	if len(results) == 0 {
		m.empty = true
		return m
	}

	columns := []table.Column{
		{Title: "Language", Width: 12},
		{Title: "Score", Width: 7},
		{Title: "Total", Width: 7},
		{Title: "Date", Width: 20},
	}
	rows := make([]table.Row, 0, len(results))
	for _, r := range results {
		rows = append(rows, table.Row{
			r.Language,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Total),
			r.Date.Format("2006-01-02 15:04"),
		})
	}

	height := len(rows)
	if height > 10 {
		height = 10
	}
	m.table = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	return m
}

func (m Model) updateProgress(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q", "enter":
			return m.backToMenu()
		}
	}
	if m.progress.errMsg != "" || m.progress.empty {
		return m, nil
	}
	var cmd tea.Cmd
	m.progress.table, cmd = m.progress.table.Update(msg)
	return m, cmd
}

func (m Model) viewProgress() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Your Progress"))
	b.WriteString("\n\n")
	switch {
	case m.progress.errMsg != "":
		b.WriteString(m.styles.Error.Render(m.progress.errMsg))
	case m.progress.empty:
		b.WriteString(m.styles.Faint.Render("No test results found yet."))
	default:
		b.WriteString(m.progress.table.View())
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("esc back"))
	return b.String()
}
