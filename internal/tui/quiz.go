package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"skilltest/internal/domain"
	"skilltest/internal/quiz"
)

type quizModel struct {
	styles      Styles
	session     *quiz.Session
	cursor      int
	chosen      *int
	confirmSkip bool
	errMsg      string
	result      *domain.Result
}

func newQuizModel(styles Styles, session *quiz.Session) quizModel {
	return quizModel{styles: styles, session: session}
}

func (m Model) updateQuiz(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// Finished: summary screen, any of these returns to the menu.
	if m.quiz.result != nil {
		switch key.String() {
		case "enter", "esc", "q":
			return m.backToMenu()
		}
		return m, nil
	}

	// Skip confirmation overlay.
	if m.quiz.confirmSkip {
		switch key.String() {
		case "y", "Y":
			m.quiz.confirmSkip = false
			return m.submitAnswer(nil)
		case "n", "N", "esc":
			m.quiz.confirmSkip = false
		}
		return m, nil
	}

	switch key.String() {
	case "esc":
		// abandon: nothing is persisted
		m.ctrl.AbandonQuiz()
		return m.backToMenu()
	case "up", "k":
		if m.quiz.cursor > 0 {
			m.quiz.cursor--
		}
	case "down", "j":
		q, err := m.quiz.session.CurrentQuestion()
		if err == nil && m.quiz.cursor < len(q.Options)-1 {
			m.quiz.cursor++
		}
	case " ", "space":
		c := m.quiz.cursor
		m.quiz.chosen = &c
	case "enter", "n":
		if m.quiz.chosen == nil {
			m.quiz.confirmSkip = true
			return m, nil
		}
		return m.submitAnswer(m.quiz.chosen)
	case "f":
		res, err := m.quiz.session.Finish()
		if err != nil {
			m.quiz.errMsg = errorMessage(err)
			return m, nil
		}
		m.quiz.result = &res
	}
	return m, nil
}

func (m Model) submitAnswer(selected *int) (tea.Model, tea.Cmd) {
	if err := m.quiz.session.SubmitAnswer(selected); err != nil {
		m.quiz.errMsg = errorMessage(err)
		return m, nil
	}
	m.quiz.chosen = nil
	m.quiz.cursor = 0
	if m.quiz.session.State() == quiz.StateFinished {
		res, err := m.quiz.session.Finish()
		if err != nil {
			m.quiz.errMsg = errorMessage(err)
			return m, nil
		}
		m.quiz.result = &res
	}
	return m, nil
}

func (m Model) backToMenu() (tea.Model, tea.Cmd) {
	m.page = pageMenu
	m.menu = newMenuModel(m.styles, m.ctrl)
	return m, nil
}

func (m Model) viewQuiz() string {
	if m.quiz.result != nil {
		return m.viewQuizSummary()
	}

	q, err := m.quiz.session.CurrentQuestion()
	if err != nil {
		return m.styles.Error.Render(errorMessage(err))
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(fmt.Sprintf("Quiz - %s", m.quiz.session.Language())))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Label.Render(fmt.Sprintf("Q%d. %s", m.quiz.session.Index()+1, q.Text)))
	b.WriteString("\n\n")

	for i, opt := range q.Options {
		marker := "( )"
		if m.quiz.chosen != nil && *m.quiz.chosen == i {
			marker = m.styles.Selected.Render("(x)")
		}
		line := fmt.Sprintf("%s %d. %s", marker, i+1, opt)
		if i == m.quiz.cursor {
			line = m.styles.Cursor.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Faint.Render(fmt.Sprintf("Question %d of %d",
		m.quiz.session.Index()+1, m.quiz.session.QuestionCount())))
	b.WriteString("\n")

	if m.quiz.confirmSkip {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("You did not answer this question. Skip? (y/n)"))
		b.WriteString("\n")
	}
	if m.quiz.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.quiz.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("↑/↓ move • space select • enter next • f finish • esc abandon"))
	return b.String()
}

func (m Model) viewQuizSummary() string {
	res := *m.quiz.result

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Quiz Finished"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Score.Render(fmt.Sprintf("You scored %d/%d", res.Score, res.Total)))
	b.WriteString("\n\n")

	for i, d := range res.Details {
		outcome := m.styles.Error.Render("✗")
		answer := "skipped"
		if d.Selected != nil {
			answer = fmt.Sprintf("answered %d", *d.Selected+1)
			if *d.Selected == d.Correct {
				outcome = m.styles.Success.Render("✓")
			}
		}
		b.WriteString(fmt.Sprintf("%s Q%d. %s — %s (correct: %d)\n",
			outcome, i+1, d.Question, answer, d.Correct+1))
	}

	b.WriteString(m.styles.Help.Render("enter back to menu"))
	return b.String()
}
