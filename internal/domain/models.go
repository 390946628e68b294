package domain

import "time"

// Identity is the authenticated username for the current session.
type Identity string

// User is a registered account. Rows are append-only and never mutated.
type User struct {
	Username     string    `yaml:"username"`
	PasswordHash string    `yaml:"password_hash"`
	Name         string    `yaml:"name"`
	Email        string    `yaml:"email"`
	CreatedAt    time.Time `yaml:"created_at"`
}

// AnswerDetail records the outcome of a single administered question.
// Selected is nil when the question was skipped.
type AnswerDetail struct {
	Question string `yaml:"question"`
	Selected *int   `yaml:"selected"`
	Correct  int    `yaml:"correct"`
}

// Result is one completed quiz attempt. Total counts only the questions
// actually administered, so early finishes yield Total < 10.
type Result struct {
	Username string         `yaml:"username"`
	Language string         `yaml:"language"`
	Score    int            `yaml:"score"`
	Total    int            `yaml:"total"`
	Date     time.Time      `yaml:"date"`
	Details  []AnswerDetail `yaml:"details"`
}

// Question models an MCQ question with exactly one correct option.
type Question struct {
	Text    string   `yaml:"text"`
	Options []string `yaml:"options"`
	Answer  int      `yaml:"answer"`
}

// Language groups the bank questions for one quiz language.
type Language struct {
	Name      string     `yaml:"name"`
	Questions []Question `yaml:"questions"`
}

// Bank is the full question bank, languages in declaration order.
type Bank struct {
	Languages []Language `yaml:"languages"`
}

// Questions returns the bank questions for a language, nil if unknown.
func (b Bank) Questions(name string) []Question {
	for _, lang := range b.Languages {
		if lang.Name == name {
			return lang.Questions
		}
	}
	return nil
}

// LanguageNames lists the bank languages in bank order.
func (b Bank) LanguageNames() []string {
	names := make([]string, 0, len(b.Languages))
	for _, lang := range b.Languages {
		names = append(names, lang.Name)
	}
	return names
}
