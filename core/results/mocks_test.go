package results

import (
	"cocktails-app-api/core/domain"
)

// mockView records every notification it receives
type mockView struct {
	replaced [][]domain.Cocktail
	errors   []string
}

func (m *mockView) ReplaceRows(rows []domain.Cocktail) {
	m.replaced = append(m.replaced, rows)
}

func (m *mockView) ShowError(message string) {
	m.errors = append(m.errors, message)
}

// mockLogger is a no-op implementation of the Logger interface
type mockLogger struct {
	errorCount int
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.errorCount++ }
