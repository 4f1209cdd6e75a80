package interfaces

import "cocktails-app-api/core/domain"

// View receives the rows a table should display.
// Implementations replace their rows wholesale; they must not call back into
// the store that notifies them.
type View interface {
	// ReplaceRows swaps the displayed rows for rows.
	ReplaceRows(rows []domain.Cocktail)

	// ShowError surfaces a user-facing message for a failed load.
	ShowError(message string)
}
