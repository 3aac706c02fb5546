package results

import "github.com/averycrespi/calc-mcp/internal/calculator"

// ListButtonsToolResult represents the result of the list buttons tool
type ListButtonsToolResult struct {
	Message string        `json:"message"`
	Columns int           `json:"columns"`
	Buttons []ButtonEntry `json:"buttons"`
}

// ButtonEntry represents one keypad button and its grid position (1-indexed)
type ButtonEntry struct {
	Label  string     `json:"label"`
	Kind   ButtonKind `json:"kind"`
	Token  string     `json:"token,omitempty"`
	Row    int        `json:"row"`
	Column int        `json:"column"`
}

// NewButtonEntries lays buttons out row by row in a grid of the given width
func NewButtonEntries(buttons []calculator.Button, columns int) []ButtonEntry {
	if columns < 1 {
		columns = 1
	}

	entries := make([]ButtonEntry, 0, len(buttons))
	for i, b := range buttons {
		entries = append(entries, ButtonEntry{
			Label:  b.Label,
			Kind:   NewButtonKind(b.Kind),
			Token:  b.Token,
			Row:    i/columns + 1,
			Column: i%columns + 1,
		})
	}
	return entries
}
