package glyph

import "coursedeck/pkg/due"

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

// DefaultGlyphs lists the symbols the card printer uses, for the legend.
func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 8)

	g = append(g, Glyph{
		Key:     " ",
		Symbol:  "○",
		Meaning: "open session or task",
	}, Glyph{
		Key:     "x",
		Symbol:  "✔",
		Meaning: "completed",
	}, Glyph{
		Key:     "@",
		Symbol:  "·",
		Meaning: "day/time separator in a schedule pill",
	}, Glyph{
		Key:     "~",
		Symbol:  "↻",
		Meaning: "repeating (daily/weekly/monthly/yearly)",
	}, Glyph{
		Key:     "!",
		Symbol:  "!",
		Meaning: "due within 72 hours",
	}, Glyph{
		Key:     "!!",
		Symbol:  "‼",
		Meaning: "due within 24 hours",
	}, Glyph{
		Key:     "^",
		Symbol:  "✘",
		Meaning: "overdue",
	}, Glyph{
		Key:     "#",
		Symbol:  "⌫",
		Meaning: "trashed note",
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

// Checkbox renders the completion state.
func Checkbox(completed bool) string {
	if completed {
		return "✔"
	}
	return "○"
}

// ForUrgency maps an urgency class to its marker symbol. Plain and no-deadline
// tasks render without one.
func ForUrgency(u due.Urgency) string {
	switch u {
	case due.UrgencyWarning:
		return "!"
	case due.UrgencyCritical:
		return "‼"
	case due.UrgencyOverdue:
		return "✘"
	default:
		return " "
	}
}
