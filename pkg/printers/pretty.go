package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"coursedeck/pkg/due"
	"coursedeck/pkg/glyph"
	"coursedeck/pkg/note"
)

// PrettyPrint renders course cards to the terminal.
type PrettyPrint struct {
	ShowID bool
	Now    time.Time
}

var (
	spacing = strings.Repeat(" ", len("171dff69f8b99dca  "))

	sectionTitles = map[note.Section]string{
		note.Lectures:  "Lectures",
		note.Tutorials: "Tutorials",
		note.Seminars:  "Seminars",
	}
)

func (pp *PrettyPrint) now() time.Time {
	if pp.Now.IsZero() {
		return time.Now()
	}
	return pp.Now
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

// Title prints a bold, underlined course header, faintly annotated with the
// lifecycle status when it is not active.
func (pp *PrettyPrint) Title(n *note.Note) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		y := color.New(color.FgHiYellow, color.Italic, color.Faint)
		_, _ = y.Print(n.ID)
		_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(n.ID)))
	}
	_, _ = t.Print(n.CourseName)
	if n.Status != note.StatusActive {
		f := color.New(color.Faint)
		_, _ = f.Printf("  (%s)", n.Status)
	}
	fmt.Println("")
}

// Card prints the full course card: each section's sessions, then tasks.
func (pp *PrettyPrint) Card(n *note.Note) {
	pp.Title(n)

	for _, sec := range n.Sections {
		pp.section(n, sec)
	}
	pp.tasks(n)
	fmt.Println("")
}

func (pp *PrettyPrint) section(n *note.Note, sec note.Section) {
	h := color.New(color.Faint, color.Underline)
	_, _ = h.Println(sectionTitles[sec])

	sessions := n.SessionTimes[sec]
	if len(sessions) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" none")
		return
	}

	tbl := uitable.New()
	tbl.Separator = " "
	for _, s := range sessions {
		row := []interface{}{glyph.Checkbox(s.Completed), pill(s)}
		if pp.ShowID {
			row = append([]interface{}{s.ID}, row...)
		}
		text := s.Text
		if s.Completed {
			text = color.New(color.Faint, color.CrossedOut).Sprint(text)
		}
		row = append(row, text)
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func (pp *PrettyPrint) tasks(n *note.Note) {
	if len(n.Tasks) == 0 {
		return
	}
	h := color.New(color.Faint, color.Underline)
	_, _ = h.Println("Tasks")

	now := pp.now()
	tbl := uitable.New()
	tbl.Separator = " "
	for _, t := range n.Tasks {
		u := due.Classify(t.Day, t.Month, now)
		label := urgencyColor(u).Sprintf("%s %s", glyph.ForUrgency(u), due.Label(t.Day, t.Month, now))
		row := []interface{}{glyph.Checkbox(t.Completed), label}
		if pp.ShowID {
			row = append([]interface{}{t.ID}, row...)
		}
		text := t.Text
		if t.Completed {
			text = color.New(color.Faint, color.CrossedOut).Sprint(text)
		}
		row = append(row, text)
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// pill renders the "Wed · 14:00" schedule chip, with a repeat marker when the
// session recurs.
func pill(s *note.Session) string {
	parts := make([]string, 0, 2)
	if s.Day != "" {
		parts = append(parts, s.Day)
	}
	if s.Time != "" {
		parts = append(parts, s.Time)
	}
	text := "set day / time"
	if len(parts) > 0 {
		text = strings.Join(parts, " · ")
	}
	if s.Repeat != note.RepeatNone {
		text = fmt.Sprintf("%s ↻%s", text, s.Repeat)
	}
	return color.New(color.FgCyan).Sprint(text)
}

func urgencyColor(u due.Urgency) *color.Color {
	switch u {
	case due.UrgencyOverdue:
		return color.New(color.FgRed, color.Bold)
	case due.UrgencyCritical:
		return color.New(color.FgRed)
	case due.UrgencyWarning:
		return color.New(color.FgYellow)
	case due.UrgencyOK:
		return color.New(color.FgGreen)
	default:
		return color.New(color.Faint)
	}
}

// Legend prints the glyph table.
func Legend() {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("KEY", "SYMBOL", "MEANING")
	for _, g := range glyph.DefaultGlyphs() {
		tbl.AddRow(g.Key, g.Symbol, g.Meaning)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
