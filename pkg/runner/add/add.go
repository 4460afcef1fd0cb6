// Package add provides the runner logic for creating courses, sessions, and
// tasks.
package add

import (
	"context"
	"errors"
	"fmt"

	"coursedeck/pkg/app"
	"coursedeck/pkg/note"
	"coursedeck/pkg/printers"
	"coursedeck/pkg/store"
)

// Course creates a new course card.
type Course struct {
	Name     string
	Sections []note.Section

	Persistence store.Persistence
}

func (c *Course) Do(ctx context.Context) error {
	if c.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	svc := &app.Service{Persistence: c.Persistence}
	n, err := svc.CreateNote(ctx, c.Name, c.Sections)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Card(n)
	return nil
}

// Session appends a session row to a section of an existing course.
type Session struct {
	NoteID  string
	Section note.Section
	Day     string
	Time    string
	Repeat  note.Repeat

	Persistence store.Persistence
}

func (s *Session) Do(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	svc := &app.Service{Persistence: s.Persistence}
	if _, err := svc.AddSession(ctx, s.NoteID, s.Section, s.Day, s.Time, s.Repeat); err != nil {
		return err
	}
	return showCard(ctx, svc, s.NoteID)
}

// Task appends a task to an existing course.
type Task struct {
	NoteID string
	Text   string
	Day    *int
	Month  *int
	Repeat note.Repeat

	Persistence store.Persistence
}

func (t *Task) Do(ctx context.Context) error {
	if t.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	svc := &app.Service{Persistence: t.Persistence}
	if _, err := svc.AddTask(ctx, t.NoteID, t.Text, t.Day, t.Month, t.Repeat); err != nil {
		return err
	}
	return showCard(ctx, svc, t.NoteID)
}

func showCard(ctx context.Context, svc *app.Service, noteID string) error {
	all, err := svc.Notes(ctx, "")
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	for _, n := range all {
		if n.ID == noteID {
			fmt.Println("")
			pp.Card(n)
			return nil
		}
	}
	return app.ErrNoteNotFound
}
