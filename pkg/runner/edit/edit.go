// Package edit provides the runner logic for in-place field edits on
// sessions and tasks. Each edit reloads the store, applies one change, and
// writes through before returning.
package edit

import (
	"context"
	"errors"

	"coursedeck/pkg/app"
	"coursedeck/pkg/note"
	"coursedeck/pkg/store"
)

// Edit applies the set fields to the session or task with the given id.
type Edit struct {
	ID string

	Schedule    bool // apply Day/Time
	Day         string
	Time        string
	SetRepeat   bool
	Repeat      note.Repeat
	SetText     bool
	Text        string
	SetDue      bool
	DueDay      *int
	DueMonth    *int

	Persistence store.Persistence
}

func (e *Edit) Do(ctx context.Context) error {
	if e.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}
	if !e.Schedule && !e.SetRepeat && !e.SetText && !e.SetDue {
		return errors.New("nothing to change")
	}

	svc := &app.Service{Persistence: e.Persistence}

	if e.Schedule {
		if err := svc.SetSessionSchedule(ctx, e.ID, e.Day, e.Time); err != nil {
			return err
		}
	}
	if e.SetRepeat {
		if err := svc.SetRepeat(ctx, e.ID, e.Repeat); err != nil {
			return err
		}
	}
	if e.SetText {
		if err := svc.SetText(ctx, e.ID, e.Text); err != nil {
			return err
		}
	}
	if e.SetDue {
		if err := svc.SetTaskDue(ctx, e.ID, e.DueDay, e.DueMonth); err != nil {
			return err
		}
	}
	return nil
}
