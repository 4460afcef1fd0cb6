// Package app provides the high-level operations for course notes. It wraps
// persistence so CLIs and other frontends share one mutation path: every
// operation reloads the collection fresh, mutates in memory, and writes the
// whole collection through before returning.
package app

import (
	"context"
	"errors"
	"strings"

	"coursedeck/pkg/note"
	"coursedeck/pkg/store"
)

// Service provides create/edit/toggle/lifecycle operations over notes.
type Service struct {
	Persistence store.Persistence
}

var (
	ErrNoteNotFound    = errors.New("app: note not found")
	ErrItemNotFound    = errors.New("app: session or task not found")
	ErrNameRequired    = errors.New("app: course name required")
	ErrSectionRequired = errors.New("app: at least one section required")
)

// Notes lists notes, optionally filtered by lifecycle status.
func (s *Service) Notes(ctx context.Context, status note.Status) ([]*note.Note, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	all := s.Persistence.List(ctx)
	if status == "" {
		return all, nil
	}
	filtered := make([]*note.Note, 0, len(all))
	for _, n := range all {
		if n.Status == status {
			filtered = append(filtered, n)
		}
	}
	return filtered, nil
}

// CreateNote validates and stores a new course card. Empty sections fall back
// to the create form's defaults (lectures and tutorials on, seminars off).
func (s *Service) CreateNote(ctx context.Context, courseName string, sections []note.Section) (*note.Note, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	courseName = strings.TrimSpace(courseName)
	if courseName == "" {
		return nil, ErrNameRequired
	}
	if len(sections) == 0 {
		sections = note.DefaultSections()
	}

	n := note.New(courseName, sections)
	all := s.Persistence.List(ctx)
	all = append(all, n)
	if err := s.Persistence.SaveAll(all); err != nil {
		return nil, err
	}
	return n, nil
}

// AddSession appends an empty session row to a section of the note.
func (s *Service) AddSession(ctx context.Context, noteID string, sec note.Section, day, tod string, repeat note.Repeat) (*note.Session, error) {
	var added *note.Session
	err := s.mutate(ctx, noteID, func(n *note.Note) error {
		if !n.HasSection(sec) {
			n.Sections = append(n.Sections, sec)
		}
		sess := note.NewSession(day, tod)
		sess.Repeat = repeat
		n.SessionTimes[sec] = append(n.SessionTimes[sec], sess)
		added = sess
		return nil
	})
	return added, err
}

// AddTask appends a task to the note.
func (s *Service) AddTask(ctx context.Context, noteID, text string, day, month *int, repeat note.Repeat) (*note.Task, error) {
	var added *note.Task
	err := s.mutate(ctx, noteID, func(n *note.Note) error {
		t := note.NewTask(text)
		t.Day = day
		t.Month = month
		t.Repeat = repeat
		n.Tasks = append(n.Tasks, t)
		added = t
		return nil
	})
	return added, err
}

// Toggle flips the completed flag of the session or task with the given id,
// searching every note. Returns the new completed state.
func (s *Service) Toggle(ctx context.Context, itemID string) (bool, error) {
	if s.Persistence == nil {
		return false, errors.New("app: no persistence configured")
	}
	all := s.Persistence.List(ctx)
	for _, n := range all {
		if sess, _, ok := n.FindSession(itemID); ok {
			sess.Completed = !sess.Completed
			return sess.Completed, s.Persistence.SaveAll(all)
		}
		if t, ok := n.FindTask(itemID); ok {
			t.Completed = !t.Completed
			return t.Completed, s.Persistence.SaveAll(all)
		}
	}
	return false, ErrItemNotFound
}

// SetSessionSchedule updates a session's day/time pair and drops its
// scheduled reset so the next sweep recomputes from the new schedule.
func (s *Service) SetSessionSchedule(ctx context.Context, itemID, day, tod string) error {
	return s.mutateItem(ctx, itemID, func(n *note.Note) bool {
		if sess, _, ok := n.FindSession(itemID); ok {
			sess.Day = day
			sess.Time = tod
			sess.NextResetAt = 0
			return true
		}
		return false
	})
}

// SetRepeat updates the repeat frequency of a session or task. A session's
// scheduled reset is dropped so the sweep reschedules under the new policy.
func (s *Service) SetRepeat(ctx context.Context, itemID string, repeat note.Repeat) error {
	return s.mutateItem(ctx, itemID, func(n *note.Note) bool {
		if sess, _, ok := n.FindSession(itemID); ok {
			sess.Repeat = repeat
			sess.NextResetAt = 0
			return true
		}
		if t, ok := n.FindTask(itemID); ok {
			t.Repeat = repeat
			return true
		}
		return false
	})
}

// SetText updates the free text of a session or task.
func (s *Service) SetText(ctx context.Context, itemID, text string) error {
	return s.mutateItem(ctx, itemID, func(n *note.Note) bool {
		if sess, _, ok := n.FindSession(itemID); ok {
			sess.Text = text
			return true
		}
		if t, ok := n.FindTask(itemID); ok {
			t.Text = text
			return true
		}
		return false
	})
}

// SetTaskDue updates a task's day/month deadline fields.
func (s *Service) SetTaskDue(ctx context.Context, itemID string, day, month *int) error {
	return s.mutateItem(ctx, itemID, func(n *note.Note) bool {
		if t, ok := n.FindTask(itemID); ok {
			t.Day = day
			t.Month = month
			return true
		}
		return false
	})
}

// Archive moves an active note to archived.
func (s *Service) Archive(ctx context.Context, noteID string) error {
	return s.setStatus(ctx, noteID, note.StatusArchived)
}

// Trash moves a note to the trash.
func (s *Service) Trash(ctx context.Context, noteID string) error {
	return s.setStatus(ctx, noteID, note.StatusTrashed)
}

// Restore moves an archived or trashed note back to active.
func (s *Service) Restore(ctx context.Context, noteID string) error {
	return s.setStatus(ctx, noteID, note.StatusActive)
}

// Delete trashes an active or archived note; deleting a note that is already
// trashed removes it permanently.
func (s *Service) Delete(ctx context.Context, noteID string) error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	all := s.Persistence.List(ctx)
	for i, n := range all {
		if n.ID != noteID {
			continue
		}
		if n.Status == note.StatusTrashed {
			all = append(all[:i], all[i+1:]...)
		} else {
			n.Status = note.StatusTrashed
		}
		return s.Persistence.SaveAll(all)
	}
	return ErrNoteNotFound
}

func (s *Service) setStatus(ctx context.Context, noteID string, status note.Status) error {
	return s.mutate(ctx, noteID, func(n *note.Note) error {
		n.Status = status
		return nil
	})
}

// mutate reloads the collection, applies fn to the note with the given id,
// and writes everything back. Edits complete synchronously end-to-end so two
// logical mutations never interleave.
func (s *Service) mutate(ctx context.Context, noteID string, fn func(*note.Note) error) error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	all := s.Persistence.List(ctx)
	for _, n := range all {
		if n.ID == noteID {
			if err := fn(n); err != nil {
				return err
			}
			return s.Persistence.SaveAll(all)
		}
	}
	return ErrNoteNotFound
}

// mutateItem is mutate for session/task ids: fn reports whether it found and
// changed the item on the note it was handed.
func (s *Service) mutateItem(ctx context.Context, itemID string, fn func(*note.Note) bool) error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	all := s.Persistence.List(ctx)
	for _, n := range all {
		if fn(n) {
			return s.Persistence.SaveAll(all)
		}
	}
	return ErrItemNotFound
}
