package app

import (
	"context"
	"testing"

	"coursedeck/pkg/note"
	"coursedeck/pkg/store"
)

type memStore struct {
	notes []*note.Note
	saves int
}

var _ store.Persistence = (*memStore)(nil)

func (m *memStore) List(ctx context.Context) []*note.Note        { return m.notes }
func (m *memStore) SaveAll(notes []*note.Note) error             { m.notes = notes; m.saves++; return nil }
func (m *memStore) Watch(ctx context.Context) (<-chan store.Event, error) {
	return nil, nil
}

func newService() (*Service, *memStore) {
	ms := &memStore{}
	return &Service{Persistence: ms}, ms
}

func TestCreateNoteDefaultsAndValidation(t *testing.T) {
	svc, ms := newService()
	ctx := context.Background()

	if _, err := svc.CreateNote(ctx, "   ", nil); err != ErrNameRequired {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}

	n, err := svc.CreateNote(ctx, "Databases", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if n.Status != note.StatusActive {
		t.Fatalf("new notes start active, got %s", n.Status)
	}
	if !n.HasSection(note.Lectures) || !n.HasSection(note.Tutorials) || n.HasSection(note.Seminars) {
		t.Fatalf("default sections wrong: %v", n.Sections)
	}
	if ms.saves != 1 {
		t.Fatalf("expected one write, got %d", ms.saves)
	}
}

func TestToggleSessionAndTask(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	n, err := svc.CreateNote(ctx, "Databases", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	sess := n.SessionTimes[note.Lectures][0]

	done, err := svc.Toggle(ctx, sess.ID)
	if err != nil || !done {
		t.Fatalf("toggle on: done=%v err=%v", done, err)
	}
	done, err = svc.Toggle(ctx, sess.ID)
	if err != nil || done {
		t.Fatalf("toggle off: done=%v err=%v", done, err)
	}

	tk, err := svc.AddTask(ctx, n.ID, "reading", nil, nil, note.RepeatNone)
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if done, err := svc.Toggle(ctx, tk.ID); err != nil || !done {
		t.Fatalf("toggle task: done=%v err=%v", done, err)
	}

	if _, err := svc.Toggle(ctx, "nope"); err != ErrItemNotFound {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestSetScheduleDropsScheduledReset(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	n, _ := svc.CreateNote(ctx, "Databases", nil)
	sess := n.SessionTimes[note.Lectures][0]
	sess.Repeat = note.RepeatWeekly
	sess.NextResetAt = 12345

	if err := svc.SetSessionSchedule(ctx, sess.ID, "Thu", "10:00"); err != nil {
		t.Fatalf("set schedule: %v", err)
	}
	if sess.Day != "Thu" || sess.Time != "10:00" {
		t.Fatalf("schedule not applied: %+v", sess)
	}
	if sess.NextResetAt != 0 {
		t.Fatalf("stale reset instant must be dropped on reschedule")
	}
}

func TestLifecycle(t *testing.T) {
	svc, ms := newService()
	ctx := context.Background()

	n, _ := svc.CreateNote(ctx, "Databases", nil)

	if err := svc.Archive(ctx, n.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}
	if n.Status != note.StatusArchived {
		t.Fatalf("expected archived, got %s", n.Status)
	}

	if err := svc.Delete(ctx, n.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n.Status != note.StatusTrashed {
		t.Fatalf("first delete trashes, got %s", n.Status)
	}

	if err := svc.Restore(ctx, n.ID); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if n.Status != note.StatusActive {
		t.Fatalf("expected active after restore, got %s", n.Status)
	}

	_ = svc.Trash(ctx, n.ID)
	if err := svc.Delete(ctx, n.ID); err != nil {
		t.Fatalf("purge: %v", err)
	}
	if len(ms.notes) != 0 {
		t.Fatalf("delete-while-trashed must remove permanently, %d left", len(ms.notes))
	}

	if err := svc.Delete(ctx, n.ID); err != ErrNoteNotFound {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestNotesStatusFilter(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	a, _ := svc.CreateNote(ctx, "Active Course", nil)
	b, _ := svc.CreateNote(ctx, "Trashed Course", nil)
	_ = a
	_ = svc.Trash(ctx, b.ID)

	active, err := svc.Notes(ctx, note.StatusActive)
	if err != nil {
		t.Fatalf("notes: %v", err)
	}
	if len(active) != 1 || active[0].CourseName != "Active Course" {
		t.Fatalf("unexpected active filter result: %+v", active)
	}

	all, err := svc.Notes(ctx, "")
	if err != nil {
		t.Fatalf("notes: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 notes unfiltered, got %d", len(all))
	}
}
