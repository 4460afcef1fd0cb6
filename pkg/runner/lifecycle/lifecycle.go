// Package lifecycle provides the runner logic for moving notes between
// active, archived, and trashed, and for permanent removal.
package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"coursedeck/pkg/app"
	"coursedeck/pkg/store"
)

// Op names a lifecycle transition.
type Op string

const (
	Archive Op = "archive"
	Trash   Op = "trash"
	Restore Op = "restore"
	Delete  Op = "delete"
)

// Set applies a lifecycle transition to a note.
type Set struct {
	ID string
	Op Op

	Persistence store.Persistence
}

func (s *Set) Do(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("can not change lifecycle, no persistence")
	}

	svc := &app.Service{Persistence: s.Persistence}
	var err error
	switch s.Op {
	case Archive:
		err = svc.Archive(ctx, s.ID)
	case Trash:
		err = svc.Trash(ctx, s.ID)
	case Restore:
		err = svc.Restore(ctx, s.ID)
	case Delete:
		err = svc.Delete(ctx, s.ID)
	default:
		err = fmt.Errorf("unknown lifecycle op %q", s.Op)
	}
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s\n", s.Op, s.ID)
	return nil
}
