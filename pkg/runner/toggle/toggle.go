// Package toggle provides the runner logic for checking and unchecking
// sessions and tasks.
package toggle

import (
	"context"
	"errors"
	"fmt"

	"coursedeck/pkg/app"
	"coursedeck/pkg/store"
)

// Toggle flips the completed flag of a session or task.
type Toggle struct {
	ID          string
	Persistence store.Persistence
}

func (t *Toggle) Do(ctx context.Context) error {
	if t.Persistence == nil {
		return errors.New("can not toggle, no persistence")
	}

	svc := &app.Service{Persistence: t.Persistence}
	done, err := svc.Toggle(ctx, t.ID)
	if err != nil {
		return err
	}
	if done {
		fmt.Println("checked")
	} else {
		fmt.Println("unchecked")
	}
	return nil
}
