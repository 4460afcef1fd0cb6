// Package sweepd provides the runner logic for the rollover sweep, one-shot
// or as a long-running daemon.
package sweepd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmhodges/clock"
	"go.uber.org/zap"

	"coursedeck/pkg/note"
	"coursedeck/pkg/store"
	"coursedeck/pkg/sweep"
)

// Sweep runs the rollover pass.
type Sweep struct {
	Once     bool
	Interval time.Duration

	Persistence store.Persistence
	Log         *zap.SugaredLogger
}

func (s *Sweep) Do(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("can not sweep, no persistence")
	}
	if s.Log == nil {
		s.Log = zap.NewNop().Sugar()
	}

	sw := &sweep.Sweeper{
		Persistence: s.Persistence,
		Clock:       clock.New(),
		Log:         s.Log,
		Interval:    s.Interval,
	}

	if s.Once {
		changed, err := sw.Tick(ctx)
		if err != nil {
			return err
		}
		if changed {
			fmt.Println("rolled over")
		} else {
			fmt.Println("nothing to do")
		}
		return nil
	}

	sw.OnNote = func(n *note.Note) {
		s.Log.Infow("rolled over", "course", n.CourseName, "id", n.ID)
	}

	// Edits made while the daemon runs sweep immediately instead of waiting
	// out the interval.
	events, err := s.Persistence.Watch(ctx)
	if err != nil {
		s.Log.Errorw("store watch unavailable, relying on the interval", "err", err)
	} else {
		sw.Events = events
	}

	err = sw.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
