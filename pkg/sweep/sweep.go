// Package sweep implements the periodic rollover pass: it walks every
// persisted note, advances overdue repeating tasks, auto-unchecks completed
// sessions whose reset instant has arrived, and persists once per pass only
// when something actually changed.
package sweep

import (
	"context"
	"sync"
	"time"

	"github.com/jmhodges/clock"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"coursedeck/pkg/due"
	"coursedeck/pkg/note"
	"coursedeck/pkg/reset"
	"coursedeck/pkg/store"
)

// DefaultInterval is the tick period when none is configured.
const DefaultInterval = 30 * time.Second

// Sweeper drives the rollover pass on a fixed interval. The clock is
// injectable so tests can steer wall-clock time.
type Sweeper struct {
	Persistence store.Persistence
	Clock       clock.Clock
	Log         *zap.SugaredLogger
	Interval    time.Duration

	// OnNote, when set, is called for every note a tick mutated so live
	// presentation can refresh without reloading the store.
	OnNote func(*note.Note)

	// Events, when set, carries store change notifications; each one triggers
	// an immediate tick so edits made behind the daemon's back roll over
	// without waiting for the interval. A tick's own write shows up here too;
	// the follow-up pass is a no-op.
	Events <-chan store.Event

	mu   sync.Mutex
	busy bool
}

// Tick runs one full rollover pass: load fresh, mutate in memory, write once
// if anything changed. Returns whether a write happened. A second call with
// an unchanged clock is a guaranteed no-op.
func (s *Sweeper) Tick(ctx context.Context) (bool, error) {
	if s.Persistence == nil {
		return false, errors.New("sweep: no persistence configured")
	}
	if s.Clock == nil {
		s.Clock = clock.New()
	}
	now := s.Clock.Now()

	notes := s.Persistence.List(ctx)
	dirty := false

	for _, n := range notes {
		changed := false
		for _, t := range n.Tasks {
			if due.CatchUp(t, now) {
				changed = true
			}
		}
		for _, sec := range n.Sections {
			for _, sess := range n.SessionTimes[sec] {
				if rollSession(sess, now) {
					changed = true
				}
			}
		}
		if changed {
			dirty = true
			if s.OnNote != nil {
				s.OnNote(n)
			}
		}
	}

	if !dirty {
		return false, nil
	}
	if err := s.Persistence.SaveAll(notes); err != nil {
		return false, errors.Wrap(err, "sweep: persist rolled-over notes")
	}
	return true, nil
}

// rollSession handles one session: a repeating session without a scheduled
// reset gets one (completion untouched), and a session whose reset instant
// has arrived is unchecked and rescheduled from the current now.
func rollSession(s *note.Session, now time.Time) bool {
	if s.Repeat == note.RepeatNone {
		return false
	}
	if s.NextResetAt == 0 {
		at, ok := reset.NextResetAt(s, now)
		if !ok {
			return false
		}
		s.NextResetAt = note.Millis(at)
		return true
	}
	if now.Before(note.FromMillis(s.NextResetAt)) {
		return false
	}
	changed := false
	if s.Completed {
		s.Completed = false
		changed = true
	}
	// The stale instant stays in place as the anchor so monthly and yearly
	// sessions keep their day-of-month when rescheduling from the current now.
	if at, ok := reset.NextResetAt(s, now); ok {
		if ms := note.Millis(at); ms != s.NextResetAt {
			s.NextResetAt = ms
			changed = true
		}
	}
	return changed
}

// Run ticks once immediately, then on the configured interval until ctx is
// done. A tick that is still in flight when the next interval fires is not
// overlapped; the late interval is simply skipped. Tick errors are logged and
// never stop the loop.
func (s *Sweeper) Run(ctx context.Context) error {
	if s.Clock == nil {
		s.Clock = clock.New()
	}
	if s.Interval <= 0 {
		s.Interval = DefaultInterval
	}
	if s.Log == nil {
		s.Log = zap.NewNop().Sugar()
	}

	s.tickOnce(ctx)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	events := s.Events
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.tickOnce(ctx)
		case _, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			s.tickOnce(ctx)
		}
	}
}

func (s *Sweeper) tickOnce(ctx context.Context) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		s.Log.Debugw("previous sweep still running, skipping tick")
		return
	}
	s.busy = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	changed, err := s.Tick(ctx)
	if err != nil {
		s.Log.Errorw("sweep tick failed", "err", err)
		return
	}
	if changed {
		s.Log.Infow("sweep rolled over state", "at", s.Clock.Now())
	}
}
