// Package reset computes when a completed repeating session should
// auto-uncheck: the next occurrence of its day-of-week and wall-clock time,
// stepped by its repeat frequency.
package reset

import (
	"strconv"
	"strings"
	"time"

	"coursedeck/pkg/calendar"
	"coursedeck/pkg/note"
)

var weekdays = map[string]time.Weekday{
	"Mon": time.Monday,
	"Tue": time.Tuesday,
	"Wed": time.Wednesday,
	"Thu": time.Thursday,
	"Fri": time.Friday,
	"Sat": time.Saturday,
	"Sun": time.Sunday,
}

// ParseClock splits an HH:MM string into hour and minute.
func ParseClock(s string) (hour, minute int, ok bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// ParseWeekday maps the persisted Mon..Sun form to a time.Weekday.
func ParseWeekday(s string) (time.Weekday, bool) {
	d, ok := weekdays[s]
	return d, ok
}

// NextResetAt returns the next instant at which the session's completed flag
// should clear, based on its day-of-week, time-of-day, and repeat frequency.
// ok is false when repeat is none or the fields the frequency requires are
// unset; callers treat that as "no reset scheduled".
//
// Monthly and yearly sessions anchor off the previously scheduled instant
// when one exists, because day-of-week alone cannot pin a stable day-of-month;
// without one, the synthesized weekly (or daily) next occurrence becomes the
// anchor, and month or year steps apply only once the anchor is not strictly
// in the future.
func NextResetAt(s *note.Session, now time.Time) (time.Time, bool) {
	if s == nil {
		return time.Time{}, false
	}
	switch s.Repeat {
	case note.RepeatDaily:
		return nextDaily(s.Time, now)
	case note.RepeatWeekly:
		return nextWeekly(s.Day, s.Time, now)
	case note.RepeatMonthly:
		return nextStepped(s, now, func(t time.Time) time.Time {
			return calendar.AddMonths(t, 1)
		})
	case note.RepeatYearly:
		return nextStepped(s, now, func(t time.Time) time.Time {
			return calendar.AddYears(t, 1)
		})
	default:
		return time.Time{}, false
	}
}

// nextDaily is today at HH:MM when that is still ahead, otherwise tomorrow.
func nextDaily(clock string, now time.Time) (time.Time, bool) {
	h, m, ok := ParseClock(clock)
	if !ok {
		return time.Time{}, false
	}
	at := time.Date(now.Year(), now.Month(), now.Day(), h, m, 0, 0, now.Location())
	if !at.After(now) {
		at = calendar.AddDays(at, 1)
	}
	return at, true
}

// nextWeekly walks forward to the target weekday (zero days when today
// matches), then pushes a full week when the instant is not strictly ahead:
// a Wednesday session at 14:00 asked at Wednesday 15:00 lands on the
// following Wednesday.
func nextWeekly(day, clock string, now time.Time) (time.Time, bool) {
	target, ok := ParseWeekday(day)
	if !ok {
		return time.Time{}, false
	}
	h, m, ok := ParseClock(clock)
	if !ok {
		return time.Time{}, false
	}
	delta := (int(target) - int(now.Weekday()) + 7) % 7
	at := time.Date(now.Year(), now.Month(), now.Day(), h, m, 0, 0, now.Location())
	at = calendar.AddDays(at, delta)
	if !at.After(now) {
		at = calendar.AddDays(at, 7)
	}
	return at, true
}

func nextStepped(s *note.Session, now time.Time, step func(time.Time) time.Time) (time.Time, bool) {
	anchor, ok := anchorFor(s, now)
	if !ok {
		return time.Time{}, false
	}
	for !anchor.After(now) {
		anchor = step(anchor)
	}
	return anchor, true
}

func anchorFor(s *note.Session, now time.Time) (time.Time, bool) {
	if s.NextResetAt != 0 {
		return note.FromMillis(s.NextResetAt), true
	}
	if _, ok := ParseWeekday(s.Day); ok {
		return nextWeekly(s.Day, s.Time, now)
	}
	return nextDaily(s.Time, now)
}
