// Package due computes task deadlines: the absolute due instant for a
// day/month pair, urgency classification, human labels, and the catch-up
// advancement of repeating tasks across elapsed cycles.
package due

import (
	"fmt"
	"time"

	"coursedeck/pkg/calendar"
	"coursedeck/pkg/note"
)

// Urgency buckets the gap between now and a task's due instant.
type Urgency string

const (
	UrgencyNone     Urgency = "none"
	UrgencyOK       Urgency = "ok"
	UrgencyWarning  Urgency = "warning"
	UrgencyCritical Urgency = "critical"
	UrgencyOverdue  Urgency = "overdue"
)

const (
	criticalWindow = 24 * time.Hour
	warningWindow  = 72 * time.Hour
)

// moment is the raw due instant for day/month in now's year: 23:59:00 local.
// Out-of-range days normalize the way the original date representation did
// (Feb 30 spills into March).
func moment(now time.Time, day, month int) time.Time {
	return time.Date(now.Year(), time.Month(month+1), day, 23, 59, 0, 0, now.Location())
}

// At returns the due instant for a day-of-month and zero-based month index:
// 23:59:00 local time in the current year, or the same day/month next year
// when this year's instant has already passed. A task therefore always reads
// as upcoming until its date is explicitly advanced. ok is false when either
// field is unset.
func At(day, month *int, now time.Time) (time.Time, bool) {
	if day == nil || month == nil {
		return time.Time{}, false
	}
	d := moment(now, *day, *month)
	if d.Before(now) {
		d = moment(now.AddDate(1, 0, 0), *day, *month)
	}
	return d, true
}

// Classify buckets the distance from now to the due instant. Thresholds are
// inclusive on the far edge: exactly 24h out is critical, 24h+1ms is warning.
func Classify(day, month *int, now time.Time) Urgency {
	d, ok := At(day, month, now)
	if !ok {
		return UrgencyNone
	}
	gap := d.Sub(now)
	switch {
	case gap <= 0:
		return UrgencyOverdue
	case gap <= criticalWindow:
		return UrgencyCritical
	case gap <= warningWindow:
		return UrgencyWarning
	default:
		return UrgencyOK
	}
}

// Label renders the gap to the due instant as a human string: "Due in 3d4h",
// "Overdue by 1d2h", "Due in <1h" for sub-hour gaps, or "No deadline".
func Label(day, month *int, now time.Time) string {
	d, ok := At(day, month, now)
	if !ok {
		return "No deadline"
	}
	gap := d.Sub(now)
	prefix := "Due in "
	if gap < 0 {
		prefix = "Overdue by "
		gap = -gap
	}
	if gap < time.Hour {
		return prefix + "<1h"
	}
	days := int(gap / (24 * time.Hour))
	hours := int(gap/time.Hour) % 24
	return fmt.Sprintf("%s%dd%dh", prefix, days, hours)
}

// Advance moves a repeating task's day/month forward by exactly one cycle:
// daily +1 day, weekly +7 days, monthly and yearly through calendar stepping
// with end-of-month clamping. It reports false (and leaves the task alone)
// when repeat is none or the deadline fields are unset. The year component is
// taken from now; tasks persist no year of their own.
func Advance(t *note.Task, now time.Time) bool {
	if t == nil || t.Repeat == note.RepeatNone || !t.HasDeadline() {
		return false
	}

	cur := moment(now, *t.Day, *t.Month)
	var next time.Time
	switch t.Repeat {
	case note.RepeatDaily:
		next = calendar.AddDays(cur, 1)
	case note.RepeatWeekly:
		next = calendar.AddDays(cur, 7)
	case note.RepeatMonthly:
		next = calendar.AddMonths(cur, 1)
	case note.RepeatYearly:
		next = calendar.AddYears(cur, 1)
	default:
		return false
	}

	day := next.Day()
	month := int(next.Month()) - 1
	t.Day = &day
	t.Month = &month
	return true
}

// CatchUp advances a repeating task across every cycle that has elapsed by
// now, clearing the completed flag each time, and stops once the raw
// current-year due instant is in the future. The Advance no-op result guards
// termination on malformed state, and a cycle that does not move the
// current-year instant strictly forward (yearly repeats, or a monthly step
// wrapping December into January) stops after a single advancement. Safe to
// call on every sweep tick no matter how much wall-clock time passed between
// ticks; calling it again with the same now is a no-op. Returns whether
// anything changed.
func CatchUp(t *note.Task, now time.Time) bool {
	changed := false
	for t != nil && t.Repeat != note.RepeatNone && t.HasDeadline() {
		cur := moment(now, *t.Day, *t.Month)
		if cur.After(now) {
			break
		}
		if !Advance(t, now) {
			break
		}
		t.Completed = false
		changed = true
		if !moment(now, *t.Day, *t.Month).After(cur) {
			break
		}
	}
	return changed
}
