// Package calendar provides the date-shifting primitives the recurrence
// engines are built on. All functions are pure and preserve the wall-clock
// time-of-day and location of their input.
package calendar

import "time"

// AddDays shifts t forward (or backward, for negative n) by whole days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddMonths shifts the month field by n, clamping the day-of-month to the
// target month's length when it would overflow: Jan 31 + 1 month lands on
// Feb 28 (or Feb 29 in a leap year), never on Mar 2/3.
func AddMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	total := int(month) - 1 + n
	year += floorDiv(total, 12)
	month = time.Month(mod(total, 12) + 1)
	if last := DaysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// AddYears shifts the year field by n. Feb 29 clamps to Feb 28 on non-leap
// targets.
func AddYears(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	year += n
	if last := DaysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// Day zero of the following month normalizes to this month's last day.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
