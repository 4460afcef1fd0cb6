package due

import (
	"testing"
	"time"

	"coursedeck/pkg/note"
)

func intp(v int) *int { return &v }

func task(day, month int, repeat note.Repeat, completed bool) *note.Task {
	return &note.Task{
		ID:        "t1",
		Day:       intp(day),
		Month:     intp(month),
		Repeat:    repeat,
		Completed: completed,
	}
}

func TestAtRollsPassedDateToNextYear(t *testing.T) {
	now := time.Date(2024, time.July, 1, 12, 0, 0, 0, time.Local)
	got, ok := At(intp(15), intp(5), now) // June 15
	if !ok {
		t.Fatalf("expected a due instant")
	}
	want := time.Date(2025, time.June, 15, 23, 59, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAtUpcomingDateStaysInCurrentYear(t *testing.T) {
	now := time.Date(2024, time.July, 1, 12, 0, 0, 0, time.Local)
	got, ok := At(intp(9), intp(8), now) // September 9
	if !ok {
		t.Fatalf("expected a due instant")
	}
	want := time.Date(2024, time.September, 9, 23, 59, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAtMissingFields(t *testing.T) {
	now := time.Now()
	if _, ok := At(nil, intp(3), now); ok {
		t.Fatalf("expected no due instant without a day")
	}
	if _, ok := At(intp(10), nil, now); ok {
		t.Fatalf("expected no due instant without a month")
	}
}

func TestClassifyBoundaries(t *testing.T) {
	d := time.Date(2024, time.May, 20, 23, 59, 0, 0, time.Local)

	cases := []struct {
		name string
		now  time.Time
		want Urgency
	}{
		{"exactly 24h out", d.Add(-24 * time.Hour), UrgencyCritical},
		{"24h and a millisecond out", d.Add(-24*time.Hour - time.Millisecond), UrgencyWarning},
		{"exactly 72h out", d.Add(-72 * time.Hour), UrgencyWarning},
		{"beyond 72h", d.Add(-72*time.Hour - time.Millisecond), UrgencyOK},
		{"at the due instant", d, UrgencyOverdue},
	}
	for _, c := range cases {
		got := Classify(intp(20), intp(4), c.now)
		if got != c.want {
			t.Fatalf("%s: expected %s, got %s", c.name, c.want, got)
		}
	}
}

func TestClassifyNoDeadline(t *testing.T) {
	if got := Classify(nil, nil, time.Now()); got != UrgencyNone {
		t.Fatalf("expected none, got %s", got)
	}
}

func TestLabel(t *testing.T) {
	d := time.Date(2024, time.May, 20, 23, 59, 0, 0, time.Local)

	if got := Label(intp(20), intp(4), d.Add(-26*time.Hour)); got != "Due in 1d2h" {
		t.Fatalf("unexpected label: %s", got)
	}
	if got := Label(intp(20), intp(4), d.Add(-30*time.Minute)); got != "Due in <1h" {
		t.Fatalf("unexpected sub-hour label: %s", got)
	}
	if got := Label(nil, nil, d); got != "No deadline" {
		t.Fatalf("unexpected label: %s", got)
	}
}

func TestAdvanceDaily(t *testing.T) {
	now := time.Date(2024, time.March, 10, 8, 0, 0, 0, time.Local)
	tk := task(10, 2, note.RepeatDaily, true) // March 10
	if !Advance(tk, now) {
		t.Fatalf("expected advancement")
	}
	if *tk.Day != 11 || *tk.Month != 2 {
		t.Fatalf("expected March 11, got day=%d month=%d", *tk.Day, *tk.Month)
	}
}

func TestAdvanceMonthlyClampsEndOfMonth(t *testing.T) {
	now := time.Date(2024, time.February, 1, 8, 0, 0, 0, time.Local)
	tk := task(31, 0, note.RepeatMonthly, false) // Jan 31
	if !Advance(tk, now) {
		t.Fatalf("expected advancement")
	}
	if *tk.Day != 29 || *tk.Month != 1 {
		t.Fatalf("expected Feb 29 (leap year), got day=%d month=%d", *tk.Day, *tk.Month)
	}
}

func TestAdvanceNoOp(t *testing.T) {
	now := time.Now()
	tk := task(5, 5, note.RepeatNone, false)
	if Advance(tk, now) {
		t.Fatalf("expected no-op for repeat none")
	}
	tk = &note.Task{ID: "t", Repeat: note.RepeatWeekly}
	if Advance(tk, now) {
		t.Fatalf("expected no-op without deadline fields")
	}
}

func TestCatchUpAdvancesAcrossElapsedCycles(t *testing.T) {
	// Weekly task due March 4; three cycles have elapsed by March 20.
	now := time.Date(2024, time.March, 20, 9, 0, 0, 0, time.Local)
	tk := task(4, 2, note.RepeatWeekly, true)

	if !CatchUp(tk, now) {
		t.Fatalf("expected changes")
	}
	if tk.Completed {
		t.Fatalf("completed flag should be cleared")
	}
	if *tk.Day != 25 || *tk.Month != 2 {
		t.Fatalf("expected March 25, got day=%d month=%d", *tk.Day, *tk.Month)
	}
	raw := time.Date(now.Year(), time.Month(*tk.Month+1), *tk.Day, 23, 59, 0, 0, now.Location())
	if !raw.After(now) {
		t.Fatalf("resulting due instant %v not in the future of %v", raw, now)
	}
}

func TestCatchUpIdempotent(t *testing.T) {
	now := time.Date(2024, time.March, 20, 9, 0, 0, 0, time.Local)
	tk := task(4, 2, note.RepeatWeekly, true)

	if !CatchUp(tk, now) {
		t.Fatalf("expected first call to change the task")
	}
	day, month := *tk.Day, *tk.Month
	if CatchUp(tk, now) {
		t.Fatalf("expected second call to be a no-op")
	}
	if *tk.Day != day || *tk.Month != month {
		t.Fatalf("fields changed on a no-op call")
	}
}

func TestCatchUpYearlyAdvancesOnce(t *testing.T) {
	// A yearly step lands on the same day/month, so the current-year instant
	// never moves; the task must still clear its flag and terminate.
	now := time.Date(2024, time.July, 1, 9, 0, 0, 0, time.Local)
	tk := task(15, 5, note.RepeatYearly, true) // June 15, passed

	if !CatchUp(tk, now) {
		t.Fatalf("expected changes")
	}
	if tk.Completed {
		t.Fatalf("completed flag should be cleared")
	}
	if *tk.Day != 15 || *tk.Month != 5 {
		t.Fatalf("expected June 15 kept, got day=%d month=%d", *tk.Day, *tk.Month)
	}
}

func TestCatchUpMonthlyDecemberWrap(t *testing.T) {
	// December wraps into January, so the current-year instant moves
	// backwards; one advancement, then stop.
	now := time.Date(2024, time.December, 20, 9, 0, 0, 0, time.Local)
	tk := task(15, 11, note.RepeatMonthly, true) // December 15

	if !CatchUp(tk, now) {
		t.Fatalf("expected changes")
	}
	if *tk.Day != 15 || *tk.Month != 0 {
		t.Fatalf("expected January 15, got day=%d month=%d", *tk.Day, *tk.Month)
	}
}

func TestCatchUpIgnoresNonRepeating(t *testing.T) {
	now := time.Date(2024, time.March, 20, 9, 0, 0, 0, time.Local)
	tk := task(1, 0, note.RepeatNone, true)
	if CatchUp(tk, now) {
		t.Fatalf("expected no-op for repeat none")
	}
	if !tk.Completed {
		t.Fatalf("completed flag must be untouched")
	}
}

func TestCatchUpFutureDueUntouched(t *testing.T) {
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.Local)
	tk := task(4, 2, note.RepeatWeekly, true) // March 4, still ahead
	if CatchUp(tk, now) {
		t.Fatalf("expected no-op for future due date")
	}
	if !tk.Completed {
		t.Fatalf("completed flag must be untouched")
	}
}
