package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 30, 0, 0, time.Local)
}

func TestAddMonthsClampsLeapFebruary(t *testing.T) {
	got := AddMonths(date(2024, time.January, 31), 1)
	want := date(2024, time.February, 29)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAddMonthsClampsNonLeapFebruary(t *testing.T) {
	got := AddMonths(date(2023, time.January, 31), 1)
	want := date(2023, time.February, 28)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAddMonthsCrossesYearBoundary(t *testing.T) {
	got := AddMonths(date(2023, time.November, 15), 3)
	want := date(2024, time.February, 15)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAddMonthsNegative(t *testing.T) {
	got := AddMonths(date(2024, time.March, 31), -1)
	want := date(2024, time.February, 29)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAddYearsClampsLeapDay(t *testing.T) {
	got := AddYears(date(2024, time.February, 29), 1)
	want := date(2025, time.February, 28)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAddYearsKeepsOrdinaryDates(t *testing.T) {
	got := AddYears(date(2024, time.June, 15), 2)
	want := date(2026, time.June, 15)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAddDays(t *testing.T) {
	got := AddDays(date(2024, time.December, 31), 1)
	want := date(2025, time.January, 1)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAddMonthsPreservesTimeOfDay(t *testing.T) {
	in := time.Date(2024, time.May, 15, 23, 59, 0, 0, time.Local)
	got := AddMonths(in, 1)
	if got.Hour() != 23 || got.Minute() != 59 {
		t.Fatalf("time of day not preserved: %v", got)
	}
}

func TestDaysIn(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, c := range cases {
		if got := DaysIn(c.year, c.month); got != c.want {
			t.Fatalf("DaysIn(%d, %v): expected %d, got %d", c.year, c.month, c.want, got)
		}
	}
}
