package entities

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestHabitStreak(t *testing.T) {
	now := time.Date(2024, 1, 15, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkIns []time.Time
		want     int
	}{
		{"no check-ins", nil, 0},
		{"checked today only", []time.Time{day(2024, 1, 15)}, 1},
		{"three consecutive days ending today", []time.Time{
			day(2024, 1, 13), day(2024, 1, 14), day(2024, 1, 15),
		}, 3},
		{"streak alive when today not yet checked", []time.Time{
			day(2024, 1, 13), day(2024, 1, 14),
		}, 2},
		{"broken two days ago", []time.Time{
			day(2024, 1, 12), day(2024, 1, 13),
		}, 0},
		{"gap resets", []time.Time{
			day(2024, 1, 10), day(2024, 1, 14), day(2024, 1, 15),
		}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Habit{CheckIns: tt.checkIns}
			if got := h.Streak(now); got != tt.want {
				t.Errorf("Streak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScheduledBlockClipToDay(t *testing.T) {
	d := day(2024, 1, 15)

	b := ScheduledBlock{Day: d, Start: d.Add(22 * time.Hour)}
	b.SetEnd(d.Add(25 * time.Hour))
	b.ClipToDay()

	wantEnd := time.Date(2024, 1, 15, 23, 59, 0, 0, time.UTC)
	if !b.End.Equal(wantEnd) {
		t.Errorf("End = %v, want %v", b.End, wantEnd)
	}
	wantDur := wantEnd.Sub(b.Start).Hours()
	if b.DurationHours != wantDur {
		t.Errorf("DurationHours = %v, want %v", b.DurationHours, wantDur)
	}

	// A block already inside the day is untouched.
	inside := ScheduledBlock{Day: d, Start: d.Add(9 * time.Hour)}
	inside.SetEnd(d.Add(10 * time.Hour))
	inside.ClipToDay()
	if !inside.End.Equal(d.Add(10 * time.Hour)) {
		t.Errorf("in-day block was clipped to %v", inside.End)
	}
}

func TestCalendarEventOverlaps(t *testing.T) {
	d := day(2024, 1, 15)
	event := CalendarEvent{Start: d.Add(10 * time.Hour), End: d.Add(11 * time.Hour)}

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"inside", d.Add(10*time.Hour + 15*time.Minute), d.Add(10*time.Hour + 45*time.Minute), true},
		{"spanning", d.Add(9 * time.Hour), d.Add(12 * time.Hour), true},
		{"before", d.Add(8 * time.Hour), d.Add(9 * time.Hour), false},
		{"touching start is not overlap", d.Add(9 * time.Hour), d.Add(10 * time.Hour), false},
		{"touching end is not overlap", d.Add(11 * time.Hour), d.Add(12 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := event.Overlaps(tt.start, tt.end); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPriorityRank(t *testing.T) {
	if PriorityHigh.Rank() <= PriorityMedium.Rank() || PriorityMedium.Rank() <= PriorityLow.Rank() {
		t.Error("priority ranks are not strictly ordered")
	}
	if Priority("bogus").Rank() != 0 {
		t.Errorf("unknown priority rank = %d, want 0", Priority("bogus").Rank())
	}
}
