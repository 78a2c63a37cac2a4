package scheduling

import (
	"testing"
	"time"

	"github.com/flownote/flownote/internal/domain/entities"
)

func effortPtr(e entities.Effort) *entities.Effort {
	return &e
}

func newTestAllocator(cfg AllocatorConfig) *Allocator {
	return NewAllocator(cfg, nil)
}

func TestAllocateAll_MixedHintAndPriority(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	tasks := []*entities.Task{
		{ID: "t1", Title: "Write report", Priority: entities.PriorityHigh, Effort: effortPtr(entities.EffortLarge)},
		{ID: "t2", Title: "Call client at 10:30am", Priority: entities.PriorityMedium, Effort: effortPtr(entities.EffortSmall)},
	}

	blocks := newTestAllocator(AllocatorConfig{}).AllocateAll(tasks, day)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}

	byTask := make(map[string]entities.ScheduledBlock)
	for _, b := range blocks {
		byTask[b.TaskID] = b
	}

	call := byTask["t2"]
	if call.Start.Hour() != 10 || call.Start.Minute() != 30 {
		t.Errorf("hinted task: expected start 10:30, got %02d:%02d", call.Start.Hour(), call.Start.Minute())
	}
	if call.End.Hour() != 11 || call.End.Minute() != 0 {
		t.Errorf("hinted task: expected end 11:00, got %02d:%02d", call.End.Hour(), call.End.Minute())
	}

	report := byTask["t1"]
	if report.Start.Hour() != 9 || report.Start.Minute() != 0 {
		t.Errorf("cursor task: expected start 09:00, got %02d:%02d", report.Start.Hour(), report.Start.Minute())
	}
	if report.End.Hour() != 12 || report.End.Minute() != 0 {
		t.Errorf("cursor task: expected end 12:00, got %02d:%02d", report.End.Hour(), report.End.Minute())
	}
	if report.DurationHours != 3.0 {
		t.Errorf("cursor task: expected duration 3h, got %v", report.DurationHours)
	}
}

func TestAllocateAll_CursorAdvancesWithBuffer(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	tasks := []*entities.Task{
		{ID: "a", Title: "inbox zero", Priority: entities.PriorityMedium, Effort: effortPtr(entities.EffortSmall)},
		{ID: "b", Title: "expense report", Priority: entities.PriorityMedium, Effort: effortPtr(entities.EffortSmall)},
		{ID: "c", Title: "book travel", Priority: entities.PriorityMedium, Effort: effortPtr(entities.EffortSmall)},
	}

	blocks := newTestAllocator(AllocatorConfig{}).AllocateAll(tasks, day)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}

	wantStarts := []struct{ hour, minute int }{{9, 0}, {9, 45}, {10, 30}}
	for i, want := range wantStarts {
		got := blocks[i]
		if got.Start.Hour() != want.hour || got.Start.Minute() != want.minute {
			t.Errorf("block %d: expected start %02d:%02d, got %02d:%02d",
				i, want.hour, want.minute, got.Start.Hour(), got.Start.Minute())
		}
	}
}

func TestAllocateAll_ClipsAtMidnight(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	tasks := []*entities.Task{
		{ID: "late", Title: "deep work session", Priority: entities.PriorityHigh, Effort: effortPtr(entities.EffortLarge)},
	}

	blocks := newTestAllocator(AllocatorConfig{DayStartHour: 22}).AllocateAll(tasks, day)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}

	b := blocks[0]
	if b.Start.Hour() != 22 || b.Start.Minute() != 0 {
		t.Errorf("expected start 22:00, got %02d:%02d", b.Start.Hour(), b.Start.Minute())
	}
	if b.End.Hour() != 23 || b.End.Minute() != 59 {
		t.Errorf("expected end clipped to 23:59, got %02d:%02d", b.End.Hour(), b.End.Minute())
	}
	if b.End.Day() != 15 {
		t.Errorf("block crossed midnight: end day %d", b.End.Day())
	}
	if b.DurationHours >= 3.0 {
		t.Errorf("expected duration recomputed after clipping, got %v", b.DurationHours)
	}
}

func TestAllocateAll_OneBlockPerTask(t *testing.T) {
	day := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	tasks := []*entities.Task{
		{ID: "1", Title: "run 5k", Priority: entities.PriorityLow},                                                  // nil effort
		{ID: "2", Title: "plan sprint at 2:00pm", Priority: entities.PriorityHigh, Effort: effortPtr(entities.EffortMedium)},
		{ID: "3", Title: "", Priority: entities.PriorityMedium, Effort: effortPtr(entities.EffortSmall)},
		{ID: "4", Title: "misc", Priority: "urgent", Effort: effortPtr(entities.Effort("huge"))}, // unknown enums
		{ID: "5", Title: "evening review", Priority: entities.PriorityLow, Effort: effortPtr(entities.EffortSmall)},
	}

	blocks := newTestAllocator(AllocatorConfig{}).AllocateAll(tasks, day)
	if len(blocks) != len(tasks) {
		t.Fatalf("expected %d blocks, got %d", len(tasks), len(blocks))
	}

	seen := make(map[string]bool)
	for _, b := range blocks {
		if seen[b.TaskID] {
			t.Errorf("duplicate block for task %s", b.TaskID)
		}
		seen[b.TaskID] = true
		if !b.Start.Before(b.End) {
			t.Errorf("task %s: start %v not before end %v", b.TaskID, b.Start, b.End)
		}
		dayEnd := time.Date(2024, 3, 2, 23, 59, 0, 0, time.UTC)
		if b.End.After(dayEnd) {
			t.Errorf("task %s: end %v crosses midnight", b.TaskID, b.End)
		}
	}
}

func TestAllocateAll_IdenticalHintsOverlapSilently(t *testing.T) {
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	tasks := []*entities.Task{
		{ID: "x", Title: "sync at 3:00pm", Priority: entities.PriorityMedium, Effort: effortPtr(entities.EffortSmall)},
		{ID: "y", Title: "review at 3:00pm", Priority: entities.PriorityMedium, Effort: effortPtr(entities.EffortSmall)},
	}

	blocks := newTestAllocator(AllocatorConfig{}).AllocateAll(tasks, day)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if !blocks[0].Start.Equal(blocks[1].Start) {
		t.Errorf("expected overlapping starts, got %v and %v", blocks[0].Start, blocks[1].Start)
	}
}

func TestAllocateAll_EmptyInput(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	if blocks := newTestAllocator(AllocatorConfig{}).AllocateAll(nil, day); len(blocks) != 0 {
		t.Errorf("expected no blocks for empty input, got %d", len(blocks))
	}
}

func TestEffortDuration(t *testing.T) {
	tests := []struct {
		effort *entities.Effort
		hours  float64
		known  bool
	}{
		{effortPtr(entities.EffortSmall), 0.5, true},
		{effortPtr(entities.EffortMedium), 1.5, true},
		{effortPtr(entities.EffortLarge), 3.0, true},
		{effortPtr(entities.Effort("gigantic")), 1.5, false},
		{nil, 1.5, false},
	}

	for _, tt := range tests {
		hours, known := EffortDuration(tt.effort)
		if hours != tt.hours || known != tt.known {
			t.Errorf("EffortDuration(%v) = (%v, %v), want (%v, %v)",
				tt.effort, hours, known, tt.hours, tt.known)
		}
	}
}
