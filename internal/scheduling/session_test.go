package scheduling

import (
	"testing"
	"time"

	"github.com/flownote/flownote/internal/domain/entities"
)

func newTestSession() *Session {
	return NewSession(DefaultPixelsPerHour, nil)
}

func TestPlaceAt_SnapsToQuarterHour(t *testing.T) {
	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	task := &entities.Task{ID: "t1", Title: "draft email", Effort: effortPtr(entities.EffortSmall)}

	tests := []struct {
		pointerHour    int
		pointerMinutes float64
		wantHour       int
		wantMinute     int
	}{
		{10, 0, 10, 0},
		{10, 7, 10, 0},   // rounds down
		{10, 8, 10, 15},  // rounds up
		{10, 22, 10, 15},
		{10, 23, 10, 30},
		{14, 52, 14, 45},
		{14, 53, 15, 0}, // rounds to 60, rolls into next hour
		{23, 58, 23, 59}, // no next hour, clamp minutes
		{10, -20, 9, 59}, // negative rolls into previous hour
		{0, -20, 0, 0},   // no previous hour, clamp to day start
	}

	s := newTestSession()
	for _, tt := range tests {
		block := s.PlaceAt(task, day, tt.pointerHour, tt.pointerMinutes)
		if block.Start.Hour() != tt.wantHour || block.Start.Minute() != tt.wantMinute {
			t.Errorf("PlaceAt(%d, %v): expected start %02d:%02d, got %02d:%02d",
				tt.pointerHour, tt.pointerMinutes, tt.wantHour, tt.wantMinute,
				block.Start.Hour(), block.Start.Minute())
		}
	}
}

func TestPlaceAt_SetsEndFromEffort(t *testing.T) {
	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	s := newTestSession()

	block := s.PlaceAt(&entities.Task{ID: "t1", Effort: effortPtr(entities.EffortMedium)}, day, 10, 0)
	if block.End.Hour() != 11 || block.End.Minute() != 30 {
		t.Errorf("expected end 11:30, got %02d:%02d", block.End.Hour(), block.End.Minute())
	}
	if block.DurationHours != 1.5 {
		t.Errorf("expected duration 1.5h, got %v", block.DurationHours)
	}
}

func TestPlaceAt_ReplacesExistingBlock(t *testing.T) {
	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	task := &entities.Task{ID: "t1", Effort: effortPtr(entities.EffortSmall)}
	s := newTestSession()

	s.PlaceAt(task, day, 9, 0)
	s.PlaceAt(task, day, 15, 30)

	if s.Len() != 1 {
		t.Fatalf("expected 1 block after re-placement, got %d", s.Len())
	}
	block, ok := s.Block("t1")
	if !ok {
		t.Fatal("expected block for t1")
	}
	if block.Start.Hour() != 15 || block.Start.Minute() != 30 {
		t.Errorf("expected re-placed start 15:30, got %02d:%02d", block.Start.Hour(), block.Start.Minute())
	}
}

func TestPlaceAt_ClipsAtMidnight(t *testing.T) {
	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	s := newTestSession()

	block := s.PlaceAt(&entities.Task{ID: "t1", Effort: effortPtr(entities.EffortLarge)}, day, 22, 30)
	if block.End.Hour() != 23 || block.End.Minute() != 59 {
		t.Errorf("expected end clipped to 23:59, got %02d:%02d", block.End.Hour(), block.End.Minute())
	}
}

func TestResize_DurationFloor(t *testing.T) {
	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	s := newTestSession()
	s.PlaceAt(&entities.Task{ID: "t1", Effort: effortPtr(entities.EffortMedium)}, day, 10, 0)

	// Arbitrarily large negative deltas, repeatedly, on both edges.
	for i := 0; i < 5; i++ {
		if err := s.ResizeFromTop("t1", -100000); err != nil {
			t.Fatalf("ResizeFromTop: %v", err)
		}
		if err := s.ResizeFromBottom("t1", -100000); err != nil {
			t.Fatalf("ResizeFromBottom: %v", err)
		}
	}

	block, _ := s.Block("t1")
	if block.DurationHours < MinBlockHours {
		t.Errorf("duration %v shrank below floor %v", block.DurationHours, MinBlockHours)
	}
	if !block.Start.Before(block.End) {
		t.Errorf("degenerate block: start %v, end %v", block.Start, block.End)
	}
}

func TestResizeFromTop_KeepsEndFixed(t *testing.T) {
	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	s := newTestSession()
	s.PlaceAt(&entities.Task{ID: "t1", Effort: effortPtr(entities.EffortMedium)}, day, 10, 0)

	block, _ := s.Block("t1")
	endBefore := block.End

	// 30 pixels at 60 px/h grows the block by half an hour upward.
	if err := s.ResizeFromTop("t1", 30); err != nil {
		t.Fatalf("ResizeFromTop: %v", err)
	}

	if !block.End.Equal(endBefore) {
		t.Errorf("end moved: %v -> %v", endBefore, block.End)
	}
	if block.Start.Hour() != 9 || block.Start.Minute() != 30 {
		t.Errorf("expected start 09:30, got %02d:%02d", block.Start.Hour(), block.Start.Minute())
	}
	if block.DurationHours != 2.0 {
		t.Errorf("expected duration 2h, got %v", block.DurationHours)
	}
}

func TestResizeFromBottom_KeepsStartFixed(t *testing.T) {
	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	s := newTestSession()
	s.PlaceAt(&entities.Task{ID: "t1", Effort: effortPtr(entities.EffortSmall)}, day, 10, 0)

	block, _ := s.Block("t1")
	startBefore := block.Start

	if err := s.ResizeFromBottom("t1", 60); err != nil {
		t.Fatalf("ResizeFromBottom: %v", err)
	}

	if !block.Start.Equal(startBefore) {
		t.Errorf("start moved: %v -> %v", startBefore, block.Start)
	}
	if block.DurationHours != 1.5 {
		t.Errorf("expected duration 1.5h, got %v", block.DurationHours)
	}
}

func TestResize_UnknownTask(t *testing.T) {
	s := newTestSession()
	if err := s.ResizeFromTop("ghost", 10); err != entities.ErrTaskNotFound {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestDrag_TotalDeltaIsIdempotent(t *testing.T) {
	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	s := newTestSession()
	s.PlaceAt(&entities.Task{ID: "t1", Effort: effortPtr(entities.EffortMedium)}, day, 10, 0)

	if err := s.BeginDrag("t1", DragBottom); err != nil {
		t.Fatalf("BeginDrag: %v", err)
	}

	// The same total delta applied twice lands on the same geometry.
	for i := 0; i < 2; i++ {
		if err := s.DragTo(30); err != nil {
			t.Fatalf("DragTo: %v", err)
		}
		block, _ := s.Block("t1")
		if block.DurationHours != 2.0 {
			t.Errorf("pass %d: expected duration 2h, got %v", i, block.DurationHours)
		}
	}

	// A huge negative total delta bottoms out at the floor.
	if err := s.DragTo(-100000); err != nil {
		t.Fatalf("DragTo: %v", err)
	}
	block, _ := s.Block("t1")
	if block.DurationHours != MinBlockHours {
		t.Errorf("expected floor duration %v, got %v", MinBlockHours, block.DurationHours)
	}

	s.EndDrag()
	if err := s.DragTo(10); err == nil {
		t.Error("expected error dragging while idle")
	}
}
