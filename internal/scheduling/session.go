package scheduling

import (
	"math"
	"sort"
	"time"

	"github.com/flownote/flownote/internal/domain/entities"
	"github.com/flownote/flownote/internal/infrastructure/logger"
)

// DragEdge identifies which edge of a block a resize is anchored to.
type DragEdge int

const (
	DragTop DragEdge = iota
	DragBottom
)

// DefaultPixelsPerHour maps pointer travel to time in resize math.
const DefaultPixelsPerHour = 60.0

// Session is the working set of blocks for one editing session. It holds at
// most one block per task id; re-placing a task replaces its existing block.
// Sessions are local per editor and not safe for concurrent use.
type Session struct {
	blocks        map[string]*entities.ScheduledBlock
	pixelsPerHour float64
	log           *logger.Logger
	drag          *dragState
}

// dragState is the Dragging half of the {Idle, Dragging} machine. A nil drag
// means Idle. The anchor duration is captured on entry so applying a total
// pointer delta is idempotent.
type dragState struct {
	taskID         string
	edge           DragEdge
	anchorDuration float64
}

// NewSession creates an empty placement session.
func NewSession(pixelsPerHour float64, log *logger.Logger) *Session {
	if pixelsPerHour <= 0 {
		pixelsPerHour = DefaultPixelsPerHour
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Session{
		blocks:        make(map[string]*entities.ScheduledBlock),
		pixelsPerHour: pixelsPerHour,
		log:           log,
	}
}

// PlaceAt drops a task onto the day at a raw pointer position within an
// hour-tall slot. The minute offset snaps to the nearest 15-minute tick;
// overflow rolls into the adjacent hour, clamping at the day boundaries. Any
// existing block for the task is replaced.
func (s *Session) PlaceAt(task *entities.Task, day time.Time, pointerHour int, pointerMinutes float64) *entities.ScheduledBlock {
	hour := pointerHour
	minutes := int(math.Round(pointerMinutes/15)) * 15

	if minutes >= 60 {
		if hour >= 23 {
			hour = 23
			minutes = 59
		} else {
			hour++
			minutes = 0
		}
	} else if minutes < 0 {
		if hour <= 0 {
			hour = 0
			minutes = 0
		} else {
			hour--
			minutes = 59
		}
	}

	hours, known := EffortDuration(task.Effort)
	if !known {
		s.log.Warnw("unrecognized effort, defaulting to medium",
			"task_id", task.ID,
			"effort", task.Effort,
		)
	}

	midnight := dayMidnight(day)
	block := &entities.ScheduledBlock{
		TaskID: task.ID,
		Day:    midnight,
		Start:  midnight.Add(time.Duration(hour)*time.Hour + time.Duration(minutes)*time.Minute),
	}
	block.SetEnd(block.Start.Add(hoursToDuration(hours)))
	block.ClipToDay()

	s.blocks[task.ID] = block
	return block
}

// ResizeFromTop moves the block's start edge by a pointer delta, keeping the
// end fixed. The duration never shrinks below the 15-minute floor.
func (s *Session) ResizeFromTop(taskID string, deltaY float64) error {
	block, ok := s.blocks[taskID]
	if !ok {
		return entities.ErrTaskNotFound
	}

	hours := math.Max(MinBlockHours, block.DurationHours+deltaY/s.pixelsPerHour)
	block.SetStart(block.End.Add(-hoursToDuration(hours)))
	return nil
}

// ResizeFromBottom moves the block's end edge by a pointer delta, keeping the
// start fixed. The duration never shrinks below the 15-minute floor and the
// end never crosses midnight.
func (s *Session) ResizeFromBottom(taskID string, deltaY float64) error {
	block, ok := s.blocks[taskID]
	if !ok {
		return entities.ErrTaskNotFound
	}

	hours := math.Max(MinBlockHours, block.DurationHours+deltaY/s.pixelsPerHour)
	block.SetEnd(block.Start.Add(hoursToDuration(hours)))
	block.ClipToDay()
	return nil
}

// BeginDrag enters the Dragging state for a continuous resize, anchored at
// the block's current duration.
func (s *Session) BeginDrag(taskID string, edge DragEdge) error {
	block, ok := s.blocks[taskID]
	if !ok {
		return entities.ErrTaskNotFound
	}
	s.drag = &dragState{
		taskID:         taskID,
		edge:           edge,
		anchorDuration: block.DurationHours,
	}
	return nil
}

// DragTo applies the total pointer delta accumulated since BeginDrag.
// Repeating a delta reproduces the same geometry, so a jittering pointer
// stream settles wherever it ends.
func (s *Session) DragTo(totalDeltaY float64) error {
	if s.drag == nil {
		return entities.ErrTaskNotFound
	}
	block, ok := s.blocks[s.drag.taskID]
	if !ok {
		return entities.ErrTaskNotFound
	}

	hours := math.Max(MinBlockHours, s.drag.anchorDuration+totalDeltaY/s.pixelsPerHour)
	if s.drag.edge == DragTop {
		block.SetStart(block.End.Add(-hoursToDuration(hours)))
	} else {
		block.SetEnd(block.Start.Add(hoursToDuration(hours)))
		block.ClipToDay()
	}
	return nil
}

// EndDrag returns the session to Idle.
func (s *Session) EndDrag() {
	s.drag = nil
}

// Remove discards a task's block from the working set.
func (s *Session) Remove(taskID string) {
	delete(s.blocks, taskID)
}

// Block returns the block for a task id, if present.
func (s *Session) Block(taskID string) (*entities.ScheduledBlock, bool) {
	block, ok := s.blocks[taskID]
	return block, ok
}

// Blocks returns the working set ordered by start time.
func (s *Session) Blocks() []entities.ScheduledBlock {
	out := make([]entities.ScheduledBlock, 0, len(s.blocks))
	for _, b := range s.blocks {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Start.Equal(out[j].Start) {
			return out[i].Start.Before(out[j].Start)
		}
		return out[i].TaskID < out[j].TaskID
	})
	return out
}

// Len returns the number of blocks in the working set.
func (s *Session) Len() int {
	return len(s.blocks)
}
