package scheduling

import (
	"math"
	"sort"
	"time"

	"github.com/flownote/flownote/internal/domain/entities"
	"github.com/flownote/flownote/internal/infrastructure/logger"
)

// AllocatorConfig tunes the batch allocation walk. Zero values fall back to a
// 09:00 day start and a 15-minute buffer between auto-placed blocks.
type AllocatorConfig struct {
	DayStartHour  int
	BufferMinutes int
}

// Allocator assigns start and end times to a batch of tasks on a single day.
type Allocator struct {
	dayStartHour  int
	bufferMinutes int
	log           *logger.Logger
}

// NewAllocator creates an allocator with the given configuration.
func NewAllocator(cfg AllocatorConfig, log *logger.Logger) *Allocator {
	if cfg.DayStartHour <= 0 || cfg.DayStartHour > 23 {
		cfg.DayStartHour = 9
	}
	if cfg.BufferMinutes <= 0 {
		cfg.BufferMinutes = 15
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Allocator{
		dayStartHour:  cfg.DayStartHour,
		bufferMinutes: cfg.BufferMinutes,
		log:           log,
	}
}

// AllocateAll places every task on the given day and returns exactly one
// block per input task.
//
// Tasks with a time hint in their title are pinned at that time and are not
// checked against each other for overlap; concurrent placement is accepted
// silently. Tasks without a hint walk a cursor starting at the configured day
// start, with a buffer between consecutive blocks. Blocks that would run past
// midnight are clipped to 23:59 of the day.
func (a *Allocator) AllocateAll(tasks []*entities.Task, day time.Time) []entities.ScheduledBlock {
	if len(tasks) == 0 {
		return nil
	}

	type candidate struct {
		task *entities.Task
		pref *entities.TimePreference
	}

	candidates := make([]candidate, len(tasks))
	for i, t := range tasks {
		candidates[i] = candidate{task: t, pref: ExtractTimePreference(t.Title)}
	}

	// Hinted tasks first, then by priority descending; ties keep their
	// original relative order.
	sort.SliceStable(candidates, func(i, j int) bool {
		hasI, hasJ := candidates[i].pref != nil, candidates[j].pref != nil
		if hasI != hasJ {
			return hasI
		}
		return candidates[i].task.Priority.Rank() > candidates[j].task.Priority.Rank()
	})

	midnight := dayMidnight(day)
	cursorMinutes := a.dayStartHour * 60

	blocks := make([]entities.ScheduledBlock, 0, len(candidates))
	for _, c := range candidates {
		hours, known := EffortDuration(c.task.Effort)
		if !known {
			a.log.Warnw("unrecognized effort, defaulting to medium",
				"task_id", c.task.ID,
				"effort", c.task.Effort,
			)
		}

		startMinutes := cursorMinutes
		if c.pref != nil {
			startMinutes = c.pref.PreferredHour*60 + c.pref.PreferredMinutes
		}

		block := entities.ScheduledBlock{
			TaskID: c.task.ID,
			Day:    midnight,
			Start:  midnight.Add(time.Duration(startMinutes) * time.Minute),
		}
		block.SetEnd(block.Start.Add(hoursToDuration(hours)))
		block.ClipToDay()
		blocks = append(blocks, block)

		if c.pref == nil {
			cursorMinutes += int(math.Round(hours*60)) + a.bufferMinutes
			cursorMinutes = roundToQuarter(cursorMinutes)
			if cursorMinutes >= 24*60 {
				cursorMinutes = 23 * 60
			}
		}
	}

	return blocks
}
