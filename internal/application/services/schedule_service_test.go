package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/flownote/flownote/internal/domain/entities"
	"github.com/flownote/flownote/internal/infrastructure/logger"
	"github.com/flownote/flownote/internal/ports"
	"github.com/flownote/flownote/internal/scheduling"
)

type fakeTaskRepo struct {
	tasks map[string]*entities.Task
}

func (f *fakeTaskRepo) Create(_ context.Context, task *entities.Task) error {
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeTaskRepo) GetByID(_ context.Context, _ uuid.UUID, id string) (*entities.Task, error) {
	task, ok := f.tasks[id]
	if !ok {
		return nil, entities.ErrTaskNotFound
	}
	return task, nil
}

func (f *fakeTaskRepo) Update(_ context.Context, _ *entities.Task) error { return nil }

func (f *fakeTaskRepo) Delete(_ context.Context, _ uuid.UUID, _ string) error { return nil }

func (f *fakeTaskRepo) List(_ context.Context, _ uuid.UUID, _ ports.TaskFilter) ([]*entities.Task, error) {
	out := make([]*entities.Task, 0, len(f.tasks))
	for _, t := range f.tasks {
		out = append(out, t)
	}
	return out, nil
}

// fakeEventRepo records created events and fails writes whose title is in
// failTitles.
type fakeEventRepo struct {
	mu         sync.Mutex
	created    []*entities.CalendarEvent
	failTitles map[string]bool
}

func (f *fakeEventRepo) Create(_ context.Context, event *entities.CalendarEvent) error {
	if f.failTitles[event.Title] {
		return errors.New("write rejected")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, event)
	return nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, _ uuid.UUID, _ string) (*entities.CalendarEvent, error) {
	return nil, entities.ErrEventNotFound
}

func (f *fakeEventRepo) Update(_ context.Context, _ *entities.CalendarEvent) error { return nil }

func (f *fakeEventRepo) Delete(_ context.Context, _ uuid.UUID, _ string) error { return nil }

func (f *fakeEventRepo) ListForDay(_ context.Context, _ uuid.UUID, _ time.Time) ([]*entities.CalendarEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entities.CalendarEvent(nil), f.created...), nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	fired int
}

func (f *fakeNotifier) DataChanged(_ uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fired++
}

func newScheduleFixture(failTitles ...string) (*ScheduleService, *fakeTaskRepo, *fakeEventRepo, *fakeNotifier) {
	taskRepo := &fakeTaskRepo{tasks: make(map[string]*entities.Task)}
	failing := make(map[string]bool)
	for _, title := range failTitles {
		failing[title] = true
	}
	eventRepo := &fakeEventRepo{failTitles: failing}
	notifier := &fakeNotifier{}
	allocator := scheduling.NewAllocator(scheduling.AllocatorConfig{}, nil)
	svc := NewScheduleService(taskRepo, eventRepo, allocator, notifier, logger.NewNop())
	return svc, taskRepo, eventRepo, notifier
}

func blockFor(taskID string, day time.Time, startHour, minutes int) entities.ScheduledBlock {
	start := time.Date(day.Year(), day.Month(), day.Day(), startHour, 0, 0, 0, time.UTC)
	b := entities.ScheduledBlock{TaskID: taskID, Day: day, Start: start}
	b.SetEnd(start.Add(time.Duration(minutes) * time.Minute))
	return b
}

func TestSave_NothingToSchedule(t *testing.T) {
	svc, _, eventRepo, _ := newScheduleFixture()
	userID := uuid.New()

	_, err := svc.Save(context.Background(), userID, nil)
	var validationErr *entities.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	// Blocks missing an endpoint do not count either.
	_, err = svc.Save(context.Background(), userID, []entities.ScheduledBlock{{TaskID: "t1"}})
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError for incomplete blocks, got %v", err)
	}

	if len(eventRepo.created) != 0 {
		t.Errorf("expected no writes, got %d", len(eventRepo.created))
	}
}

func TestSave_PartialFailureKeepsSucceededWrites(t *testing.T) {
	svc, taskRepo, eventRepo, notifier := newScheduleFixture("second")
	userID := uuid.New()
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	for _, title := range []string{"first", "second", "third"} {
		taskRepo.tasks[title] = &entities.Task{ID: title, UserID: userID, Title: title}
	}

	blocks := []entities.ScheduledBlock{
		blockFor("first", day, 9, 30),
		blockFor("second", day, 10, 30),
		blockFor("third", day, 11, 30),
	}

	saved, err := svc.Save(context.Background(), userID, blocks)

	var partial *entities.PartialFailureError
	if !errors.As(err, &partial) {
		t.Fatalf("expected PartialFailureError, got %v", err)
	}
	if partial.SuccessCount != 2 || partial.FailureCount != 1 {
		t.Errorf("expected success=2 failure=1, got success=%d failure=%d",
			partial.SuccessCount, partial.FailureCount)
	}
	if saved != 2 {
		t.Errorf("expected saved count 2, got %d", saved)
	}

	// The writes that succeeded are not rolled back.
	if len(eventRepo.created) != 2 {
		t.Fatalf("expected 2 persisted events, got %d", len(eventRepo.created))
	}
	for _, event := range eventRepo.created {
		if event.Title == "second" {
			t.Errorf("failed write should not be persisted")
		}
		if event.Category != entities.EventCategoryTaskBlock {
			t.Errorf("expected category %q, got %q", entities.EventCategoryTaskBlock, event.Category)
		}
	}

	if notifier.fired != 0 {
		t.Errorf("refresh must not fire on partial failure")
	}
}

func TestSave_FullSuccessNotifies(t *testing.T) {
	svc, taskRepo, eventRepo, notifier := newScheduleFixture()
	userID := uuid.New()
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	notes := "quarterly numbers"
	taskRepo.tasks["t1"] = &entities.Task{ID: "t1", UserID: userID, Title: "Write report", Description: &notes}

	saved, err := svc.Save(context.Background(), userID, []entities.ScheduledBlock{blockFor("t1", day, 9, 90)})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved != 1 {
		t.Errorf("expected saved count 1, got %d", saved)
	}
	if notifier.fired != 1 {
		t.Errorf("expected one refresh notification, got %d", notifier.fired)
	}

	event := eventRepo.created[0]
	if event.Title != "Write report" {
		t.Errorf("event title: expected task title, got %q", event.Title)
	}
	if event.Notes == nil || *event.Notes != notes {
		t.Errorf("event notes: expected task description, got %v", event.Notes)
	}
	if event.UserID != userID {
		t.Errorf("event user: expected %s, got %s", userID, event.UserID)
	}
}

func TestAllocateDay_FiltersToRequestedTasks(t *testing.T) {
	svc, taskRepo, _, _ := newScheduleFixture()
	userID := uuid.New()
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	small := entities.EffortSmall
	taskRepo.tasks["a"] = &entities.Task{ID: "a", UserID: userID, Title: "one", Effort: &small}
	taskRepo.tasks["b"] = &entities.Task{ID: "b", UserID: userID, Title: "two", Effort: &small}

	blocks, err := svc.AllocateDay(context.Background(), userID, day, []string{"b"})
	if err != nil {
		t.Fatalf("AllocateDay: %v", err)
	}
	if len(blocks) != 1 || blocks[0].TaskID != "b" {
		t.Errorf("expected a single block for task b, got %+v", blocks)
	}
}
