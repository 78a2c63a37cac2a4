package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/flownote/flownote/internal/domain/entities"
	"github.com/flownote/flownote/internal/infrastructure/logger"
	"github.com/flownote/flownote/internal/ports"
)

// TaskService handles task-related operations
type TaskService struct {
	taskRepo ports.TaskRepository
	logger   *logger.Logger
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo ports.TaskRepository, logger *logger.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// CreateTask creates a new task
func (s *TaskService) CreateTask(ctx context.Context, userID uuid.UUID, req ports.CreateTaskRequest) (*entities.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, &entities.ValidationError{Reason: "title is required"}
	}

	priority := req.Priority
	if !priority.IsValid() {
		priority = entities.PriorityMedium
	}

	task := &entities.Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		Effort:      req.Effort,
		DueDate:     req.DueDate,
		Tags:        req.Tags,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("Task created", "task_id", task.ID, "title", task.Title)

	return task, nil
}

// CreateFromParsed persists a batch of assistant-parsed tasks for the user.
// Entries with an empty title after trimming are skipped, not rejected.
func (s *TaskService) CreateFromParsed(ctx context.Context, userID uuid.UUID, tasks []*entities.Task) ([]*entities.Task, error) {
	created := make([]*entities.Task, 0, len(tasks))
	for _, task := range tasks {
		if strings.TrimSpace(task.Title) == "" {
			s.logger.Debug("Skipping parsed task with empty title", "task_id", task.ID)
			continue
		}
		task.UserID = userID
		task.CreatedAt = time.Now()
		task.UpdatedAt = time.Now()
		if err := s.taskRepo.Create(ctx, task); err != nil {
			return created, fmt.Errorf("failed to create parsed task %q: %w", task.Title, err)
		}
		created = append(created, task)
	}

	if len(created) > 0 {
		s.logger.Info("Parsed tasks created", "user_id", userID, "count", len(created))
	}

	return created, nil
}

// GetTask retrieves a task by ID
func (s *TaskService) GetTask(ctx context.Context, userID uuid.UUID, id string) (*entities.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("task not found: %w", err)
	}

	return task, nil
}

// UpdateTask updates a task's information
func (s *TaskService) UpdateTask(ctx context.Context, userID uuid.UUID, id string, req ports.UpdateTaskRequest) (*entities.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("task not found: %w", err)
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, &entities.ValidationError{Reason: "title cannot be empty"}
		}
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Effort != nil {
		task.Effort = req.Effort
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.Tags != nil {
		task.Tags = req.Tags
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Info("Task updated", "task_id", task.ID)

	return task, nil
}

// DeleteTask deletes a task
func (s *TaskService) DeleteTask(ctx context.Context, userID uuid.UUID, id string) error {
	if _, err := s.taskRepo.GetByID(ctx, userID, id); err != nil {
		return fmt.Errorf("task not found: %w", err)
	}

	if err := s.taskRepo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Info("Task deleted", "task_id", id)

	return nil
}

// ListTasks retrieves tasks with filtering
func (s *TaskService) ListTasks(ctx context.Context, userID uuid.UUID, filter ports.TaskFilter) ([]*entities.Task, error) {
	tasks, err := s.taskRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}
