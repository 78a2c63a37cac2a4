package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flownote/flownote/internal/assistant"
	"github.com/flownote/flownote/internal/infrastructure/logger"
)

// AssistantService runs chat turns against the language model and persists
// any tasks the model proposes.
type AssistantService struct {
	assistant   *assistant.Assistant
	taskService *TaskService
	logger      *logger.Logger
}

// NewAssistantService creates a new assistant service
func NewAssistantService(a *assistant.Assistant, taskService *TaskService, logger *logger.Logger) *AssistantService {
	return &AssistantService{
		assistant:   a,
		taskService: taskService,
		logger:      logger,
	}
}

// Chat sends the user's message to the model, stores any proposed tasks, and
// returns the reply with the created tasks.
func (s *AssistantService) Chat(ctx context.Context, userID uuid.UUID, message string) (*assistant.ChatResult, error) {
	result, err := s.assistant.Chat(ctx, message, time.Now())
	if err != nil {
		return nil, fmt.Errorf("assistant chat failed: %w", err)
	}

	if len(result.Tasks) > 0 {
		created, err := s.taskService.CreateFromParsed(ctx, userID, result.Tasks)
		if err != nil {
			// The reply itself is still useful; report what was stored.
			s.logger.Error("Failed to store assistant tasks", "error", err, "user_id", userID)
		}
		result.Tasks = created
	}

	return result, nil
}
