package assistant

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/flownote/flownote/internal/domain/entities"
	"github.com/flownote/flownote/internal/infrastructure/logger"
)

// Delimiters wrapping the structured task payload inside an assistant reply.
const (
	taskBlockOpen  = "[[tasks]]"
	taskBlockClose = "[[/tasks]]"
)

type taskPayload struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Priority    string   `json:"priority"`
	Effort      *string  `json:"effort"`
	Tags        []string `json:"tags"`
}

type tasksEnvelope struct {
	Tasks []taskPayload `json:"tasks"`
}

// Parser extracts a structured task list from assistant replies.
type Parser struct {
	log *logger.Logger
}

// NewParser creates a parser.
func NewParser(log *logger.Logger) *Parser {
	if log == nil {
		log = logger.NewNop()
	}
	return &Parser{log: log}
}

// ParseResponse splits a raw assistant reply into display text and the tasks
// carried in its delimited block, if any. A missing or malformed block is not
// an error: the whole reply comes back as text with no tasks. The function
// never fails on arbitrary input.
func (p *Parser) ParseResponse(raw string) (string, []*entities.Task) {
	open := strings.Index(raw, taskBlockOpen)
	if open < 0 {
		return raw, nil
	}

	rest := raw[open+len(taskBlockOpen):]
	closing := strings.Index(rest, taskBlockClose)
	if closing < 0 {
		return raw, nil
	}

	var envelope tasksEnvelope
	if err := json.Unmarshal([]byte(rest[:closing]), &envelope); err != nil {
		p.log.Warnw("malformed task block in assistant reply, ignoring", "error", err)
		return raw, nil
	}

	tasks := make([]*entities.Task, 0, len(envelope.Tasks))
	for _, item := range envelope.Tasks {
		tasks = append(tasks, buildTask(item))
	}

	text := strings.TrimSpace(raw[:open] + rest[closing+len(taskBlockClose):])
	return text, tasks
}

func buildTask(item taskPayload) *entities.Task {
	task := &entities.Task{
		ID:       uuid.NewString(),
		Title:    item.Title,
		Priority: entities.PriorityMedium,
		Tags:     []string{},
	}

	if p := entities.Priority(strings.ToLower(item.Priority)); p.IsValid() {
		task.Priority = p
	}
	if item.Description != nil && *item.Description != "" {
		task.Description = item.Description
	}
	if len(item.Tags) > 0 {
		task.Tags = item.Tags
	}

	// Physical activities have no schedulable duration: an explicit
	// "physical" tag or a missing effort both mark one, and any provided
	// effort value is discarded in that case.
	physical := item.Effort == nil
	for _, tag := range item.Tags {
		if tag == "physical" {
			physical = true
		}
	}

	if !physical {
		effort := entities.Effort(strings.ToLower(*item.Effort))
		if !effort.IsValid() {
			effort = entities.EffortMedium
		}
		task.Effort = &effort
	}

	return task
}
