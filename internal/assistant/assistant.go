package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/flownote/flownote/internal/domain/entities"
	"github.com/flownote/flownote/internal/infrastructure/logger"
)

const systemPrompt = `You are FlowNote, a friendly productivity assistant. You help the user plan
their day, break work into tasks, and reflect on their habits and journal.

Context:
- Current date and time: %s, %s %s

When the user asks you to create, plan, or organize tasks, include a single
machine-readable block in your reply, wrapped exactly like this:

[[tasks]]
{"tasks": [{"title": "string", "description": "string", "priority": "low" or "medium" or "high", "effort": "small" or "medium" or "large", "tags": ["string"]}]}
[[/tasks]]

Rules for the block:
1. Emit at most one block per reply, and only when the user wants tasks.
2. Titles may include a time hint such as "at 10:30am" or "in the evening"
   when the user mentions one; the scheduler reads it from the title.
3. Physical activities (workouts, runs, stretching) get the tag "physical"
   and no effort field.
4. Everything outside the block is your conversational reply to the user.`

// ChatResult is an assistant reply split into display text and any tasks the
// model proposed.
type ChatResult struct {
	Reply string           `json:"reply"`
	Tasks []*entities.Task `json:"tasks"`
}

// Assistant drives a chat turn: prompt the model, then parse its reply.
type Assistant struct {
	client Client
	parser *Parser
	log    *logger.Logger
}

// New creates an assistant over the given model client.
func New(client Client, log *logger.Logger) *Assistant {
	if log == nil {
		log = logger.NewNop()
	}
	return &Assistant{
		client: client,
		parser: NewParser(log),
		log:    log,
	}
}

// Chat sends the user's message to the model and returns the reply text with
// any structured tasks extracted from it.
func (a *Assistant) Chat(ctx context.Context, input string, now time.Time) (*ChatResult, error) {
	prompt := fmt.Sprintf(systemPrompt,
		now.Format("Monday"),
		now.Format("2006-01-02"),
		now.Format("15:04"),
	)

	raw, err := a.client.Chat(ctx, []Message{
		{Role: "system", Content: prompt},
		{Role: "user", Content: input},
	})
	if err != nil {
		return nil, fmt.Errorf("assistant chat: %w", err)
	}

	text, tasks := a.parser.ParseResponse(raw)
	if len(tasks) > 0 {
		a.log.Infow("assistant proposed tasks", "count", len(tasks))
	}

	return &ChatResult{Reply: text, Tasks: tasks}, nil
}
