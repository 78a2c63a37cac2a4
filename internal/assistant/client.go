// Package assistant talks to the chat model and turns its replies into
// structured tasks.
package assistant

import (
	"context"
)

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client defines the interface to the text-generation service. The service is
// opaque; the only contract FlowNote relies on is the delimited task-block
// convention handled by the Parser.
type Client interface {
	// Chat sends messages to the model and returns the raw response text.
	Chat(ctx context.Context, messages []Message) (string, error)
}
