package service

import (
	"context"
)

// CompletionClient is the interface for chat-completion providers
type CompletionClient interface {
	// Complete sends one chat completion request and returns the text of the first choice
	Complete(ctx context.Context, messages []ChatMessage) (string, error)

	// IsEnabled returns whether the client is configured and ready
	IsEnabled() bool
}

// ChatMessage represents a single message in the conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Ensure OpenAIClient implements CompletionClient
var _ CompletionClient = (*OpenAIClient)(nil)
