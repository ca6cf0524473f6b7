package repository

import "context"

// CompletionRepository defines the interface to the chat-completion model
// used for free-form itinerary extraction
type CompletionRepository interface {
	Complete(ctx context.Context, systemPrompt, userContent string, maxTokens int) (string, error)
}
