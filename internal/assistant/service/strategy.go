package service

import (
	"context"
	"fmt"

	"github.com/deltahacks/coursehub-backend/internal/ai/cohere"
	"github.com/deltahacks/coursehub-backend/internal/courses/domain"
)

const (
	// RelevanceThreshold is the minimum rerank score for an answer to be
	// trusted. Reranking always returns some best match, so anything below
	// this is treated as "no real answer".
	RelevanceThreshold = 0.85

	// FallbackAnswer is returned whenever scoring rejects the best candidate.
	FallbackAnswer = "I don't understand the question."

	// Persona keeps chat replies short.
	Persona = "Reply as concisely as possible, in at most one sentence."
)

// AIClient is the slice of the external AI service the strategies need.
type AIClient interface {
	Chat(ctx context.Context, req cohere.ChatRequest) (*cohere.ChatResponse, error)
	Rerank(ctx context.Context, req cohere.RerankRequest) (*cohere.RerankResponse, error)
	Classify(ctx context.Context, req cohere.ClassifyRequest) (*cohere.ClassifyResponse, error)
}

// Query is one student question. Course is nil for ungrounded chat;
// ConversationID is only meaningful to the chat strategy.
type Query struct {
	Course         *domain.Course
	Question       string
	ConversationID string
}

// Strategy turns a query into a user-facing answer string. Exactly one
// strategy is active per deployment, chosen at construction time.
type Strategy interface {
	Answer(ctx context.Context, q Query) (string, error)
}

// Options carries model configuration shared by the strategies.
type Options struct {
	ChatModel     string
	RerankModel   string
	ClassifyModel string
	MaxTokens     int
}

// NewStrategy builds the strategy named by AI_STRATEGY.
func NewStrategy(name string, client AIClient, opts Options) (Strategy, error) {
	switch name {
	case "chat":
		return NewChatStrategy(client, opts), nil
	case "rerank":
		return NewRerankStrategy(client, opts), nil
	case "classify":
		return NewClassifyStrategy(client, opts), nil
	default:
		return nil, fmt.Errorf("unknown answer strategy %q", name)
	}
}
