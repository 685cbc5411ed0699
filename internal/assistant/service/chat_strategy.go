package service

import (
	"context"
	"fmt"

	"github.com/deltahacks/coursehub-backend/internal/ai/cohere"
)

// ChatStrategy forwards the raw question to the chat endpoint with a fixed
// persona. It has no course grounding and no confidence gate; the external
// service keeps any conversational history, keyed by the conversation ID we
// forward.
type ChatStrategy struct {
	client AIClient
	opts   Options
}

func NewChatStrategy(client AIClient, opts Options) *ChatStrategy {
	return &ChatStrategy{client: client, opts: opts}
}

func (s *ChatStrategy) Answer(ctx context.Context, q Query) (string, error) {
	resp, err := s.client.Chat(ctx, cohere.ChatRequest{
		Message:        q.Question,
		Model:          s.opts.ChatModel,
		Preamble:       Persona,
		ConversationID: q.ConversationID,
		MaxTokens:      s.opts.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat answer: %w", err)
	}
	return resp.Text, nil
}
