package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deltahacks/coursehub-backend/internal/ai/cohere"
)

func TestChatStrategy_ForwardsPersonaAndConversation(t *testing.T) {
	var seen cohere.ChatRequest
	stub := &stubAI{
		chatFn: func(req cohere.ChatRequest) (*cohere.ChatResponse, error) {
			seen = req
			return &cohere.ChatResponse{Text: "The midterm is next week."}, nil
		},
	}

	s := NewChatStrategy(stub, Options{ChatModel: "command-r", MaxTokens: 100})

	answer, err := s.Answer(context.Background(), Query{
		Question:       "when is the midterm?",
		ConversationID: "conv-123",
	})
	require.NoError(t, err)

	// The reply comes back verbatim, no gating.
	assert.Equal(t, "The midterm is next week.", answer)

	assert.Equal(t, "when is the midterm?", seen.Message)
	assert.Equal(t, Persona, seen.Preamble)
	assert.Equal(t, "conv-123", seen.ConversationID)
	assert.Equal(t, "command-r", seen.Model)
	assert.Equal(t, 100, seen.MaxTokens)
}

func TestNewStrategy(t *testing.T) {
	stub := &stubAI{}

	for _, name := range []string{"chat", "rerank", "classify"} {
		s, err := NewStrategy(name, stub, Options{})
		require.NoError(t, err, name)
		assert.NotNil(t, s, name)
	}

	_, err := NewStrategy("oracle", stub, Options{})
	assert.Error(t, err)
}
