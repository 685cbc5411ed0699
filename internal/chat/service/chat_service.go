package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	assistant "github.com/deltahacks/coursehub-backend/internal/assistant/service"
	"github.com/deltahacks/coursehub-backend/internal/chat/domain"
	"github.com/deltahacks/coursehub-backend/internal/chat/repository"
)

// ChatService handles the ungrounded conversational flow: it forwards the
// message (and conversation ID) to the chat strategy and mirrors the exchange
// into the transcript store.
type ChatService struct {
	strategy assistant.Strategy
	repo     *repository.ConversationRepository
}

func NewChatService(strategy assistant.Strategy, repo *repository.ConversationRepository) *ChatService {
	return &ChatService{strategy: strategy, repo: repo}
}

// Send forwards one chat turn. A blank conversationID starts a new
// conversation.
func (s *ChatService) Send(ctx context.Context, conversationID, message string) (*domain.Conversation, string, error) {
	if conversationID == "" {
		conversationID = uuid.New().String()
	}

	reply, err := s.strategy.Answer(ctx, assistant.Query{
		Question:       message,
		ConversationID: conversationID,
	})
	if err != nil {
		return nil, "", fmt.Errorf("chat send: %w", err)
	}

	conv, err := s.repo.AppendTurn(ctx, conversationID, message, reply)
	if err != nil {
		return nil, "", fmt.Errorf("chat transcript: %w", err)
	}
	return conv, reply, nil
}

// Transcript returns the stored transcript for a conversation.
func (s *ChatService) Transcript(ctx context.Context, conversationID string) (*domain.Conversation, error) {
	return s.repo.Get(ctx, conversationID)
}
