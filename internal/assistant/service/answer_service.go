package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/deltahacks/coursehub-backend/internal/courses/repository"
)

// AnswerService resolves a course and delegates the question to the active
// strategy. Course lookup failures propagate unchanged so the handler can
// respond 404.
type AnswerService struct {
	catalog  repository.Provider
	strategy Strategy
}

func NewAnswerService(catalog repository.Provider, strategy Strategy) *AnswerService {
	return &AnswerService{catalog: catalog, strategy: strategy}
}

// Ask answers a free-text question about the course with the given code.
func (s *AnswerService) Ask(ctx context.Context, code, question, conversationID string) (string, error) {
	course, err := s.catalog.GetByCode(ctx, code)
	if err != nil {
		return "", err
	}

	answer, err := s.strategy.Answer(ctx, Query{
		Course:         course,
		Question:       strings.TrimSpace(question),
		ConversationID: conversationID,
	})
	if err != nil {
		return "", fmt.Errorf("answer %s: %w", code, err)
	}
	return answer, nil
}
