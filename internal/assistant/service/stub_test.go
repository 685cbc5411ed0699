package service

import (
	"context"
	"time"

	"github.com/deltahacks/coursehub-backend/internal/ai/cohere"
	"github.com/deltahacks/coursehub-backend/internal/courses/domain"
)

// stubAI is a deterministic AIClient for strategy tests.
type stubAI struct {
	chatFn     func(cohere.ChatRequest) (*cohere.ChatResponse, error)
	rerankFn   func(cohere.RerankRequest) (*cohere.RerankResponse, error)
	classifyFn func(cohere.ClassifyRequest) (*cohere.ClassifyResponse, error)
}

func (s *stubAI) Chat(_ context.Context, req cohere.ChatRequest) (*cohere.ChatResponse, error) {
	return s.chatFn(req)
}

func (s *stubAI) Rerank(_ context.Context, req cohere.RerankRequest) (*cohere.RerankResponse, error) {
	return s.rerankFn(req)
}

func (s *stubAI) Classify(_ context.Context, req cohere.ClassifyRequest) (*cohere.ClassifyResponse, error) {
	return s.classifyFn(req)
}

func fixtureCourse() *domain.Course {
	room := "PG B138"
	grade := 85
	return &domain.Course{
		Code:       "SE 464",
		Name:       "Software Engineering",
		Professor:  "Patrick Lam",
		RoomNumber: &room,
		Announcements: []domain.Announcement{
			{
				Title:   "Midterm moved",
				Content: "The midterm has been moved.",
				Date:    time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC),
			},
		},
		Assignments: []domain.Assignment{
			{
				Name:        "Essay",
				DueDate:     time.Date(2026, time.October, 2, 0, 0, 0, 0, time.UTC),
				Description: "A short essay.",
				Grade:       &grade,
			},
			{
				Name:        "Quiz",
				DueDate:     time.Date(2026, time.September, 28, 0, 0, 0, 0, time.UTC),
				Description: "Weekly quiz.",
			},
		},
	}
}
