package service

import (
	"context"
	"fmt"

	"github.com/deltahacks/coursehub-backend/internal/ai/cohere"
)

// RerankStrategy answers grounded questions: it synthesizes the course's
// answer documents, asks the rerank endpoint for the single best match, and
// only trusts it above RelevanceThreshold. The score itself is not shown to
// the user.
type RerankStrategy struct {
	client AIClient
	opts   Options
}

func NewRerankStrategy(client AIClient, opts Options) *RerankStrategy {
	return &RerankStrategy{client: client, opts: opts}
}

func (s *RerankStrategy) Answer(ctx context.Context, q Query) (string, error) {
	docs := BuildDocuments(q.Course)

	resp, err := s.client.Rerank(ctx, cohere.RerankRequest{
		Query:     q.Question,
		Documents: docs,
		Model:     s.opts.RerankModel,
		TopN:      1,
	})
	if err != nil {
		return "", fmt.Errorf("rerank answer: %w", err)
	}
	if len(resp.Results) == 0 {
		return "", fmt.Errorf("rerank answer: empty result set")
	}

	best := resp.Results[0]
	if best.RelevanceScore < RelevanceThreshold {
		return FallbackAnswer, nil
	}
	if best.Index < 0 || best.Index >= len(docs) {
		return "", fmt.Errorf("rerank answer: result index %d out of range", best.Index)
	}
	return docs[best.Index], nil
}
