package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deltahacks/coursehub-backend/internal/ai/cohere"
)

func rerankStub(index int, score float64) *stubAI {
	return &stubAI{
		rerankFn: func(req cohere.RerankRequest) (*cohere.RerankResponse, error) {
			return &cohere.RerankResponse{
				Results: []cohere.RerankResult{{Index: index, RelevanceScore: score}},
			}, nil
		},
	}
}

func TestRerankStrategy_AcceptsAtThreshold(t *testing.T) {
	// 0.85 is a strict lower bound: the threshold itself accepts.
	s := NewRerankStrategy(rerankStub(3, 0.85), Options{})

	answer, err := s.Answer(context.Background(), Query{Course: fixtureCourse(), Question: "where is the class?"})
	require.NoError(t, err)
	assert.Equal(t, "The room number is PG B138.", answer)
}

func TestRerankStrategy_RejectsBelowThreshold(t *testing.T) {
	s := NewRerankStrategy(rerankStub(3, 0.8499), Options{})

	answer, err := s.Answer(context.Background(), Query{Course: fixtureCourse(), Question: "what is the meaning of life?"})
	require.NoError(t, err)
	assert.Equal(t, FallbackAnswer, answer)
}

func TestRerankStrategy_RequestsSingleBestMatch(t *testing.T) {
	var seen cohere.RerankRequest
	stub := &stubAI{
		rerankFn: func(req cohere.RerankRequest) (*cohere.RerankResponse, error) {
			seen = req
			return &cohere.RerankResponse{
				Results: []cohere.RerankResult{{Index: 0, RelevanceScore: 0.99}},
			}, nil
		},
	}
	s := NewRerankStrategy(stub, Options{RerankModel: "rerank-english-v3.0"})

	course := fixtureCourse()
	_, err := s.Answer(context.Background(), Query{Course: course, Question: "who teaches it?"})
	require.NoError(t, err)

	assert.Equal(t, 1, seen.TopN)
	assert.Equal(t, "who teaches it?", seen.Query)
	assert.Equal(t, "rerank-english-v3.0", seen.Model)
	assert.Equal(t, BuildDocuments(course), seen.Documents)
}

func TestRerankStrategy_ServiceFailurePropagates(t *testing.T) {
	stub := &stubAI{
		rerankFn: func(cohere.RerankRequest) (*cohere.RerankResponse, error) {
			return nil, fmt.Errorf("upstream returned status 503")
		},
	}
	s := NewRerankStrategy(stub, Options{})

	_, err := s.Answer(context.Background(), Query{Course: fixtureCourse(), Question: "anything"})
	assert.Error(t, err)
}

func TestRerankStrategy_EmptyResultsIsAnError(t *testing.T) {
	stub := &stubAI{
		rerankFn: func(cohere.RerankRequest) (*cohere.RerankResponse, error) {
			return &cohere.RerankResponse{}, nil
		},
	}
	s := NewRerankStrategy(stub, Options{})

	_, err := s.Answer(context.Background(), Query{Course: fixtureCourse(), Question: "anything"})
	assert.Error(t, err)
}

func TestRerankStrategy_Idempotent(t *testing.T) {
	s := NewRerankStrategy(rerankStub(2, 0.91), Options{})
	q := Query{Course: fixtureCourse(), Question: "who is the professor?"}

	first, err := s.Answer(context.Background(), q)
	require.NoError(t, err)
	second, err := s.Answer(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
