package service

import (
	"context"
	"fmt"
	"time"

	"github.com/deltahacks/coursehub-backend/internal/ai/cohere"
	"github.com/deltahacks/coursehub-backend/internal/courses/domain"
)

// ClassifyStrategy handles "when is X due" questions. It labels three
// paraphrased example questions with each assignment's name and lets the
// classify endpoint pick the assignment the student is asking about.
type ClassifyStrategy struct {
	client AIClient
	opts   Options
	now    func() time.Time
}

func NewClassifyStrategy(client AIClient, opts Options) *ClassifyStrategy {
	return &ClassifyStrategy{client: client, opts: opts, now: time.Now}
}

// BuildExamples generates the labeled example set for a course's assignments,
// three paraphrases per assignment.
func BuildExamples(assignments []domain.Assignment) []cohere.Example {
	out := make([]cohere.Example, 0, 3*len(assignments))
	for _, a := range assignments {
		out = append(out,
			cohere.Example{Text: fmt.Sprintf("How many days until %s is due?", a.Name), Label: a.Name},
			cohere.Example{Text: fmt.Sprintf("When is %s due?", a.Name), Label: a.Name},
			cohere.Example{Text: fmt.Sprintf("When should I submit %s?", a.Name), Label: a.Name},
		)
	}
	return out
}

func (s *ClassifyStrategy) Answer(ctx context.Context, q Query) (string, error) {
	resp, err := s.client.Classify(ctx, cohere.ClassifyRequest{
		Inputs:   []string{q.Question},
		Examples: BuildExamples(q.Course.Assignments),
		Model:    s.opts.ClassifyModel,
	})
	if err != nil {
		return "", fmt.Errorf("classify answer: %w", err)
	}
	if len(resp.Classifications) == 0 {
		return FallbackAnswer, nil
	}

	pred := resp.Classifications[0]
	if pred.Prediction == nil || pred.Confidence == nil {
		return FallbackAnswer, nil
	}

	for _, a := range q.Course.Assignments {
		if a.Name == *pred.Prediction {
			days := a.DaysUntilDue(s.now())
			return fmt.Sprintf("the assignment is due in %d days [%.2f]", days, *pred.Confidence), nil
		}
	}
	return FallbackAnswer, nil
}
