package repository

import (
	"context"

	"github.com/deltahacks/coursehub-backend/internal/courses/domain"
)

// Provider is a read-only source of course records. Implementations must
// return domain.ErrCourseNotFound for unknown codes, never a zero-value course.
type Provider interface {
	GetByCode(ctx context.Context, code string) (*domain.Course, error)
	List(ctx context.Context) ([]domain.Course, error)
}
