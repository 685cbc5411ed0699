package repository

import (
	"context"

	"github.com/deltahacks/coursehub-backend/internal/courses/domain"
)

// MemoryRepository serves a fixed catalog from memory. The slice is never
// written after construction, so it is safe for concurrent readers.
type MemoryRepository struct {
	courses []domain.Course
}

// NewMemoryRepository creates a catalog over the given courses.
func NewMemoryRepository(courses []domain.Course) *MemoryRepository {
	return &MemoryRepository{courses: courses}
}

// GetByCode returns the course with the given code.
func (r *MemoryRepository) GetByCode(_ context.Context, code string) (*domain.Course, error) {
	for i := range r.courses {
		if r.courses[i].Code == code {
			c := r.courses[i]
			return &c, nil
		}
	}
	return nil, domain.ErrCourseNotFound
}

// List returns all courses in catalog order.
func (r *MemoryRepository) List(_ context.Context) ([]domain.Course, error) {
	out := make([]domain.Course, len(r.courses))
	copy(out, r.courses)
	return out, nil
}
