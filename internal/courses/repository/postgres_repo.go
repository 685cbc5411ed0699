package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deltahacks/coursehub-backend/internal/courses/domain"
)

// PostgresRepository is a Provider backed by a courses/announcements/assignments
// schema. It is selected at boot when DB_DSN is configured; the in-memory
// catalog is the default.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new catalog over the given pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByCode returns the course with the given code, including its
// announcements and assignments in stored order.
func (r *PostgresRepository) GetByCode(ctx context.Context, code string) (*domain.Course, error) {
	const q = `
SELECT code, name, professor, room_number
FROM courses
WHERE code = $1;
`
	var c domain.Course
	err := r.db.QueryRow(ctx, q, code).
		Scan(&c.Code, &c.Name, &c.Professor, &c.RoomNumber)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}

	if c.Announcements, err = r.announcements(ctx, code); err != nil {
		return nil, err
	}
	if c.Assignments, err = r.assignments(ctx, code); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all courses without their announcement/assignment details.
func (r *PostgresRepository) List(ctx context.Context) ([]domain.Course, error) {
	const q = `
SELECT code, name, professor, room_number
FROM courses
ORDER BY code;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Course, 0, 16)
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.Code, &c.Name, &c.Professor, &c.RoomNumber); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) announcements(ctx context.Context, code string) ([]domain.Announcement, error) {
	const q = `
SELECT title, content, posted_on
FROM announcements
WHERE course_code = $1
ORDER BY posted_on, title;
`
	rows, err := r.db.Query(ctx, q, code)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Announcement
	for rows.Next() {
		var a domain.Announcement
		if err := rows.Scan(&a.Title, &a.Content, &a.Date); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) assignments(ctx context.Context, code string) ([]domain.Assignment, error) {
	const q = `
SELECT name, due_date, description, grade
FROM assignments
WHERE course_code = $1
ORDER BY due_date, name;
`
	rows, err := r.db.Query(ctx, q, code)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Assignment
	for rows.Next() {
		var a domain.Assignment
		if err := rows.Scan(&a.Name, &a.DueDate, &a.Description, &a.Grade); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
