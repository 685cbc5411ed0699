package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deltahacks/coursehub-backend/internal/courses/domain"
	"github.com/deltahacks/coursehub-backend/internal/courses/repository"
)

// setupTestPostgres creates a test PostgreSQL connection.
// Skips the test if TEST_DB_DSN is not set. You can set TEST_DB_DSN directly,
// or use individual env vars:
//
//	TEST_DB_HOST, TEST_DB_PORT, TEST_DB_USER, TEST_DB_PASSWORD, TEST_DB_NAME
func setupTestPostgres(t *testing.T) (string, *sql.DB) {
	dsn := os.Getenv("TEST_DB_DSN")

	if dsn == "" {
		host := os.Getenv("TEST_DB_HOST")
		port := os.Getenv("TEST_DB_PORT")
		user := os.Getenv("TEST_DB_USER")
		password := os.Getenv("TEST_DB_PASSWORD")
		dbname := os.Getenv("TEST_DB_NAME")

		if host != "" && port != "" && user != "" && dbname != "" {
			dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
				host, port, user, password, dbname)
		} else {
			t.Skip("TEST_DB_DSN or TEST_DB_* environment variables not set, skipping PostgreSQL integration test")
		}
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Ping())

	return dsn, db
}

func createCourseSchema(t *testing.T, db *sql.DB) {
	t.Helper()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS courses (
			code TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			professor TEXT NOT NULL,
			room_number TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS announcements (
			id SERIAL PRIMARY KEY,
			course_code TEXT NOT NULL REFERENCES courses(code),
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			posted_on TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS assignments (
			id SERIAL PRIMARY KEY,
			course_code TEXT NOT NULL REFERENCES courses(code),
			name TEXT NOT NULL,
			due_date TIMESTAMPTZ NOT NULL,
			description TEXT NOT NULL,
			grade INT
		)`,
	}
	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
}

func TestPostgresCatalog(t *testing.T) {
	dsn, db := setupTestPostgres(t)
	defer db.Close()

	createCourseSchema(t, db)

	code := "IT 999"
	_, err := db.Exec(`DELETE FROM announcements WHERE course_code = $1`, code)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM assignments WHERE course_code = $1`, code)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM courses WHERE code = $1`, code)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO courses (code, name, professor, room_number) VALUES ($1, $2, $3, $4)`,
		code, "Integration Testing", "Ada Lovelace", "IT 100")
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO assignments (course_code, name, due_date, description) VALUES ($1, $2, NOW() + INTERVAL '7 days', $3)`,
		code, "Lab 1", "Write an integration test.")
	require.NoError(t, err)

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	repo := repository.NewPostgresRepository(pool)

	course, err := repo.GetByCode(ctx, code)
	require.NoError(t, err)
	assert.Equal(t, "Integration Testing", course.Name)
	require.NotNil(t, course.RoomNumber)
	assert.Equal(t, "IT 100", *course.RoomNumber)
	require.Len(t, course.Assignments, 1)
	assert.Equal(t, "Lab 1", course.Assignments[0].Name)
	assert.Nil(t, course.Assignments[0].Grade)

	_, err = repo.GetByCode(ctx, "NO SUCH")
	assert.ErrorIs(t, err, domain.ErrCourseNotFound)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, all)
}
