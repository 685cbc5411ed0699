package bootstrap

import (
	"context"
	"log"

	"github.com/deltahacks/coursehub-backend/internal/courses/repository"
)

// OpenCatalog picks the course provider: Postgres when a DSN is configured,
// otherwise the compiled-in catalog.
func OpenCatalog(ctx context.Context, dsn string) (repository.Provider, error) {
	if dsn == "" {
		log.Println("No DB_DSN set, serving the compiled-in course catalog")
		return repository.NewMemoryRepository(repository.SeedCourses()), nil
	}

	pool, err := OpenDB(ctx, DBOptions{DSN: dsn})
	if err != nil {
		return nil, err
	}
	return repository.NewPostgresRepository(pool), nil
}
