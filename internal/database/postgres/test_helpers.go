package postgres

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/editorbox/EditorBox_Go/internal/database"
)

var (
	testPoolOnce sync.Once
	testPool     *pgxpool.Pool
	testPoolErr  error
)

// setupTestDB returns a pool against TEST_DATABASE_URL with migrations
// applied, or skips the test when the variable is unset.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	testPoolOnce.Do(func() {
		if err := database.Migrate(connString); err != nil {
			testPoolErr = err
			return
		}
		testPool, testPoolErr = pgxpool.New(context.Background(), connString)
	})
	if testPoolErr != nil {
		t.Fatalf("failed to set up test database: %v", testPoolErr)
	}

	cleanTables(t, testPool)
	return testPool
}

func cleanTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	for _, table := range []string{"player_progress", "owned_items", "notes"} {
		if _, err := pool.Exec(context.Background(), "TRUNCATE "+table); err != nil {
			t.Fatalf("failed to truncate %s: %v", table, err)
		}
	}
}
