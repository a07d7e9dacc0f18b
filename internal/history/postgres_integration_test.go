package history

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mveiros/ironwood-companion/internal/database"
	"github.com/mveiros/ironwood-companion/internal/domain"
)

func TestPostgresRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(5*time.Second)),
		)
	}()

	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	if pgContainer == nil {
		return
	}
	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %v", err)
		}
	}()

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	if err := database.Migrate(ctx, connStr); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	pool, err := database.NewPool(ctx, connStr)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	repo := NewPostgresRepository(pool)

	t.Run("Record and Recent", func(t *testing.T) {
		first := &domain.SearchEntry{
			ID:         uuid.NewString(),
			SearchType: domain.SearchTypePlayer,
			Query:      "Woody",
			SearchedAt: time.Now().Add(-time.Minute),
		}
		second := &domain.SearchEntry{
			ID:         uuid.NewString(),
			SearchType: domain.SearchTypeClan,
			Query:      "Ironborn",
			SearchedAt: time.Now(),
		}

		if err := repo.Record(ctx, first); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
		if err := repo.Record(ctx, second); err != nil {
			t.Fatalf("Record failed: %v", err)
		}

		entries, err := repo.Recent(ctx, 10)
		if err != nil {
			t.Fatalf("Recent failed: %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}
		if entries[0].Query != "Ironborn" {
			t.Errorf("expected newest entry first, got %q", entries[0].Query)
		}
		if entries[1].SearchType != domain.SearchTypePlayer {
			t.Errorf("unexpected search type %q", entries[1].SearchType)
		}
	})

	t.Run("Recent respects the limit", func(t *testing.T) {
		entries, err := repo.Recent(ctx, 1)
		if err != nil {
			t.Fatalf("Recent failed: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
	})

	t.Run("invalid search type rejected by constraint", func(t *testing.T) {
		bad := &domain.SearchEntry{
			ID:         uuid.NewString(),
			SearchType: "recipe",
			Query:      "nope",
			SearchedAt: time.Now(),
		}
		if err := repo.Record(ctx, bad); err == nil {
			t.Error("expected the check constraint to reject the entry")
		}
	})
}
