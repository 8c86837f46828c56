package repository_test

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ekrsw/knowledge-app-sub000/internal/domain"
)

// TestDB holds the test database connection and container
type TestDB struct {
	Pool      *pgxpool.Pool
	Container testcontainers.Container
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL container and applies migrations
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	ctx := context.Background()

	// Get the migrations directory path
	_, currentFile, _, _ := runtime.Caller(0)
	migrationsPath := filepath.Join(filepath.Dir(currentFile), "..", "..", "migrations")

	// Create PostgreSQL container
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to get connection string: %v", err)
	}

	// Run migrations
	m, err := migrate.New(
		fmt.Sprintf("file://%s", migrationsPath),
		connStr,
	)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to create migrate instance: %v", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to run migrations: %v", err)
	}
	m.Close()

	// Create connection pool
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		pgContainer.Terminate(ctx)
		t.Fatalf("Failed to create connection pool: %v", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		pgContainer.Terminate(ctx)
		t.Fatalf("Failed to ping database: %v", err)
	}

	return &TestDB{
		Pool:      pool,
		Container: pgContainer,
		ConnStr:   connStr,
	}
}

// Cleanup closes the connection pool and terminates the container
func (tdb *TestDB) Cleanup(t *testing.T) {
	t.Helper()
	if tdb.Pool != nil {
		tdb.Pool.Close()
	}
	if tdb.Container != nil {
		if err := tdb.Container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	}
}

// TruncateTables clears all data from tables for test isolation
func (tdb *TestDB) TruncateTables(t *testing.T, tables ...string) {
	t.Helper()
	ctx := context.Background()
	for _, table := range tables {
		_, err := tdb.Pool.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			t.Fatalf("Failed to truncate table %s: %v", table, err)
		}
	}
}

// InsertUser seeds a user row and returns it.
func (tdb *TestDB) InsertUser(t *testing.T, role, approvalGroup string, active bool) *domain.User {
	t.Helper()
	now := time.Now().UTC()
	u := &domain.User{
		ID:            uuid.New().String(),
		Email:         uuid.New().String() + "@example.com",
		Name:          "User " + uuid.New().String()[:8],
		Role:          role,
		ApprovalGroup: approvalGroup,
		Active:        active,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := tdb.Pool.Exec(context.Background(), `
		INSERT INTO users (id, email, name, role, approval_group, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		u.ID, u.Email, u.Name, u.Role, u.ApprovalGroup, u.Active, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("Failed to insert user: %v", err)
	}
	return u
}

// InsertArticle seeds an article row and returns it.
func (tdb *TestDB) InsertArticle(t *testing.T, approvalGroup string) *domain.Article {
	t.Helper()
	now := time.Now().UTC()
	a := &domain.Article{
		ID:            uuid.New().String(),
		Title:         "Seed article",
		CategoryID:    1,
		Important:     false,
		Question:      "Seed question?",
		Answer:        "Seed answer.",
		ApprovalGroup: approvalGroup,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := tdb.Pool.Exec(context.Background(), `
		INSERT INTO articles (id, title, category_id, keywords, important,
			publish_start, publish_end, target_audience, question, answer,
			comment, approval_group, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		a.ID, a.Title, a.CategoryID, a.Keywords, a.Important,
		a.PublishStart, a.PublishEnd, a.TargetAudience, a.Question, a.Answer,
		a.Comment, a.ApprovalGroup, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("Failed to insert article: %v", err)
	}
	return a
}
