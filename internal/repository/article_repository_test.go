package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekrsw/knowledge-app-sub000/internal/domain"
	"github.com/ekrsw/knowledge-app-sub000/internal/repository"
)

func TestPostgresArticleStore(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	store := repository.NewPostgresArticleStore(testDB.Pool)
	ctx := context.Background()

	t.Run("get by id returns stored fields", func(t *testing.T) {
		testDB.TruncateTables(t, "articles")
		seeded := testDB.InsertArticle(t, "kb-core")

		got, err := store.GetByID(ctx, seeded.ID)

		require.NoError(t, err)
		assert.Equal(t, seeded.ID, got.ID)
		assert.Equal(t, seeded.Title, got.Title)
		assert.Equal(t, "kb-core", got.ApprovalGroup)
		assert.Nil(t, got.Keywords)
		assert.Nil(t, got.PublishStart)
	})

	t.Run("get by id for missing row", func(t *testing.T) {
		_, err := store.GetByID(ctx, uuid.New().String())

		assert.ErrorIs(t, err, domain.ErrArticleNotFound)
	})

	t.Run("update persists every mutable field", func(t *testing.T) {
		testDB.TruncateTables(t, "articles")
		seeded := testDB.InsertArticle(t, "kb-core")

		keywords := "reset, portal"
		start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		seeded.Title = "Updated title"
		seeded.CategoryID = 7
		seeded.Keywords = &keywords
		seeded.Important = true
		seeded.PublishStart = &start
		seeded.UpdatedAt = time.Now().UTC()

		require.NoError(t, store.Update(ctx, seeded))

		got, err := store.GetByID(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, "Updated title", got.Title)
		assert.Equal(t, 7, got.CategoryID)
		require.NotNil(t, got.Keywords)
		assert.Equal(t, keywords, *got.Keywords)
		assert.True(t, got.Important)
		require.NotNil(t, got.PublishStart)
		assert.True(t, got.PublishStart.Equal(start))
	})

	t.Run("update missing row", func(t *testing.T) {
		ghost := testDB.InsertArticle(t, "kb-core")
		testDB.TruncateTables(t, "articles")

		err := store.Update(ctx, ghost)

		assert.ErrorIs(t, err, domain.ErrArticleNotFound)
	})
}
