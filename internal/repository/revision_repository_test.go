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

func newRevision(articleID, proposerID string) *domain.Revision {
	now := time.Now().UTC()
	title := "Proposed title"
	return &domain.Revision{
		ID:         uuid.New().String(),
		ArticleID:  articleID,
		ProposerID: proposerID,
		Status:     domain.StatusDraft,
		Reason:     "Fix outdated answer",
		AfterTitle: &title,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestPostgresRevisionStore(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	store := repository.NewPostgresRevisionStore(testDB.Pool)
	ctx := context.Background()

	t.Run("create and get round trip", func(t *testing.T) {
		testDB.TruncateTables(t, "users", "articles", "revisions")
		proposer := testDB.InsertUser(t, domain.RoleEditor, "", true)
		article := testDB.InsertArticle(t, "kb-core")

		rev := newRevision(article.ID, proposer.ID)
		require.NoError(t, store.Create(ctx, rev))

		got, err := store.GetByID(ctx, rev.ID)

		require.NoError(t, err)
		assert.Equal(t, rev.ID, got.ID)
		assert.Equal(t, domain.StatusDraft, got.Status)
		require.NotNil(t, got.AfterTitle)
		assert.Equal(t, "Proposed title", *got.AfterTitle)
		// Unproposed fields stay null.
		assert.Nil(t, got.AfterCategoryID)
		assert.Nil(t, got.AfterImportant)
		assert.Nil(t, got.ApproverID)
		assert.Nil(t, got.ProcessedAt)
	})

	t.Run("get missing revision", func(t *testing.T) {
		_, err := store.GetByID(ctx, uuid.New().String())

		assert.ErrorIs(t, err, domain.ErrRevisionNotFound)
	})

	t.Run("update touches proposed fields but never status", func(t *testing.T) {
		testDB.TruncateTables(t, "users", "articles", "revisions")
		proposer := testDB.InsertUser(t, domain.RoleEditor, "", true)
		article := testDB.InsertArticle(t, "kb-core")

		rev := newRevision(article.ID, proposer.ID)
		require.NoError(t, store.Create(ctx, rev))

		newTitle := "Second draft"
		categoryID := 9
		rev.Reason = "Changed my mind"
		rev.AfterTitle = &newTitle
		rev.AfterCategoryID = &categoryID
		rev.Status = domain.StatusApproved // must be ignored by Update
		rev.UpdatedAt = time.Now().UTC()

		require.NoError(t, store.Update(ctx, rev))

		got, err := store.GetByID(ctx, rev.ID)
		require.NoError(t, err)
		assert.Equal(t, "Changed my mind", got.Reason)
		assert.Equal(t, "Second draft", *got.AfterTitle)
		assert.Equal(t, 9, *got.AfterCategoryID)
		assert.Equal(t, domain.StatusDraft, got.Status)
	})

	t.Run("update status is conditional on the current status", func(t *testing.T) {
		testDB.TruncateTables(t, "users", "articles", "revisions")
		proposer := testDB.InsertUser(t, domain.RoleEditor, "", true)
		approver := testDB.InsertUser(t, domain.RoleApprover, "kb-core", true)
		article := testDB.InsertArticle(t, "kb-core")

		rev := newRevision(article.ID, proposer.ID)
		rev.Status = domain.StatusSubmitted
		require.NoError(t, store.Create(ctx, rev))

		now := time.Now().UTC()
		rev.Status = domain.StatusApproved
		rev.ApproverID = &approver.ID
		rev.ProcessedAt = &now
		rev.UpdatedAt = now
		require.NoError(t, store.UpdateStatus(ctx, rev, domain.StatusSubmitted))

		// A second conditional write expecting submitted loses the race.
		err := store.UpdateStatus(ctx, rev, domain.StatusSubmitted)
		assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)

		got, err := store.GetByID(ctx, rev.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, got.Status)
		require.NotNil(t, got.ApproverID)
		assert.Equal(t, approver.ID, *got.ApproverID)
		require.NotNil(t, got.ProcessedAt)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		testDB.TruncateTables(t, "users", "articles", "revisions")
		proposer := testDB.InsertUser(t, domain.RoleEditor, "", true)
		article := testDB.InsertArticle(t, "kb-core")

		rev := newRevision(article.ID, proposer.ID)
		require.NoError(t, store.Create(ctx, rev))

		require.NoError(t, store.Delete(ctx, rev.ID))

		_, err := store.GetByID(ctx, rev.ID)
		assert.ErrorIs(t, err, domain.ErrRevisionNotFound)

		assert.ErrorIs(t, store.Delete(ctx, rev.ID), domain.ErrRevisionNotFound)
	})

	t.Run("list by status is oldest first and bounded", func(t *testing.T) {
		testDB.TruncateTables(t, "users", "articles", "revisions")
		proposer := testDB.InsertUser(t, domain.RoleEditor, "", true)
		article := testDB.InsertArticle(t, "kb-core")

		var ids []string
		for i := 0; i < 3; i++ {
			rev := newRevision(article.ID, proposer.ID)
			rev.Status = domain.StatusSubmitted
			rev.CreatedAt = time.Now().UTC().Add(time.Duration(-3+i) * time.Hour)
			require.NoError(t, store.Create(ctx, rev))
			ids = append(ids, rev.ID)
		}
		draft := newRevision(article.ID, proposer.ID)
		require.NoError(t, store.Create(ctx, draft))

		revs, err := store.ListByStatus(ctx, domain.StatusSubmitted, 10)
		require.NoError(t, err)
		require.Len(t, revs, 3)
		assert.Equal(t, ids[0], revs[0].ID)
		assert.Equal(t, ids[2], revs[2].ID)

		limited, err := store.ListByStatus(ctx, domain.StatusSubmitted, 2)
		require.NoError(t, err)
		assert.Len(t, limited, 2)
	})

	t.Run("count and list decided revisions", func(t *testing.T) {
		testDB.TruncateTables(t, "users", "articles", "revisions")
		proposer := testDB.InsertUser(t, domain.RoleEditor, "", true)
		approver := testDB.InsertUser(t, domain.RoleApprover, "kb-core", true)
		article := testDB.InsertArticle(t, "kb-core")

		decide := func(status domain.RevisionStatus, processedAgo time.Duration) {
			rev := newRevision(article.ID, proposer.ID)
			rev.Status = status
			processed := time.Now().UTC().Add(-processedAgo)
			rev.ApproverID = &approver.ID
			rev.ProcessedAt = &processed
			require.NoError(t, store.Create(ctx, rev))
		}
		decide(domain.StatusApproved, time.Hour)
		decide(domain.StatusRejected, 2*time.Hour)
		decide(domain.StatusApproved, 48*time.Hour)

		count, err := store.CountDecidedBy(ctx, approver.ID, time.Now().UTC().Add(-24*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		processed, err := store.ListProcessedSince(ctx, time.Now().UTC().Add(-24*time.Hour))
		require.NoError(t, err)
		assert.Len(t, processed, 2)

		byApprover, err := store.ListByApprover(ctx, approver.ID, 10)
		require.NoError(t, err)
		assert.Len(t, byApprover, 3)
	})

	t.Run("list by proposer is newest first", func(t *testing.T) {
		testDB.TruncateTables(t, "users", "articles", "revisions")
		proposer := testDB.InsertUser(t, domain.RoleEditor, "", true)
		article := testDB.InsertArticle(t, "kb-core")

		older := newRevision(article.ID, proposer.ID)
		older.CreatedAt = time.Now().UTC().Add(-2 * time.Hour)
		require.NoError(t, store.Create(ctx, older))
		newer := newRevision(article.ID, proposer.ID)
		require.NoError(t, store.Create(ctx, newer))

		revs, err := store.ListByProposer(ctx, proposer.ID, 10)
		require.NoError(t, err)
		require.Len(t, revs, 2)
		assert.Equal(t, newer.ID, revs[0].ID)
	})
}
