package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekrsw/knowledge-app-sub000/internal/domain"
	"github.com/ekrsw/knowledge-app-sub000/internal/repository"
)

func TestPostgresUserDirectory(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	directory := repository.NewPostgresUserDirectory(testDB.Pool)
	ctx := context.Background()

	t.Run("get by id", func(t *testing.T) {
		testDB.TruncateTables(t, "users")
		seeded := testDB.InsertUser(t, domain.RoleApprover, "kb-core", true)

		got, err := directory.GetByID(ctx, seeded.ID)

		require.NoError(t, err)
		assert.Equal(t, seeded.ID, got.ID)
		assert.Equal(t, domain.RoleApprover, got.Role)
		assert.Equal(t, "kb-core", got.ApprovalGroup)
		assert.True(t, got.Active)
	})

	t.Run("get missing user", func(t *testing.T) {
		_, err := directory.GetByID(ctx, uuid.New().String())

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("list approvers includes group approvers and admins", func(t *testing.T) {
		testDB.TruncateTables(t, "users")
		groupApprover := testDB.InsertUser(t, domain.RoleApprover, "kb-core", true)
		admin := testDB.InsertUser(t, domain.RoleAdmin, "", true)
		testDB.InsertUser(t, domain.RoleApprover, "kb-billing", true) // other group
		testDB.InsertUser(t, domain.RoleApprover, "kb-core", false)  // inactive
		testDB.InsertUser(t, domain.RoleEditor, "kb-core", true)     // wrong role

		approvers, err := directory.ListApprovers(ctx, "kb-core")

		require.NoError(t, err)
		require.Len(t, approvers, 2)

		ids := []string{approvers[0].ID, approvers[1].ID}
		assert.Contains(t, ids, groupApprover.ID)
		assert.Contains(t, ids, admin.ID)
	})
}
