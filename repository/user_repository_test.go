package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esportshub/models"
	"esportshub/repository/testutil"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	t.Run("user not found", func(t *testing.T) {
		user, err := repo.GetByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("create and retrieve", func(t *testing.T) {
		created, err := repo.Create(ctx, "ada", testutil.Email("ada"), testutil.PasswordHash, models.RolePlayer)
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.NotZero(t, created.ID)

		byID, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, "ada", byID.Name)
		assert.Equal(t, models.RolePlayer, byID.Role)

		byEmail, err := repo.GetByEmail(ctx, testutil.Email("ada"))
		require.NoError(t, err)
		require.NotNil(t, byEmail)
		assert.Equal(t, created.ID, byEmail.ID)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		_, err := repo.Create(ctx, "bob", testutil.Email("bob"), testutil.PasswordHash, models.RolePlayer)
		require.NoError(t, err)

		_, err = repo.Create(ctx, "bobby", testutil.Email("bob"), testutil.PasswordHash, models.RolePlayer)
		assert.True(t, models.IsCode(err, models.CodeConflict))
	})
}
