package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshTokenRepositories(t *testing.T) {
	db, teardown := setupMongoContainer(t)
	defer teardown()

	readRepo := NewRefreshTokenReadRepository(db)
	writeRepo := NewRefreshTokenWriteRepository(db)
	ctx := context.Background()

	require.NoError(t, writeRepo.Save(ctx, "token-a", "alice"))
	require.NoError(t, writeRepo.Save(ctx, "token-b", "bob"))

	t.Run("GetByToken", func(t *testing.T) {
		rt, err := readRepo.GetByToken(ctx, "token-a")
		require.NoError(t, err)
		require.NotNil(t, rt)
		assert.Equal(t, "alice", rt.Username)
	})

	t.Run("GetByUsername", func(t *testing.T) {
		rt, err := readRepo.GetByUsername(ctx, "bob")
		require.NoError(t, err)
		require.NotNil(t, rt)
		assert.Equal(t, "token-b", rt.Token)
	})

	t.Run("NotFound", func(t *testing.T) {
		rt, err := readRepo.GetByToken(ctx, "missing")
		assert.NoError(t, err)
		assert.Nil(t, rt)

		rt, err = readRepo.GetByUsername(ctx, "carol")
		assert.NoError(t, err)
		assert.Nil(t, rt)
	})

	t.Run("DeleteByToken_RemovesAllCopies", func(t *testing.T) {
		require.NoError(t, writeRepo.Save(ctx, "token-a", "alice"))

		deleted, err := writeRepo.DeleteByToken(ctx, "token-a")
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)

		rt, err := readRepo.GetByToken(ctx, "token-a")
		assert.NoError(t, err)
		assert.Nil(t, rt)

		deleted, err = writeRepo.DeleteByToken(ctx, "token-a")
		assert.NoError(t, err)
		assert.Zero(t, deleted)
	})
}
