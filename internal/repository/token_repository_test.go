package repository

import (
	"context"
	"testing"
	"time"

	redisapp "restaurant_cms/internal/storage/redis"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTokenRepo(t *testing.T) (*RedisTokenRepo, redismock.ClientMock) {
	t.Helper()

	db, mock := redismock.NewClientMock()
	repo := NewRedisTokenRepo(&redisapp.Client{Client: db})

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	return repo, mock
}

func TestSaveRefreshToken(t *testing.T) {
	repo, mock := setupTokenRepo(t)
	ctx := context.Background()

	mock.ExpectSet("refresh:user-1:token-abc", "1", time.Hour).SetVal("OK")

	err := repo.SaveRefreshToken(ctx, "user-1", "token-abc", time.Hour)

	require.NoError(t, err)
}

func TestGetRefreshToken_Found(t *testing.T) {
	repo, mock := setupTokenRepo(t)
	ctx := context.Background()

	mock.ExpectGet("refresh:user-1:token-abc").SetVal("1")

	ok, err := repo.GetRefreshToken(ctx, "user-1", "token-abc")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGetRefreshToken_Missing(t *testing.T) {
	repo, mock := setupTokenRepo(t)
	ctx := context.Background()

	mock.ExpectGet("refresh:user-1:token-abc").RedisNil()

	ok, err := repo.GetRefreshToken(ctx, "user-1", "token-abc")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteRefreshToken(t *testing.T) {
	repo, mock := setupTokenRepo(t)
	ctx := context.Background()

	mock.ExpectDel("refresh:user-1:token-abc").SetVal(1)

	err := repo.DeleteRefreshToken(ctx, "user-1", "token-abc")

	require.NoError(t, err)
}

func TestDeleteAllUserTokens(t *testing.T) {
	repo, mock := setupTokenRepo(t)
	ctx := context.Background()

	keys := []string{"refresh:user-1:token-a", "refresh:user-1:token-b"}
	mock.ExpectKeys("refresh:user-1:*").SetVal(keys)
	mock.ExpectDel(keys...).SetVal(2)

	err := repo.DeleteAllUserTokens(ctx, "user-1")

	require.NoError(t, err)
}

func TestDeleteAllUserTokens_NoneStored(t *testing.T) {
	repo, mock := setupTokenRepo(t)
	ctx := context.Background()

	mock.ExpectKeys("refresh:user-1:*").SetVal([]string{})

	err := repo.DeleteAllUserTokens(ctx, "user-1")

	require.NoError(t, err)
}
