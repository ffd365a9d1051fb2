package cache

import (
	"context"
	"testing"

	"github.com/shopfront/internal/config"
	"github.com/shopfront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledCacheIsNoop(t *testing.T) {
	require.NoError(t, InitRedis(&config.RedisConfig{Enabled: false}))
	ctx := context.Background()

	assert.False(t, Enabled())
	assert.Nil(t, Client())
	assert.NoError(t, Ping(ctx))
	assert.NoError(t, SetCategories(ctx, []models.Category{{ID: 1, Name: "Books"}}))

	categories, hit, err := GetCategories(ctx)
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.Empty(t, categories)

	state, hit, err := GetUserAuthState(ctx, 1)
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, state)
	assert.NoError(t, InvalidateActiveCoupons(ctx))
}

func TestBuildKeyUsesPrefix(t *testing.T) {
	assert.Equal(t, redisPrefix+":auth:user:5", BuildKey(userAuthStateKey(5)))
	assert.Equal(t, redisPrefix, BuildKey("  "))
}

func TestBuildUserAuthState(t *testing.T) {
	state := BuildUserAuthState(&models.User{ID: 3, Role: "admin", TokenVersion: 2})
	require.NotNil(t, state)
	assert.Equal(t, uint(3), state.UserID)
	assert.Equal(t, "admin", state.Role)
	assert.Equal(t, uint64(2), state.TokenVersion)
	assert.Nil(t, BuildUserAuthState(nil))
}
