package repositories

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/you/fitbyte/domain"
)

type countingTypeRepo struct {
	domain.ActivityTypeRepository
	calls int
}

func (c *countingTypeRepo) FindByName(ctx context.Context, name string) (*domain.ActivityType, error) {
	c.calls++
	return c.ActivityTypeRepository.FindByName(ctx, name)
}

func (c *countingTypeRepo) FindByID(ctx context.Context, id uint) (*domain.ActivityType, error) {
	c.calls++
	return c.ActivityTypeRepository.FindByID(ctx, id)
}

func TestActivityTypeRepositoryImpl_FindByName(t *testing.T) {
	repo := NewActivityTypeRepository(setupTestDB(t))
	ctx := context.Background()

	at, err := repo.FindByName(ctx, "Running")
	require.NoError(t, err)
	assert.Equal(t, 10, at.CaloriesPerMinute)

	byID, err := repo.FindByID(ctx, at.ID)
	require.NoError(t, err)
	assert.Equal(t, "Running", byID.Name)

	_, err = repo.FindByName(ctx, "running")
	assert.ErrorIs(t, err, domain.ErrInvalidActivityType, "names are case-exact")

	_, err = repo.FindByName(ctx, "Climbing")
	assert.ErrorIs(t, err, domain.ErrInvalidActivityType)
}

func TestCachedActivityTypeRepository(t *testing.T) {
	db := setupTestDB(t)
	mr, client := setupTestRedis(t)
	inner := &countingTypeRepo{ActivityTypeRepository: NewActivityTypeRepository(db)}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := NewCachedActivityTypeRepository(inner, client, time.Minute, log)
	ctx := context.Background()

	first, err := repo.FindByName(ctx, "Yoga")
	require.NoError(t, err)
	second, err := repo.FindByName(ctx, "Yoga")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls, "second read should be served from cache")
	assert.True(t, mr.Exists("activity_type:name:Yoga"))

	_, err = repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)

	mr.FastForward(2 * time.Minute)
	_, err = repo.FindByName(ctx, "Yoga")
	require.NoError(t, err)
	assert.Equal(t, 3, inner.calls, "expired entries reload from the database")

	_, err = repo.FindByName(ctx, "Climbing")
	assert.ErrorIs(t, err, domain.ErrInvalidActivityType)
	assert.False(t, mr.Exists("activity_type:name:Climbing"), "misses are not cached")
}

func TestCachedActivityTypeRepository_FallsBackWhenRedisDown(t *testing.T) {
	db := setupTestDB(t)
	mr, client := setupTestRedis(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := NewCachedActivityTypeRepository(NewActivityTypeRepository(db), client, time.Minute, log)
	mr.Close()

	at, err := repo.FindByName(context.Background(), "Hiking")
	require.NoError(t, err)
	assert.Equal(t, 10, at.CaloriesPerMinute)
}
