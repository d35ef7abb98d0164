package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	counts    map[string]int64
	expires   map[string]time.Duration
	incrErr   error
	expireErr error
	pingErr   error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{counts: map[string]int64{}, expires: map[string]time.Duration{}}
}

func (f *fakeRedis) Incr(ctx context.Context, key string) *redis.IntCmd {
	if f.incrErr != nil {
		return redis.NewIntResult(0, f.incrErr)
	}
	f.counts[key]++
	return redis.NewIntResult(f.counts[key], nil)
}

func (f *fakeRedis) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	if f.expireErr != nil {
		return redis.NewBoolResult(false, f.expireErr)
	}
	f.expires[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", f.pingErr)
}

func TestRedis_Allow(t *testing.T) {
	ctx := context.Background()
	fake := newFakeRedis()
	limiter := NewRedis(fake, 3, 15*time.Minute)

	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return start }

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "hit %d", i+1)
	}

	ok, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = limiter.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, ok, "other clients have their own window")

	require.Len(t, fake.expires, 2)
	for _, ttl := range fake.expires {
		assert.Equal(t, 15*time.Minute, ttl)
	}

	limiter.now = func() time.Time { return start.Add(15 * time.Minute) }
	ok, err = limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok, "next window starts over")
}

func TestRedis_AllowErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("incr", func(t *testing.T) {
		fake := newFakeRedis()
		fake.incrErr = errors.New("connection refused")
		_, err := NewRedis(fake, 1, time.Minute).Allow(ctx, "k")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to increment counter")
	})

	t.Run("expire", func(t *testing.T) {
		fake := newFakeRedis()
		fake.expireErr = errors.New("readonly")
		_, err := NewRedis(fake, 1, time.Minute).Allow(ctx, "k")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to set counter expiry")
	})
}

func TestRedis_Ping(t *testing.T) {
	ctx := context.Background()
	fake := newFakeRedis()
	assert.NoError(t, NewRedis(fake, 1, time.Minute).Ping(ctx))

	fake.pingErr = errors.New("down")
	assert.Error(t, NewRedis(fake, 1, time.Minute).Ping(ctx))
}

func TestNewClient(t *testing.T) {
	client := NewClient(Options{Addr: "localhost:6390", DB: 2})
	defer client.Close()
	assert.Equal(t, "localhost:6390", client.Options().Addr)
	assert.Equal(t, 2, client.Options().DB)
}
