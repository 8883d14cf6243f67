package cache

import (
	"context"
	"testing"
	"time"

	"employee-profile-backend/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceCacheMemory(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewReferenceCache(nil, time.Minute).(*referenceCache)
	c.now = func() time.Time { return clock }

	_, ok := c.Get(ctx, domain.KindSkill)
	assert.False(t, ok)

	assert.True(t, c.SetIfCurrent(ctx, domain.KindSkill, []string{"Go", "SQL"}, c.Generation(ctx, domain.KindSkill)))
	names, ok := c.Get(ctx, domain.KindSkill)
	assert.True(t, ok)
	assert.Equal(t, []string{"Go", "SQL"}, names)

	// callers get a copy
	names[0] = "Rust"
	names, _ = c.Get(ctx, domain.KindSkill)
	assert.Equal(t, "Go", names[0])

	_, ok = c.Get(ctx, domain.KindIndustry)
	assert.False(t, ok)

	c.Invalidate(ctx, domain.KindSkill)
	_, ok = c.Get(ctx, domain.KindSkill)
	assert.False(t, ok)

	c.SetIfCurrent(ctx, domain.KindSkill, []string{"Go"}, c.Generation(ctx, domain.KindSkill))
	clock = clock.Add(2 * time.Minute)
	_, ok = c.Get(ctx, domain.KindSkill)
	assert.False(t, ok, "entry should expire after ttl")
}

func TestReferenceCacheRedis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	writer := NewReferenceCache(rdb, time.Minute)
	reader := NewReferenceCache(rdb, time.Minute)

	assert.True(t, writer.SetIfCurrent(ctx, domain.KindLocation, []string{"Karachi", "Lahore"}, writer.Generation(ctx, domain.KindLocation)))
	assert.True(t, mr.Exists(keyPrefix+"locations"))
	assert.Equal(t, time.Minute, mr.TTL(keyPrefix+"locations"))

	// a second instance with an empty L1 reads through Redis
	names, ok := reader.Get(ctx, domain.KindLocation)
	assert.True(t, ok)
	assert.Equal(t, []string{"Karachi", "Lahore"}, names)

	writer.Invalidate(ctx, domain.KindLocation)
	assert.False(t, mr.Exists(keyPrefix+"locations"))

	require.NoError(t, mr.Set(keyPrefix+"skills", "not json"))
	_, ok = writer.Get(ctx, domain.KindSkill)
	assert.False(t, ok)
}

func TestReferenceCacheRedisDown(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	c := NewReferenceCache(rdb, time.Minute)

	mr.Close()

	assert.NotPanics(t, func() {
		c.SetIfCurrent(ctx, domain.KindSkill, []string{"Go"}, c.Generation(ctx, domain.KindSkill))
		c.Invalidate(ctx, domain.KindSkill)
	})
	_, ok := c.Get(ctx, domain.KindSkill)
	assert.False(t, ok)
}

func TestReferenceCacheDropsListReadBeforeInvalidate(t *testing.T) {
	ctx := context.Background()
	c := NewReferenceCache(nil, time.Minute)

	gen := c.Generation(ctx, domain.KindSkill)
	// a new value is created while the old list is being read
	c.Invalidate(ctx, domain.KindSkill)

	assert.False(t, c.SetIfCurrent(ctx, domain.KindSkill, []string{}, gen))
	_, ok := c.Get(ctx, domain.KindSkill)
	assert.False(t, ok)

	assert.True(t, c.SetIfCurrent(ctx, domain.KindSkill, []string{"Go"}, c.Generation(ctx, domain.KindSkill)))
	names, ok := c.Get(ctx, domain.KindSkill)
	assert.True(t, ok)
	assert.Equal(t, []string{"Go"}, names)
}

func TestReferenceCacheRedisDropsListInvalidatedElsewhere(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	a := NewReferenceCache(rdb, time.Minute)
	b := NewReferenceCache(rdb, time.Minute)

	gen := a.Generation(ctx, domain.KindSkill)
	b.Invalidate(ctx, domain.KindSkill)

	assert.False(t, a.SetIfCurrent(ctx, domain.KindSkill, []string{}, gen))
	assert.False(t, mr.Exists(keyPrefix+"skills"))
	_, ok := a.Get(ctx, domain.KindSkill)
	assert.False(t, ok)

	fresh := a.Generation(ctx, domain.KindSkill)
	assert.Equal(t, int64(1), fresh.Shared)
	assert.True(t, a.SetIfCurrent(ctx, domain.KindSkill, []string{"Go"}, fresh))
	names, ok := b.Get(ctx, domain.KindSkill)
	assert.True(t, ok)
	assert.Equal(t, []string{"Go"}, names)
}
