package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"employee-profile-backend/internal/domain"
	"employee-profile-backend/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "refcache:names:"
	genPrefix = "refcache:gen:"
)

// Stores the list only while the generation key still holds the expected value.
// KEYS[1] = names key, KEYS[2] = generation key
// ARGV[1] = expected generation, ARGV[2] = payload, ARGV[3] = ttl in milliseconds
const setIfCurrentScript = `
local current = redis.call('GET', KEYS[2]) or '0'
if current ~= ARGV[1] then
    return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`

// referenceCache is a two tier cache of available reference names: L1 in process,
// L2 in Redis so every API instance sees an invalidation. rdb may be nil.
type referenceCache struct {
	mu   sync.RWMutex
	l1   map[domain.ReferenceKind]entry
	gens map[domain.ReferenceKind]uint64
	rdb  *redis.Client
	ttl  time.Duration
	now  func() time.Time
}

type entry struct {
	names     []string
	expiresAt time.Time
}

// NewReferenceCache returns a cache backed by memory and, when rdb is non-nil, Redis.
func NewReferenceCache(rdb *redis.Client, ttl time.Duration) domain.ReferenceCache {
	return &referenceCache{
		l1:   make(map[domain.ReferenceKind]entry),
		gens: make(map[domain.ReferenceKind]uint64),
		rdb:  rdb,
		ttl:  ttl,
		now:  time.Now,
	}
}

func (c *referenceCache) Get(ctx context.Context, kind domain.ReferenceKind) ([]string, bool) {
	c.mu.RLock()
	e, ok := c.l1[kind]
	localGen := c.gens[kind]
	c.mu.RUnlock()

	if ok && c.now().Before(e.expiresAt) {
		return clone(e.names), true
	}

	if c.rdb == nil {
		return nil, false
	}

	data, err := c.rdb.Get(ctx, keyPrefix+string(kind)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Log.Warn("reference cache: redis get failed", "kind", kind, "error", err)
		}
		return nil, false
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		logger.Log.Warn("reference cache: corrupt entry", "kind", kind, "error", err)
		return nil, false
	}
	c.storeL1(kind, names, localGen)
	return clone(names), true
}

func (c *referenceCache) Generation(ctx context.Context, kind domain.ReferenceKind) domain.CacheGeneration {
	c.mu.RLock()
	gen := domain.CacheGeneration{Local: c.gens[kind]}
	c.mu.RUnlock()

	if c.rdb == nil {
		return gen
	}
	shared, err := c.rdb.Get(ctx, genPrefix+string(kind)).Int64()
	switch {
	case err == nil:
		gen.Shared = shared
	case errors.Is(err, redis.Nil):
		gen.Shared = 0
	default:
		logger.Log.Warn("reference cache: redis generation read failed", "kind", kind, "error", err)
		gen.Shared = -1
	}
	return gen
}

// SetIfCurrent stores names unless kind was invalidated after gen was taken.
func (c *referenceCache) SetIfCurrent(ctx context.Context, kind domain.ReferenceKind, names []string, gen domain.CacheGeneration) bool {
	if c.rdb != nil && gen.Shared >= 0 {
		data, err := json.Marshal(names)
		if err != nil {
			return false
		}
		stored, err := c.rdb.Eval(ctx, setIfCurrentScript,
			[]string{keyPrefix + string(kind), genPrefix + string(kind)},
			strconv.FormatInt(gen.Shared, 10), data, c.ttl.Milliseconds(),
		).Int()
		switch {
		case err != nil:
			logger.Log.Warn("reference cache: redis set failed", "kind", kind, "error", err)
		case stored == 0:
			return false
		}
	}

	return c.storeL1(kind, names, gen.Local)
}

func (c *referenceCache) Invalidate(ctx context.Context, kind domain.ReferenceKind) {
	c.mu.Lock()
	c.gens[kind]++
	delete(c.l1, kind)
	c.mu.Unlock()

	if c.rdb == nil {
		return
	}
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genPrefix+string(kind))
		pipe.Del(ctx, keyPrefix+string(kind))
		return nil
	})
	if err != nil {
		logger.Log.Warn("reference cache: redis invalidate failed", "kind", kind, "error", err)
	}
}

// storeL1 writes the in-process entry when the local generation still matches.
func (c *referenceCache) storeL1(kind domain.ReferenceKind, names []string, localGen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[kind] != localGen {
		return false
	}
	c.l1[kind] = entry{names: clone(names), expiresAt: c.now().Add(c.ttl)}
	return true
}

func clone(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}
