package entitlement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	snapshotKeyPrefix = "entitlement:snapshot:"

	// Snapshots go stale quickly; the external service is the source of
	// truth and a purchase must surface within minutes.
	defaultSnapshotTTL = 5 * time.Minute
)

// RedisCache stores entitlement snapshots in Redis with a short TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client, ttl: defaultSnapshotTTL}
}

func (c *RedisCache) Get(ctx context.Context, alias string) (*Snapshot, error) {
	raw, err := c.client.Get(ctx, snapshotKeyPrefix+alias).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("get cached snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode cached snapshot: %w", err)
	}
	return &snap, nil
}

func (c *RedisCache) Set(ctx context.Context, alias string, snap *Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := c.client.Set(ctx, snapshotKeyPrefix+alias, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache snapshot: %w", err)
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context, alias string) error {
	if err := c.client.Del(ctx, snapshotKeyPrefix+alias).Err(); err != nil {
		return fmt.Errorf("invalidate snapshot: %w", err)
	}
	return nil
}

// MemoryCache is an in-process snapshot cache for the client binary and tests.
type MemoryCache struct {
	mu    sync.RWMutex
	snaps map[string]memoryEntry
	ttl   time.Duration
}

type memoryEntry struct {
	snap    *Snapshot
	expires time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		snaps: make(map[string]memoryEntry),
		ttl:   defaultSnapshotTTL,
	}
}

func (c *MemoryCache) Get(_ context.Context, alias string) (*Snapshot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.snaps[alias]
	if !ok || time.Now().After(entry.expires) {
		return nil, ErrCacheMiss
	}
	cp := *entry.snap
	return &cp, nil
}

func (c *MemoryCache) Set(_ context.Context, alias string, snap *Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := *snap
	c.snaps[alias] = memoryEntry{snap: &cp, expires: time.Now().Add(c.ttl)}
	return nil
}

func (c *MemoryCache) Invalidate(_ context.Context, alias string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.snaps, alias)
	return nil
}

// CachedClient fronts a Client with a Cache. Reads prefer the cache; a miss
// fetches live and backfills. Cache write failures degrade to live reads
// rather than erroring.
type CachedClient struct {
	client Client
	cache  Cache
}

func NewCachedClient(client Client, cache Cache) *CachedClient {
	return &CachedClient{client: client, cache: cache}
}

func (c *CachedClient) Snapshot(ctx context.Context, alias string) (*Snapshot, error) {
	if snap, err := c.cache.Get(ctx, alias); err == nil {
		return snap, nil
	}
	snap, err := c.client.Snapshot(ctx, alias)
	if err != nil {
		return nil, err
	}
	_ = c.cache.Set(ctx, alias, snap)
	return snap, nil
}

func (c *CachedClient) LogOut(ctx context.Context, alias string) error {
	return c.client.LogOut(ctx, alias)
}
