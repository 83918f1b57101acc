package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/redis/go-redis/v9"
)

// ListKey is the Redis key holding the serialized task list.
const ListKey = "tasks:list"

// VersionKey counts writes. A list read from the store is cached only if no
// write bumped the version while it was being read.
const VersionKey = "tasks:list:ver"

// storeListScript sets KEYS[1] only while KEYS[2] still holds ARGV[1].
// A missing version key compares equal to "".
var storeListScript = redis.NewScript(`
local cur = redis.call("GET", KEYS[2])
if not cur then cur = "" end
if cur ~= ARGV[1] then return 0 end
redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
return 1
`)

// TaskCache implements store.TaskStore on top of another TaskStore.
type TaskCache struct {
	base   store.TaskStore
	redis  *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

var _ store.TaskStore = (*TaskCache)(nil)

// NewTaskCache wraps base. A nil client or a non-positive ttl disables caching
// and every call goes straight to base.
func NewTaskCache(base store.TaskStore, client *redis.Client, ttl time.Duration, logger *slog.Logger) *TaskCache {
	if base == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("rediscache.NewTaskCache: base store is nil")
	}
	if ttl < 0 {
		ttl = 0
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskCache{
		base:   base,
		redis:  client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "task_cache")),
	}
}

// NewClient parses a redis:// URL and verifies the server is reachable.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

func (c *TaskCache) enabled() bool {
	return c.redis != nil && c.ttl > 0
}

// List implements store.TaskStore.List
func (c *TaskCache) List(ctx context.Context) ([]*domain.Task, error) {
	if tasks, ok := c.loadList(ctx); ok {
		return tasks, nil
	}

	version, versionOK := c.listVersion(ctx)

	tasks, err := c.base.List(ctx)
	if err != nil {
		return nil, err
	}

	if versionOK {
		c.storeList(ctx, tasks, version)
	}
	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID
func (c *TaskCache) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	return c.base.GetByID(ctx, id)
}

// Create implements store.TaskStore.Create
func (c *TaskCache) Create(ctx context.Context, task *domain.Task) error {
	if err := c.base.Create(ctx, task); err != nil {
		return err
	}
	c.evict(ctx)
	return nil
}

// Update implements store.TaskStore.Update
func (c *TaskCache) Update(ctx context.Context, id uuid.UUID, patch domain.TaskPatch) (*domain.Task, error) {
	task, err := c.base.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	c.evict(ctx)
	return task, nil
}

// Delete implements store.TaskStore.Delete
func (c *TaskCache) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.base.Delete(ctx, id); err != nil {
		return err
	}
	c.evict(ctx)
	return nil
}

func (c *TaskCache) loadList(ctx context.Context) ([]*domain.Task, bool) {
	if !c.enabled() {
		return nil, false
	}
	log := logger.FromContextOrDefault(ctx, c.logger)

	data, err := c.redis.Get(ctx, ListKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn("redis get failed, reading from store", slog.String("error", err.Error()))
			_ = c.redis.Del(ctx, ListKey).Err()
		}
		return nil, false
	}

	var tasks []*domain.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		log.Warn("discarding unreadable cached task list", slog.String("error", err.Error()))
		_ = c.redis.Del(ctx, ListKey).Err()
		return nil, false
	}
	if tasks == nil {
		tasks = make([]*domain.Task, 0)
	}

	log.Debug("task list served from cache", slog.Int("count", len(tasks)))
	return tasks, true
}

// listVersion reads the write counter before the store is queried.
// It returns false when Redis cannot be read, in which case nothing is cached.
func (c *TaskCache) listVersion(ctx context.Context) (string, bool) {
	if !c.enabled() {
		return "", false
	}
	version, err := c.redis.Get(ctx, VersionKey).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return "", true
	case err != nil:
		logger.FromContextOrDefault(ctx, c.logger).
			Warn("failed to read task list version", slog.String("error", err.Error()))
		return "", false
	}
	return version, true
}

// storeList caches tasks unless a write has happened since version was read.
func (c *TaskCache) storeList(ctx context.Context, tasks []*domain.Task, version string) {
	data, err := json.Marshal(tasks)
	if err != nil {
		return
	}
	ttlMillis := max(c.ttl.Milliseconds(), 1)

	log := logger.FromContextOrDefault(ctx, c.logger)
	stored, err := storeListScript.Run(ctx, c.redis,
		[]string{ListKey, VersionKey}, version, data, ttlMillis).Int()
	if err != nil {
		log.Warn("failed to cache task list", slog.String("error", err.Error()))
		return
	}
	if stored == 0 {
		log.Debug("task list changed while loading, not cached")
	}
}

// evict bumps the version before deleting the list so that any List already
// reading the store cannot write its snapshot back.
func (c *TaskCache) evict(ctx context.Context) {
	if c.redis == nil {
		return
	}
	log := logger.FromContextOrDefault(ctx, c.logger)
	if err := c.redis.Incr(ctx, VersionKey).Err(); err != nil {
		log.Warn("failed to bump task list version", slog.String("error", err.Error()))
	}
	if err := c.redis.Del(ctx, ListKey).Err(); err != nil {
		log.Warn("failed to evict cached task list", slog.String("error", err.Error()))
	}
}
