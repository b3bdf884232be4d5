package agent

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/rcdrguez/quickquote-agent-demo/internal/redis"
	"github.com/rcdrguez/quickquote-agent-demo/model/enum"
	"github.com/rcdrguez/quickquote-agent-demo/utils"
	"github.com/sirupsen/logrus"
)

// Cache 示例短语的向量缓存, 只增不改; 并发重复计算只会写入相同的值
type Cache interface {
	Get(ctx context.Context, key string) ([]float32, bool)
	Set(ctx context.Context, key string, vec []float32)
}

type memoryCache struct {
	mu   sync.RWMutex
	data map[string][]float32
}

func NewMemoryCache() Cache {
	return &memoryCache{data: make(map[string][]float32)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]float32, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.data[key]
	return v, ok
}

func (c *memoryCache) Set(_ context.Context, key string, vec []float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = vec
}

// redisCache 内存为一级, Redis 为二级, 进程重启后免去重新向量化
type redisCache struct {
	local Cache
	rdb   redis.Service
	ttl   int64
	log   logrus.FieldLogger
}

// NewRedisCache ttl 单位秒
func NewRedisCache(rdb redis.Service, ttl int64, log logrus.FieldLogger) Cache {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &redisCache{local: NewMemoryCache(), rdb: rdb, ttl: ttl, log: log}
}

func (c *redisCache) key(key string) string {
	return enum.RedisKeyPrefixEmbedding + utils.Hash(key)
}

func (c *redisCache) Get(ctx context.Context, key string) ([]float32, bool) {
	if v, ok := c.local.Get(ctx, key); ok {
		return v, true
	}

	raw, err := c.rdb.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("读取向量缓存失败[k2v9rc]: %v", err)
		}
		return nil, false
	}

	var vec []float32
	if err := json.Unmarshal(raw, &vec); err != nil || len(vec) == 0 {
		return nil, false
	}
	c.local.Set(ctx, key, vec)
	return vec, true
}

func (c *redisCache) Set(ctx context.Context, key string, vec []float32) {
	c.local.Set(ctx, key, vec)

	raw, err := json.Marshal(vec)
	if err != nil {
		return
	}
	var ttl time.Duration
	if c.ttl > 0 {
		ttl = utils.GetTTLWithJitter(c.ttl)
	}
	if err := c.rdb.Set(ctx, c.key(key), raw, ttl).Err(); err != nil {
		c.log.Warnf("写入向量缓存失败[w7c3rd]: %v", err)
	}
}
