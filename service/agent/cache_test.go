package agent

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rcdrguez/quickquote-agent-demo/internal/redis"
	"github.com/rcdrguez/quickquote-agent-demo/model/enum"
	"github.com/rcdrguez/quickquote-agent-demo/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)

	c.Set(ctx, "k", []float32{1, 2})
	v, ok := c.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, []float32{1, 2}, v)
}

func TestRedisCacheSharedAcrossInstances(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb, err := redis.NewClient(mr.Addr(), "", 0)
	require.NoError(t, err)
	defer rdb.Close()

	ctx := context.Background()
	first := NewRedisCache(rdb, 3600, quietLogger())
	first.Set(ctx, "crear cliente", []float32{0.5, 0.25})

	key := enum.RedisKeyPrefixEmbedding + utils.Hash("crear cliente")
	assert.True(t, mr.Exists(key))
	assert.Greater(t, mr.TTL(key).Seconds(), 0.0)

	second := NewRedisCache(rdb, 3600, quietLogger())
	v, ok := second.Get(ctx, "crear cliente")
	require.True(t, ok)
	assert.Equal(t, []float32{0.5, 0.25}, v)

	_, ok = second.Get(ctx, "otro")
	assert.False(t, ok)
}

func TestClassifierUsesRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb, err := redis.NewClient(mr.Addr(), "", 0)
	require.NoError(t, err)
	defer rdb.Close()

	warm := NewClassifier(&cueEmbedder{}, WithCache(NewRedisCache(rdb, 0, quietLogger())))
	_, err = warm.WarmUp(context.Background())
	require.NoError(t, err)

	// 新实例从 Redis 取示例向量
	emb := &cueEmbedder{}
	c := NewClassifier(emb, WithCache(NewRedisCache(rdb, 0, quietLogger())), WithLogger(quietLogger()))
	res := c.Classify(context.Background(), "las facturas del mes")
	assert.Equal(t, enum.SourceSemantic, res.Source)
	assert.Equal(t, []string{"las facturas del mes"}, emb.lastBatch())
}
