package initialize

import (
	"context"
	"fmt"
	"time"

	"github.com/rcdrguez/quickquote-agent-demo/global"
	"github.com/rcdrguez/quickquote-agent-demo/internal/embedding"
	"github.com/rcdrguez/quickquote-agent-demo/internal/redis"
)

// initRedis 未配置地址时只用进程内缓存
func (i *Initializer) initRedis() error {
	cfg := global.Config.Redis
	if cfg.Addr == "" {
		global.Log.Info("未配置Redis, 向量缓存仅保存在内存")
		return nil
	}
	client, err := redis.NewClient(cfg.Addr, cfg.Password, cfg.DB)
	if err != nil {
		global.Log.Warnf("初始化Redis客户端失败: %v", err)
		return err
	}
	global.RedisClient = client
	global.Log.Info("初始化Redis服务成功")
	return nil
}

// redisClose 关闭Redis客户端连接
func (i *Initializer) redisClose() error {
	if global.RedisClient == nil {
		return nil
	}
	err := global.RedisClient.Close()
	global.RedisClient = nil
	return err
}

func (i *Initializer) initLlmEmbedding() error {
	if err := i.doInitLlmEmbedding(); err != nil {
		global.EmbeddingService = nil
		global.Log.Warnf("初始化向量化服务失败, 意图识别仅使用规则: %v", err)
		return err
	}
	global.Log.Info("初始化向量化服务成功")
	return nil
}

func (i *Initializer) doInitLlmEmbedding() error {
	cfg := global.Config.LlmEmbedding
	if cfg.Url == "" || cfg.Model == "" {
		return fmt.Errorf("未配置 llm_embedding.url 或 llm_embedding.model")
	}
	openAIClient := embedding.NewOpenAIClient(cfg.Url, cfg.Auth, time.Duration(cfg.Timeout)*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	// 通过ListModels接口验证向量化服务是否可用
	if _, err := openAIClient.ListModels(ctx); err != nil {
		return fmt.Errorf("无法连接到向量化服务 (url: %s): %w", cfg.Url, err)
	}

	global.EmbeddingService = embedding.NewClient(openAIClient, cfg.Model)
	return nil
}
