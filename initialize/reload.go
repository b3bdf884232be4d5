package initialize

import (
	"context"
	"reflect"
	"strings"

	"github.com/rcdrguez/quickquote-agent-demo/global"
	"github.com/rcdrguez/quickquote-agent-demo/model/config"
	"github.com/rcdrguez/quickquote-agent-demo/service"
	"golang.org/x/sync/errgroup"
)

// HandleConfigChange 检测配置变化并并发重载相关服务
func (i *Initializer) HandleConfigChange(oldConfig, newConfig *config.Config) {
	i.reloadLock.Lock()
	defer i.reloadLock.Unlock()

	restartNeeded := restartFields(oldConfig, newConfig)

	eg, _ := errgroup.WithContext(context.Background())

	if oldConfig.Tz != newConfig.Tz {
		eg.Go(func() error {
			if err := i.InitTz(); err != nil {
				global.Log.Errorf("热重载时区失败: %v", err)
				return err
			}
			return nil
		})
	}

	redisChanged := !reflect.DeepEqual(oldConfig.Redis, newConfig.Redis)
	if redisChanged {
		eg.Go(func() error {
			if err := i.redisClose(); err != nil {
				global.Log.Warnf("关闭旧Redis客户端失败: %v", err)
			}
			return i.initRedis()
		})
	}

	embeddingChanged := !reflect.DeepEqual(oldConfig.LlmEmbedding, newConfig.LlmEmbedding)
	if embeddingChanged {
		eg.Go(i.initLlmEmbedding)
	}

	if err := eg.Wait(); err != nil {
		global.Log.Errorf("并发热重载过程中发生错误: %v", err)
	}

	// 阈值, 超时与客户端都在组装时注入, 变化后整体重建
	if redisChanged || embeddingChanged || !reflect.DeepEqual(oldConfig.Ai, newConfig.Ai) {
		group := service.Swap(service.NewServiceGroup())
		if i.taskManager != nil {
			i.taskManager.SetClassifier(group.Agent.Classifier())
		}
		global.Log.Info("意图识别服务已重建")
	}

	if len(restartNeeded) > 0 {
		global.Log.Warnf("检测到存在需要 重启服务 才能生效的配置变更: [%s]。", strings.Join(restartNeeded, ", "))
	}

	global.Log.Info("配置变更处理完成")
}

// 监听地址, 数据库, 日志路径, 跨域与定时表达式在启动时固定
func restartFields(oldConfig, newConfig *config.Config) []string {
	var fields []string
	if !reflect.DeepEqual(oldConfig.Database, newConfig.Database) {
		fields = append(fields, "database")
	}
	if oldConfig.GinAddr != newConfig.GinAddr {
		fields = append(fields, "gin_addr")
	}
	if oldConfig.GinLogPath != newConfig.GinLogPath || oldConfig.RunLogPath != newConfig.RunLogPath {
		fields = append(fields, "log_path")
	}
	if !reflect.DeepEqual(oldConfig.Cors, newConfig.Cors) {
		fields = append(fields, "cors")
	}
	if oldConfig.Ai.WarmupSchedule != newConfig.Ai.WarmupSchedule {
		fields = append(fields, "ai.warmup_schedule")
	}
	return fields
}
