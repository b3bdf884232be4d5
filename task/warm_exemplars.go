package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rcdrguez/quickquote-agent-demo/global"
	"github.com/rcdrguez/quickquote-agent-demo/service/agent"
)

const warmUpTimeout = 30 * time.Second

// WarmExemplars 预先向量化意图示例, 只处理缓存中缺失的
func (m *Manager) WarmExemplars() error {
	classifier := m.getClassifier()
	if classifier == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), warmUpTimeout)
	defer cancel()

	n, err := classifier.WarmUp(ctx)
	if errors.Is(err, agent.ErrNoEmbedder) {
		global.Log.Info("未配置向量化服务, 意图识别仅使用规则")
		return nil
	}
	if err != nil {
		return fmt.Errorf("预热意图示例失败[w2rm8x]: %w", err)
	}
	if n > 0 {
		global.Log.Infof("已预热 %d 条意图示例向量", n)
	}
	return nil
}
