package task

import (
	"context"
	"fmt"

	"github.com/rcdrguez/quickquote-agent-demo/global"
	"github.com/rcdrguez/quickquote-agent-demo/service/business"
)

// SeedDemoData 空库时写入演示客户与报价
func (m *Manager) SeedDemoData() error {
	seeded, err := business.SeedDemoData(context.Background())
	if err != nil {
		return fmt.Errorf("写入演示数据失败[s3dx7q]: %w", err)
	}
	if seeded {
		global.Log.Info("已写入演示数据")
	} else {
		global.Log.Info("已有客户数据, 跳过演示数据")
	}
	return nil
}
