package initialize

import (
	"github.com/rcdrguez/quickquote-agent-demo/global"
	"github.com/rcdrguez/quickquote-agent-demo/task"
)

// loadData 写入演示数据并在后台预热意图示例
func (i *Initializer) loadData(taskManager *task.Manager) {
	if !global.Config.Database.SkipSeed {
		if err := taskManager.SeedDemoData(); err != nil {
			global.Log.Errorln("启动时写入演示数据失败:", err)
		}
	}

	go func() {
		if err := taskManager.WarmExemplars(); err != nil {
			global.Log.Warnln("启动时预热意图示例失败, 将在首次请求时向量化:", err)
		}
	}()
}
