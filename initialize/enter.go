package initialize

import (
	"context"
	"os"
	"sync"

	"github.com/rcdrguez/quickquote-agent-demo/global"
	"github.com/rcdrguez/quickquote-agent-demo/service"
	"github.com/rcdrguez/quickquote-agent-demo/task"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// Initializer 统一管理项目的所有初始化工作
type Initializer struct {
	cron           *cron.Cron
	logFileClosers []*os.File
	reloadLock     sync.Mutex
	taskManager    *task.Manager
}

// Run 并发执行所有核心服务的初始化
func (i *Initializer) Run() error {
	eg, _ := errgroup.WithContext(context.Background())

	// 关键任务，失败会终止程序
	eg.Go(i.dbStart)

	// 非关键任务，失败只打印日志，意图识别退回规则
	eg.Go(func() error {
		_ = i.initRedis()
		return nil
	})
	eg.Go(func() error {
		_ = i.initLlmEmbedding()
		return nil
	})

	return eg.Wait()
}

// InitServices 组装业务服务与任务管理器, 须在 Run 之后调用
func (i *Initializer) InitServices() *task.Manager {
	group := service.Swap(service.NewServiceGroup())
	i.taskManager = task.NewManager(group.Agent.Classifier())
	return i.taskManager
}

// Close 优雅地关闭和释放所有资源
func (i *Initializer) Close() {
	i.timerStop()
	if err := i.redisClose(); err != nil {
		global.Log.Warnf("关闭Redis失败: %v", err)
	}
	if err := i.dbClose(); err != nil {
		global.Log.Warnf("关闭数据库失败: %v", err)
	}
	for _, f := range i.logFileClosers {
		_ = f.Close()
	}
}

// StartSystem 启动系统级服务，如定时器和数据加载
func (i *Initializer) StartSystem(taskManager *task.Manager) {
	if err := i.timerStart(taskManager); err != nil {
		panic(err)
	}
	i.loadData(taskManager)
}
