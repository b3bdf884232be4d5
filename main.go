package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rcdrguez/quickquote-agent-demo/global"
	"github.com/rcdrguez/quickquote-agent-demo/initialize"
	"github.com/rcdrguez/quickquote-agent-demo/task"
)

func main() {
	startTime := time.Now()
	initSvc := initialize.New()

	if err := initSvc.InitTz(); err != nil {
		panic(fmt.Sprintf("初始化时区失败[t8zq4m]: %v", err))
	}
	if err := initSvc.InitLog(); err != nil {
		panic(fmt.Sprintf("初始化日志失败[fbvk89]: %v", err))
	}

	defer func() {
		if p := recover(); p != nil {
			global.Log.Errorln(p)
		}
	}()

	if err := initSvc.Run(); err != nil {
		global.Log.Fatalf("数据库初始化失败, 程序终止: %v", err)
	}
	defer initSvc.Close()

	initSvc.InitLogger()
	taskManager := initSvc.InitServices()

	if initialize.Act == "" {
		initialize.Start(initSvc, taskManager, startTime)
		return
	}

	if !runAction(taskManager, initialize.Act) {
		initSvc.Close()
		os.Exit(1)
	}
}

// runAction 执行 -a 指定的一次性任务后退出
func runAction(taskManager *task.Manager, name string) bool {
	fn, ok := taskManager.Action(name)
	if !ok {
		fmt.Printf("未知的任务 %q, 可选值: %s\n", name, strings.Join(task.ActionNames, ", "))
		return false
	}

	log := global.Log.WithField("action", name)
	log.Infoln("开始执行任务")
	if err := fn(); err != nil {
		log.Errorf("任务执行失败: %v", err)
		return false
	}
	log.Infof("任务执行完成")
	return true
}
