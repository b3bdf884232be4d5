package initialize

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rcdrguez/quickquote-agent-demo/global"
	"github.com/rcdrguez/quickquote-agent-demo/router"
	"github.com/rcdrguez/quickquote-agent-demo/task"
	"github.com/rcdrguez/quickquote-agent-demo/utils"
)

const shutdownTimeout = 5 * time.Second

// Start 启动定时任务与HTTP服务, 阻塞到收到退出信号或服务异常
func Start(initializer *Initializer, taskManager *task.Manager, startTime time.Time) {
	initializer.StartSystem(taskManager)

	server := newHttpServer()
	serveErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	logStartupInfo(startTime)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		global.Log.Infof("收到退出信号, 开始关闭, addr: %s, pid: %d", global.Config.GinAddr, syscall.Getpid())
	case err := <-serveErr:
		if err != nil {
			global.Log.Errorf("HTTP服务异常退出[isjfio]: %v", err)
			return
		}
	}

	shutdown(server)
}

func newHttpServer() *http.Server {
	if global.Config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.ForwardedByClientIP = true
	engine.Use(gin.Logger(), gin.Recovery())
	router.Start(engine)

	return &http.Server{
		Addr:              global.Config.GinAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func logStartupInfo(startTime time.Time) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	global.Log.WithFields(map[string]interface{}{
		"addr":    global.Config.GinAddr,
		"mode":    gin.Mode(),
		"pid":     syscall.Getpid(),
		"go":      runtime.Version(),
		"memMiB":  utils.NumberFormat(float64(m.Alloc) / 1024 / 1024),
		"startMs": time.Since(startTime).Milliseconds(),
	}).Infoln("QuickQuote 服务已启动")
}

// shutdown 留给进行中的请求最多 shutdownTimeout
func shutdown(server *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		global.Log.Errorf("HTTP服务关闭出错[oijojiud]: %v", err)
		return
	}
	global.Log.Infoln("HTTP服务已退出")
}
