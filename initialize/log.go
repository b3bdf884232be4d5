package initialize

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rcdrguez/quickquote-agent-demo/global"
	"github.com/rcdrguez/quickquote-agent-demo/internal/logbuf"
	"github.com/rcdrguez/quickquote-agent-demo/utils"
	"github.com/sirupsen/logrus"
)

// setupLogFile 创建并打开按日期命名的日志文件, 例如: gin.log -> gin.log.2025-10-28
func (i *Initializer) setupLogFile(logPath string) (*os.File, error) {
	dailyLogPath := fmt.Sprintf("%s.%s", logPath, time.Now().In(global.Tz).Format("2006-01-02"))

	if err := utils.CreateFile(dailyLogPath); err != nil {
		return nil, fmt.Errorf("创建日志文件 '%s' 失败: %w", dailyLogPath, err)
	}

	file, err := os.OpenFile(dailyLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("打开日志文件 '%s' 失败: %w", dailyLogPath, err)
	}

	i.logFileClosers = append(i.logFileClosers, file)
	return file, nil
}

// TzJSONFormatter 按配置时区输出时间
type TzJSONFormatter struct {
	logrus.JSONFormatter
}

func (f *TzJSONFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	entry.Time = entry.Time.In(global.Tz)
	return f.JSONFormatter.Format(entry)
}

// InitLog 初始化logrus日志库, 带 event 字段的日志同时进入 /api/logs
func (i *Initializer) InitLog() error {
	runfile, err := i.setupLogFile(global.Config.RunLogPath)
	if err != nil {
		return fmt.Errorf("初始化运行日志失败[fbvk89]: %w", err)
	}

	global.Log = logrus.New()
	global.Log.SetFormatter(&TzJSONFormatter{
		JSONFormatter: logrus.JSONFormatter{TimestampFormat: time.RFC3339},
	})
	if global.Config.Debug {
		global.Log.SetLevel(logrus.DebugLevel)
	} else {
		global.Log.SetLevel(logrus.InfoLevel)
	}
	global.Log.AddHook(logbuf.NewHook(global.ServerLogs))
	global.Log.SetOutput(io.MultiWriter(os.Stdout, runfile))
	return nil
}

// InitLogger gin 访问日志同时输出到文件和标准输出
func (i *Initializer) InitLogger() {
	ginfile, err := i.setupLogFile(global.Config.GinLogPath)
	if err != nil {
		global.Log.Fatalf("初始化Gin日志失败: %v", err)
	}

	gin.DefaultWriter = io.MultiWriter(os.Stdout, ginfile)
	gin.DefaultErrorWriter = gin.DefaultWriter
	gin.DisableConsoleColor()
}

func (i *Initializer) InitTz() error {
	location, err := time.LoadLocation(global.Config.Tz)
	if err != nil {
		return fmt.Errorf("时区配置失败[siortuj]: %w", err)
	}
	global.Tz = location
	return nil
}
