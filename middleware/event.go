package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rcdrguez/quickquote-agent-demo/global"
	"github.com/sirupsen/logrus"
)

// RequestEvent 写操作成功后记一条带 event 的日志, 失败由错误处理记录
func RequestEvent() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		if global.Log == nil || ctx.Request.Method == http.MethodGet || ctx.Request.Method == http.MethodOptions {
			return
		}
		status := ctx.Writer.Status()
		if status >= http.StatusBadRequest {
			return
		}
		global.Log.WithFields(logrus.Fields{
			"event": ctx.Request.Method + " " + ctx.Request.URL.Path,
			"details": map[string]interface{}{
				"status":    status,
				"latencyMs": time.Since(start).Milliseconds(),
			},
		}).Info("请求完成")
	}
}
