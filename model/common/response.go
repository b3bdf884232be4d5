package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rcdrguez/quickquote-agent-demo/global"
	"github.com/sirupsen/logrus"
)

// Envelope 旧版工具调用的响应格式 {ok, result|error}
type Envelope struct {
	Ok     bool        `json:"ok"`
	Result interface{} `json:"result,omitempty"`
	Error  *ErrorBody  `json:"error,omitempty"`
}

func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, data)
}

func Created(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusCreated, data)
}

// Fail 按错误分类输出 {message, details}
func Fail(ctx *gin.Context, err error) {
	status, body, unexpected := Classify(err)
	logFailure(ctx, err, unexpected)
	ctx.JSON(status, body)
}

// FailEnvelope 按错误分类输出 {ok:false, error}
func FailEnvelope(ctx *gin.Context, err error) {
	status, body, unexpected := Classify(err)
	logFailure(ctx, err, unexpected)
	ctx.JSON(status, Envelope{Ok: false, Error: &body})
}

func logFailure(ctx *gin.Context, err error, unexpected bool) {
	if global.Log == nil {
		return
	}
	entry := global.Log.WithFields(logrus.Fields{
		"event":   "error " + ctx.Request.Method + " " + ctx.Request.URL.Path,
		"details": map[string]interface{}{"message": err.Error()},
	})
	if unexpected {
		entry.Errorf("请求处理出错[p0lm3x]: %v", err)
		return
	}
	entry.Error("请求被拒绝: " + err.Error())
}
