package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rcdrguez/quickquote-agent-demo/global"
	"github.com/rcdrguez/quickquote-agent-demo/model/common"
)

type LogApi struct{}

func (a *LogApi) List(ctx *gin.Context) {
	common.Success(ctx, global.ServerLogs.List())
}
