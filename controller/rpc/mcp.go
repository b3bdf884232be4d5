package rpc

import (
	"github.com/gin-gonic/gin"
	"github.com/rcdrguez/quickquote-agent-demo/model/common"
	"github.com/rcdrguez/quickquote-agent-demo/service"
)

type McpApi struct{}

// Handle JSON-RPC 2.0 与旧版 {tool, input} 共用一个入口
func (a *McpApi) Handle(ctx *gin.Context) {
	body, err := ctx.GetRawData()
	if err != nil {
		common.FailEnvelope(ctx, common.BindError(err))
		return
	}

	status, reply, err := service.Current().Tool.Handle(ctx.Request.Context(), body)
	if err != nil {
		common.FailEnvelope(ctx, err)
		return
	}
	ctx.JSON(status, reply)
}
