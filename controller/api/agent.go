package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rcdrguez/quickquote-agent-demo/model/common"
	"github.com/rcdrguez/quickquote-agent-demo/model/dto"
	"github.com/rcdrguez/quickquote-agent-demo/service"
)

type AgentApi struct{}

// Interpret 只解析不执行, 由调用方决定是否调用工具
func (a *AgentApi) Interpret(ctx *gin.Context) {
	var req dto.InterpretRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		common.Fail(ctx, common.BindError(err))
		return
	}
	common.Success(ctx, service.Current().Agent.BuildResult(ctx.Request.Context(), req.Text))
}
