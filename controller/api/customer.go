package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rcdrguez/quickquote-agent-demo/model/common"
	"github.com/rcdrguez/quickquote-agent-demo/model/dto"
	"github.com/rcdrguez/quickquote-agent-demo/service"
)

type CustomerApi struct{}

func (a *CustomerApi) List(ctx *gin.Context) {
	list, err := service.Current().CustomerService.List(ctx.Request.Context())
	if err != nil {
		common.Fail(ctx, err)
		return
	}
	common.Success(ctx, list)
}

func (a *CustomerApi) Create(ctx *gin.Context) {
	var req dto.CustomerPayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		common.Fail(ctx, common.BindError(err))
		return
	}

	c, err := service.Current().CustomerService.Create(ctx.Request.Context(), &req)
	if err != nil {
		common.Fail(ctx, err)
		return
	}
	common.Created(ctx, c)
}

// Update 整体覆盖
func (a *CustomerApi) Update(ctx *gin.Context) {
	var uri dto.IdUri
	if err := ctx.ShouldBindUri(&uri); err != nil {
		common.Fail(ctx, common.BindError(err))
		return
	}
	var req dto.CustomerPayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		common.Fail(ctx, common.BindError(err))
		return
	}

	c, err := service.Current().CustomerService.Update(ctx.Request.Context(), uri.Id, &req)
	if err != nil {
		common.Fail(ctx, err)
		return
	}
	common.Success(ctx, c)
}
