package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rcdrguez/quickquote-agent-demo/model/common"
	"github.com/rcdrguez/quickquote-agent-demo/model/dto"
	"github.com/rcdrguez/quickquote-agent-demo/model/enum"
	"github.com/rcdrguez/quickquote-agent-demo/service"
)

type QuoteApi struct{}

func (a *QuoteApi) List(ctx *gin.Context) {
	list, err := service.Current().QuoteService.List(ctx.Request.Context())
	if err != nil {
		common.Fail(ctx, err)
		return
	}
	common.Success(ctx, list)
}

func (a *QuoteApi) Create(ctx *gin.Context) {
	var req dto.QuotePayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		common.Fail(ctx, common.BindError(err))
		return
	}

	q, err := service.Current().QuoteService.Create(ctx.Request.Context(), &req)
	if err != nil {
		common.Fail(ctx, err)
		return
	}
	common.Created(ctx, q)
}

func (a *QuoteApi) Get(ctx *gin.Context) {
	q, err := service.Current().QuoteService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		common.Fail(ctx, err)
		return
	}
	if q == nil {
		common.Fail(ctx, common.NewNotFound(enum.MsgQuoteNotFound))
		return
	}
	common.Success(ctx, q)
}
