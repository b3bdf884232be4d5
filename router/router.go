package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rcdrguez/quickquote-agent-demo/controller"
	"github.com/rcdrguez/quickquote-agent-demo/internal/mcp"
	"github.com/rcdrguez/quickquote-agent-demo/middleware"
	"github.com/rcdrguez/quickquote-agent-demo/model/common"
	"github.com/rcdrguez/quickquote-agent-demo/service"
)

func Start(ginServer *gin.Engine) {
	// 校验错误里使用 json 字段名
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(common.JsonTagName)
	}

	ginServer.Use(middleware.CorsHandle(), middleware.RequestEvent()) //全局中间件

	ginServer.GET("/health", func(ctx *gin.Context) {
		common.Success(ctx, gin.H{"ok": true})
	})

	ginServer.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, common.ErrorBody{Message: "Ruta no encontrada"})
	})

	rest := controller.Api.RestApiGroup
	api := ginServer.Group("api")
	{
		api.GET("/customers", rest.CustomerApi.List)
		api.POST("/customers", rest.CustomerApi.Create)
		api.PUT("/customers/:id", rest.CustomerApi.Update)

		api.GET("/quotes", rest.QuoteApi.List)
		api.POST("/quotes", rest.QuoteApi.Create)
		api.GET("/quotes/:id", rest.QuoteApi.Get)

		api.POST("/agent/interpret", rest.AgentApi.Interpret)
		api.GET("/logs", rest.LogApi.List)
	}

	ginServer.POST("/mcp", controller.Api.RpcApiGroup.McpApi.Handle)
	ginServer.Any("/mcp/stream", gin.WrapH(mcp.NewStreamableHandler(func() *sdk.Server {
		return service.Current().McpServer
	})))
}
