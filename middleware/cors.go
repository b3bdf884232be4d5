package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rcdrguez/quickquote-agent-demo/global"
	"github.com/rcdrguez/quickquote-agent-demo/utils"
)

func CorsHandle() gin.HandlerFunc {
	c := cors.DefaultConfig()
	if utils.InSlice(global.Config.Cors, "*") > -1 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = global.Config.Cors
	}
	c.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "Mcp-Session-Id", "Mcp-Protocol-Version", "Last-Event-ID"}
	c.ExposeHeaders = []string{"Mcp-Session-Id"}
	c.MaxAge = 12 * time.Hour
	return cors.New(c)
}
