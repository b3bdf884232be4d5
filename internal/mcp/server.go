package mcp

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rcdrguez/quickquote-agent-demo/model/common"
	"github.com/rcdrguez/quickquote-agent-demo/model/enum"
	"github.com/rcdrguez/quickquote-agent-demo/service/tool"
	"github.com/sirupsen/logrus"
)

// Caller 工具目录与执行入口
type Caller interface {
	Tools() []tool.Definition
	Call(ctx context.Context, name string, arguments json.RawMessage) (interface{}, error)
}

// NewServer 把工具目录注册到 MCP SDK 的服务端, 参数校验交给 Caller
func NewServer(caller Caller, version string, log logrus.FieldLogger) *mcp.Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	srv := mcp.NewServer(&mcp.Implementation{Name: enum.McpServerName, Version: version}, nil)
	for _, d := range caller.Tools() {
		name := string(d.Name)
		srv.AddTool(&mcp.Tool{
			Name:        name,
			Description: d.Description,
			InputSchema: d.InputSchema,
		}, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			res, err := caller.Call(ctx, name, req.Params.Arguments)
			if err != nil {
				return errorResult(err, name, log), nil
			}
			text, err := json.Marshal(res)
			if err != nil {
				return errorResult(err, name, log), nil
			}
			return &mcp.CallToolResult{
				Content:           []mcp.Content{&mcp.TextContent{Text: string(text)}},
				StructuredContent: res,
			}, nil
		})
	}
	return srv
}

// 错误以 {ok:false, error} 文本返回, isError 置为 true
func errorResult(err error, name string, log logrus.FieldLogger) *mcp.CallToolResult {
	_, body, unexpected := common.Classify(err)
	entry := log.WithFields(logrus.Fields{
		"event":   "error tool " + name,
		"details": map[string]interface{}{"message": err.Error()},
	})
	if unexpected {
		entry.Errorf("MCP工具执行出错[v8hs3t]: %v", err)
	} else {
		entry.Warn("MCP工具参数被拒绝: " + err.Error())
	}
	text, _ := json.Marshal(common.Envelope{Ok: false, Error: &body})
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(text)}},
		IsError: true,
	}
}

// NewStreamableHandler 标准 streamable-HTTP 端点; 新会话建立时取当前 server, 配置重载后无需重建路由
func NewStreamableHandler(current func() *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return current()
	}, nil)
}
