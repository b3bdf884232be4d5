package mcp

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// transportWithAuth 在每个请求中添加认证头
type transportWithAuth struct {
	http.RoundTripper
	token string
}

func (t *transportWithAuth) RoundTrip(req *http.Request) (*http.Response, error) {
	req2 := req.Clone(req.Context())
	if t.token != "" {
		req2.Header.Set("Authorization", "Bearer "+t.token)
	}
	return t.RoundTripper.RoundTrip(req2)
}

// HTTPTransport auth 为空时不带认证头
func HTTPTransport(endpoint, auth string) mcp.Transport {
	return &mcp.StreamableClientTransport{
		Endpoint: endpoint,
		HTTPClient: &http.Client{
			Transport: &transportWithAuth{RoundTripper: http.DefaultTransport, token: auth},
			Timeout:   30 * time.Second,
		},
	}
}

// Client 一次性的 连接-请求-关闭 客户端, 每次调用都需要新的 transport
type Client struct {
	client *mcp.Client
}

func NewClient(projectName, version string) *Client {
	return &Client{client: mcp.NewClient(&mcp.Implementation{Name: projectName, Version: version}, nil)}
}

// ListTools 列出远端工具
func (c *Client) ListTools(ctx context.Context, transport mcp.Transport) ([]*mcp.Tool, error) {
	session, err := c.client.Connect(ctx, transport, nil)
	if err != nil {
		return nil, fmt.Errorf("连接MCP服务失败[p9rb4e]: %w", err)
	}
	defer session.Close()

	var tools []*mcp.Tool
	for t, err := range session.Tools(ctx, nil) {
		if err != nil {
			return nil, fmt.Errorf("获取工具列表出错: %w", err)
		}
		tools = append(tools, t)
	}
	return tools, nil
}

// CallTool 调用远端工具, 返回文本内容
func (c *Client) CallTool(ctx context.Context, transport mcp.Transport, name string, arguments map[string]interface{}) (string, error) {
	session, err := c.client.Connect(ctx, transport, nil)
	if err != nil {
		return "", fmt.Errorf("连接MCP服务失败[p9rb4e]: %w", err)
	}
	defer session.Close()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: arguments})
	if err != nil {
		return "", fmt.Errorf("调用工具 '%s' 失败: %w", name, err)
	}

	var sb strings.Builder
	for _, content := range res.Content {
		if text, ok := content.(*mcp.TextContent); ok {
			sb.WriteString(text.Text)
		}
	}
	if res.IsError {
		return "", fmt.Errorf("工具 '%s' 执行返回错误: %s", name, sb.String())
	}
	return sb.String(), nil
}
