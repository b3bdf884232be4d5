package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rcdrguez/quickquote-agent-demo/global"
	"github.com/rcdrguez/quickquote-agent-demo/internal/mcp"
)

// ProbeMcp 连接配置中的 MCP 端点并列出工具, 用于检查服务是否可用
func (m *Manager) ProbeMcp() error {
	cfg := global.Config.Mcp
	if cfg.ProbeUrl == "" {
		return fmt.Errorf("未配置 mcp.probe_url")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := mcp.NewClient(global.Config.ProjectName, global.Version)
	tools, err := client.ListTools(ctx, mcp.HTTPTransport(cfg.ProbeUrl, cfg.ProbeAuth))
	if err != nil {
		return fmt.Errorf("探测MCP服务 '%s' 失败: %w", cfg.ProbeUrl, err)
	}

	names := make([]string, 0, len(tools))
	for _, t := range tools {
		names = append(names, t.Name)
	}
	global.Log.Infof("MCP服务 '%s' 提供 %d 个工具: %s", cfg.ProbeUrl, len(tools), strings.Join(names, ", "))
	return nil
}
