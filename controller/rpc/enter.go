package rpc

type ApiGroup struct {
	McpApi McpApi
}
