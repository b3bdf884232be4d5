package tool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rcdrguez/quickquote-agent-demo/model/common"
	"github.com/rcdrguez/quickquote-agent-demo/model/enum"
)

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Jsonrpc string          `json:"jsonrpc"`
	Id      json.RawMessage `json:"id"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type serverInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type initializeResult struct {
	ProtocolVersion string                 `json:"protocolVersion"`
	ServerInfo      serverInfo             `json:"serverInfo"`
	Capabilities    map[string]interface{} `json:"capabilities"`
}

type TextContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type CallResult struct {
	Content           []TextContent `json:"content"`
	StructuredContent interface{}   `json:"structuredContent"`
	IsError           bool          `json:"isError"`
}

var nullId = json.RawMessage("null")

// Handle 处理 POST /mcp 请求体, 同时兼容 JSON-RPC 2.0 与旧版 {tool, input}。
// err 不为 nil 时调用方应输出 {ok:false, error} 信封
func (r *Router) Handle(ctx context.Context, body []byte) (int, interface{}, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return 0, nil, common.NewValidationError().AddForm("Se esperaba object")
	}

	if id, method, params, ok := asJsonRpc(fields); ok {
		return r.handleRpc(ctx, id, method, params)
	}
	return r.handleLegacy(ctx, fields)
}

// jsonrpc 为 "2.0" 且 method 为非空字符串时按 JSON-RPC 处理
func asJsonRpc(fields map[string]json.RawMessage) (json.RawMessage, string, map[string]json.RawMessage, bool) {
	var version, method string
	if json.Unmarshal(fields["jsonrpc"], &version) != nil || version != enum.JsonRpcVersion {
		return nil, "", nil, false
	}
	if json.Unmarshal(fields["method"], &method) != nil || method == "" {
		return nil, "", nil, false
	}

	id := nullId
	if raw, ok := fields["id"]; ok {
		raw = bytes.TrimSpace(raw)
		if !isRpcId(raw) {
			return nil, "", nil, false
		}
		id = raw
	}

	params := map[string]json.RawMessage{}
	if raw, ok := fields["params"]; ok && string(bytes.TrimSpace(raw)) != "null" {
		if json.Unmarshal(raw, &params) != nil {
			return nil, "", nil, false
		}
	}
	return id, method, params, true
}

func isRpcId(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	switch raw[0] {
	case '"', 'n':
		return true
	}
	var n json.Number
	return json.Unmarshal(raw, &n) == nil
}

func (r *Router) handleRpc(ctx context.Context, id json.RawMessage, method string, params map[string]json.RawMessage) (int, interface{}, error) {
	switch method {
	case "initialize":
		return http.StatusOK, rpcResponse{Jsonrpc: enum.JsonRpcVersion, Id: id, Result: initializeResult{
			ProtocolVersion: enum.McpProtocolVersion,
			ServerInfo:      serverInfo{Name: enum.McpServerName, Version: enum.McpServerVersion},
			Capabilities:    map[string]interface{}{"tools": map[string]interface{}{}},
		}}, nil

	case "tools/list":
		return http.StatusOK, rpcResponse{Jsonrpc: enum.JsonRpcVersion, Id: id, Result: map[string]interface{}{
			"tools": r.Tools(),
		}}, nil

	case "tools/call":
		var name string
		if err := json.Unmarshal(params["name"], &name); err != nil {
			return 0, nil, common.NewValidationError().AddForm(unknownToolMessage(string(params["name"])))
		}
		if _, ok := Lookup(name); !ok {
			return 0, nil, common.NewValidationError().AddForm(unknownToolMessage(name))
		}
		res, err := r.Call(ctx, name, params["arguments"])
		if err != nil {
			return 0, nil, err
		}
		result, err := NewCallResult(res)
		if err != nil {
			return 0, nil, err
		}
		return http.StatusOK, rpcResponse{Jsonrpc: enum.JsonRpcVersion, Id: id, Result: result}, nil
	}

	return http.StatusBadRequest, rpcResponse{Jsonrpc: enum.JsonRpcVersion, Id: id, Error: &rpcError{
		Code:    enum.JsonRpcMethodNotFound,
		Message: "Method not found: " + method,
	}}, nil
}

func (r *Router) handleLegacy(ctx context.Context, fields map[string]json.RawMessage) (int, interface{}, error) {
	var name string
	if err := json.Unmarshal(fields["tool"], &name); err != nil || !enum.IsTool(name) {
		return 0, nil, common.NewValidationError().AddField("tool", unknownToolMessage(name))
	}
	res, err := r.Call(ctx, name, fields["input"])
	if err != nil {
		return 0, nil, err
	}
	return http.StatusOK, common.Envelope{Ok: true, Result: res}, nil
}

// NewCallResult 结果同时以文本与结构化形式返回
func NewCallResult(res interface{}) (*CallResult, error) {
	text, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("序列化工具结果失败[j5rp2c]: %w", err)
	}
	return &CallResult{
		Content:           []TextContent{{Type: "text", Text: string(text)}},
		StructuredContent: res,
		IsError:           false,
	}, nil
}
