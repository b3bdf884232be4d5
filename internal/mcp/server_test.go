package mcp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rcdrguez/quickquote-agent-demo/model/common"
	"github.com/rcdrguez/quickquote-agent-demo/model/enum"
	"github.com/rcdrguez/quickquote-agent-demo/service/tool"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCaller struct {
	lastName string
	lastArgs map[string]interface{}
}

func (f *fakeCaller) Tools() []tool.Definition {
	return tool.Catalogue()
}

func (f *fakeCaller) Call(_ context.Context, name string, arguments json.RawMessage) (interface{}, error) {
	f.lastName = name
	f.lastArgs = nil
	if len(arguments) > 0 {
		_ = json.Unmarshal(arguments, &f.lastArgs)
	}
	if name == string(enum.ToolGetQuote) {
		return nil, common.NewNotFound(enum.MsgQuoteNotFound)
	}
	return []map[string]string{{"name": "Juan Pérez"}}, nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func connect(t *testing.T, srv *mcp.Server) mcp.Transport {
	t.Helper()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	ss, err := srv.Connect(context.Background(), serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })
	return clientTransport
}

func TestServerListsCatalogue(t *testing.T) {
	srv := NewServer(&fakeCaller{}, "test", quietLogger())
	c := NewClient("test-client", "test")

	tools, err := c.ListTools(context.Background(), connect(t, srv))
	require.NoError(t, err)

	names := map[string]string{}
	for _, tl := range tools {
		names[tl.Name] = tl.Description
	}
	assert.Len(t, names, 5)
	assert.Equal(t, "Crea una cotización por nombre o id de cliente", names["create_quote"])
}

func TestServerCallsTool(t *testing.T) {
	caller := &fakeCaller{}
	srv := NewServer(caller, "test", quietLogger())
	c := NewClient("test-client", "test")

	text, err := c.CallTool(context.Background(), connect(t, srv), "create_customer", map[string]interface{}{"name": "Ana"})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Juan Pérez"}]`, text)
	assert.Equal(t, "create_customer", caller.lastName)
	assert.Equal(t, "Ana", caller.lastArgs["name"])
}

func TestServerReportsToolErrors(t *testing.T) {
	srv := NewServer(&fakeCaller{}, "test", quietLogger())
	c := NewClient("test-client", "test")

	_, err := c.CallTool(context.Background(), connect(t, srv), "get_quote", map[string]interface{}{"id": "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cotización no encontrada")
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestTransportWithAuth(t *testing.T) {
	var got string
	rt := &transportWithAuth{
		RoundTripper: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			got = r.Header.Get("Authorization")
			return httptest.NewRecorder().Result(), nil
		}),
		token: "secret",
	}
	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	_, err := rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret", got)
	assert.Empty(t, req.Header.Get("Authorization"))
}
