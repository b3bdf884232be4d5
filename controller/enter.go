package controller

import (
	"github.com/rcdrguez/quickquote-agent-demo/controller/api"
	"github.com/rcdrguez/quickquote-agent-demo/controller/rpc"
)

var Api = new(ApiGroup)

type ApiGroup struct {
	RestApiGroup api.ApiGroup
	RpcApiGroup  rpc.ApiGroup
}
