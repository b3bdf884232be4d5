package service

import (
	"sync/atomic"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rcdrguez/quickquote-agent-demo/global"
	"github.com/rcdrguez/quickquote-agent-demo/internal/mcp"
	"github.com/rcdrguez/quickquote-agent-demo/service/agent"
	"github.com/rcdrguez/quickquote-agent-demo/service/business"
	"github.com/rcdrguez/quickquote-agent-demo/service/tool"
	"github.com/sirupsen/logrus"
)

type ServiceGroup struct {
	business.ServiceGroup
	Agent     *agent.Builder
	Tool      *tool.Router
	McpServer *sdk.Server
}

var current atomic.Pointer[ServiceGroup]

func init() {
	current.Store(new(ServiceGroup))
}

// Current 当前生效的服务组; 处理请求时取一次, 热重载不影响进行中的请求
func Current() *ServiceGroup {
	return current.Load()
}

// Swap 整体替换服务组并返回新值
func Swap(group ServiceGroup) *ServiceGroup {
	g := &group
	current.Store(g)
	return g
}

// 全局日志未初始化时退回标准日志
func logger() logrus.FieldLogger {
	if global.Log != nil {
		return global.Log
	}
	return logrus.StandardLogger()
}

// NewServiceGroup 按当前配置与全局客户端组装服务
func NewServiceGroup() ServiceGroup {
	biz := business.NewServiceGroup()
	log := logger()

	var cache agent.Cache
	if global.RedisClient != nil {
		cache = agent.NewRedisCache(global.RedisClient, global.Config.Redis.EmbeddingTTL, log)
	} else {
		cache = agent.NewMemoryCache()
	}

	opts := []agent.ClassifierOption{agent.WithCache(cache), agent.WithLogger(log)}
	if ms := global.Config.Ai.EmbedTimeoutMs; ms > 0 {
		opts = append(opts, agent.WithEmbedTimeout(time.Duration(ms)*time.Millisecond))
	}
	classifier := agent.NewClassifier(global.EmbeddingService, opts...)

	router := tool.NewRouter(biz.CustomerService, biz.QuoteService, tool.WithLogger(log))

	return ServiceGroup{
		ServiceGroup: biz,
		Agent:        agent.NewBuilder(classifier, agent.WithConfirmationThreshold(global.Config.Ai.ConfirmationThreshold)),
		Tool:         router,
		McpServer:    mcp.NewServer(router, global.Version, log),
	}
}
