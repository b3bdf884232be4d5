package global

import (
	"time"

	"github.com/rcdrguez/quickquote-agent-demo/internal/embedding"
	"github.com/rcdrguez/quickquote-agent-demo/internal/logbuf"
	"github.com/rcdrguez/quickquote-agent-demo/internal/redis"
	"github.com/rcdrguez/quickquote-agent-demo/model/config"
	"github.com/sirupsen/logrus"
)

var Version = "1.0.0"

// 全局变量
// 业务逻辑禁止修改
var (
	Config           = new(config.Config) //指针类型, 给与其内存空间
	Log              *logrus.Logger
	Tz               = time.UTC
	EmbeddingService embedding.Service
	RedisClient      redis.Service
	ServerLogs       = logbuf.New(logbuf.DefaultCapacity)
)
