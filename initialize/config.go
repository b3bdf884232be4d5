package initialize

import (
	"flag"
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/gin-gonic/gin"
	"github.com/rcdrguez/quickquote-agent-demo/global"
	"github.com/rcdrguez/quickquote-agent-demo/model/config"
	"github.com/rcdrguez/quickquote-agent-demo/model/enum"
	"github.com/spf13/viper"
)

var (
	Conf string
	Act  string
)

func init() {
	flag.StringVar(&Conf, "c", "", "choose config file.")
	flag.StringVar(&Act, "a", "", `行为,默认为空,即启动服务; "seed": 写入演示数据; "mcp": 探测MCP端点; "warmup": 预热意图示例; "clear": 清除过期日志`)
}

// New 创建一个新的初始化器，并加载配置文件
func New() *Initializer {
	var configPath string
	if gin.Mode() != gin.TestMode {
		flag.Parse()
		if Conf != "" {
			configPath = Conf
		}
	}
	if configPath == "" {
		configPath = `config.yaml`
	}

	i := &Initializer{}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		panic("读取配置失败[u9ij]: " + configPath + err.Error())
	}

	if err := v.Unmarshal(global.Config); err != nil {
		panic("出错[dhfal]: " + err.Error())
	}
	handleConfig(global.Config)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		fmt.Println("配置文件变化[djiads]: ", e.Name)
		newConfig := new(config.Config)
		if err := v.Unmarshal(newConfig); err != nil {
			fmt.Println(err)
			return
		}
		handleConfig(newConfig)
		oldConfig := global.Config.DeepCopy()
		*global.Config = *newConfig
		if global.Log != nil {
			i.HandleConfigChange(oldConfig, global.Config)
		}
	})

	return i
}

// handleConfig 处理和设置配置的默认值
func handleConfig(c *config.Config) {
	if c.ProjectName == "" {
		c.ProjectName = "QuickQuote"
	}
	if c.GinAddr == "" {
		c.GinAddr = ":8787"
	}
	if c.GinLogPath == "" {
		c.GinLogPath = "log/gin.log"
	}
	if c.RunLogPath == "" {
		c.RunLogPath = "log/run.log"
	}
	if c.Tz == "" {
		c.Tz = "America/Santo_Domingo"
	}
	if len(c.Cors) == 0 {
		c.Cors = []string{"http://localhost:5173"}
	}
	if c.Database.Type == "" {
		c.Database.Type = string(enum.SQLITE)
	}
	if c.Database.SqlitePath == "" {
		c.Database.SqlitePath = "data/quickquote.db"
	}
	if c.Redis.EmbeddingTTL == 0 {
		c.Redis.EmbeddingTTL = 7 * 24 * 3600
	}
	if c.LlmEmbedding.Timeout == 0 {
		c.LlmEmbedding.Timeout = 5
	}
	if c.Ai.ConfirmationThreshold == 0 {
		c.Ai.ConfirmationThreshold = 0.72
	}
	if c.Ai.EmbedTimeoutMs == 0 {
		c.Ai.EmbedTimeoutMs = 1500
	}
	if c.Ai.WarmupSchedule == "" {
		c.Ai.WarmupSchedule = "0 */6 * * *"
	}
	if c.Quote.TaxRate == 0 {
		c.Quote.TaxRate = 0.18
	}
	if c.Quote.DefaultCurrency == "" {
		c.Quote.DefaultCurrency = string(enum.CurrencyDOP)
	}
}
