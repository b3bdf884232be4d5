package config

type Database struct {
	Type          string `json:"type" mapstructure:"type" yaml:"type"`
	SqlitePath    string `json:"sqlite_path" mapstructure:"sqlite_path" yaml:"sqlite_path"`
	MysqlHost     string `json:"mysql_host" mapstructure:"mysql_host" yaml:"mysql_host"`
	MysqlPort     string `json:"mysql_port" mapstructure:"mysql_port" yaml:"mysql_port"`
	MysqlDbname   string `json:"mysql_dbname" mapstructure:"mysql_dbname" yaml:"mysql_dbname"`
	MysqlUsername string `json:"mysql_username" mapstructure:"mysql_username" yaml:"mysql_username"`
	MysqlPassword string `json:"mysql_password" mapstructure:"mysql_password" yaml:"mysql_password"`
	SkipSeed      bool   `json:"skip_seed" mapstructure:"skip_seed" yaml:"skip_seed"`
}

type Redis struct {
	Addr         string `json:"addr" mapstructure:"addr" yaml:"addr"`
	Password     string `json:"password" mapstructure:"password" yaml:"password"`
	DB           int    `json:"db" mapstructure:"db" yaml:"db"`
	EmbeddingTTL int64  `json:"embedding_ttl" mapstructure:"embedding_ttl" yaml:"embedding_ttl"` // 秒, 0为不过期
}

type LlmEmbedding struct {
	Url     string `json:"url" mapstructure:"url" yaml:"url"`
	Model   string `json:"model" mapstructure:"model" yaml:"model"`
	Auth    string `json:"auth" mapstructure:"auth" yaml:"auth"`
	Timeout int64  `json:"timeout" mapstructure:"timeout" yaml:"timeout"` // 秒, http 客户端超时
}

type Ai struct {
	ConfirmationThreshold float64 `json:"confirmation_threshold" mapstructure:"confirmation_threshold" yaml:"confirmation_threshold"`
	EmbedTimeoutMs        int64   `json:"embed_timeout_ms" mapstructure:"embed_timeout_ms" yaml:"embed_timeout_ms"`
	WarmupSchedule        string  `json:"warmup_schedule" mapstructure:"warmup_schedule" yaml:"warmup_schedule"`
}

type Quote struct {
	TaxRate         float64 `json:"tax_rate" mapstructure:"tax_rate" yaml:"tax_rate"`
	DefaultCurrency string  `json:"default_currency" mapstructure:"default_currency" yaml:"default_currency"`
}

type Mcp struct {
	ProbeUrl  string `json:"probe_url" mapstructure:"probe_url" yaml:"probe_url"`
	ProbeAuth string `json:"probe_auth" mapstructure:"probe_auth" yaml:"probe_auth"`
}
