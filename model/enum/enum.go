package enum

type DbType string

const (
	MYSQL  DbType = `mysql`
	SQLITE DbType = `sqlite3`
)

type Msg string

const (
	MsgValidation        Msg = `Validación inválida`
	MsgInternal          Msg = `Error interno del servidor`
	MsgCustomerNotFound  Msg = `Cliente no encontrado`
	MsgQuoteNotFound     Msg = `Cotización no encontrada`
	MsgQuoteCustomerMiss Msg = `Cliente no encontrado para crear la cotización`
)

// Intent 话语意图, 封闭集合
type Intent string

const (
	IntentCreateCustomer Intent = "CREATE_CUSTOMER"
	IntentCreateQuote    Intent = "CREATE_QUOTE"
	IntentListCustomers  Intent = "LIST_CUSTOMERS"
	IntentListQuotes     Intent = "LIST_QUOTES"
)

// Intents 评估顺序, 决定 alternatives 的排列
var Intents = []Intent{
	IntentCreateCustomer,
	IntentCreateQuote,
	IntentListCustomers,
	IntentListQuotes,
}

type ToolName string

const (
	ToolCreateCustomer ToolName = "create_customer"
	ToolListCustomers  ToolName = "list_customers"
	ToolCreateQuote    ToolName = "create_quote"
	ToolListQuotes     ToolName = "list_quotes"
	ToolGetQuote       ToolName = "get_quote"
)

var ToolNames = []ToolName{
	ToolCreateCustomer,
	ToolListCustomers,
	ToolCreateQuote,
	ToolListQuotes,
	ToolGetQuote,
}

// IsTool 判断是否为已注册的工具
func IsTool(name string) bool {
	for _, t := range ToolNames {
		if string(t) == name {
			return true
		}
	}
	return false
}

type CreatedBy string

const (
	CreatedByHuman   CreatedBy = "human"
	CreatedByAiAgent CreatedBy = "ai_agent"
)

type Currency string

const (
	CurrencyDOP Currency = "DOP"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// ClassifySource 意图由哪一层给出
type ClassifySource string

const (
	SourceStrict   ClassifySource = "strict"
	SourceSemantic ClassifySource = "semantic"
	SourceFallback ClassifySource = "fallback"
)

type LogLevel string

const (
	LogLevelInfo  LogLevel = "info"
	LogLevelError LogLevel = "error"
)

const (
	DefaultQuoteTitle       = `Cotización generada por agente`
	DefaultItemDescription  = `Servicio`
	JsonRpcVersion          = `2.0`
	JsonRpcMethodNotFound   = -32601
	McpProtocolVersion      = `2024-11-05`
	McpServerName           = `quickquote-mcp`
	McpServerVersion        = `1.0.0`
	RedisKeyPrefixEmbedding = `quickquote:embedding:`
)
