package api

type ApiGroup struct {
	CustomerApi CustomerApi
	QuoteApi    QuoteApi
	AgentApi    AgentApi
	LogApi      LogApi
}
