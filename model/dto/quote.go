package dto

type QuoteItem struct {
	Description string  `json:"description" binding:"required"`
	Qty         float64 `json:"qty" binding:"gt=0"`
	UnitPrice   float64 `json:"unitPrice" binding:"gte=0"`
}

// QuotePayload 按客户id创建报价
type QuotePayload struct {
	CustomerId string      `json:"customerId" binding:"required,uuid"`
	Title      string      `json:"title" binding:"required"`
	Currency   string      `json:"currency,omitempty"`
	CreatedBy  string      `json:"createdBy,omitempty" binding:"omitempty,oneof=human ai_agent"`
	Items      []QuoteItem `json:"items" binding:"required,min=1,dive"`
}

// CreateQuoteArgs create_quote 工具入参, 客户按名称或id解析
type CreateQuoteArgs struct {
	CustomerNameOrId string         `json:"customerNameOrId" binding:"required"`
	Customer         *CustomerDraft `json:"customer,omitempty" binding:"omitempty"`
	Title            string         `json:"title" binding:"required"`
	Currency         string         `json:"currency,omitempty"`
	CreatedBy        string         `json:"createdBy,omitempty" binding:"omitempty,oneof=human ai_agent"`
	Items            []QuoteItem    `json:"items" binding:"required,min=1,dive"`
}

type GetQuoteArgs struct {
	Id string `json:"id" binding:"required,uuid"`
}

type IdUri struct {
	Id string `uri:"id" binding:"required"`
}
