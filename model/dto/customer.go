package dto

// CustomerPayload 创建/更新客户, 更新为整体覆盖
type CustomerPayload struct {
	Name  string  `json:"name" binding:"required"`
	Rnc   *string `json:"rnc,omitempty"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone *string `json:"phone,omitempty"`
}

// CustomerDraft 报价里附带的客户草稿, 全部可选
type CustomerDraft struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty" binding:"omitempty,email"`
	Rnc   string `json:"rnc,omitempty"`
	Phone string `json:"phone,omitempty"`
}
