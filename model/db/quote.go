package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type QuoteItem struct {
	Description string  `json:"description"`
	Qty         float64 `json:"qty"`
	UnitPrice   float64 `json:"unitPrice"`
}

// QuoteItems 以 JSON 文本存储于 items 列
type QuoteItems []QuoteItem

func (q QuoteItems) Value() (driver.Value, error) {
	if q == nil {
		q = QuoteItems{}
	}
	b, err := json.Marshal(q)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (q *QuoteItems) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*q = QuoteItems{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("items 列类型不支持: %T", src)
	}
	return json.Unmarshal(raw, q)
}

type Quote struct {
	BaseField
	CustomerId string     `db:"customerId" json:"customerId" info:"客户id"`
	Title      string     `db:"title" json:"title" info:"标题"`
	Currency   string     `db:"currency" json:"currency" info:"币种"`
	CreatedBy  string     `db:"createdBy" json:"createdBy" info:"创建来源"`
	Items      QuoteItems `db:"items" json:"items" info:"明细"`
	Subtotal   float64    `db:"subtotal" json:"subtotal"`
	Tax        float64    `db:"tax" json:"tax"`
	Total      float64    `db:"total" json:"total"`
}

func (Quote) TableName() string {
	return `quotes`
}
