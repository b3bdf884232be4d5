package business

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rcdrguez/quickquote-agent-demo/dao"
	"github.com/rcdrguez/quickquote-agent-demo/model/db"
	"github.com/rcdrguez/quickquote-agent-demo/model/enum"
	"github.com/rcdrguez/quickquote-agent-demo/utils"
)

func strPtr(s string) *string { return &s }

// SeedDemoData 客户表为空时写入演示数据, 返回是否写入
func SeedDemoData(ctx context.Context) (bool, error) {
	n, err := dao.App.CustomerDb.Count()
	if err != nil {
		return false, fmt.Errorf("统计客户失败: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	now := utils.IsoNow()
	customers := []db.Customer{
		{
			BaseField: db.BaseField{Id: uuid.NewString(), CreatedAt: now},
			Name:      "Juan Pérez",
			Rnc:       strPtr("131-1234567-8"),
			Email:     strPtr("juan@correo.com"),
			Phone:     strPtr("8095551234"),
		},
		{
			BaseField: db.BaseField{Id: uuid.NewString(), CreatedAt: now},
			Name:      "María Rodríguez",
			Rnc:       strPtr("101-7654321-9"),
			Email:     strPtr("maria@correo.com"),
			Phone:     strPtr("8294449876"),
		},
	}
	items := db.QuoteItems{{Description: "Servicio de logística", Qty: 2, UnitPrice: 7500}}
	quote := db.Quote{
		BaseField:  db.BaseField{Id: uuid.NewString(), CreatedAt: now},
		CustomerId: customers[0].Id,
		Title:      "Cotización inicial logística",
		Currency:   string(enum.CurrencyDOP),
		CreatedBy:  string(enum.CreatedByHuman),
		Items:      items,
	}
	quote.Subtotal, quote.Tax, quote.Total = ComputeTotals(items, taxRate())

	tx, err := dao.DB.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("开启事务失败: %w", err)
	}
	defer tx.Rollback()

	for i := range customers {
		if err := dao.App.CustomerDb.Insert(&customers[i], tx); err != nil {
			return false, err
		}
	}
	if err := dao.App.QuoteDb.Insert(&quote, tx); err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("提交事务失败: %w", err)
	}
	return true, nil
}
