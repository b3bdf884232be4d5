package dao

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rcdrguez/quickquote-agent-demo/model/db"
)

type QuoteDb struct{}

func (d *QuoteDb) GetList(list *[]db.Quote, tx ...*sqlx.Tx) error {
	sql := fmt.Sprintf("SELECT * FROM `%s` ORDER BY `createdAt` DESC", db.Quote{}.TableName())
	return sqlx.Select(conn(tx), list, sql)
}

func (d *QuoteDb) GetById(q *db.Quote, id string, tx ...*sqlx.Tx) error {
	e := conn(tx)
	sql := fmt.Sprintf("SELECT * FROM `%s` WHERE `id` = ?", db.Quote{}.TableName())
	return sqlx.Get(e, q, e.Rebind(sql), id)
}

func (d *QuoteDb) Count(tx ...*sqlx.Tx) (n int64, err error) {
	sql := fmt.Sprintf("SELECT COUNT(*) FROM `%s`", db.Quote{}.TableName())
	err = sqlx.Get(conn(tx), &n, sql)
	return
}

func (d *QuoteDb) Insert(q *db.Quote, tx ...*sqlx.Tx) error {
	items, err := q.Items.Value()
	if err != nil {
		return fmt.Errorf("序列化明细失败: %w", err)
	}

	e := conn(tx)
	sql, args := utils.getInsertSql(db.Quote{}, map[string]interface{}{
		"id":         q.Id,
		"customerId": q.CustomerId,
		"title":      q.Title,
		"currency":   q.Currency,
		"createdBy":  q.CreatedBy,
		"items":      items,
		"subtotal":   q.Subtotal,
		"tax":        q.Tax,
		"total":      q.Total,
		"createdAt":  q.CreatedAt,
	})
	if _, err := e.Exec(e.Rebind(sql), args...); err != nil {
		return fmt.Errorf("写入报价失败[q9m3vd]: %w", err)
	}
	return nil
}
