package dao

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rcdrguez/quickquote-agent-demo/model/db"
)

type CustomerDb struct{}

func (d *CustomerDb) GetList(list *[]db.Customer, tx ...*sqlx.Tx) error {
	sql := fmt.Sprintf("SELECT * FROM `%s` ORDER BY `createdAt` DESC", db.Customer{}.TableName())
	return sqlx.Select(conn(tx), list, sql)
}

// 不存在时返回 sql.ErrNoRows
func (d *CustomerDb) GetById(c *db.Customer, id string, tx ...*sqlx.Tx) error {
	e := conn(tx)
	sql := fmt.Sprintf("SELECT * FROM `%s` WHERE `id` = ?", db.Customer{}.TableName())
	return sqlx.Get(e, c, e.Rebind(sql), id)
}

// 名称不区分大小写, 同名取最早创建的
func (d *CustomerDb) GetByName(c *db.Customer, name string, tx ...*sqlx.Tx) error {
	e := conn(tx)
	sql := fmt.Sprintf("SELECT * FROM `%s` WHERE LOWER(`name`) = LOWER(?) ORDER BY `createdAt` ASC LIMIT 1", db.Customer{}.TableName())
	return sqlx.Get(e, c, e.Rebind(sql), name)
}

func (d *CustomerDb) Count(tx ...*sqlx.Tx) (n int64, err error) {
	sql := fmt.Sprintf("SELECT COUNT(*) FROM `%s`", db.Customer{}.TableName())
	err = sqlx.Get(conn(tx), &n, sql)
	return
}

func (d *CustomerDb) Insert(c *db.Customer, tx ...*sqlx.Tx) error {
	e := conn(tx)
	sql, args := utils.getInsertSql(db.Customer{}, map[string]interface{}{
		"id":        c.Id,
		"name":      c.Name,
		"rnc":       c.Rnc,
		"email":     c.Email,
		"phone":     c.Phone,
		"createdAt": c.CreatedAt,
	})
	if _, err := e.Exec(e.Rebind(sql), args...); err != nil {
		return fmt.Errorf("写入客户失败[c7x2ka]: %w", err)
	}
	return nil
}

// Update 返回受影响行数, 0 表示不存在
func (d *CustomerDb) Update(id string, data map[string]interface{}, tx ...*sqlx.Tx) (int64, error) {
	if len(data) == 0 {
		return 0, nil
	}
	e := conn(tx)
	sql, args := utils.getUpdateSql(db.Customer{}, id, data)
	res, err := e.Exec(e.Rebind(sql), args...)
	if err != nil {
		return 0, fmt.Errorf("更新客户失败[u4pz0e]: %w", err)
	}
	return res.RowsAffected()
}
