package dao

import (
	"github.com/jmoiron/sqlx"
)

type DbGroup struct {
	CustomerDb
	QuoteDb
	SchemaDb
}

var (
	DB    *sqlx.DB
	App   = new(DbGroup)
	utils = new(dbUtils)
)

// 有事务用事务, 否则用全局连接
func conn(tx []*sqlx.Tx) sqlx.Ext {
	if len(tx) > 0 && tx[0] != nil {
		return tx[0]
	}
	return DB
}
