package dao

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rcdrguez/quickquote-agent-demo/model/db"
)

type SchemaDb struct{}

// sqlite 与 mysql 通用的建表语句
var schemaSql = []string{
	fmt.Sprintf("CREATE TABLE IF NOT EXISTS `%s` ("+
		"`id` VARCHAR(36) NOT NULL PRIMARY KEY, "+
		"`name` VARCHAR(255) NOT NULL, "+
		"`rnc` VARCHAR(32) NULL, "+
		"`email` VARCHAR(255) NULL, "+
		"`phone` VARCHAR(32) NULL, "+
		"`createdAt` VARCHAR(32) NOT NULL)", db.Customer{}.TableName()),
	fmt.Sprintf("CREATE TABLE IF NOT EXISTS `%s` ("+
		"`id` VARCHAR(36) NOT NULL PRIMARY KEY, "+
		"`customerId` VARCHAR(36) NOT NULL, "+
		"`title` VARCHAR(255) NOT NULL, "+
		"`currency` VARCHAR(8) NOT NULL, "+
		"`createdBy` VARCHAR(16) NOT NULL, "+
		"`items` TEXT NOT NULL, "+
		"`subtotal` DOUBLE NOT NULL DEFAULT 0, "+
		"`tax` DOUBLE NOT NULL DEFAULT 0, "+
		"`total` DOUBLE NOT NULL DEFAULT 0, "+
		"`createdAt` VARCHAR(32) NOT NULL)", db.Quote{}.TableName()),
}

// Migrate 建表, 已存在则跳过
func (d *SchemaDb) Migrate(tx ...*sqlx.Tx) error {
	c := conn(tx)
	for _, sql := range schemaSql {
		if _, err := c.Exec(sql); err != nil {
			return fmt.Errorf("建表失败[m1gr4t]: %w", err)
		}
	}
	return nil
}
