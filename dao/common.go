package dao

import (
	"sort"
	"strings"

	"github.com/rcdrguez/quickquote-agent-demo/model/db"
)

type dbUtils struct{}

func sortedKeys(data map[string]interface{}) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (u *dbUtils) getInsertSql(d db.Dbfunc, data map[string]interface{}) (string, []interface{}) {
	if len(data) < 1 {
		return ``, []interface{}{}
	}

	keys := sortedKeys(data)
	args := make([]interface{}, 0, len(keys))

	var fields strings.Builder
	for i, k := range keys {
		if i > 0 {
			fields.WriteString(", ")
		}
		fields.WriteByte('`')
		fields.WriteString(k)
		fields.WriteByte('`')
		args = append(args, data[k])
	}

	var sql strings.Builder
	sql.WriteString("INSERT INTO `")
	sql.WriteString(d.TableName())
	sql.WriteString("` (")
	sql.WriteString(fields.String())
	sql.WriteString(") VALUES (?")
	sql.WriteString(strings.Repeat(", ?", len(keys)-1))
	sql.WriteString(")")

	return sql.String(), args
}

func (u *dbUtils) getUpdateSql(d db.Dbfunc, id string, data map[string]interface{}) (string, []interface{}) {
	if len(data) < 1 {
		return ``, []interface{}{}
	}

	var (
		fields strings.Builder
		sql    strings.Builder
		args   []interface{} = make([]interface{}, 0, len(data)+1)
	)

	for _, k := range sortedKeys(data) {
		fields.WriteString(" `")
		fields.WriteString(k)
		fields.WriteString("` = ?,")
		args = append(args, data[k])
	}

	sql.WriteString("UPDATE `")
	sql.WriteString(d.TableName())
	sql.WriteString("` SET")
	sql.WriteString(strings.TrimRight(fields.String(), ","))
	sql.WriteString(" WHERE `id` = ?")
	args = append(args, id)

	return sql.String(), args
}
