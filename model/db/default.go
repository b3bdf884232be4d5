package db

// 所有数据库结构体 都需实现的接口
type Dbfunc interface {
	TableName() string
}

// 可能为null的字段, 用指针
type BaseField struct {
	Id        string `db:"id" json:"id"`
	CreatedAt string `db:"createdAt" json:"createdAt"`
}
