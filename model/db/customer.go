package db

type Customer struct {
	BaseField
	Name  string  `db:"name" json:"name" info:"名称"`
	Rnc   *string `db:"rnc" json:"rnc,omitempty" info:"税号"`
	Email *string `db:"email" json:"email,omitempty" info:"邮箱"`
	Phone *string `db:"phone" json:"phone,omitempty" info:"电话"`
}

func (Customer) TableName() string {
	return `customers`
}
