package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// 与 gin 共用 binding 标签
var validate = NewValidator()

// 字段级提示, 键为 "字段|规则"; 带结构体前缀的优先
var fieldMessages = map[string]string{
	"name|required":                  "El nombre es obligatorio",
	"email|email":                    "Correo inválido",
	"description|required":           "La descripción es obligatoria",
	"qty|gt":                         "La cantidad debe ser mayor a 0",
	"unitPrice|gte":                  "El precio no puede ser negativo",
	"customerId|required":            "CustomerId inválido",
	"customerId|uuid":                "CustomerId inválido",
	"title|required":                 "El título es obligatorio",
	"CreateQuoteArgs.title|required": "title es obligatorio",
	"items|required":                 "Debe incluir al menos un item",
	"items|min":                      "Debe incluir al menos un item",
	"customerNameOrId|required":      "customerNameOrId es obligatorio",
	"id|required":                    "id inválido",
	"id|uuid":                        "id inválido",
	"createdBy|oneof":                "createdBy debe ser human o ai_agent",
}

// NewValidator 以 binding 为标签, 字段名取 json 名
func NewValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	v.RegisterTagNameFunc(JsonTagName)
	return v
}

func JsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// Validate 校验结构体, 失败时返回 *ValidationError
func Validate(obj interface{}) error {
	if err := validate.Struct(obj); err != nil {
		return BindError(err)
	}
	return nil
}

// BindError 把 gin 绑定或校验错误转为 ValidationError, 其余原样返回
func BindError(err error) error {
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := NewValidationError()
		for _, fe := range ves {
			ve.AddField(topField(fe.Namespace()), fieldMessage(fe))
		}
		return ve
	}
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		field := te.Field
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[:i]
		}
		msg := fmt.Sprintf("Se esperaba %s, se recibió %s", te.Type.Kind(), te.Value)
		if field == "" {
			return NewValidationError().AddForm(msg)
		}
		return NewValidationError().AddField(field, msg)
	}
	var se *json.SyntaxError
	if errors.As(err, &se) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return NewValidationError().AddForm("JSON inválido")
	}
	var ive *validator.InvalidValidationError
	if errors.As(err, &ive) {
		return NewValidationError().AddForm("JSON inválido")
	}
	return err
}

// Namespace 形如 CreateQuoteArgs.items[0].qty, 取顶层字段
func topField(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	if i := strings.IndexAny(ns, ".["); i >= 0 {
		ns = ns[:i]
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	structName := strings.SplitN(fe.Namespace(), ".", 2)[0]
	if msg, ok := fieldMessages[structName+"."+fe.Field()+"|"+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := fieldMessages[fe.Field()+"|"+fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("Valor inválido (%s)", fe.Tag())
}
