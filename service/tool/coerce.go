package tool

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/rcdrguez/quickquote-agent-demo/model/common"
)

// 缺少必填字段时的提示, 未列出的用通用提示
var requiredMessages = map[string]string{
	"name":             "El nombre es obligatorio",
	"description":      "La descripción es obligatoria",
	"title":            "title es obligatorio",
	"customerNameOrId": "customerNameOrId es obligatorio",
	"items":            "Debe incluir al menos un item",
	"id":               "id inválido",
}

const requiredMessage = "Campo obligatorio"

// coerceArguments 按 schema 递归修正参数类型, 例如把字符串 "2" 转为数字 2。
// 缺少必填字段或类型不符时记入 ve, 错误挂在顶层字段下
func coerceArguments(args map[string]interface{}, schema *jsonschema.Schema, ve *common.ValidationError) map[string]interface{} {
	coerceObject(args, schema, "", ve)
	return args
}

func coerceObject(obj map[string]interface{}, schema *jsonschema.Schema, top string, ve *common.ValidationError) {
	for _, key := range schema.Required {
		if v, ok := obj[key]; !ok || v == nil {
			field := key
			if top != "" {
				field = top
			}
			msg, ok := requiredMessages[key]
			if !ok {
				msg = requiredMessage
			}
			ve.AddField(field, msg)
		}
	}

	for key, value := range obj {
		prop, ok := schema.Properties[key]
		if !ok || value == nil {
			continue // 未声明的字段原样保留
		}
		field := key
		if top != "" {
			field = top
		}
		obj[key] = coerceValue(value, prop, field, ve)
	}
}

func coerceValue(value interface{}, schema *jsonschema.Schema, field string, ve *common.ValidationError) interface{} {
	switch schema.Type {
	case "number", "integer":
		switch v := value.(type) {
		case float64:
			return v
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return f
			}
		}
	case "boolean":
		switch v := value.(type) {
		case bool:
			return v
		case string:
			if b, err := strconv.ParseBool(v); err == nil {
				return b
			}
		}
	case "string":
		if _, ok := value.(string); ok {
			return value
		}
	case "object":
		if m, ok := value.(map[string]interface{}); ok {
			coerceObject(m, schema, field, ve)
			return m
		}
	case "array":
		if list, ok := value.([]interface{}); ok {
			if schema.Items != nil {
				for i, el := range list {
					if el == nil {
						ve.AddField(field, fmt.Sprintf("Se esperaba %s, se recibió null", schema.Items.Type))
						continue
					}
					list[i] = coerceValue(el, schema.Items, field, ve)
				}
			}
			return list
		}
	default:
		return value
	}
	ve.AddField(field, fmt.Sprintf("Se esperaba %s, se recibió %s", schema.Type, jsonType(value)))
	return value
}

func jsonType(v interface{}) string {
	switch v.(type) {
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	case nil:
		return "null"
	}
	return fmt.Sprintf("%T", v)
}
