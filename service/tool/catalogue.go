package tool

import (
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/rcdrguez/quickquote-agent-demo/model/enum"
)

// Definition 对外公布的工具描述
type Definition struct {
	Name        enum.ToolName      `json:"name"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"inputSchema"`
}

func str() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string"}
}

func emptyObject() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "object", Properties: map[string]*jsonschema.Schema{}}
}

func customerSchema(required ...string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:     "object",
		Required: required,
		Properties: map[string]*jsonschema.Schema{
			"name":  str(),
			"rnc":   str(),
			"email": {Type: "string", Format: "email"},
			"phone": str(),
		},
	}
}

var itemSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"description", "qty", "unitPrice"},
	Properties: map[string]*jsonschema.Schema{
		"description": str(),
		"qty":         {Type: "number"},
		"unitPrice":   {Type: "number"},
	},
}

var catalogue = []Definition{
	{
		Name:        enum.ToolCreateCustomer,
		Description: "Crea un cliente",
		InputSchema: customerSchema("name"),
	},
	{
		Name:        enum.ToolListCustomers,
		Description: "Lista clientes",
		InputSchema: emptyObject(),
	},
	{
		Name:        enum.ToolCreateQuote,
		Description: "Crea una cotización por nombre o id de cliente",
		InputSchema: &jsonschema.Schema{
			Type:     "object",
			Required: []string{"customerNameOrId", "title", "items"},
			Properties: map[string]*jsonschema.Schema{
				"customerNameOrId": str(),
				"customer":         customerSchema(),
				"title":            str(),
				"currency":         str(),
				"createdBy":        {Type: "string", Enum: []any{string(enum.CreatedByHuman), string(enum.CreatedByAiAgent)}},
				"items":            {Type: "array", Items: itemSchema},
			},
		},
	},
	{
		Name:        enum.ToolListQuotes,
		Description: "Lista cotizaciones",
		InputSchema: emptyObject(),
	},
	{
		Name:        enum.ToolGetQuote,
		Description: "Obtiene una cotización por id",
		InputSchema: &jsonschema.Schema{
			Type:       "object",
			Required:   []string{"id"},
			Properties: map[string]*jsonschema.Schema{"id": str()},
		},
	},
}

// Catalogue 按固定顺序返回全部工具
func Catalogue() []Definition {
	out := make([]Definition, len(catalogue))
	copy(out, catalogue)
	return out
}

// Lookup 按名称查找工具
func Lookup(name string) (Definition, bool) {
	for _, d := range catalogue {
		if string(d.Name) == name {
			return d, true
		}
	}
	return Definition{}, false
}
