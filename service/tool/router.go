package tool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/rcdrguez/quickquote-agent-demo/model/common"
	"github.com/rcdrguez/quickquote-agent-demo/model/dto"
	"github.com/rcdrguez/quickquote-agent-demo/model/enum"
	"github.com/rcdrguez/quickquote-agent-demo/service/business"
	"github.com/sirupsen/logrus"
)

type handler func(ctx context.Context, args map[string]interface{}) (interface{}, error)

type Option func(*Router)

func WithLogger(log logrus.FieldLogger) Option {
	return func(r *Router) {
		if log != nil {
			r.log = log
		}
	}
}

// Router 校验工具参数后分发到客户与报价服务
type Router struct {
	customers business.CustomerService
	quotes    business.QuoteService
	handlers  map[enum.ToolName]handler
	log       logrus.FieldLogger
}

func NewRouter(customers business.CustomerService, quotes business.QuoteService, opts ...Option) *Router {
	r := &Router{
		customers: customers,
		quotes:    quotes,
		log:       logrus.StandardLogger(),
	}
	r.handlers = map[enum.ToolName]handler{
		enum.ToolCreateCustomer: r.createCustomer,
		enum.ToolListCustomers:  r.listCustomers,
		enum.ToolCreateQuote:    r.createQuote,
		enum.ToolListQuotes:     r.listQuotes,
		enum.ToolGetQuote:       r.getQuote,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Router) Tools() []Definition {
	return Catalogue()
}

// Call 执行工具; 未知工具和非法参数在调用任何服务之前返回 ValidationError
func (r *Router) Call(ctx context.Context, name string, arguments json.RawMessage) (interface{}, error) {
	def, ok := Lookup(name)
	if !ok {
		return nil, common.NewValidationError().AddField("name", unknownToolMessage(name))
	}

	args, err := decodeArguments(arguments)
	if err != nil {
		return nil, err
	}

	ve := common.NewValidationError()
	coerceArguments(args, def.InputSchema, ve)
	if ve.HasErrors() {
		return nil, ve
	}

	res, err := r.handlers[def.Name](ctx, args)
	if err != nil {
		return nil, err
	}
	r.log.WithField("event", "tool "+name).Info("工具调用完成")
	return res, nil
}

func unknownToolMessage(name string) string {
	return fmt.Sprintf("Herramienta desconocida: %s", name)
}

// 空参数视为 {}
func decodeArguments(raw json.RawMessage) (map[string]interface{}, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return map[string]interface{}{}, nil
	}
	var args map[string]interface{}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, common.NewValidationError().AddForm("Se esperaba object")
	}
	return args, nil
}

// bind 把修正后的参数解码到 DTO 并按 binding 标签校验
func bind[T any](args map[string]interface{}) (*T, error) {
	b, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("参数重新编码失败[t6b1nd]: %w", err)
	}
	dst := new(T)
	if err := json.Unmarshal(b, dst); err != nil {
		return nil, common.BindError(err)
	}
	if err := common.Validate(dst); err != nil {
		return nil, err
	}
	return dst, nil
}

func (r *Router) createCustomer(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	p, err := bind[dto.CustomerPayload](args)
	if err != nil {
		return nil, err
	}
	return r.customers.Create(ctx, p)
}

func (r *Router) listCustomers(ctx context.Context, _ map[string]interface{}) (interface{}, error) {
	return r.customers.List(ctx)
}

func (r *Router) createQuote(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	a, err := bind[dto.CreateQuoteArgs](args)
	if err != nil {
		return nil, err
	}
	if a.CreatedBy == "" {
		a.CreatedBy = string(enum.CreatedByAiAgent)
	}

	c, err := r.customers.FindByNameOrId(ctx, a.CustomerNameOrId)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, common.NewNotFound(enum.MsgQuoteCustomerMiss, map[string]interface{}{
			"customerNameOrId": a.CustomerNameOrId,
		})
	}

	return r.quotes.Create(ctx, &dto.QuotePayload{
		CustomerId: c.Id,
		Title:      a.Title,
		Currency:   a.Currency,
		CreatedBy:  a.CreatedBy,
		Items:      a.Items,
	})
}

func (r *Router) listQuotes(ctx context.Context, _ map[string]interface{}) (interface{}, error) {
	return r.quotes.List(ctx)
}

func (r *Router) getQuote(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	a, err := bind[dto.GetQuoteArgs](args)
	if err != nil {
		return nil, err
	}
	q, err := r.quotes.Get(ctx, a.Id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, common.NewNotFound(enum.MsgQuoteNotFound)
	}
	return q, nil
}
