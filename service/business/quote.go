package business

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rcdrguez/quickquote-agent-demo/dao"
	"github.com/rcdrguez/quickquote-agent-demo/global"
	"github.com/rcdrguez/quickquote-agent-demo/model/db"
	"github.com/rcdrguez/quickquote-agent-demo/model/dto"
	"github.com/rcdrguez/quickquote-agent-demo/model/enum"
	"github.com/rcdrguez/quickquote-agent-demo/utils"
)

// DefaultTaxRate ITBIS
const DefaultTaxRate = 0.18

type QuoteService interface {
	Create(ctx context.Context, p *dto.QuotePayload) (*db.Quote, error)
	List(ctx context.Context) ([]db.Quote, error)
	// Get 找不到返回 nil, nil
	Get(ctx context.Context, id string) (*db.Quote, error)
}

type quoteService struct{}

func NewQuoteService() QuoteService {
	return &quoteService{}
}

func taxRate() float64 {
	if global.Config != nil && global.Config.Quote.TaxRate > 0 {
		return global.Config.Quote.TaxRate
	}
	return DefaultTaxRate
}

func defaultCurrency() string {
	if global.Config != nil && global.Config.Quote.DefaultCurrency != "" {
		return global.Config.Quote.DefaultCurrency
	}
	return string(enum.CurrencyDOP)
}

// ComputeTotals 金额保留两位小数
func ComputeTotals(items []db.QuoteItem, rate float64) (subtotal, tax, total float64) {
	for _, it := range items {
		subtotal += it.Qty * it.UnitPrice
	}
	subtotal = utils.NumberFormat(subtotal)
	tax = utils.NumberFormat(subtotal * rate)
	total = utils.NumberFormat(subtotal + tax)
	return
}

func (s *quoteService) Create(_ context.Context, p *dto.QuotePayload) (*db.Quote, error) {
	items := make(db.QuoteItems, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, db.QuoteItem{Description: strings.TrimSpace(it.Description), Qty: it.Qty, UnitPrice: it.UnitPrice})
	}

	q := &db.Quote{
		BaseField:  db.BaseField{Id: uuid.NewString(), CreatedAt: utils.IsoNow()},
		CustomerId: p.CustomerId,
		Title:      strings.TrimSpace(p.Title),
		Currency:   p.Currency,
		CreatedBy:  p.CreatedBy,
		Items:      items,
	}
	if q.Currency == "" {
		q.Currency = defaultCurrency()
	}
	if q.CreatedBy == "" {
		q.CreatedBy = string(enum.CreatedByHuman)
	}
	q.Subtotal, q.Tax, q.Total = ComputeTotals(items, taxRate())

	if err := dao.App.QuoteDb.Insert(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *quoteService) List(_ context.Context) ([]db.Quote, error) {
	list := []db.Quote{}
	if err := dao.App.QuoteDb.GetList(&list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *quoteService) Get(_ context.Context, id string) (*db.Quote, error) {
	var q db.Quote
	if err := dao.App.QuoteDb.GetById(&q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}
