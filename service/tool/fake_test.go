package tool

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rcdrguez/quickquote-agent-demo/model/db"
	"github.com/rcdrguez/quickquote-agent-demo/model/dto"
	"github.com/rcdrguez/quickquote-agent-demo/service/business"
)

type fakeCustomers struct {
	list  []db.Customer
	calls int
}

func (f *fakeCustomers) Create(_ context.Context, p *dto.CustomerPayload) (*db.Customer, error) {
	f.calls++
	c := db.Customer{BaseField: db.BaseField{Id: uuid.NewString()}, Name: p.Name, Rnc: p.Rnc, Email: p.Email, Phone: p.Phone}
	f.list = append(f.list, c)
	return &c, nil
}

func (f *fakeCustomers) Update(_ context.Context, _ string, _ *dto.CustomerPayload) (*db.Customer, error) {
	f.calls++
	return nil, nil
}

func (f *fakeCustomers) List(_ context.Context) ([]db.Customer, error) {
	f.calls++
	return append([]db.Customer{}, f.list...), nil
}

func (f *fakeCustomers) FindByNameOrId(_ context.Context, ref string) (*db.Customer, error) {
	f.calls++
	for i := range f.list {
		if f.list[i].Id == ref || strings.EqualFold(f.list[i].Name, ref) {
			return &f.list[i], nil
		}
	}
	return nil, nil
}

type fakeQuotes struct {
	list  []db.Quote
	last  *dto.QuotePayload
	calls int
}

func (f *fakeQuotes) Create(_ context.Context, p *dto.QuotePayload) (*db.Quote, error) {
	f.calls++
	f.last = p
	items := make(db.QuoteItems, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, db.QuoteItem{Description: it.Description, Qty: it.Qty, UnitPrice: it.UnitPrice})
	}
	q := db.Quote{
		BaseField:  db.BaseField{Id: uuid.NewString()},
		CustomerId: p.CustomerId,
		Title:      p.Title,
		Currency:   p.Currency,
		CreatedBy:  p.CreatedBy,
		Items:      items,
	}
	q.Subtotal, q.Tax, q.Total = business.ComputeTotals(items, business.DefaultTaxRate)
	f.list = append(f.list, q)
	return &q, nil
}

func (f *fakeQuotes) List(_ context.Context) ([]db.Quote, error) {
	f.calls++
	return append([]db.Quote{}, f.list...), nil
}

func (f *fakeQuotes) Get(_ context.Context, id string) (*db.Quote, error) {
	f.calls++
	for i := range f.list {
		if f.list[i].Id == id {
			return &f.list[i], nil
		}
	}
	return nil, nil
}

func newTestRouter() (*Router, *fakeCustomers, *fakeQuotes) {
	customers := &fakeCustomers{list: []db.Customer{
		{BaseField: db.BaseField{Id: "6f0c1a52-6d9a-4f0e-9a53-8d8f2b0c7e11"}, Name: "Juan Pérez"},
	}}
	quotes := &fakeQuotes{}
	return NewRouter(customers, quotes), customers, quotes
}
