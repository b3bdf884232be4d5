package business

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rcdrguez/quickquote-agent-demo/dao"
	"github.com/rcdrguez/quickquote-agent-demo/model/common"
	"github.com/rcdrguez/quickquote-agent-demo/model/db"
	"github.com/rcdrguez/quickquote-agent-demo/model/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useMemoryDb(t *testing.T) {
	t.Helper()
	conn, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	old := dao.DB
	dao.DB = conn
	t.Cleanup(func() {
		dao.DB = old
		_ = conn.Close()
	})
	require.NoError(t, dao.App.Migrate())
}

func TestCustomerLifecycle(t *testing.T) {
	useMemoryDb(t)
	ctx := context.Background()
	svc := NewCustomerService()

	email := "ana@correo.com"
	created, err := svc.Create(ctx, &dto.CustomerPayload{Name: " Ana Gómez ", Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "Ana Gómez", created.Name)
	assert.Len(t, created.Id, 36)
	assert.NotEmpty(t, created.CreatedAt)

	found, err := svc.FindByNameOrId(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, created.Id, found.Id)

	found, err = svc.FindByNameOrId(ctx, "ANA gómez")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.Id, found.Id)

	found, err = svc.FindByNameOrId(ctx, "Nadie")
	assert.NoError(t, err)
	assert.Nil(t, found)

	phone := "8095550000"
	updated, err := svc.Update(ctx, created.Id, &dto.CustomerPayload{Name: "Ana G.", Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "Ana G.", updated.Name)
	assert.Nil(t, updated.Email)
	assert.Equal(t, phone, *updated.Phone)

	_, err = svc.Update(ctx, "00000000-0000-0000-0000-000000000000", &dto.CustomerPayload{Name: "x"})
	var ae *common.AppError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, http.StatusNotFound, ae.Status)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestQuoteTotalsAndDefaults(t *testing.T) {
	useMemoryDb(t)
	ctx := context.Background()
	svc := NewQuoteService()

	q, err := svc.Create(ctx, &dto.QuotePayload{
		CustomerId: "3f1c2b1e-8d4a-4c5e-9f00-0a1b2c3d4e5f",
		Title:      "Cotización de soporte",
		Items: []dto.QuoteItem{
			{Description: "soporte", Qty: 2, UnitPrice: 3000},
			{Description: "visita", Qty: 1, UnitPrice: 999.99},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "DOP", q.Currency)
	assert.Equal(t, "human", q.CreatedBy)
	assert.Equal(t, 6999.99, q.Subtotal)
	assert.Equal(t, 1260.0, q.Tax)
	assert.Equal(t, 8259.99, q.Total)

	got, err := svc.Get(ctx, q.Id)
	require.NoError(t, err)
	assert.Equal(t, q, got)

	missing, err := svc.Get(ctx, "3f1c2b1e-0000-0000-0000-000000000000")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestComputeTotals(t *testing.T) {
	sub, tax, total := ComputeTotals(db.QuoteItems{{Qty: 2, UnitPrice: 7500}}, 0.18)
	assert.Equal(t, 15000.0, sub)
	assert.Equal(t, 2700.0, tax)
	assert.Equal(t, 17700.0, total)
}

func TestSeedDemoDataOnce(t *testing.T) {
	useMemoryDb(t)
	ctx := context.Background()

	seeded, err := SeedDemoData(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = SeedDemoData(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	customers, err := NewCustomerService().List(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 2)

	quotes, err := NewQuoteService().List(ctx)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "Cotización inicial logística", quotes[0].Title)
	assert.Equal(t, 17700.0, quotes[0].Total)
}
