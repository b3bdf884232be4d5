package agent

import (
	"context"
	"testing"

	"github.com/rcdrguez/quickquote-agent-demo/model/dto"
	"github.com/rcdrguez/quickquote-agent-demo/model/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildResultCreateCustomer(t *testing.T) {
	b := NewBuilder(nil)
	res := b.BuildResult(context.Background(), "Crea un cliente Juan Pérez, RNC 131-1234567-8, correo juan@correo.com, teléfono 8095551234")

	assert.Equal(t, enum.IntentCreateCustomer, res.Intent)
	assert.Equal(t, enum.ToolCreateCustomer, res.Tool)
	assert.Equal(t, dto.CustomerDraft{
		Name:  "Juan Pérez",
		Rnc:   "131-1234567-8",
		Email: "juan@correo.com",
		Phone: "8095551234",
	}, res.Payload)
	assert.Empty(t, res.MissingFields)
	assert.False(t, res.RequiresConfirmation)
	assert.Equal(t, enum.SourceStrict, res.Source)
}

func TestBuildResultCreateQuote(t *testing.T) {
	b := NewBuilder(nil)
	res := b.BuildResult(context.Background(), "Crear cotización para cliente Juan Pérez por soporte, 1 x 5000")

	require.Equal(t, enum.IntentCreateQuote, res.Intent)
	assert.Equal(t, enum.ToolCreateQuote, res.Tool)
	assert.Equal(t, QuoteDraft{
		CustomerNameOrId: "Juan Pérez",
		Customer:         dto.CustomerDraft{Name: "Juan Pérez"},
		Title:            "Cotización de soporte",
		Currency:         "DOP",
		CreatedBy:        enum.CreatedByAiAgent,
		Items:            []dto.QuoteItem{{Description: "soporte", Qty: 1, UnitPrice: 5000}},
	}, res.Payload)
	assert.Empty(t, res.MissingFields)
	assert.False(t, res.RequiresConfirmation)
}

func TestBuildResultInvoicePhrase(t *testing.T) {
	res := NewBuilder(nil).BuildResult(context.Background(), "Crear factura para Juan por soporte, 2 unidades a 3000")

	draft, ok := res.Payload.(QuoteDraft)
	require.True(t, ok)
	assert.Equal(t, "Juan", draft.CustomerNameOrId)
	assert.Equal(t, []dto.QuoteItem{{Description: "soporte", Qty: 2, UnitPrice: 3000}}, draft.Items)
}

func TestBuildResultSpelledNumbers(t *testing.T) {
	res := NewBuilder(nil).BuildResult(context.Background(), "Crear cotización para Juan por diseño web, tres unidades a dos mil quinientos")

	draft, ok := res.Payload.(QuoteDraft)
	require.True(t, ok)
	assert.Equal(t, "Cotización de diseño web", draft.Title)
	assert.Equal(t, []dto.QuoteItem{{Description: "diseño web", Qty: 3, UnitPrice: 2500}}, draft.Items)
}

func TestBuildResultKeepsNumberWordsInNames(t *testing.T) {
	res := NewBuilder(nil).BuildResult(context.Background(), "Crea un cliente Cinco Estrellas SRL")
	assert.Equal(t, dto.CustomerDraft{Name: "Cinco Estrellas SRL"}, res.Payload)
	assert.Empty(t, res.MissingFields)

	res = NewBuilder(nil).BuildResult(context.Background(), "Crear cotización para Cinco Estrellas por soporte, dos unidades a trescientos")
	draft, ok := res.Payload.(QuoteDraft)
	require.True(t, ok)
	assert.Equal(t, "Cinco Estrellas", draft.CustomerNameOrId)
	assert.Equal(t, []dto.QuoteItem{{Description: "soporte", Qty: 2, UnitPrice: 300}}, draft.Items)
}

func TestBuildResultMissingFields(t *testing.T) {
	res := NewBuilder(nil).BuildResult(context.Background(), "Crear cotización")

	assert.Equal(t, enum.IntentCreateQuote, res.Intent)
	assert.Equal(t, []string{"customerNameOrId", "items"}, res.MissingFields)
	assert.True(t, res.RequiresConfirmation)

	draft := res.Payload.(QuoteDraft)
	assert.Equal(t, enum.DefaultQuoteTitle, draft.Title)
	assert.NotNil(t, draft.Items)
}

func TestBuildResultList(t *testing.T) {
	res := NewBuilder(nil).BuildResult(context.Background(), "Lista los clientes")
	assert.Equal(t, enum.ToolListCustomers, res.Tool)
	assert.Equal(t, dto.EmptyArgs{}, res.Payload)
	assert.Empty(t, res.MissingFields)
	assert.NotNil(t, res.Alternatives)

	res = NewBuilder(nil).BuildResult(context.Background(), "muéstrame las cotizaciones")
	assert.Equal(t, enum.ToolListQuotes, res.Tool)
}

func TestConfirmationGate(t *testing.T) {
	b := NewBuilder(nil)
	complete := Entities{
		Customer: "Juan",
		Title:    "Cotización de soporte",
		Items:    []dto.QuoteItem{{Description: "soporte", Qty: 1, UnitPrice: 100}},
	}

	low := b.assemble(Classification{Intent: enum.IntentCreateQuote, Confidence: 0.5}, complete)
	assert.Empty(t, low.MissingFields)
	assert.True(t, low.RequiresConfirmation)

	high := b.assemble(Classification{Intent: enum.IntentCreateQuote, Confidence: 0.9}, complete)
	assert.False(t, high.RequiresConfirmation)

	strict := NewBuilder(nil, WithConfirmationThreshold(0.96))
	assert.True(t, strict.assemble(Classification{Intent: enum.IntentCreateQuote, Confidence: 0.95}, complete).RequiresConfirmation)
	assert.Equal(t, 0.96, strict.Threshold())
}

func TestBuildResultIsIdempotent(t *testing.T) {
	b := NewBuilder(NewClassifier(&cueEmbedder{}, WithLogger(quietLogger())))
	text := "las facturas del mes para cliente Ana por 2 horas a 1500"
	assert.Equal(t, b.BuildResult(context.Background(), text), b.BuildResult(context.Background(), text))
}
