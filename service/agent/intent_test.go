package agent

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/rcdrguez/quickquote-agent-demo/model/enum"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cueEmbedder 按关键词生成确定的向量: [客户, 报价, 列表, 创建, 1]
type cueEmbedder struct {
	mu      sync.Mutex
	batches [][]string
	err     error
	block   bool
}

func (f *cueEmbedder) CreateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	f.mu.Lock()
	f.batches = append(f.batches, texts)
	f.mu.Unlock()

	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}

	out := make([][]float32, len(texts))
	for i, t := range texts {
		c := detectCues(t)
		out[i] = []float32{b2f(c.customer), b2f(c.quote), b2f(c.list), b2f(c.create), 1}
	}
	return out, nil
}

func (f *cueEmbedder) lastBatch() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.batches[len(f.batches)-1]
}

func b2f(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestClassifyStrictRules(t *testing.T) {
	c := NewClassifier(nil)
	cases := map[string]enum.Intent{
		"Crea un cliente Juan Pérez":           enum.IntentCreateCustomer,
		"Lista las cotizaciones":               enum.IntentListQuotes,
		"muéstrame los clientes":               enum.IntentListCustomers,
		"Crear factura para Juan por soporte":  enum.IntentCreateQuote,
		"Hazme un presupuesto para la empresa": enum.IntentCreateQuote,
	}
	for text, want := range cases {
		res := c.Classify(context.Background(), text)
		assert.Equal(t, want, res.Intent, text)
		assert.Equal(t, StrictConfidence, res.Confidence, text)
		assert.Equal(t, enum.SourceStrict, res.Source, text)
		assert.Empty(t, res.Alternatives, text)
	}
}

func TestClassifyFallbackWithoutEmbedder(t *testing.T) {
	c := NewClassifier(nil)

	res := c.Classify(context.Background(), "cotizaciones de Juan")
	assert.Equal(t, enum.IntentCreateQuote, res.Intent)
	assert.Equal(t, FallbackConfidence, res.Confidence)
	assert.Equal(t, enum.SourceFallback, res.Source)

	res = c.Classify(context.Background(), "clientes nuevos y viejos, lista")
	assert.Equal(t, enum.IntentListCustomers, res.Intent)

	res = c.Classify(context.Background(), "hola")
	assert.Equal(t, enum.IntentListCustomers, res.Intent)
	assert.Equal(t, DefaultIntentConfidence, res.Confidence)
}

func TestClassifyCreateWithQuantifierWords(t *testing.T) {
	c := NewClassifier(nil)
	cases := map[string]enum.Intent{
		"Crear cotización para Juan por mantenimiento de todos los equipos, 3 x 500": enum.IntentCreateQuote,
		"Crea un cliente Ver Industrial SRL":                                         enum.IntentCreateCustomer,
		"Genera una factura para Ana, 2 unidades a 300, ver detalles":                enum.IntentCreateQuote,
		"Registra todas las empresas nuevas":                                         enum.IntentCreateCustomer,
	}
	for text, want := range cases {
		assert.Equal(t, want, c.Classify(context.Background(), text).Intent, text)
	}
}

func TestFallbackCreateVerbWinsOverListing(t *testing.T) {
	// 规则直判不成立时才会走到关键词树
	res := fallback(cues{list: true, create: true, quote: true, customer: true})
	assert.Equal(t, enum.IntentCreateQuote, res.Intent)

	res = fallback(cues{list: true, create: true, customer: true})
	assert.Equal(t, enum.IntentCreateCustomer, res.Intent)

	res = fallback(cues{list: true, quote: true, customer: true})
	assert.Equal(t, enum.IntentListQuotes, res.Intent)
}

func TestClassifyFallbackOnEmbedderError(t *testing.T) {
	emb := &cueEmbedder{err: errors.New("provider down")}
	c := NewClassifier(emb, WithLogger(quietLogger()))

	res := c.Classify(context.Background(), "las facturas del mes")
	assert.Equal(t, enum.SourceFallback, res.Source)
	assert.Equal(t, enum.IntentCreateQuote, res.Intent)
}

func TestClassifyFallbackOnTimeout(t *testing.T) {
	emb := &cueEmbedder{block: true}
	c := NewClassifier(emb, WithEmbedTimeout(20*time.Millisecond), WithLogger(quietLogger()))

	start := time.Now()
	res := c.Classify(context.Background(), "las facturas del mes")
	assert.Equal(t, enum.SourceFallback, res.Source)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestClassifySemantic(t *testing.T) {
	emb := &cueEmbedder{}
	c := NewClassifier(emb, WithLogger(quietLogger()))

	res := c.Classify(context.Background(), "las facturas del mes")
	require.Equal(t, enum.SourceSemantic, res.Source)
	assert.Equal(t, enum.IntentListQuotes, res.Intent)
	assert.InDelta(t, 0.9777, res.Confidence, 1e-4)

	require.Len(t, res.Alternatives, 3)
	assert.Equal(t, enum.IntentCreateCustomer, res.Alternatives[0].Intent)
	assert.InDelta(t, 0.4082, res.Alternatives[0].Score, 1e-4)
	assert.Equal(t, enum.IntentCreateQuote, res.Alternatives[1].Intent)
	assert.InDelta(t, 0.8436, res.Alternatives[1].Score, 1e-4)
	assert.Equal(t, enum.IntentListCustomers, res.Alternatives[2].Intent)
	assert.Len(t, emb.lastBatch(), 13)

	// 第二次只需向量化输入本身
	again := c.Classify(context.Background(), "las facturas del mes")
	assert.Equal(t, res, again)
	assert.Equal(t, []string{"las facturas del mes"}, emb.lastBatch())
}

func TestWarmUp(t *testing.T) {
	_, err := NewClassifier(nil).WarmUp(context.Background())
	assert.ErrorIs(t, err, ErrNoEmbedder)

	c := NewClassifier(&cueEmbedder{})
	n, err := c.WarmUp(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	n, err = c.WarmUp(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, cosine([]float32{1, 2}, []float32{2, 4}), 1e-9)
	assert.Zero(t, cosine([]float32{1}, []float32{1, 2}))
	assert.Zero(t, cosine([]float32{0, 0}, []float32{1, 2}))
}
