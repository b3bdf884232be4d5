package agent

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"time"

	"github.com/rcdrguez/quickquote-agent-demo/internal/embedding"
	"github.com/rcdrguez/quickquote-agent-demo/model/enum"
	"github.com/rcdrguez/quickquote-agent-demo/utils"
	"github.com/sirupsen/logrus"
)

const (
	StrictConfidence        = 0.95
	FallbackConfidence      = 0.55
	DefaultIntentConfidence = 0.3
	DefaultEmbedTimeout     = 1500 * time.Millisecond

	bonusAligned  = 0.25
	bonusNounOnly = 0.1
	penaltyMode   = 0.15
)

// 各意图的示例短语
var exemplars = map[enum.Intent][]string{
	enum.IntentCreateCustomer: {
		"crear cliente con nombre y contacto",
		"registrar un nuevo cliente con correo y teléfono",
		"agregar una empresa nueva con su RNC",
	},
	enum.IntentCreateQuote: {
		"crear cotización para cliente con items y precio",
		"generar una factura para un cliente por un servicio",
		"hazme un presupuesto con cantidades y precios",
	},
	enum.IntentListCustomers: {
		"listar clientes existentes",
		"muéstrame todos los clientes registrados",
		"ver la lista de empresas",
	},
	enum.IntentListQuotes: {
		"listar cotizaciones existentes",
		"muéstrame las facturas emitidas",
		"ver todas las cotizaciones",
	},
}

// 在去重音的小写文本上匹配
var (
	reListCue     = regexp.MustCompile(`\b(?:lista|listar|listame|listado|muestra|mostrar|muestrame|consulta|consultar)\b`)
	reCreateCue   = regexp.MustCompile(`\b(?:crea|crear|creame|genera|generar|hazme|haz|registra|registrar|agrega|agregar|anade|anadir|nuevo|nueva|emite|emitir|prepara|preparar|elabora|elaborar)\b`)
	reQuoteCue    = regexp.MustCompile(`\b(?:cotizacion|cotizaciones|cotizar|factura|facturas|presupuesto|presupuestos|proforma|proformas)\b`)
	reCustomerCue = regexp.MustCompile(`\b(?:cliente|clientes|empresa|empresas)\b`)
)

var ErrNoEmbedder = errors.New("未配置向量化服务")

type IntentAlternative struct {
	Intent enum.Intent `json:"intent"`
	Score  float64     `json:"score"`
}

type Classification struct {
	Intent       enum.Intent         `json:"intent"`
	Confidence   float64             `json:"confidence"`
	Alternatives []IntentAlternative `json:"alternatives"`
	Source       enum.ClassifySource `json:"source"`
}

type cues struct {
	list, create, quote, customer bool
}

func detectCues(text string) cues {
	folded := utils.FoldKey(text)
	return cues{
		list:     reListCue.MatchString(folded),
		create:   reCreateCue.MatchString(folded),
		quote:    reQuoteCue.MatchString(folded),
		customer: reCustomerCue.MatchString(folded),
	}
}

// strict 动词类 × 名词类 的无歧义组合
func (c cues) strict() (enum.Intent, bool) {
	switch {
	case c.create && c.quote && !c.list:
		return enum.IntentCreateQuote, true
	case c.list && c.quote && !c.create:
		return enum.IntentListQuotes, true
	case c.create && c.customer && !c.quote && !c.list:
		return enum.IntentCreateCustomer, true
	case c.list && c.customer && !c.quote && !c.create:
		return enum.IntentListCustomers, true
	}
	return "", false
}

func (c cues) adjustment(intent enum.Intent) float64 {
	listing := intent == enum.IntentListCustomers || intent == enum.IntentListQuotes
	quoting := intent == enum.IntentCreateQuote || intent == enum.IntentListQuotes

	verb, opposite := c.create, c.list && !c.create
	if listing {
		verb, opposite = c.list, c.create && !c.list
	}
	noun := c.customer
	if quoting {
		noun = c.quote
	}

	var adj float64
	switch {
	case verb && noun:
		adj = bonusAligned
	case noun:
		adj = bonusNounOnly
	}
	if opposite {
		adj -= penaltyMode
	}
	return adj
}

type ClassifierOption func(*Classifier)

func WithCache(cache Cache) ClassifierOption {
	return func(c *Classifier) {
		if cache != nil {
			c.cache = cache
		}
	}
}

func WithEmbedTimeout(d time.Duration) ClassifierOption {
	return func(c *Classifier) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithLogger(log logrus.FieldLogger) ClassifierOption {
	return func(c *Classifier) {
		if log != nil {
			c.log = log
		}
	}
}

// Classifier 意图识别: 规则直判, 向量相似度, 关键词兜底
type Classifier struct {
	embedder embedding.Service
	cache    Cache
	timeout  time.Duration
	log      logrus.FieldLogger
}

// NewClassifier embedder 可为 nil, 此时只走规则
func NewClassifier(embedder embedding.Service, opts ...ClassifierOption) *Classifier {
	c := &Classifier{
		embedder: embedder,
		cache:    NewMemoryCache(),
		timeout:  DefaultEmbedTimeout,
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Classifier) Classify(ctx context.Context, text string) Classification {
	cs := detectCues(text)
	if intent, ok := cs.strict(); ok {
		return Classification{Intent: intent, Confidence: StrictConfidence, Alternatives: []IntentAlternative{}, Source: enum.SourceStrict}
	}

	res, err := c.semantic(ctx, text, cs)
	if err != nil {
		if !errors.Is(err, ErrNoEmbedder) {
			c.log.Warnf("语义意图识别失败, 使用关键词兜底[s5mq1f]: %v", err)
		}
		return fallback(cs)
	}
	return res
}

func fallback(cs cues) Classification {
	res := Classification{Confidence: FallbackConfidence, Alternatives: []IntentAlternative{}, Source: enum.SourceFallback}
	if intent, ok := cs.strict(); ok {
		res.Intent = intent
		return res
	}

	// 同时出现创建动词时按创建处理
	listing := cs.list && !cs.create
	switch {
	case cs.quote && listing:
		res.Intent = enum.IntentListQuotes
	case cs.quote:
		res.Intent = enum.IntentCreateQuote
	case cs.customer && listing:
		res.Intent = enum.IntentListCustomers
	case cs.customer:
		res.Intent = enum.IntentCreateCustomer
	default:
		res.Intent = enum.IntentListCustomers
		res.Confidence = DefaultIntentConfidence
	}
	return res
}

func (c *Classifier) semantic(ctx context.Context, text string, cs cues) (Classification, error) {
	if c.embedder == nil {
		return Classification{}, ErrNoEmbedder
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	input, vectors, err := c.embedAll(ctx, text)
	if err != nil {
		return Classification{}, err
	}

	scores := make([]IntentAlternative, 0, len(enum.Intents))
	best := -1
	for _, intent := range enum.Intents {
		var sum float64
		phrases := exemplars[intent]
		for _, p := range phrases {
			sum += cosine(input, vectors[p])
		}
		score := sum/float64(len(phrases)) + cs.adjustment(intent)
		score = utils.NumberFormat(math.Max(0, math.Min(1, score)), 4)
		scores = append(scores, IntentAlternative{Intent: intent, Score: score})
		if best < 0 || score > scores[best].Score {
			best = len(scores) - 1
		}
	}

	res := Classification{
		Intent:       scores[best].Intent,
		Confidence:   scores[best].Score,
		Alternatives: make([]IntentAlternative, 0, len(scores)-1),
		Source:       enum.SourceSemantic,
	}
	for i, s := range scores {
		if i != best {
			res.Alternatives = append(res.Alternatives, s)
		}
	}
	return res, nil
}

// embedAll 一次请求带上输入与缓存未命中的示例短语
func (c *Classifier) embedAll(ctx context.Context, text string) ([]float32, map[string][]float32, error) {
	vectors := make(map[string][]float32, 12)
	batch := []string{text}
	for _, intent := range enum.Intents {
		for _, p := range exemplars[intent] {
			if v, ok := c.cache.Get(ctx, utils.FoldKey(p)); ok {
				vectors[p] = v
				continue
			}
			batch = append(batch, p)
		}
	}

	vecs, err := c.embedder.CreateEmbeddings(ctx, batch)
	if err != nil {
		return nil, nil, err
	}
	if len(vecs) != len(batch) {
		return nil, nil, fmt.Errorf("向量数量不匹配: %d != %d", len(vecs), len(batch))
	}

	for i, p := range batch[1:] {
		vectors[p] = vecs[i+1]
		c.cache.Set(ctx, utils.FoldKey(p), vecs[i+1])
	}
	return vecs[0], vectors, nil
}

// WarmUp 预先向量化缓存中缺失的示例短语, 返回本次新增数量
func (c *Classifier) WarmUp(ctx context.Context) (int, error) {
	if c.embedder == nil {
		return 0, ErrNoEmbedder
	}

	var missing []string
	for _, intent := range enum.Intents {
		for _, p := range exemplars[intent] {
			if _, ok := c.cache.Get(ctx, utils.FoldKey(p)); !ok {
				missing = append(missing, p)
			}
		}
	}
	if len(missing) == 0 {
		return 0, nil
	}

	vecs, err := c.embedder.CreateEmbeddings(ctx, missing)
	if err != nil {
		return 0, err
	}
	if len(vecs) != len(missing) {
		return 0, fmt.Errorf("向量数量不匹配: %d != %d", len(vecs), len(missing))
	}
	for i, p := range missing {
		c.cache.Set(ctx, utils.FoldKey(p), vecs[i])
	}
	return len(missing), nil
}

func cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
