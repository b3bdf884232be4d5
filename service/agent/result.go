package agent

import (
	"context"

	"github.com/rcdrguez/quickquote-agent-demo/model/dto"
	"github.com/rcdrguez/quickquote-agent-demo/model/enum"
)

// DefaultConfirmationThreshold 置信度低于此值需要人工确认
const DefaultConfirmationThreshold = 0.72

// QuoteDraft create_quote 的参数草稿
type QuoteDraft struct {
	CustomerNameOrId string            `json:"customerNameOrId,omitempty"`
	Customer         dto.CustomerDraft `json:"customer"`
	Title            string            `json:"title,omitempty"`
	Currency         string            `json:"currency"`
	CreatedBy        enum.CreatedBy    `json:"createdBy"`
	Items            []dto.QuoteItem   `json:"items"`
}

type AgentResult struct {
	Intent               enum.Intent         `json:"intent"`
	Extracted            Entities            `json:"extracted"`
	Tool                 enum.ToolName       `json:"tool"`
	Payload              interface{}         `json:"payload"`
	Confidence           float64             `json:"confidence"`
	Alternatives         []IntentAlternative `json:"alternatives"`
	MissingFields        []string            `json:"missingFields"`
	RequiresConfirmation bool                `json:"requiresConfirmation"`
	Source               enum.ClassifySource `json:"source"`
}

type BuilderOption func(*Builder)

func WithConfirmationThreshold(threshold float64) BuilderOption {
	return func(b *Builder) {
		if threshold > 0 {
			b.threshold = threshold
		}
	}
}

// Builder 组合意图识别与实体抽取, 每次调用互不影响
type Builder struct {
	classifier *Classifier
	threshold  float64
}

func NewBuilder(classifier *Classifier, opts ...BuilderOption) *Builder {
	if classifier == nil {
		classifier = NewClassifier(nil)
	}
	b := &Builder{classifier: classifier, threshold: DefaultConfirmationThreshold}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) Classifier() *Classifier {
	return b.classifier
}

func (b *Builder) Threshold() float64 {
	return b.threshold
}

func (b *Builder) BuildResult(ctx context.Context, text string) AgentResult {
	text = Normalize(text)
	c := b.classifier.Classify(ctx, SpellOutNumbers(text))
	return b.assemble(c, Extract(c.Intent, text))
}

func (b *Builder) assemble(c Classification, e Entities) AgentResult {
	res := AgentResult{
		Intent:       c.Intent,
		Extracted:    e,
		Confidence:   c.Confidence,
		Alternatives: c.Alternatives,
		Source:       c.Source,
	}

	switch c.Intent {
	case enum.IntentCreateCustomer:
		res.Tool = enum.ToolCreateCustomer
		res.Payload = dto.CustomerDraft{Name: e.Name, Rnc: e.Rnc, Email: e.Email, Phone: e.Phone}
	case enum.IntentCreateQuote:
		currency := e.Currency
		if currency == "" {
			currency = string(enum.CurrencyDOP)
		}
		items := e.Items
		if items == nil {
			items = []dto.QuoteItem{}
		}
		res.Tool = enum.ToolCreateQuote
		res.Payload = QuoteDraft{
			CustomerNameOrId: e.Customer,
			Customer:         dto.CustomerDraft{Name: e.Customer, Email: e.CustomerEmail, Rnc: e.CustomerRnc, Phone: e.CustomerPhone},
			Title:            e.Title,
			Currency:         currency,
			CreatedBy:        enum.CreatedByAiAgent,
			Items:            items,
		}
	case enum.IntentListQuotes:
		res.Tool = enum.ToolListQuotes
		res.Payload = dto.EmptyArgs{}
	default:
		res.Tool = enum.ToolListCustomers
		res.Payload = dto.EmptyArgs{}
	}

	res.MissingFields = missingFields(res.Tool, e)
	res.RequiresConfirmation = RequiresConfirmation(res.Confidence, res.MissingFields, b.threshold)
	if res.Alternatives == nil {
		res.Alternatives = []IntentAlternative{}
	}
	return res
}

func missingFields(tool enum.ToolName, e Entities) []string {
	missing := []string{}
	switch tool {
	case enum.ToolCreateCustomer:
		if e.Name == "" {
			missing = append(missing, "name")
		}
	case enum.ToolCreateQuote:
		if e.Customer == "" {
			missing = append(missing, "customerNameOrId")
		}
		if e.Title == "" {
			missing = append(missing, "title")
		}
		if len(e.Items) == 0 {
			missing = append(missing, "items")
		}
	}
	return missing
}

func RequiresConfirmation(confidence float64, missing []string, threshold float64) bool {
	return confidence < threshold || len(missing) > 0
}
