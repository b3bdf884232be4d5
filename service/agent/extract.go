package agent

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rcdrguez/quickquote-agent-demo/model/dto"
	"github.com/rcdrguez/quickquote-agent-demo/model/enum"
	"github.com/rcdrguez/quickquote-agent-demo/utils"
)

// Entities 抽取结果, 未识别的字段不输出
type Entities struct {
	Name          string          `json:"name,omitempty"`
	Email         string          `json:"email,omitempty"`
	Rnc           string          `json:"rnc,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Customer      string          `json:"customer,omitempty"`
	CustomerEmail string          `json:"customerEmail,omitempty"`
	CustomerRnc   string          `json:"customerRnc,omitempty"`
	CustomerPhone string          `json:"customerPhone,omitempty"`
	Title         string          `json:"title,omitempty"`
	Currency      string          `json:"currency,omitempty"`
	Items         []dto.QuoteItem `json:"items,omitempty"`
}

var (
	reEmail     = regexp.MustCompile(`[\w.+-]+@[\w.-]+\.[a-zA-Z]{2,}`)
	reRncDashed = regexp.MustCompile(`\b\d{3}-\d{7}-\d\b`)
	reElevenRun = regexp.MustCompile(`\d{11}`)
	// 紧挨电话提示词且以 1 开头的 11 位数字是带国家码的电话
	rePhoneCue = regexp.MustCompile(`(?i)(?:tel[eé]fono|tel|celular|cel|m[oó]vil|whatsapp)\.?\s*:?\s*\+?$`)
	rePhone    = regexp.MustCompile(`(?:\+?1[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)

	reCustomerName  = regexp.MustCompile(`(?i)\b(?:cliente|empresa)\s+(?:llamad[oa]\s+|de\s+nombre\s+)?([\p{L}\s.&'-]+?)(?:,|\s+con\s|\s+rnc|\s+correo|\s+email|\s+tel[eé]fono|$)`)
	reQuoteCustomer = regexp.MustCompile(`(?i)\b(?:para|cliente)\s+(?:(?:el|la)\s+)?(?:(?:cliente|empresa)\s+)?([\p{L}\s]+?)(?:\s+por|\s+de|,|$)`)

	reTitle          = regexp.MustCompile(`(?i)(?:^|\s)(?:por|de)\s+([^,\n]+?)(?:,|\s\d+\s*(?:unidad|x)|$)`)
	reTitleAmbiguous = regexp.MustCompile(`(?i)\d|precio|cada\s+un[oa]`)
)

var currencyRules = []struct {
	re   *regexp.Regexp
	code enum.Currency
}{
	{regexp.MustCompile(`(?i)\busd\b|\bd[oó]lar(?:es)?|\bus\$`), enum.CurrencyUSD},
	{regexp.MustCompile(`(?i)\beur\b|\beuros?\b|€`), enum.CurrencyEUR},
	{regexp.MustCompile(`(?i)\bdop\b|\brd\$|\bpesos?\b`), enum.CurrencyDOP},
}

// 客户名里出现这些词说明绑定到了单据本身
var genericQuoteNouns = []string{"cotizacion", "cotizaciones", "factura", "facturas", "presupuesto", "presupuestos", "propuesta", "proforma"}

var stopWords = map[string]struct{}{
	"para": {}, "cliente": {}, "cotizacion": {}, "factura": {}, "presupuesto": {},
	"con": {}, "por": {}, "de": {}, "del": {}, "la": {}, "el": {}, "los": {}, "las": {},
	"un": {}, "una": {}, "unos": {}, "unas": {}, "al": {}, "a": {}, "en": {}, "y": {},
}

var unitWords = map[string]struct{}{
	"unidad": {}, "unidades": {}, "ud": {}, "uds": {}, "x": {}, "item": {}, "items": {},
	"pieza": {}, "piezas": {},
}

func isStopWord(token string) bool {
	_, ok := stopWords[utils.FoldKey(token)]
	return ok
}

func isUnitWord(token string) bool {
	_, ok := unitWords[utils.FoldKey(token)]
	return ok
}

// Extract 按意图抽取实体, 从不失败。
// 名称取自未转换数词的文本, 其余字段取自数词已转为数字的文本
func Extract(intent enum.Intent, text string) Entities {
	plain := Normalize(text)
	text = SpellOutNumbers(plain)

	switch intent {
	case enum.IntentCreateCustomer:
		rnc, rest := findRnc(text)
		return Entities{
			Name:  findCustomerName(plain),
			Email: reEmail.FindString(text),
			Rnc:   rnc,
			Phone: findPhone(rest),
		}
	case enum.IntentCreateQuote:
		rnc, rest := findRnc(text)
		phrase := titlePhrase(text)
		fallback := enum.DefaultItemDescription
		if phrase != "" {
			fallback = phrase
		}
		items := ParseItems(text, fallback)
		return Entities{
			Customer:      findQuoteCustomer(plain),
			CustomerEmail: reEmail.FindString(text),
			CustomerRnc:   rnc,
			CustomerPhone: findPhone(rest),
			Title:         buildTitle(phrase, items),
			Currency:      string(detectCurrency(text)),
			Items:         items,
		}
	}

	return Entities{}
}

// findRnc 返回格式化后的 RNC 以及抹掉该片段后的文本
func findRnc(text string) (string, string) {
	loc := reRncDashed.FindStringIndex(text)
	if loc == nil {
		loc = findBareRnc(text)
	}
	if loc == nil {
		return "", text
	}

	d := onlyDigits(text[loc[0]:loc[1]])
	rest := text[:loc[0]] + strings.Repeat(" ", loc[1]-loc[0]) + text[loc[1]:]
	return d[:3] + "-" + d[3:10] + "-" + d[10:], rest
}

// findBareRnc 独立的 11 位数字串视为 RNC
func findBareRnc(text string) []int {
	for _, loc := range reElevenRun.FindAllStringIndex(text, -1) {
		if loc[0] > 0 && isDigitOrDash(text[loc[0]-1]) {
			continue
		}
		if loc[1] < len(text) && isDigitOrDash(text[loc[1]]) {
			continue
		}
		if text[loc[0]] == '1' && rePhoneCue.MatchString(text[:loc[0]]) {
			continue
		}
		return loc
	}
	return nil
}

func findPhone(text string) string {
	for _, loc := range rePhone.FindAllStringIndex(text, -1) {
		if loc[0] > 0 && isDigitOrDash(text[loc[0]-1]) {
			continue
		}
		if loc[1] < len(text) && isDigitOrDash(text[loc[1]]) {
			continue
		}
		d := onlyDigits(text[loc[0]:loc[1]])
		if len(d) < 10 || len(d) > 11 {
			continue
		}
		if len(d) == 11 {
			d = strings.TrimPrefix(d, "1")
		}
		return d[len(d)-10:]
	}
	return ""
}

func findCustomerName(text string) string {
	m := reCustomerName.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.Trim(strings.TrimSpace(m[1]), ".-'")
}

func findQuoteCustomer(text string) string {
	for _, m := range reQuoteCustomer.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(m[1])
		if name == "" || isGenericQuoteNoun(name) {
			continue
		}
		return name
	}
	return ""
}

func isGenericQuoteNoun(name string) bool {
	tokens := strings.Fields(utils.FoldKey(name))
	for len(tokens) > 1 && isStopWord(tokens[0]) {
		tokens = tokens[1:]
	}
	return len(tokens) > 0 && utils.InSlice(genericQuoteNouns, tokens[0]) >= 0
}

func detectCurrency(text string) enum.Currency {
	for _, rule := range currencyRules {
		if rule.re.MatchString(text) {
			return rule.code
		}
	}
	return ""
}

// titlePhrase 取 por/de 之后的第一个可用短语
func titlePhrase(text string) string {
	for _, m := range reTitle.FindAllStringSubmatch(text, -1) {
		phrase := NormalizeDescription(m[1])
		if phrase == enum.DefaultItemDescription || isUnitWord(phrase) || reTitleAmbiguous.MatchString(phrase) {
			continue
		}
		return phrase
	}
	return ""
}

func buildTitle(phrase string, items []dto.QuoteItem) string {
	if phrase != "" {
		return "Cotización de " + phrase
	}
	if len(items) > 0 {
		if desc := NormalizeDescription(items[0].Description); desc != enum.DefaultItemDescription {
			return "Cotización de " + desc
		}
	}
	return enum.DefaultQuoteTitle
}

// NormalizeDescription 去掉首尾的介词冠词等, 没有实际内容时返回 "Servicio"
func NormalizeDescription(value string) string {
	cleaned := strings.Trim(Normalize(value), ",:;- ")
	tokens := strings.Fields(cleaned)

	for len(tokens) > 1 && isStopWord(tokens[0]) {
		tokens = tokens[1:]
	}
	for len(tokens) > 1 && isStopWord(tokens[len(tokens)-1]) {
		tokens = tokens[:len(tokens)-1]
	}

	normalized := strings.Join(tokens, " ")
	if utf8.RuneCountInString(normalized) <= 2 {
		return enum.DefaultItemDescription
	}
	return normalized
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isDigitOrDash(c byte) bool {
	return (c >= '0' && c <= '9') || c == '-'
}
