package agent

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/rcdrguez/quickquote-agent-demo/model/dto"
)

const (
	numPat   = `(\d+(?:[.,]\d+)*)`
	curPat   = `(?:RD\$|US\$|\$)?\s*`
	eachPat  = `(?:\s*(?:c/u|cada\s+un[oa]))?`
	unitPat  = `(?:unidades|unidad|uds|ud)`
	pricePre = `(?:un\s+precio\s+(?:de\s+)?)?`
)

var (
	// 2 unidades de laptop a 500 c/u
	reDirectUnits = regexp.MustCompile(`(?i)` + numPat + `\s*(?:` + unitPat + `|x)\s+(?:de\s+)?([\p{L}][\p{L}\d\s/-]*?)\s+(?:a|por|en)\s+` + pricePre + curPat + numPat + eachPat)
	// 3 laptops a 25000 / 2 unidades a 3000
	reDirectInline = regexp.MustCompile(`(?i)` + numPat + `\s+([\p{L}][\p{L}\d\s/-]*?)\s+a\s+` + pricePre + curPat + numPat + eachPat)
	// laptops por 3 unidades a 500
	reDirectTrailing = regexp.MustCompile(`(?i)((?:[\p{L}/-]+\s+){0,2}[\p{L}/-]+)\s+(?:x|por)\s+` + numPat + `\s*` + unitPat + `\s+(?:a|por)\s+` + curPat + numPat + eachPat)

	reTimes     = regexp.MustCompile(`(?i)` + numPat + `\s*[x*]\s*` + curPat + numPat)
	reQtyWord   = regexp.MustCompile(`(?i)cantidad\s*(?:de\s*)?:?\s*` + numPat)
	rePriceWord = regexp.MustCompile(`(?i)precio\s*(?:unitario\s*)?(?:de\s*)?:?\s*` + curPat + numPat)

	reUnitsOf    = regexp.MustCompile(`(?i)` + numPat + `\s*` + unitPat + `\s+de\s+` + curPat + numPat)
	reLoosePrice = regexp.MustCompile(`(?i)(?:^|\s)(?:por|a|de)\s+` + curPat + numPat)
)

// segment 内剩余文字超过该词数时视为上下文而非品名
const maxSegmentDescriptionWords = 4

type itemStrategy struct {
	name  string
	parse func(text, fallback string) []dto.QuoteItem
}

// 按优先级排列, 第一个产出结果的策略生效
var itemStrategies = []itemStrategy{
	{name: "direct", parse: parseDirect},
	{name: "segments", parse: parseSegments},
	{name: "loose", parse: parseLoose},
}

// ParseItems 解析报价明细, 结果已去重且 qty >= 1, unitPrice >= 0
func ParseItems(text, fallback string) []dto.QuoteItem {
	items, _ := parseItemsWithStrategy(text, fallback)
	return items
}

func parseItemsWithStrategy(text, fallback string) ([]dto.QuoteItem, string) {
	text = Normalize(text)
	for _, s := range itemStrategies {
		if items := dedupItems(s.parse(text, fallback)); len(items) > 0 {
			return items, s.name
		}
	}
	return []dto.QuoteItem{}, ""
}

type positioned struct {
	start, end int
	item       dto.QuoteItem
}

func parseDirect(text, fallback string) []dto.QuoteItem {
	var found []positioned

	for _, m := range reDirectUnits.FindAllStringSubmatchIndex(text, -1) {
		if item, ok := newItem(itemDescription(text[m[4]:m[5]], fallback), text[m[2]:m[3]], text[m[6]:m[7]]); ok {
			found = append(found, positioned{m[0], m[1], item})
		}
	}
	for _, m := range reDirectInline.FindAllStringSubmatchIndex(text, -1) {
		if item, ok := newItem(itemDescription(text[m[4]:m[5]], fallback), text[m[2]:m[3]], text[m[6]:m[7]]); ok {
			found = append(found, positioned{m[0], m[1], item})
		}
	}
	for _, m := range reDirectTrailing.FindAllStringSubmatchIndex(text, -1) {
		if item, ok := newItem(itemDescription(text[m[2]:m[3]], fallback), text[m[4]:m[5]], text[m[6]:m[7]]); ok {
			found = append(found, positioned{m[0], m[1], item})
		}
	}

	// 同一片段被多个模式命中时只保留最先出现的
	sort.SliceStable(found, func(i, j int) bool { return found[i].start < found[j].start })
	items := make([]dto.QuoteItem, 0, len(found))
	covered := -1
	for _, f := range found {
		if f.start < covered {
			continue
		}
		items = append(items, f.item)
		covered = f.end
	}
	return items
}

func parseSegments(text, fallback string) []dto.QuoteItem {
	var items []dto.QuoteItem
	// 单独成段的 "cantidad de N" 留给随后的 "precio de P"
	pendingQty := ""

	for _, seg := range splitSegments(text) {
		if m := reDirectInline.FindStringSubmatch(seg); m != nil {
			pendingQty = ""
			if item, ok := newItem(itemDescription(m[2], fallback), m[1], m[3]); ok && item.UnitPrice >= 0.01 {
				items = append(items, item)
			}
			continue
		}

		if m := reTimes.FindStringSubmatchIndex(seg); m != nil {
			pendingQty = ""
			rest := seg[:m[0]] + " " + seg[m[1]:]
			if item, ok := newItem(segmentDescription(rest, fallback), seg[m[2]:m[3]], seg[m[4]:m[5]]); ok && item.UnitPrice >= 0.01 {
				items = append(items, item)
			}
			continue
		}

		pm := rePriceWord.FindStringSubmatchIndex(seg)
		if pm == nil {
			if qm := reQtyWord.FindStringSubmatch(seg); qm != nil {
				pendingQty = qm[1]
			}
			continue
		}
		qty := "1"
		if pendingQty != "" {
			qty, pendingQty = pendingQty, ""
		}
		rest := seg[:pm[0]] + " " + seg[pm[1]:]
		if qm := reQtyWord.FindStringSubmatchIndex(rest); qm != nil {
			qty = rest[qm[2]:qm[3]]
			rest = rest[:qm[0]] + " " + rest[qm[1]:]
		}
		if item, ok := newItem(segmentDescription(rest, fallback), qty, seg[pm[2]:pm[3]]); ok && item.UnitPrice >= 0.01 {
			items = append(items, item)
		}
	}

	return items
}

func parseLoose(text, fallback string) []dto.QuoteItem {
	desc := NormalizeDescription(fallback)

	var items []dto.QuoteItem
	for _, m := range reUnitsOf.FindAllStringSubmatch(text, -1) {
		if item, ok := newItem(desc, m[1], m[2]); ok {
			items = append(items, item)
		}
	}
	if len(items) > 0 {
		return items
	}

	for _, m := range reLoosePrice.FindAllStringSubmatch(text, -1) {
		if item, ok := newItem(desc, "1", m[1]); ok {
			items = append(items, item)
		}
	}
	return items
}

// splitSegments 以 ; 和 , 切分, 数字之间的逗号(小数/千位)不切
func splitSegments(text string) []string {
	var (
		segments []string
		start    int
	)
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case ';':
		case ',':
			if i > 0 && i+1 < len(text) && isAsciiDigit(text[i-1]) && isAsciiDigit(text[i+1]) {
				continue
			}
		default:
			continue
		}
		if seg := strings.TrimSpace(text[start:i]); seg != "" {
			segments = append(segments, seg)
		}
		start = i + 1
	}
	if seg := strings.TrimSpace(text[start:]); seg != "" {
		segments = append(segments, seg)
	}
	return segments
}

func newItem(description, qty, price string) (dto.QuoteItem, bool) {
	q, ok := ParseNumber(qty)
	if !ok || q < 1 {
		return dto.QuoteItem{}, false
	}
	p, ok := ParseNumber(price)
	if !ok || p < 0 {
		return dto.QuoteItem{}, false
	}
	return dto.QuoteItem{Description: description, Qty: q, UnitPrice: p}, true
}

// itemDescription 去掉开头的单位词, 只剩单位词时使用兜底描述
func itemDescription(raw, fallback string) string {
	tokens := strings.Fields(Normalize(raw))
	for len(tokens) > 0 && (isUnitWord(tokens[0]) || (len(tokens) > 1 && isStopWord(tokens[0]))) {
		tokens = tokens[1:]
	}
	if len(tokens) == 0 {
		return NormalizeDescription(fallback)
	}
	return NormalizeDescription(strings.Join(tokens, " "))
}

func segmentDescription(rest, fallback string) string {
	tokens := strings.Fields(strings.Trim(Normalize(rest), ",:;- "))
	if len(tokens) == 0 || len(tokens) > maxSegmentDescriptionWords {
		return NormalizeDescription(fallback)
	}
	return itemDescription(strings.Join(tokens, " "), fallback)
}

func dedupItems(items []dto.QuoteItem) []dto.QuoteItem {
	seen := make(map[string]struct{}, len(items))
	out := make([]dto.QuoteItem, 0, len(items))
	for _, it := range items {
		key := it.Description + "\x00" + strconv.FormatFloat(it.Qty, 'f', -1, 64) + "\x00" + strconv.FormatFloat(it.UnitPrice, 'f', -1, 64)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
	}
	return out
}

func isAsciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
