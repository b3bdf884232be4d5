package agent

import (
	"strconv"
	"strings"

	"github.com/rcdrguez/quickquote-agent-demo/utils"
)

type wordKind uint8

const (
	kindUnit wordKind = iota + 1
	kindTeen
	kindTwenty
	kindTens
	kindHundred
	kindThousand
	kindMillion
	kindAnd
	kindDecimal
)

type numberWord struct {
	kind  wordKind
	value int64
}

// 词表键已去重音
var numberWords = map[string]numberWord{
	"cero": {kindUnit, 0}, "un": {kindUnit, 1}, "una": {kindUnit, 1}, "uno": {kindUnit, 1},
	"dos": {kindUnit, 2}, "tres": {kindUnit, 3}, "cuatro": {kindUnit, 4}, "cinco": {kindUnit, 5},
	"seis": {kindUnit, 6}, "siete": {kindUnit, 7}, "ocho": {kindUnit, 8}, "nueve": {kindUnit, 9},

	"diez": {kindTeen, 10}, "once": {kindTeen, 11}, "doce": {kindTeen, 12}, "trece": {kindTeen, 13},
	"catorce": {kindTeen, 14}, "quince": {kindTeen, 15}, "dieciseis": {kindTeen, 16},
	"diecisiete": {kindTeen, 17}, "dieciocho": {kindTeen, 18}, "diecinueve": {kindTeen, 19},

	"veinte": {kindTwenty, 20}, "veintiun": {kindTwenty, 21}, "veintiuno": {kindTwenty, 21},
	"veintiuna": {kindTwenty, 21}, "veintidos": {kindTwenty, 22}, "veintitres": {kindTwenty, 23},
	"veinticuatro": {kindTwenty, 24}, "veinticinco": {kindTwenty, 25}, "veintiseis": {kindTwenty, 26},
	"veintisiete": {kindTwenty, 27}, "veintiocho": {kindTwenty, 28}, "veintinueve": {kindTwenty, 29},

	"treinta": {kindTens, 30}, "cuarenta": {kindTens, 40}, "cincuenta": {kindTens, 50},
	"sesenta": {kindTens, 60}, "setenta": {kindTens, 70}, "ochenta": {kindTens, 80},
	"noventa": {kindTens, 90},

	"cien": {kindHundred, 100}, "ciento": {kindHundred, 100},
	"doscientos": {kindHundred, 200}, "doscientas": {kindHundred, 200},
	"trescientos": {kindHundred, 300}, "trescientas": {kindHundred, 300},
	"cuatrocientos": {kindHundred, 400}, "cuatrocientas": {kindHundred, 400},
	"quinientos": {kindHundred, 500}, "quinientas": {kindHundred, 500},
	"seiscientos": {kindHundred, 600}, "seiscientas": {kindHundred, 600},
	"setecientos": {kindHundred, 700}, "setecientas": {kindHundred, 700},
	"ochocientos": {kindHundred, 800}, "ochocientas": {kindHundred, 800},
	"novecientos": {kindHundred, 900}, "novecientas": {kindHundred, 900},

	"mil":      {kindThousand, 1000},
	"millon":   {kindMillion, 1000000},
	"millones": {kindMillion, 1000000},

	"y":     {kindAnd, 0},
	"coma":  {kindDecimal, 0},
	"punto": {kindDecimal, 0},
}

const trailingPunct = ",.;:!?)"

type wordToken struct {
	raw   string
	core  string
	punct string
	word  numberWord
	ok    bool
}

func (t wordToken) connector() bool {
	return t.ok && (t.word.kind == kindAnd || t.word.kind == kindDecimal)
}

func (t wordToken) article() bool {
	return t.core == "un" || t.core == "una" || t.core == "uno"
}

func tokenize(text string) []wordToken {
	parts := strings.Split(text, " ")
	tokens := make([]wordToken, 0, len(parts))
	for _, p := range parts {
		core := strings.TrimRight(p, trailingPunct)
		t := wordToken{raw: p, core: utils.FoldKey(core), punct: p[len(core):]}
		t.word, t.ok = numberWords[t.core]
		tokens = append(tokens, t)
	}
	return tokens
}

// SpellOutNumbers 把西语数字词组替换为阿拉伯数字; 无法完整解析的词组原样保留
func SpellOutNumbers(text string) string {
	if text == "" {
		return text
	}

	tokens := tokenize(text)
	out := make([]string, 0, len(tokens))

	for i := 0; i < len(tokens); {
		if !tokens[i].ok || tokens[i].connector() {
			out = append(out, tokens[i].raw)
			i++
			continue
		}

		// 最长连续数字词, 带标点的词结束词组
		j := i + 1
		for j < len(tokens) && tokens[j].ok && tokens[j-1].punct == "" {
			j++
		}
		end := j
		for end > i && tokens[end-1].connector() {
			end--
		}

		run := tokens[i:end]
		if len(run) == 1 && run[0].article() {
			out = append(out, run[0].raw)
			i = end
			continue
		}

		if value, ok := parseNumberWords(run); ok {
			out = append(out, value+run[len(run)-1].punct)
		} else {
			for _, t := range run {
				out = append(out, t.raw)
			}
		}
		i = end
	}

	return strings.Join(out, " ")
}

func parseNumberWords(run []wordToken) (string, bool) {
	for k, t := range run {
		if t.word.kind != kindDecimal {
			continue
		}
		whole, ok := parseInteger(run[:k])
		if !ok {
			return "", false
		}
		frac, ok := parseFraction(run[k+1:])
		if !ok {
			return "", false
		}
		return strconv.FormatInt(whole, 10) + "." + frac, true
	}

	whole, ok := parseInteger(run)
	if !ok {
		return "", false
	}
	return strconv.FormatInt(whole, 10), true
}

// 小数部分: 全为个位数时逐位拼接(cero cinco => 05), 否则按整数读
func parseFraction(run []wordToken) (string, bool) {
	if len(run) == 0 {
		return "", false
	}
	digits := true
	for _, t := range run {
		if t.word.kind != kindUnit {
			digits = false
			break
		}
	}
	if digits && len(run) > 1 {
		var b strings.Builder
		for _, t := range run {
			b.WriteString(strconv.FormatInt(t.word.value, 10))
		}
		return b.String(), true
	}
	v, ok := parseInteger(run)
	if !ok {
		return "", false
	}
	return strconv.FormatInt(v, 10), true
}

func parseInteger(run []wordToken) (int64, bool) {
	if len(run) == 0 {
		return 0, false
	}
	for k, t := range run {
		if t.word.kind != kindMillion {
			continue
		}
		millions, ok := parseBelowMillion(run[:k])
		if !ok || millions == 0 {
			return 0, false
		}
		rest := int64(0)
		if k+1 < len(run) {
			if rest, ok = parseBelowMillion(run[k+1:]); !ok {
				return 0, false
			}
		}
		return millions*1000000 + rest, true
	}
	return parseBelowMillion(run)
}

func parseBelowMillion(run []wordToken) (int64, bool) {
	if len(run) == 0 {
		return 0, false
	}
	for k, t := range run {
		if t.word.kind != kindThousand {
			continue
		}
		thousands := int64(1)
		if k > 0 {
			var ok bool
			if thousands, ok = parseBelowThousand(run[:k]); !ok || thousands == 0 {
				return 0, false
			}
		}
		rest := int64(0)
		if k+1 < len(run) {
			var ok bool
			if rest, ok = parseBelowThousand(run[k+1:]); !ok {
				return 0, false
			}
		}
		return thousands*1000 + rest, true
	}
	return parseBelowThousand(run)
}

func parseBelowThousand(run []wordToken) (int64, bool) {
	if len(run) == 0 {
		return 0, false
	}
	if run[0].word.kind == kindHundred {
		if len(run) == 1 {
			return run[0].word.value, true
		}
		rest, ok := parseBelowHundred(run[1:])
		if !ok {
			return 0, false
		}
		return run[0].word.value + rest, true
	}
	return parseBelowHundred(run)
}

func parseBelowHundred(run []wordToken) (int64, bool) {
	switch len(run) {
	case 1:
		switch run[0].word.kind {
		case kindUnit, kindTeen, kindTwenty, kindTens:
			return run[0].word.value, true
		}
	case 3:
		if run[0].word.kind == kindTens && run[1].word.kind == kindAnd &&
			run[2].word.kind == kindUnit && run[2].word.value > 0 {
			return run[0].word.value + run[2].word.value, true
		}
	}
	return 0, false
}

var currencySymbols = strings.NewReplacer("RD$", "", "US$", "", "$", "", "€", "", " ", "")

// ParseNumber 解析数字字面量, 区分千位与小数分隔符
func ParseNumber(s string) (float64, bool) {
	s = currencySymbols.Replace(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}

	commas := strings.Count(s, ",")
	dots := strings.Count(s, ".")

	switch {
	case commas > 0 && dots > 0:
		// 最右侧的为小数点
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case commas > 1:
		s = strings.ReplaceAll(s, ",", "")
	case dots > 1:
		s = strings.ReplaceAll(s, ".", "")
	case commas == 1 || dots == 1:
		sep := ","
		if dots == 1 {
			sep = "."
		}
		idx := strings.Index(s, sep)
		if len(s)-idx-1 == 3 {
			s = strings.Replace(s, sep, "", 1)
		} else {
			s = strings.Replace(s, sep, ".", 1)
		}
	}

	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			return 0, false
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
