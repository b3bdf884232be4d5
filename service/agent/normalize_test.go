package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, `"Hola" mundo - 'x'`, Normalize("  “Hola”   mundo — ‘x’ "))
	assert.Equal(t, `"a" b`, Normalize("«a»\t\nb"))
	assert.Equal(t, "", Normalize("   "))
}

func TestSpellOutNumbers(t *testing.T) {
	cases := map[string]string{
		"veinte":                   "20",
		"cien":                     "100",
		"dos mil quinientos":       "2500",
		"quiero veinte unidades":   "quiero 20 unidades",
		"ciento veintitrés":        "123",
		"treinta y cinco":          "35",
		"un millón doscientos mil": "1200000",
		"dos coma cinco":           "2.5",
		"tres punto cero cinco":    "3.05",
		"mil":                      "1000",
		"veinte, treinta":          "20, 30",
		"por cien.":                "por 100.",
		"un cliente":               "un cliente",
		"una cotización para juan": "una cotización para juan",
		"uno y otro":               "uno y otro",
		"dos y tres":               "dos y tres",
		"dos punto de venta":       "2 punto de venta",
		"":                         "",
	}
	for in, want := range cases {
		assert.Equal(t, want, SpellOutNumbers(in), in)
	}
}

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1.250,50", 1250.50},
		{"1,250.50", 1250.50},
		{"1250", 1250},
		{"2.500", 2500},
		{"2,5", 2.5},
		{"1.000.000", 1000000},
		{"1,000,000", 1000000},
		{"RD$ 1,500", 1500},
		{"$3.5", 3.5},
		{"€20", 20},
	}
	for _, c := range cases {
		got, ok := ParseNumber(c.in)
		assert.True(t, ok, c.in)
		assert.InDelta(t, c.want, got, 1e-9, c.in)
	}

	for _, in := range []string{"", "abc", "12a", "$"} {
		_, ok := ParseNumber(in)
		assert.False(t, ok, in)
	}
}
