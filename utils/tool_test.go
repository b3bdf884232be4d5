package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStripAccents(t *testing.T) {
	assert.Equal(t, "cotizacion", StripAccents("cotización"))
	assert.Equal(t, "millon", StripAccents("millón"))
	assert.Equal(t, "Perez", StripAccents("Pérez"))
	assert.Equal(t, "dieciseis", FoldKey("  Dieciséis "))
}

func TestNumberFormat(t *testing.T) {
	assert.Equal(t, 0.3, NumberFormat(0.1+0.2))
	assert.Equal(t, 2700.0, NumberFormat(15000*0.18))
	assert.Equal(t, 12.5, NumberFormat(12.4999, 1))
}

func TestGetTTLWithJitter(t *testing.T) {
	assert.Equal(t, time.Duration(0), GetTTLWithJitter(0))
	assert.Equal(t, 5*time.Second, GetTTLWithJitter(5))

	ttl := GetTTLWithJitter(100)
	assert.GreaterOrEqual(t, ttl, 100*time.Second)
	assert.Less(t, ttl, 110*time.Second)
}

func TestParseDateFromLogFileName(t *testing.T) {
	d, ok := ParseDateFromLogFileName("run.log.2025-10-28", time.UTC)
	assert.True(t, ok)
	assert.Equal(t, 2025, d.Year())

	_, ok = ParseDateFromLogFileName("run.log", time.UTC)
	assert.False(t, ok)
}

func TestInSlice(t *testing.T) {
	assert.Equal(t, 1, InSlice([]string{"a", "b"}, "b"))
	assert.Equal(t, -1, InSlice([]int{1, 2}, 3))
}
