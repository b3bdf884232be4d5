package initialize

import (
	"testing"

	"github.com/rcdrguez/quickquote-agent-demo/model/config"
	"github.com/stretchr/testify/assert"
)

func TestHandleConfigDefaults(t *testing.T) {
	c := new(config.Config)
	handleConfig(c)

	assert.Equal(t, ":8787", c.GinAddr)
	assert.Equal(t, []string{"http://localhost:5173"}, c.Cors)
	assert.Equal(t, "sqlite3", c.Database.Type)
	assert.Equal(t, "data/quickquote.db", c.Database.SqlitePath)
	assert.Equal(t, 0.72, c.Ai.ConfirmationThreshold)
	assert.Equal(t, int64(1500), c.Ai.EmbedTimeoutMs)
	assert.Equal(t, 0.18, c.Quote.TaxRate)
	assert.Equal(t, "DOP", c.Quote.DefaultCurrency)

	c.GinAddr = ":9000"
	handleConfig(c)
	assert.Equal(t, ":9000", c.GinAddr)
}

func TestRestartFields(t *testing.T) {
	oldConfig := new(config.Config)
	handleConfig(oldConfig)
	newConfig := oldConfig.DeepCopy()
	assert.Empty(t, restartFields(oldConfig, newConfig))

	newConfig.GinAddr = ":9000"
	newConfig.Database.SqlitePath = "other.db"
	newConfig.Ai.ConfirmationThreshold = 0.8
	assert.Equal(t, []string{"database", "gin_addr"}, restartFields(oldConfig, newConfig))
}
