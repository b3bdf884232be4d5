package task

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rcdrguez/quickquote-agent-demo/global"
	"github.com/rcdrguez/quickquote-agent-demo/service/agent"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useQuietLog(t *testing.T) {
	t.Helper()
	old := global.Log
	global.Log = logrus.New()
	global.Log.SetOutput(io.Discard)
	t.Cleanup(func() { global.Log = old })
}

func TestCleanUpLogs(t *testing.T) {
	useQuietLog(t)
	dir := t.TempDir()
	oldCfg := *global.Config
	t.Cleanup(func() { *global.Config = oldCfg })
	global.Config.RunLogPath = filepath.Join(dir, "run.log")
	global.Config.GinLogPath = filepath.Join(dir, "gin.log")
	global.Config.LogRetentionDays = 7

	today := time.Now().In(global.Tz)
	files := map[string]bool{
		"run.log." + today.AddDate(0, 0, -30).Format("2006-01-02"): false,
		"gin.log." + today.AddDate(0, 0, -8).Format("2006-01-02"):  false,
		"run.log." + today.Format("2006-01-02"):                    true,
		"notes.txt":                                                true,
	}
	for name := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	require.NoError(t, NewManager(nil).CleanUpLogs())
	for name, keep := range files {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.Equal(t, keep, err == nil, name)
	}
}

func TestCleanUpLogsDisabled(t *testing.T) {
	useQuietLog(t)
	oldCfg := *global.Config
	t.Cleanup(func() { *global.Config = oldCfg })
	global.Config.LogRetentionDays = 0
	global.Config.RunLogPath = "/nonexistent/run.log"

	assert.NoError(t, NewManager(nil).CleanUpLogs())
}

type countingEmbedder struct {
	calls int
	fail  bool
}

func (e *countingEmbedder) CreateEmbeddings(_ context.Context, texts []string) ([][]float32, error) {
	e.calls++
	if e.fail {
		return nil, errors.New("down")
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{1, float32(i)}
	}
	return out, nil
}

func TestWarmExemplars(t *testing.T) {
	useQuietLog(t)

	assert.NoError(t, NewManager(nil).WarmExemplars())
	assert.NoError(t, NewManager(agent.NewClassifier(nil)).WarmExemplars())

	emb := &countingEmbedder{}
	m := NewManager(agent.NewClassifier(emb))
	require.NoError(t, m.WarmExemplars())
	require.NoError(t, m.WarmExemplars())
	assert.Equal(t, 1, emb.calls)

	failing := NewManager(agent.NewClassifier(&countingEmbedder{fail: true}))
	assert.Error(t, failing.WarmExemplars())
}

func TestProbeMcpRequiresUrl(t *testing.T) {
	useQuietLog(t)
	oldCfg := *global.Config
	t.Cleanup(func() { *global.Config = oldCfg })
	global.Config.Mcp.ProbeUrl = ""

	assert.Error(t, NewManager(nil).ProbeMcp())
}

func TestActionLookup(t *testing.T) {
	m := NewManager(nil)
	for _, name := range ActionNames {
		fn, ok := m.Action(name)
		assert.True(t, ok, name)
		assert.NotNil(t, fn, name)
	}
	_, ok := m.Action("sync")
	assert.False(t, ok)
}
