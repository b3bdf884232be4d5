package task

import (
	"sync"

	"github.com/rcdrguez/quickquote-agent-demo/service/agent"
)

type Manager struct {
	mu         sync.RWMutex
	classifier *agent.Classifier
}

// NewManager classifier 为 nil 时预热任务直接跳过
func NewManager(classifier *agent.Classifier) *Manager {
	return &Manager{
		classifier: classifier,
	}
}

// SetClassifier 配置热重载后替换
func (m *Manager) SetClassifier(classifier *agent.Classifier) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.classifier = classifier
}

func (m *Manager) getClassifier() *agent.Classifier {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.classifier
}

// ActionNames -a 可选的任务, 顺序即帮助输出顺序
var ActionNames = []string{"seed", "mcp", "warmup", "clear"}

// Action 按名称取得一次性任务
func (m *Manager) Action(name string) (func() error, bool) {
	switch name {
	case "seed":
		return m.SeedDemoData, true
	case "mcp":
		return m.ProbeMcp, true
	case "warmup":
		return m.WarmExemplars, true
	case "clear":
		return m.CleanUpLogs, true
	}
	return nil, false
}
