package logbuf

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const DefaultCapacity = 200

// Entry 对外展示的服务端日志
type Entry struct {
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Event     string                 `json:"event"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// Buffer 固定容量的环形日志, 新的在前
type Buffer struct {
	mu      sync.RWMutex
	entries []Entry
	cap     int
}

func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{cap: capacity, entries: make([]Entry, 0, capacity)}
}

func (b *Buffer) Add(e Entry) {
	if e.Timestamp == "" {
		e.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append([]Entry{e}, b.entries...)
	if len(b.entries) > b.cap {
		b.entries = b.entries[:b.cap]
	}
}

// List 返回副本
func (b *Buffer) List() []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Hook 把带 event 字段的 logrus 日志写入 Buffer
type Hook struct {
	buf *Buffer
}

func NewHook(buf *Buffer) *Hook {
	return &Hook{buf: buf}
}

func (h *Hook) Levels() []logrus.Level {
	return []logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
		logrus.WarnLevel,
		logrus.InfoLevel,
	}
}

func (h *Hook) Fire(entry *logrus.Entry) error {
	event, ok := entry.Data["event"].(string)
	if !ok || event == "" {
		return nil
	}

	level := "info"
	if entry.Level <= logrus.WarnLevel {
		level = "error"
	}

	var details map[string]interface{}
	if d, ok := entry.Data["details"].(map[string]interface{}); ok {
		details = d
	}

	h.buf.Add(Entry{
		Timestamp: entry.Time.UTC().Format("2006-01-02T15:04:05.000Z"),
		Level:     level,
		Event:     event,
		Details:   details,
	})
	return nil
}
