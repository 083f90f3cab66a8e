package logging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// LogEntry 一条可推送到前端的日志记录
type LogEntry struct {
	ID      string    `json:"id"`
	Time    time.Time `json:"time"`
	Level   string    `json:"level"`
	Message string    `json:"message"`
}

// BroadcastHandler 包装底层 handler，额外保留最近 N 条日志
// 供前端查询（GetRecentLogs），并把新条目交给 EventEmitter 推送
type BroadcastHandler struct {
	inner slog.Handler

	mu      sync.Mutex
	entries []LogEntry
	max     int

	// Emitter 前端日志推送器（前端订阅后启动）
	Emitter *EventEmitter
}

// NewBroadcastHandler 创建广播处理器，max 为内存中保留的日志条数上限
func NewBroadcastHandler(inner slog.Handler, max int) *BroadcastHandler {
	if max <= 0 {
		max = 1000
	}
	return &BroadcastHandler{
		inner:   inner,
		max:     max,
		Emitter: NewEventEmitter(),
	}
}

func (h *BroadcastHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *BroadcastHandler) Handle(ctx context.Context, r slog.Record) error {
	err := h.inner.Handle(ctx, r)

	message := r.Message
	var attrs []string
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, fmt.Sprintf("%s=%v", a.Key, a.Value))
		return true
	})
	if len(attrs) > 0 {
		message = message + " " + strings.Join(attrs, " ")
	}

	entry := LogEntry{
		ID:      uuid.NewString(),
		Time:    r.Time,
		Level:   levelString(r.Level),
		Message: message,
	}

	h.mu.Lock()
	h.entries = append(h.entries, entry)
	if len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
	h.mu.Unlock()

	h.Emitter.Emit(entry)

	return err
}

func (h *BroadcastHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

func (h *BroadcastHandler) WithGroup(name string) slog.Handler {
	return h
}

// Recent 返回最近的日志条目（最多 limit 条，limit<=0 返回全部保留的）
func (h *BroadcastHandler) Recent(limit int) []LogEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := len(h.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]LogEntry, n)
	copy(out, h.entries[len(h.entries)-n:])
	return out
}
