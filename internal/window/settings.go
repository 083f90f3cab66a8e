package window

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/roywong35/timebar/internal/platform"
)

// 设置窗口事件（由 webview 层负责呈现二级窗口表面）
const (
	EventSettingsWindowCreate = "settings-window:create"
	EventSettingsWindowFocus  = "settings-window:focus"
)

// SettingsOptions 设置窗口创建参数
type SettingsOptions struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Resizable   bool   `json:"resizable"`
	Centered    bool   `json:"centered"`
	AlwaysOnTop bool   `json:"alwaysOnTop"`
}

// DefaultSettingsOptions 预设编辑窗口的固定参数
func DefaultSettingsOptions() SettingsOptions {
	return SettingsOptions{
		Title:       "Customize Presets",
		URL:         "settings.html",
		Width:       500,
		Height:      620,
		Resizable:   false,
		Centered:    true,
		AlwaysOnTop: true,
	}
}

// SettingsBackend 设置窗口表面的平台能力
type SettingsBackend interface {
	// Create 创建并显示设置窗口（Absent → Present）
	Create(ctx context.Context, opts SettingsOptions) error

	// Focus 聚焦并显示已存在的设置窗口（Present → Present）
	Focus(ctx context.Context) error
}

// SettingsOpener 设置窗口单例状态机
// 只建模 Absent → Present 与 Present → Present；窗口关闭由运行时处理，不在此追踪
type SettingsOpener struct {
	mu      sync.Mutex
	backend SettingsBackend
	logger  *slog.Logger
	present bool
}

// NewSettingsOpener 创建设置窗口管理器
func NewSettingsOpener(backend SettingsBackend, logger *slog.Logger) *SettingsOpener {
	return &SettingsOpener{backend: backend, logger: logger}
}

// Open 请求打开设置窗口；重复调用聚焦已有窗口而不是新建
func (o *SettingsOpener) Open(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.present {
		o.logger.Info("🪟 设置窗口已存在，聚焦")
		if err := o.backend.Focus(ctx); err != nil {
			return fmt.Errorf("failed to focus settings window: %w", err)
		}
		return nil
	}

	o.logger.Info("🪟 创建设置窗口")
	if err := o.backend.Create(ctx, DefaultSettingsOptions()); err != nil {
		return fmt.Errorf("failed to create settings window: %w", err)
	}
	o.present = true
	return nil
}

// EventSettingsBackend 生产实现：通过前端事件驱动 webview 层呈现设置窗口
// Wails v2 没有原生二级窗口，窗口表面由前端渲染，状态机保留在 Go 侧
type EventSettingsBackend struct {
	backend platform.Backend
}

// NewEventSettingsBackend 创建事件驱动的设置窗口后端
func NewEventSettingsBackend(backend platform.Backend) *EventSettingsBackend {
	return &EventSettingsBackend{backend: backend}
}

var _ SettingsBackend = (*EventSettingsBackend)(nil)

func (b *EventSettingsBackend) Create(ctx context.Context, opts SettingsOptions) error {
	return b.backend.EventsEmit(ctx, EventSettingsWindowCreate, opts)
}

func (b *EventSettingsBackend) Focus(ctx context.Context) error {
	return b.backend.EventsEmit(ctx, EventSettingsWindowFocus)
}
