package dispatch

import (
	"context"
	"log/slog"

	"github.com/roywong35/timebar/internal/platform"
)

// 发往前端的通知（单向，无应答）
const (
	NotifyPresetSelected = "preset-selected"
	NotifyToggleMode     = "toggle-mode"
	NotifyOpenSettings   = "open-settings"
	NotifyChangeTheme    = "change-theme"
)

// SettingsOpener 设置窗口打开能力
type SettingsOpener interface {
	Open(ctx context.Context) error
}

// Dispatcher 托盘菜单事件分发器
// 在托盘回调线程上同步执行；唯一的异步出口是打开设置窗口的 spawn
type Dispatcher struct {
	backend platform.Backend
	opener  SettingsOpener
	logger  *slog.Logger

	// spawn 执行异步任务；托盘回调禁止阻塞，打开设置窗口走这里
	spawn func(func())
}

// NewDispatcher 创建分发器
func NewDispatcher(backend platform.Backend, opener SettingsOpener, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		backend: backend,
		opener:  opener,
		logger:  logger,
		spawn:   func(task func()) { go task() },
	}
}

// Handle 处理一次菜单激活
// 未知标识符只记录日志；通知发送失败只记录日志，绝不向托盘事件循环传播
func (d *Dispatcher) Handle(ctx context.Context, id string) {
	d.logger.Debug("🖱️ 托盘菜单事件", "id", id)

	action, ok := Decode(id)
	if !ok {
		d.logger.Warn("⚠️ 未知的托盘菜单项", "id", id)
		return
	}

	switch a := action.(type) {
	case ShowMain:
		if err := d.backend.ShowMainWindow(ctx); err != nil {
			d.logger.Warn("⚠️ 显示主窗口失败", "error", err)
		}

	case SelectPreset:
		d.notify(ctx, NotifyPresetSelected, a.Index)

	case ToggleMode:
		d.notify(ctx, NotifyToggleMode)

	case CustomTime:
		d.notify(ctx, NotifyOpenSettings)

	case ChangeTheme:
		d.notify(ctx, NotifyChangeTheme, a.Name)

	case CustomizePresets:
		d.spawn(func() {
			if err := d.opener.Open(ctx); err != nil {
				d.logger.Error("❌ 打开设置窗口失败", "error", err)
			}
		})

	case Quit:
		d.logger.Info("👋 用户从托盘退出")
		d.backend.Quit(ctx)
	}
}

// notify 发送单向通知到主窗口，失败只记录日志
func (d *Dispatcher) notify(ctx context.Context, name string, data ...interface{}) {
	if err := d.backend.EventsEmit(ctx, name, data...); err != nil {
		d.logger.Warn("⚠️ 通知前端失败", "event", name, "error", err)
	}
}
