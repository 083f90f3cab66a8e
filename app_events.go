// app_events.go - Wails 事件发射
// 把后端状态变化通知到前端（单向，无应答）

package main

import (
	"github.com/roywong35/timebar/config"
)

// 事件名称常量
// 托盘分发产生的通知（preset-selected 等）定义在 internal/dispatch
const (
	EventPresetsUpdated = "presets-updated"
)

// emitPresetsUpdated 把当前预设推送给前端（配置重载或 DOM 就绪时）
func (a *App) emitPresetsUpdated(presets []config.PresetTime) {
	if a.ctx == nil || a.backend == nil {
		return
	}

	if err := a.backend.EventsEmit(a.ctx, EventPresetsUpdated, presets); err != nil {
		a.logger.Warn("⚠️ 推送预设更新失败", "error", err)
	}
}
