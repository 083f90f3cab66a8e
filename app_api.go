// app_api.go - 暴露给前端的命令
// Wails 命令桥会把返回的 error 转为字符串交给前端处理

package main

import (
	"github.com/roywong35/timebar/config"
	"github.com/roywong35/timebar/internal/logging"
	"github.com/roywong35/timebar/internal/menu"
	"github.com/roywong35/timebar/internal/tray"
	"github.com/roywong35/timebar/internal/window"
)

// GetDefaultPosition 计算主窗口的默认位置（主屏水平居中、贴底边）
func (a *App) GetDefaultPosition() (window.Position, error) {
	pos, err := a.positioner.DefaultPosition(a.ctx)
	if err != nil {
		a.logger.Warn("⚠️ 获取默认窗口位置失败", "error", err)
		return window.Position{}, err
	}

	a.logger.Debug("📐 默认窗口位置", "x", pos.X, "y", pos.Y)
	return pos, nil
}

// SetWindowPosition 把主窗口移动到绝对屏幕坐标
func (a *App) SetWindowPosition(x, y int) error {
	return a.positioner.Move(a.ctx, x, y)
}

// GetWindowPosition 读取主窗口当前外框位置
func (a *App) GetWindowPosition() (window.Position, error) {
	return a.positioner.Position(a.ctx)
}

// RegisterShortcut 注册全局快捷键
// 占位实现：快捷键由前端与平台快捷键插件处理，这里始终成功
func (a *App) RegisterShortcut(shortcut, action string) error {
	a.logger.Debug("⌨️ 快捷键注册由前端处理", "shortcut", shortcut, "action", action)
	return nil
}

// OpenPresetSettings 打开（或聚焦）预设编辑窗口
func (a *App) OpenPresetSettings() error {
	if err := a.settingsOpener.Open(a.ctx); err != nil {
		a.logger.Error("❌ 打开设置窗口失败", "error", err)
		return err
	}
	return nil
}

// RebuildTrayMenu 用前端传来的预设整体重建托盘菜单
func (a *App) RebuildTrayMenu(presets []config.PresetTime) error {
	a.logger.Info("🔁 重建托盘菜单", "preset_count", len(presets))

	if a.trayController == nil {
		return tray.ErrTrayNotFound
	}

	if err := a.trayController.Install(menu.BuildTrayMenu(presets)); err != nil {
		a.logger.Error("❌ 重建托盘菜单失败", "error", err)
		return err
	}

	a.logger.Info("✅ 托盘菜单重建完成")
	return nil
}

// GetPresets 返回配置中的预设列表
func (a *App) GetPresets() []config.PresetTime {
	return a.getConfig().Presets
}

// GetRecentLogs 返回最近的后端日志（调试面板用）
func (a *App) GetRecentLogs(limit int) []logging.LogEntry {
	if a.logHandler == nil {
		return nil
	}
	return a.logHandler.Recent(limit)
}
