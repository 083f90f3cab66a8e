// app.go - Wails 应用核心结构
// 封装各组件并提供生命周期管理

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/roywong35/timebar/config"
	"github.com/roywong35/timebar/internal/dispatch"
	"github.com/roywong35/timebar/internal/logging"
	"github.com/roywong35/timebar/internal/menu"
	"github.com/roywong35/timebar/internal/platform"
	"github.com/roywong35/timebar/internal/tray"
	"github.com/roywong35/timebar/internal/utils"
	"github.com/roywong35/timebar/internal/window"
)

// App 是 Wails 应用的核心结构
// 它封装了所有组件，并暴露方法给前端调用
type App struct {
	// Wails 上下文
	ctx context.Context

	// 配置与日志
	config        *config.Config
	configWatcher *config.ConfigWatcher
	logger        *slog.Logger
	logHandler    *logging.BroadcastHandler
	logEmitter    *logging.EventEmitter
	simpleHandler *logging.SimpleHandler

	// 窗口系统能力与各组件
	backend        platform.Backend
	positioner     *window.Positioner
	settingsOpener *window.SettingsOpener
	dispatcher     *dispatch.Dispatcher
	trayController tray.Controller

	// 应用状态
	startTime  time.Time
	configPath string

	// 并发控制
	mu       sync.RWMutex
	quitting int32
}

// NewApp 创建新的应用实例
func NewApp() *App {
	return &App{
		startTime: time.Now(),
	}
}

// startup 在 Wails 应用启动时调用
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	// 1. 加载配置
	a.loadConfig()

	// 2. 初始化日志
	a.setupLogger()

	a.logger.Info("🚀 TimeBar 启动中...",
		"version", Version,
		"config_file", a.configPath)

	// 3. 窗口系统能力与各组件
	a.backend = platform.NewWailsBackend()

	cfg := a.getConfig()
	a.positioner = window.NewPositioner(a.backend, cfg.Window.Width, cfg.Window.Height)
	a.settingsOpener = window.NewSettingsOpener(window.NewEventSettingsBackend(a.backend), a.logger)
	a.dispatcher = dispatch.NewDispatcher(a.backend, a.settingsOpener, a.logger)

	// 4. 启动系统托盘（静态菜单；动态预设菜单在首次重建时接管）
	a.startTray()

	// 5. 配置热重载：预设变更时整体重建托盘菜单
	a.setupConfigReload()

	a.logger.Info("✅ TimeBar 启动完成")
}

// domReady 在前端 DOM 准备就绪时调用
func (a *App) domReady(ctx context.Context) {
	// 启动日志推送
	if a.logEmitter != nil {
		a.logEmitter.Start(ctx)
	}

	// 把主窗口摆到默认位置（主屏水平居中、贴底边）
	pos, err := a.positioner.DefaultPosition(ctx)
	if err != nil {
		a.logger.Warn("⚠️ 无法计算默认窗口位置", "error", err)
	} else if err := a.positioner.Move(ctx, pos.X, pos.Y); err != nil {
		a.logger.Warn("⚠️ 移动主窗口失败", "error", err)
	}

	// 推送当前预设给前端
	a.emitPresetsUpdated(a.getConfig().Presets)
}

// beforeClose 在窗口关闭前调用，返回 true 阻止默认关闭流程
func (a *App) beforeClose(ctx context.Context) bool {
	if !atomic.CompareAndSwapInt32(&a.quitting, 0, 1) {
		return false
	}

	// 主动触发应用退出，统一收口到 OnShutdown
	// 注意：Quit 可能触发同步回调，避免在 BeforeClose 回调里阻塞 UI 线程
	go a.backend.Quit(ctx)
	return true
}

// shutdown 在 Wails 应用关闭时调用
func (a *App) shutdown(ctx context.Context) {
	if a.logger != nil {
		a.logger.Info("🛑 正在关闭 TimeBar...")
	}

	// 1. 停止托盘
	if a.trayController != nil {
		a.trayController.Stop()
	}

	// 2. 停止配置监听
	if a.configWatcher != nil {
		_ = a.configWatcher.Close()
	}

	// 3. 停止日志推送
	if a.logEmitter != nil {
		a.logEmitter.Stop()
	}

	if a.logger != nil {
		a.logger.Info("✅ TimeBar 已关闭")
	}

	// 4. 最后关闭日志文件
	if a.simpleHandler != nil {
		_ = a.simpleHandler.Close()
	}
}

// loadConfig 加载配置，首次运行时把嵌入的默认配置写入用户目录
func (a *App) loadConfig() {
	tempLogger := slog.Default()

	if err := utils.EnsureAppDirs(); err != nil {
		tempLogger.Warn("⚠️ 无法创建应用目录", "error", err)
	}

	configPath := utils.GetConfigPath()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		tempLogger.Info("📝 首次运行，写入默认配置", "path", configPath)
		if err := os.WriteFile(configPath, defaultConfigContent, 0644); err != nil {
			panic(fmt.Sprintf("无法写入默认配置: %v", err))
		}
	}

	configWatcher, err := config.NewConfigWatcher(configPath, tempLogger)
	if err != nil {
		panic(fmt.Sprintf("无法加载配置: %v", err))
	}

	a.configWatcher = configWatcher
	cfg := configWatcher.GetConfig()

	// 日志统一写到用户目录，不管配置里写了什么相对路径
	if cfg.Logging.FileEnabled {
		cfg.Logging.FilePath = filepath.Join(utils.GetLogDir(), "app.log")
	}

	a.config = cfg
	a.configPath = configPath
}

// setupLogger 设置日志
func (a *App) setupLogger() {
	cfg := a.getConfig()
	level := logging.ParseLevel(cfg.Logging.Level)

	var rotator *logging.FileRotator
	if cfg.Logging.FileEnabled {
		maxSize, err := logging.ParseSize(cfg.Logging.MaxFileSize)
		if err != nil {
			fmt.Printf("警告：无法解析日志文件大小配置 '%s'，使用默认值 10MB: %v\n", cfg.Logging.MaxFileSize, err)
			maxSize = 10 * 1024 * 1024
		}

		rotator, err = logging.NewFileRotator(cfg.Logging.FilePath, maxSize, cfg.Logging.MaxFiles)
		if err != nil {
			fmt.Printf("警告：无法创建日志文件轮转器: %v\n", err)
			rotator = nil
		}
	}

	simpleHandler := logging.NewSimpleHandler(level, rotator)
	broadcastHandler := logging.NewBroadcastHandler(simpleHandler, 1000)

	a.simpleHandler = simpleHandler
	a.logHandler = broadcastHandler
	a.logEmitter = broadcastHandler.Emitter
	a.logger = slog.New(broadcastHandler)
	slog.SetDefault(a.logger)

	a.configWatcher.UpdateLogger(a.logger)
}

// startTray 启动系统托盘
func (a *App) startTray() {
	ctrl, err := tray.Start(a.ctx, tray.Options{
		Icon:    icon,
		Tooltip: "TimeBar",
		Menu:    menu.BuildStaticMenu(),
		OnEvent: func(id string) {
			a.dispatcher.Handle(a.ctx, id)
		},
	})
	if err != nil {
		a.logger.Error("❌ 托盘启动失败", "error", err)
		return
	}
	a.trayController = ctrl
}

// setupConfigReload 配置热重载：预设变更时重建托盘菜单并通知前端
func (a *App) setupConfigReload() {
	a.configWatcher.AddReloadCallback(func(cfg *config.Config) {
		a.mu.Lock()
		a.config = cfg
		a.mu.Unlock()

		if a.trayController != nil {
			if err := a.trayController.Install(menu.BuildTrayMenu(cfg.Presets)); err != nil {
				a.logger.Error("❌ 重建托盘菜单失败", "error", err)
			}
		}

		a.emitPresetsUpdated(cfg.Presets)
	})
}

// getConfig 返回当前配置（线程安全）
func (a *App) getConfig() *config.Config {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.config
}
