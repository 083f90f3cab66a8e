// Package tray 系统托盘（平台相关实现在 tray_systray.go / tray_stub.go）
package tray

import (
	"context"
	"errors"

	"github.com/roywong35/timebar/internal/menu"
)

// ErrTrayNotFound 托盘实例不存在（尚未就绪或已停止）
// 调用方错误，不重试
var ErrTrayNotFound = errors.New("tray not found")

// Controller 表示托盘控制器
type Controller interface {
	// Install 用给定条目整体替换当前菜单
	Install(items []menu.Item) error

	// Stop 停止托盘
	Stop()
}

// Options 托盘启动参数
type Options struct {
	// Icon 托盘图标内容（Windows 推荐 .ico 字节；其它平台可忽略）
	Icon []byte

	// Tooltip 托盘悬浮提示文本
	Tooltip string

	// Menu 初始菜单
	Menu []menu.Item

	// OnEvent 菜单条目被激活时触发，参数为条目标识符
	OnEvent func(id string)
}

// Start 启动系统托盘（平台相关实现）
func Start(ctx context.Context, opts Options) (Controller, error) {
	return start(ctx, opts)
}
