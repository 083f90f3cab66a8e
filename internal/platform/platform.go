// Package platform 抽象窗口系统能力
// 生产实现包装 Wails runtime；测试用假实现替换
package platform

import "context"

// Rect 屏幕坐标系中的矩形区域
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Display 一块物理显示器
type Display struct {
	IsPrimary bool `json:"isPrimary"`
	IsCurrent bool `json:"isCurrent"`
	Bounds    Rect `json:"bounds"`
}

// Backend abstracts window-system operations so components can be tested
// against a fake. 所有方法都是一次请求-响应式的平台调用，无持续状态。
type Backend interface {
	// Displays 列出所有显示器
	Displays(ctx context.Context) ([]Display, error)

	// WindowSetPosition 把主窗口移动到绝对屏幕坐标
	WindowSetPosition(ctx context.Context, x, y int) error

	// WindowGetPosition 读取主窗口当前外框位置
	WindowGetPosition(ctx context.Context) (x, y int, err error)

	// ShowMainWindow 显示并恢复主窗口（取消最小化、聚焦、置顶）
	ShowMainWindow(ctx context.Context) error

	// EventsEmit 向前端发送一条单向通知
	EventsEmit(ctx context.Context, name string, data ...interface{}) error

	// Quit 正常退出应用（退出码 0）
	Quit(ctx context.Context)
}
