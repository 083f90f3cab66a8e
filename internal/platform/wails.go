package platform

import (
	"context"
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// WailsBackend 基于 Wails v2 runtime 的生产实现
//
// Wails runtime 在上下文无效时（窗口已销毁、应用尚未启动）会 panic，
// 这里统一 recover 成 error 返回给调用方，保证托盘回调和前端命令不会被平台调用打崩。
type WailsBackend struct{}

// NewWailsBackend 创建 Wails 后端
func NewWailsBackend() *WailsBackend {
	return &WailsBackend{}
}

var _ Backend = (*WailsBackend)(nil)

// safeCall 把 runtime 调用中的 panic 转为 error
func safeCall(op string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s failed: %v", op, r)
		}
	}()
	fn()
	return nil
}

func (b *WailsBackend) Displays(ctx context.Context) ([]Display, error) {
	var screens []runtime.Screen
	var inner error
	err := safeCall("get screens", func() {
		screens, inner = runtime.ScreenGetAll(ctx)
	})
	if err != nil {
		return nil, err
	}
	if inner != nil {
		return nil, fmt.Errorf("failed to get screens: %w", inner)
	}

	displays := make([]Display, 0, len(screens))
	for _, s := range screens {
		displays = append(displays, displayFromScreen(s))
	}
	return displays, nil
}

// displayFromScreen 把 Wails 的屏幕信息映射为 Display
// Wails v2 的 Screen 不携带显示器原点，各屏统一按 (0,0) 处理，
// 多显示器偏移在该通道上退化为主屏坐标系
func displayFromScreen(s runtime.Screen) Display {
	return Display{
		IsPrimary: s.IsPrimary,
		IsCurrent: s.IsCurrent,
		Bounds: Rect{
			Width:  s.Size.Width,
			Height: s.Size.Height,
		},
	}
}

func (b *WailsBackend) WindowSetPosition(ctx context.Context, x, y int) error {
	return safeCall("set position", func() {
		runtime.WindowSetPosition(ctx, x, y)
	})
}

func (b *WailsBackend) WindowGetPosition(ctx context.Context) (int, int, error) {
	var x, y int
	err := safeCall("get position", func() {
		x, y = runtime.WindowGetPosition(ctx)
	})
	return x, y, err
}

func (b *WailsBackend) ShowMainWindow(ctx context.Context) error {
	return safeCall("show window", func() {
		runtime.WindowShow(ctx)
		runtime.WindowUnminimise(ctx)
		runtime.WindowSetAlwaysOnTop(ctx, true)
	})
}

func (b *WailsBackend) EventsEmit(ctx context.Context, name string, data ...interface{}) error {
	return safeCall(fmt.Sprintf("emit %s", name), func() {
		runtime.EventsEmit(ctx, name, data...)
	})
}

func (b *WailsBackend) Quit(ctx context.Context) {
	// 退出路径上 panic 没有可用的恢复策略，忽略
	_ = safeCall("quit", func() {
		runtime.Quit(ctx)
	})
}
