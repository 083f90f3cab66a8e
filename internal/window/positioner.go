// Package window 主窗口定位与设置窗口管理
package window

import (
	"context"
	"errors"
	"fmt"

	"github.com/roywong35/timebar/internal/platform"
)

// 主窗口的假定尺寸（与前端条状计时器一致）
const (
	DefaultWindowWidth  = 400
	DefaultWindowHeight = 48
)

// ErrNoMonitor 无法解析出主显示器
var ErrNoMonitor = errors.New("no monitor found")

// Position 屏幕坐标（像素，平台原点约定）
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Positioner 计算并读写主窗口位置
type Positioner struct {
	backend platform.Backend
	width   int
	height  int
}

// NewPositioner 创建定位器；width/height <= 0 时使用默认的 400×48
func NewPositioner(backend platform.Backend, width, height int) *Positioner {
	if width <= 0 {
		width = DefaultWindowWidth
	}
	if height <= 0 {
		height = DefaultWindowHeight
	}
	return &Positioner{backend: backend, width: width, height: height}
}

// DefaultPosition 计算主窗口默认位置：主显示器上水平居中、贴屏幕底边
func (p *Positioner) DefaultPosition(ctx context.Context) (Position, error) {
	displays, err := p.backend.Displays(ctx)
	if err != nil {
		return Position{}, fmt.Errorf("failed to get monitor: %w", err)
	}

	primary, ok := primaryDisplay(displays)
	if !ok {
		return Position{}, ErrNoMonitor
	}

	b := primary.Bounds
	return Position{
		X: b.X + (b.Width-p.width)/2,
		Y: b.Y + b.Height - p.height,
	}, nil
}

// Move 把主窗口移动到绝对屏幕坐标
func (p *Positioner) Move(ctx context.Context, x, y int) error {
	if err := p.backend.WindowSetPosition(ctx, x, y); err != nil {
		return fmt.Errorf("failed to set position: %w", err)
	}
	return nil
}

// Position 读取主窗口当前外框位置
func (p *Positioner) Position(ctx context.Context) (Position, error) {
	x, y, err := p.backend.WindowGetPosition(ctx)
	if err != nil {
		return Position{}, fmt.Errorf("failed to get position: %w", err)
	}
	return Position{X: x, Y: y}, nil
}

// primaryDisplay 返回主显示器
// 部分平台（某些 Linux 窗口管理器）不标记主显示器，此时有意放宽为当前显示器，
// 让窗口仍有合理的落点；两者都不存在才报 ErrNoMonitor
func primaryDisplay(displays []platform.Display) (platform.Display, bool) {
	for _, d := range displays {
		if d.IsPrimary {
			return d, true
		}
	}
	for _, d := range displays {
		if d.IsCurrent {
			return d, true
		}
	}
	return platform.Display{}, false
}
