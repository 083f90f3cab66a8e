//go:build !stub

package tray

import (
	"context"
	"sync"

	"fyne.io/systray"

	"github.com/roywong35/timebar/internal/menu"
)

type systrayController struct {
	opts   Options
	ctx    context.Context
	quitCh chan struct{}
	once   sync.Once

	mu      sync.Mutex
	running bool
	// retired 被关闭时，上一代菜单的点击监听全部退出
	retired chan struct{}
}

func start(ctx context.Context, opts Options) (Controller, error) {
	ctrl := &systrayController{
		opts:    opts,
		ctx:     ctx,
		quitCh:  make(chan struct{}),
		retired: make(chan struct{}),
	}

	// systray.Run 会阻塞，在单独的 goroutine 中运行
	go systray.Run(ctrl.onReady, ctrl.onExit)

	return ctrl, nil
}

func (c *systrayController) onReady() {
	if len(c.opts.Icon) > 0 {
		systray.SetIcon(c.opts.Icon)
	}

	if c.opts.Tooltip != "" {
		systray.SetTooltip(c.opts.Tooltip)
	} else {
		systray.SetTooltip("TimeBar")
	}

	c.mu.Lock()
	c.running = true
	c.installLocked(c.opts.Menu)
	c.mu.Unlock()
}

func (c *systrayController) onExit() {
	c.mu.Lock()
	c.running = false
	c.mu.Unlock()
}

// Install 整体替换托盘菜单
// 托盘未就绪（或已退出）时返回 ErrTrayNotFound，由调用方处理
func (c *systrayController) Install(items []menu.Item) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return ErrTrayNotFound
	}

	systray.ResetMenu()
	c.installLocked(items)
	return nil
}

// installLocked 添加菜单条目并为每个叶子启动点击监听；调用方持锁
func (c *systrayController) installLocked(items []menu.Item) {
	// 上一代菜单的监听随 ResetMenu 作废
	close(c.retired)
	c.retired = make(chan struct{})
	retired := c.retired

	for _, item := range items {
		switch {
		case item.Separator:
			systray.AddSeparator()
		case len(item.Children) > 0:
			mi := systray.AddMenuItem(item.Label, item.Label)
			for _, child := range item.Children {
				if child.Separator {
					mi.AddSeparator()
					continue
				}
				sub := mi.AddSubMenuItem(child.Label, child.Label)
				go c.pump(child.ID, sub.ClickedCh, retired)
			}
		default:
			mi := systray.AddMenuItem(item.Label, item.Label)
			go c.pump(item.ID, mi.ClickedCh, retired)
		}
	}
}

// pump 把一个菜单条目的点击转发给 OnEvent，直到该代菜单作废或托盘停止
func (c *systrayController) pump(id string, clicks <-chan struct{}, retired <-chan struct{}) {
	for {
		select {
		case <-c.quitCh:
			return
		case <-retired:
			return
		case _, ok := <-clicks:
			if !ok {
				return
			}
			if c.opts.OnEvent != nil {
				c.opts.OnEvent(id)
			}
		}
	}
}

func (c *systrayController) Stop() {
	c.once.Do(func() {
		c.mu.Lock()
		if c.running {
			systray.Quit()
			c.running = false
		}
		c.mu.Unlock()
		close(c.quitCh)
	})
}
