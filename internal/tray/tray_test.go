//go:build !stub

package tray

import (
	"errors"
	"testing"

	"github.com/roywong35/timebar/internal/menu"
)

func TestInstall_BeforeReady(t *testing.T) {
	// 托盘未就绪时安装菜单必须返回 ErrTrayNotFound，且不触碰平台托盘
	c := &systrayController{
		quitCh:  make(chan struct{}),
		retired: make(chan struct{}),
	}

	err := c.Install(menu.BuildStaticMenu())
	if !errors.Is(err, ErrTrayNotFound) {
		t.Fatalf("error mismatch: got %v, want ErrTrayNotFound", err)
	}
}
