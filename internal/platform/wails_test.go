package platform

import (
	"testing"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

func TestDisplayFromScreen(t *testing.T) {
	var s runtime.Screen
	s.IsPrimary = true
	s.Size.Width = 1920
	s.Size.Height = 1080

	d := displayFromScreen(s)

	if !d.IsPrimary || d.IsCurrent {
		t.Fatalf("flag mismatch: %+v", d)
	}
	// 屏幕原点不可得，统一落在 (0,0)
	if d.Bounds != (Rect{X: 0, Y: 0, Width: 1920, Height: 1080}) {
		t.Fatalf("bounds mismatch: %+v", d.Bounds)
	}
}
