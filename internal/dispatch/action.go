// Package dispatch 托盘菜单事件分发
// 菜单激活的标识符在边界处解码为封闭的动作集合，再逐一执行
package dispatch

import (
	"strconv"
	"strings"

	"github.com/roywong35/timebar/internal/menu"
)

// Action 一次菜单激活对应的动作
type Action interface {
	isAction()
}

// ShowMain 显示并恢复主窗口
type ShowMain struct{}

// SelectPreset 选中一个预设（0 起的下标）
type SelectPreset struct {
	Index int
}

// ToggleMode 切换倒计时/秒表模式
type ToggleMode struct{}

// CustomTime 让前端打开自定义时间输入
type CustomTime struct{}

// ChangeTheme 切换主题
type ChangeTheme struct {
	Name string
}

// CustomizePresets 打开预设编辑窗口
type CustomizePresets struct{}

// Quit 退出应用
type Quit struct{}

func (ShowMain) isAction()         {}
func (SelectPreset) isAction()     {}
func (ToggleMode) isAction()       {}
func (CustomTime) isAction()       {}
func (ChangeTheme) isAction()      {}
func (CustomizePresets) isAction() {}
func (Quit) isAction()             {}

// Decode 把菜单标识符解码为动作
// 无法识别的标识符（包括 preset_ 后缀不是非负整数、未知主题名）返回 ok=false
func Decode(id string) (Action, bool) {
	switch id {
	case menu.IDShow:
		return ShowMain{}, true
	case menu.IDToggleMode:
		return ToggleMode{}, true
	case menu.IDCustomTime:
		return CustomTime{}, true
	case menu.IDCustomizePresets:
		return CustomizePresets{}, true
	case menu.IDQuit:
		return Quit{}, true

	// 旧版静态预设：硬编码下标，与动态 preset_0..2 语义一致
	case menu.IDLegacyPreset3:
		return SelectPreset{Index: 0}, true
	case menu.IDLegacyPreset5:
		return SelectPreset{Index: 1}, true
	case menu.IDLegacyPreset25:
		return SelectPreset{Index: 2}, true
	}

	if rest, ok := strings.CutPrefix(id, menu.PresetIDPrefix); ok {
		index, err := strconv.Atoi(rest)
		if err != nil || index < 0 {
			return nil, false
		}
		return SelectPreset{Index: index}, true
	}

	if name, ok := strings.CutPrefix(id, menu.ThemeIDPrefix); ok && menu.IsTheme(name) {
		return ChangeTheme{Name: name}, true
	}

	return nil, false
}
