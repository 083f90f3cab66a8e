// Package menu 托盘菜单的声明式构建
// 构建是纯函数：相同输入产生相同的条目顺序与标识符，安装由托盘后端负责
package menu

import (
	"fmt"

	"github.com/roywong35/timebar/config"
)

// 固定菜单条目的标识符
const (
	IDShow             = "show"
	IDToggleMode       = "toggle_mode"
	IDCustomTime       = "settings"
	IDCustomizePresets = "customize_presets"
	IDQuit             = "quit"

	// 旧版静态预设标识符（启动时的静态菜单使用，与动态 preset_N 并存）
	IDLegacyPreset3  = "set_3min"
	IDLegacyPreset5  = "set_5min"
	IDLegacyPreset25 = "set_25min"

	// PresetIDPrefix 动态预设标识符前缀，preset_0、preset_1 …
	PresetIDPrefix = "preset_"

	// ThemeIDPrefix 主题标识符前缀，theme_blue 等
	ThemeIDPrefix = "theme_"
)

// Item 一个菜单条目
// Separator 为 true 时其余字段无意义；Children 非空时该条目是子菜单
type Item struct {
	ID        string
	Label     string
	Separator bool
	Children  []Item
}

// Theme 一个可选主题
type Theme struct {
	Name  string // 标识符后缀，也是 change-theme 通知的载荷
	Label string // 菜单显示名
}

// Themes 固定的九个主题，顺序即菜单顺序
func Themes() []Theme {
	return []Theme{
		{Name: "blue", Label: "Ocean Blue"},
		{Name: "green", Label: "Forest Green"},
		{Name: "purple", Label: "Sunset Purple"},
		{Name: "orange", Label: "Fire Orange"},
		{Name: "red", Label: "Cherry Red"},
		{Name: "dark", Label: "Dark Matter"},
		{Name: "light", Label: "Sky Light"},
		{Name: "dynamic", Label: "Dynamic (10 Colors)"},
		{Name: "transparent", Label: "Crystal Clear"},
	}
}

// IsTheme 判断 name 是否为固定主题之一
func IsTheme(name string) bool {
	for _, t := range Themes() {
		if t.Name == name {
			return true
		}
	}
	return false
}

// PresetID 返回第 i 个（0 起）预设的菜单标识符
func PresetID(i int) string {
	return fmt.Sprintf("%s%d", PresetIDPrefix, i)
}

// PresetLabel 返回第 i 个（0 起）预设的菜单标签，形如 "1 - 3 min"
func PresetLabel(i int, label string) string {
	return fmt.Sprintf("%d - %s", i+1, label)
}

// BuildTrayMenu 用给定预设构建完整的替换菜单
// 预设条目按输入顺序排列，空列表时只有静态骨架
func BuildTrayMenu(presets []config.PresetTime) []Item {
	items := make([]Item, 0, len(presets)+12)

	items = append(items,
		Item{ID: IDShow, Label: "Show Timer"},
		Item{Separator: true},
	)

	for i, preset := range presets {
		items = append(items, Item{
			ID:    PresetID(i),
			Label: PresetLabel(i, preset.Label),
		})
	}

	items = append(items,
		Item{Separator: true},
	)

	return append(items, staticTail()...)
}

// BuildStaticMenu 启动时安装的静态菜单
// 三个旧版预设条目的标签固定，真正触发的预设由前端的设置决定
func BuildStaticMenu() []Item {
	items := []Item{
		{ID: IDShow, Label: "Show Timer"},
		{Separator: true},
		{ID: IDLegacyPreset3, Label: "Preset 1 (3 min)"},
		{ID: IDLegacyPreset5, Label: "Preset 2 (5 min)"},
		{ID: IDLegacyPreset25, Label: "Preset 3 (25 min)"},
		{Separator: true},
	}
	return append(items, staticTail()...)
}

// staticTail 预设区之后的公共菜单骨架
func staticTail() []Item {
	return []Item{
		{ID: IDToggleMode, Label: "Switch Mode (Countdown ↔ Stopwatch)"},
		{ID: IDCustomTime, Label: "Custom Time (MM:SS or HH:MM:SS)"},
		{ID: IDCustomizePresets, Label: "Customize Presets..."},
		{Separator: true},
		themeSubmenu(),
		{Separator: true},
		{ID: IDQuit, Label: "Exit"},
	}
}

// themeSubmenu 主题子菜单，dynamic 之前有一条分隔线
func themeSubmenu() Item {
	themes := Themes()
	children := make([]Item, 0, len(themes)+1)
	for _, t := range themes {
		if t.Name == "dynamic" {
			children = append(children, Item{Separator: true})
		}
		children = append(children, Item{
			ID:    ThemeIDPrefix + t.Name,
			Label: t.Label,
		})
	}
	return Item{Label: "Themes", Children: children}
}
