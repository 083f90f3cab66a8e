// main.go - TimeBar Wails 应用入口
// 托盘计时器的原生后端：窗口定位、托盘菜单、前端事件转发

package main

import (
	"embed"
	"flag"
	"fmt"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
)

// 版本信息
var (
	Version   = "1.2.0"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// 命令行参数
var (
	showVersion = flag.Bool("version", false, "显示版本信息")
)

// 嵌入前端资源
//
//go:embed all:frontend/dist
var assets embed.FS

// 嵌入应用图标
//
//go:embed build/appicon.png
var icon []byte

// 嵌入默认配置文件（首次运行时写入用户目录）
//
//go:embed config/config.yaml
var defaultConfigContent []byte

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("TimeBar\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Commit: %s\n", Commit)
		fmt.Printf("Built: %s\n", BuildTime)
		os.Exit(0)
	}

	app := NewApp()

	// 运行 Wails 应用
	// 主窗口是贴在屏幕底部的 400×48 条状计时器，无边框、置顶、不可缩放
	err := wails.Run(&options.App{
		Title:  "TimeBar",
		Width:  400,
		Height: 48,

		Frameless:     true,
		AlwaysOnTop:   true,
		DisableResize: true,

		// 资源服务器
		AssetServer: &assetserver.Options{
			Assets: assets,
		},

		// 背景透明（主题由前端渲染）
		BackgroundColour: &options.RGBA{R: 0, G: 0, B: 0, A: 0},

		// 生命周期回调
		OnStartup:     app.startup,
		OnDomReady:    app.domReady,
		OnBeforeClose: app.beforeClose,
		OnShutdown:    app.shutdown,

		// 绑定到前端的方法
		Bind: []interface{}{
			app,
		},

		// macOS 配置
		Mac: &mac.Options{
			TitleBar: &mac.TitleBar{
				TitlebarAppearsTransparent: true,
				HideTitle:                  true,
				FullSizeContent:            true,
			},
			About: &mac.AboutInfo{
				Title:   "TimeBar",
				Message: fmt.Sprintf("TimeBar 托盘计时器\n版本 %s", Version),
				Icon:    icon,
			},
			WebviewIsTransparent: true,
			WindowIsTranslucent:  true,
		},

		// Windows 配置
		Windows: &windows.Options{
			WebviewIsTransparent: true,
			WindowIsTranslucent:  true,
			DisableWindowIcon:    true,
		},
	})

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
