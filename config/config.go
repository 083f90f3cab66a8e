package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config TimeBar 应用配置
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Logging LoggingConfig `yaml:"logging"`
	Presets []PresetTime  `yaml:"presets"`
}

// WindowConfig 主窗口配置
type WindowConfig struct {
	Width       int  `yaml:"width"`         // 主窗口宽度，默认: 400
	Height      int  `yaml:"height"`        // 主窗口高度，默认: 48
	AlwaysOnTop bool `yaml:"always_on_top"` // 是否置顶，默认: true
}

type LoggingConfig struct {
	Level       string `yaml:"level"`         // 日志级别: debug/info/warn/error
	FileEnabled bool   `yaml:"file_enabled"`  // 是否写入文件日志
	FilePath    string `yaml:"file_path"`     // 日志文件路径
	MaxFileSize string `yaml:"max_file_size"` // 单个日志文件上限 (如 "10MB")
	MaxFiles    int    `yaml:"max_files"`     // 轮转保留的文件数量
}

// PresetTime 托盘菜单中的一个时长预设
// 同时是前端 RebuildTrayMenu 命令的入参元素，因此也带 json 标签
type PresetTime struct {
	Seconds int    `yaml:"seconds" json:"seconds"`
	Label   string `yaml:"label" json:"label"`
}

// LoadConfig 从文件加载配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.setDefaults()

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// DefaultPresets 出厂预设（与托盘静态菜单的三个旧版条目对应）
func DefaultPresets() []PresetTime {
	return []PresetTime{
		{Seconds: 3 * 60, Label: "3 min"},
		{Seconds: 5 * 60, Label: "5 min"},
		{Seconds: 25 * 60, Label: "25 min"},
	}
}

// setDefaults sets default values for configuration
func (c *Config) setDefaults() {
	if c.Window.Width == 0 {
		c.Window.Width = 400
	}
	if c.Window.Height == 0 {
		c.Window.Height = 48
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.FileEnabled && c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/app.log"
	}
	if c.Logging.MaxFileSize == "" {
		c.Logging.MaxFileSize = "10MB"
	}
	if c.Logging.MaxFiles == 0 {
		c.Logging.MaxFiles = 3
	}
	if len(c.Presets) == 0 {
		c.Presets = DefaultPresets()
	}
}

// validate validates the configuration
func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}

	for i, preset := range c.Presets {
		if preset.Seconds <= 0 {
			return fmt.Errorf("preset %d: seconds must be positive, got %d", i, preset.Seconds)
		}
		if preset.Label == "" {
			return fmt.Errorf("preset %d: label must not be empty", i)
		}
	}

	return nil
}
