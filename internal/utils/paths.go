package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDirName = "timebar"

// GetAppDataDir 返回应用数据目录（~/.config/timebar 或各平台等价路径）
func GetAppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir, _ = os.UserHomeDir()
	}
	return filepath.Join(dir, appDirName)
}

// GetLogDir 返回日志目录
func GetLogDir() string {
	return filepath.Join(GetAppDataDir(), "logs")
}

// GetConfigPath 返回配置文件路径
func GetConfigPath() string {
	return filepath.Join(GetAppDataDir(), "config.yaml")
}

// EnsureAppDirs 创建应用目录（幂等）
func EnsureAppDirs() error {
	for _, dir := range []string{GetAppDataDir(), GetLogDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
