package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileRotator 按大小轮转的日志文件写入器
// 当前文件超过 maxSize 时重命名为 path.1（已有的依次后移），最多保留 maxFiles 份
type FileRotator struct {
	mu       sync.Mutex
	path     string
	maxSize  int64
	maxFiles int
	file     *os.File
	size     int64
}

// NewFileRotator 创建日志轮转器并打开（或追加）目标文件
func NewFileRotator(path string, maxSize int64, maxFiles int) (*FileRotator, error) {
	if maxFiles < 1 {
		maxFiles = 1
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat log file: %w", err)
	}

	return &FileRotator{
		path:     path,
		maxSize:  maxSize,
		maxFiles: maxFiles,
		file:     file,
		size:     info.Size(),
	}, nil
}

func (r *FileRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return 0, os.ErrClosed
	}

	if r.maxSize > 0 && r.size+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			// 轮转失败时继续写当前文件，日志不应因此丢失
			fmt.Fprintf(os.Stderr, "log rotation failed: %v\n", err)
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

// rotate 关闭当前文件并把历史文件依次后移（path.2 → path.3，path → path.1）
func (r *FileRotator) rotate() error {
	if err := r.file.Close(); err != nil {
		return err
	}
	r.file = nil

	os.Remove(fmt.Sprintf("%s.%d", r.path, r.maxFiles))
	for i := r.maxFiles - 1; i >= 1; i-- {
		src := fmt.Sprintf("%s.%d", r.path, i)
		if _, err := os.Stat(src); err == nil {
			os.Rename(src, fmt.Sprintf("%s.%d", r.path, i+1))
		}
	}

	renameErr := os.Rename(r.path, r.path+".1")
	if renameErr != nil && os.IsNotExist(renameErr) {
		renameErr = nil
	}

	// 重命名失败时继续追加原文件，不截断，保证后续写入不中断
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if renameErr != nil {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	file, err := os.OpenFile(r.path, flags, 0644)
	if err != nil {
		return err
	}
	r.file = file
	r.size = 0
	if renameErr != nil {
		if info, statErr := file.Stat(); statErr == nil {
			r.size = info.Size()
		}
		return renameErr
	}
	return nil
}

func (r *FileRotator) Sync() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.file == nil {
		return nil
	}
	return r.file.Sync()
}

func (r *FileRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
