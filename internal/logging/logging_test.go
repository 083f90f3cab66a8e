package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"10MB", 10 * 1024 * 1024},
		{"512KB", 512 * 1024},
		{"1GB", 1024 * 1024 * 1024},
		{"100B", 100},
		{"2048", 2048},
		{" 5mb ", 5 * 1024 * 1024},
	}

	for _, tt := range tests {
		got, err := ParseSize(tt.in)
		if err != nil {
			t.Fatalf("ParseSize(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseSize(%q) mismatch: got %d, want %d", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"", "abc", "-1MB", "0"} {
		if _, err := ParseSize(in); err == nil {
			t.Fatalf("ParseSize(%q) expected error, got nil", in)
		}
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("debug") != slog.LevelDebug {
		t.Fatal("debug level mismatch")
	}
	if ParseLevel("error") != slog.LevelError {
		t.Fatal("error level mismatch")
	}
	// 未知级别回落到 info
	if ParseLevel("loud") != slog.LevelInfo {
		t.Fatal("unknown level must fall back to info")
	}
}

func TestBroadcastHandler_Recent(t *testing.T) {
	h := NewBroadcastHandler(NewSimpleHandler(slog.LevelDebug, nil), 5)
	logger := slog.New(h)

	for i := 0; i < 8; i++ {
		logger.Info(fmt.Sprintf("message %d", i))
	}

	// 只保留最近 5 条
	entries := h.Recent(0)
	if len(entries) != 5 {
		t.Fatalf("entry count mismatch: got %d, want 5", len(entries))
	}
	if entries[0].Message != "message 3" || entries[4].Message != "message 7" {
		t.Fatalf("unexpected entries: first=%q last=%q", entries[0].Message, entries[4].Message)
	}

	// limit 裁剪为最新的 N 条
	last2 := h.Recent(2)
	if len(last2) != 2 || last2[1].Message != "message 7" {
		t.Fatalf("limit mismatch: %+v", last2)
	}

	for _, e := range entries {
		if e.ID == "" {
			t.Fatal("entry ID must not be empty")
		}
		if e.Level != "INFO" {
			t.Fatalf("level mismatch: got %q", e.Level)
		}
	}
}

func TestBroadcastHandler_AttrsInMessage(t *testing.T) {
	h := NewBroadcastHandler(NewSimpleHandler(slog.LevelDebug, nil), 10)
	logger := slog.New(h)

	logger.Warn("⚠️ 通知前端失败", "event", "toggle-mode")

	entries := h.Recent(1)
	if len(entries) != 1 {
		t.Fatalf("entry count mismatch: got %d", len(entries))
	}
	if entries[0].Level != "WARN" {
		t.Fatalf("level mismatch: got %q", entries[0].Level)
	}
	if !strings.Contains(entries[0].Message, "event=toggle-mode") {
		t.Fatalf("attrs missing from message: %q", entries[0].Message)
	}
}

func TestSimpleHandler_LevelFilter(t *testing.T) {
	h := NewSimpleHandler(slog.LevelWarn, nil)

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("info must be filtered at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("error must pass at warn level")
	}
}

func TestFileRotator_Rotate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")

	r, err := NewFileRotator(path, 64, 2)
	if err != nil {
		t.Fatalf("NewFileRotator error: %v", err)
	}
	defer r.Close()

	line := []byte(strings.Repeat("x", 40) + "\n")
	for i := 0; i < 4; i++ {
		if _, err := r.Write(line); err != nil {
			t.Fatalf("Write error: %v", err)
		}
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("current log file missing: %v", err)
	}
	if _, err := os.Stat(path + ".1"); err != nil {
		t.Fatalf("rotated log file missing: %v", err)
	}
}

func TestFileRotator_KeepsWritingWhenRotationFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")

	// 用非空目录占住备份位，使轮转时的重命名必然失败
	if err := os.MkdirAll(filepath.Join(path+".1", "blocker"), 0755); err != nil {
		t.Fatalf("mkdir error: %v", err)
	}

	r, err := NewFileRotator(path, 32, 1)
	if err != nil {
		t.Fatalf("NewFileRotator error: %v", err)
	}
	defer r.Close()

	line := []byte(strings.Repeat("x", 40) + "\n")
	for i := 0; i < 3; i++ {
		if _, err := r.Write(line); err != nil {
			t.Fatalf("Write %d error after failed rotation: %v", i, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if len(data) != 3*len(line) {
		t.Fatalf("log content lost: got %d bytes, want %d", len(data), 3*len(line))
	}
}

func TestEventEmitter_StartStop(t *testing.T) {
	e := NewEventEmitter()

	if e.IsEnabled() {
		t.Fatal("emitter must start disabled")
	}

	// 未启动时投递是安全的 no-op
	e.Emit(LogEntry{ID: "x", Time: time.Now(), Level: "INFO", Message: "dropped"})

	e.Start(context.Background())
	if !e.IsEnabled() {
		t.Fatal("emitter must be enabled after Start")
	}

	e.Stop()
	if e.IsEnabled() {
		t.Fatal("emitter must be disabled after Stop")
	}

	// 重复 Stop 是安全的
	e.Stop()
}
