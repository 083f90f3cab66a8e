package window

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsBackend struct {
	createCalls int
	focusCalls  int
	createErr   error
	lastOpts    SettingsOptions
}

func (f *fakeSettingsBackend) Create(_ context.Context, opts SettingsOptions) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.createCalls++
	f.lastOpts = opts
	return nil
}

func (f *fakeSettingsBackend) Focus(_ context.Context) error {
	f.focusCalls++
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpen_CreatesOnce(t *testing.T) {
	backend := &fakeSettingsBackend{}
	opener := NewSettingsOpener(backend, testLogger())
	ctx := context.Background()

	// 连续两次打开：只创建一次，第二次聚焦已有窗口
	require.NoError(t, opener.Open(ctx))
	require.NoError(t, opener.Open(ctx))

	assert.Equal(t, 1, backend.createCalls)
	assert.Equal(t, 1, backend.focusCalls)
}

func TestOpen_WindowOptions(t *testing.T) {
	backend := &fakeSettingsBackend{}
	opener := NewSettingsOpener(backend, testLogger())

	require.NoError(t, opener.Open(context.Background()))

	opts := backend.lastOpts
	assert.Equal(t, 500, opts.Width)
	assert.Equal(t, 620, opts.Height)
	assert.False(t, opts.Resizable)
	assert.True(t, opts.Centered)
	assert.True(t, opts.AlwaysOnTop)
	assert.Equal(t, "Customize Presets", opts.Title)
}

func TestOpen_CreateFailureStaysAbsent(t *testing.T) {
	backend := &fakeSettingsBackend{createErr: errors.New("boom")}
	opener := NewSettingsOpener(backend, testLogger())
	ctx := context.Background()

	require.Error(t, opener.Open(ctx))
	assert.Zero(t, backend.focusCalls)

	// 创建失败后仍处于 Absent，下次打开重新尝试创建
	backend.createErr = nil
	require.NoError(t, opener.Open(ctx))
	assert.Equal(t, 1, backend.createCalls)
	assert.Zero(t, backend.focusCalls)
}
