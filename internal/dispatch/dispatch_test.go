package dispatch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roywong35/timebar/internal/platform"
)

type emitted struct {
	name string
	data []interface{}
}

// fakeBackend 测试用窗口系统后端
type fakeBackend struct {
	displays  []platform.Display
	emits     []emitted
	showCalls int
	quitCalls int
	emitErr   error
}

func (f *fakeBackend) Displays(_ context.Context) ([]platform.Display, error) {
	return f.displays, nil
}

func (f *fakeBackend) WindowSetPosition(_ context.Context, x, y int) error { return nil }

func (f *fakeBackend) WindowGetPosition(_ context.Context) (int, int, error) { return 0, 0, nil }

func (f *fakeBackend) ShowMainWindow(_ context.Context) error {
	f.showCalls++
	return nil
}

func (f *fakeBackend) EventsEmit(_ context.Context, name string, data ...interface{}) error {
	if f.emitErr != nil {
		return f.emitErr
	}
	f.emits = append(f.emits, emitted{name: name, data: data})
	return nil
}

func (f *fakeBackend) Quit(_ context.Context) {
	f.quitCalls++
}

type fakeOpener struct {
	calls int
	err   error
}

func (f *fakeOpener) Open(_ context.Context) error {
	f.calls++
	return f.err
}

func newTestDispatcher(backend *fakeBackend, opener *fakeOpener) *Dispatcher {
	d := NewDispatcher(backend, opener, slog.New(slog.NewTextHandler(io.Discard, nil)))
	// 测试同步执行异步任务
	d.spawn = func(task func()) { task() }
	return d
}

func TestDecode(t *testing.T) {
	tests := []struct {
		id     string
		want   Action
		wantOK bool
	}{
		{"show", ShowMain{}, true},
		{"toggle_mode", ToggleMode{}, true},
		{"settings", CustomTime{}, true},
		{"customize_presets", CustomizePresets{}, true},
		{"quit", Quit{}, true},
		{"set_3min", SelectPreset{Index: 0}, true},
		{"set_5min", SelectPreset{Index: 1}, true},
		{"set_25min", SelectPreset{Index: 2}, true},
		{"preset_0", SelectPreset{Index: 0}, true},
		{"preset_7", SelectPreset{Index: 7}, true},
		{"theme_blue", ChangeTheme{Name: "blue"}, true},
		{"theme_transparent", ChangeTheme{Name: "transparent"}, true},
		{"preset_abc", nil, false},
		{"preset_-1", nil, false},
		{"preset_", nil, false},
		{"theme_pink", nil, false},
		{"foo", nil, false},
		{"", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, ok := Decode(tt.id)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandle_PresetEmitsIndex(t *testing.T) {
	backend := &fakeBackend{}
	d := newTestDispatcher(backend, &fakeOpener{})

	d.Handle(context.Background(), "preset_2")

	require.Len(t, backend.emits, 1)
	assert.Equal(t, NotifyPresetSelected, backend.emits[0].name)
	assert.Equal(t, []interface{}{2}, backend.emits[0].data)
}

func TestHandle_MalformedPresetIsNoop(t *testing.T) {
	backend := &fakeBackend{}
	d := newTestDispatcher(backend, &fakeOpener{})

	d.Handle(context.Background(), "preset_abc")

	assert.Empty(t, backend.emits)
	assert.Zero(t, backend.showCalls)
	assert.Zero(t, backend.quitCalls)
}

func TestHandle_UnknownIDIsIgnored(t *testing.T) {
	backend := &fakeBackend{}
	d := newTestDispatcher(backend, &fakeOpener{})

	d.Handle(context.Background(), "foo")

	assert.Empty(t, backend.emits)
}

func TestHandle_LegacyPresets(t *testing.T) {
	backend := &fakeBackend{}
	d := newTestDispatcher(backend, &fakeOpener{})

	d.Handle(context.Background(), "set_3min")
	d.Handle(context.Background(), "set_5min")
	d.Handle(context.Background(), "set_25min")

	require.Len(t, backend.emits, 3)
	for i, want := range []int{0, 1, 2} {
		assert.Equal(t, NotifyPresetSelected, backend.emits[i].name)
		assert.Equal(t, []interface{}{want}, backend.emits[i].data)
	}
}

func TestHandle_Show(t *testing.T) {
	backend := &fakeBackend{}
	d := newTestDispatcher(backend, &fakeOpener{})

	d.Handle(context.Background(), "show")

	assert.Equal(t, 1, backend.showCalls)
	assert.Empty(t, backend.emits)
}

func TestHandle_ToggleModeAndCustomTime(t *testing.T) {
	backend := &fakeBackend{}
	d := newTestDispatcher(backend, &fakeOpener{})

	d.Handle(context.Background(), "toggle_mode")
	d.Handle(context.Background(), "settings")

	require.Len(t, backend.emits, 2)
	assert.Equal(t, NotifyToggleMode, backend.emits[0].name)
	assert.Empty(t, backend.emits[0].data)
	assert.Equal(t, NotifyOpenSettings, backend.emits[1].name)
}

func TestHandle_Theme(t *testing.T) {
	backend := &fakeBackend{}
	d := newTestDispatcher(backend, &fakeOpener{})

	d.Handle(context.Background(), "theme_dark")

	require.Len(t, backend.emits, 1)
	assert.Equal(t, NotifyChangeTheme, backend.emits[0].name)
	assert.Equal(t, []interface{}{"dark"}, backend.emits[0].data)
}

func TestHandle_CustomizePresetsOpensSettings(t *testing.T) {
	backend := &fakeBackend{}
	opener := &fakeOpener{}
	d := newTestDispatcher(backend, opener)

	d.Handle(context.Background(), "customize_presets")

	assert.Equal(t, 1, opener.calls)
	assert.Empty(t, backend.emits)
}

func TestHandle_OpenerErrorIsSwallowed(t *testing.T) {
	backend := &fakeBackend{}
	opener := &fakeOpener{err: errors.New("window creation failed")}
	d := newTestDispatcher(backend, opener)

	// 打开失败只记录日志，不传播
	d.Handle(context.Background(), "customize_presets")

	assert.Equal(t, 1, opener.calls)
}

func TestHandle_Quit(t *testing.T) {
	backend := &fakeBackend{}
	d := newTestDispatcher(backend, &fakeOpener{})

	d.Handle(context.Background(), "quit")

	assert.Equal(t, 1, backend.quitCalls)
}

func TestHandle_EmitFailureIsSwallowed(t *testing.T) {
	backend := &fakeBackend{emitErr: errors.New("window destroyed")}
	d := newTestDispatcher(backend, &fakeOpener{})

	// 通知发送失败绝不 panic、不传播
	d.Handle(context.Background(), "preset_1")
	d.Handle(context.Background(), "toggle_mode")

	assert.Empty(t, backend.emits)
}
