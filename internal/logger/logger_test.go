package logger

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// safeBuffer cho phép goroutine của AsyncHook ghi song song với test đọc
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestLogger(cfg *LogConfig, out *safeBuffer) (*logrus.Logger, *AsyncHook) {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetOutput(bytes.NewBuffer(nil))
	l.AddHook(NewFilterHook(cfg))
	hook := NewAsyncHookWithWriters([]io.Writer{out}, 10)
	l.AddHook(hook)
	return l, hook
}

func TestParseFilter(t *testing.T) {
	assert.Nil(t, parseFilter(""))
	assert.Nil(t, parseFilter(" * "))

	got := parseFilter("Project, auth ,,")
	assert.Equal(t, map[string]bool{"project": true, "auth": true}, got)
}

func TestAsyncHook_FlushOnClose(t *testing.T) {
	out := &safeBuffer{}
	l, hook := newTestLogger(&LogConfig{FilterModules: "*", FilterMethods: "*", FilterLogTypes: "*"}, out)

	l.WithField("module", "project").Info("đã lưu project")
	require.NoError(t, hook.Close())

	assert.Contains(t, out.String(), "đã lưu project")

	// Gọi Close lần hai không lỗi
	assert.NoError(t, hook.Close())
}

func TestFilterHook_DropsUnlistedModule(t *testing.T) {
	out := &safeBuffer{}
	cfg := &LogConfig{FilterModules: "auth", FilterMethods: "*", FilterLogTypes: "*"}
	l, hook := newTestLogger(cfg, out)

	l.WithField("module", "project").Info("bị lọc")
	l.WithField("module", "auth").Info("được ghi")
	l.Info("không có module")
	require.NoError(t, hook.Close())

	logged := out.String()
	assert.NotContains(t, logged, "bị lọc")
	assert.Contains(t, logged, "được ghi")
	assert.Contains(t, logged, "không có module")
}

func TestFilterHook_LogTypes(t *testing.T) {
	out := &safeBuffer{}
	cfg := &LogConfig{FilterModules: "*", FilterMethods: "GET", FilterLogTypes: "error,warning"}
	l, hook := newTestLogger(cfg, out)

	l.Info("info bị lọc")
	l.Warn("warn được ghi")
	l.WithField("method", "POST").Error("post bị lọc")
	l.WithField("method", "get").Error("get được ghi")
	require.NoError(t, hook.Close())

	logged := out.String()
	assert.NotContains(t, logged, "info bị lọc")
	assert.Contains(t, logged, "warn được ghi")
	assert.NotContains(t, logged, "post bị lọc")
	assert.Contains(t, logged, "get được ghi")
}

func TestDefaultConfig_EnvironmentDefaults(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "both", cfg.Output)
	assert.True(t, cfg.writesFile())
	assert.True(t, cfg.writesStdout())
}
