package logging

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetGlobal() {
	current.Store(nil)
}

func findLogFile(t *testing.T, dir string) string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read log dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), filePrefix) && strings.HasSuffix(e.Name(), fileSuffix) {
			return filepath.Join(dir, e.Name())
		}
	}
	t.Fatal("No log file found")
	return ""
}

func TestGlobal(t *testing.T) {
	resetGlobal()

	logger := Global()
	if logger != noop {
		t.Fatal("Global() should discard until a logger is installed")
	}
	logger.Info("test message")
}

func TestSetGlobal(t *testing.T) {
	resetGlobal()

	logger, err := New(&Config{Level: LevelInfo, LogDir: t.TempDir()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer logger.Close()

	SetGlobal(logger)
	defer SetGlobal(nil)

	if got := Global(); got != logger {
		t.Error("Global() should return the logger set by SetGlobal()")
	}
}

func TestInitAndCloseGlobal(t *testing.T) {
	resetGlobal()
	dir := t.TempDir()

	if err := InitGlobal(&Config{Level: LevelDebug, LogDir: dir}); err != nil {
		t.Fatalf("InitGlobal() error = %v", err)
	}

	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message")
	With("component", "loader").Info("with message")
	Ctx(WithSource(context.Background(), "stock.json")).Info("ctx message")

	content, err := os.ReadFile(findLogFile(t, dir))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	for _, want := range []string{"debug message", "info message", "warn message", "error message", "component=loader", "source=stock.json"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("log should contain %q", want)
		}
	}

	if err := CloseGlobal(); err != nil {
		t.Fatalf("CloseGlobal() error = %v", err)
	}

	if Global() != noop {
		t.Error("Global() should discard after CloseGlobal()")
	}
	Info("after close")
	resetGlobal()
}

func TestCloseGlobalWhenNil(t *testing.T) {
	resetGlobal()
	if err := CloseGlobal(); err != nil {
		t.Errorf("CloseGlobal() with nil logger should not error: %v", err)
	}
}

func TestInitGlobalReplacesPrevious(t *testing.T) {
	resetGlobal()
	defer resetGlobal()

	if err := InitGlobal(&Config{Level: LevelInfo, LogDir: t.TempDir()}); err != nil {
		t.Fatal(err)
	}
	first := Global()
	if err := InitGlobal(&Config{Level: LevelInfo, LogDir: t.TempDir()}); err != nil {
		t.Fatal(err)
	}
	if Global() == first {
		t.Error("InitGlobal() should install the new logger")
	}
	_ = CloseGlobal()
}
