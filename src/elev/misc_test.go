package elev

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestInitLogger(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	logPath := filepath.Join(t.TempDir(), "elevator.log")
	closer, err := InitLogger(&buf, "debug", logPath)
	if err != nil {
		t.Fatalf("InitLogger returned %v", err)
	}
	slog.Debug("Stopping at floor", "floor", 3)
	if err := closer.Close(); err != nil {
		t.Fatalf("closing log file: %v", err)
	}

	line := buf.String()
	if !regexp.MustCompile(`time=\d\d:\d\d:\d\d `).MatchString(line) {
		t.Errorf("time not compacted: %q", line)
	}
	if !strings.Contains(line, "source=misc_test.go:") {
		t.Errorf("source not shortened: %q", line)
	}
	if !strings.Contains(line, "floor=3") {
		t.Errorf("attribute missing: %q", line)
	}

	written, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if string(written) != line {
		t.Errorf("log file = %q, expected %q", written, line)
	}
}

func TestInitLoggerLevel(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	if _, err := InitLogger(&buf, "warn", ""); err != nil {
		t.Fatalf("InitLogger returned %v", err)
	}
	slog.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info logged at warn level: %q", buf.String())
	}
	if _, err := InitLogger(&buf, "chatty", ""); err == nil {
		t.Error("unknown level accepted")
	}
}
