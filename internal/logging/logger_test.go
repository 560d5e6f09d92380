package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInitialize_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	if err := Initialize(Options{}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be silent when no level is configured")
	}
}

func TestInitialize_WritesToFile(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	path := filepath.Join(t.TempDir(), "logs", "tvremote.log")

	if err := Initialize(Options{Level: "debug", File: path}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer func() { logger = nil }()

	Named("test").Info("device found")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "device found") {
		t.Errorf("log file = %q, want it to contain the message", string(data))
	}
}

func TestInitialize_EnvLevel(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")
	path := filepath.Join(t.TempDir(), "env.log")

	if err := Initialize(Options{File: path}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer func() { logger = nil }()

	core := GetLogger().Core()
	if core.Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !core.Enabled(zapcore.WarnLevel) {
		t.Error("warn should be enabled at warn level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.name); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}
