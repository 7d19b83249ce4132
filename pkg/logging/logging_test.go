package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)
			xdg.Reload()
			t.Cleanup(xdg.Reload)

			SetupLogger(tt.verbosity)

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("SetupLogger(%d) set level to %v, want %v",
					tt.verbosity, zerolog.GlobalLevel(), tt.wantLevel)
			}

			logPath := filepath.Join(tempDir, "shortstage", "shortstage.log")
			if _, err := os.Stat(logPath); os.IsNotExist(err) {
				t.Errorf("Log file was not created at %s", logPath)
			}
		})
	}
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := GetLogger("staging.executor")
	logger.Debug().Msg("hello")

	output := buf.String()
	if !bytes.Contains([]byte(output), []byte("staging.executor")) {
		t.Errorf("expected component name in output, got %q", output)
	}
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	LogCommand("stage", []string{"--dry-run"})

	output := buf.String()
	for _, want := range []string{"stage", "--dry-run", "Executing command"} {
		if !bytes.Contains([]byte(output), []byte(want)) {
			t.Errorf("expected %q in output, got %q", want, output)
		}
	}
}
