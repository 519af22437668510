package logging

import (
	"io"
	"os"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestSetup(t *testing.T) {
	t.Run("production", func(t *testing.T) {
		logger, err := Setup(false, "SrcFuse", "test")
		if err != nil {
			t.Fatalf("Setup() error = %v", err)
		}
		if logger == nil {
			t.Fatal("Setup() returned a nil logger")
		}
		if logger.Core().Enabled(zapcore.DebugLevel) {
			t.Error("production logger should not enable debug level")
		}
	})

	t.Run("debug", func(t *testing.T) {
		logger, err := Setup(true, "SrcFuse", "test")
		if err != nil {
			t.Fatalf("Setup() error = %v", err)
		}
		if !logger.Core().Enabled(zapcore.DebugLevel) {
			t.Error("debug logger should enable debug level")
		}
	})
}

func TestSetupWritesToStdout(t *testing.T) {
	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	// The sink captures os.Stdout when the logger is built, so the swap
	// has to surround Setup, not just the log call.
	os.Stdout = w
	t.Cleanup(func() { os.Stdout = origStdout })

	logger, err := Setup(false, "SrcFuse", "test")
	os.Stdout = origStdout
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	logger.Warn("supplemental file skipped")

	if err := w.Close(); err != nil {
		t.Fatalf("close pipe writer: %v", err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read pipe: %v", err)
	}

	entry := string(out)
	if !strings.Contains(entry, "supplemental file skipped") {
		t.Errorf("warning did not arrive on stdout: %q", entry)
	}
	if !strings.Contains(entry, `"level":"warn"`) {
		t.Errorf("expected a warn-level JSON entry on stdout: %q", entry)
	}
	if !strings.Contains(entry, `"appName":"SrcFuse"`) {
		t.Errorf("expected the appName field on stdout: %q", entry)
	}
}
