package util

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

// saveLoggerState saves the current logger state for restoration
func saveLoggerState() (io.Writer, logrus.Level, logrus.Formatter) {
	return Logger.Out, Logger.Level, Logger.Formatter
}

// restoreLoggerState restores the logger to its previous state
func restoreLoggerState(out io.Writer, level logrus.Level, formatter logrus.Formatter) {
	Logger.SetOutput(out)
	Logger.SetLevel(level)
	Logger.SetFormatter(formatter)
}

func TestSetLogLevel(t *testing.T) {
	out, level, formatter := saveLoggerState()
	defer restoreLoggerState(out, level, formatter)

	tests := []struct {
		level   string
		wantErr bool
	}{
		{"debug", false},
		{"info", false},
		{"warn", false},
		{"error", false},
		{"invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			err := SetLogLevel(tt.level)
			if (err != nil) != tt.wantErr {
				t.Errorf("SetLogLevel(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
			}
		})
	}
}

func TestSetLogOutput(t *testing.T) {
	out, level, formatter := saveLoggerState()
	defer restoreLoggerState(out, level, formatter)

	var buf bytes.Buffer
	SetLogOutput(&buf)
	Info("test message")

	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("log output %q does not contain message", buf.String())
	}
}

func TestEnableFileLogging(t *testing.T) {
	out, level, formatter := saveLoggerState()
	defer restoreLoggerState(out, level, formatter)

	path := filepath.Join(t.TempDir(), "run.log")
	closer, err := EnableFileLogging(path)
	if err != nil {
		t.Fatalf("EnableFileLogging error: %v", err)
	}
	Info("written to file")
	if err := closer(); err != nil {
		t.Fatalf("closer error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("log file %q does not contain message", string(data))
	}

	// Appends on a second run
	closer2, err := EnableFileLogging(path)
	if err != nil {
		t.Fatalf("EnableFileLogging (second) error: %v", err)
	}
	Info("second run")
	closer2()

	data, _ = os.ReadFile(path)
	if !strings.Contains(string(data), "written to file") || !strings.Contains(string(data), "second run") {
		t.Errorf("log file should contain both runs, got %q", string(data))
	}
}

func TestEnableFileLogging_BadPath(t *testing.T) {
	if _, err := EnableFileLogging(filepath.Join(t.TempDir(), "missing", "dir", "run.log")); err == nil {
		t.Error("expected error for unwritable log path")
	}
}

func TestSplitSemicolon(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a@example.com", []string{"a@example.com"}},
		{"a;b;c", []string{"a", "b", "c"}},
		{" a ; b ", []string{"a", "b"}},
		{"a;;b", []string{"a", "b"}},
	}

	for _, tt := range tests {
		got := SplitSemicolon(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("SplitSemicolon(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("SplitSemicolon(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}
