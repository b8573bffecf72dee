package errors

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: 0},
		{name: "validation", err: ValidationError("unknown part").Build(), expected: 2},
		{name: "config", err: ConfigError("bad yaml").Build(), expected: 7},
		{name: "process", err: ProcessError("pytest failed").Build(), expected: 8},
		{name: "filesystem", err: FileSystemError("write failed").Build(), expected: 11},
		{name: "version", err: VersionError("no version line").Build(), expected: 11},
		{name: "internal", err: InternalError("panic").Build(), expected: 10},
		{name: "unclassified", err: errors.New("boom"), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adapter.ExitCodeFor(tt.err)
			if got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	cause := errors.New("exit status 1")
	err := WrapError(cause, CategoryProcess, "sphinx-apidoc failed").Build()

	quiet := NewCLIErrorAdapter(false, nil)
	if got := quiet.FormatError(err); got != "Error: sphinx-apidoc failed: exit status 1" {
		t.Errorf("unexpected quiet format: %q", got)
	}

	verbose := NewCLIErrorAdapter(true, nil)
	if got := verbose.FormatError(err); !strings.Contains(got, "[process:error]") {
		t.Errorf("verbose format should include classification, got %q", got)
	}
}

func TestCLIErrorAdapter_Report(t *testing.T) {
	var logs, out bytes.Buffer
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil)))

	code := adapter.Report(&out, ConfigError("steps must not be empty").WithContext("file", "ppt.yaml").Build())

	if code != 7 {
		t.Errorf("expected exit code 7, got %d", code)
	}
	if !strings.Contains(out.String(), "steps must not be empty") {
		t.Errorf("expected message on output, got %q", out.String())
	}
	if !strings.Contains(logs.String(), "file=ppt.yaml") {
		t.Errorf("expected context in logs, got %q", logs.String())
	}
}
