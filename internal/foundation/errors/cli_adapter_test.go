package errors

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, 0},
		{"validation", ValidationError("bad flag").Build(), 2},
		{"config", ConfigError("bad config").Build(), 7},
		{"metadata", MetadataError("bad descriptor").Build(), 11},
		{"output", OutputError("write failed").Build(), 11},
		{"internal", InternalError("bug").Build(), 10},
		{"unclassified", errors.New("unknown"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.ExitCodeFor(tt.err); got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, slog.Default())
	verbose := NewCLIErrorAdapter(true, slog.Default())

	cfgErr := ConfigError("unknown dialect").WithContext("dialect", "jekyll").Build()
	if got := quiet.FormatError(cfgErr); got != "Configuration error: unknown dialect" {
		t.Errorf("unexpected quiet format %q", got)
	}
	if got := verbose.FormatError(cfgErr); !strings.Contains(got, "[config:fatal]") {
		t.Errorf("expected verbose format to include classification, got %q", got)
	}
	if got := quiet.FormatError(InternalError("bug").Build()); !strings.Contains(got, "use -v") {
		t.Errorf("expected internal error hint, got %q", got)
	}
	if got := quiet.FormatError(nil); got != "" {
		t.Errorf("expected empty format for nil, got %q", got)
	}
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var logs, out bytes.Buffer
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil)))
	adapter.out = &out
	code := -1
	adapter.exit = func(c int) { code = c }

	adapter.HandleError(OutputError("write page").WithContext("path", "out/x.md").Build())

	if code != 11 {
		t.Errorf("expected exit code 11, got %d", code)
	}
	if !strings.Contains(out.String(), "write page") {
		t.Errorf("expected message on output, got %q", out.String())
	}
	if !strings.Contains(logs.String(), "category=output") || !strings.Contains(logs.String(), "path=out/x.md") {
		t.Errorf("expected structured log attrs, got %q", logs.String())
	}

	code = -1
	adapter.HandleError(nil)
	if code != -1 {
		t.Error("expected nil error to be a no-op")
	}
}
