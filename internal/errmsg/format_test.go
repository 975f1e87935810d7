//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpConfigLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpConfigLoad,
			err:      errors.New("invalid toml"),
			expected: "Failed to load configuration: invalid toml",
		},
		{
			name:     "state operation",
			op:       OpStateOpen,
			err:      errors.New("permission denied"),
			expected: "Failed to open state database: permission denied",
		},
		{
			name:     "theme operation",
			op:       OpThemeSave,
			err:      errors.New("database is locked"),
			expected: "Failed to save theme: database is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpLogOpen,
			context:  "/tmp/deskboard.log",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpLogOpen,
			context:  "/tmp/deskboard.log",
			err:      errors.New("permission denied"),
			expected: "Failed to open log file '/tmp/deskboard.log': permission denied",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpLogOpen,
			context:  "",
			err:      errors.New("permission denied"),
			expected: "Failed to open log file: permission denied",
		},
		{
			name:     "config write with path context",
			op:       OpConfigWrite,
			context:  "config.toml",
			err:      errors.New("file exists"),
			expected: "Failed to write configuration 'config.toml': file exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{
		OpConfigLoad, OpLogOpen, OpStateOpen, OpInitialize,
		OpThemeLoad, OpThemeSave,
		OpConfigWrite,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			expected := "Failed to " + string(op) + ": test error"
			if result := Format(op, testErr); result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
