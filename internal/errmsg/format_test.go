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
			op:       OpOpenBrowser,
			err:      nil,
			expected: "",
		},
		{
			name:     "config operation",
			op:       OpConfigLoad,
			err:      errors.New("toml: line 3: expected '='"),
			expected: "Failed to load configuration: toml: line 3: expected '='",
		},
		{
			name:     "browser operation",
			op:       OpOpenBrowser,
			err:      errors.New("exec: \"xdg-open\": executable file not found in $PATH"),
			expected: "Failed to open browser: exec: \"xdg-open\": executable file not found in $PATH",
		},
		{
			name:     "history operation",
			op:       OpHistorySave,
			err:      errors.New("database is locked"),
			expected: "Failed to save search history: database is locked",
		},
		{
			name:     "history clear",
			op:       OpHistoryClear,
			err:      errors.New("database is locked"),
			expected: "Failed to clear search history: database is locked",
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
			op:       OpOpenBrowser,
			context:  "https://www.youtube.com/watch?v=abc",
			err:      nil,
			expected: "",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpHistoryLoad,
			context:  "",
			err:      errors.New("no such table"),
			expected: "Failed to load search history: no such table",
		},
		{
			name:     "includes context",
			op:       OpOpenBrowser,
			context:  "https://www.youtube.com/watch?v=abc",
			err:      errors.New("unsupported platform: plan9"),
			expected: "Failed to open browser 'https://www.youtube.com/watch?v=abc': unsupported platform: plan9",
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
