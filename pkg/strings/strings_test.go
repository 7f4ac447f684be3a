package strings

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{
			name:     "short string unchanged",
			input:    "hello",
			maxLen:   10,
			expected: "hello",
		},
		{
			name:     "exact length unchanged",
			input:    "hello",
			maxLen:   5,
			expected: "hello",
		},
		{
			name:     "long string truncated",
			input:    "hello world this is a long string",
			maxLen:   15,
			expected: "hello world ...",
		},
		{
			name:     "json body newlines collapsed",
			input:    "{\n  \"error_code\": \"INVALID_PARAMETER_VALUE\"\n}",
			maxLen:   100,
			expected: "{ \"error_code\": \"INVALID_PARAMETER_VALUE\" }",
		},
		{
			name:     "whitespace only becomes empty",
			input:    "   \n\t  ",
			maxLen:   10,
			expected: "",
		},
		{
			name:     "maxLen below minimum clamped",
			input:    "hello",
			maxLen:   0,
			expected: "h...",
		},
		{
			name:     "negative maxLen clamped",
			input:    "hello",
			maxLen:   -5,
			expected: "h...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Truncate(tt.input, tt.maxLen)
			if result != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, result, tt.expected)
			}
		})
	}
}

func TestTruncate_RuneSafe(t *testing.T) {
	input := "日本語テスト" // 6 runes, 18 bytes
	result := Truncate(input, 5)

	if !utf8.ValidString(result) {
		t.Fatalf("Truncate produced invalid UTF-8: %q", result)
	}
	if n := utf8.RuneCountInString(result); n != 5 {
		t.Errorf("Expected 5 runes but got %d", n)
	}
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"short", "*****"},
		{"12345678", "********"},
		{"dapi0123456789abcdef", "****************cdef"},
	}

	for _, tt := range tests {
		if got := MaskSecret(tt.input); got != tt.expected {
			t.Errorf("MaskSecret(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
