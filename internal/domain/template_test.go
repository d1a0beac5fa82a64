package domain

import "testing"

func TestNormalizeTemplate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty falls back to default",
			input:    "",
			expected: "Standard lobby category",
		},
		{
			name:     "exact display label",
			input:    "Ez Nav",
			expected: "Ez Nav",
		},
		{
			name:     "label case-insensitive",
			input:    "ez nav",
			expected: "Ez Nav",
		},
		{
			name:     "internal key",
			input:    "EZ_NAV",
			expected: "Ez Nav",
		},
		{
			name:     "internal key lower case",
			input:    "minigames_bingo",
			expected: "Minigames Bingo",
		},
		{
			name:     "standard key",
			input:    "STANDARD",
			expected: "Standard lobby category",
		},
		{
			name:     "unrecognized falls back to default",
			input:    "Mega Lobby 3000",
			expected: "Standard lobby category",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  Game Shows  ",
			expected: "Game Shows",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTemplate(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeTemplate(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeTemplateIdempotent(t *testing.T) {
	inputs := []string{"", "Ez Nav", "EZ_NAV", "coin arcade", "garbage", "STANDARD"}
	for _, in := range inputs {
		once := NormalizeTemplate(in)
		twice := NormalizeTemplate(once)
		if once != twice {
			t.Errorf("NormalizeTemplate not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
