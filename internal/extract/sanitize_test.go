package extract

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Acme Corp", "Acme_Corp"},
		{"Acme, Inc.", "Acme_Inc"},
		{"Jane Smith", "Jane_Smith"},
		{"A/B\\C:D", "ABCD"},
		{"  padded  ", "padded"},
		{"already_clean-name", "already_clean-name"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.in), tt.in)
	}
}

func TestSanitizeFilename_LengthCap(t *testing.T) {
	long := strings.Repeat("Acme Corporation ", 10)
	got := SanitizeFilename(long)
	assert.LessOrEqual(t, len([]rune(got)), 50)
}

func TestSanitizeFilename_Idempotent(t *testing.T) {
	inputs := []string{
		"Acme Corp",
		"Acme, Inc. (NASDAQ: ACME)",
		"  Jane   Smith  ",
		strings.Repeat("Very Long Company Name ", 5),
		"weird*chars?here<>|",
		"",
	}
	for _, in := range inputs {
		once := SanitizeFilename(in)
		assert.Equal(t, once, SanitizeFilename(once), in)
	}
}

func TestSanitizeFilename_Charset(t *testing.T) {
	got := SanitizeFilename("Acme & Sons, Ltd. — ticker: A&S")
	for _, r := range got {
		ok := r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
		assert.True(t, ok, "unexpected rune %q in %q", r, got)
	}
	assert.NotContains(t, got, " ")
}
