package extract

import (
	"regexp"
	"strings"
)

const maxFilenameRunes = 50

var nonFilenameChars = regexp.MustCompile(`[^\w\s-]`)

// SanitizeFilename reduces a subject name to a safe attachment filename
// stem: strips everything outside word characters, whitespace, and hyphens,
// trims, replaces spaces with underscores, and caps the length. Idempotent.
func SanitizeFilename(name string) string {
	s := nonFilenameChars.ReplaceAllString(name, "")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "_")
	r := []rune(s)
	if len(r) > maxFilenameRunes {
		r = r[:maxFilenameRunes]
	}
	return string(r)
}
