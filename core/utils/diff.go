package utils

import "strings"

const (
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiReset = "\x1b[39m"
)

// CharDiff renders a character-level diff between an old and a new string
// for terminal output. Characters removed from old are colored red, characters
// added by new are colored green, shared characters pass through unchanged.
// The two strings are compared position by position.
func CharDiff(old, new string) string {
	oldRunes := []rune(old)
	newRunes := []rune(new)

	var b strings.Builder
	n := max(len(oldRunes), len(newRunes))
	for i := 0; i < n; i++ {
		switch {
		case i >= len(newRunes):
			writeColored(&b, ansiRed, oldRunes[i])
		case i >= len(oldRunes):
			writeColored(&b, ansiGreen, newRunes[i])
		case oldRunes[i] == newRunes[i]:
			b.WriteRune(oldRunes[i])
		default:
			writeColored(&b, ansiRed, oldRunes[i])
			writeColored(&b, ansiGreen, newRunes[i])
		}
	}
	return b.String()
}

func writeColored(b *strings.Builder, color string, r rune) {
	b.WriteString(color)
	b.WriteRune(r)
	b.WriteString(ansiReset)
}
