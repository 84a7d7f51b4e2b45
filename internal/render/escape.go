package render

import (
	"fmt"
	"strings"
	"unicode"
)

// Escape makes text inert on a terminal. Control characters (ESC, CR, BEL,
// C1 codes, ...) and bidi overrides are spelled out as \xNN or \uNNNN, so an
// escape sequence in a task shows up as text instead of moving the cursor or
// changing colors. Rows are always one line, so tabs and newlines are
// spelled out too. Once anything is spelled out, backslashes are doubled so a
// typed "\x1b" stays distinguishable from an escaped ESC in the same text.
func Escape(text string) string {
	if !needsEscape(text) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + 8)
	for _, r := range text {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r < 0x80 && unicode.IsControl(r):
			fmt.Fprintf(&b, `\x%02x`, r)
		case unicode.IsControl(r) || isBidi(r):
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsEscape(text string) bool {
	for _, r := range text {
		if unicode.IsControl(r) || isBidi(r) {
			return true
		}
	}
	return false
}

// isBidi reports the directional embeddings, overrides and isolates.
func isBidi(r rune) bool {
	return (r >= 0x202a && r <= 0x202e) || (r >= 0x2066 && r <= 0x2069)
}
