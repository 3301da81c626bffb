package voucher

import (
	"strings"
	"unicode"
)

const (
	rtlIsolate = '⁧' // RIGHT-TO-LEFT ISOLATE
	popIsolate = '⁩' // POP DIRECTIONAL ISOLATE
)

// ShapeMixedScript prepares a guest-facing string for rendering.
// Pure-Arabic runs are wrapped in an RLI...PDI isolate so the renderer
// lays them out right-to-left. Mixed runs are deliberately left alone:
// isolating a string that embeds a Latin name would visually reverse it.
func ShapeMixedScript(s string) string {
	if s == "" {
		return s
	}

	hasArabic := false
	hasOther := false
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Arabic, r):
			hasArabic = true
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			hasOther = true
		}
	}

	if hasArabic && !hasOther {
		return string(rtlIsolate) + s + string(popIsolate)
	}
	return s
}

// IsIsolated reports whether a string has already been wrapped in a
// directional isolate.
func IsIsolated(s string) bool {
	runes := []rune(s)
	return len(runes) >= 2 && runes[0] == rtlIsolate && runes[len(runes)-1] == popIsolate
}

// StripIsolates removes the directional isolate controls again for
// renderers that place glyphs themselves. A plain canvas has no bidi
// engine; the controls carry no glyph and must not reach it.
func StripIsolates(s string) string {
	return strings.Map(func(r rune) rune {
		if r == rtlIsolate || r == popIsolate {
			return -1
		}
		return r
	}, s)
}
