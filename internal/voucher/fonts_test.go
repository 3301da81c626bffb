//go:build unit

package voucher

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// Guest and hotel names come in Arabic as often as in Latin script, so
// the bundled faces must carry real glyphs for both. A face without
// coverage silently draws .notdef boxes.
func TestBundledFontsCoverArabic(t *testing.T) {
	sample := "محمد عبدالله فندق الصحراء الرياض Sara Al-Rashid 123"

	for name, ttf := range map[string][]byte{
		"regular": regularTTF,
		"bold":    boldTTF,
	} {
		t.Run(name, func(t *testing.T) {
			parsed, err := opentype.Parse(ttf)
			require.NoError(t, err)
			face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
				Size: 13, DPI: 72, Hinting: font.HintingFull,
			})
			require.NoError(t, err)

			for _, r := range sample {
				if unicode.IsSpace(r) {
					continue
				}
				_, ok := face.GlyphAdvance(r)
				assert.True(t, ok, "missing glyph for %q (U+%04X)", r, r)
			}
		})
	}
}

// The isolate controls are not in the faces either; the raster path
// strips them before drawing.
func TestBundledFontsLackIsolateControls(t *testing.T) {
	parsed, err := opentype.Parse(regularTTF)
	require.NoError(t, err)
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size: 13, DPI: 72, Hinting: font.HintingFull,
	})
	require.NoError(t, err)

	for _, r := range []rune{rtlIsolate, popIsolate} {
		_, ok := face.GlyphAdvance(r)
		assert.False(t, ok, "U+%04X unexpectedly present", r)
	}
}
