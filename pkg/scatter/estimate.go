package scatter

import "unicode/utf8"

// Footprint estimation constants. Real text measurement needs a font
// stack we don't want in the core, so every glyph is treated as a
// fixed-width square slightly tighter than the font size. That is a
// rough fit for latin text but a good one for emoji and other
// pictographic glyphs, which are roughly square.
const (
	charWidthRatio  = 0.9  // estimated glyph advance as a fraction of font size
	lineHeightRatio = 1.2  // estimated line height as a fraction of font size
	paddingRatio    = 0.25 // padding on each side as a fraction of font size
)

// Size is an estimated width and height in canvas units.
type Size struct {
	W, H float64
}

// EstimateFootprint returns the rectangular area a token is expected
// to occupy when drawn at the given font size, including padding on
// all four sides. Tokens are measured in runes, not bytes, so a
// multi-byte emoji counts as one glyph.
func EstimateFootprint(token string, fontSize float64) Size {
	pad := fontSize * paddingRatio
	n := float64(utf8.RuneCountInString(token))
	return Size{
		W: n*fontSize*charWidthRatio + 2*pad,
		H: fontSize*lineHeightRatio + 2*pad,
	}
}
