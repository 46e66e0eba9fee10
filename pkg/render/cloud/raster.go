package cloud

import (
	"bytes"
	"image/png"

	"github.com/flopp/go-findfont"
	"github.com/fogleman/gg"

	"github.com/matzehuels/wordscatter/pkg/errors"
	"github.com/matzehuels/wordscatter/pkg/scatter"
)

// fontCandidates are tried in order when no font file is given.
// DejaVu ships with most Linux distributions; the rest cover macOS
// and Windows.
var fontCandidates = []string{
	"DejaVuSans.ttf",
	"Arial.ttf",
	"Helvetica.ttf",
	"FreeSans.ttf",
}

// RasterOption configures native PNG rendering.
type RasterOption func(*rasterRenderer)

type rasterRenderer struct {
	background string
	textColor  string
	fontFile   string
	scale      float64
}

// WithRasterBackground sets the canvas fill color (default white).
func WithRasterBackground(color string) RasterOption {
	return func(r *rasterRenderer) { r.background = color }
}

// WithRasterTextColor sets the label color (default near-black).
func WithRasterTextColor(color string) RasterOption {
	return func(r *rasterRenderer) { r.textColor = color }
}

// WithFontFile sets an explicit TTF file instead of searching system fonts.
func WithFontFile(path string) RasterOption {
	return func(r *rasterRenderer) { r.fontFile = path }
}

// WithRasterScale sets the resolution multiplier (default 2.0).
func WithRasterScale(s float64) RasterOption {
	return func(r *rasterRenderer) { r.scale = s }
}

// RenderPNG rasterizes the placements directly, without librsvg.
// Labels are drawn with a system TTF font located via findfont, so
// glyph metrics differ slightly from the SVG output; the placement
// geometry is identical.
func RenderPNG(placements []scatter.Placement, cfg scatter.Config, opts ...RasterOption) ([]byte, error) {
	r := rasterRenderer{
		background: "#ffffff",
		textColor:  "#1a1a1a",
		scale:      2.0,
	}
	for _, opt := range opts {
		opt(&r)
	}

	fontPath, err := resolveFont(r.fontFile)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(int(cfg.Width*r.scale), int(cfg.Height*r.scale))
	dc.Scale(r.scale, r.scale)
	dc.SetHexColor(r.background)
	dc.Clear()

	if err := dc.LoadFontFace(fontPath, cfg.FontSize); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConvertFailed, err, "load font %s", fontPath)
	}

	dc.SetHexColor(r.textColor)
	for _, p := range placements {
		dc.Push()
		dc.RotateAbout(gg.Radians(p.Rotation), p.X, p.Y)
		// The anchor already carries the baseline offset, so anchor
		// the string at its horizontal center on that line.
		dc.DrawStringAnchored(p.Text, p.X, p.Y, 0.5, 0)
		dc.Pop()
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConvertFailed, err, "encode png")
	}
	return buf.Bytes(), nil
}

func resolveFont(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	for _, name := range fontCandidates {
		if path, err := findfont.Find(name); err == nil {
			return path, nil
		}
	}
	return "", errors.New(errors.ErrCodeConvertFailed,
		"no usable system font found; pass one explicitly with --font-file")
}
