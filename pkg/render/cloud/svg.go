// Package cloud renders a set of word placements as a static vector
// image. The SVG renderer is the canonical sink; PNG output goes
// either through librsvg (see pkg/render) or the native rasterizer in
// this package.
package cloud

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/wordscatter/pkg/scatter"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	background string
	fontFamily string
	textColor  string
	showBoxes  bool
}

// WithBackground sets the canvas fill color (default white).
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// WithFontFamily sets the CSS font-family for all labels.
func WithFontFamily(family string) SVGOption {
	return func(r *svgRenderer) { r.fontFamily = family }
}

// WithTextColor sets the label fill color (default near-black).
func WithTextColor(color string) SVGOption {
	return func(r *svgRenderer) { r.textColor = color }
}

// WithBoxes draws each placement's bounding box, for debugging the
// layout engine.
func WithBoxes() SVGOption {
	return func(r *svgRenderer) { r.showBoxes = true }
}

// RenderSVG composes the placements into an SVG document sized to the
// layout's canvas. Each token becomes one rotated, centered text
// label; the rotation pivots on the text anchor so the box estimate
// stays honest.
func RenderSVG(placements []scatter.Placement, cfg scatter.Config, opts ...SVGOption) []byte {
	r := svgRenderer{
		background: "#ffffff",
		fontFamily: "sans-serif",
		textColor:  "#1a1a1a",
	}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		cfg.Width, cfg.Height, cfg.Width, cfg.Height)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", escapeXML(r.background))

	if r.showBoxes {
		for _, p := range placements {
			fmt.Fprintf(&buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="#cccccc" stroke-width="0.5"/>`+"\n",
				p.Box.X, p.Box.Y, p.Box.W, p.Box.H)
		}
	}

	for _, p := range placements {
		fmt.Fprintf(&buf,
			`  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.1f" fill="%s" text-anchor="middle" transform="rotate(%.2f %.2f %.2f)">%s</text>`+"\n",
			p.X, p.Y, escapeXML(r.fontFamily), cfg.FontSize, escapeXML(r.textColor),
			p.Rotation, p.X, p.Y, escapeXML(p.Text))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
