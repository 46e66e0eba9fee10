// Package render exports rendered SVG documents to print and raster
// formats by shelling out to rsvg-convert.
package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/matzehuels/wordscatter/pkg/errors"
)

// ToPDF converts an SVG artifact to PDF.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return rsvgConvert(ctx, svg, "pdf")
}

// ToPNG rasterizes an SVG artifact at the given scale factor; 2.0
// doubles the pixel dimensions without touching the layout.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	return rsvgConvert(ctx, svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

// HaveRSVG reports whether rsvg-convert is on PATH. Callers can fall
// back to the native rasterizer when it is not.
func HaveRSVG() bool {
	_, err := exec.LookPath("rsvg-convert")
	return err == nil
}

// rsvgConvert pipes the SVG through rsvg-convert. The subprocess is
// killed when ctx is cancelled.
func rsvgConvert(ctx context.Context, svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if !HaveRSVG() {
		return nil, errors.New(errors.ErrCodeConvertFailed,
			"%s export requires librsvg (brew install librsvg / apt install librsvg2-bin)", format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.CommandContext(ctx, "rsvg-convert", args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConvertFailed, err,
			"rsvg-convert: %s", strings.TrimSpace(errBuf.String()))
	}
	return out.Bytes(), nil
}
