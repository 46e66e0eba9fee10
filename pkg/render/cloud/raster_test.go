package cloud

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/matzehuels/wordscatter/pkg/scatter"
)

func TestResolveFontExplicit(t *testing.T) {
	path, err := resolveFont("/tmp/custom.ttf")
	if err != nil {
		t.Fatalf("resolveFont() error = %v", err)
	}
	if path != "/tmp/custom.ttf" {
		t.Errorf("resolveFont() = %q, want the explicit path untouched", path)
	}
}

func TestRenderPNG(t *testing.T) {
	fontPath, err := resolveFont("")
	if err != nil {
		t.Skipf("no system font available: %v", err)
	}

	cfg := scatter.Config{Width: 200, Height: 100, FontSize: 16}
	data, err := RenderPNG(testPlacements(), cfg, WithFontFile(fontPath))
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	// Default 2x scale.
	bounds := img.Bounds()
	if bounds.Dx() != 400 || bounds.Dy() != 200 {
		t.Errorf("image size = %dx%d, want 400x200", bounds.Dx(), bounds.Dy())
	}
}
