package cli

import (
	"testing"

	"github.com/matzehuels/wordscatter/pkg/cache"
	"github.com/matzehuels/wordscatter/pkg/config"
	"github.com/matzehuels/wordscatter/pkg/errors"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,png,pdf", []string{"svg", "png", "pdf"}},
		{"pdf only", "pdf", []string{"pdf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Errorf("parseFormats(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
				return
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"valid svg", []string{"svg"}, false},
		{"valid png", []string{"png"}, false},
		{"valid pdf", []string{"pdf"}, false},
		{"valid multiple", []string{"svg", "png", "pdf"}, false},
		{"invalid format", []string{"gif"}, true},
		{"mixed valid invalid", []string{"svg", "gif"}, true},
		{"empty slice", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("validateFormats(%v) code = %v, want %s", tt.formats, errors.GetCode(err), errors.ErrCodeInvalidFormat)
			}
		})
	}
}

func TestRenderKeyCoversRenderInputs(t *testing.T) {
	cfg := config.Default()
	scfg := cfg.Scatter()
	tokens := []string{"sun", "moon"}

	key := func(opts *generateOpts) string {
		return cache.ArtifactKey(tokens, renderKey(scfg, cfg, opts), "png", 7)
	}

	base := &generateOpts{raster: true, scale: 2}
	tests := []struct {
		name string
		opts *generateOpts
	}{
		{"different font file", &generateOpts{raster: true, scale: 2, fontFile: "other.ttf"}},
		{"different scale", &generateOpts{raster: true, scale: 3}},
		{"boxes on", &generateOpts{raster: true, scale: 2, boxes: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if key(tt.opts) == key(base) {
				t.Error("cache key did not change with the render option")
			}
		})
	}

	if key(base) != key(&generateOpts{raster: true, scale: 2}) {
		t.Error("cache key is not deterministic")
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"derive from input", "", "words.txt", "words"},
		{"strip format extension", "cloud.svg", "words.txt", "cloud"},
		{"strip png extension", "cloud.png", "words.txt", "cloud"},
		{"keep unknown extension", "cloud.out", "words.txt", "cloud.out"},
		{"plain output", "cloud", "words.txt", "cloud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}
