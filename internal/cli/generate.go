package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordscatter/pkg/cache"
	"github.com/matzehuels/wordscatter/pkg/config"
	"github.com/matzehuels/wordscatter/pkg/errors"
	"github.com/matzehuels/wordscatter/pkg/render"
	"github.com/matzehuels/wordscatter/pkg/render/cloud"
	"github.com/matzehuels/wordscatter/pkg/scatter"
	"github.com/matzehuels/wordscatter/pkg/words"
)

const cacheTTL = 30 * 24 * time.Hour

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output     string   // output file path (or base path for multiple formats)
	formats    []string // output formats: "svg", "png", "pdf"
	configPath string   // optional TOML config file
	width      float64  // canvas width
	height     float64  // canvas height
	fontSize   float64  // label font size
	attempts   int      // placement samples per word
	retries    int      // full layout retries
	seed       uint64   // rng seed (set only when seedSet)
	seedSet    bool     // whether --seed was passed
	boxes      bool     // draw bounding boxes for debugging
	background string   // canvas fill color
	fontFamily string   // SVG font family
	fontFile   string   // TTF file for the native rasterizer
	raster     bool     // force the native rasterizer for PNG
	scale      float64  // raster resolution multiplier
	noCache    bool     // disable the artifact cache
}

// newGenerateCmd creates the generate command, which reads a word list,
// computes a non-overlapping layout, and writes the rendered result.
func newGenerateCmd() *cobra.Command {
	var formatsStr string
	opts := generateOpts{
		scale: 2.0,
	}

	cmd := &cobra.Command{
		Use:   "generate [words.txt]",
		Short: "Scatter a word list onto a canvas and write the image",
		Long: `Scatter a word list onto a canvas and write the image.

The input file holds one or more words per line, separated by whitespace.
Lines starting with '#' are ignored. Each word is placed at a random
position and slight random tilt so that no two words overlap; when a pass
cannot place every word the whole layout is reshuffled and retried.

Settings come from built-in defaults, overridden by an optional TOML
config file (--config, or ./wordscatter.toml), overridden by flags.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			opts.seedSet = cmd.Flags().Changed("seed")
			cfg, err := resolveSettings(cmd, &opts)
			if err != nil {
				return err
			}
			return runGenerate(cmd.Context(), args[0], cfg, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf (comma-separated)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file (default: ./wordscatter.toml if present)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "canvas width")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "canvas height")
	cmd.Flags().Float64Var(&opts.fontSize, "font-size", 0, "label font size")
	cmd.Flags().IntVar(&opts.attempts, "attempts", 0, "placement samples per word")
	cmd.Flags().IntVar(&opts.retries, "retries", 0, "full layout retries")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed for a reproducible layout")
	cmd.Flags().BoolVar(&opts.boxes, "boxes", false, "draw bounding boxes (debug)")
	cmd.Flags().StringVar(&opts.background, "background", "", "canvas fill color")
	cmd.Flags().StringVar(&opts.fontFamily, "font-family", "", "SVG font family")
	cmd.Flags().StringVar(&opts.fontFile, "font-file", "", "TTF file for native PNG rendering")
	cmd.Flags().BoolVar(&opts.raster, "raster", false, "rasterize PNG natively instead of via librsvg")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG resolution multiplier")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "png": true, "pdf": true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'png', or 'pdf')", f)
		}
	}
	return nil
}

// resolveSettings merges config sources: built-in defaults, then the
// config file, then any flag the user actually set.
func resolveSettings(cmd *cobra.Command, opts *generateOpts) (config.Config, error) {
	var cfg config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = config.Load(opts.configPath)
	} else {
		cfg, err = config.Discover()
	}
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Canvas.Width = opts.width
	}
	if flags.Changed("height") {
		cfg.Canvas.Height = opts.height
	}
	if flags.Changed("font-size") {
		cfg.Layout.FontSize = opts.fontSize
	}
	if flags.Changed("attempts") {
		cfg.Layout.MaxAttempts = opts.attempts
	}
	if flags.Changed("retries") {
		cfg.Layout.MaxRetries = opts.retries
	}
	if flags.Changed("background") {
		cfg.Render.Background = opts.background
	}
	if flags.Changed("font-family") {
		cfg.Render.FontFamily = opts.fontFamily
	}
	return cfg, nil
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input. If output has
// a known format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runGenerate loads the word list, computes the layout, and writes the
// rendered artifacts.
func runGenerate(ctx context.Context, input string, cfg config.Config, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	tokens, err := words.ReadFile(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded %d words from %s", len(tokens), input)

	seed := opts.seed
	if !opts.seedSet {
		seed = uint64(time.Now().UnixNano())
		logger.Debugf("Using time-derived seed %d", seed)
	}

	store := openCache(ctx, opts)
	defer store.Close()

	scfg := cfg.Scatter()
	p := newProgress(logger)
	spinner := newSpinner(ctx, fmt.Sprintf("Placing %d words...", len(tokens)))
	spinner.Start()

	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
	placements, err := scatter.Layout(rng, tokens, scfg)
	if err != nil {
		spinner.StopWithError("Layout failed")
		var infeasible *scatter.InfeasibleError
		if stderrors.As(err, &infeasible) {
			printWarning("Could not place: %s", strings.Join(infeasible.Unplaced, ", "))
			printNextStep("Try", "a larger canvas (--width/--height) or a smaller --font-size")
			return errors.Wrap(errors.ErrCodeLayoutInfeasible, err, "layout %s", input)
		}
		return err
	}
	spinner.Stop()
	if spinner.Cancelled() {
		return ctx.Err()
	}
	p.done(fmt.Sprintf("Placed %d words", len(placements)))

	base := basePath(opts.output, input)
	anyCached := false
	for _, format := range opts.formats {
		path := base + "." + format
		if opts.output != "" && len(opts.formats) == 1 {
			path = opts.output
		}

		key := cache.ArtifactKey(tokens, renderKey(scfg, cfg, opts), format, seed)
		data, cached, err := renderCached(ctx, store, key, opts.seedSet, func() ([]byte, error) {
			return renderFormat(ctx, placements, scfg, cfg, format, opts)
		})
		if err != nil {
			return errors.Wrap(errors.ErrCodeConvertFailed, err, "render %s", format)
		}
		anyCached = anyCached || cached
		logger.Debugf("Generated %s: %d bytes", format, len(data))

		if err := os.WriteFile(path, data, 0644); err != nil {
			return err
		}
		printFile(path)
	}

	printNewline()
	printSuccess("Cloud complete")
	printStats(len(placements), anyCached)
	return nil
}

// renderKey collects everything besides tokens/format/seed that
// changes the output bytes, for cache keying. The rsvg probe is part
// of the key because PNG bytes differ between the rsvg and native
// rasterizer paths.
func renderKey(scfg scatter.Config, cfg config.Config, opts *generateOpts) any {
	return struct {
		Layout     scatter.Config
		Background string
		FontFamily string
		Boxes      bool
		Raster     bool
		FontFile   string
		Scale      float64
		Rsvg       bool
	}{scfg, cfg.Render.Background, cfg.Render.FontFamily, opts.boxes, opts.raster, opts.fontFile, opts.scale, render.HaveRSVG()}
}

// renderCached consults the cache only for seeded runs: an unseeded
// layout is different every time, so its key would never hit again.
func renderCached(ctx context.Context, store cache.Cache, key string, seeded bool, generate func() ([]byte, error)) ([]byte, bool, error) {
	if seeded {
		if data, found, err := store.Get(ctx, key); err == nil && found {
			return data, true, nil
		}
	}
	data, err := generate()
	if err != nil {
		return nil, false, err
	}
	if seeded {
		_ = store.Set(ctx, key, data, cacheTTL)
	}
	return data, false, nil
}

// renderFormat produces the artifact bytes for one output format.
func renderFormat(ctx context.Context, placements []scatter.Placement, scfg scatter.Config, cfg config.Config, format string, opts *generateOpts) ([]byte, error) {
	svgOpts := []cloud.SVGOption{
		cloud.WithBackground(cfg.Render.Background),
		cloud.WithFontFamily(cfg.Render.FontFamily),
	}
	if opts.boxes {
		svgOpts = append(svgOpts, cloud.WithBoxes())
	}
	svg := cloud.RenderSVG(placements, scfg, svgOpts...)

	switch format {
	case "svg":
		return svg, nil
	case "png":
		if opts.raster || !render.HaveRSVG() {
			rasterOpts := []cloud.RasterOption{
				cloud.WithRasterBackground(cfg.Render.Background),
				cloud.WithRasterScale(opts.scale),
			}
			if opts.fontFile != "" {
				rasterOpts = append(rasterOpts, cloud.WithFontFile(opts.fontFile))
			}
			return cloud.RenderPNG(placements, scfg, rasterOpts...)
		}
		return render.ToPNG(ctx, svg, opts.scale)
	case "pdf":
		return render.ToPDF(ctx, svg)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", format)
	}
}

// openCache returns the artifact cache: a file cache under the user
// cache dir, or a null cache when disabled or the dir is unavailable.
func openCache(ctx context.Context, opts *generateOpts) cache.Cache {
	if opts.noCache {
		return cache.NewNullCache()
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	store, err := cache.NewFileCache(filepath.Join(dir, "wordscatter"))
	if err != nil {
		loggerFromContext(ctx).Debugf("Cache unavailable: %v", err)
		return cache.NewNullCache()
	}
	return store
}
