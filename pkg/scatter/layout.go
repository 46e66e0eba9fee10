package scatter

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Default layout parameters. The canvas matches a US-letter page at
// 96 DPI in landscape orientation.
const (
	DefaultWidth       = 1056.0
	DefaultHeight      = 816.0
	DefaultFontSize    = 24.0
	DefaultMaxAttempts = 5000
	DefaultMaxRetries  = 10
)

// maxRotation bounds the random tilt applied to each placed token,
// in degrees on either side of horizontal.
const maxRotation = 15.0

// baselineRatio shifts the text anchor below the box center so the
// glyphs visually center inside their footprint.
const baselineRatio = 3.0

// Config holds the layout parameters for one run. Configs are plain
// values; concurrent layouts with different settings are fine as long
// as each has its own *rand.Rand.
type Config struct {
	Width       float64 // canvas width in user units
	Height      float64 // canvas height in user units
	FontSize    float64 // font size in the same units
	MaxAttempts int     // placement samples per token within one attempt
	MaxRetries  int     // full layout attempts before giving up
}

// DefaultConfig returns the standard canvas and search budget.
func DefaultConfig() Config {
	return Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		FontSize:    DefaultFontSize,
		MaxAttempts: DefaultMaxAttempts,
		MaxRetries:  DefaultMaxRetries,
	}
}

// Placement is one token's final position in a successful layout.
// X and Y are the text anchor (box center, baseline-adjusted), not
// the box corner; Box is the claimed footprint rectangle.
type Placement struct {
	Text     string
	X, Y     float64
	Rotation float64 // degrees, clockwise
	Box      Rect
}

// Attempt is the outcome of a single full pass over the token list.
// It is complete when every token found a spot.
type Attempt struct {
	Placements []Placement
	Unplaced   []string
}

// Complete reports whether every token was placed.
func (a Attempt) Complete() bool { return len(a.Unplaced) == 0 }

// InfeasibleError reports that every retry left tokens unplaced.
// Unplaced holds the tokens from the final attempt, for diagnostics.
type InfeasibleError struct {
	Unplaced []string
	Retries  int
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("layout infeasible after %d retries: could not place %s",
		e.Retries, strings.Join(e.Unplaced, ", "))
}

// LayoutOnce runs a single layout attempt: it shuffles the tokens,
// then places each one against the rectangles already claimed in this
// attempt. Tokens that exhaust their sampling budget are collected in
// Unplaced; the pass continues, so one stuck token does not forfeit
// the rest.
//
// Shuffling makes earlier tokens claim space first, which is what
// gives layouts their variety across runs.
func LayoutOnce(rng *rand.Rand, tokens []string, cfg Config) Attempt {
	order := make([]string, len(tokens))
	copy(order, tokens)
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	var attempt Attempt
	claimed := make([]Rect, 0, len(order))

	for _, token := range order {
		fp := EstimateFootprint(token, cfg.FontSize)
		box, ok := place(rng, fp, claimed, cfg.Width, cfg.Height, cfg.MaxAttempts)
		if !ok {
			attempt.Unplaced = append(attempt.Unplaced, token)
			continue
		}
		claimed = append(claimed, box)
		attempt.Placements = append(attempt.Placements, Placement{
			Text:     token,
			X:        box.CenterX(),
			Y:        box.CenterY() + cfg.FontSize/baselineRatio,
			Rotation: rng.Float64()*2*maxRotation - maxRotation,
			Box:      box,
		})
	}
	return attempt
}

// Layout places every token on the canvas, retrying the whole pass
// with fresh randomness when a pass leaves tokens unplaced. A retry
// reshuffles, so a different ordering leaves different space free for
// the previously stuck tokens. After cfg.MaxRetries incomplete passes
// it returns an *InfeasibleError naming the leftovers; partial results
// are never returned.
func Layout(rng *rand.Rand, tokens []string, cfg Config) ([]Placement, error) {
	retries := max(1, cfg.MaxRetries)
	attempt, ok := firstComplete(retries, func() Attempt {
		return LayoutOnce(rng, tokens, cfg)
	})
	if !ok {
		return nil, &InfeasibleError{Unplaced: attempt.Unplaced, Retries: retries}
	}
	return attempt.Placements, nil
}

// firstComplete invokes next up to maxRetries times and returns the
// first complete attempt. When none completes it returns the last
// attempt so the caller can report what stayed unplaced.
func firstComplete(maxRetries int, next func() Attempt) (Attempt, bool) {
	var last Attempt
	for range maxRetries {
		last = next()
		if last.Complete() {
			return last, true
		}
	}
	return last, false
}
