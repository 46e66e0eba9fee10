package scatter

import "math/rand/v2"

// place searches for a position where a footprint of size fp fits
// inside the canvas without overlapping any obstacle. It draws up to
// maxAttempts uniform candidates and returns the first that is free.
// The boolean result is false when every attempt collided, or
// immediately when the footprint cannot fit the canvas at all (an
// oversized footprint has no valid sampling range).
func place(rng *rand.Rand, fp Size, obstacles []Rect, width, height float64, maxAttempts int) (Rect, bool) {
	if fp.W > width || fp.H > height {
		return Rect{}, false
	}

	for range maxAttempts {
		candidate := Rect{
			X: rng.Float64() * (width - fp.W),
			Y: rng.Float64() * (height - fp.H),
			W: fp.W,
			H: fp.H,
		}
		if !collides(candidate, obstacles) {
			return candidate, true
		}
	}
	return Rect{}, false
}

func collides(candidate Rect, obstacles []Rect) bool {
	for _, o := range obstacles {
		if candidate.Overlaps(o) {
			return true
		}
	}
	return false
}
