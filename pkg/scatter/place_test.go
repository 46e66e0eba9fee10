package scatter

import (
	"math/rand/v2"
	"testing"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

func TestPlaceEmptyCanvas(t *testing.T) {
	rng := testRNG(1)
	fp := Size{W: 40, H: 20}

	for i := 0; i < 100; i++ {
		box, ok := place(rng, fp, nil, 200, 100, 10)
		if !ok {
			t.Fatalf("placement %d failed on an empty canvas", i)
		}
		if !box.In(200, 100) {
			t.Fatalf("placement %d out of bounds: %v", i, box)
		}
		if box.W != fp.W || box.H != fp.H {
			t.Fatalf("placement %d changed footprint size: %v", i, box)
		}
	}
}

func TestPlaceOversizedFootprint(t *testing.T) {
	tests := []struct {
		name string
		fp   Size
	}{
		{"wider than canvas", Size{W: 300, H: 10}},
		{"taller than canvas", Size{W: 10, H: 300}},
		{"both oversized", Size{W: 300, H: 300}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Must bail without sampling a negative range, so the
			// rng going unused is part of the contract.
			if _, ok := place(testRNG(1), tt.fp, nil, 200, 100, 1000); ok {
				t.Errorf("place() accepted a footprint of %v on a 200x100 canvas", tt.fp)
			}
		})
	}
}

func TestPlaceExactFit(t *testing.T) {
	// A footprint exactly the canvas size leaves a single valid
	// position at the origin.
	box, ok := place(testRNG(1), Size{W: 200, H: 100}, nil, 200, 100, 1)
	if !ok {
		t.Fatal("exact-fit footprint was rejected")
	}
	if box.X != 0 || box.Y != 0 {
		t.Errorf("exact-fit placement at (%v, %v), want origin", box.X, box.Y)
	}
}

func TestPlaceAvoidsObstacles(t *testing.T) {
	rng := testRNG(42)
	// Block the left half of the canvas.
	obstacles := []Rect{{X: 0, Y: 0, W: 100, H: 100}}

	for i := 0; i < 50; i++ {
		box, ok := place(rng, Size{W: 30, H: 30}, obstacles, 200, 100, 5000)
		if !ok {
			t.Fatalf("placement %d failed with half the canvas free", i)
		}
		if box.Overlaps(obstacles[0]) {
			t.Fatalf("placement %d overlaps obstacle: %v", i, box)
		}
	}
}

func TestPlaceFullCanvas(t *testing.T) {
	// The whole canvas is claimed; every sample must be rejected.
	obstacles := []Rect{{X: 0, Y: 0, W: 200, H: 100}}
	if _, ok := place(testRNG(7), Size{W: 10, H: 10}, obstacles, 200, 100, 200); ok {
		t.Error("place() found a spot on a fully claimed canvas")
	}
}
