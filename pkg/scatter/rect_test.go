package scatter

import "testing"

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			name: "disjoint horizontally",
			a:    Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    Rect{X: 30, Y: 0, W: 10, H: 10},
			want: false,
		},
		{
			name: "disjoint vertically",
			a:    Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    Rect{X: 0, Y: 25, W: 10, H: 10},
			want: false,
		},
		{
			name: "touching right edge is not overlap",
			a:    Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    Rect{X: 10, Y: 0, W: 10, H: 10},
			want: false,
		},
		{
			name: "touching bottom edge is not overlap",
			a:    Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    Rect{X: 0, Y: 10, W: 10, H: 10},
			want: false,
		},
		{
			name: "touching corner is not overlap",
			a:    Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    Rect{X: 10, Y: 10, W: 10, H: 10},
			want: false,
		},
		{
			name: "one unit intrusion",
			a:    Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    Rect{X: 9, Y: 0, W: 10, H: 10},
			want: true,
		},
		{
			name: "contained",
			a:    Rect{X: 0, Y: 0, W: 100, H: 100},
			b:    Rect{X: 40, Y: 40, W: 10, H: 10},
			want: true,
		},
		{
			name: "identical",
			a:    Rect{X: 5, Y: 5, W: 10, H: 10},
			b:    Rect{X: 5, Y: 5, W: 10, H: 10},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Overlap is symmetric.
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestRectIn(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"inside", Rect{X: 10, Y: 10, W: 20, H: 20}, true},
		{"flush against all edges", Rect{X: 0, Y: 0, W: 100, H: 100}, true},
		{"past right edge", Rect{X: 90, Y: 0, W: 20, H: 10}, false},
		{"past bottom edge", Rect{X: 0, Y: 95, W: 10, H: 10}, false},
		{"negative origin", Rect{X: -1, Y: 0, W: 10, H: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.In(100, 100); got != tt.want {
				t.Errorf("In(100, 100) for %v = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 10, H: 20}
	if got := r.Right(); got != 12 {
		t.Errorf("Right() = %v, want 12", got)
	}
	if got := r.Bottom(); got != 23 {
		t.Errorf("Bottom() = %v, want 23", got)
	}
	if got := r.CenterX(); got != 7 {
		t.Errorf("CenterX() = %v, want 7", got)
	}
	if got := r.CenterY(); got != 13 {
		t.Errorf("CenterY() = %v, want 13", got)
	}
}
