package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},   // within range
		{-5.5, 0.0, 10.0, 0.0},  // below lo
		{15.5, 0.0, 10.0, 10.0}, // above hi
		{0.0, 0.0, 10.0, 0.0},   // at lo
		{10.0, 0.0, 10.0, 10.0}, // at hi
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestViewportProjectRect(t *testing.T) {
	v := NewViewport(1024, 768, 64, 24)

	tests := []struct {
		name     string
		center   Vec2
		w, h     float64
		expected Rect
	}{
		{
			name:     "paddle",
			center:   V(512, 384),
			w:        16,
			h:        128,
			expected: NewRect(31, 10, 1, 4),
		},
		{
			name:     "tiny shape keeps one cell",
			center:   V(8, 8),
			w:        2,
			h:        2,
			expected: NewRect(0, 0, 1, 1),
		},
		{
			name:     "full field",
			center:   V(512, 384),
			w:        1024,
			h:        768,
			expected: NewRect(0, 0, 64, 24),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := v.ProjectRect(tc.center, tc.w, tc.h)
			if r != tc.expected {
				t.Errorf("ProjectRect(%v, %v, %v) = %+v, expected %+v", tc.center, tc.w, tc.h, r, tc.expected)
			}
		})
	}
}
