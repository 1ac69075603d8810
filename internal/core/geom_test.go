package core

import "testing"

func TestMod(t *testing.T) {
	tests := []struct {
		a, n, expected int
	}{
		{5, 3, 2},
		{0, 3, 0},
		{-1, 3, 2},
		{-3, 3, 0},
		{660, 640, 20},
		{-20, 640, 620},
	}

	for _, tc := range tests {
		result := Mod(tc.a, tc.n)
		if result != tc.expected {
			t.Errorf("Mod(%d, %d) = %d, expected %d", tc.a, tc.n, result, tc.expected)
		}
	}
}

func TestPointWrap(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		expected Point
	}{
		{"inside", Point{X: 100, Y: 200}, Point{X: 100, Y: 200}},
		{"past right edge", Point{X: 640, Y: 240}, Point{X: 0, Y: 240}},
		{"past left edge", Point{X: -20, Y: 240}, Point{X: 620, Y: 240}},
		{"past bottom edge", Point{X: 320, Y: 480}, Point{X: 320, Y: 0}},
		{"past top edge", Point{X: 320, Y: -20}, Point{X: 320, Y: 460}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.p.Wrap(640, 480)
			if result != tc.expected {
				t.Errorf("Wrap() = %+v, expected %+v", result, tc.expected)
			}
		})
	}
}

func TestPointAddScale(t *testing.T) {
	p := Point{X: 320, Y: 240}.Add(Point{X: 1, Y: 0}.Scale(20))
	if p != (Point{X: 340, Y: 240}) {
		t.Errorf("Add(Scale()) = %+v, expected (340, 240)", p)
	}
}
