// Package core provides fundamental types shared by the snake game and its
// frontends. It contains no UI dependencies (no Bubble Tea, no ebiten) to
// keep game logic pure and testable.
package core

// Point is a 2D integer coordinate. The snake board addresses cells by the
// pixel position of their top-left corner.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Scale multiplies both components by k.
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Wrap reduces both components into [0, w) and [0, h).
func (p Point) Wrap(w, h int) Point {
	return Point{X: Mod(p.X, w), Y: Mod(p.Y, h)}
}

// Mod returns a modulo n in the range [0, n) for positive n.
// Unlike the % operator the result is never negative.
func Mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
