package geo

// Line represents a line segment.
type Line[T Float] struct {
	// The line's start point.
	P0 Point[T]
	// The line's end point.
	P1 Point[T]
}

// Length returns the length of the line.
func (l Line[T]) Length() T {
	return l.P1.Sub(l.P0).Hypot()
}

// Eval returns the point at parameter t, with t = 0 at the start point and t
// = 1 at the end point.
func (l Line[T]) Eval(t T) Point[T] {
	return l.P0.Lerp(l.P1, t)
}

// Midpoint returns the point halfway between the line's endpoints.
func (l Line[T]) Midpoint() Point[T] {
	return l.P0.Midpoint(l.P1)
}

// Reverse returns the line with its endpoints swapped.
func (l Line[T]) Reverse() Line[T] {
	return Line[T]{P0: l.P1, P1: l.P0}
}

func (l Line[T]) Translate(v Vec2[T]) Line[T] {
	return Line[T]{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

// SignedArea returns the signed area of the triangle spanned by the origin and
// the line. Summed over the segments of a closed ring, this yields the ring's
// signed area.
func (l Line[T]) SignedArea() T {
	return Vec2[T](l.P0).Cross(Vec2[T](l.P1)) * 0.5
}

func (l Line[T]) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line[T]) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}
