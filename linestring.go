package geo

import (
	"iter"
	"slices"
)

// LineString is an ordered sequence of points. When used as a polygon
// boundary it is called a ring. Rings should be closed, that is, their last
// point should equal their first, but this is not enforced.
type LineString[T Float] []Point[T]

var _ LineStringLike[float64] = LineString[float64](nil)

// Points returns an iterator over the points of the line string.
func (ls LineString[T]) Points() iter.Seq[PointLike[T]] {
	return func(yield func(PointLike[T]) bool) {
		for _, pt := range ls {
			if !yield(pt) {
				return
			}
		}
	}
}

// Lines returns an iterator over the segments connecting consecutive points.
// Line strings with fewer than two points have no segments. No segment is
// produced between the last and first points.
func (ls LineString[T]) Lines() iter.Seq[Line[T]] {
	return func(yield func(Line[T]) bool) {
		for i := 1; i < len(ls); i++ {
			if !yield(Line[T]{P0: ls[i-1], P1: ls[i]}) {
				return
			}
		}
	}
}

// IsClosed reports whether the first and last points are identical. Empty
// line strings are considered closed.
func (ls LineString[T]) IsClosed() bool {
	if len(ls) == 0 {
		return true
	}
	return ls[0] == ls[len(ls)-1]
}

// Close returns a closed copy of the line string, appending the first point if
// necessary.
func (ls LineString[T]) Close() LineString[T] {
	out := slices.Clone(ls)
	if !ls.IsClosed() {
		out = append(out, ls[0])
	}
	return out
}

// Reverse returns a copy of the line string with its points in reverse order.
// Reversing a ring negates its signed area.
func (ls LineString[T]) Reverse() LineString[T] {
	out := slices.Clone(ls)
	slices.Reverse(out)
	return out
}

// Translate returns a copy of the line string with every point translated by
// v.
func (ls LineString[T]) Translate(v Vec2[T]) LineString[T] {
	if ls == nil {
		return nil
	}
	out := make(LineString[T], len(ls))
	for i, pt := range ls {
		out[i] = pt.Translate(v)
	}
	return out
}

// SignedArea returns the signed area of the ring, as computed by [RingArea].
func (ls LineString[T]) SignedArea() T {
	return RingArea[T](ls)
}
