package geo

import "iter"

// Polygon is a planar surface bounded by an exterior ring, with zero or more
// interior rings describing holes.
//
// By convention the holes are wound in the opposite direction of the exterior
// ring, but no winding order is enforced.
type Polygon[T Float] struct {
	Exterior  LineString[T]
	Interiors []LineString[T]
}

var _ PolygonLike[float64] = Polygon[float64]{}

// NewPolygon returns a polygon with the given exterior ring and holes.
func NewPolygon[T Float](exterior LineString[T], interiors ...LineString[T]) Polygon[T] {
	return Polygon[T]{
		Exterior:  exterior,
		Interiors: interiors,
	}
}

// Rings returns an iterator over the exterior ring, followed by the interior
// rings in order. The exterior is always produced, even if it is empty.
func (p Polygon[T]) Rings() iter.Seq[LineStringLike[T]] {
	return func(yield func(LineStringLike[T]) bool) {
		if !yield(p.Exterior) {
			return
		}
		for _, ring := range p.Interiors {
			if !yield(ring) {
				return
			}
		}
	}
}

// Translate returns a copy of the polygon with all rings translated by v.
func (p Polygon[T]) Translate(v Vec2[T]) Polygon[T] {
	out := Polygon[T]{Exterior: p.Exterior.Translate(v)}
	if p.Interiors != nil {
		out.Interiors = make([]LineString[T], len(p.Interiors))
		for i, ring := range p.Interiors {
			out.Interiors[i] = ring.Translate(v)
		}
	}
	return out
}

// Area returns the net signed area of the polygon: the signed area of the
// exterior ring minus the signed areas of the holes. See [Area]. Unlike [Area],
// it never fails, as a Polygon always has an exterior, even if it is empty.
func (p Polygon[T]) Area() T {
	area, _ := Area[T](p)
	return area
}

// MultiPolygon is a collection of polygons.
//
// MultiPolygon has no Area method: it is undecided how overlapping members
// should be counted.
type MultiPolygon[T Float] []Polygon[T]

var _ MultiPolygonLike[float64] = MultiPolygon[float64](nil)

// Polygons returns an iterator over the member polygons.
func (mp MultiPolygon[T]) Polygons() iter.Seq[PolygonLike[T]] {
	return func(yield func(PolygonLike[T]) bool) {
		for _, p := range mp {
			if !yield(p) {
				return
			}
		}
	}
}
