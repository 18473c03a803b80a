package geo

import "iter"

// PointLike describes anything that has a position in the plane. For
// geographic coordinates, x is the longitude and y is the latitude, both in
// degrees.
type PointLike[T Float] interface {
	// Splat returns the point's x and y coordinates.
	Splat() (x, y T)
}

// LineStringLike describes an ordered sequence of points. When used as the
// boundary of a polygon it is called a ring and is conventionally closed,
// meaning that its first and last points are identical.
type LineStringLike[T Float] interface {
	// Points returns an iterator over the points in order. Every call returns
	// a new iterator that starts at the first point.
	Points() iter.Seq[PointLike[T]]
}

// PolygonLike describes a polygon made up of an exterior ring and any number
// of interior rings (holes).
type PolygonLike[T Float] interface {
	// Rings returns an iterator over the polygon's rings. The first ring is
	// the exterior, all following rings are holes. The order of holes must
	// be stable. Every call returns a new iterator.
	Rings() iter.Seq[LineStringLike[T]]
}

// MultiPolygonLike describes a collection of polygons.
type MultiPolygonLike[T Float] interface {
	// Polygons returns an iterator over the polygons. Every call returns a
	// new iterator.
	Polygons() iter.Seq[PolygonLike[T]]
}
