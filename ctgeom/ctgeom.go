// Package ctgeom exposes the geometry types of [github.com/ctessum/geom] as the
// geometry interfaces of package geo.
//
// The types in this package are defined on the corresponding geom types and
// values can be converted freely, without copying. For example:
//
//	area, err := geo.Area[float64](ctgeom.Polygon(poly))
package ctgeom

import (
	"iter"

	"github.com/ctessum/geom"
	"honnef.co/go/geo"
)

var (
	_ geo.PointLike[float64]        = Point{}
	_ geo.LineStringLike[float64]   = Path(nil)
	_ geo.LineStringLike[float64]   = LineString(nil)
	_ geo.PolygonLike[float64]      = Polygon(nil)
	_ geo.MultiPolygonLike[float64] = MultiPolygon(nil)
)

// Point is a position with longitude and latitude, or easting and northing.
type Point geom.Point

// Splat returns the point's x and y coordinates.
func (p Point) Splat() (float64, float64) {
	return p.X, p.Y
}

// Path is a ring of a polygon.
type Path geom.Path

// Points returns an iterator over the path's points.
func (p Path) Points() iter.Seq[geo.PointLike[float64]] {
	return points(p)
}

// LineString is an open sequence of points.
type LineString geom.LineString

// Points returns an iterator over the line string's points.
func (ls LineString) Points() iter.Seq[geo.PointLike[float64]] {
	return points(ls)
}

// Polygon is a polygon whose first path is the exterior and whose remaining
// paths are holes. A polygon without paths has no exterior, and computing its
// area fails with [geo.ErrMissingOuterRing].
type Polygon geom.Polygon

// Rings returns an iterator over the polygon's paths.
func (p Polygon) Rings() iter.Seq[geo.LineStringLike[float64]] {
	return func(yield func(geo.LineStringLike[float64]) bool) {
		for _, path := range p {
			if !yield(Path(path)) {
				return
			}
		}
	}
}

// MultiPolygon is a collection of polygons.
type MultiPolygon geom.MultiPolygon

// Polygons returns an iterator over the member polygons.
func (mp MultiPolygon) Polygons() iter.Seq[geo.PolygonLike[float64]] {
	return func(yield func(geo.PolygonLike[float64]) bool) {
		for _, p := range mp {
			if !yield(Polygon(p)) {
				return
			}
		}
	}
}

// Area returns the net area of p as computed by [geo.Area].
//
// Note that unlike geom.Polygon.Area, the result is signed and holes are
// subtracted according to their winding.
func Area(p geom.Polygon) (float64, error) {
	return geo.Area[float64](Polygon(p))
}

// Destination returns the point reached by travelling distance meters from p
// along a great circle, in the direction of bearing degrees. The coordinates of
// p must be longitude and latitude.
func Destination(p geom.Point, bearing, distance float64) geom.Point {
	return geom.Point(geo.HaversineDestination[float64](Point(p), bearing, distance))
}

func points[S ~[]geom.Point](s S) iter.Seq[geo.PointLike[float64]] {
	return func(yield func(geo.PointLike[float64]) bool) {
		for _, pt := range s {
			if !yield(Point(pt)) {
				return
			}
		}
	}
}
