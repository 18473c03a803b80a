// Package gogeom exposes the geometry types of [github.com/twpayne/go-geom] as
// the geometry interfaces of package geo.
//
// Only the x and y coordinates are used. Geometries with other layouts, such
// as XYZ or XYM, are accepted and their additional dimensions are ignored. Nil
// geometries behave like empty ones.
package gogeom

import (
	"iter"
	"math"

	"github.com/twpayne/go-geom"
	"honnef.co/go/geo"
)

var (
	_ geo.PointLike[float64]        = Point{}
	_ geo.LineStringLike[float64]   = Ring{}
	_ geo.LineStringLike[float64]   = LineString{}
	_ geo.PolygonLike[float64]      = Polygon{}
	_ geo.MultiPolygonLike[float64] = MultiPolygon{}
)

// Point adapts a *geom.Point.
type Point struct{ *geom.Point }

// Splat returns the point's x and y coordinates. Nil and empty points have
// NaN coordinates.
func (p Point) Splat() (float64, float64) {
	if p.Point == nil || len(p.FlatCoords()) < 2 {
		return math.NaN(), math.NaN()
	}
	c := p.FlatCoords()
	return c[0], c[1]
}

// Ring adapts a *geom.LinearRing.
type Ring struct{ *geom.LinearRing }

// Points returns an iterator over the ring's coordinates.
func (r Ring) Points() iter.Seq[geo.PointLike[float64]] {
	if r.LinearRing == nil {
		return emptyPoints
	}
	return coords(r.LinearRing)
}

// LineString adapts a *geom.LineString.
type LineString struct{ *geom.LineString }

// Points returns an iterator over the line string's coordinates.
func (ls LineString) Points() iter.Seq[geo.PointLike[float64]] {
	if ls.LineString == nil {
		return emptyPoints
	}
	return coords(ls.LineString)
}

// Polygon adapts a *geom.Polygon. A polygon without any linear rings has no
// exterior, and computing its area fails with [geo.ErrMissingOuterRing].
type Polygon struct{ *geom.Polygon }

// Rings returns an iterator over the polygon's linear rings, exterior first.
func (p Polygon) Rings() iter.Seq[geo.LineStringLike[float64]] {
	return func(yield func(geo.LineStringLike[float64]) bool) {
		if p.Polygon == nil {
			return
		}
		for i := range p.NumLinearRings() {
			if !yield(Ring{p.LinearRing(i)}) {
				return
			}
		}
	}
}

// MultiPolygon adapts a *geom.MultiPolygon.
type MultiPolygon struct{ *geom.MultiPolygon }

// Polygons returns an iterator over the member polygons.
func (mp MultiPolygon) Polygons() iter.Seq[geo.PolygonLike[float64]] {
	return func(yield func(geo.PolygonLike[float64]) bool) {
		if mp.MultiPolygon == nil {
			return
		}
		for i := range mp.NumPolygons() {
			if !yield(Polygon{mp.Polygon(i)}) {
				return
			}
		}
	}
}

// Area returns the net area of p as computed by [geo.Area].
func Area(p *geom.Polygon) (float64, error) {
	return geo.Area[float64](Polygon{p})
}

// Destination returns the point reached by travelling distance meters from p
// along a great circle, in the direction of bearing degrees, as computed by
// [geo.HaversineDestination]. The coordinates of p must be longitude and
// latitude. The result has layout XY and the same SRID as p. Destination
// returns nil if p is nil or empty.
func Destination(p *geom.Point, bearing, distance float64) *geom.Point {
	if p == nil || len(p.FlatCoords()) < 2 {
		return nil
	}
	dst := geo.HaversineDestination[float64](Point{p}, bearing, distance)
	return geom.NewPointFlat(geom.XY, []float64{dst.X, dst.Y}).SetSRID(p.SRID())
}

type coordSeq interface {
	NumCoords() int
	Coord(i int) geom.Coord
}

func coords(g coordSeq) iter.Seq[geo.PointLike[float64]] {
	return func(yield func(geo.PointLike[float64]) bool) {
		for i := range g.NumCoords() {
			c := g.Coord(i)
			if !yield(geo.Pt(c[0], c[1])) {
				return
			}
		}
	}
}

func emptyPoints(func(geo.PointLike[float64]) bool) {}
