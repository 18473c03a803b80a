// Package geo provides planar and spherical computations on 2D geometries.
//
// # Geometries
//
// Algorithms in this package do not operate on concrete types. Instead, they
// accept any value that implements one of the geometry interfaces:
//
//   - [PointLike], a position with x and y coordinates
//   - [LineStringLike], an ordered sequence of points, called a ring when it
//     bounds a polygon
//   - [PolygonLike], an exterior ring followed by zero or more holes
//   - [MultiPolygonLike], a collection of polygons
//
// Line strings, polygons, and multipolygons expose their elements as
// iterators. Each call of Points, Rings, or Polygons must return a fresh
// iterator, so that algorithms can traverse a geometry more than once.
//
// The package also provides concrete implementations, [Point],
// [LineString], [Polygon], and [MultiPolygon], as well as the helper types
// [Vec2] and [Line]. The subpackages gogeom and ctgeom adapt the geometry
// types of github.com/twpayne/go-geom and github.com/ctessum/geom.
//
// All types and functions are generic over the scalar type, which must satisfy
// [Float].
//
// # Planar area
//
// [RingArea] computes the signed area of a ring using the shoelace formula, a
// discrete application of [Green's theorem]. [Area] computes the net area of a
// polygon by subtracting the areas of its holes from the area of its exterior.
//
// # Great circles
//
// [HaversineDestination] and [HaversineDistance] treat x and y as longitude
// and latitude, in degrees, on a sphere of radius [MeanEarthRadius]. Distances
// are in meters.
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to receive debug output.
//
// [Green's theorem]: https://en.wikipedia.org/wiki/Green%27s_theorem
package geo
