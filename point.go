package geo

import "fmt"

// Point is a position in the plane. For geographic coordinates, X is the
// longitude and Y the latitude, in degrees.
type Point[T Float] struct {
	X T
	Y T
}

var _ PointLike[float64] = Point[float64]{}

// Pt returns the point (x, y).
func Pt[T Float](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Splat returns the point's x and y coordinates.
func (pt Point[T]) Splat() (T, T) {
	return pt.X, pt.Y
}

func (pt Point[T]) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point[T]) Translate(o Vec2[T]) Point[T] {
	return Point[T]{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Sub computes p−o.
// To subtract a vector from p, use Translate and negate the vector.
func (pt Point[T]) Sub(o Point[T]) Vec2[T] {
	return Vec2[T]{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point[T]) Lerp(o Point[T], t T) Point[T] {
	return Point[T](Vec2[T](pt).Lerp(Vec2[T](o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point[T]) Midpoint(o Point[T]) Point[T] {
	return Point[T]{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points. For the distance
// between geographic coordinates, see [Point.HaversineDistance].
func (pt Point[T]) Distance(o Point[T]) T {
	return pt.Sub(o).Hypot()
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point[T]) DistanceSquared(o Point[T]) T {
	return pt.Sub(o).Hypot2()
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point[T]) IsInf() bool {
	return isInf(pt.X) || isInf(pt.Y)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point[T]) IsNaN() bool {
	return isNaN(pt.X) || isNaN(pt.Y)
}
