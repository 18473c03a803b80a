package geo

import (
	"fmt"
	"math"
)

type Vec2[T Float] struct {
	X T
	Y T
}

// Vec returns the vector ⟨x, y⟩.
func Vec[T Float](x, y T) Vec2[T] {
	return Vec2[T]{
		X: x,
		Y: y,
	}
}

// Splat returns the vector's x and y coordinates.
func (v Vec2[T]) Splat() (T, T) {
	return v.X, v.Y
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2[T]) Dot(o Vec2[T]) T {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the cross product of v and o.
func (v Vec2[T]) Cross(o Vec2[T]) T {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the magnitude of the vector.
func (v Vec2[T]) Hypot() T {
	return T(math.Hypot(float64(v.X), float64(v.Y)))
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec2.Hypot].
func (v Vec2[T]) Hypot2() T {
	return v.Dot(v)
}

// Angle returns the angle in radians between the vector and ⟨1, 0⟩ in the positive y
// direction. This is atan2(y, x).
func (v Vec2[T]) Angle() T {
	return atan2(v.Y, v.X)
}

// Lerp linearly interpolates between two vectors.
func (v Vec2[T]) Lerp(o Vec2[T], t T) Vec2[T] {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

func (v Vec2[T]) Mul(f T) Vec2[T] {
	return Vec2[T]{
		X: v.X * f,
		Y: v.Y * f,
	}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2[T]) Negate() Vec2[T] {
	return Vec2[T]{
		X: -v.X,
		Y: -v.Y,
	}
}

// IsInf reports whether at least one of x and y is infinite.
func (v Vec2[T]) IsInf() bool {
	return isInf(v.X) || isInf(v.Y)
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vec2[T]) IsNaN() bool {
	return isNaN(v.X) || isNaN(v.Y)
}
