package geo

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the constraint satisfied by all scalar types the algorithms in this
// package operate on. Computations are carried out at the precision of the
// type argument, except for transcendental functions, which are evaluated in
// float64 and rounded back to T.
type Float interface {
	constraints.Float
}

// Epsilon returns the machine epsilon of T, the difference between 1 and the
// next representable value greater than 1.
func Epsilon[T Float]() T {
	const eps64 = 0x1p-52
	const eps32 = 0x1p-23
	one := T(1)
	if T(one+T(eps64)) != one {
		return T(eps64)
	}
	return T(eps32)
}

// Radians converts an angle from degrees to radians.
func Radians[T Float](deg T) T {
	return deg * T(math.Pi/180)
}

// Degrees converts an angle from radians to degrees.
func Degrees[T Float](rad T) T {
	return rad * T(180/math.Pi)
}

func sin[T Float](x T) T      { return T(math.Sin(float64(x))) }
func cos[T Float](x T) T      { return T(math.Cos(float64(x))) }
func asin[T Float](x T) T     { return T(math.Asin(float64(x))) }
func sqrt[T Float](x T) T     { return T(math.Sqrt(float64(x))) }
func atan2[T Float](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }
func isInf[T Float](x T) bool { return math.IsInf(float64(x), 0) }
func isNaN[T Float](x T) bool { return math.IsNaN(float64(x)) }
