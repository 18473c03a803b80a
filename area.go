package geo

import (
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors"
)

// ErrMissingOuterRing is returned by [Area] for polygons that have no rings at
// all. Every polygon needs at least an exterior ring.
var ErrMissingOuterRing = errors.New("geo: missing outer ring in polygon")

// RingArea returns the signed area enclosed by a ring.
// It uses the [shoelace formula]. The area is positive for rings wound
// counter-clockwise (in a y-up coordinate system) and negative for rings wound
// clockwise.
//
// The ring is not closed implicitly: only segments between consecutive points
// contribute to the sum. For the result to be the enclosed area, the ring's
// last point must equal its first. Rings with fewer than two points have an
// area of zero.
//
// [shoelace formula]: https://en.wikipedia.org/wiki/Shoelace_formula
func RingArea[T Float](ring LineStringLike[T]) T {
	var (
		sum   T
		prev  Vec2[T]
		first = true
	)
	for pt := range ring.Points() {
		x, y := pt.Splat()
		cur := Vec2[T]{X: x, Y: y}
		if first {
			first = false
		} else {
			sum += prev.Cross(cur)
		}
		prev = cur
	}
	return sum / 2
}

// Area returns the net area of a polygon, which is the signed area of its
// exterior ring minus the signed areas of all of its holes. See [RingArea] for
// the sign convention.
//
// No winding order is imposed. Holes are expected to be wound opposite to the
// exterior, or at least consistently so that subtracting their signed areas
// removes them from the total.
//
// Area returns [ErrMissingOuterRing] if the polygon has no rings.
func Area[T Float](poly PolygonLike[T]) (T, error) {
	var (
		area  T
		outer bool
	)
	for ring := range poly.Rings() {
		if !outer {
			area = RingArea[T](ring)
			outer = true
			continue
		}
		area -= RingArea[T](ring)
	}
	if !outer {
		Logger().Debug("area of polygon without outer ring", slog.String("type", fmt.Sprintf("%T", poly)))
		return 0, errors.WithStack(ErrMissingOuterRing)
	}
	return area, nil
}
