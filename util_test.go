package geo

import (
	"iter"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floating point values, including the fields of points and
// vectors, with a margin of eps.
func approx(eps float64) cmp.Option {
	return cmpopts.EquateApprox(0, eps)
}

// ringless is a polygon that violates the invariant of having an exterior.
type ringless struct{}

func (ringless) Rings() iter.Seq[LineStringLike[float64]] {
	return func(func(LineStringLike[float64]) bool) {}
}

// onceRings counts how often Rings is called.
type onceRings struct {
	poly Polygon[float64]
	used *int
}

func (o onceRings) Rings() iter.Seq[LineStringLike[float64]] {
	*o.used++
	return o.poly.Rings()
}
