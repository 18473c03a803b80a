package geo_test

import (
	"fmt"
	"iter"

	"github.com/cockroachdb/errors"
	"honnef.co/go/geo"
)

func ExampleArea() {
	square := func(x0, y0, x1, y1 float64) geo.LineString[float64] {
		return geo.LineString[float64]{
			geo.Pt(x0, y0), geo.Pt(x1, y0), geo.Pt(x1, y1), geo.Pt(x0, y1), geo.Pt(x0, y0),
		}
	}
	poly := geo.NewPolygon(
		square(0, 0, 10, 10),
		// Two holes, each with an area of 1.
		square(1, 1, 2, 2),
		square(5, 5, 6, 6),
	)
	area, err := geo.Area[float64](poly)
	if err != nil {
		panic(err)
	}
	fmt.Println(area)
	// Output: 98
}

// A polygon type whose rings live in a flat coordinate slice.
type flatPolygon struct {
	coords []float64
	ends   []int
}

type flatRing []float64

func (r flatRing) Points() iter.Seq[geo.PointLike[float64]] {
	return func(yield func(geo.PointLike[float64]) bool) {
		for i := 0; i+1 < len(r); i += 2 {
			if !yield(geo.Pt(r[i], r[i+1])) {
				return
			}
		}
	}
}

func (p flatPolygon) Rings() iter.Seq[geo.LineStringLike[float64]] {
	return func(yield func(geo.LineStringLike[float64]) bool) {
		start := 0
		for _, end := range p.ends {
			if !yield(flatRing(p.coords[start:end])) {
				return
			}
			start = end
		}
	}
}

func ExampleArea_customType() {
	tri := flatPolygon{
		coords: []float64{0, 0, 4, 0, 0, 3, 0, 0},
		ends:   []int{8},
	}
	area, err := geo.Area[float64](tri)
	fmt.Println(area, err)

	_, err = geo.Area[float64](flatPolygon{})
	fmt.Println(errors.Is(err, geo.ErrMissingOuterRing))
	// Output:
	// 6 <nil>
	// true
}

func ExampleHaversineDestination() {
	stuttgart := geo.Pt(9.177789688110352, 48.776781529534965)
	dst := geo.HaversineDestination[float64](stuttgart, 45, 10000)
	fmt.Printf("%.6f %.6f\n", dst.X, dst.Y)
	fmt.Printf("%.3f\n", stuttgart.HaversineDistance(dst))
	// Output:
	// 9.274410 48.840333
	// 10000.000
}
