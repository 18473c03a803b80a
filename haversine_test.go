package geo

import (
	"math"
	"testing"

	"github.com/golang/geo/s2"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestHaversineDestination(t *testing.T) {
	p1 := Pt(9.177789688110352, 48.776781529534965)
	p2 := p1.HaversineDestination(45, 10000)
	diff(t, Pt(9.274410083250379, 48.84033282787534), p2, approx(1e-6))

	if d := p1.HaversineDistance(p2); !scalar.EqualWithinAbs(d, 10000, 1e-6) {
		t.Errorf("got distance %g, want 10000", d)
	}
}

func TestHaversineDestinationZeroDistance(t *testing.T) {
	p := Pt(-122.4194, 37.7749)
	for _, bearing := range []float64{0, 90, 180, 270} {
		diff(t, p, HaversineDestination[float64](p, bearing, 0), approx(1e-12))
	}
}

func TestHaversineDestinationCardinal(t *testing.T) {
	// One degree of arc along the equator or a meridian.
	deg := MeanEarthRadius * math.Pi / 180
	origin := Pt(0.0, 0.0)
	tests := []struct {
		bearing float64
		want    Point[float64]
	}{
		{0, Pt(0.0, 1.0)},
		{90, Pt(1.0, 0.0)},
		{180, Pt(0.0, -1.0)},
		{270, Pt(-1.0, 0.0)},
	}
	for _, tt := range tests {
		got := origin.HaversineDestination(tt.bearing, deg)
		diff(t, tt.want, got, approx(1e-9))
	}
}

func TestHaversineRoundTrip(t *testing.T) {
	origins := []Point[float64]{
		Pt(9.177789688110352, 48.776781529534965),
		Pt(0.0, 0.0),
		Pt(-122.4194, 37.7749),
		Pt(151.2093, -33.8688),
	}
	distances := []float64{1, 1000, 10000, 500000, 5000000}
	for _, origin := range origins {
		for bearing := 0.0; bearing < 360; bearing += 15 {
			for _, d := range distances {
				dst := origin.HaversineDestination(bearing, d)
				if got := origin.HaversineDistance(dst); !scalar.EqualWithinRel(got, d, 1e-6) {
					t.Errorf("%v, bearing %g, distance %g: got round trip distance %g", origin, bearing, d, got)
				}
			}
		}
	}
}

func TestHaversineDistanceS2(t *testing.T) {
	pairs := [][2]Point[float64]{
		{Pt(9.177789688110352, 48.776781529534965), Pt(9.274410083250379, 48.84033282787534)},
		{Pt(-0.1278, 51.5074), Pt(2.3522, 48.8566)},
		{Pt(-74.006, 40.7128), Pt(139.6917, 35.6895)},
		{Pt(0.0, 0.0), Pt(180.0, 0.0)},
	}
	for _, p := range pairs {
		a := s2.LatLngFromDegrees(p[0].Y, p[0].X)
		b := s2.LatLngFromDegrees(p[1].Y, p[1].X)
		want := a.Distance(b).Radians() * MeanEarthRadius
		if got := HaversineDistance[float64](p[0], p[1]); !scalar.EqualWithinRel(got, want, 1e-9) {
			t.Errorf("distance between %v and %v: got %g, want %g", p[0], p[1], got, want)
		}
	}
}

func TestHaversineDestinationNonFinite(t *testing.T) {
	p := Pt(10.0, 20.0)
	if dst := p.HaversineDestination(math.NaN(), 1000); !dst.IsNaN() {
		t.Errorf("NaN bearing: got %v, want NaN coordinates", dst)
	}
	if dst := p.HaversineDestination(45, math.Inf(1)); !dst.IsNaN() {
		t.Errorf("infinite distance: got %v, want NaN coordinates", dst)
	}
	if dst := Pt(math.NaN(), 20.0).HaversineDestination(45, 1000); !dst.IsNaN() {
		t.Errorf("NaN origin: got %v, want NaN coordinates", dst)
	}
}

func TestHaversineDestinationFloat32(t *testing.T) {
	p1 := Pt[float32](9.177789688110352, 48.776781529534965)
	p2 := p1.HaversineDestination(45, 10000)
	diff(t, Pt[float32](9.274410083250379, 48.84033282787534), p2, approx(1e-4))
}
