package geo

// MeanEarthRadius is the mean radius of the Earth in meters, as used by the
// haversine functions. The Earth is treated as a perfect sphere; for
// comparison, the WGS84 equatorial radius is 6378137 meters.
const MeanEarthRadius = 6371000.0

// HaversineDestination returns the point reached by travelling distance meters
// from origin along a great circle, starting in the direction of bearing.
//
// The origin's x and y coordinates are its longitude and latitude in degrees.
// The bearing is in degrees clockwise from north. The returned longitude is
// not normalized to [-180, 180].
//
// Non-finite inputs are not checked for and propagate into the result.
func HaversineDestination[T Float](origin PointLike[T], bearing, distance T) Point[T] {
	lng, lat := origin.Splat()
	λ1 := Radians(lng)
	φ1 := Radians(lat)
	θ := Radians(bearing)
	// Angular distance
	δ := distance / T(MeanEarthRadius)

	sinφ1, cosφ1 := sin(φ1), cos(φ1)
	sinδ, cosδ := sin(δ), cos(δ)

	φ2 := asin(sinφ1*cosδ + cosφ1*sinδ*cos(θ))
	λ2 := λ1 + atan2(sin(θ)*sinδ*cosφ1, cosδ-sinφ1*sin(φ2))

	return Point[T]{
		X: Degrees(λ2),
		Y: Degrees(φ2),
	}
}

// HaversineDistance returns the great-circle distance in meters between two
// points whose coordinates are longitude and latitude in degrees.
func HaversineDistance[T Float](a, b PointLike[T]) T {
	lng1, lat1 := a.Splat()
	lng2, lat2 := b.Splat()
	φ1, φ2 := Radians(lat1), Radians(lat2)
	Δφ := Radians(lat2 - lat1)
	Δλ := Radians(lng2 - lng1)

	sΔφ := sin(Δφ / 2)
	sΔλ := sin(Δλ / 2)
	h := sΔφ*sΔφ + cos(φ1)*cos(φ2)*sΔλ*sΔλ
	return 2 * asin(sqrt(min(h, 1))) * T(MeanEarthRadius)
}

// HaversineDestination is the method form of [HaversineDestination], with pt
// as the origin.
func (pt Point[T]) HaversineDestination(bearing, distance T) Point[T] {
	return HaversineDestination[T](pt, bearing, distance)
}

// HaversineDistance is the method form of [HaversineDistance].
func (pt Point[T]) HaversineDistance(o Point[T]) T {
	return HaversineDistance[T](pt, o)
}
