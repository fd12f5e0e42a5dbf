package domain

import "math"

const (
	// sunRadius is the Sun's mean angular radius in degrees.
	sunRadius = 0.26667

	// earthRadiusM is the Earth's equatorial radius in meters, used by the
	// flattened-Earth parallax terms.
	earthRadiusM = 6378140.0

	// earthFlattening relates geodetic to geocentric latitude.
	earthFlattening = 0.99664719
)

// ObserverHourAngle returns the local hour angle of the Sun in degrees
// [0, 360) from apparent sidereal time nu, observer longitude and
// geocentric right ascension alphaDeg (all degrees).
func ObserverHourAngle(nu, longitude, alphaDeg float64) float64 {
	return Limit360(nu + longitude - alphaDeg)
}

// EquatorialHorizontalParallax returns the Sun's equatorial horizontal
// parallax in degrees for an Earth-Sun distance r in astronomical units.
func EquatorialHorizontalParallax(r float64) float64 {
	return 8.794 / (3600.0 * r)
}

// RightAscensionParallaxAndTopocentricDec applies the flattened-Earth
// parallax correction for an observer at the given latitude (degrees) and
// elevation (meters). It returns the parallax in right ascension deltaAlpha
// and the topocentric declination deltaPrime, both in degrees.
func RightAscensionParallaxAndTopocentricDec(latitude, elevation, xi, h, delta float64) (deltaAlpha, deltaPrime float64) {
	latRad := Deg2Rad(latitude)
	xiRad := Deg2Rad(xi)
	hRad := Deg2Rad(h)
	deltaRad := Deg2Rad(delta)

	u := math.Atan(earthFlattening * math.Tan(latRad))
	y := earthFlattening*math.Sin(u) + elevation*math.Sin(latRad)/earthRadiusM
	x := math.Cos(u) + elevation*math.Cos(latRad)/earthRadiusM

	deltaAlphaRad := math.Atan2(-x*math.Sin(xiRad)*math.Sin(hRad),
		math.Cos(deltaRad)-x*math.Sin(xiRad)*math.Cos(hRad))

	deltaPrime = Rad2Deg(math.Atan2((math.Sin(deltaRad)-y*math.Sin(xiRad))*math.Cos(deltaAlphaRad),
		math.Cos(deltaRad)-x*math.Sin(xiRad)*math.Cos(hRad)))

	return Rad2Deg(deltaAlphaRad), deltaPrime
}

// TopocentricRightAscension shifts geocentric right ascension by the
// parallax in right ascension, degrees.
func TopocentricRightAscension(alphaDeg, deltaAlpha float64) float64 {
	return alphaDeg + deltaAlpha
}

// TopocentricLocalHourAngle shifts the observer hour angle by the parallax
// in right ascension, degrees.
func TopocentricLocalHourAngle(h, deltaAlpha float64) float64 {
	return h - deltaAlpha
}

// TopocentricElevationAngle returns the uncorrected topocentric elevation
// of the Sun in degrees from observer latitude, topocentric declination and
// topocentric local hour angle (all degrees).
func TopocentricElevationAngle(latitude, deltaPrime, hPrime float64) float64 {
	latRad := Deg2Rad(latitude)
	deltaPrimeRad := Deg2Rad(deltaPrime)

	return Rad2Deg(math.Asin(math.Sin(latRad)*math.Sin(deltaPrimeRad) +
		math.Cos(latRad)*math.Cos(deltaPrimeRad)*math.Cos(Deg2Rad(hPrime))))
}

// AtmosphericRefractionCorrection returns the refraction correction in
// degrees for pressure (millibars), temperature (Celsius), the horizon
// refraction constant atmosRefract (degrees) and the uncorrected elevation
// e0 (degrees). Below -(sunRadius + atmosRefract) the Sun is far enough
// under the horizon that refraction is not modeled and the correction is
// zero. The threshold must match the rise/set solver's horizon exactly or
// elevations near the horizon become discontinuous.
func AtmosphericRefractionCorrection(pressure, temperature, atmosRefract, e0 float64) float64 {
	if e0 < -1*(sunRadius+atmosRefract) {
		return 0
	}
	if 273.0+temperature <= 0 {
		// Unphysical temperature with validation disabled; without the
		// guard the correction blows up at -273 C.
		return 0
	}
	return (pressure / 1010.0) * (283.0 / (273.0 + temperature)) *
		1.02 / (60.0 * math.Tan(Deg2Rad(e0+10.3/(e0+5.11))))
}

// TopocentricElevationAngleCorrected applies the refraction correction.
func TopocentricElevationAngleCorrected(e0, deltaE float64) float64 {
	return e0 + deltaE
}

// TopocentricZenithAngle converts corrected elevation to zenith angle.
func TopocentricZenithAngle(e float64) float64 {
	return 90.0 - e
}

// TopocentricAzimuthAngleAstro returns the astronomer's azimuth (westward
// from south) in degrees [0, 360).
func TopocentricAzimuthAngleAstro(hPrime, latitude, deltaPrime float64) float64 {
	hPrimeRad := Deg2Rad(hPrime)
	latRad := Deg2Rad(latitude)

	return Limit360(Rad2Deg(math.Atan2(math.Sin(hPrimeRad),
		math.Cos(hPrimeRad)*math.Sin(latRad)-math.Tan(Deg2Rad(deltaPrime))*math.Cos(latRad))))
}

// TopocentricAzimuthAngle returns the navigator's azimuth (eastward from
// north) in degrees [0, 360).
func TopocentricAzimuthAngle(azimuthAstro float64) float64 {
	return Limit360(azimuthAstro + 180.0)
}

// SurfaceIncidenceAngle returns the angle of incidence on a surface tilted
// by slope degrees and rotated azmRotation degrees from south, measured
// from the surface normal.
func SurfaceIncidenceAngle(zenith, azimuthAstro, azmRotation, slope float64) float64 {
	zenithRad := Deg2Rad(zenith)
	slopeRad := Deg2Rad(slope)

	return Rad2Deg(math.Acos(math.Cos(zenithRad)*math.Cos(slopeRad) +
		math.Sin(slopeRad)*math.Sin(zenithRad)*math.Cos(Deg2Rad(azimuthAstro-azmRotation))))
}
