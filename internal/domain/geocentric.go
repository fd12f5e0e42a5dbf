package domain

import "math"

// AberrationCorrection returns the annual aberration correction in degrees
// for an Earth-Sun distance r in astronomical units.
func AberrationCorrection(r float64) float64 {
	return -20.4898 / (3600.0 * r)
}

// ApparentSunLongitude combines geocentric longitude, nutation in longitude
// and aberration, all in degrees.
func ApparentSunLongitude(theta, deltaPsi, deltaTau float64) float64 {
	return theta + deltaPsi + deltaTau
}

// GreenwichMeanSiderealTime returns the mean sidereal time at Greenwich in
// degrees, wrapped to [0, 360).
func GreenwichMeanSiderealTime(jd, jc float64) float64 {
	return Limit360(280.46061837 + 360.98564736629*(jd-2451545.0) +
		jc*jc*(0.000387933-jc/38710000.0))
}

// GreenwichSiderealTime corrects mean sidereal time for nutation, giving
// apparent sidereal time at Greenwich in degrees.
func GreenwichSiderealTime(nu0, deltaPsi, epsilon float64) float64 {
	return nu0 + deltaPsi*math.Cos(Deg2Rad(epsilon))
}

// GeocentricRightAscension returns the Sun's geocentric right ascension in
// degrees [0, 360) from apparent longitude lamda, true obliquity epsilon
// and geocentric latitude beta (all degrees).
func GeocentricRightAscension(lamda, epsilon, beta float64) float64 {
	lamdaRad := Deg2Rad(lamda)
	epsilonRad := Deg2Rad(epsilon)

	return Limit360(Rad2Deg(math.Atan2(
		math.Sin(lamdaRad)*math.Cos(epsilonRad)-math.Tan(Deg2Rad(beta))*math.Sin(epsilonRad),
		math.Cos(lamdaRad))))
}

// GeocentricDeclination returns the Sun's geocentric declination in degrees
// from geocentric latitude beta, true obliquity epsilon and apparent
// longitude lamda (all degrees).
func GeocentricDeclination(beta, epsilon, lamda float64) float64 {
	betaRad := Deg2Rad(beta)
	epsilonRad := Deg2Rad(epsilon)

	return Rad2Deg(math.Asin(math.Sin(betaRad)*math.Cos(epsilonRad) +
		math.Cos(betaRad)*math.Sin(epsilonRad)*math.Sin(Deg2Rad(lamda))))
}
