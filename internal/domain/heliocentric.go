package domain

import "math"

// earthPeriodicTermSummation sums A*cos(B + C*jme) over one term group.
func earthPeriodicTermSummation(terms []periodicTerm, jme float64) float64 {
	sum := 0.0
	for _, t := range terms {
		sum += t.A * math.Cos(t.B+t.C*jme)
	}
	return sum
}

// earthValues folds the per-power group sums into a polynomial in jme and
// removes the 1e8 table scaling.
func earthValues(termSums []float64, jme float64) float64 {
	sum := 0.0
	for i, s := range termSums {
		sum += s * math.Pow(jme, float64(i))
	}
	return sum / 1e8
}

func sumEarthSeries(groups [][]periodicTerm, jme float64) float64 {
	sums := make([]float64, len(groups))
	for i, g := range groups {
		sums[i] = earthPeriodicTermSummation(g, jme)
	}
	return earthValues(sums, jme)
}

// EarthHeliocentricLongitude returns Earth's heliocentric longitude L in
// degrees, wrapped to [0, 360).
func EarthHeliocentricLongitude(jme float64) float64 {
	return Limit360(Rad2Deg(sumEarthSeries(earthLTerms, jme)))
}

// EarthHeliocentricLatitude returns Earth's heliocentric latitude B in
// degrees.
func EarthHeliocentricLatitude(jme float64) float64 {
	return Rad2Deg(sumEarthSeries(earthBTerms, jme))
}

// EarthRadiusVector returns the Earth-Sun distance R in astronomical units.
func EarthRadiusVector(jme float64) float64 {
	return sumEarthSeries(earthRTerms, jme)
}

// GeocentricLongitude converts heliocentric longitude to geocentric
// longitude (the Sun as seen from Earth).
func GeocentricLongitude(l float64) float64 {
	theta := l + 180.0
	if theta >= 360.0 {
		theta -= 360.0
	}
	return theta
}

// GeocentricLatitude converts heliocentric latitude to geocentric latitude.
func GeocentricLatitude(b float64) float64 {
	return -b
}
