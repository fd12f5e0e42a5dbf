package domain

import "math"

// NutationArguments holds the five lunar/solar mean-motion arguments, in
// degrees, evaluated at one Julian ephemeris century.
type NutationArguments struct {
	X0 float64 // mean elongation of the moon from the sun
	X1 float64 // mean anomaly of the sun
	X2 float64 // mean anomaly of the moon
	X3 float64 // argument of latitude of the moon
	X4 float64 // longitude of the ascending node of the moon
}

// NewNutationArguments evaluates the five cubic mean-motion polynomials at
// jce Julian ephemeris centuries.
func NewNutationArguments(jce float64) NutationArguments {
	return NutationArguments{
		X0: thirdOrderPolynomial(1.0/189474.0, -0.0019142, 445267.11148, 297.85036, jce),
		X1: thirdOrderPolynomial(-1.0/300000.0, -0.0001603, 35999.05034, 357.52772, jce),
		X2: thirdOrderPolynomial(1.0/56250.0, 0.0086972, 477198.867398, 134.96298, jce),
		X3: thirdOrderPolynomial(1.0/327270.0, -0.0036825, 483202.017538, 93.27191, jce),
		X4: thirdOrderPolynomial(1.0/450000.0, 0.0020708, -1934.136261, 125.04452, jce),
	}
}

func (x NutationArguments) combination(y [5]int) float64 {
	return float64(y[0])*x.X0 + float64(y[1])*x.X1 + float64(y[2])*x.X2 +
		float64(y[3])*x.X3 + float64(y[4])*x.X4
}

// Nutation evaluates the 63-term series and returns nutation in longitude
// and nutation in obliquity, both in degrees.
func Nutation(jce float64, x NutationArguments) (deltaPsi, deltaEpsilon float64) {
	var sumPsi, sumEpsilon float64
	for _, term := range nutationTerms {
		arg := Deg2Rad(x.combination(term.Y))
		sumPsi += (term.PsiA + term.PsiB*jce) * math.Sin(arg)
		sumEpsilon += (term.EpsA + term.EpsB*jce) * math.Cos(arg)
	}
	// 0.0001 arcsec units folded into the arcsec-to-degree divisor
	return sumPsi / 36000000.0, sumEpsilon / 36000000.0
}

// EclipticMeanObliquity returns the mean obliquity of the ecliptic in
// arcseconds as a 10th-degree polynomial in jme/10.
func EclipticMeanObliquity(jme float64) float64 {
	u := jme / 10.0
	return 84381.448 + u*(-4680.93+u*(-1.55+u*(1999.25+u*(-51.38+u*(-249.67+
		u*(-39.05+u*(7.12+u*(27.87+u*(5.79+u*2.45)))))))))
}

// EclipticTrueObliquity returns the true obliquity of the ecliptic in
// degrees from nutation in obliquity (degrees) and mean obliquity
// (arcseconds).
func EclipticTrueObliquity(deltaEpsilon, epsilon0 float64) float64 {
	return deltaEpsilon + epsilon0/3600.0
}
