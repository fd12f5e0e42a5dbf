package domain

import "math"

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// Limit360 wraps an angle in degrees into [0, 360).
func Limit360(deg float64) float64 {
	deg /= 360.0
	limited := 360.0 * (deg - math.Floor(deg))
	if limited < 0 {
		limited += 360.0
	}
	return limited
}

// Limit180 wraps an angle in degrees into [0, 180).
func Limit180(deg float64) float64 {
	deg /= 180.0
	limited := 180.0 * (deg - math.Floor(deg))
	if limited < 0 {
		limited += 180.0
	}
	return limited
}

// Limit180pm wraps an angle in degrees into (-180, 180].
func Limit180pm(deg float64) float64 {
	deg /= 360.0
	limited := 360.0 * (deg - math.Floor(deg))
	if limited < -180.0 {
		limited += 360.0
	} else if limited > 180.0 {
		limited -= 360.0
	}
	return limited
}

// LimitZeroToOne wraps a fractional day into [0, 1).
func LimitZeroToOne(value float64) float64 {
	limited := value - math.Floor(value)
	if limited < 0 {
		limited += 1.0
	}
	return limited
}

// LimitMinutes folds a minutes value into the (-20, 20) window by adding or
// subtracting a full day (1440 minutes). The equation of time never leaves
// this window; values outside it are day-wrap artifacts.
func LimitMinutes(minutes float64) float64 {
	limited := minutes
	if limited < -20.0 {
		limited += 1440.0
	} else if limited > 20.0 {
		limited -= 1440.0
	}
	return limited
}

// thirdOrderPolynomial evaluates a + b*x + c*x^2 + d*x^3.
func thirdOrderPolynomial(a, b, c, d, x float64) float64 {
	return ((a*x+b)*x+c)*x + d
}
