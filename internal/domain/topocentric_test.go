package domain

import (
	"math"
	"testing"
)

func TestEquatorialHorizontalParallax(t *testing.T) {
	// 8.794 arcsec at 1 au.
	got := EquatorialHorizontalParallax(1)
	if math.Abs(got-8.794/3600) > 1e-12 {
		t.Errorf("parallax at 1 au = %.10f, want %.10f", got, 8.794/3600)
	}
}

func TestAtmosphericRefractionCorrection(t *testing.T) {
	// At the horizon under standard conditions the correction is
	// 1.02/(60 tan(10.3/5.11 deg)) degrees, about 0.48.
	got := AtmosphericRefractionCorrection(1010, 10, DefaultAtmosRefract, 0)
	want := 1.02 / (60.0 * math.Tan(Deg2Rad(10.3/5.11)))
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("refraction at horizon = %.6f, want %.6f", got, want)
	}

	// Well below the cutoff there is no correction.
	if got := AtmosphericRefractionCorrection(1010, 10, DefaultAtmosRefract, -5); got != 0 {
		t.Errorf("refraction below cutoff = %.6f, want 0", got)
	}

	// Refraction decreases with elevation.
	low := AtmosphericRefractionCorrection(1013, 15, DefaultAtmosRefract, 1)
	high := AtmosphericRefractionCorrection(1013, 15, DefaultAtmosRefract, 45)
	if low <= high {
		t.Errorf("refraction should decrease with elevation: %.6f <= %.6f", low, high)
	}
	if high <= 0 {
		t.Errorf("refraction at 45 degrees should be positive, got %.6f", high)
	}

	// At or below absolute zero the temperature term is unusable; the
	// correction degrades to zero instead of dividing by zero.
	for _, temp := range []float64{-273, -300} {
		if got := AtmosphericRefractionCorrection(1010, temp, DefaultAtmosRefract, 0); got != 0 {
			t.Errorf("refraction at %g C = %v, want 0", temp, got)
		}
	}
}

func TestTopocentricAzimuthQuadrants(t *testing.T) {
	// Sun south of an observer in the northern hemisphere at local noon
	// (hour angle 0) bears due south.
	az := TopocentricAzimuthAngle(TopocentricAzimuthAngleAstro(0, 40, -10))
	if math.Abs(az-180) > 1e-9 {
		t.Errorf("noon azimuth = %.6f, want 180", az)
	}

	// Before noon (negative hour angle) the sun is in the east.
	az = TopocentricAzimuthAngle(TopocentricAzimuthAngleAstro(-30, 40, -10))
	if az <= 90 || az >= 180 {
		t.Errorf("morning azimuth = %.4f, want between 90 and 180", az)
	}

	// After noon, the west.
	az = TopocentricAzimuthAngle(TopocentricAzimuthAngleAstro(30, 40, -10))
	if az <= 180 || az >= 270 {
		t.Errorf("afternoon azimuth = %.4f, want between 180 and 270", az)
	}
}

func TestSurfaceIncidenceAngleFlat(t *testing.T) {
	// A horizontal surface sees the incidence angle equal the zenith angle,
	// whatever its rotation.
	for _, rot := range []float64{0, 45, -120} {
		got := SurfaceIncidenceAngle(33.5, 150, rot, 0)
		if math.Abs(got-33.5) > 1e-9 {
			t.Errorf("flat surface incidence (rotation %.0f) = %.6f, want 33.5", rot, got)
		}
	}
}

func TestRightAscensionParallaxSmall(t *testing.T) {
	// At 1 au the parallax shift stays below the horizontal parallax.
	xi := EquatorialHorizontalParallax(1)
	deltaAlpha, deltaPrime := RightAscensionParallaxAndTopocentricDec(40, 1700, xi, 25, -9.3)
	if math.Abs(deltaAlpha) > xi {
		t.Errorf("parallax in RA %.6f exceeds horizontal parallax %.6f", deltaAlpha, xi)
	}
	if math.Abs(deltaPrime-(-9.3)) > xi+1e-6 {
		t.Errorf("topocentric declination %.6f too far from geocentric", deltaPrime)
	}
}
