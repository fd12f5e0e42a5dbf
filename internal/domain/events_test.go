package domain

import (
	"math"
	"testing"
	"time"

	"github.com/keep94/sunrise"
)

func TestSunMeanLongitude(t *testing.T) {
	// NREL example instant.
	jme := JulianEphemerisMillennium(JulianEphemerisCentury(2452930.313623))
	m := SunMeanLongitude(jme)
	if m < 0 || m >= 360 {
		t.Errorf("mean longitude %.6f out of range", m)
	}
}

func TestEquationOfTimeRange(t *testing.T) {
	// EOT stays within about +-17 minutes over the year.
	jd0 := JulianDay(2021, 1, 1, 12, 0, 0, 0, 0)
	for day := 0; day < 365; day += 5 {
		ts := timeScalesFromJD(jd0+float64(day), 67)
		alpha, _, _ := geocentricSunPosition(ts)
		deltaPsi, deltaEpsilon := Nutation(ts.JCE, NewNutationArguments(ts.JCE))
		epsilon := EclipticTrueObliquity(deltaEpsilon, EclipticMeanObliquity(ts.JME))
		eot := EquationOfTime(SunMeanLongitude(ts.JME), alpha, deltaPsi, epsilon)
		if eot < -18 || eot > 18 {
			t.Errorf("day %d: equation of time %.3f min out of range", day, eot)
		}
	}
}

func TestSunHourAngleAtRiseSetSentinel(t *testing.T) {
	// Midwinter above the arctic circle: the sun never rises.
	if h := SunHourAngleAtRiseSet(89, -23, -0.8333); h != SentinelNoEvent {
		t.Errorf("polar night: hour angle = %.3f, want sentinel", h)
	}
	// Midsummer: the sun never sets.
	if h := SunHourAngleAtRiseSet(89, 23, -0.8333); h != SentinelNoEvent {
		t.Errorf("midnight sun: hour angle = %.3f, want sentinel", h)
	}
	// Equator at equinox: close to 90 degrees.
	h := SunHourAngleAtRiseSet(0, 0, -0.8333)
	if math.Abs(h-90.8333) > 1e-3 {
		t.Errorf("equator hour angle = %.4f, want ~90.8333", h)
	}
}

func TestCalculateSunEventsPolar(t *testing.T) {
	in := Input{
		Year: 2020, Month: 12, Day: 21,
		Hour: 12,
		Latitude:     78.22, // Longyearbyen
		Longitude:    15.63,
		Timezone:     1,
		DeltaT:       69.4,
		Pressure:     1000,
		Temperature:  -10,
		AtmosRefract: DefaultAtmosRefract,
	}
	ev := CalculateSunEvents(in)
	if ev != (SunEvents{
		SunriseHourAngle:   SentinelNoEvent,
		SunsetHourAngle:    SentinelNoEvent,
		SunTransitAltitude: SentinelNoEvent,
		SunTransit:         SentinelNoEvent,
		Sunrise:            SentinelNoEvent,
		Sunset:             SentinelNoEvent,
	}) {
		t.Errorf("polar night: %+v, want all sentinels", ev)
	}

	in.Month, in.Day = 6, 21
	ev = CalculateSunEvents(in)
	if ev.Sunrise != SentinelNoEvent || ev.Sunset != SentinelNoEvent {
		t.Errorf("midnight sun: sunrise=%v sunset=%v, want sentinels", ev.Sunrise, ev.Sunset)
	}
}

// Cross-check rise and set times against an independent implementation.
func TestCalculateSunEventsAgainstSunrisePackage(t *testing.T) {
	sites := []struct {
		name     string
		lat, lon float64
		tz       float64
	}{
		{"santa cruz", 36.9741, -122.0308, -8},
		{"sydney", -33.8688, 151.2093, 11},
		{"reykjavik", 64.1466, -21.9426, 0},
	}

	for _, site := range sites {
		loc := time.FixedZone(site.name, int(site.tz*3600))
		day := time.Date(2021, 1, 15, 12, 0, 0, 0, loc)

		var s sunrise.Sunrise
		s.Around(site.lat, site.lon, day)

		in := Input{
			Year: 2021, Month: 1, Day: 15,
			Hour:         12,
			Timezone:     site.tz,
			DeltaT:       69.4,
			Latitude:     site.lat,
			Longitude:    site.lon,
			Pressure:     1013,
			Temperature:  10,
			AtmosRefract: DefaultAtmosRefract,
		}
		ev := CalculateSunEvents(in)
		if ev.Sunrise == SentinelNoEvent || ev.Sunset == SentinelNoEvent {
			t.Fatalf("%s: unexpected sentinel", site.name)
		}

		// The reference package has minute-level accuracy.
		const tolHours = 5.0 / 60

		wantRise := s.Sunrise().In(loc)
		riseHour := float64(wantRise.Hour()) + float64(wantRise.Minute())/60 + float64(wantRise.Second())/3600
		if math.Abs(ev.Sunrise-riseHour) > tolHours {
			t.Errorf("%s: sunrise %.4f h, reference %.4f h", site.name, ev.Sunrise, riseHour)
		}

		wantSet := s.Sunset().In(loc)
		setHour := float64(wantSet.Hour()) + float64(wantSet.Minute())/60 + float64(wantSet.Second())/3600
		if math.Abs(ev.Sunset-setHour) > tolHours {
			t.Errorf("%s: sunset %.4f h, reference %.4f h", site.name, ev.Sunset, setHour)
		}
	}
}

func TestDayFracToLocalHour(t *testing.T) {
	tests := []struct {
		frac, tz, want float64
	}{
		{0.5, 0, 12},
		{0.5, -7, 5},
		{0.99, 2, 1.76},
		{0.01, -1, 23.24},
	}
	for _, tt := range tests {
		got := dayFracToLocalHour(tt.frac, tt.tz)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("dayFracToLocalHour(%g, %g) = %.6f, want %.6f", tt.frac, tt.tz, got, tt.want)
		}
	}
}

func TestRtsAlphaDeltaPrimeWrap(t *testing.T) {
	// Right ascension crossing 360 between samples must unwrap before
	// interpolating.
	// Both first differences fold to 0.7 degrees per day.
	ad := [3]float64{359.5, 0.2, 0.9}
	got := rtsAlphaDeltaPrime(ad, 0.5)
	if math.Abs(got-0.55) > 1e-9 {
		t.Errorf("interpolated alpha = %.6f, want 0.55", got)
	}
	// Smooth sequence interpolates between neighbors.
	ad = [3]float64{10, 11, 12}
	got = rtsAlphaDeltaPrime(ad, 0.25)
	if math.Abs(got-11.25) > 1e-9 {
		t.Errorf("interpolated value = %.6f, want 11.25", got)
	}
}
