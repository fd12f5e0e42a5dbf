package domain

import "math"

// TimeScales holds the continuous time scales derived from one calendar
// instant. JD/JC are universal-time scales; JDE/JCE/JME are the
// terrestrial-time (deltaT-adjusted) variants used as ephemeris polynomial
// arguments.
type TimeScales struct {
	JD  float64 // Julian Day
	JC  float64 // Julian Century from J2000.0
	JDE float64 // Julian Ephemeris Day
	JCE float64 // Julian Ephemeris Century
	JME float64 // Julian Ephemeris Millennium
}

// JulianDay converts a calendar date/time to a Julian Day using the Meeus
// formula. The timezone offset (hours, east positive) and the UT1-UTC
// correction (seconds) shift the instant to UT1 before conversion. The
// Gregorian correction term is applied only past the 1582 reform threshold
// (JD 2299160), so proleptic Julian dates stay on the Julian calendar.
func JulianDay(year, month, day, hour, minute int, second, deltaUT1, timezone float64) float64 {
	dayDecimal := float64(day) + (float64(hour)-timezone+(float64(minute)+(second+deltaUT1)/60.0)/60.0)/24.0

	if month < 3 {
		month += 12
		year--
	}

	jd := math.Floor(365.25*(float64(year)+4716.0)) +
		math.Floor(30.6001*float64(month+1)) + dayDecimal - 1524.5

	if jd > 2299160.0 {
		a := math.Floor(float64(year) / 100.0)
		jd += 2 - a + math.Floor(a/4.0)
	}

	return jd
}

// JulianCentury returns Julian centuries from J2000.0 for a Julian Day.
func JulianCentury(jd float64) float64 {
	return (jd - 2451545.0) / 36525.0
}

// JulianEphemerisDay shifts a Julian Day onto the terrestrial time scale.
// deltaT is TT-UT1 in seconds.
func JulianEphemerisDay(jd, deltaT float64) float64 {
	return jd + deltaT/86400.0
}

// JulianEphemerisCentury returns Julian ephemeris centuries from J2000.0.
func JulianEphemerisCentury(jde float64) float64 {
	return (jde - 2451545.0) / 36525.0
}

// JulianEphemerisMillennium returns Julian ephemeris millennia from J2000.0.
func JulianEphemerisMillennium(jce float64) float64 {
	return jce / 10.0
}

// NewTimeScales derives all five time scales for one calendar instant.
func NewTimeScales(year, month, day, hour, minute int, second, deltaUT1, deltaT, timezone float64) TimeScales {
	jd := JulianDay(year, month, day, hour, minute, second, deltaUT1, timezone)
	jde := JulianEphemerisDay(jd, deltaT)
	jce := JulianEphemerisCentury(jde)
	return TimeScales{
		JD:  jd,
		JC:  JulianCentury(jd),
		JDE: jde,
		JCE: jce,
		JME: JulianEphemerisMillennium(jce),
	}
}
