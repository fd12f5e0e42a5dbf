package domain

import "math"

// SentinelNoEvent marks transit/sunrise/sunset outputs on days when the sun
// never crosses the refraction-adjusted horizon (polar day or night).
const SentinelNoEvent = -99999.0

// SunEvents holds the rise/transit/set solution for one local calendar
// day. Times are local decimal hours; hour angles and the transit altitude
// are degrees. All fields carry SentinelNoEvent on polar day/night.
type SunEvents struct {
	SunriseHourAngle   float64
	SunsetHourAngle    float64
	SunTransitAltitude float64
	SunTransit         float64
	Sunrise            float64
	Sunset             float64
}

// SunMeanLongitude returns the Sun's mean longitude in degrees [0, 360) as
// a 5th-degree polynomial in Julian ephemeris millennia.
func SunMeanLongitude(jme float64) float64 {
	return Limit360(280.4664567 + jme*(360007.6982779+jme*(0.03032028+
		jme*(1.0/49931.0+jme*(-1.0/15300.0+jme*(-1.0/2000000.0))))))
}

// EquationOfTime returns the difference between apparent and mean solar
// time in minutes, folded into the (-20, 20) window.
func EquationOfTime(m, alphaDeg, deltaPsi, epsilon float64) float64 {
	return LimitMinutes(4.0 * (m - 0.0057183 - alphaDeg + deltaPsi*math.Cos(Deg2Rad(epsilon))))
}

// SunHourAngleAtRiseSet returns the hour angle in degrees [0, 180) at which
// the Sun's center reaches elevation h0Prime (degrees) on a day with
// geocentric declination delta0. Returns SentinelNoEvent when the Sun never
// crosses that elevation (polar day/night).
func SunHourAngleAtRiseSet(latitude, delta0, h0Prime float64) float64 {
	latRad := Deg2Rad(latitude)
	deltaRad := Deg2Rad(delta0)
	argument := (math.Sin(Deg2Rad(h0Prime)) - math.Sin(latRad)*math.Sin(deltaRad)) /
		(math.Cos(latRad) * math.Cos(deltaRad))

	if math.Abs(argument) > 1 {
		return SentinelNoEvent
	}
	return Limit180(Rad2Deg(math.Acos(argument)))
}

// rtsAlphaDeltaPrime interpolates right ascension or declination across the
// three sampled days with a second-order interpolant in n. A first
// difference of magnitude >= 2 indicates a wrap across the 0/360 boundary
// and is folded into [0, 1) before interpolating.
func rtsAlphaDeltaPrime(ad [3]float64, n float64) float64 {
	a := ad[1] - ad[0]
	b := ad[2] - ad[1]

	if math.Abs(a) >= 2.0 {
		a = LimitZeroToOne(a)
	}
	if math.Abs(b) >= 2.0 {
		b = LimitZeroToOne(b)
	}

	return ad[1] + n*(a+b+(b-a)*n)/2.0
}

// rtsSunAltitude returns the Sun's altitude in degrees for interpolated
// declination deltaPrime and local hour angle hPrime.
func rtsSunAltitude(latitude, deltaPrime, hPrime float64) float64 {
	latRad := Deg2Rad(latitude)
	deltaPrimeRad := Deg2Rad(deltaPrime)

	return Rad2Deg(math.Asin(math.Sin(latRad)*math.Sin(deltaPrimeRad) +
		math.Cos(latRad)*math.Cos(deltaPrimeRad)*math.Cos(Deg2Rad(hPrime))))
}

// rtsRiseAndSet refines the day-fraction estimate for index sun (1=rise,
// 2=set) by a first-order correction in altitude.
func rtsRiseAndSet(mRts, hRts, deltaPrime [3]float64, latitude float64, hPrime [3]float64, h0Prime float64, sun int) float64 {
	return mRts[sun] + (hRts[sun]-h0Prime)/
		(360.0*math.Cos(Deg2Rad(deltaPrime[sun]))*math.Cos(Deg2Rad(latitude))*math.Sin(Deg2Rad(hPrime[sun])))
}

// dayFracToLocalHour converts a fraction of a UT day to local decimal
// hours for the given timezone offset.
func dayFracToLocalHour(dayfrac, timezone float64) float64 {
	return 24.0 * LimitZeroToOne(dayfrac + timezone/24.0)
}

// geocentricSunPosition runs the geocentric stages of the reduction for one
// set of time scales, returning apparent geocentric right ascension and
// declination plus apparent sidereal time at Greenwich (all degrees).
func geocentricSunPosition(ts TimeScales) (alpha, delta, nu float64) {
	l := EarthHeliocentricLongitude(ts.JME)
	b := EarthHeliocentricLatitude(ts.JME)
	r := EarthRadiusVector(ts.JME)

	theta := GeocentricLongitude(l)
	beta := GeocentricLatitude(b)

	x := NewNutationArguments(ts.JCE)
	deltaPsi, deltaEpsilon := Nutation(ts.JCE, x)
	epsilon := EclipticTrueObliquity(deltaEpsilon, EclipticMeanObliquity(ts.JME))

	lamda := ApparentSunLongitude(theta, deltaPsi, AberrationCorrection(r))
	nu = GreenwichSiderealTime(GreenwichMeanSiderealTime(ts.JD, ts.JC), deltaPsi, epsilon)
	alpha = GeocentricRightAscension(lamda, epsilon, beta)
	delta = GeocentricDeclination(beta, epsilon, lamda)
	return alpha, delta, nu
}

// timeScalesFromJD builds the derived time scales directly from a Julian
// Day, used by the three-day resampling where no calendar conversion is
// needed.
func timeScalesFromJD(jd, deltaT float64) TimeScales {
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

// CalculateSunEvents locates sunrise, transit and sunset for the calendar
// day of the input by sampling the geocentric position at 0h UT on the
// previous, current and next days (deltaT=0 for the samples) and refining
// the three day-fraction estimates by quadratic interpolation. deltaT
// enters only through the interpolation parameter, per the published
// procedure.
func CalculateSunEvents(in Input) SunEvents {
	jdMidnight := JulianDay(in.Year, in.Month, in.Day, 0, 0, 0, 0, 0)

	_, _, nu := geocentricSunPosition(timeScalesFromJD(jdMidnight, in.DeltaT))

	var alpha, delta [3]float64
	for i := 0; i < 3; i++ {
		jd := jdMidnight + float64(i-1)
		a, d, _ := geocentricSunPosition(timeScalesFromJD(jd, 0))
		alpha[i], delta[i] = a, d
	}

	m0 := (alpha[1] - in.Longitude - nu) / 360.0
	h0Prime := -1 * (sunRadius + in.AtmosRefract)
	h0 := SunHourAngleAtRiseSet(in.Latitude, delta[1], h0Prime)

	if h0 < 0 {
		return SunEvents{
			SunriseHourAngle:   SentinelNoEvent,
			SunsetHourAngle:    SentinelNoEvent,
			SunTransitAltitude: SentinelNoEvent,
			SunTransit:         SentinelNoEvent,
			Sunrise:            SentinelNoEvent,
			Sunset:             SentinelNoEvent,
		}
	}

	mRts := [3]float64{
		LimitZeroToOne(m0),
		LimitZeroToOne(m0 - h0/360.0),
		LimitZeroToOne(m0 + h0/360.0),
	}

	var nuRts, hPrime, hRts [3]float64
	var alphaPrime, deltaPrime [3]float64
	for i := 0; i < 3; i++ {
		nuRts[i] = nu + 360.985647*mRts[i]
		n := mRts[i] + in.DeltaT/86400.0
		alphaPrime[i] = rtsAlphaDeltaPrime(alpha, n)
		deltaPrime[i] = rtsAlphaDeltaPrime(delta, n)
		hPrime[i] = Limit180pm(nuRts[i] + in.Longitude - alphaPrime[i])
		hRts[i] = rtsSunAltitude(in.Latitude, deltaPrime[i], hPrime[i])
	}

	return SunEvents{
		SunriseHourAngle:   hPrime[1],
		SunsetHourAngle:    hPrime[2],
		SunTransitAltitude: hRts[0],
		SunTransit:         dayFracToLocalHour(mRts[0]-hPrime[0]/360.0, in.Timezone),
		Sunrise:            dayFracToLocalHour(rtsRiseAndSet(mRts, hRts, deltaPrime, in.Latitude, hPrime, h0Prime, 1), in.Timezone),
		Sunset:             dayFracToLocalHour(rtsRiseAndSet(mRts, hRts, deltaPrime, in.Latitude, hPrime, h0Prime, 2), in.Timezone),
	}
}
