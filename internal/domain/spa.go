// Package domain implements the published Solar Positioning Algorithm
// (SPA, Reda & Andreas, NREL/TP-560-34302): the apparent position of the
// sun (zenith, azimuth, surface incidence) and solar events (transit,
// sunrise, sunset, equation of time) for an observer at a given terrestrial
// location and instant.
//
// The whole package is a stateless numerical transform. Coefficient tables
// are process-wide immutable constants; one Calculate invocation owns its
// Intermediate exclusively, so batch workloads parallelize at the caller's
// discretion with no coordination.
package domain

import "fmt"

// DefaultAtmosRefract is the typical refraction at the horizon in degrees.
const DefaultAtmosRefract = 0.5667

// Input is the observer instant and site for one calculation. Calendar
// fields are local time; Timezone is the UTC offset in hours (east
// positive). DeltaUT1 is UT1-UTC in fractional seconds; DeltaT is TT-UT1 in
// seconds.
type Input struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second float64

	Timezone float64
	DeltaUT1 float64
	DeltaT   float64

	Longitude float64 // degrees, east positive, [-180, 180]
	Latitude  float64 // degrees, north positive, [-90, 90]
	Elevation float64 // meters above sea level

	Pressure    float64 // millibars
	Temperature float64 // Celsius

	Slope           float64 // surface tilt, degrees
	AzimuthRotation float64 // surface azimuth rotation from south, degrees
	AtmosRefract    float64 // refraction at the horizon, degrees
}

// Options toggles independent parts of the calculation.
type Options struct {
	// ComputeIncidence controls the surface incidence angle.
	ComputeIncidence bool
	// ComputeSunEvents controls equation of time and rise/transit/set.
	ComputeSunEvents bool
	// ValidateInputs rejects out-of-range inputs before computing. With
	// validation off no range checks run and accuracy is unspecified
	// outside the documented ranges.
	ValidateInputs bool
}

// DefaultOptions enables everything.
func DefaultOptions() Options {
	return Options{
		ComputeIncidence: true,
		ComputeSunEvents: true,
		ValidateInputs:   true,
	}
}

// Intermediate is the full derived-scalar snapshot of one calculation,
// populated strictly in pipeline order and never mutated after a field is
// set. A caller may pass one to Calculate as reusable scratch; it is owned
// by that invocation until Calculate returns.
type Intermediate struct {
	Scales TimeScales

	L float64 // Earth heliocentric longitude, degrees
	B float64 // Earth heliocentric latitude, degrees
	R float64 // Earth radius vector, AU

	Theta float64 // geocentric longitude, degrees
	Beta  float64 // geocentric latitude, degrees

	X            NutationArguments
	DeltaPsi     float64 // nutation in longitude, degrees
	DeltaEpsilon float64 // nutation in obliquity, degrees
	Epsilon0     float64 // mean obliquity, arcseconds
	Epsilon      float64 // true obliquity, degrees

	DeltaTau float64 // aberration correction, degrees
	Lamda    float64 // apparent sun longitude, degrees
	Nu0      float64 // Greenwich mean sidereal time, degrees
	Nu       float64 // Greenwich apparent sidereal time, degrees

	Alpha float64 // geocentric right ascension, degrees
	Delta float64 // geocentric declination, degrees

	H          float64 // observer hour angle, degrees
	Xi         float64 // equatorial horizontal parallax, degrees
	DeltaAlpha float64 // parallax in right ascension, degrees
	AlphaPrime float64 // topocentric right ascension, degrees
	DeltaPrime float64 // topocentric declination, degrees
	HPrime     float64 // topocentric local hour angle, degrees

	E0     float64 // topocentric elevation, uncorrected, degrees
	DeltaE float64 // refraction correction, degrees
	E      float64 // topocentric elevation, corrected, degrees

	EOT float64 // equation of time, minutes

	Events SunEvents
}

// Output is the requested result set of one calculation. Incidence is
// present iff ComputeIncidence; the event times are present iff
// ComputeSunEvents and carry SentinelNoEvent on polar day/night.
type Output struct {
	Zenith       float64 // degrees
	AzimuthAstro float64 // degrees, westward from south
	Azimuth      float64 // degrees, eastward from north

	Incidence *float64 // degrees

	SunTransit *float64 // local decimal hours
	Sunrise    *float64 // local decimal hours
	Sunset     *float64 // local decimal hours
}

// Validate checks every input against its documented range and reports the
// first violation with the offending field, received value and expected
// range. The latitude bound is the physical [-90, 90].
func (in Input) Validate() error {
	if in.Year < -2000 || in.Year > 6000 {
		return fmt.Errorf("year %d out of range [-2000, 6000]", in.Year)
	}
	if in.Month < 1 || in.Month > 12 {
		return fmt.Errorf("month %d out of range [1, 12]", in.Month)
	}
	if in.Day < 1 || in.Day > 31 {
		return fmt.Errorf("day %d out of range [1, 31]", in.Day)
	}
	if in.Hour < 0 || in.Hour > 24 {
		return fmt.Errorf("hour %d out of range [0, 24]", in.Hour)
	}
	if in.Minute < 0 || in.Minute > 59 {
		return fmt.Errorf("minute %d out of range [0, 59]", in.Minute)
	}
	if in.Second < 0 || in.Second >= 60 {
		return fmt.Errorf("second %g out of range [0, 60)", in.Second)
	}
	if in.Hour == 24 && (in.Minute > 0 || in.Second > 0) {
		return fmt.Errorf("hour 24 with minute %d and second %g is not a valid instant", in.Minute, in.Second)
	}
	if in.Timezone < -18 || in.Timezone > 18 {
		return fmt.Errorf("timezone %g out of range [-18, 18] hours", in.Timezone)
	}
	if in.DeltaUT1 <= -1 || in.DeltaUT1 >= 1 {
		return fmt.Errorf("deltaUT1 %g out of range (-1, 1) seconds", in.DeltaUT1)
	}
	if in.DeltaT < -8000 || in.DeltaT > 8000 {
		return fmt.Errorf("deltaT %g out of range [-8000, 8000] seconds", in.DeltaT)
	}
	if in.Longitude < -180 || in.Longitude > 180 {
		return fmt.Errorf("longitude %g out of range [-180, 180] degrees", in.Longitude)
	}
	if in.Latitude < -90 || in.Latitude > 90 {
		return fmt.Errorf("latitude %g out of range [-90, 90] degrees", in.Latitude)
	}
	if in.Elevation < -6500000 {
		return fmt.Errorf("elevation %g below minimum -6500000 meters", in.Elevation)
	}
	if in.Pressure < 0 || in.Pressure > 5000 {
		return fmt.Errorf("pressure %g out of range [0, 5000] millibars", in.Pressure)
	}
	if in.Temperature <= -273 || in.Temperature > 6000 {
		return fmt.Errorf("temperature %g out of range (-273, 6000] Celsius", in.Temperature)
	}
	if in.Slope < -360 || in.Slope > 360 {
		return fmt.Errorf("slope %g out of range [-360, 360] degrees", in.Slope)
	}
	if in.AzimuthRotation < -360 || in.AzimuthRotation > 360 {
		return fmt.Errorf("azimuth rotation %g out of range [-360, 360] degrees", in.AzimuthRotation)
	}
	if in.AtmosRefract > 5 {
		return fmt.Errorf("atmospheric refraction %g above maximum 5 degrees", in.AtmosRefract)
	}
	return nil
}

// Calculate runs the full reduction pipeline for one input snapshot. A
// non-nil scratch avoids reallocating the Intermediate across repeated
// calls and receives the final snapshot; pass nil when intermediate values
// are not needed.
func Calculate(in Input, opts Options, scratch *Intermediate) (Output, error) {
	if opts.ValidateInputs {
		if err := in.Validate(); err != nil {
			return Output{}, err
		}
	}

	var local Intermediate
	s := scratch
	if s == nil {
		s = &local
	}

	s.Scales = NewTimeScales(in.Year, in.Month, in.Day, in.Hour, in.Minute,
		in.Second, in.DeltaUT1, in.DeltaT, in.Timezone)

	s.L = EarthHeliocentricLongitude(s.Scales.JME)
	s.B = EarthHeliocentricLatitude(s.Scales.JME)
	s.R = EarthRadiusVector(s.Scales.JME)

	s.Theta = GeocentricLongitude(s.L)
	s.Beta = GeocentricLatitude(s.B)

	s.X = NewNutationArguments(s.Scales.JCE)
	s.DeltaPsi, s.DeltaEpsilon = Nutation(s.Scales.JCE, s.X)
	s.Epsilon0 = EclipticMeanObliquity(s.Scales.JME)
	s.Epsilon = EclipticTrueObliquity(s.DeltaEpsilon, s.Epsilon0)

	s.DeltaTau = AberrationCorrection(s.R)
	s.Lamda = ApparentSunLongitude(s.Theta, s.DeltaPsi, s.DeltaTau)
	s.Nu0 = GreenwichMeanSiderealTime(s.Scales.JD, s.Scales.JC)
	s.Nu = GreenwichSiderealTime(s.Nu0, s.DeltaPsi, s.Epsilon)

	s.Alpha = GeocentricRightAscension(s.Lamda, s.Epsilon, s.Beta)
	s.Delta = GeocentricDeclination(s.Beta, s.Epsilon, s.Lamda)

	s.H = ObserverHourAngle(s.Nu, in.Longitude, s.Alpha)
	s.Xi = EquatorialHorizontalParallax(s.R)
	s.DeltaAlpha, s.DeltaPrime = RightAscensionParallaxAndTopocentricDec(
		in.Latitude, in.Elevation, s.Xi, s.H, s.Delta)
	s.AlphaPrime = TopocentricRightAscension(s.Alpha, s.DeltaAlpha)
	s.HPrime = TopocentricLocalHourAngle(s.H, s.DeltaAlpha)

	s.E0 = TopocentricElevationAngle(in.Latitude, s.DeltaPrime, s.HPrime)
	s.DeltaE = AtmosphericRefractionCorrection(in.Pressure, in.Temperature,
		in.AtmosRefract, s.E0)
	s.E = TopocentricElevationAngleCorrected(s.E0, s.DeltaE)

	var out Output
	out.Zenith = TopocentricZenithAngle(s.E)
	out.AzimuthAstro = TopocentricAzimuthAngleAstro(s.HPrime, in.Latitude, s.DeltaPrime)
	out.Azimuth = TopocentricAzimuthAngle(out.AzimuthAstro)

	if opts.ComputeIncidence {
		incidence := SurfaceIncidenceAngle(out.Zenith, out.AzimuthAstro,
			in.AzimuthRotation, in.Slope)
		out.Incidence = &incidence
	}

	if opts.ComputeSunEvents {
		s.EOT = EquationOfTime(SunMeanLongitude(s.Scales.JME), s.Alpha,
			s.DeltaPsi, s.Epsilon)
		s.Events = CalculateSunEvents(in)

		transit, sunrise, sunset := s.Events.SunTransit, s.Events.Sunrise, s.Events.Sunset
		out.SunTransit = &transit
		out.Sunrise = &sunrise
		out.Sunset = &sunset
	}

	return out, nil
}
