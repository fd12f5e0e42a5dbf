// Package main computes solar position and day events at the command line.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"go.ngs.io/solar-api/internal/adapter/store/deltat"
	"go.ngs.io/solar-api/internal/domain"
)

func main() {
	var (
		timeStr     string
		lat         float64
		lon         float64
		elev        float64
		pressure    float64
		temperature float64
		deltaT      float64
		deltaUT1    float64
		slope       float64
		azmRotation float64
		verbose     bool
	)

	flag.StringVar(&timeStr, "time", "", "Observation time, RFC3339 (default: now)")
	flag.Float64Var(&lat, "lat", 0, "Latitude in degrees, north positive")
	flag.Float64Var(&lon, "lon", 0, "Longitude in degrees, east positive")
	flag.Float64Var(&elev, "elevation", 0, "Observer elevation in meters")
	flag.Float64Var(&pressure, "pressure", 1013.25, "Annual average pressure in millibars")
	flag.Float64Var(&temperature, "temperature", 12, "Annual average temperature in Celsius")
	flag.Float64Var(&deltaT, "delta_t", 0, "TT-UT1 in seconds (default: estimated from the date)")
	flag.Float64Var(&deltaUT1, "delta_ut1", 0, "UT1-UTC in seconds (default: estimated from the date)")
	flag.Float64Var(&slope, "slope", 0, "Surface slope in degrees")
	flag.Float64Var(&azmRotation, "azimuth_rotation", 0, "Surface azimuth rotation from south in degrees")
	flag.BoolVar(&verbose, "v", false, "Print intermediate values")
	flag.Parse()

	instant := time.Now()
	if timeStr != "" {
		var err error
		instant, err = time.Parse(time.RFC3339, timeStr)
		if err != nil {
			log.Fatalf("invalid -time (expected RFC3339): %v", err)
		}
	}

	_, offsetSec := instant.Zone()
	in := domain.Input{
		Year:            instant.Year(),
		Month:           int(instant.Month()),
		Day:             instant.Day(),
		Hour:            instant.Hour(),
		Minute:          instant.Minute(),
		Second:          float64(instant.Second()),
		Timezone:        float64(offsetSec) / 3600.0,
		Longitude:       lon,
		Latitude:        lat,
		Elevation:       elev,
		Pressure:        pressure,
		Temperature:     temperature,
		Slope:           slope,
		AzimuthRotation: azmRotation,
		AtmosRefract:    domain.DefaultAtmosRefract,
	}
	if deltaT != 0 {
		in.DeltaT = deltaT
	} else {
		in.DeltaT = deltat.Estimate(in.Year, in.Month)
	}
	if deltaUT1 != 0 {
		in.DeltaUT1 = deltaUT1
	} else {
		in.DeltaUT1 = deltat.EstimateDUT1(in.Year, in.Month)
	}

	var inter domain.Intermediate
	out, err := domain.Calculate(in, domain.DefaultOptions(), &inter)
	if err != nil {
		log.Fatalf("calculation failed: %v", err)
	}

	fmt.Printf("Time:            %s\n", instant.Format(time.RFC3339))
	fmt.Printf("Location:        %.6f, %.6f (%.1f m)\n", lat, lon, elev)
	fmt.Printf("Delta-T:         %.1f s\n", in.DeltaT)
	fmt.Printf("Delta-UT1:       %+.2f s\n", in.DeltaUT1)
	fmt.Println()
	fmt.Printf("Zenith:          %.6f deg\n", out.Zenith)
	fmt.Printf("Elevation angle: %.6f deg\n", 90-out.Zenith)
	fmt.Printf("Azimuth:         %.6f deg (E of N)\n", out.Azimuth)
	if out.Incidence != nil {
		fmt.Printf("Incidence:       %.6f deg\n", *out.Incidence)
	}
	fmt.Println()
	fmt.Printf("Equation of time: %+.4f min\n", inter.EOT)
	fmt.Printf("Sunrise:          %s\n", formatEvent(out.Sunrise))
	fmt.Printf("Transit:          %s\n", formatEvent(out.SunTransit))
	fmt.Printf("Sunset:           %s\n", formatEvent(out.Sunset))

	if verbose {
		printIntermediate(&inter)
	}
}

// formatEvent renders a local decimal hour as HH:MM:SS.
func formatEvent(hours *float64) string {
	if hours == nil || *hours == domain.SentinelNoEvent {
		return "none (polar day/night)"
	}
	total := int(*hours * 3600)
	total = ((total % 86400) + 86400) % 86400
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}

func printIntermediate(i *domain.Intermediate) {
	fmt.Println()
	fmt.Printf("Julian day:               %.6f\n", i.Scales.JD)
	fmt.Printf("Heliocentric longitude:   %.8f deg\n", i.L)
	fmt.Printf("Heliocentric latitude:    %.8f deg\n", i.B)
	fmt.Printf("Radius vector:            %.8f AU\n", i.R)
	fmt.Printf("Nutation (longitude):     %.8f deg\n", i.DeltaPsi)
	fmt.Printf("Nutation (obliquity):     %.8f deg\n", i.DeltaEpsilon)
	fmt.Printf("True obliquity:           %.8f deg\n", i.Epsilon)
	fmt.Printf("Apparent sun longitude:   %.8f deg\n", i.Lamda)
	fmt.Printf("Right ascension:          %.8f deg\n", i.Alpha)
	fmt.Printf("Declination:              %.8f deg\n", i.Delta)
	fmt.Printf("Observer hour angle:      %.8f deg\n", i.H)
	fmt.Printf("Topocentric RA:           %.8f deg\n", i.AlphaPrime)
	fmt.Printf("Topocentric declination:  %.8f deg\n", i.DeltaPrime)
	fmt.Printf("Topocentric hour angle:   %.8f deg\n", i.HPrime)
	fmt.Printf("Refraction correction:    %.8f deg\n", i.DeltaE)
}
