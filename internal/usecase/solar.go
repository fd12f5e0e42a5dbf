package usecase

import (
	"fmt"
	"math"
	"time"

	"go.ngs.io/solar-api/internal/adapter/store/deltat"
	"go.ngs.io/solar-api/internal/adapter/store/elevation"
	"go.ngs.io/solar-api/internal/domain"
)

// Default observing conditions applied when a request does not carry its
// own values.
const (
	DefaultPressure    = 1013.25 // millibars
	DefaultTemperature = 12.0    // Celsius
)

// PositionRequest encapsulates a solar position request.
type PositionRequest struct {
	// Instant of observation. The zone offset of the value is used as the
	// local timezone for sunrise/transit/sunset output.
	Time time.Time

	// Observer location.
	Lat float64
	Lon float64

	// Optional parameters; nil selects a default (DEM lookup for
	// elevation, delta-T table/estimate for DeltaT).
	Elevation   *float64
	Pressure    *float64
	Temperature *float64
	DeltaT      *float64
	DeltaUT1    *float64

	// Panel orientation for the incidence angle. Zero values describe a
	// horizontal surface.
	Slope           float64
	AzimuthRotation float64
}

// PositionResponse contains the computed solar position.
type PositionResponse struct {
	Time         string   `json:"time"`
	ZenithDeg    float64  `json:"zenith_deg"`
	ElevationDeg float64  `json:"elevation_deg"`
	AzimuthDeg   float64  `json:"azimuth_deg"`
	// Azimuth measured westward from south, the astronomers' convention.
	AzimuthAstroDeg float64  `json:"azimuth_astro_deg"`
	IncidenceDeg    *float64 `json:"incidence_deg,omitempty"`

	Meta map[string]string `json:"meta"`
}

// EventsResponse contains sunrise, transit and sunset for the local
// calendar day of the request. Event fields are local clock times in
// HH:MM:SS form and are null in polar day/night.
type EventsResponse struct {
	Date     string `json:"date"`
	Timezone string `json:"timezone"`

	Sunrise    *string `json:"sunrise"`
	SunTransit *string `json:"sun_transit"`
	Sunset     *string `json:"sunset"`

	TransitAltitudeDeg *float64 `json:"transit_altitude_deg"`
	EquationOfTimeMin  float64  `json:"equation_of_time_min"`

	Meta map[string]string `json:"meta"`
}

// SolarUseCase orchestrates solar position and event computation.
type SolarUseCase struct {
	elevationStore elevation.Store // may be nil
	deltaTSource   *deltat.Source
}

// NewSolarUseCase creates a new solar use case. elevationStore may be nil,
// in which case requests without an elevation assume sea level.
func NewSolarUseCase(elevationStore elevation.Store, deltaTSource *deltat.Source) *SolarUseCase {
	return &SolarUseCase{
		elevationStore: elevationStore,
		deltaTSource:   deltaTSource,
	}
}

// Validate checks if the request is valid.
func (r *PositionRequest) Validate() error {
	if r.Time.IsZero() {
		return fmt.Errorf("time must be provided")
	}
	if r.Lat < -90 || r.Lat > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if r.Lon < -180 || r.Lon > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	if r.Pressure != nil && (*r.Pressure < 0 || *r.Pressure > 5000) {
		return fmt.Errorf("pressure must be between 0 and 5000 millibars")
	}
	if r.Temperature != nil && (*r.Temperature <= -273 || *r.Temperature > 6000) {
		return fmt.Errorf("temperature must be between -273 and 6000 Celsius")
	}
	if r.Elevation != nil && *r.Elevation < -6500000 {
		return fmt.Errorf("elevation must be above -6500000 meters")
	}
	if r.DeltaT != nil && math.Abs(*r.DeltaT) > 8000 {
		return fmt.Errorf("delta_t must be between -8000 and 8000 seconds")
	}
	if r.DeltaUT1 != nil && math.Abs(*r.DeltaUT1) >= 1 {
		return fmt.Errorf("delta_ut1 must be between -1 and 1 seconds")
	}
	if math.Abs(r.Slope) > 360 {
		return fmt.Errorf("slope must be between -360 and 360")
	}
	if math.Abs(r.AzimuthRotation) > 360 {
		return fmt.Errorf("azimuth rotation must be between -360 and 360")
	}
	return nil
}

// Position computes the topocentric solar position for the request.
func (uc *SolarUseCase) Position(req PositionRequest) (*PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	in, meta, err := uc.buildInput(req)
	if err != nil {
		return nil, err
	}

	opts := domain.DefaultOptions()
	opts.ComputeSunEvents = false
	out, err := domain.Calculate(in, opts, nil)
	if err != nil {
		return nil, fmt.Errorf("position calculation failed: %w", err)
	}

	resp := &PositionResponse{
		Time:            req.Time.Format(time.RFC3339),
		ZenithDeg:       roundToDecimal(out.Zenith, 6),
		ElevationDeg:    roundToDecimal(90-out.Zenith, 6),
		AzimuthDeg:      roundToDecimal(out.Azimuth, 6),
		AzimuthAstroDeg: roundToDecimal(out.AzimuthAstro, 6),
		Meta:            meta,
	}
	if out.Incidence != nil {
		incidence := roundToDecimal(*out.Incidence, 6)
		resp.IncidenceDeg = &incidence
	}
	return resp, nil
}

// Events computes sunrise, transit and sunset for the local calendar day
// of the request.
func (uc *SolarUseCase) Events(req PositionRequest) (*EventsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	in, meta, err := uc.buildInput(req)
	if err != nil {
		return nil, err
	}

	var inter domain.Intermediate
	out, err := domain.Calculate(in, domain.DefaultOptions(), &inter)
	if err != nil {
		return nil, fmt.Errorf("event calculation failed: %w", err)
	}

	resp := &EventsResponse{
		Date:              req.Time.Format("2006-01-02"),
		Timezone:          req.Time.Format("-07:00"),
		Sunrise:           formatEventTime(out.Sunrise),
		SunTransit:        formatEventTime(out.SunTransit),
		Sunset:            formatEventTime(out.Sunset),
		EquationOfTimeMin: roundToDecimal(inter.EOT, 4),
		Meta:              meta,
	}
	if inter.Events.SunTransitAltitude != domain.SentinelNoEvent {
		alt := roundToDecimal(inter.Events.SunTransitAltitude, 4)
		resp.TransitAltitudeDeg = &alt
	}
	return resp, nil
}

// buildInput converts a request into calculation input, filling elevation
// and delta-T defaults from the configured stores.
func (uc *SolarUseCase) buildInput(req PositionRequest) (domain.Input, map[string]string, error) {
	meta := map[string]string{
		"model": "spa_v1",
	}

	_, offsetSec := req.Time.Zone()
	timezone := float64(offsetSec) / 3600.0

	in := domain.Input{
		Year:            req.Time.Year(),
		Month:           int(req.Time.Month()),
		Day:             req.Time.Day(),
		Hour:            req.Time.Hour(),
		Minute:          req.Time.Minute(),
		Second:          float64(req.Time.Second()) + float64(req.Time.Nanosecond())/1e9,
		Timezone:        timezone,
		Longitude:       req.Lon,
		Latitude:        req.Lat,
		Pressure:        DefaultPressure,
		Temperature:     DefaultTemperature,
		Slope:           req.Slope,
		AzimuthRotation: req.AzimuthRotation,
		AtmosRefract:    domain.DefaultAtmosRefract,
	}
	if req.Pressure != nil {
		in.Pressure = *req.Pressure
	}
	if req.Temperature != nil {
		in.Temperature = *req.Temperature
	}

	switch {
	case req.Elevation != nil:
		in.Elevation = *req.Elevation
		meta["elevation_source"] = "request"
	case uc.elevationStore != nil:
		elev, err := uc.elevationStore.ElevationAt(req.Lat, req.Lon)
		if err != nil {
			return domain.Input{}, nil, fmt.Errorf("failed to resolve elevation for (%.4f, %.4f): %w", req.Lat, req.Lon, err)
		}
		in.Elevation = elev
		meta["elevation_source"] = "dem"
	default:
		meta["elevation_source"] = "sea_level"
	}

	if req.DeltaT != nil {
		in.DeltaT = *req.DeltaT
		meta["delta_t_source"] = "request"
	} else if uc.deltaTSource != nil {
		value, fromTable := uc.deltaTSource.DeltaT(in.Year, in.Month)
		in.DeltaT = value
		if fromTable {
			meta["delta_t_source"] = "table"
		} else {
			meta["delta_t_source"] = "estimate"
		}
	} else {
		in.DeltaT = deltat.Estimate(in.Year, in.Month)
		meta["delta_t_source"] = "estimate"
	}
	meta["delta_t_s"] = fmt.Sprintf("%.1f", in.DeltaT)

	if req.DeltaUT1 != nil {
		in.DeltaUT1 = *req.DeltaUT1
		meta["delta_ut1_source"] = "request"
	} else {
		in.DeltaUT1 = deltat.EstimateDUT1(in.Year, in.Month)
		meta["delta_ut1_source"] = "estimate"
	}
	meta["delta_ut1_s"] = fmt.Sprintf("%.2f", in.DeltaUT1)

	return in, meta, nil
}

// formatEventTime renders a local decimal hour as HH:MM:SS, or nil for the
// no-event sentinel.
func formatEventTime(hours *float64) *string {
	if hours == nil || *hours == domain.SentinelNoEvent {
		return nil
	}
	total := int(math.Round(*hours * 3600))
	// Rounding can push 23:59:59.5 into the next day.
	total = ((total % 86400) + 86400) % 86400
	s := fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
	return &s
}

// roundToDecimal rounds to the given number of decimal places.
func roundToDecimal(val float64, precision int) float64 {
	multiplier := math.Pow(10, float64(precision))
	return math.Round(val*multiplier) / multiplier
}
