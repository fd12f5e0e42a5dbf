package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"go.ngs.io/solar-api/internal/usecase"
)

// Handler handles HTTP requests for solar position and events.
type Handler struct {
	solarUC *usecase.SolarUseCase
}

// NewHandler creates a new HTTP handler.
func NewHandler(solarUC *usecase.SolarUseCase) *Handler {
	return &Handler{
		solarUC: solarUC,
	}
}

// parseRequest builds a PositionRequest from the shared query parameters
// of the position and events endpoints.
func parseRequest(c *gin.Context) (usecase.PositionRequest, bool) {
	var req usecase.PositionRequest

	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon parameters are required"})
		return req, false
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid latitude: %v", err)})
		return req, false
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid longitude: %v", err)})
		return req, false
	}
	req.Lat = lat
	req.Lon = lon

	// Time defaults to now (UTC). The zone offset of the value carries
	// through to local event times.
	if timeStr := c.Query("time"); timeStr != "" {
		instant, err := time.Parse(time.RFC3339, timeStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid time (expected RFC3339): %v", err)})
			return req, false
		}
		req.Time = instant
	} else {
		req.Time = time.Now().UTC()
	}

	optional := []struct {
		name string
		dst  **float64
	}{
		{"elevation", &req.Elevation},
		{"pressure", &req.Pressure},
		{"temperature", &req.Temperature},
		{"delta_t", &req.DeltaT},
		{"delta_ut1", &req.DeltaUT1},
	}
	for _, p := range optional {
		if s := c.Query(p.name); s != "" {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid %s: %v", p.name, err)})
				return req, false
			}
			*p.dst = &v
		}
	}

	if s := c.Query("slope"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid slope: %v", err)})
			return req, false
		}
		req.Slope = v
	}
	if s := c.Query("azimuth_rotation"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid azimuth_rotation: %v", err)})
			return req, false
		}
		req.AzimuthRotation = v
	}

	return req, true
}

// GetPosition handles GET /v1/solar/position.
func (h *Handler) GetPosition(c *gin.Context) {
	req, ok := parseRequest(c)
	if !ok {
		return
	}

	response, err := h.solarUC.Position(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetEvents handles GET /v1/solar/events.
func (h *Handler) GetEvents(c *gin.Context) {
	req, ok := parseRequest(c)
	if !ok {
		return
	}

	response, err := h.solarUC.Events(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
