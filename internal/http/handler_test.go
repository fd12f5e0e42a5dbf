package http

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"go.ngs.io/solar-api/internal/usecase"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return SetupRouter(usecase.NewSolarUseCase(nil, nil))
}

func doRequest(t *testing.T, router *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetPosition(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, "/v1/solar/position?lat=39.742476&lon=-105.1786"+
		"&time=2003-10-17T12:30:30-07:00&elevation=1830.14&pressure=820&temperature=11"+
		"&delta_t=67&delta_ut1=0&slope=30&azimuth_rotation=-10")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp usecase.PositionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if math.Abs(resp.ZenithDeg-50.111622) > 1e-4 {
		t.Errorf("zenith = %.6f, want 50.111622", resp.ZenithDeg)
	}
	if math.Abs(resp.AzimuthDeg-194.340241) > 1e-4 {
		t.Errorf("azimuth = %.6f, want 194.340241", resp.AzimuthDeg)
	}
	if resp.IncidenceDeg == nil || math.Abs(*resp.IncidenceDeg-25.187) > 1e-4 {
		t.Errorf("incidence = %v, want 25.187", resp.IncidenceDeg)
	}
}

func TestGetEvents(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, "/v1/solar/events?lat=39.742476&lon=-105.1786"+
		"&time=2003-10-17T12:30:30-07:00&delta_t=67&delta_ut1=0")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp usecase.EventsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Date != "2003-10-17" {
		t.Errorf("date = %q, want 2003-10-17", resp.Date)
	}
	if resp.Sunrise == nil || resp.SunTransit == nil || resp.Sunset == nil {
		t.Fatalf("expected all events, got %s", w.Body.String())
	}
	if (*resp.Sunrise)[:5] != "06:12" {
		t.Errorf("sunrise = %q, want 06:12:xx", *resp.Sunrise)
	}
	if (*resp.Sunset)[:5] != "17:20" {
		t.Errorf("sunset = %q, want 17:20:xx", *resp.Sunset)
	}
}

func TestGetEventsPolarNightNulls(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, "/v1/solar/events?lat=78.22&lon=15.63"+
		"&time=2020-12-21T12:00:00%2B01:00")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var raw map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"sunrise", "sun_transit", "sunset"} {
		if v, ok := raw[key]; !ok || v != nil {
			t.Errorf("%s = %v, want explicit null", key, v)
		}
	}
}

func TestGetPositionBadRequests(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name string
		url  string
	}{
		{"missing lat/lon", "/v1/solar/position"},
		{"bad lat", "/v1/solar/position?lat=abc&lon=0"},
		{"bad time", "/v1/solar/position?lat=0&lon=0&time=yesterday"},
		{"bad elevation", "/v1/solar/position?lat=0&lon=0&elevation=low"},
		{"lat out of range", "/v1/solar/position?lat=91&lon=0"},
		{"delta_ut1 out of range", "/v1/solar/position?lat=0&lon=0&delta_ut1=2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, tt.url)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("status = %q, want ok", resp["status"])
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter()

	// Drive one request through the middleware, then scrape.
	doRequest(t, router, "/health")
	w := doRequest(t, router, "/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, "solar_http_requests_total") {
		t.Error("metrics output missing solar_http_requests_total")
	}
}
