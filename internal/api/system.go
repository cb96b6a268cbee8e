package api

import (
	"net/http"
	"time"
)

// HealthResponse reports the liveness of the server and its dependencies.
type HealthResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// handleHealth returns the server health status.
//
// The store check exercises the image directory; MQTT and InfluxDB report
// connection state, or "disabled" when not configured. The endpoint always
// answers 200 so fleet monitors can read the per-component detail — the
// overall status field flips to "degraded" when any check fails.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	status := "ok"
	checks := make(map[string]string)

	if err := s.store.HealthCheck(ctx); err != nil {
		checks["store"] = "error"
		status = "degraded"
	} else {
		checks["store"] = "ok"
	}

	switch {
	case s.mqtt == nil:
		checks["mqtt"] = "disabled"
	case s.mqtt.IsConnected():
		checks["mqtt"] = "ok"
	default:
		checks["mqtt"] = "disconnected"
		status = "degraded"
	}

	switch {
	case s.influx == nil:
		checks["influxdb"] = "disabled"
	case s.influx.HealthCheck(ctx) == nil:
		checks["influxdb"] = "ok"
	default:
		checks["influxdb"] = "error"
		status = "degraded"
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    status,
		Version:   s.version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
	})
}
