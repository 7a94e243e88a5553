package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/zetaops/zetagate/observe"
)

// checkResponse is the wire form of a single check result.
type checkResponse struct {
	Status     string         `json:"status"`
	Message    string         `json:"message,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
	DurationMS int64          `json:"duration_ms"`
	Timestamp  time.Time      `json:"timestamp"`
	Error      string         `json:"error,omitempty"`
}

// statusResponse is the wire form of the aggregate status.
type statusResponse struct {
	Status string                   `json:"status"`
	Checks map[string]checkResponse `json:"checks"`
}

func toResponse(r Result) checkResponse {
	resp := checkResponse{
		Status:     r.Status.String(),
		Message:    r.Message,
		Details:    r.Details,
		DurationMS: r.Duration.Milliseconds(),
		Timestamp:  r.Timestamp,
	}
	if r.Error != nil {
		resp.Error = r.Error.Error()
	}
	return resp
}

// LivenessHandler answers liveness probes. It never runs checks: a
// process able to serve the request is alive.
func LivenessHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

// ReadinessHandler answers readiness probes by running every registered
// check. An unhealthy aggregate maps to 503.
func ReadinessHandler(agg *Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		results := agg.CheckAll(r.Context())
		status := OverallStatus(results)

		code := http.StatusOK
		if status == StatusUnhealthy {
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, map[string]string{"status": status.String()})
	})
}

// DetailedHandler returns the full check results as JSON.
func DetailedHandler(agg *Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		results := agg.CheckAll(r.Context())
		status := OverallStatus(results)

		resp := statusResponse{
			Status: status.String(),
			Checks: make(map[string]checkResponse, len(results)),
		}
		for name, res := range results {
			resp.Checks[name] = toResponse(res)
		}

		code := http.StatusOK
		if status == StatusUnhealthy {
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, resp)
	})
}

// CacheClearer is satisfied by *gateway.Gateway.
type CacheClearer interface {
	ClearCache(ctx context.Context) error
}

// CacheClearHandler invalidates the entire result cache on POST.
func CacheClearHandler(clearer CacheClearer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
			return
		}
		if err := clearer.ClearCache(r.Context()); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
	})
}

// MetricsSource is satisfied by *gateway.Gateway.
type MetricsSource interface {
	MetricsSnapshot() []observe.CallMetric
}

// CallMetricsHandler returns the recent call metrics as JSON.
func CallMetricsHandler(source MetricsSource) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics := source.MetricsSnapshot()
		if metrics == nil {
			metrics = []observe.CallMetric{}
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"count": len(metrics),
			"calls": metrics,
		})
	})
}

// Handler mounts the diagnostic surface on a mux:
//
//	GET  /healthz        liveness
//	GET  /readyz         readiness
//	GET  /health         detailed check results
//	POST /cache/clear    invalidate the result cache
//	GET  /metrics/calls  recent call metrics
func Handler(agg *Aggregator, clearer CacheClearer, source MetricsSource) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/healthz", LivenessHandler())
	mux.Handle("/readyz", ReadinessHandler(agg))
	mux.Handle("/health", DetailedHandler(agg))
	if clearer != nil {
		mux.Handle("/cache/clear", CacheClearHandler(clearer))
	}
	if source != nil {
		mux.Handle("/metrics/calls", CallMetricsHandler(source))
	}
	return mux
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
