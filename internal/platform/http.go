package platform

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bucketlister/internal/config"
	"bucketlister/internal/handler"
)

// HTTPAdapter serves the handler over plain HTTP for local development.
// It also exposes /health (STS liveness) and /metrics (Prometheus).
type HTTPAdapter struct {
	handler *handler.Handler
	health  *handler.HealthChecker
	metrics http.Handler
}

// NewHTTPAdapter creates a new HTTP adapter.
func NewHTTPAdapter(h *handler.Handler, health *handler.HealthChecker) *HTTPAdapter {
	return &HTTPAdapter{
		handler: h,
		health:  health,
		metrics: promhttp.Handler(),
	}
}

// ServeHTTP implements http.Handler.
func (a *HTTPAdapter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/health", "/healthz":
		a.handleHealth(w, r)
		return
	case "/metrics":
		a.metrics.ServeHTTP(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		a.handleListing(w, r)
	case http.MethodOptions:
		a.handlePreflight(w)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleListing translates the HTTP request into the platform-agnostic
// request shape and writes the envelope back out.
func (a *HTTPAdapter) handleListing(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
	}

	var params map[string]string
	if query := r.URL.Query(); len(query) > 0 {
		params = make(map[string]string, len(query))
		for key, values := range query {
			params[key] = values[0]
		}
	}

	resp := a.handler.Handle(r.Context(), handler.Request{
		ID:          requestID,
		QueryParams: params,
	})

	for key, value := range resp.Headers {
		w.Header().Set(key, value)
	}
	w.Header().Set("X-Request-ID", requestID)
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write([]byte(resp.Body))
}

// handlePreflight answers CORS preflight requests.
func (a *HTTPAdapter) handlePreflight(w http.ResponseWriter) {
	resp := handler.NewResponse(http.StatusNoContent, nil, nil)
	for key, value := range resp.Headers {
		w.Header().Set(key, value)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *HTTPAdapter) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := a.health.Check(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if status.Status != "healthy" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(status)
}

// Serve blocks, serving the adapter on the configured address.
func (a *HTTPAdapter) Serve(cfg config.HTTPConfig) error {
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           a,
		ReadHeaderTimeout: cfg.ReadTimeout,
	}
	return server.ListenAndServe()
}
