package http

import (
	"context"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log/slog"
	"net/http"
	"sort"
	"tickto/common/constant"
	"time"
)

type HealthCheck func(ctx context.Context) error

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// RegisterHealthHttp serves /health from the given dependency checks and /metrics for prometheus.
func RegisterHealthHttp(mux *http.ServeMux, timeout time.Duration, checks map[string]HealthCheck) {
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		slog.DebugContext(ctx, "health check")

		names := make([]string, 0, len(checks))
		for name := range checks {
			names = append(names, name)
		}
		sort.Strings(names)

		resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(checks))}
		for _, name := range names {
			if err := checks[name](ctx); err != nil {
				slog.WarnContext(ctx, "dependency unhealthy", slog.String("dependency", name), slog.Any(constant.LogFieldErr, err))
				resp.Status = "degraded"
				resp.Checks[name] = err.Error()
				continue
			}
			resp.Checks[name] = "ok"
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}

		writeJSONResponse(w, status, resp)
	})

	mux.Handle("GET /metrics", promhttp.Handler())
}
