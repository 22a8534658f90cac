package http

import (
	"net/http"
	"time"

	"github.com/scholarhub/backend/internal/qna/cache"
	"github.com/scholarhub/backend/internal/qna/store"
	"github.com/scholarhub/backend/pkg/httpx"
	"github.com/scholarhub/backend/pkg/qnasdk"
)

// ReadyzHandler reports whether the store and cache backends are reachable.
// A degraded dependency answers 503 so load balancers stop routing here.
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	c cache.Cache,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{
			"database": "ok",
			"cache":    "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks["database"] = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if err := c.Ping(r.Context()); err != nil {
			checks["cache"] = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, qnasdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
