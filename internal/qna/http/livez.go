package http

import (
	"net/http"
	"time"

	"github.com/scholarhub/backend/pkg/httpx"
	"github.com/scholarhub/backend/pkg/qnasdk"
)

// LivezHandler always answers 200 while the process is up.
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, qnasdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
