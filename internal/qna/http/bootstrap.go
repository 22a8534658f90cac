package http

import (
	"net/http"

	"github.com/scholarhub/backend/internal/qna/service"
	"github.com/scholarhub/backend/pkg/httpx"
	"github.com/scholarhub/backend/pkg/qnasdk"
	"github.com/scholarhub/backend/pkg/slogx"
)

type BootstrapHandler struct {
	Bootstrap *service.BootstrapService
}

func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slogx.FromContext(r.Context()).Info("bootstrap requested")

	var req qnasdk.BootstrapRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.Bootstrap.Bootstrap(r.Context(), r.Header.Get("X-Bootstrap-Token"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, qnasdk.Envelope{Success: true, Data: resp})
}
