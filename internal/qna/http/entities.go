package http

import (
	"net/http"

	"github.com/scholarhub/backend/internal/qna/service"
	"github.com/scholarhub/backend/pkg/qnasdk"
)

// EntitiesHandler proxies scholarly-entity lookups. The remote response is
// wrapped in the envelope untouched, so clients see OpenAlex's own shape
// under data.
type EntitiesHandler struct {
	Entities *service.EntityService
}

func (h *EntitiesHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var req qnasdk.EntitySearchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.Entities.Search(r.Context(), r.PathValue("type"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, result)
}

func (h *EntitiesHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	var req qnasdk.EntityDetailRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.Entities.Detail(r.Context(), r.PathValue("type"), req.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, result)
}
