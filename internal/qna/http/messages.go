package http

import (
	"net/http"

	"github.com/scholarhub/backend/internal/qna/service"
	"github.com/scholarhub/backend/pkg/qnasdk"
)

type MessagesHandler struct {
	Messages *service.MessageService
	Users    *service.UserService
}

func (h *MessagesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r, h.Users)
	if err != nil {
		writeError(w, r, err)
		return
	}

	records, err := h.Messages.List(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, records)
}

func (h *MessagesHandler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r, h.Users)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req qnasdk.MarkMessageReadRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.Messages.MarkRead(r.Context(), user, req.MessageID); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, "已标记为已读")
}
