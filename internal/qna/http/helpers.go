package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/scholarhub/backend/internal/qna/domain"
	"github.com/scholarhub/backend/internal/qna/service"
	"github.com/scholarhub/backend/pkg/httpx"
	"github.com/scholarhub/backend/pkg/qnasdk"
	"github.com/scholarhub/backend/pkg/slogx"
)

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.E(domain.ErrValidation, "请求体不是合法的JSON")
	}
	return nil
}

// currentUser resolves the authenticated subject into a full user row.
// Routes behind AuthnMiddleware always carry a subject; resolution can
// still fail when the account has been removed since the token was minted.
func currentUser(r *http.Request, users *service.UserService) (domain.User, error) {
	id := httpx.UserIDFromContext(r.Context())
	if id == "" {
		return domain.User{}, domain.E(domain.ErrForbidden, "请先登录")
	}
	return users.Resolve(r.Context(), id)
}

func writeData(w http.ResponseWriter, data any) {
	httpx.WriteJSON(w, http.StatusOK, qnasdk.Envelope{Success: true, Data: data})
}

func writeDataMessage(w http.ResponseWriter, data any, message string) {
	httpx.WriteJSON(w, http.StatusOK, qnasdk.Envelope{Success: true, Data: data, Message: message})
}

func writeMessage(w http.ResponseWriter, message string) {
	httpx.WriteJSON(w, http.StatusOK, qnasdk.Envelope{Success: true, Message: message})
}

// writeError maps an error kind onto a status code and puts the message
// into the envelope. Unclassified errors are logged and masked.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "服务器内部错误"

	switch {
	case errors.Is(err, domain.ErrValidation):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrForbidden):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrRemote):
		status, message = http.StatusBadGateway, err.Error()
	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
	}

	httpx.WriteJSON(w, status, qnasdk.Envelope{Success: false, Message: message})
}
