package http

import (
	"net/http"

	"github.com/scholarhub/backend/internal/qna/service"
	"github.com/scholarhub/backend/pkg/qnasdk"
)

type AnswersHandler struct {
	Answers *service.AnswerService
	Users   *service.UserService
}

func (h *AnswersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	records, err := h.Answers.List(r.Context(), r.URL.Query().Get("question_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, records)
}

func (h *AnswersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r, h.Users)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req qnasdk.CreateAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	record, err := h.Answers.Create(r.Context(), user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, record)
}

func (h *AnswersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r, h.Users)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req qnasdk.UpdateAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	record, err := h.Answers.Update(r.Context(), user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, record)
}

func (h *AnswersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r, h.Users)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req qnasdk.DeleteAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.Answers.Delete(r.Context(), user, req.AnswerID); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, "删除成功")
}
