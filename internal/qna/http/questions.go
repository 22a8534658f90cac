package http

import (
	"net/http"

	"github.com/scholarhub/backend/internal/qna/service"
	"github.com/scholarhub/backend/pkg/qnasdk"
)

type QuestionsHandler struct {
	Questions *service.QuestionService
	Users     *service.UserService
}

func (h *QuestionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	records, err := h.Questions.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, records)
}

func (h *QuestionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r, h.Users)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req qnasdk.CreateQuestionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	record, err := h.Questions.Create(r.Context(), user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeDataMessage(w, record, "问题已发表")
}

func (h *QuestionsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r, h.Users)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req qnasdk.UpdateQuestionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	record, err := h.Questions.Update(r.Context(), user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, record)
}

func (h *QuestionsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r, h.Users)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req qnasdk.DeleteQuestionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.Questions.Delete(r.Context(), user, req.QuestionID); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, "删除成功")
}
