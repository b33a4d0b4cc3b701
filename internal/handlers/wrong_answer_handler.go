package handlers

import (
	"net/http"
	"strconv"

	"wonbyte/internal/models"
	"wonbyte/internal/service"
	"wonbyte/internal/storage"
)

// WrongAnswerHandler serves the retry notebook.
type WrongAnswerHandler struct {
	store *storage.Store
}

func NewWrongAnswerHandler(store *storage.Store) *WrongAnswerHandler {
	return &WrongAnswerHandler{store: store}
}

func (h *WrongAnswerHandler) wrongAnswerService(r *http.Request) *service.WrongAnswerService {
	userID := strconv.FormatInt(userFrom(r).ID, 10)
	return service.NewWrongAnswerService(h.store.ForUser(userID))
}

type addWrongAnswerRequest struct {
	Question      string `json:"question" validate:"required,max=1000"`
	UserAnswer    string `json:"userAnswer" validate:"max=500"`
	CorrectAnswer string `json:"correctAnswer" validate:"required,max=500"`
	Type          string `json:"type" validate:"max=30"`
	Context       string `json:"context" validate:"max=2000"`
	Explanation   string `json:"explanation" validate:"max=2000"`
}

type retryRequest struct {
	Correct bool `json:"correct"`
}

// List handles GET /api/review-notes
func (h *WrongAnswerHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.wrongAnswerService(r).List())
}

// Add handles POST /api/review-notes
func (h *WrongAnswerHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addWrongAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	list := h.wrongAnswerService(r).Add(models.WrongAnswer{
		Question:      req.Question,
		UserAnswer:    req.UserAnswer,
		CorrectAnswer: req.CorrectAnswer,
		Type:          req.Type,
		Context:       req.Context,
		Explanation:   req.Explanation,
	})
	respondJSON(w, http.StatusCreated, list)
}

// Patch handles PATCH /api/review-notes/{id}
func (h *WrongAnswerHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var req models.WrongAnswerPatch
	if !decodeJSON(w, r, &req) {
		return
	}
	respondJSON(w, http.StatusOK, h.wrongAnswerService(r).Patch(r.PathValue("id"), req))
}

// Remove handles DELETE /api/review-notes/{id}
func (h *WrongAnswerHandler) Remove(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.wrongAnswerService(r).Remove(r.PathValue("id")))
}

// Unsolved handles GET /api/review-notes/unsolved
func (h *WrongAnswerHandler) Unsolved(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.wrongAnswerService(r).Unsolved())
}

// Retry handles POST /api/review-notes/{id}/retry
func (h *WrongAnswerHandler) Retry(w http.ResponseWriter, r *http.Request) {
	var req retryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	respondJSON(w, http.StatusOK, h.wrongAnswerService(r).RecordRetry(r.PathValue("id"), req.Correct))
}
