package handlers

import (
	"net/http"
	"strconv"

	"wonbyte/internal/models"
	"wonbyte/internal/service"
	"wonbyte/internal/storage"
)

// BookmarkHandler serves saved reading passages.
type BookmarkHandler struct {
	store *storage.Store
}

func NewBookmarkHandler(store *storage.Store) *BookmarkHandler {
	return &BookmarkHandler{store: store}
}

func (h *BookmarkHandler) bookmarkService(r *http.Request) *service.BookmarkService {
	userID := strconv.FormatInt(userFrom(r).ID, 10)
	return service.NewBookmarkService(h.store.ForUser(userID))
}

type addBookmarkRequest struct {
	Title      string   `json:"title" validate:"required,max=200"`
	Content    string   `json:"content" validate:"required,max=10000"`
	GradeLevel string   `json:"gradeLevel" validate:"max=10"`
	Tags       []string `json:"tags" validate:"max=20,dive,max=30"`
}

// List handles GET /api/bookmarks
func (h *BookmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.bookmarkService(r).List())
}

// Add handles POST /api/bookmarks
func (h *BookmarkHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addBookmarkRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	list := h.bookmarkService(r).Add(models.Bookmark{
		Title:      req.Title,
		Content:    req.Content,
		GradeLevel: req.GradeLevel,
		Tags:       req.Tags,
	})
	respondJSON(w, http.StatusCreated, list)
}

// Remove handles DELETE /api/bookmarks/{id}
func (h *BookmarkHandler) Remove(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.bookmarkService(r).Remove(r.PathValue("id")))
}

// Use handles POST /api/bookmarks/{id}/use
func (h *BookmarkHandler) Use(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.bookmarkService(r).Use(r.PathValue("id")))
}
