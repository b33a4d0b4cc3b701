package handlers

import (
	"net/http"
	"strconv"

	"wonbyte/internal/excel"
	"wonbyte/internal/models"
	"wonbyte/internal/service"
	"wonbyte/internal/storage"
)

// VocabHandler serves the vocabulary ledger, including bulk xlsx import.
type VocabHandler struct {
	store *storage.Store
}

func NewVocabHandler(store *storage.Store) *VocabHandler {
	return &VocabHandler{store: store}
}

func (h *VocabHandler) vocabService(r *http.Request) *service.VocabService {
	userID := strconv.FormatInt(userFrom(r).ID, 10)
	return service.NewVocabService(h.store.ForUser(userID))
}

type addVocabularyRequest struct {
	Word       string   `json:"word" validate:"required,max=50"`
	Meaning    string   `json:"meaning" validate:"required,max=500"`
	Etymology  string   `json:"etymology" validate:"max=500"`
	Synonyms   []string `json:"synonyms" validate:"max=20,dive,max=50"`
	Antonyms   []string `json:"antonyms" validate:"max=20,dive,max=50"`
	Difficulty int      `json:"difficulty" validate:"omitempty,min=1,max=5"`
	Example    string   `json:"example" validate:"max=500"`
}

type reviewRequest struct {
	Correct bool `json:"correct"`
}

// List handles GET /api/vocabulary
func (h *VocabHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.vocabService(r).List())
}

// Add handles POST /api/vocabulary
func (h *VocabHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addVocabularyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	list := h.vocabService(r).Add(models.VocabularyEntry{
		Word:       req.Word,
		Meaning:    req.Meaning,
		Etymology:  req.Etymology,
		Synonyms:   req.Synonyms,
		Antonyms:   req.Antonyms,
		Difficulty: req.Difficulty,
		Example:    req.Example,
	})
	respondJSON(w, http.StatusCreated, list)
}

// Patch handles PATCH /api/vocabulary/{id}
func (h *VocabHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var req models.VocabularyPatch
	if !decodeJSON(w, r, &req) {
		return
	}
	respondJSON(w, http.StatusOK, h.vocabService(r).Patch(r.PathValue("id"), req))
}

// Remove handles DELETE /api/vocabulary/{id}
func (h *VocabHandler) Remove(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.vocabService(r).Remove(r.PathValue("id")))
}

// Unmastered handles GET /api/vocabulary/unmastered
func (h *VocabHandler) Unmastered(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.vocabService(r).Unmastered())
}

// Review handles POST /api/vocabulary/{id}/review
func (h *VocabHandler) Review(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	respondJSON(w, http.StatusOK, h.vocabService(r).RecordReview(r.PathValue("id"), req.Correct))
}

// Import handles POST /api/vocabulary/import: a multipart upload with an
// xlsx word list under the "file" field. Rows duplicating an existing word
// are counted as skipped.
func (h *VocabHandler) Import(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid multipart upload", "parsing upload", err)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "missing file field", "reading upload", err)
		return
	}
	defer file.Close()

	entries, result, err := excel.ParseVocabulary(file)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "could not read spreadsheet", "parsing spreadsheet", err)
		return
	}

	svc := h.vocabService(r)
	list := svc.List()
	count := len(list)
	for _, entry := range entries {
		list = svc.Add(entry)
		if len(list) == count {
			result.Parsed--
			result.Skipped++
			result.Errors = append(result.Errors, "duplicate word: "+entry.Word)
			continue
		}
		count = len(list)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"result": result,
		"words":  list,
	})
}
