package handlers

import (
	"net/http"
	"strconv"

	"wonbyte/internal/service"
	"wonbyte/internal/storage"
)

// ProfileHandler serves the learner profile and full-data reset.
type ProfileHandler struct {
	store       *storage.Store
	authService *service.AuthService
}

func NewProfileHandler(store *storage.Store, authService *service.AuthService) *ProfileHandler {
	return &ProfileHandler{store: store, authService: authService}
}

func (h *ProfileHandler) profileService(r *http.Request) *service.ProfileService {
	userID := strconv.FormatInt(userFrom(r).ID, 10)
	return service.NewProfileService(h.store.ForUser(userID))
}

type profileRequest struct {
	Nickname      string   `json:"nickname" validate:"max=30"`
	GradeLevel    string   `json:"gradeLevel" validate:"max=10"`
	Avatar        string   `json:"avatar" validate:"max=30"`
	Interests     []string `json:"interests" validate:"max=20,dive,max=30"`
	LearningStyle string   `json:"learningStyle" validate:"omitempty,oneof=visual auditory reading kinesthetic"`
	DailyGoal     int      `json:"dailyGoal" validate:"omitempty,min=1,max=240"`
}

// GetProfile handles GET /api/profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.profileService(r).Profile())
}

// UpdateProfile handles PUT /api/profile
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	svc := h.profileService(r)
	current := svc.Profile()
	current.Nickname = req.Nickname
	current.GradeLevel = req.GradeLevel
	current.Avatar = req.Avatar
	current.LearningStyle = req.LearningStyle
	if req.Interests != nil {
		current.Interests = req.Interests
	}
	if req.DailyGoal > 0 {
		current.DailyGoal = req.DailyGoal
	}

	respondJSON(w, http.StatusOK, svc.Save(current))
}

type guardianRequest struct {
	GuardianEmail string `json:"guardianEmail" validate:"omitempty,email"`
}

// UpdateGuardian handles PUT /api/profile/guardian. An empty address opts
// out of the weekly report.
func (h *ProfileHandler) UpdateGuardian(w http.ResponseWriter, r *http.Request) {
	var req guardianRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user := userFrom(r)
	if err := h.authService.SetGuardianEmail(user.ID, req.GuardianEmail); err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to save guardian email", "saving guardian email", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"guardianEmail": req.GuardianEmail})
}

// ResetAll handles DELETE /api/profile. It wipes every ledger the learner
// owns; the account itself survives.
func (h *ProfileHandler) ResetAll(w http.ResponseWriter, r *http.Request) {
	if !h.profileService(r).ResetAll() {
		respondWithError(w, http.StatusInternalServerError, "failed to reset learning data", "", nil)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"reset": true})
}
