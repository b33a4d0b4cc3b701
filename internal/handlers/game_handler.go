package handlers

import (
	"net/http"
	"strconv"

	"wonbyte/internal/models"
	"wonbyte/internal/service"
	"wonbyte/internal/storage"
)

// GameHandler serves the reward ledger.
type GameHandler struct {
	store *storage.Store
}

func NewGameHandler(store *storage.Store) *GameHandler {
	return &GameHandler{store: store}
}

func (h *GameHandler) gameService(r *http.Request) *service.GameService {
	userID := strconv.FormatInt(userFrom(r).ID, 10)
	return service.NewGameService(h.store.ForUser(userID))
}

type pointsRequest struct {
	Amount int `json:"amount" validate:"required"`
}

type spendRequest struct {
	Cost int `json:"cost" validate:"required,gt=0"`
}

type expRequest struct {
	Amount int `json:"amount" validate:"required,gt=0"`
}

// GetState handles GET /api/game
func (h *GameHandler) GetState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.gameService(r).State())
}

// AddPoints handles POST /api/game/points. Negative amounts are allowed for
// corrections; the spend endpoint is the guarded path.
func (h *GameHandler) AddPoints(w http.ResponseWriter, r *http.Request) {
	var req pointsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	respondJSON(w, http.StatusOK, h.gameService(r).AddPoints(req.Amount))
}

// SpendPoints handles POST /api/game/points/spend
func (h *GameHandler) SpendPoints(w http.ResponseWriter, r *http.Request) {
	var req spendRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	state, ok := h.gameService(r).SpendPoints(req.Cost)
	if !ok {
		respondJSON(w, http.StatusConflict, map[string]interface{}{
			"error": "not enough points",
			"state": state,
		})
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// AddExp handles POST /api/game/exp
func (h *GameHandler) AddExp(w http.ResponseWriter, r *http.Request) {
	var req expRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	respondJSON(w, http.StatusOK, h.gameService(r).AddExp(req.Amount))
}

// Patch handles PATCH /api/game
func (h *GameHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var req models.GamePatch
	if !decodeJSON(w, r, &req) {
		return
	}
	respondJSON(w, http.StatusOK, h.gameService(r).Apply(req))
}

// UnlockBadge handles POST /api/game/badges/{id}
func (h *GameHandler) UnlockBadge(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.gameService(r).UnlockBadge(r.PathValue("id")))
}
