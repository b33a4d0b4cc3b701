package handlers

import (
	"net/http"
	"strconv"

	"wonbyte/internal/models"
	"wonbyte/internal/service"
	"wonbyte/internal/storage"
)

// StatsHandler serves the learning statistics ledger.
type StatsHandler struct {
	store *storage.Store
}

func NewStatsHandler(store *storage.Store) *StatsHandler {
	return &StatsHandler{store: store}
}

func (h *StatsHandler) statsService(r *http.Request) *service.StatsService {
	userID := strconv.FormatInt(userFrom(r).ID, 10)
	return service.NewStatsService(h.store.ForUser(userID))
}

// statsResponse decorates the stored snapshot with the computed streak.
type statsResponse struct {
	models.LearningStats
	WeeklyStreak int `json:"weeklyStreak"`
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	snap := h.statsService(r).Stats()
	respondJSON(w, http.StatusOK, statsResponse{LearningStats: snap, WeeklyStreak: snap.WeeklyStreak()})
}

// Record handles POST /api/stats/record
func (h *StatsHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req service.StatsDelta
	if !decodeJSON(w, r, &req) {
		return
	}

	snap := h.statsService(r).Record(req)
	respondJSON(w, http.StatusOK, statsResponse{LearningStats: snap, WeeklyStreak: snap.WeeklyStreak()})
}

// GetToday handles GET /api/stats/today
func (h *StatsHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.statsService(r).TodayStats())
}

// GetWeekly handles GET /api/stats/weekly
func (h *StatsHandler) GetWeekly(w http.ResponseWriter, r *http.Request) {
	svc := h.statsService(r)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"days":         svc.WeeklyStats(),
		"weeklyStreak": svc.WeeklyStreak(),
	})
}
