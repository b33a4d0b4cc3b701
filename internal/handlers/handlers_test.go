package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wonbyte/internal/models"
	"wonbyte/internal/storage"
)

func newTestStore() *storage.Store {
	return storage.New(storage.NewMemoryBackend())
}

// authedRequest builds a request as RequireAuth would hand it on.
func authedRequest(method, target, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	user := &models.User{ID: 1, Email: "student@example.com", Name: "하늘"}
	return r.WithContext(context.WithValue(r.Context(), UserContextKey, user))
}

func TestStatsRecordAndGet(t *testing.T) {
	h := NewStatsHandler(newTestStore())

	w := httptest.NewRecorder()
	h.Record(w, authedRequest(http.MethodPost, "/api/stats/record",
		`{"time": 10, "problemsSolved": 4, "correctAnswers": 3}`))
	if w.Code != http.StatusOK {
		t.Fatalf("record status = %d, body %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	h.GetStats(w, authedRequest(http.MethodGet, "/api/stats", ""))

	var resp struct {
		TotalTime      int `json:"totalTime"`
		ProblemsSolved int `json:"problemsSolved"`
		WeeklyStreak   int `json:"weeklyStreak"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.TotalTime != 10 || resp.ProblemsSolved != 4 {
		t.Errorf("stats = %+v", resp)
	}
	if resp.WeeklyStreak != 1 {
		t.Errorf("WeeklyStreak = %d, want 1 after recording today", resp.WeeklyStreak)
	}
}

func TestStatsRecordRejectsInconsistentDelta(t *testing.T) {
	h := NewStatsHandler(newTestStore())

	w := httptest.NewRecorder()
	h.Record(w, authedRequest(http.MethodPost, "/api/stats/record",
		`{"problemsSolved": 2, "correctAnswers": 5}`))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for correct > solved", w.Code)
	}
}

func TestSpendPointsConflict(t *testing.T) {
	h := NewGameHandler(newTestStore())

	w := httptest.NewRecorder()
	h.SpendPoints(w, authedRequest(http.MethodPost, "/api/game/points/spend", `{"cost": 50}`))
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409 on overdraft", w.Code)
	}

	w = httptest.NewRecorder()
	h.AddPoints(w, authedRequest(http.MethodPost, "/api/game/points", `{"amount": 80}`))
	if w.Code != http.StatusOK {
		t.Fatalf("add points status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	h.SpendPoints(w, authedRequest(http.MethodPost, "/api/game/points/spend", `{"cost": 50}`))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 once funded", w.Code)
	}

	var state models.GameState
	if err := json.Unmarshal(w.Body.Bytes(), &state); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if state.Points != 30 {
		t.Errorf("Points = %d, want 30", state.Points)
	}
}

func TestVocabularyAddValidation(t *testing.T) {
	h := NewVocabHandler(newTestStore())

	w := httptest.NewRecorder()
	h.Add(w, authedRequest(http.MethodPost, "/api/vocabulary", `{"meaning": "뜻만 있음"}`))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for a missing word", w.Code)
	}

	w = httptest.NewRecorder()
	h.Add(w, authedRequest(http.MethodPost, "/api/vocabulary", `{"word": "관찰", "meaning": "주의 깊게 살펴봄"}`))
	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201, body %s", w.Code, w.Body.String())
	}
}

func TestLedgersAreScopedPerUser(t *testing.T) {
	store := newTestStore()
	h := NewGameHandler(store)

	w := httptest.NewRecorder()
	h.AddPoints(w, authedRequest(http.MethodPost, "/api/game/points", `{"amount": 100}`))

	other := httptest.NewRequest(http.MethodGet, "/api/game", nil)
	otherUser := &models.User{ID: 2, Email: "other@example.com", Name: "바다"}
	other = other.WithContext(context.WithValue(other.Context(), UserContextKey, otherUser))

	w = httptest.NewRecorder()
	h.GetState(w, other)

	var state models.GameState
	if err := json.Unmarshal(w.Body.Bytes(), &state); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if state.Points != 0 {
		t.Errorf("another user's points = %d, want 0", state.Points)
	}
}
