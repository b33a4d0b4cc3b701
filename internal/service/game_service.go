package service

import (
	"wonbyte/internal/models"
	"wonbyte/internal/storage"
)

const gameKey = "game"

// GameService maintains a learner's reward state: level, experience, points
// and badges.
type GameService struct {
	store *storage.UserStore
}

func NewGameService(store *storage.UserStore) *GameService {
	return &GameService{store: store}
}

func (s *GameService) State() models.GameState {
	snap := models.NewGameState()
	s.store.Load(gameKey, &snap)
	return snap
}

// AddPoints adjusts the point balance by amount. Negative amounts are
// accepted for raw corrections; use SpendPoints for guarded purchases.
func (s *GameService) AddPoints(amount int) models.GameState {
	var snap models.GameState
	s.store.Update(gameKey, func() {
		snap = s.State()
		snap.Points += amount
		s.store.Save(gameKey, snap)
	})
	return snap
}

// SpendPoints deducts cost from the balance. When the balance is short the
// state is left untouched and ok is false.
func (s *GameService) SpendPoints(cost int) (snap models.GameState, ok bool) {
	s.store.Update(gameKey, func() {
		snap = s.State()
		if snap.Points < cost {
			return
		}
		snap.Points -= cost
		ok = true
		s.store.Save(gameKey, snap)
	})
	return snap, ok
}

// AddExp grants experience and applies any level-ups it triggers, including
// the per-level point bonus.
func (s *GameService) AddExp(amount int) models.GameState {
	var snap models.GameState
	s.store.Update(gameKey, func() {
		snap = s.State()
		snap.Exp += amount
		snap.RollOver()
		s.store.Save(gameKey, snap)
	})
	return snap
}

// Apply merges a partial update into the state. Experience set past the
// current level's threshold rolls over as if it had been earned.
func (s *GameService) Apply(patch models.GamePatch) models.GameState {
	var snap models.GameState
	s.store.Update(gameKey, func() {
		snap = s.State()
		patch.Apply(&snap)
		snap.RollOver()
		s.store.Save(gameKey, snap)
	})
	return snap
}

// UnlockBadge awards a badge and its point bonus once. Repeat unlocks are
// no-ops.
func (s *GameService) UnlockBadge(id string) models.GameState {
	var snap models.GameState
	s.store.Update(gameKey, func() {
		snap = s.State()
		if snap.HasBadge(id) {
			return
		}
		snap.Badges = append(snap.Badges, id)
		snap.Points += models.BadgeUnlockBonus
		s.store.Save(gameKey, snap)
	})
	return snap
}
