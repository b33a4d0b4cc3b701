package service

import (
	"wonbyte/internal/models"
	"wonbyte/internal/storage"
)

const profileKey = "profile"

// ProfileService maintains a learner's profile settings.
type ProfileService struct {
	store *storage.UserStore
}

func NewProfileService(store *storage.UserStore) *ProfileService {
	return &ProfileService{store: store}
}

// Profile returns the stored profile, or the starter profile for a learner
// who has never saved one.
func (s *ProfileService) Profile() models.LearnerProfile {
	profile := models.DefaultProfile()
	s.store.Load(profileKey, &profile)
	return profile
}

// Save replaces the profile wholesale.
func (s *ProfileService) Save(profile models.LearnerProfile) models.LearnerProfile {
	s.store.Update(profileKey, func() {
		s.store.Save(profileKey, profile)
	})
	return profile
}

// ResetAll wipes every ledger the learner owns: profile, stats, vocabulary,
// review notes, bookmarks and game state.
func (s *ProfileService) ResetAll() bool {
	return s.store.Clear()
}
