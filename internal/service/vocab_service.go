package service

import (
	"time"

	"github.com/google/uuid"

	"wonbyte/internal/models"
	"wonbyte/internal/storage"
)

const vocabularyKey = "vocabulary"

// VocabService maintains a learner's personal word list.
type VocabService struct {
	store *storage.UserStore
	now   func() time.Time
}

func NewVocabService(store *storage.UserStore) *VocabService {
	return &VocabService{store: store, now: time.Now}
}

func (s *VocabService) List() []models.VocabularyEntry {
	list := []models.VocabularyEntry{}
	s.store.Load(vocabularyKey, &list)
	return list
}

// Add appends a new word unless the same word (exact match) is already in
// the list, in which case the list is returned unchanged. Server-managed
// fields on the incoming entry are overwritten.
func (s *VocabService) Add(entry models.VocabularyEntry) []models.VocabularyEntry {
	var list []models.VocabularyEntry
	s.store.Update(vocabularyKey, func() {
		list = s.List()
		for _, existing := range list {
			if existing.Word == entry.Word {
				return
			}
		}
		entry.ID = uuid.NewString()
		entry.AddedDate = s.now()
		entry.ReviewCount = 0
		entry.CorrectCount = 0
		entry.LastReviewDate = nil
		entry.Mastered = false
		if entry.Difficulty < 1 || entry.Difficulty > 5 {
			entry.Difficulty = 3
		}
		if entry.Synonyms == nil {
			entry.Synonyms = []string{}
		}
		if entry.Antonyms == nil {
			entry.Antonyms = []string{}
		}
		list = append(list, entry)
		s.store.Save(vocabularyKey, list)
	})
	return list
}

// Patch applies a partial update to one entry. An unknown id is a no-op.
func (s *VocabService) Patch(id string, patch models.VocabularyPatch) []models.VocabularyEntry {
	var list []models.VocabularyEntry
	s.store.Update(vocabularyKey, func() {
		list = s.List()
		for i := range list {
			if list[i].ID == id {
				patch.Apply(&list[i])
				s.store.Save(vocabularyKey, list)
				return
			}
		}
	})
	return list
}

func (s *VocabService) Remove(id string) []models.VocabularyEntry {
	var list []models.VocabularyEntry
	s.store.Update(vocabularyKey, func() {
		list = s.List()
		for i := range list {
			if list[i].ID == id {
				list = append(list[:i], list[i+1:]...)
				s.store.Save(vocabularyKey, list)
				return
			}
		}
	})
	return list
}

// Unmastered returns the words still being learned, for review sessions.
func (s *VocabService) Unmastered() []models.VocabularyEntry {
	out := []models.VocabularyEntry{}
	for _, entry := range s.List() {
		if !entry.Mastered {
			out = append(out, entry)
		}
	}
	return out
}

// RecordReview counts one review of a word. Three correct answers mark the
// word mastered; mastery is never revoked here.
func (s *VocabService) RecordReview(id string, correct bool) []models.VocabularyEntry {
	var list []models.VocabularyEntry
	s.store.Update(vocabularyKey, func() {
		list = s.List()
		for i := range list {
			if list[i].ID != id {
				continue
			}
			list[i].ReviewCount++
			if correct {
				list[i].CorrectCount++
			}
			reviewed := s.now()
			list[i].LastReviewDate = &reviewed
			if list[i].CorrectCount >= models.MasteryThreshold {
				list[i].Mastered = true
			}
			s.store.Save(vocabularyKey, list)
			return
		}
	})
	return list
}
