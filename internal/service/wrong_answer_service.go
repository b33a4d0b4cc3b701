package service

import (
	"time"

	"github.com/google/uuid"

	"wonbyte/internal/models"
	"wonbyte/internal/storage"
)

const wrongAnswersKey = "wrong_answers"

// WrongAnswerService maintains a learner's review notebook of missed
// problems.
type WrongAnswerService struct {
	store *storage.UserStore
	now   func() time.Time
}

func NewWrongAnswerService(store *storage.UserStore) *WrongAnswerService {
	return &WrongAnswerService{store: store, now: time.Now}
}

func (s *WrongAnswerService) List() []models.WrongAnswer {
	list := []models.WrongAnswer{}
	s.store.Load(wrongAnswersKey, &list)
	return list
}

// Add records a missed problem at the front of the notebook, newest first.
func (s *WrongAnswerService) Add(entry models.WrongAnswer) []models.WrongAnswer {
	var list []models.WrongAnswer
	s.store.Update(wrongAnswersKey, func() {
		list = s.List()
		entry.ID = uuid.NewString()
		entry.AddedDate = s.now()
		entry.ReviewCount = 0
		entry.LastReviewDate = nil
		entry.Solved = false
		list = append([]models.WrongAnswer{entry}, list...)
		s.store.Save(wrongAnswersKey, list)
	})
	return list
}

// Patch applies a partial update to one note. An unknown id is a no-op.
func (s *WrongAnswerService) Patch(id string, patch models.WrongAnswerPatch) []models.WrongAnswer {
	var list []models.WrongAnswer
	s.store.Update(wrongAnswersKey, func() {
		list = s.List()
		for i := range list {
			if list[i].ID == id {
				patch.Apply(&list[i])
				s.store.Save(wrongAnswersKey, list)
				return
			}
		}
	})
	return list
}

func (s *WrongAnswerService) Remove(id string) []models.WrongAnswer {
	var list []models.WrongAnswer
	s.store.Update(wrongAnswersKey, func() {
		list = s.List()
		for i := range list {
			if list[i].ID == id {
				list = append(list[:i], list[i+1:]...)
				s.store.Save(wrongAnswersKey, list)
				return
			}
		}
	})
	return list
}

// Unsolved returns the notes still awaiting a successful retry.
func (s *WrongAnswerService) Unsolved() []models.WrongAnswer {
	out := []models.WrongAnswer{}
	for _, entry := range s.List() {
		if !entry.Solved {
			out = append(out, entry)
		}
	}
	return out
}

// RecordRetry counts one retry of a note. The note is settled either by a
// correct answer or by exhausting the retry allowance, so nothing lingers in
// the notebook forever.
func (s *WrongAnswerService) RecordRetry(id string, correct bool) []models.WrongAnswer {
	var list []models.WrongAnswer
	s.store.Update(wrongAnswersKey, func() {
		list = s.List()
		for i := range list {
			if list[i].ID != id {
				continue
			}
			list[i].ReviewCount++
			retried := s.now()
			list[i].LastReviewDate = &retried
			if correct || list[i].ReviewCount >= models.MaxRetryAttempts {
				list[i].Solved = true
			}
			s.store.Save(wrongAnswersKey, list)
			return
		}
	})
	return list
}
