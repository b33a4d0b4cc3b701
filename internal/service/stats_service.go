package service

import (
	"time"

	"wonbyte/internal/models"
	"wonbyte/internal/storage"
)

const statsKey = "stats"

// StatsService maintains a learner's cumulative and per-day study statistics.
type StatsService struct {
	store *storage.UserStore
	now   func() time.Time
}

func NewStatsService(store *storage.UserStore) *StatsService {
	return &StatsService{store: store, now: time.Now}
}

// StatsDelta is one study session's worth of increments. Zero fields leave
// the corresponding totals unchanged.
type StatsDelta struct {
	Sessions          int `json:"sessions" validate:"min=0"`
	Time              int `json:"time" validate:"min=0"`
	TextsRead         int `json:"textsRead" validate:"min=0"`
	VocabularyLearned int `json:"vocabularyLearned" validate:"min=0"`
	ProblemsSolved    int `json:"problemsSolved" validate:"min=0"`
	CorrectAnswers    int `json:"correctAnswers" validate:"min=0,ltefield=ProblemsSolved"`
}

// Stats returns the current snapshot, or a fresh zero snapshot when nothing
// has been recorded yet.
func (s *StatsService) Stats() models.LearningStats {
	snap := models.NewLearningStats()
	s.store.Load(statsKey, &snap)
	return snap
}

// Record applies a session delta to both the cumulative totals and today's
// bucket, and stamps today as the last study date.
func (s *StatsService) Record(delta StatsDelta) models.LearningStats {
	var snap models.LearningStats
	s.store.Update(statsKey, func() {
		snap = s.Stats()
		today := s.now().Format(models.DateLayout)
		bucket := snap.Bucket(today)

		snap.TotalSessions += delta.Sessions
		snap.TotalTime += delta.Time
		snap.TextsRead += delta.TextsRead
		snap.VocabularyLearned += delta.VocabularyLearned
		snap.ProblemsSolved += delta.ProblemsSolved
		snap.CorrectAnswers += delta.CorrectAnswers

		bucket.Time += delta.Time
		bucket.Texts += delta.TextsRead
		bucket.Vocabulary += delta.VocabularyLearned
		bucket.Problems += delta.ProblemsSolved
		bucket.Correct += delta.CorrectAnswers

		snap.LastStudyDate = today
		s.store.Save(statsKey, snap)
	})
	return snap
}

// TodayStats returns today's bucket, zero-valued when nothing was recorded
// today.
func (s *StatsService) TodayStats() models.DailyStats {
	snap := s.Stats()
	if bucket, ok := snap.Daily[s.now().Format(models.DateLayout)]; ok {
		return *bucket
	}
	return models.DailyStats{}
}

// WeeklyStats returns the last seven days in chronological order, ending
// today. Days without activity appear as zero buckets so charts stay aligned.
func (s *StatsService) WeeklyStats() []models.DayStats {
	snap := s.Stats()
	today := s.now()

	week := make([]models.DayStats, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		date := day.Format(models.DateLayout)
		entry := models.DayStats{Date: date, Label: models.WeekdayLabel(day.Weekday())}
		if bucket, ok := snap.Daily[date]; ok {
			entry.DailyStats = *bucket
		}
		week = append(week, entry)
	}
	return week
}

// WeeklyStreak is the consecutive-day study streak ending at the most recent
// study day, capped at seven.
func (s *StatsService) WeeklyStreak() int {
	snap := s.Stats()
	return snap.WeeklyStreak()
}

// UnlockAchievement records an achievement once. Repeat unlocks are no-ops.
func (s *StatsService) UnlockAchievement(id string) models.LearningStats {
	var snap models.LearningStats
	s.store.Update(statsKey, func() {
		snap = s.Stats()
		if snap.HasAchievement(id) {
			return
		}
		snap.Achievements = append(snap.Achievements, id)
		s.store.Save(statsKey, snap)
	})
	return snap
}
