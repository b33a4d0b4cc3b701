package models

import (
	"sort"
	"time"
)

// DateLayout is the calendar-date key format used by the daily stats map.
const DateLayout = "2006-01-02"

// streakLookbackDays bounds how far back the streak walk looks. Older daily
// buckets are kept forever but never push the displayed streak past a week.
const streakLookbackDays = 7

// koreanWeekdays maps time.Weekday to the short Korean day label.
var koreanWeekdays = [7]string{"일", "월", "화", "수", "목", "금", "토"}

// DailyStats is one calendar day's activity bucket. All fields are
// cumulative within the day and never decrease.
type DailyStats struct {
	Time       int `json:"time"` // minutes studied
	Problems   int `json:"problems"`
	Correct    int `json:"correct"`
	Texts      int `json:"texts"`
	Vocabulary int `json:"vocabulary"`
}

// DayStats is a daily bucket annotated with its date and weekday label,
// as returned by the weekly view.
type DayStats struct {
	DailyStats
	Date  string `json:"date"`
	Label string `json:"label"`
}

// LearningStats is the persisted learning-progress snapshot for one student.
// The weekly streak is intentionally not a field: it is derived from Daily on
// every read so the stored and displayed values can never diverge.
type LearningStats struct {
	TotalSessions     int                    `json:"totalSessions"`
	TotalTime         int                    `json:"totalTime"`
	TextsRead         int                    `json:"textsRead"`
	VocabularyLearned int                    `json:"vocabularyLearned"`
	ProblemsSolved    int                    `json:"problemsSolved"`
	CorrectAnswers    int                    `json:"correctAnswers"`
	Daily             map[string]*DailyStats `json:"dailyStats"`
	LastStudyDate     string                 `json:"lastStudyDate,omitempty"`
	Achievements      []string               `json:"achievements"`
}

// NewLearningStats returns an all-zero snapshot
func NewLearningStats() LearningStats {
	return LearningStats{
		Daily:        make(map[string]*DailyStats),
		Achievements: []string{},
	}
}

// Bucket returns the daily bucket for a date, creating it if missing
func (s *LearningStats) Bucket(date string) *DailyStats {
	if s.Daily == nil {
		s.Daily = make(map[string]*DailyStats)
	}
	b, ok := s.Daily[date]
	if !ok {
		b = &DailyStats{}
		s.Daily[date] = b
	}
	return b
}

// HasAchievement reports whether an achievement has been unlocked
func (s *LearningStats) HasAchievement(id string) bool {
	for _, a := range s.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// WeeklyStreak counts trailing consecutive days with recorded activity,
// starting from the most recent active day and capped at 7. A day counts as
// active if its bucket exists, regardless of the bucket's values.
func (s *LearningStats) WeeklyStreak() int {
	if len(s.Daily) == 0 {
		return 0
	}

	dates := make([]string, 0, len(s.Daily))
	for d := range s.Daily {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	streak := 1
	for i := 0; i < len(dates)-1 && streak < streakLookbackDays; i++ {
		cur, err := time.Parse(DateLayout, dates[i])
		if err != nil {
			break
		}
		prev, err := time.Parse(DateLayout, dates[i+1])
		if err != nil {
			break
		}
		if cur.Sub(prev) != 24*time.Hour {
			break
		}
		streak++
	}
	return streak
}

// WeekdayLabel returns the short Korean label for a weekday
func WeekdayLabel(d time.Weekday) string {
	return koreanWeekdays[int(d)]
}
