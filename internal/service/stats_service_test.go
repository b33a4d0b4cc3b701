package service

import (
	"testing"
	"time"

	"wonbyte/internal/storage"
)

func newUserStore() *storage.UserStore {
	return storage.New(storage.NewMemoryBackend()).ForUser("1")
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestRecordAccumulates(t *testing.T) {
	svc := NewStatsService(newUserStore())
	day := time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC) // a Monday
	svc.now = fixedClock(day)

	svc.Record(StatsDelta{Sessions: 1, Time: 10, ProblemsSolved: 5, CorrectAnswers: 4})
	snap := svc.Record(StatsDelta{Time: 5, TextsRead: 1, VocabularyLearned: 2})

	if snap.TotalSessions != 1 {
		t.Errorf("TotalSessions = %d, want 1", snap.TotalSessions)
	}
	if snap.TotalTime != 15 {
		t.Errorf("TotalTime = %d, want 15", snap.TotalTime)
	}
	if snap.ProblemsSolved != 5 || snap.CorrectAnswers != 4 {
		t.Errorf("problems/correct = %d/%d, want 5/4", snap.ProblemsSolved, snap.CorrectAnswers)
	}
	if snap.LastStudyDate != "2026-03-09" {
		t.Errorf("LastStudyDate = %q, want 2026-03-09", snap.LastStudyDate)
	}

	bucket, ok := snap.Daily["2026-03-09"]
	if !ok {
		t.Fatal("expected a bucket for today")
	}
	if bucket.Time != 15 || bucket.Problems != 5 || bucket.Correct != 4 || bucket.Texts != 1 || bucket.Vocabulary != 2 {
		t.Errorf("today bucket = %+v", bucket)
	}
}

func TestTodayStatsEmpty(t *testing.T) {
	svc := NewStatsService(newUserStore())
	today := svc.TodayStats()
	if today.Time != 0 || today.Problems != 0 {
		t.Errorf("expected zero bucket, got %+v", today)
	}
}

func TestWeeklyStatsZeroFilled(t *testing.T) {
	svc := NewStatsService(newUserStore())
	day := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC) // a Wednesday
	svc.now = fixedClock(day)
	svc.Record(StatsDelta{Time: 20})

	week := svc.WeeklyStats()
	if len(week) != 7 {
		t.Fatalf("len(week) = %d, want 7", len(week))
	}
	if week[0].Date != "2026-03-05" || week[6].Date != "2026-03-11" {
		t.Errorf("week spans %s..%s, want 2026-03-05..2026-03-11", week[0].Date, week[6].Date)
	}
	if week[6].Label != "수" {
		t.Errorf("today's label = %q, want 수", week[6].Label)
	}
	if week[6].Time != 20 {
		t.Errorf("today's time = %d, want 20", week[6].Time)
	}
	for _, day := range week[:6] {
		if day.Time != 0 || day.Problems != 0 {
			t.Errorf("expected zero bucket for %s, got %+v", day.Date, day.DailyStats)
		}
	}
}

func TestWeeklyStreak(t *testing.T) {
	svc := NewStatsService(newUserStore())
	start := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	// Three consecutive study days.
	for i := 0; i < 3; i++ {
		svc.now = fixedClock(start.AddDate(0, 0, i))
		svc.Record(StatsDelta{Time: 5})
	}
	if got := svc.WeeklyStreak(); got != 3 {
		t.Errorf("streak after 3 consecutive days = %d, want 3", got)
	}

	// A gap resets the run; the streak counts back from the latest day only.
	svc.now = fixedClock(start.AddDate(0, 0, 5))
	svc.Record(StatsDelta{Time: 5})
	if got := svc.WeeklyStreak(); got != 1 {
		t.Errorf("streak after a gap = %d, want 1", got)
	}
}

func TestUnlockAchievementIdempotent(t *testing.T) {
	svc := NewStatsService(newUserStore())

	svc.UnlockAchievement("first-text")
	snap := svc.UnlockAchievement("first-text")

	if len(snap.Achievements) != 1 {
		t.Fatalf("len(Achievements) = %d, want 1", len(snap.Achievements))
	}
	if snap.Achievements[0] != "first-text" {
		t.Errorf("Achievements[0] = %q", snap.Achievements[0])
	}
}
