package service

import (
	"testing"

	"wonbyte/internal/models"
	"wonbyte/internal/storage"
)

func TestProfileDefaults(t *testing.T) {
	svc := NewProfileService(newUserStore())
	profile := svc.Profile()
	if profile.GradeLevel != "초3" || profile.Avatar != "wonbi" {
		t.Errorf("default profile = %+v", profile)
	}
	if profile.DailyGoal != 20 {
		t.Errorf("DailyGoal = %d, want 20", profile.DailyGoal)
	}
}

func TestProfileSaveReplacesWholesale(t *testing.T) {
	svc := NewProfileService(newUserStore())
	svc.Save(models.LearnerProfile{Nickname: "하늘", GradeLevel: "초4", Interests: []string{"공룡"}})

	svc.Save(models.LearnerProfile{Nickname: "하늘", GradeLevel: "초5"})
	profile := svc.Profile()
	if profile.GradeLevel != "초5" {
		t.Errorf("GradeLevel = %q, want 초5", profile.GradeLevel)
	}
	if len(profile.Interests) != 0 {
		t.Errorf("Interests survived a wholesale save: %v", profile.Interests)
	}
}

func TestResetAllClearsEveryLedger(t *testing.T) {
	store := storage.New(storage.NewMemoryBackend())
	mine := store.ForUser("1")
	other := store.ForUser("2")

	NewProfileService(mine).Save(models.LearnerProfile{Nickname: "하늘"})
	NewGameService(mine).AddPoints(100)
	NewGameService(other).AddPoints(7)

	if !NewProfileService(mine).ResetAll() {
		t.Fatal("ResetAll failed")
	}

	if got := NewGameService(mine).State().Points; got != 0 {
		t.Errorf("my points after reset = %d, want 0", got)
	}
	if got := NewProfileService(mine).Profile().Nickname; got != "" {
		t.Errorf("my nickname after reset = %q, want default", got)
	}
	if got := NewGameService(other).State().Points; got != 7 {
		t.Errorf("another learner's points after my reset = %d, want 7", got)
	}
}
