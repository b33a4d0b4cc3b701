package models

import (
	"testing"
	"time"
)

func TestWeeklyStreak(t *testing.T) {
	day := func(offset int) string {
		base := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
		return base.AddDate(0, 0, offset).Format(DateLayout)
	}

	tests := []struct {
		name string
		days []string
		want int
	}{
		{
			name: "no activity",
			days: nil,
			want: 0,
		},
		{
			name: "single day",
			days: []string{day(0)},
			want: 1,
		},
		{
			name: "three consecutive days",
			days: []string{day(-2), day(-1), day(0)},
			want: 3,
		},
		{
			name: "gap breaks the streak",
			days: []string{day(-4), day(-3), day(-1), day(0)},
			want: 2,
		},
		{
			name: "activity resumed after a skipped day",
			days: []string{day(-2), day(0)},
			want: 1,
		},
		{
			name: "ten consecutive days capped at seven",
			days: []string{
				day(-9), day(-8), day(-7), day(-6), day(-5),
				day(-4), day(-3), day(-2), day(-1), day(0),
			},
			want: 7,
		},
		{
			name: "older history beyond a gap is ignored",
			days: []string{day(-30), day(-29), day(0)},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := NewLearningStats()
			for _, d := range tt.days {
				stats.Bucket(d).Time += 10
			}
			if got := stats.WeeklyStreak(); got != tt.want {
				t.Errorf("WeeklyStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBucketCreatesOnce(t *testing.T) {
	stats := NewLearningStats()

	b := stats.Bucket("2026-03-20")
	b.Problems += 3

	again := stats.Bucket("2026-03-20")
	if again.Problems != 3 {
		t.Errorf("Bucket() returned a fresh bucket, want the existing one")
	}
	if len(stats.Daily) != 1 {
		t.Errorf("len(Daily) = %d, want 1", len(stats.Daily))
	}
}

func TestGameStateRollOver(t *testing.T) {
	tests := []struct {
		name       string
		start      GameState
		wantLevel  int
		wantExp    int
		wantPoints int
	}{
		{
			name:       "below threshold",
			start:      GameState{Level: 1, Exp: 99},
			wantLevel:  1,
			wantExp:    99,
			wantPoints: 0,
		},
		{
			name:       "single level up",
			start:      GameState{Level: 1, Exp: 120},
			wantLevel:  2,
			wantExp:    20,
			wantPoints: 50,
		},
		{
			name: "large grant clears one level but not the next threshold",
			// 250 exp at level 1: clears 100, leaves 150 which is below
			// level 2's threshold of 200
			start:      GameState{Level: 1, Exp: 250},
			wantLevel:  2,
			wantExp:    150,
			wantPoints: 50,
		},
		{
			name: "grant clearing two growing thresholds",
			// 350 exp at level 1: clears 100 then 200, leaves 50
			start:      GameState{Level: 1, Exp: 350},
			wantLevel:  3,
			wantExp:    50,
			wantPoints: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.start
			g.RollOver()
			if g.Level != tt.wantLevel || g.Exp != tt.wantExp || g.Points != tt.wantPoints {
				t.Errorf("RollOver() = {level:%d exp:%d points:%d}, want {level:%d exp:%d points:%d}",
					g.Level, g.Exp, g.Points, tt.wantLevel, tt.wantExp, tt.wantPoints)
			}
			if g.Exp >= g.ExpThreshold() {
				t.Errorf("invariant violated: exp %d >= threshold %d", g.Exp, g.ExpThreshold())
			}
		})
	}
}

func TestVocabularyPatchApply(t *testing.T) {
	meaning := "새로운 뜻"
	mastered := true

	entry := VocabularyEntry{ID: "v1", Word: "독해", Meaning: "읽고 이해함", Difficulty: 2}
	patch := VocabularyPatch{Meaning: &meaning, Mastered: &mastered}
	patch.Apply(&entry)

	if entry.Meaning != meaning {
		t.Errorf("Meaning = %q, want %q", entry.Meaning, meaning)
	}
	if !entry.Mastered {
		t.Error("Mastered should be true after patch")
	}
	if entry.Difficulty != 2 {
		t.Errorf("Difficulty changed to %d, want untouched 2", entry.Difficulty)
	}
}
