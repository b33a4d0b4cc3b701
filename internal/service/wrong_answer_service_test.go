package service

import (
	"testing"

	"wonbyte/internal/models"
)

func TestAddPrepends(t *testing.T) {
	svc := NewWrongAnswerService(newUserStore())

	svc.Add(models.WrongAnswer{Question: "첫 번째 문제", CorrectAnswer: "가"})
	list := svc.Add(models.WrongAnswer{Question: "두 번째 문제", CorrectAnswer: "나"})

	if len(list) != 2 {
		t.Fatalf("len(list) = %d, want 2", len(list))
	}
	if list[0].Question != "두 번째 문제" {
		t.Errorf("newest entry should come first, got %q", list[0].Question)
	}
	if list[0].Solved || list[0].ReviewCount != 0 {
		t.Errorf("new entry should start unsolved with zero retries: %+v", list[0])
	}
}

func TestRecordRetryCorrectSolves(t *testing.T) {
	svc := NewWrongAnswerService(newUserStore())
	list := svc.Add(models.WrongAnswer{Question: "문제", CorrectAnswer: "답"})
	id := list[0].ID

	list = svc.RecordRetry(id, true)
	entry := list[0]
	if !entry.Solved {
		t.Error("expected solved after a correct retry")
	}
	if entry.ReviewCount != 1 {
		t.Errorf("ReviewCount = %d, want 1", entry.ReviewCount)
	}
	if entry.LastReviewDate == nil {
		t.Error("expected LastReviewDate to be stamped")
	}
}

func TestRecordRetryExhaustionSolves(t *testing.T) {
	svc := NewWrongAnswerService(newUserStore())
	list := svc.Add(models.WrongAnswer{Question: "어려운 문제", CorrectAnswer: "답"})
	id := list[0].ID

	list = svc.RecordRetry(id, false)
	if list[0].Solved {
		t.Fatal("solved after 1 wrong retry, want retirement only at the limit")
	}

	list = svc.RecordRetry(id, false)
	entry := list[0]
	if !entry.Solved {
		t.Error("expected retirement after exhausting the retry allowance")
	}
	if entry.ReviewCount != models.MaxRetryAttempts {
		t.Errorf("ReviewCount = %d, want %d", entry.ReviewCount, models.MaxRetryAttempts)
	}
}

func TestUnsolved(t *testing.T) {
	svc := NewWrongAnswerService(newUserStore())
	svc.Add(models.WrongAnswer{Question: "남은 문제", CorrectAnswer: "가"})
	list := svc.Add(models.WrongAnswer{Question: "푼 문제", CorrectAnswer: "나"})
	svc.RecordRetry(list[0].ID, true)

	open := svc.Unsolved()
	if len(open) != 1 {
		t.Fatalf("len(Unsolved()) = %d, want 1", len(open))
	}
	if open[0].Question != "남은 문제" {
		t.Errorf("Unsolved()[0].Question = %q", open[0].Question)
	}
}

func TestWrongAnswerRemove(t *testing.T) {
	svc := NewWrongAnswerService(newUserStore())
	list := svc.Add(models.WrongAnswer{Question: "삭제할 문제", CorrectAnswer: "가"})

	list = svc.Remove(list[0].ID)
	if len(list) != 0 {
		t.Errorf("len(list) = %d after remove, want 0", len(list))
	}
}
