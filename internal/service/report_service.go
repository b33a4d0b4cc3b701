package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"wonbyte/internal/models"
	"wonbyte/internal/repository"
	"wonbyte/internal/storage"
)

// ReportService composes weekly progress summaries and mails them to
// guardians who opted in.
type ReportService struct {
	users *repository.UserRepository
	store *storage.Store
	email *EmailService
}

func NewReportService(users *repository.UserRepository, store *storage.Store, email *EmailService) *ReportService {
	return &ReportService{users: users, store: store, email: email}
}

// SendWeeklyReports mails every learner with a guardian email on file. One
// failed recipient does not stop the rest; the first error is returned after
// all sends are attempted.
func (s *ReportService) SendWeeklyReports(ctx context.Context) error {
	recipients, err := s.users.GetUsersWithGuardianEmail()
	if err != nil {
		return fmt.Errorf("loading report recipients: %w", err)
	}
	if len(recipients) == 0 {
		log.Println("Weekly report: no guardian emails on file, nothing to send")
		return nil
	}

	var firstErr error
	sent := 0
	for _, user := range recipients {
		userStore := s.store.ForUser(strconv.FormatInt(user.ID, 10))
		stats := NewStatsService(userStore)
		game := NewGameService(userStore)

		week := stats.WeeklyStats()
		streak := stats.WeeklyStreak()
		state := game.State()

		html, text := renderWeeklyReport(user.Name, week, streak, state)
		if err := s.email.SendWeeklyReport(ctx, user.GuardianEmail, user.Name, html, text); err != nil {
			log.Printf("Weekly report failed for user %d: %v", user.ID, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		sent++
	}

	log.Printf("Weekly report run complete: sent=%d, recipients=%d", sent, len(recipients))
	return firstErr
}

func renderWeeklyReport(name string, week []models.DayStats, streak int, game models.GameState) (html, text string) {
	var totalTime, totalProblems, totalCorrect, totalTexts int
	for _, day := range week {
		totalTime += day.Time
		totalProblems += day.Problems
		totalCorrect += day.Correct
		totalTexts += day.Texts
	}
	accuracy := 0
	if totalProblems > 0 {
		accuracy = totalCorrect * 100 / totalProblems
	}

	var rows strings.Builder
	for _, day := range week {
		fmt.Fprintf(&rows,
			"<tr><td>%s (%s)</td><td>%d분</td><td>%d문제</td><td>%d개</td></tr>\n",
			day.Date, day.Label, day.Time, day.Problems, day.Correct)
	}

	html = fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: sans-serif; color: #333;">
	<h2>%s 학생의 주간 학습 리포트</h2>
	<p>이번 주 학습 시간 <strong>%d분</strong>, 푼 문제 <strong>%d개</strong> (정답률 %d%%), 읽은 글 <strong>%d편</strong>, 연속 학습 <strong>%d일</strong></p>
	<table border="1" cellpadding="6" cellspacing="0">
		<tr><th>날짜</th><th>학습 시간</th><th>푼 문제</th><th>정답</th></tr>
		%s
	</table>
	<p>현재 레벨 %d · 포인트 %d점 · 배지 %d개</p>
</body>
</html>`,
		name, totalTime, totalProblems, accuracy, totalTexts, streak,
		rows.String(), game.Level, game.Points, len(game.Badges))

	text = fmt.Sprintf(
		"%s 학생의 주간 학습 리포트\n학습 시간 %d분, 푼 문제 %d개 (정답률 %d%%), 읽은 글 %d편, 연속 학습 %d일\n현재 레벨 %d, 포인트 %d점, 배지 %d개\n",
		name, totalTime, totalProblems, accuracy, totalTexts, streak,
		game.Level, game.Points, len(game.Badges))
	return html, text
}
