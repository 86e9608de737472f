package engine

import (
	"testing"
	"time"

	"alcyxob/deskbreak/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixed reference clock: Friday 2025-06-20 14:00 UTC (June has 30 days).
var testNow = time.Date(2025, time.June, 20, 14, 0, 0, 0, time.UTC)

func sessionAt(start time.Time, offered, completed int) domain.BreakSession {
	s := domain.BreakSession{
		ID:        start.Format(time.RFC3339),
		StartTime: start,
	}
	for i := 0; i < offered; i++ {
		ex := domain.Exercise{ID: "ex-" + string(rune('a'+i)), Name: "Exercise " + string(rune('A'+i))}
		s.Exercises = append(s.Exercises, ex)
		if i < completed {
			s.CompletedExercises = append(s.CompletedExercises, ex.ID)
		}
	}
	return s
}

func endedAfter(s domain.BreakSession, d time.Duration) domain.BreakSession {
	end := s.StartTime.Add(d)
	s.EndTime = &end
	return s
}

func TestDailyProgress(t *testing.T) {
	taken := endedAfter(sessionAt(testNow.Add(-4*time.Hour), 3, 2), 5*time.Minute)
	open := sessionAt(testNow.Add(-1*time.Hour), 3, 1)
	skipped := sessionAt(testNow.Add(-2*time.Hour), 2, 0)
	skipped.Skipped = true
	yesterday := endedAfter(sessionAt(testNow.Add(-26*time.Hour), 3, 3), 5*time.Minute)

	daily := DailyProgress([]domain.BreakSession{taken, open, skipped, yesterday}, 0, testNow)

	assert.Equal(t, "2025-06-20", daily.Date)
	assert.Equal(t, 2, daily.BreaksTaken, "skipped sessions don't count as taken")
	assert.Equal(t, DefaultDailyBreakTarget, daily.BreaksScheduled)
	assert.Equal(t, 3, daily.ExercisesCompleted, "yesterday's completions excluded")
	assert.Equal(t, 300, daily.TotalBreakTime, "open and skipped sessions contribute 0")
}

func TestDailyProgressEmptyHistory(t *testing.T) {
	daily := DailyProgress(nil, 6, testNow)
	assert.Zero(t, daily.BreaksTaken)
	assert.Zero(t, daily.ExercisesCompleted)
	assert.Zero(t, daily.TotalBreakTime)
	assert.Zero(t, daily.Streak)
	assert.Equal(t, 6, daily.BreaksScheduled)
}

func TestCurrentStreakTodayYesterdayGap(t *testing.T) {
	history := []domain.BreakSession{
		sessionAt(testNow.Add(-3*time.Hour), 2, 2),     // today
		sessionAt(testNow.Add(-25*time.Hour), 2, 1),    // yesterday
		sessionAt(testNow.AddDate(0, 0, -3), 2, 2),     // 3 days ago
	}
	assert.Equal(t, 2, CurrentStreak(history, testNow))
}

func TestCurrentStreakEmptyHistory(t *testing.T) {
	assert.Zero(t, CurrentStreak(nil, testNow))
}

func TestCurrentStreakSkippedSessionsDontCount(t *testing.T) {
	today := sessionAt(testNow.Add(-1*time.Hour), 2, 0)
	today.Skipped = true
	yesterday := sessionAt(testNow.Add(-25*time.Hour), 2, 2)

	// Today's only session was skipped, so the streak broke before today.
	assert.Zero(t, CurrentStreak([]domain.BreakSession{today, yesterday}, testNow))
}

func TestCurrentStreakMultipleSessionsPerDay(t *testing.T) {
	history := []domain.BreakSession{
		sessionAt(testNow.Add(-1*time.Hour), 2, 2),
		sessionAt(testNow.Add(-5*time.Hour), 2, 1),
		sessionAt(testNow.Add(-24*time.Hour), 2, 2),
	}
	assert.Equal(t, 2, CurrentStreak(history, testNow))
}

func TestCurrentStreakGuardsFutureDatedSessions(t *testing.T) {
	history := []domain.BreakSession{
		sessionAt(testNow.AddDate(0, 0, 2), 2, 2), // clock skew artifact
		sessionAt(testNow.Add(-1*time.Hour), 2, 2),
		sessionAt(testNow.Add(-25*time.Hour), 2, 2),
	}
	assert.Equal(t, 2, CurrentStreak(history, testNow))
}

func TestWeeklyProgressTotals(t *testing.T) {
	// testNow is a Friday; the window opened on Sunday 2025-06-15.
	inWindowA := sessionAt(testNow.Add(-48*time.Hour), 3, 2)
	inWindowB := sessionAt(testNow.Add(-24*time.Hour), 4, 3)
	beforeWindow := sessionAt(testNow.AddDate(0, 0, -7), 4, 4)
	skipped := sessionAt(testNow.Add(-3*time.Hour), 2, 0)
	skipped.Skipped = true

	weekly := WeeklyProgress([]domain.BreakSession{inWindowA, inWindowB, beforeWindow, skipped}, testNow)

	assert.Equal(t, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), weekly.WeekStart)
	assert.Equal(t, 2, weekly.TotalBreaks)
	assert.Equal(t, 5, weekly.TotalExercises)
}

func TestWeeklyProgressFavoritesAndRating(t *testing.T) {
	a := sessionAt(testNow.Add(-48*time.Hour), 2, 2) // offers Exercise A, B
	a.Feedback = &domain.SessionFeedback{Rating: 5, Liked: true}
	b := sessionAt(testNow.Add(-24*time.Hour), 1, 1) // offers Exercise A again
	// b has no feedback: defaults to 3.

	weekly := WeeklyProgress([]domain.BreakSession{a, b}, testNow)

	require.NotEmpty(t, weekly.FavoriteExercises)
	assert.Equal(t, "Exercise A", weekly.FavoriteExercises[0])
	assert.Equal(t, []string{"Exercise A", "Exercise B"}, weekly.FavoriteExercises)
	assert.InDelta(t, 4.0, weekly.AverageRating, 1e-9)
}

func TestWeeklyProgressEmptyWindow(t *testing.T) {
	weekly := WeeklyProgress(nil, testNow)
	assert.Zero(t, weekly.TotalBreaks)
	assert.Zero(t, weekly.TotalExercises)
	assert.Empty(t, weekly.FavoriteExercises)
	assert.Zero(t, weekly.AverageRating)
}

func TestMonthlyConsistencyScore(t *testing.T) {
	// 15 distinct active days in a 30-day month => 50.
	var history []domain.BreakSession
	for day := 1; day <= 15; day++ {
		start := time.Date(2025, time.June, day, 10, 0, 0, 0, time.UTC)
		history = append(history, sessionAt(start, 2, 1))
		// A second session on the same day must not add a new active day.
		history = append(history, sessionAt(start.Add(2*time.Hour), 2, 1))
	}

	monthly := MonthlyProgress(history, testNow)
	assert.Equal(t, 50, monthly.ImprovementMetrics.ConsistencyScore)
	assert.Equal(t, 30, monthly.TotalBreaks)
}

func TestMonthlyVarietyScore(t *testing.T) {
	// Two sessions offering the same 2 exercises: 2 unique / 4 slots => 50.
	history := []domain.BreakSession{
		sessionAt(testNow.Add(-48*time.Hour), 2, 2),
		sessionAt(testNow.Add(-24*time.Hour), 2, 1),
	}
	monthly := MonthlyProgress(history, testNow)
	assert.Equal(t, 50, monthly.ImprovementMetrics.VarietyScore)
}

func TestMonthlyEngagementScoreDefaultsRating(t *testing.T) {
	// One session, 2/2 completed, no feedback:
	// round((1*0.7 + 3/5*0.3) * 100) = 88.
	history := []domain.BreakSession{sessionAt(testNow.Add(-1*time.Hour), 2, 2)}
	monthly := MonthlyProgress(history, testNow)
	assert.Equal(t, 88, monthly.ImprovementMetrics.EngagementScore)
}

func TestMonthlyProgressEmptyHistory(t *testing.T) {
	monthly := MonthlyProgress(nil, testNow)
	assert.Zero(t, monthly.TotalBreaks)
	assert.Zero(t, monthly.ImprovementMetrics.ConsistencyScore)
	assert.Zero(t, monthly.ImprovementMetrics.VarietyScore)
	assert.Zero(t, monthly.ImprovementMetrics.EngagementScore)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), monthly.Month)
}

func TestMonthlyWindowIncludesWholeLastDay(t *testing.T) {
	lastDayEvening := time.Date(2025, time.June, 30, 22, 0, 0, 0, time.UTC)
	history := []domain.BreakSession{sessionAt(lastDayEvening, 1, 1)}
	monthly := MonthlyProgress(history, testNow)
	assert.Equal(t, 1, monthly.TotalBreaks)
}

func TestProgressAssemblesAllWindows(t *testing.T) {
	history := []domain.BreakSession{
		endedAfter(sessionAt(testNow.Add(-2*time.Hour), 3, 3), 4*time.Minute),
	}
	data := Progress(history, 8, testNow)
	assert.Equal(t, 1, data.Daily.BreaksTaken)
	assert.Equal(t, 1, data.Weekly.TotalBreaks)
	assert.Equal(t, 1, data.Monthly.TotalBreaks)
	assert.Equal(t, 1, data.Daily.Streak)
}
