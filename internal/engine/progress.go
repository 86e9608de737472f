package engine

import (
	"math"
	"sort"
	"time"

	"alcyxob/deskbreak/internal/domain"
)

// DefaultDailyBreakTarget is the breaksScheduled value when no target is
// configured. Display only; never used in any computation.
const DefaultDailyBreakTarget = 8

// DailyProgress reduces the session history to today's numbers. The caller
// supplies now so the reduction stays pure; "today" is now's calendar day in
// now's location.
func DailyProgress(history []domain.BreakSession, target int, now time.Time) domain.DailyProgress {
	if target <= 0 {
		target = DefaultDailyBreakTarget
	}
	today := dateIn(now, now.Location())

	breaksTaken := 0
	exercisesCompleted := 0
	totalBreakTime := 0
	for _, s := range history {
		if !dateIn(s.StartTime, now.Location()).Equal(today) {
			continue
		}
		exercisesCompleted += len(s.CompletedExercises)
		if s.Skipped {
			continue
		}
		breaksTaken++
		if s.EndTime != nil {
			totalBreakTime += int(s.EndTime.Sub(s.StartTime).Seconds())
		}
	}

	return domain.DailyProgress{
		Date:               today.Format("2006-01-02"),
		BreaksTaken:        breaksTaken,
		BreaksScheduled:    target,
		ExercisesCompleted: exercisesCompleted,
		TotalBreakTime:     totalBreakTime,
		Streak:             CurrentStreak(history, now),
	}
}

// CurrentStreak counts consecutive calendar days, ending today, with at
// least one non-skipped session. Non-skipped sessions are walked newest
// first against a day cursor that starts at today: a session on the cursor
// day extends the streak and moves the cursor back one day, a session dated
// after the cursor (a second break on an already-counted day, or a
// future-dated record) is skipped, and the first session strictly before the
// cursor ends the walk.
func CurrentStreak(history []domain.BreakSession, now time.Time) int {
	sessions := make([]domain.BreakSession, 0, len(history))
	for _, s := range history {
		if !s.Skipped && !s.StartTime.IsZero() {
			sessions = append(sessions, s)
		}
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartTime.After(sessions[j].StartTime)
	})

	streak := 0
	cursor := dateIn(now, now.Location())
	for _, s := range sessions {
		day := dateIn(s.StartTime, now.Location())
		switch {
		case day.After(cursor):
			continue
		case day.Equal(cursor):
			streak++
			cursor = cursor.AddDate(0, 0, -1)
		default:
			return streak
		}
	}
	return streak
}

// WeeklyProgress reduces the session history to the 7-day window starting on
// the most recent Sunday at midnight.
func WeeklyProgress(history []domain.BreakSession, now time.Time) domain.WeeklyProgress {
	weekStart := dateIn(now, now.Location()).AddDate(0, 0, -int(now.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 7)

	totalBreaks := 0
	totalExercises := 0
	ratingsSum := 0
	counts := map[string]int{}
	var firstSeen []string

	for _, s := range history {
		if s.Skipped || s.StartTime.Before(weekStart) || !s.StartTime.Before(weekEnd) {
			continue
		}
		totalBreaks++
		totalExercises += len(s.CompletedExercises)
		ratingsSum += s.RatingOrDefault()
		for _, ex := range s.Exercises {
			if _, seen := counts[ex.Name]; !seen {
				firstSeen = append(firstSeen, ex.Name)
			}
			counts[ex.Name]++
		}
	}

	// Top 5 by frequency; the stable sort keeps first-seen order on ties.
	sort.SliceStable(firstSeen, func(i, j int) bool {
		return counts[firstSeen[i]] > counts[firstSeen[j]]
	})
	if len(firstSeen) > 5 {
		firstSeen = firstSeen[:5]
	}

	averageRating := 0.0
	if totalBreaks > 0 {
		averageRating = float64(ratingsSum) / float64(totalBreaks)
	}

	return domain.WeeklyProgress{
		WeekStart:         weekStart,
		TotalBreaks:       totalBreaks,
		TotalExercises:    totalExercises,
		FavoriteExercises: firstSeen,
		AverageRating:     averageRating,
	}
}

// MonthlyProgress reduces the session history to the current calendar month
// and derives the three 0-100 improvement scores.
func MonthlyProgress(history []domain.BreakSession, now time.Time) domain.MonthlyProgress {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)
	daysInMonth := nextMonth.AddDate(0, 0, -1).Day()

	var sessions []domain.BreakSession
	for _, s := range history {
		if s.Skipped || s.StartTime.Before(monthStart) || !s.StartTime.Before(nextMonth) {
			continue
		}
		sessions = append(sessions, s)
	}

	return domain.MonthlyProgress{
		Month:       monthStart,
		TotalBreaks: len(sessions),
		ImprovementMetrics: domain.ImprovementMetrics{
			ConsistencyScore: consistencyScore(sessions, daysInMonth, now.Location()),
			VarietyScore:     varietyScore(sessions),
			EngagementScore:  engagementScore(sessions),
		},
	}
}

// consistencyScore: distinct active days / days in month, as a percentage.
func consistencyScore(sessions []domain.BreakSession, daysInMonth int, loc *time.Location) int {
	if daysInMonth == 0 {
		return 0
	}
	days := map[time.Time]struct{}{}
	for _, s := range sessions {
		days[dateIn(s.StartTime, loc)] = struct{}{}
	}
	return roundPercent(float64(len(days)) / float64(daysInMonth))
}

// varietyScore: distinct exercise ids / total offered exercise slots.
func varietyScore(sessions []domain.BreakSession) int {
	unique := map[string]struct{}{}
	slots := 0
	for _, s := range sessions {
		for _, ex := range s.Exercises {
			unique[ex.ID] = struct{}{}
		}
		slots += len(s.Exercises)
	}
	if slots == 0 {
		return 0
	}
	return roundPercent(float64(len(unique)) / float64(slots))
}

// engagementScore: 70% mean per-session completion ratio, 30% mean feedback
// rating normalised to 0-1 (rating defaults to 3 when absent).
func engagementScore(sessions []domain.BreakSession) int {
	if len(sessions) == 0 {
		return 0
	}
	completionSum := 0.0
	ratingSum := 0.0
	for _, s := range sessions {
		completionSum += s.CompletionRatio()
		ratingSum += float64(s.RatingOrDefault())
	}
	n := float64(len(sessions))
	completionRate := completionSum / n
	averageRating := ratingSum / n
	return roundPercent(completionRate*0.7 + averageRating/5*0.3)
}

// Progress assembles the full dashboard payload from one history snapshot.
func Progress(history []domain.BreakSession, dailyTarget int, now time.Time) domain.ProgressData {
	return domain.ProgressData{
		Daily:   DailyProgress(history, dailyTarget, now),
		Weekly:  WeeklyProgress(history, now),
		Monthly: MonthlyProgress(history, now),
	}
}

// dateIn truncates t to midnight of its calendar day in loc, so sessions
// stored in UTC land on the caller's local day.
func dateIn(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func roundPercent(ratio float64) int {
	return int(math.Round(ratio * 100))
}
