package engine

import (
	"fmt"

	"alcyxob/deskbreak/internal/domain"
)

// Insight thresholds. Presentation-facing, but the cutoffs are part of the
// product contract.
const (
	consistencyExcellent = 80
	consistencyGood      = 60
	varietyGreat         = 70
)

// Insights derives human-readable observations from a progress snapshot.
func Insights(data domain.ProgressData) []string {
	var insights []string

	if data.Daily.Streak > 0 {
		insights = append(insights, fmt.Sprintf("You're on a %d-day streak! Keep it up!", data.Daily.Streak))
	}

	if data.Daily.BreaksTaken >= data.Daily.BreaksScheduled {
		insights = append(insights, "You've met your daily break goal!")
	} else if data.Daily.BreaksTaken > 0 {
		remaining := data.Daily.BreaksScheduled - data.Daily.BreaksTaken
		insights = append(insights, fmt.Sprintf("%d more %s to reach your daily goal", remaining, pluralize(remaining, "break", "breaks")))
	}

	if data.Weekly.TotalExercises > 0 {
		insights = append(insights, fmt.Sprintf("You've completed %d exercises this week", data.Weekly.TotalExercises))
	}

	if len(data.Weekly.FavoriteExercises) > 0 {
		insights = append(insights, fmt.Sprintf("Your favorite exercise this week: %s", data.Weekly.FavoriteExercises[0]))
	}

	metrics := data.Monthly.ImprovementMetrics
	if metrics.ConsistencyScore >= consistencyExcellent {
		insights = append(insights, fmt.Sprintf("Excellent consistency this month (%d%%)", metrics.ConsistencyScore))
	} else if metrics.ConsistencyScore >= consistencyGood {
		insights = append(insights, fmt.Sprintf("Good consistency this month (%d%%)", metrics.ConsistencyScore))
	}

	if metrics.VarietyScore >= varietyGreat {
		insights = append(insights, "Great exercise variety this month!")
	}

	if len(insights) == 0 {
		insights = append(insights, "Start taking breaks to see your progress insights!")
	}

	return insights
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
