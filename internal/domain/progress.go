package domain

import "time"

// DailyProgress summarises today's breaks.
type DailyProgress struct {
	Date               string `json:"date"` // YYYY-MM-DD
	BreaksTaken        int    `json:"breaksTaken"`
	BreaksScheduled    int    `json:"breaksScheduled"` // Daily target, display only
	ExercisesCompleted int    `json:"exercisesCompleted"`
	TotalBreakTime     int    `json:"totalBreakTime"` // Seconds
	Streak             int    `json:"streak"`         // Consecutive days ending today with a non-skipped break
}

// WeeklyProgress summarises the week starting on the most recent Sunday.
type WeeklyProgress struct {
	WeekStart         time.Time `json:"weekStart"`
	TotalBreaks       int       `json:"totalBreaks"`
	TotalExercises    int       `json:"totalExercises"`
	FavoriteExercises []string  `json:"favoriteExercises"` // Top 5 by frequency, ties in first-seen order
	AverageRating     float64   `json:"averageRating"`
}

// ImprovementMetrics are the 0-100 derived scores over the current month.
type ImprovementMetrics struct {
	ConsistencyScore int `json:"consistencyScore"`
	VarietyScore     int `json:"varietyScore"`
	EngagementScore  int `json:"engagementScore"`
}

// MonthlyProgress summarises the current calendar month.
type MonthlyProgress struct {
	Month              time.Time          `json:"month"` // First day of the month
	TotalBreaks        int                `json:"totalBreaks"`
	ImprovementMetrics ImprovementMetrics `json:"improvementMetrics"`
}

// ProgressData bundles the three rollups for the dashboard.
type ProgressData struct {
	Daily   DailyProgress   `json:"daily"`
	Weekly  WeeklyProgress  `json:"weekly"`
	Monthly MonthlyProgress `json:"monthly"`
}
