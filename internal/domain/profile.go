package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FitnessLevel determines which exercise difficulties a user may be offered.
type FitnessLevel string

const (
	FitnessBeginner     FitnessLevel = "beginner"
	FitnessIntermediate FitnessLevel = "intermediate"
	FitnessAdvanced     FitnessLevel = "advanced"
)

// WorkSetup describes how the user works, which nudges exercise selection
// (e.g. seated exercises for a desk setup).
type WorkSetup string

const (
	SetupDesk     WorkSetup = "desk"
	SetupStanding WorkSetup = "standing"
	SetupHybrid   WorkSetup = "hybrid"
)

// WorkSchedule holds the user's regular working hours ("HH:MM" strings).
type WorkSchedule struct {
	StartTime  string     `bson:"startTime" json:"startTime"`
	EndTime    string     `bson:"endTime" json:"endTime"`
	LunchBreak TimeWindow `bson:"lunchBreak" json:"lunchBreak"`
}

// TimeWindow is a start/end pair of "HH:MM" strings.
type TimeWindow struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// WorkdayIntegration holds the state of the (mock) Workday calendar link.
type WorkdayIntegration struct {
	Enabled       bool      `bson:"enabled" json:"enabled"`
	EmployeeID    string    `bson:"employeeId,omitempty" json:"employeeId,omitempty"`
	LastSync      time.Time `bson:"lastSync,omitempty" json:"lastSync,omitempty"`
	SyncFrequency string    `bson:"syncFrequency,omitempty" json:"syncFrequency,omitempty"` // "hourly" or "daily"
}

// UserProfile is the user's self-reported profile. The recommendation
// engine consumes it read-only.
type UserProfile struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name               string             `bson:"name" json:"name"`
	Age                int                `bson:"age,omitempty" json:"age,omitempty"`
	FitnessLevel       FitnessLevel       `bson:"fitnessLevel" json:"fitnessLevel"`
	Limitations        []string           `bson:"limitations,omitempty" json:"limitations,omitempty"` // Free-text phrases, e.g. "lower back pain"
	PreferredExercises []string           `bson:"preferredExercises,omitempty" json:"preferredExercises,omitempty"`
	WorkSetup          WorkSetup          `bson:"workSetup" json:"workSetup"`
	WorkSchedule       WorkSchedule       `bson:"workSchedule" json:"workSchedule"`
	Workday            WorkdayIntegration `bson:"workday" json:"workday"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DefaultProfile returns the profile used before the user completes onboarding.
func DefaultProfile() UserProfile {
	return UserProfile{
		FitnessLevel: FitnessBeginner,
		WorkSetup:    SetupDesk,
		WorkSchedule: WorkSchedule{
			StartTime:  "09:00",
			EndTime:    "17:00",
			LunchBreak: TimeWindow{Start: "12:00", End: "13:00"},
		},
		Workday: WorkdayIntegration{SyncFrequency: "daily"},
	}
}
