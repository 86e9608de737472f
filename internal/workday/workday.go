// Package workday talks to the external calendar/workload data source. Only
// a mock implementation exists today; the Client interface keeps the rest of
// the app (and its tests) independent of any concrete provider and of
// process-wide state.
package workday

import (
	"context"
	"errors"
	"time"

	"alcyxob/deskbreak/internal/domain"
)

var (
	ErrNotAuthenticated   = errors.New("not authenticated with workday")
	ErrInvalidCredentials = errors.New("invalid credentials. Use demo/demo for testing")
)

// Credentials for the calendar provider.
type Credentials struct {
	Username string
	Password string
}

// AuthResult is returned from a successful or failed authentication attempt.
type AuthResult struct {
	Success    bool      `json:"success"`
	Token      string    `json:"token,omitempty"`
	EmployeeID string    `json:"employeeId,omitempty"`
	Expires    time.Time `json:"expires,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// BreakPreferences are pushed back to the provider so breaks show up on the
// work calendar.
type BreakPreferences struct {
	Frequency     int               `json:"frequency"`
	Duration      int               `json:"duration"`
	ExerciseTypes []string          `json:"exerciseTypes"`
	WorkingHours  domain.TimeWindow `json:"workingHours"`
}

// EmployeeProfile is the provider's view of the user.
type EmployeeProfile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Department   string `json:"department"`
	Role         string `json:"role"`
	Manager      string `json:"manager"`
	WorkLocation string `json:"workLocation"`
}

// TimeOffEntry is a day with booked time off.
type TimeOffEntry struct {
	Date     string  `json:"date"` // YYYY-MM-DD
	Type     string  `json:"type"`
	Duration string  `json:"duration"`
	Hours    float64 `json:"hours,omitempty"`
}

// Client is the calendar collaborator contract. All schedule-returning calls
// require a prior successful Authenticate; failures surface as descriptive
// errors the core never needs to parse.
type Client interface {
	Authenticate(ctx context.Context, creds Credentials) (AuthResult, error)
	Schedule(ctx context.Context, employeeID, startDate, endDate string) ([]domain.WorkdaySchedule, error)
	Meetings(ctx context.Context, employeeID, date string) ([]domain.WorkdayMeeting, error)
	TimeOff(ctx context.Context, employeeID, startDate, endDate string) ([]TimeOffEntry, error)
	UpdateBreakPreferences(ctx context.Context, employeeID string, prefs BreakPreferences) error
	GetEmployeeProfile(ctx context.Context, employeeID string) (EmployeeProfile, error)
	Logout()
	IsAuthenticated() bool
}
