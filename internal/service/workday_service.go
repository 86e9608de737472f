package service

import (
	"context"
	"errors"

	"alcyxob/deskbreak/internal/domain"
	"alcyxob/deskbreak/internal/workday"
)

var ErrWorkdayNotConnected = errors.New("workday integration is not connected")

// WorkdayService bridges the calendar provider and the local profile: it
// keeps the integration state on the profile in sync with the provider
// session and scopes calendar queries to the connected employee.
type WorkdayService interface {
	Connect(ctx context.Context, username, password string) (workday.AuthResult, error)
	Disconnect(ctx context.Context) error
	GetSchedule(ctx context.Context, startDate, endDate string) ([]domain.WorkdaySchedule, error)
	GetMeetings(ctx context.Context, date string) ([]domain.WorkdayMeeting, error)
	GetTimeOff(ctx context.Context, startDate, endDate string) ([]workday.TimeOffEntry, error)
	// SyncBreakPreferences pushes the current break settings to the provider
	// so breaks appear on the work calendar.
	SyncBreakPreferences(ctx context.Context) error
}

type workdayService struct {
	client         workday.Client
	profileService ProfileService
}

// NewWorkdayService creates a new instance of workdayService.
func NewWorkdayService(client workday.Client, profileService ProfileService) WorkdayService {
	return &workdayService{client: client, profileService: profileService}
}

// Connect authenticates with the provider and, on success, records the
// integration on the profile.
func (s *workdayService) Connect(ctx context.Context, username, password string) (workday.AuthResult, error) {
	result, err := s.client.Authenticate(ctx, workday.Credentials{Username: username, Password: password})
	if err != nil {
		return workday.AuthResult{}, err
	}
	if !result.Success {
		return result, nil
	}

	profile, err := s.profileService.GetProfile(ctx)
	if err != nil {
		return workday.AuthResult{}, err
	}
	profile.Workday.Enabled = true
	profile.Workday.EmployeeID = result.EmployeeID
	if _, err := s.profileService.UpdateProfile(ctx, profile); err != nil {
		return workday.AuthResult{}, err
	}
	return result, nil
}

// Disconnect drops the provider session and disables the integration on the
// profile.
func (s *workdayService) Disconnect(ctx context.Context) error {
	s.client.Logout()

	profile, err := s.profileService.GetProfile(ctx)
	if err != nil {
		return err
	}
	if !profile.Workday.Enabled {
		return nil
	}
	profile.Workday.Enabled = false
	_, err = s.profileService.UpdateProfile(ctx, profile)
	return err
}

func (s *workdayService) GetSchedule(ctx context.Context, startDate, endDate string) ([]domain.WorkdaySchedule, error) {
	employeeID, err := s.connectedEmployeeID(ctx)
	if err != nil {
		return nil, err
	}
	return s.client.Schedule(ctx, employeeID, startDate, endDate)
}

func (s *workdayService) GetMeetings(ctx context.Context, date string) ([]domain.WorkdayMeeting, error) {
	employeeID, err := s.connectedEmployeeID(ctx)
	if err != nil {
		return nil, err
	}
	return s.client.Meetings(ctx, employeeID, date)
}

func (s *workdayService) GetTimeOff(ctx context.Context, startDate, endDate string) ([]workday.TimeOffEntry, error) {
	employeeID, err := s.connectedEmployeeID(ctx)
	if err != nil {
		return nil, err
	}
	return s.client.TimeOff(ctx, employeeID, startDate, endDate)
}

func (s *workdayService) SyncBreakPreferences(ctx context.Context) error {
	employeeID, err := s.connectedEmployeeID(ctx)
	if err != nil {
		return err
	}
	profile, err := s.profileService.GetProfile(ctx)
	if err != nil {
		return err
	}
	settings, err := s.profileService.GetSettings(ctx)
	if err != nil {
		return err
	}
	prefs := workday.BreakPreferences{
		Frequency:     settings.Frequency,
		Duration:      settings.Duration,
		ExerciseTypes: profile.PreferredExercises,
		WorkingHours: domain.TimeWindow{
			Start: profile.WorkSchedule.StartTime,
			End:   profile.WorkSchedule.EndTime,
		},
	}
	return s.client.UpdateBreakPreferences(ctx, employeeID, prefs)
}

func (s *workdayService) connectedEmployeeID(ctx context.Context) (string, error) {
	profile, err := s.profileService.GetProfile(ctx)
	if err != nil {
		return "", err
	}
	if !profile.Workday.Enabled || profile.Workday.EmployeeID == "" || !s.client.IsAuthenticated() {
		return "", ErrWorkdayNotConnected
	}
	return profile.Workday.EmployeeID, nil
}
