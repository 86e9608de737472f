package workday

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"alcyxob/deskbreak/internal/domain"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const (
	demoUsername   = "demo"
	demoEmployeeID = "EMP-12345"

	scheduleDayStart = "09:00"
	scheduleDayEnd   = "17:00"
)

// demoPasswordHash is bcrypt("demo"); the mock keeps its credential hashed
// the way a real integration would store it.
var demoPasswordHash = func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("demo"), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return hash
}()

var _ Client = (*MockClient)(nil)

// tokenClaims is the JWT payload the mock mints on login.
type tokenClaims struct {
	EmployeeID string `json:"emp"`
	jwt.RegisteredClaims
}

// MockClient is a deterministic stand-in for the Workday calendar API. Safe
// for concurrent use; injected wherever calendar data is needed instead of
// living behind a package-level singleton.
type MockClient struct {
	tokenSecret []byte
	tokenExpiry time.Duration

	mu         sync.Mutex
	authToken  string
	employeeID string
}

// NewMockClient creates a mock calendar client. tokenExpiry <= 0 defaults
// to 24 hours.
func NewMockClient(tokenSecret string, tokenExpiry time.Duration) *MockClient {
	if tokenExpiry <= 0 {
		tokenExpiry = 24 * time.Hour
	}
	return &MockClient{
		tokenSecret: []byte(tokenSecret),
		tokenExpiry: tokenExpiry,
	}
}

// Authenticate accepts only the demo/demo credentials. A failed attempt is
// not an error at the transport level: the result carries the descriptive
// message, mirroring how the real provider reports it.
func (c *MockClient) Authenticate(ctx context.Context, creds Credentials) (AuthResult, error) {
	if creds.Username != demoUsername ||
		bcrypt.CompareHashAndPassword(demoPasswordHash, []byte(creds.Password)) != nil {
		return AuthResult{Success: false, Error: ErrInvalidCredentials.Error()}, nil
	}

	expires := time.Now().Add(c.tokenExpiry)
	claims := tokenClaims{
		EmployeeID: demoEmployeeID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.tokenSecret)
	if err != nil {
		return AuthResult{}, fmt.Errorf("sign workday token: %w", err)
	}

	c.mu.Lock()
	c.authToken = token
	c.employeeID = demoEmployeeID
	c.mu.Unlock()

	return AuthResult{
		Success:    true,
		Token:      token,
		EmployeeID: demoEmployeeID,
		Expires:    expires,
	}, nil
}

// Logout drops the session token.
func (c *MockClient) Logout() {
	c.mu.Lock()
	c.authToken = ""
	c.employeeID = ""
	c.mu.Unlock()
}

// IsAuthenticated reports whether a valid, unexpired token is held.
func (c *MockClient) IsAuthenticated() bool {
	c.mu.Lock()
	token := c.authToken
	c.mu.Unlock()
	if token == "" {
		return false
	}

	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.tokenSecret, nil
	})
	return err == nil && parsed.Valid
}

func (c *MockClient) requireAuth() error {
	if !c.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	return nil
}

// Schedule generates the deterministic mock schedule for the inclusive date
// range (YYYY-MM-DD). Weekends carry no schedule.
func (c *MockClient) Schedule(ctx context.Context, employeeID, startDate, endDate string) ([]domain.WorkdaySchedule, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}

	var schedules []domain.WorkdaySchedule
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		schedules = append(schedules, generateDaySchedule(day))
	}
	return schedules, nil
}

// Meetings returns the meetings for a single day.
func (c *MockClient) Meetings(ctx context.Context, employeeID, date string) ([]domain.WorkdayMeeting, error) {
	schedules, err := c.Schedule(ctx, employeeID, date, date)
	if err != nil {
		return nil, err
	}
	if len(schedules) == 0 {
		return nil, nil
	}
	return schedules[0].Meetings, nil
}

// mock time-off entries, fixed like the original sample data.
var mockTimeOff = []TimeOffEntry{
	{Date: "2024-01-20", Type: "PTO", Duration: "full-day"},
	{Date: "2024-01-25", Type: "personal", Duration: "partial", Hours: 4},
}

// TimeOff returns booked time off within the inclusive date range.
func (c *MockClient) TimeOff(ctx context.Context, employeeID, startDate, endDate string) ([]TimeOffEntry, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}

	var entries []TimeOffEntry
	for _, entry := range mockTimeOff {
		if entry.Date >= startDate && entry.Date <= endDate {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// UpdateBreakPreferences pretends to push break preferences to the provider.
func (c *MockClient) UpdateBreakPreferences(ctx context.Context, employeeID string, prefs BreakPreferences) error {
	return c.requireAuth()
}

// GetEmployeeProfile returns the fixed demo employee.
func (c *MockClient) GetEmployeeProfile(ctx context.Context, employeeID string) (EmployeeProfile, error) {
	if err := c.requireAuth(); err != nil {
		return EmployeeProfile{}, err
	}
	return EmployeeProfile{
		ID:           employeeID,
		Name:         "John Doe",
		Department:   "Engineering",
		Role:         "Software Developer",
		Manager:      "Jane Smith",
		WorkLocation: "hybrid",
	}, nil
}

// generateDaySchedule builds one weekday: standup and lunch every day, plus
// a per-weekday meeting set and workload label.
func generateDaySchedule(day time.Time) domain.WorkdaySchedule {
	dateStr := day.Format("2006-01-02")
	workload := domain.WorkloadModerate

	meetings := []domain.WorkdayMeeting{
		{
			ID: "standup-" + dateStr, Title: "Team Standup",
			StartTime: "09:00", EndTime: "09:30",
			Type: domain.MeetingTypeMeeting, Participants: 6, Location: "remote",
		},
		{
			ID: "lunch-" + dateStr, Title: "Lunch Break",
			StartTime: "12:00", EndTime: "13:00",
			Type: domain.MeetingTypeLunch, Participants: 1, Location: "office",
		},
	}

	switch day.Weekday() {
	case time.Monday:
		workload = domain.WorkloadHeavy
		meetings = append(meetings,
			domain.WorkdayMeeting{
				ID: "planning-" + dateStr, Title: "Weekly Planning",
				StartTime: "10:00", EndTime: "11:30",
				Type: domain.MeetingTypeMeeting, Participants: 8, Location: "office",
			},
			domain.WorkdayMeeting{
				ID: "review-" + dateStr, Title: "Project Review",
				StartTime: "14:00", EndTime: "15:30",
				Type: domain.MeetingTypeMeeting, Participants: 6, Location: "remote",
			},
		)
	case time.Tuesday:
		meetings = append(meetings,
			domain.WorkdayMeeting{
				ID: "oneOnOne-" + dateStr, Title: "One-on-One with Manager",
				StartTime: "11:00", EndTime: "11:30",
				Type: domain.MeetingTypeMeeting, Participants: 2, Location: "office",
			},
			domain.WorkdayMeeting{
				ID: "focus-" + dateStr, Title: "Focus Time - Development",
				StartTime: "14:00", EndTime: "16:00",
				Type: domain.MeetingTypeFocusTime, Participants: 1, Location: "remote",
			},
		)
	case time.Wednesday:
		workload = domain.WorkloadHeavy
		meetings = append(meetings,
			domain.WorkdayMeeting{
				ID: "sprint-" + dateStr, Title: "Sprint Planning",
				StartTime: "10:00", EndTime: "12:00",
				Type: domain.MeetingTypeMeeting, Participants: 8, Location: "office",
			},
			domain.WorkdayMeeting{
				ID: "architecture-" + dateStr, Title: "Architecture Discussion",
				StartTime: "14:00", EndTime: "15:30",
				Type: domain.MeetingTypeMeeting, Participants: 5, Location: "remote",
			},
		)
	case time.Thursday:
		meetings = append(meetings,
			domain.WorkdayMeeting{
				ID: "deepWork-" + dateStr, Title: "Focus Time - Deep Work",
				StartTime: "10:00", EndTime: "12:00",
				Type: domain.MeetingTypeFocusTime, Participants: 1, Location: "remote",
			},
			domain.WorkdayMeeting{
				ID: "training-" + dateStr, Title: "Training Session",
				StartTime: "14:00", EndTime: "15:00",
				Type: domain.MeetingTypeMeeting, Participants: 12, IsOptional: true, Location: "remote",
			},
		)
	case time.Friday:
		workload = domain.WorkloadLight
		meetings = append(meetings,
			domain.WorkdayMeeting{
				ID: "demo-" + dateStr, Title: "Sprint Demo",
				StartTime: "10:00", EndTime: "11:00",
				Type: domain.MeetingTypeMeeting, Participants: 10, Location: "office",
			},
			domain.WorkdayMeeting{
				ID: "social-" + dateStr, Title: "Team Social Hour",
				StartTime: "16:00", EndTime: "17:00",
				Type: domain.MeetingTypeMeeting, Participants: 8, IsOptional: true, Location: "office",
			},
		)
	}

	sort.SliceStable(meetings, func(i, j int) bool {
		return meetings[i].StartTime < meetings[j].StartTime
	})

	return domain.WorkdaySchedule{
		Date: dateStr,
		WorkingHours: domain.WorkingHours{
			Start:      scheduleDayStart,
			End:        scheduleDayEnd,
			TotalHours: 8,
		},
		Meetings: meetings,
		TimeOff:  nil,
		Workload: workload,
	}
}
