package domain

// Workload labels supplied by the calendar collaborator.
type Workload string

const (
	WorkloadLight    Workload = "light"
	WorkloadModerate Workload = "moderate"
	WorkloadHeavy    Workload = "heavy"
)

// MeetingType distinguishes calendar entries on a workday.
type MeetingType string

const (
	MeetingTypeMeeting   MeetingType = "meeting"
	MeetingTypeFocusTime MeetingType = "focus-time"
	MeetingTypeBreak     MeetingType = "break"
	MeetingTypeLunch     MeetingType = "lunch"
)

// WorkdayMeeting is a single calendar entry ("HH:MM" times).
type WorkdayMeeting struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	StartTime    string      `json:"startTime"`
	EndTime      string      `json:"endTime"`
	Type         MeetingType `json:"type"`
	Participants int         `json:"participants"`
	IsOptional   bool        `json:"isOptional"`
	Location     string      `json:"location"` // "office", "remote" or "hybrid"
}

// WorkingHours describes the working window of a single day.
type WorkingHours struct {
	Start      string  `json:"start"`
	End        string  `json:"end"`
	TotalHours float64 `json:"totalHours"`
}

// TimeOff marks full or partial time off on a day.
type TimeOff struct {
	Type     string  `json:"type"`     // "PTO", "sick", "personal" or "holiday"
	Duration string  `json:"duration"` // "full-day" or "partial"
	Hours    float64 `json:"hours,omitempty"`
}

// WorkdaySchedule is one day of calendar data from the external collaborator.
// The recommendation engine does not consume it for ranking; it is surfaced
// to the user separately.
type WorkdaySchedule struct {
	Date         string           `json:"date"` // YYYY-MM-DD
	WorkingHours WorkingHours     `json:"workingHours"`
	Meetings     []WorkdayMeeting `json:"meetings"`
	TimeOff      *TimeOff         `json:"timeOff"`
	Workload     Workload         `json:"workload"`
}
