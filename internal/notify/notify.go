// Package notify renders notification payloads for the break flow. Delivery
// is the caller's job; this package only decides the title/body strings and
// when the next break is due.
package notify

import (
	"fmt"
	"time"

	"alcyxob/deskbreak/internal/domain"
)

// Notification is a ready-to-deliver payload.
type Notification struct {
	Title              string `json:"title"`
	Body               string `json:"body"`
	Tag                string `json:"tag"`
	RequireInteraction bool   `json:"requireInteraction"`
}

// BreakReminder announces an upcoming break. timeUntilBreak is in seconds;
// whole minutes are phrased as minutes, anything shorter as seconds.
func BreakReminder(timeUntilBreak int) Notification {
	minutes := timeUntilBreak / 60
	seconds := timeUntilBreak % 60

	var message string
	if minutes > 0 {
		message = fmt.Sprintf("Break time in %d minute%s", minutes, plural(minutes))
	} else {
		message = fmt.Sprintf("Break time in %d second%s", seconds, plural(seconds))
	}

	return Notification{
		Title: "Break Reminder",
		Body:  message,
		Tag:   "break-reminder",
	}
}

// BreakTime announces that the break starts now.
func BreakTime() Notification {
	return Notification{
		Title:              "Break Time!",
		Body:               "Time for your scheduled break. Click to start your exercises.",
		Tag:                "break-time",
		RequireInteraction: true,
	}
}

// ExerciseComplete congratulates on one finished exercise.
func ExerciseComplete(exerciseName string) Notification {
	return Notification{
		Title: "Exercise Complete",
		Body:  fmt.Sprintf("Great job completing %s!", exerciseName),
		Tag:   "exercise-complete",
	}
}

// BreakComplete wraps up a finished break.
func BreakComplete(exercisesCompleted int) Notification {
	return Notification{
		Title: "Break Complete",
		Body:  fmt.Sprintf("Well done! You completed %d exercise%s.", exercisesCompleted, plural(exercisesCompleted)),
		Tag:   "break-complete",
	}
}

// NextBreakTime computes when the next break is due: frequency minutes after
// the reference point. The reference is the last session's end (or start for
// sessions still open) when one exists, otherwise now.
func NextBreakTime(last *domain.BreakSession, settings domain.BreakSettings, now time.Time) time.Time {
	ref := now
	if last != nil {
		if last.EndTime != nil {
			ref = *last.EndTime
		} else {
			ref = last.StartTime
		}
	}
	next := ref.Add(time.Duration(settings.Frequency) * time.Minute)
	if next.Before(now) {
		return now
	}
	return next
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
