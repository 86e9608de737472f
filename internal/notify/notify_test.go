package notify

import (
	"testing"
	"time"

	"alcyxob/deskbreak/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBreakReminderPhrasing(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{300, "Break time in 5 minutes"},
		{60, "Break time in 1 minute"},
		{90, "Break time in 1 minute"},
		{45, "Break time in 45 seconds"},
		{1, "Break time in 1 second"},
	}
	for _, tc := range tests {
		n := BreakReminder(tc.seconds)
		assert.Equal(t, tc.want, n.Body)
		assert.Equal(t, "Break Reminder", n.Title)
		assert.Equal(t, "break-reminder", n.Tag)
		assert.False(t, n.RequireInteraction)
	}
}

func TestBreakTimeRequiresInteraction(t *testing.T) {
	n := BreakTime()
	assert.Equal(t, "Break Time!", n.Title)
	assert.True(t, n.RequireInteraction)
}

func TestExerciseComplete(t *testing.T) {
	n := ExerciseComplete("Neck Rolls")
	assert.Equal(t, "Great job completing Neck Rolls!", n.Body)
	assert.Equal(t, "exercise-complete", n.Tag)
}

func TestBreakCompletePlural(t *testing.T) {
	assert.Equal(t, "Well done! You completed 1 exercise.", BreakComplete(1).Body)
	assert.Equal(t, "Well done! You completed 3 exercises.", BreakComplete(3).Body)
}

func TestNextBreakTime(t *testing.T) {
	now := time.Date(2025, time.June, 20, 14, 0, 0, 0, time.UTC)
	settings := domain.BreakSettings{Frequency: 60}

	// No history yet: one frequency from now.
	assert.Equal(t, now.Add(time.Hour), NextBreakTime(nil, settings, now))

	// Last break ended 20 minutes ago: due in 40.
	end := now.Add(-20 * time.Minute)
	last := &domain.BreakSession{StartTime: end.Add(-5 * time.Minute), EndTime: &end}
	assert.Equal(t, now.Add(40*time.Minute), NextBreakTime(last, settings, now))

	// Overdue breaks clamp to now.
	staleEnd := now.Add(-3 * time.Hour)
	stale := &domain.BreakSession{StartTime: staleEnd.Add(-5 * time.Minute), EndTime: &staleEnd}
	assert.Equal(t, now, NextBreakTime(stale, settings, now))

	// Open session: measured from its start.
	open := &domain.BreakSession{StartTime: now.Add(-10 * time.Minute)}
	assert.Equal(t, now.Add(50*time.Minute), NextBreakTime(open, settings, now))
}
