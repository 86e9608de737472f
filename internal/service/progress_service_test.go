package service

import (
	"context"
	"testing"
	"time"

	"alcyxob/deskbreak/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProgressFromHistory(t *testing.T) {
	sessions := &fakeSessionRepo{}
	end := testServiceNow.Add(-time.Hour)
	sessions.sessions = []domain.BreakSession{
		{
			ID:                 "b1",
			StartTime:          end.Add(-5 * time.Minute),
			EndTime:            &end,
			Exercises:          []domain.Exercise{{ID: "neck-rolls", Name: "Neck Rolls"}},
			CompletedExercises: []string{"neck-rolls"},
		},
		{ID: "b2", StartTime: testServiceNow.Add(-30 * time.Minute), Skipped: true},
	}

	svc := NewProgressService(sessions, 6).(*progressService)
	svc.now = func() time.Time { return testServiceNow }

	data, err := svc.GetProgress(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2025-06-20", data.Daily.Date)
	assert.Equal(t, 1, data.Daily.BreaksTaken, "skipped session excluded")
	assert.Equal(t, 6, data.Daily.BreaksScheduled, "configured daily target")
	assert.Equal(t, 1, data.Daily.ExercisesCompleted)
	assert.Equal(t, 300, data.Daily.TotalBreakTime)
	assert.Equal(t, 1, data.Daily.Streak)
	assert.Equal(t, 1, data.Weekly.TotalBreaks)
	assert.Equal(t, 1, data.Monthly.TotalBreaks)
}

func TestGetProgressEmptyHistory(t *testing.T) {
	svc := NewProgressService(&fakeSessionRepo{}, 0).(*progressService)
	svc.now = func() time.Time { return testServiceNow }

	data, err := svc.GetProgress(context.Background())
	require.NoError(t, err)
	assert.Zero(t, data.Daily.BreaksTaken)
	assert.Equal(t, 8, data.Daily.BreaksScheduled, "engine default target")
	assert.Zero(t, data.Monthly.ImprovementMetrics.EngagementScore)
}

func TestGetInsights(t *testing.T) {
	svc := NewProgressService(&fakeSessionRepo{}, 0).(*progressService)
	svc.now = func() time.Time { return testServiceNow }

	insights, err := svc.GetInsights(context.Background())
	require.NoError(t, err)
	require.Len(t, insights, 1)
	assert.Equal(t, "Start taking breaks to see your progress insights!", insights[0])
}
