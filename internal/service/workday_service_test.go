package service

import (
	"context"
	"testing"
	"time"

	"alcyxob/deskbreak/internal/workday"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorkdayService(t *testing.T) (WorkdayService, *fakeProfileRepo) {
	t.Helper()
	profiles := &fakeProfileRepo{}
	client := workday.NewMockClient("test-secret", time.Hour)
	return NewWorkdayService(client, NewProfileService(profiles)), profiles
}

func TestWorkdayConnectEnablesIntegration(t *testing.T) {
	svc, profiles := newTestWorkdayService(t)
	ctx := context.Background()

	result, err := svc.Connect(ctx, "demo", "demo")
	require.NoError(t, err)
	require.True(t, result.Success)

	require.NotNil(t, profiles.profile)
	assert.True(t, profiles.profile.Workday.Enabled)
	assert.Equal(t, result.EmployeeID, profiles.profile.Workday.EmployeeID)
}

func TestWorkdayConnectBadCredentials(t *testing.T) {
	svc, profiles := newTestWorkdayService(t)

	result, err := svc.Connect(context.Background(), "demo", "wrong")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
	assert.Nil(t, profiles.profile, "failed connect must not touch the profile")
}

func TestWorkdayQueriesRequireConnection(t *testing.T) {
	svc, _ := newTestWorkdayService(t)
	ctx := context.Background()

	_, err := svc.GetSchedule(ctx, "2025-06-16", "2025-06-20")
	assert.ErrorIs(t, err, ErrWorkdayNotConnected)

	_, err = svc.GetMeetings(ctx, "2025-06-16")
	assert.ErrorIs(t, err, ErrWorkdayNotConnected)

	err = svc.SyncBreakPreferences(ctx)
	assert.ErrorIs(t, err, ErrWorkdayNotConnected)
}

func TestWorkdayScheduleAfterConnect(t *testing.T) {
	svc, _ := newTestWorkdayService(t)
	ctx := context.Background()

	result, err := svc.Connect(ctx, "demo", "demo")
	require.NoError(t, err)
	require.True(t, result.Success)

	schedule, err := svc.GetSchedule(ctx, "2025-06-16", "2025-06-20")
	require.NoError(t, err)
	assert.Len(t, schedule, 5)

	timeOff, err := svc.GetTimeOff(ctx, "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Len(t, timeOff, 2)

	assert.NoError(t, svc.SyncBreakPreferences(ctx))
}

func TestWorkdayDisconnect(t *testing.T) {
	svc, profiles := newTestWorkdayService(t)
	ctx := context.Background()

	result, err := svc.Connect(ctx, "demo", "demo")
	require.NoError(t, err)
	require.True(t, result.Success)

	require.NoError(t, svc.Disconnect(ctx))
	assert.False(t, profiles.profile.Workday.Enabled)

	_, err = svc.GetSchedule(ctx, "2025-06-16", "2025-06-20")
	assert.ErrorIs(t, err, ErrWorkdayNotConnected)
}
