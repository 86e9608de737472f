package service

import (
	"context"
	"testing"
	"time"

	"alcyxob/deskbreak/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartBreakOffersRecommendations(t *testing.T) {
	svc, sessions, _ := newTestBreakService(t)
	ctx := context.Background()

	session, err := svc.StartBreak(ctx, nil, 3)
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, testServiceNow, session.StartTime)
	assert.Nil(t, session.EndTime)
	assert.Len(t, session.Exercises, 3)
	require.Len(t, sessions.sessions, 1)
	assert.Equal(t, session.ID, sessions.sessions[0].ID)
}

func TestStartBreakExcludesRecentlyCompleted(t *testing.T) {
	svc, _, _ := newTestBreakService(t)
	ctx := context.Background()

	first, err := svc.StartBreak(ctx, nil, 4)
	require.NoError(t, err)
	_, err = svc.CompleteExercise(ctx, first.ID, first.Exercises[0].ID)
	require.NoError(t, err)

	second, err := svc.StartBreak(ctx, nil, 4)
	require.NoError(t, err)
	for _, ex := range second.Exercises {
		assert.NotEqual(t, first.Exercises[0].ID, ex.ID, "recently completed exercise must not be re-offered")
	}
}

func TestStartBreakNoMatchReturnsError(t *testing.T) {
	svc, sessions, _ := newTestBreakService(t)

	// A category nothing in the catalog carries leaves nothing eligible.
	_, err := svc.StartBreak(context.Background(), []string{"swimming"}, 3)
	assert.ErrorIs(t, err, ErrNoExercisesAvailable)
	assert.Empty(t, sessions.sessions, "no session is created for an empty offer")
}

func TestRecommendationsDoNotCreateSessions(t *testing.T) {
	svc, sessions, _ := newTestBreakService(t)

	recs, err := svc.Recommendations(context.Background(), nil, 2)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
	assert.Empty(t, sessions.sessions)
}

func TestCompleteExerciseGuards(t *testing.T) {
	svc, _, favorites := newTestBreakService(t)
	ctx := context.Background()

	session, err := svc.StartBreak(ctx, nil, 2)
	require.NoError(t, err)
	offered := session.Exercises[0].ID

	_, err = svc.CompleteExercise(ctx, "no-such-session", offered)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.CompleteExercise(ctx, session.ID, "not-in-offer")
	assert.ErrorIs(t, err, ErrExerciseNotOffered)

	updated, err := svc.CompleteExercise(ctx, session.ID, offered)
	require.NoError(t, err)
	assert.Equal(t, []string{offered}, updated.CompletedExercises)
	require.Len(t, favorites.completions, 1)
	assert.Equal(t, offered, favorites.completions[0].ExerciseID)

	_, err = svc.CompleteExercise(ctx, session.ID, offered)
	assert.ErrorIs(t, err, ErrExerciseAlreadyCompleted)

	_, err = svc.EndBreak(ctx, session.ID)
	require.NoError(t, err)
	_, err = svc.CompleteExercise(ctx, session.ID, session.Exercises[1].ID)
	assert.ErrorIs(t, err, ErrSessionAlreadyEnded)
}

func TestEndBreakIsFinal(t *testing.T) {
	svc, _, _ := newTestBreakService(t)
	ctx := context.Background()

	session, err := svc.StartBreak(ctx, nil, 2)
	require.NoError(t, err)

	ended, err := svc.EndBreak(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, ended.EndTime)
	assert.Equal(t, testServiceNow, *ended.EndTime)
	assert.False(t, ended.Skipped)

	_, err = svc.EndBreak(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSessionAlreadyEnded)
}

func TestSkipBreakMarksSkipped(t *testing.T) {
	svc, _, _ := newTestBreakService(t)
	ctx := context.Background()

	session, err := svc.StartBreak(ctx, nil, 2)
	require.NoError(t, err)

	skipped, err := svc.SkipBreak(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, skipped.Skipped)
	require.NotNil(t, skipped.EndTime)
}

func TestSubmitFeedbackValidatesRating(t *testing.T) {
	svc, _, _ := newTestBreakService(t)
	ctx := context.Background()

	session, err := svc.StartBreak(ctx, nil, 2)
	require.NoError(t, err)

	for _, rating := range []int{0, 6, -1} {
		_, err = svc.SubmitFeedback(ctx, session.ID, domain.SessionFeedback{Rating: rating})
		assert.ErrorIs(t, err, ErrInvalidRating, "rating %d", rating)
	}

	updated, err := svc.SubmitFeedback(ctx, session.ID, domain.SessionFeedback{Rating: 5, Liked: true})
	require.NoError(t, err)
	require.NotNil(t, updated.Feedback)
	assert.Equal(t, 5, updated.Feedback.Rating)
}

func TestNextBreakTime(t *testing.T) {
	svc, _, _ := newTestBreakService(t)
	ctx := context.Background()

	// No history: default frequency (60 min) from now.
	next, err := svc.NextBreakTime(ctx)
	require.NoError(t, err)
	assert.Equal(t, testServiceNow.Add(time.Hour), next)

	session, err := svc.StartBreak(ctx, nil, 2)
	require.NoError(t, err)
	_, err = svc.EndBreak(ctx, session.ID)
	require.NoError(t, err)

	next, err = svc.NextBreakTime(ctx)
	require.NoError(t, err)
	assert.Equal(t, testServiceNow.Add(time.Hour), next, "measured from the session end")
}
