package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExerciseService(t *testing.T) (ExerciseService, *fakeFavoriteRepo) {
	t.Helper()
	favorites := &fakeFavoriteRepo{}
	return NewExerciseService(testCatalog(t), favorites, nil), favorites
}

func TestGetExerciseByID(t *testing.T) {
	svc, _ := newTestExerciseService(t)
	ctx := context.Background()

	ex, err := svc.GetExerciseByID(ctx, "neck-rolls")
	require.NoError(t, err)
	assert.Equal(t, "Neck Rolls", ex.Name)

	_, err = svc.GetExerciseByID(ctx, "nope")
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}

func TestListAndFilterExercises(t *testing.T) {
	svc, _ := newTestExerciseService(t)
	ctx := context.Background()

	assert.Len(t, svc.ListExercises(ctx), 4)
	assert.Len(t, svc.GetExercisesByCategory(ctx, "stretching"), 2)
	assert.Empty(t, svc.GetExercisesByCategory(ctx, "swimming"))
	assert.Equal(t, []string{"stretching", "cardio", "breathing"}, svc.ListCategories(ctx))
	assert.Len(t, svc.RandomExercises(ctx, 2), 2)
}

func TestFavoritesValidateAgainstCatalog(t *testing.T) {
	svc, _ := newTestExerciseService(t)
	ctx := context.Background()

	err := svc.AddFavorite(ctx, "nope")
	assert.ErrorIs(t, err, ErrExerciseNotFound)

	require.NoError(t, svc.AddFavorite(ctx, "neck-rolls"))
	require.NoError(t, svc.AddFavorite(ctx, "desk-march"))

	favorites, err := svc.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, "Neck Rolls", favorites[0].Name)

	require.NoError(t, svc.RemoveFavorite(ctx, "neck-rolls"))
	favorites, err = svc.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Desk March", favorites[0].Name)
}

func TestImageURLWithoutStorage(t *testing.T) {
	svc, _ := newTestExerciseService(t)

	_, err := svc.GetExerciseImageURL(context.Background(), "neck-rolls")
	assert.ErrorIs(t, err, ErrNoExerciseImage)

	_, err = svc.GetExerciseImageURL(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}
