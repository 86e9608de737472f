package service

import (
	"context"
	"errors"
	"fmt"

	"alcyxob/deskbreak/internal/catalog"
	"alcyxob/deskbreak/internal/domain"
	"alcyxob/deskbreak/internal/repository"
	"alcyxob/deskbreak/internal/storage"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrNoExerciseImage  = errors.New("exercise has no image")
)

// ExerciseService serves the read-only exercise catalog plus the user's
// favorites list.
type ExerciseService interface {
	ListExercises(ctx context.Context) []domain.Exercise
	GetExerciseByID(ctx context.Context, exerciseID string) (domain.Exercise, error)
	GetExercisesByCategory(ctx context.Context, category string) []domain.Exercise
	ListCategories(ctx context.Context) []string
	RandomExercises(ctx context.Context, count int) []domain.Exercise
	GetExerciseImageURL(ctx context.Context, exerciseID string) (string, error)

	AddFavorite(ctx context.Context, exerciseID string) error
	RemoveFavorite(ctx context.Context, exerciseID string) error
	ListFavorites(ctx context.Context) ([]domain.Exercise, error)
}

type exerciseService struct {
	catalog      *catalog.Catalog
	favoriteRepo repository.FavoriteRepository
	fileStorage  storage.ObjectStorage // May be nil when S3 is disabled
}

// NewExerciseService creates a new instance of exerciseService. fileStorage
// may be nil; image URL requests then fail with ErrNoExerciseImage.
func NewExerciseService(cat *catalog.Catalog, favoriteRepo repository.FavoriteRepository, fileStorage storage.ObjectStorage) ExerciseService {
	return &exerciseService{
		catalog:      cat,
		favoriteRepo: favoriteRepo,
		fileStorage:  fileStorage,
	}
}

func (s *exerciseService) ListExercises(ctx context.Context) []domain.Exercise {
	return s.catalog.Exercises()
}

func (s *exerciseService) GetExerciseByID(ctx context.Context, exerciseID string) (domain.Exercise, error) {
	ex, ok := s.catalog.ByID(exerciseID)
	if !ok {
		return domain.Exercise{}, ErrExerciseNotFound
	}
	return ex, nil
}

func (s *exerciseService) GetExercisesByCategory(ctx context.Context, category string) []domain.Exercise {
	return s.catalog.ByCategory(category)
}

func (s *exerciseService) ListCategories(ctx context.Context) []string {
	return s.catalog.Categories()
}

func (s *exerciseService) RandomExercises(ctx context.Context, count int) []domain.Exercise {
	return s.catalog.Random(count)
}

// GetExerciseImageURL hands out a presigned download link for the exercise
// illustration stored in object storage.
func (s *exerciseService) GetExerciseImageURL(ctx context.Context, exerciseID string) (string, error) {
	ex, ok := s.catalog.ByID(exerciseID)
	if !ok {
		return "", ErrExerciseNotFound
	}
	if ex.ImageKey == "" || s.fileStorage == nil {
		return "", ErrNoExerciseImage
	}
	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, ex.ImageKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", fmt.Errorf("presign image for %q: %w", exerciseID, err)
	}
	return url, nil
}

// AddFavorite records an exercise as favorite. The id must exist in the
// catalog so the favorites list never dangles.
func (s *exerciseService) AddFavorite(ctx context.Context, exerciseID string) error {
	if _, ok := s.catalog.ByID(exerciseID); !ok {
		return ErrExerciseNotFound
	}
	return s.favoriteRepo.AddFavorite(ctx, exerciseID)
}

func (s *exerciseService) RemoveFavorite(ctx context.Context, exerciseID string) error {
	return s.favoriteRepo.RemoveFavorite(ctx, exerciseID)
}

// ListFavorites resolves stored favorite ids against the catalog. Ids that
// no longer resolve (catalog edits between releases) are silently dropped.
func (s *exerciseService) ListFavorites(ctx context.Context) ([]domain.Exercise, error) {
	ids, err := s.favoriteRepo.ListFavorites(ctx)
	if err != nil {
		return nil, err
	}
	exercises := make([]domain.Exercise, 0, len(ids))
	for _, id := range ids {
		if ex, ok := s.catalog.ByID(id); ok {
			exercises = append(exercises, ex)
		}
	}
	return exercises, nil
}
