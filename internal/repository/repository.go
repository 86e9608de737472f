package repository

import (
	"context"
	"time"

	"alcyxob/deskbreak/internal/domain"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ProfileRepository persists the user profile and break settings. This is a
// single-user app: both are singleton documents, and a missing document is
// reported as ErrNotFound so the caller can fall back to defaults.
type ProfileRepository interface {
	GetProfile(ctx context.Context) (*domain.UserProfile, error)
	UpsertProfile(ctx context.Context, profile *domain.UserProfile) error
	GetSettings(ctx context.Context) (*domain.BreakSettings, error)
	UpsertSettings(ctx context.Context, settings *domain.BreakSettings) error
}

// SessionRepository persists break sessions. History is ordered by start
// time ascending; Recent returns the n most recent sessions, oldest first.
type SessionRepository interface {
	Insert(ctx context.Context, session *domain.BreakSession) error
	Update(ctx context.Context, session *domain.BreakSession) error
	GetByID(ctx context.Context, id string) (*domain.BreakSession, error)
	History(ctx context.Context) ([]domain.BreakSession, error)
	Recent(ctx context.Context, n int) ([]domain.BreakSession, error)
}

// CompletionRecord is one completed exercise with optional feedback,
// appended as sessions progress.
type CompletionRecord struct {
	ExerciseID  string    `bson:"exerciseId" json:"exerciseId"`
	CompletedAt time.Time `bson:"completedAt" json:"completedAt"`
	Rating      int       `bson:"rating,omitempty" json:"rating,omitempty"`
	Liked       bool      `bson:"liked" json:"liked"`
}

// FavoriteRepository persists favorite exercise ids and the per-exercise
// completion log.
type FavoriteRepository interface {
	AddFavorite(ctx context.Context, exerciseID string) error
	RemoveFavorite(ctx context.Context, exerciseID string) error
	ListFavorites(ctx context.Context) ([]string, error)
	AppendCompletion(ctx context.Context, record CompletionRecord) error
	Completions(ctx context.Context) ([]CompletionRecord, error)
}
