package service

import (
	"context"
	"errors"
	"time"

	"alcyxob/deskbreak/internal/catalog"
	"alcyxob/deskbreak/internal/domain"
	"alcyxob/deskbreak/internal/engine"
	"alcyxob/deskbreak/internal/notify"
	"alcyxob/deskbreak/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound          = errors.New("break session not found")
	ErrSessionAlreadyEnded      = errors.New("break session already ended")
	ErrNoExercisesAvailable     = errors.New("no exercises match the current settings; try a longer duration or fewer restrictions")
	ErrExerciseNotOffered       = errors.New("exercise was not offered in this session")
	ErrExerciseAlreadyCompleted = errors.New("exercise already completed in this session")
	ErrInvalidRating            = errors.New("rating must be between 1 and 5")
)

// DefaultRecencyWindow is how many recent sessions feed the recently
// completed set when no window is configured.
const DefaultRecencyWindow = 10

// BreakService drives the break session lifecycle: recommend, track
// completions, end or skip, collect feedback.
type BreakService interface {
	// Recommendations previews what StartBreak would offer, without
	// creating a session.
	Recommendations(ctx context.Context, preferredCategories []string, count int) ([]domain.Exercise, error)
	StartBreak(ctx context.Context, preferredCategories []string, count int) (*domain.BreakSession, error)
	CompleteExercise(ctx context.Context, sessionID, exerciseID string) (*domain.BreakSession, error)
	EndBreak(ctx context.Context, sessionID string) (*domain.BreakSession, error)
	SkipBreak(ctx context.Context, sessionID string) (*domain.BreakSession, error)
	SubmitFeedback(ctx context.Context, sessionID string, feedback domain.SessionFeedback) (*domain.BreakSession, error)
	GetSession(ctx context.Context, sessionID string) (*domain.BreakSession, error)
	History(ctx context.Context) ([]domain.BreakSession, error)
	NextBreakTime(ctx context.Context) (time.Time, error)
}

type breakService struct {
	catalog        *catalog.Catalog
	sessionRepo    repository.SessionRepository
	favoriteRepo   repository.FavoriteRepository
	profileService ProfileService
	recencyWindow  int
	now            func() time.Time
}

// NewBreakService creates a new instance of breakService. recencyWindow is
// how many recent sessions contribute to the "recently completed" exclusion
// set; <= 0 selects DefaultRecencyWindow.
func NewBreakService(
	cat *catalog.Catalog,
	sessionRepo repository.SessionRepository,
	favoriteRepo repository.FavoriteRepository,
	profileService ProfileService,
	recencyWindow int,
) BreakService {
	if recencyWindow <= 0 {
		recencyWindow = DefaultRecencyWindow
	}
	return &breakService{
		catalog:        cat,
		sessionRepo:    sessionRepo,
		favoriteRepo:   favoriteRepo,
		profileService: profileService,
		recencyWindow:  recencyWindow,
		now:            time.Now,
	}
}

// recommend assembles the engine context from current profile, settings and
// recent completions, and runs the selection pipeline.
func (s *breakService) recommend(ctx context.Context, preferredCategories []string, count int) ([]domain.Exercise, error) {
	profile, err := s.profileService.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.profileService.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.sessionRepo.Recent(ctx, s.recencyWindow)
	if err != nil {
		return nil, err
	}

	var completed []string
	seen := map[string]bool{}
	for _, session := range recent {
		for _, id := range session.CompletedExercises {
			if !seen[id] {
				seen[id] = true
				completed = append(completed, id)
			}
		}
	}

	engineCtx := engine.Context{
		Profile:             profile,
		Settings:            settings,
		TimeOfDay:           s.now().Format("15:04"),
		CompletedExercises:  completed,
		PreferredCategories: preferredCategories,
	}
	return engine.Recommend(s.catalog.Exercises(), engineCtx, count), nil
}

func (s *breakService) Recommendations(ctx context.Context, preferredCategories []string, count int) ([]domain.Exercise, error) {
	return s.recommend(ctx, preferredCategories, count)
}

// StartBreak opens a new session offering the current recommendations. An
// empty recommendation set aborts with ErrNoExercisesAvailable rather than
// creating an empty session.
func (s *breakService) StartBreak(ctx context.Context, preferredCategories []string, count int) (*domain.BreakSession, error) {
	exercises, err := s.recommend(ctx, preferredCategories, count)
	if err != nil {
		return nil, err
	}
	if len(exercises) == 0 {
		return nil, ErrNoExercisesAvailable
	}

	session := &domain.BreakSession{
		ID:        uuid.NewString(),
		StartTime: s.now(),
		Exercises: exercises,
	}
	if err := s.sessionRepo.Insert(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// CompleteExercise marks one offered exercise done and appends it to the
// completion history.
func (s *breakService) CompleteExercise(ctx context.Context, sessionID, exerciseID string) (*domain.BreakSession, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.EndTime != nil {
		return nil, ErrSessionAlreadyEnded
	}
	if !session.Offered(exerciseID) {
		return nil, ErrExerciseNotOffered
	}
	if session.Completed(exerciseID) {
		return nil, ErrExerciseAlreadyCompleted
	}

	session.CompletedExercises = append(session.CompletedExercises, exerciseID)
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	record := repository.CompletionRecord{ExerciseID: exerciseID, CompletedAt: s.now()}
	if err := s.favoriteRepo.AppendCompletion(ctx, record); err != nil {
		// The session update already landed; history is best-effort.
		return session, err
	}
	return session, nil
}

func (s *breakService) EndBreak(ctx context.Context, sessionID string) (*domain.BreakSession, error) {
	return s.close(ctx, sessionID, false)
}

// SkipBreak ends the session immediately and marks it skipped; skipped
// sessions never count toward streaks or break totals.
func (s *breakService) SkipBreak(ctx context.Context, sessionID string) (*domain.BreakSession, error) {
	return s.close(ctx, sessionID, true)
}

func (s *breakService) close(ctx context.Context, sessionID string, skipped bool) (*domain.BreakSession, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.EndTime != nil {
		return nil, ErrSessionAlreadyEnded
	}

	end := s.now()
	session.EndTime = &end
	session.Skipped = skipped
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SubmitFeedback attaches a 1-5 rating (plus liked/comments) to a session,
// before or after it ends.
func (s *breakService) SubmitFeedback(ctx context.Context, sessionID string, feedback domain.SessionFeedback) (*domain.BreakSession, error) {
	if feedback.Rating < 1 || feedback.Rating > 5 {
		return nil, ErrInvalidRating
	}
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.Feedback = &feedback
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *breakService) GetSession(ctx context.Context, sessionID string) (*domain.BreakSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

func (s *breakService) History(ctx context.Context) ([]domain.BreakSession, error) {
	return s.sessionRepo.History(ctx)
}

// NextBreakTime computes when the next break is due from the most recent
// session and the configured frequency.
func (s *breakService) NextBreakTime(ctx context.Context) (time.Time, error) {
	settings, err := s.profileService.GetSettings(ctx)
	if err != nil {
		return time.Time{}, err
	}
	recent, err := s.sessionRepo.Recent(ctx, 1)
	if err != nil {
		return time.Time{}, err
	}
	var last *domain.BreakSession
	if len(recent) > 0 {
		last = &recent[len(recent)-1]
	}
	return notify.NextBreakTime(last, settings, s.now()), nil
}
