package service

import (
	"context"
	"time"

	"alcyxob/deskbreak/internal/domain"
	"alcyxob/deskbreak/internal/engine"
	"alcyxob/deskbreak/internal/repository"
)

// ProgressService computes the dashboard analytics from the session history.
// Each call takes one history snapshot so daily, weekly and monthly numbers
// are always consistent with each other.
type ProgressService interface {
	GetProgress(ctx context.Context) (domain.ProgressData, error)
	GetInsights(ctx context.Context) ([]string, error)
}

type progressService struct {
	sessionRepo repository.SessionRepository
	dailyTarget int
	now         func() time.Time
}

// NewProgressService creates a new instance of progressService. dailyTarget
// is the configured breaks-per-day goal; <= 0 selects the engine default.
func NewProgressService(sessionRepo repository.SessionRepository, dailyTarget int) ProgressService {
	return &progressService{
		sessionRepo: sessionRepo,
		dailyTarget: dailyTarget,
		now:         time.Now,
	}
}

func (s *progressService) GetProgress(ctx context.Context) (domain.ProgressData, error) {
	history, err := s.sessionRepo.History(ctx)
	if err != nil {
		return domain.ProgressData{}, err
	}
	return engine.Progress(history, s.dailyTarget, s.now()), nil
}

func (s *progressService) GetInsights(ctx context.Context) ([]string, error) {
	data, err := s.GetProgress(ctx)
	if err != nil {
		return nil, err
	}
	return engine.Insights(data), nil
}
