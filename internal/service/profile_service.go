package service

import (
	"context"
	"errors"
	"log"
	"time"

	"alcyxob/deskbreak/internal/domain"
	"alcyxob/deskbreak/internal/repository"
)

var (
	ErrInvalidFitnessLevel = errors.New("fitness level must be beginner, intermediate or advanced")
	ErrInvalidWorkSetup    = errors.New("work setup must be desk, standing or hybrid")
	ErrInvalidSettings     = errors.New("break frequency and duration must be positive")
	ErrInvalidVolume       = errors.New("volume must be between 0.0 and 1.0")
)

// ProfileService manages the user profile and break settings. Missing
// documents fall back to defaults so a fresh install works without an
// onboarding write.
type ProfileService interface {
	GetProfile(ctx context.Context) (domain.UserProfile, error)
	UpdateProfile(ctx context.Context, profile domain.UserProfile) (domain.UserProfile, error)
	GetSettings(ctx context.Context) (domain.BreakSettings, error)
	UpdateSettings(ctx context.Context, settings domain.BreakSettings) (domain.BreakSettings, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

// GetProfile returns the stored profile, or the onboarding default when none
// exists yet.
func (s *profileService) GetProfile(ctx context.Context) (domain.UserProfile, error) {
	profile, err := s.profileRepo.GetProfile(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.DefaultProfile(), nil
		}
		return domain.UserProfile{}, err
	}
	return *profile, nil
}

// UpdateProfile validates and persists the profile, refreshing timestamps.
func (s *profileService) UpdateProfile(ctx context.Context, profile domain.UserProfile) (domain.UserProfile, error) {
	switch profile.FitnessLevel {
	case domain.FitnessBeginner, domain.FitnessIntermediate, domain.FitnessAdvanced:
	default:
		return domain.UserProfile{}, ErrInvalidFitnessLevel
	}
	switch profile.WorkSetup {
	case domain.SetupDesk, domain.SetupStanding, domain.SetupHybrid:
	default:
		return domain.UserProfile{}, ErrInvalidWorkSetup
	}

	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	if err := s.profileRepo.UpsertProfile(ctx, &profile); err != nil {
		return domain.UserProfile{}, err
	}
	return profile, nil
}

// GetSettings returns the stored break settings, or the defaults when none
// exist. A read error other than not-found keeps the defaults too, but is
// logged: settings drive the break loop and must never block it.
func (s *profileService) GetSettings(ctx context.Context) (domain.BreakSettings, error) {
	settings, err := s.profileRepo.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.DefaultBreakSettings(), nil
		}
		log.Printf("WARN: Failed to load break settings, using defaults: %v", err)
		return domain.DefaultBreakSettings(), nil
	}
	return *settings, nil
}

// UpdateSettings validates and persists the break settings.
func (s *profileService) UpdateSettings(ctx context.Context, settings domain.BreakSettings) (domain.BreakSettings, error) {
	if settings.Frequency <= 0 || settings.Duration <= 0 {
		return domain.BreakSettings{}, ErrInvalidSettings
	}
	if settings.Volume < 0 || settings.Volume > 1 {
		return domain.BreakSettings{}, ErrInvalidVolume
	}
	if err := s.profileRepo.UpsertSettings(ctx, &settings); err != nil {
		return domain.BreakSettings{}, err
	}
	return settings, nil
}
