package service

import (
	"context"
	"testing"
	"time"

	"alcyxob/deskbreak/internal/catalog"
	"alcyxob/deskbreak/internal/domain"
	"alcyxob/deskbreak/internal/repository"

	"github.com/stretchr/testify/require"
)

// In-memory repository fakes. They implement just enough semantics for the
// service layer: singleton profile/settings documents, insertion-ordered
// session history.

type fakeProfileRepo struct {
	profile  *domain.UserProfile
	settings *domain.BreakSettings
}

func (r *fakeProfileRepo) GetProfile(ctx context.Context) (*domain.UserProfile, error) {
	if r.profile == nil {
		return nil, repository.ErrNotFound
	}
	p := *r.profile
	return &p, nil
}

func (r *fakeProfileRepo) UpsertProfile(ctx context.Context, profile *domain.UserProfile) error {
	p := *profile
	r.profile = &p
	return nil
}

func (r *fakeProfileRepo) GetSettings(ctx context.Context) (*domain.BreakSettings, error) {
	if r.settings == nil {
		return nil, repository.ErrNotFound
	}
	s := *r.settings
	return &s, nil
}

func (r *fakeProfileRepo) UpsertSettings(ctx context.Context, settings *domain.BreakSettings) error {
	s := *settings
	r.settings = &s
	return nil
}

type fakeSessionRepo struct {
	sessions []domain.BreakSession // insertion order == start order
}

func (r *fakeSessionRepo) Insert(ctx context.Context, session *domain.BreakSession) error {
	r.sessions = append(r.sessions, *session)
	return nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, session *domain.BreakSession) error {
	for i := range r.sessions {
		if r.sessions[i].ID == session.ID {
			r.sessions[i] = *session
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeSessionRepo) GetByID(ctx context.Context, id string) (*domain.BreakSession, error) {
	for i := range r.sessions {
		if r.sessions[i].ID == id {
			s := r.sessions[i]
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeSessionRepo) History(ctx context.Context) ([]domain.BreakSession, error) {
	out := make([]domain.BreakSession, len(r.sessions))
	copy(out, r.sessions)
	return out, nil
}

func (r *fakeSessionRepo) Recent(ctx context.Context, n int) ([]domain.BreakSession, error) {
	if n > len(r.sessions) {
		n = len(r.sessions)
	}
	out := make([]domain.BreakSession, n)
	copy(out, r.sessions[len(r.sessions)-n:])
	return out, nil
}

type fakeFavoriteRepo struct {
	favorites   []string
	completions []repository.CompletionRecord
}

func (r *fakeFavoriteRepo) AddFavorite(ctx context.Context, exerciseID string) error {
	for _, id := range r.favorites {
		if id == exerciseID {
			return nil
		}
	}
	r.favorites = append(r.favorites, exerciseID)
	return nil
}

func (r *fakeFavoriteRepo) RemoveFavorite(ctx context.Context, exerciseID string) error {
	for i, id := range r.favorites {
		if id == exerciseID {
			r.favorites = append(r.favorites[:i], r.favorites[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeFavoriteRepo) ListFavorites(ctx context.Context) ([]string, error) {
	out := make([]string, len(r.favorites))
	copy(out, r.favorites)
	return out, nil
}

func (r *fakeFavoriteRepo) AppendCompletion(ctx context.Context, record repository.CompletionRecord) error {
	r.completions = append(r.completions, record)
	return nil
}

func (r *fakeFavoriteRepo) Completions(ctx context.Context) ([]repository.CompletionRecord, error) {
	out := make([]repository.CompletionRecord, len(r.completions))
	copy(out, r.completions)
	return out, nil
}

// testCatalog is a small catalog of easy, no-equipment exercises that every
// default profile is eligible for.
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]domain.Exercise{
		{ID: "neck-rolls", Name: "Neck Rolls", Duration: 60, Difficulty: domain.DifficultyEasy, Category: "stretching"},
		{ID: "desk-march", Name: "Desk March", Duration: 90, Difficulty: domain.DifficultyEasy, Category: "cardio"},
		{ID: "deep-breathing", Name: "Deep Breathing", Duration: 120, Difficulty: domain.DifficultyEasy, Category: "breathing"},
		{ID: "wrist-circles", Name: "Wrist Circles", Duration: 45, Difficulty: domain.DifficultyEasy, Category: "stretching"},
	})
	require.NoError(t, err)
	return cat
}

var testServiceNow = time.Date(2025, time.June, 20, 14, 0, 0, 0, time.UTC)

// newTestBreakService wires a breakService over fakes with a fixed clock.
func newTestBreakService(t *testing.T) (*breakService, *fakeSessionRepo, *fakeFavoriteRepo) {
	t.Helper()
	sessions := &fakeSessionRepo{}
	favorites := &fakeFavoriteRepo{}
	profiles := &fakeProfileRepo{}
	svc := NewBreakService(testCatalog(t), sessions, favorites, NewProfileService(profiles), 0).(*breakService)
	svc.now = func() time.Time { return testServiceNow }
	return svc, sessions, favorites
}
