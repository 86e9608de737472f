package mongo

import (
	"context"
	"errors"
	"time"

	"alcyxob/deskbreak/internal/domain"
	"alcyxob/deskbreak/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	profileCollectionName  = "profiles"
	settingsCollectionName = "settings"

	// Single-user app: the profile and settings live in singleton documents.
	singletonKey = "default"
)

// settingsDoc wraps BreakSettings with the fixed document key.
type settingsDoc struct {
	ID       string               `bson:"_id"`
	Settings domain.BreakSettings `bson:"settings"`
}

// profileDoc wraps the profile with the fixed document key; the profile's
// own ObjectID stays inside for API responses.
type profileDoc struct {
	ID      string             `bson:"_id"`
	Profile domain.UserProfile `bson:"profile"`
}

// mongoProfileRepository implements repository.ProfileRepository
type mongoProfileRepository struct {
	profiles *mongo.Collection
	settings *mongo.Collection
}

// NewMongoProfileRepository creates a profile/settings repository backed by MongoDB.
func NewMongoProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return &mongoProfileRepository{
		profiles: db.Collection(profileCollectionName),
		settings: db.Collection(settingsCollectionName),
	}
}

func (r *mongoProfileRepository) GetProfile(ctx context.Context) (*domain.UserProfile, error) {
	var doc profileDoc
	err := r.profiles.FindOne(ctx, bson.M{"_id": singletonKey}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &doc.Profile, nil
}

func (r *mongoProfileRepository) UpsertProfile(ctx context.Context, profile *domain.UserProfile) error {
	now := time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	opts := options.Replace().SetUpsert(true)
	_, err := r.profiles.ReplaceOne(ctx, bson.M{"_id": singletonKey}, profileDoc{ID: singletonKey, Profile: *profile}, opts)
	return err
}

func (r *mongoProfileRepository) GetSettings(ctx context.Context) (*domain.BreakSettings, error) {
	var doc settingsDoc
	err := r.settings.FindOne(ctx, bson.M{"_id": singletonKey}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &doc.Settings, nil
}

func (r *mongoProfileRepository) UpsertSettings(ctx context.Context, settings *domain.BreakSettings) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.settings.ReplaceOne(ctx, bson.M{"_id": singletonKey}, settingsDoc{ID: singletonKey, Settings: *settings}, opts)
	return err
}
