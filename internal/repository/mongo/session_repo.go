package mongo

import (
	"context"
	"errors"

	"alcyxob/deskbreak/internal/domain"
	"alcyxob/deskbreak/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const sessionCollectionName = "break_sessions"

// mongoSessionRepository implements repository.SessionRepository
type mongoSessionRepository struct {
	collection *mongo.Collection
}

// NewMongoSessionRepository creates a break session repository backed by MongoDB.
func NewMongoSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &mongoSessionRepository{
		collection: db.Collection(sessionCollectionName),
	}
}

// Insert stores a new break session.
func (r *mongoSessionRepository) Insert(ctx context.Context, session *domain.BreakSession) error {
	if session.ID == "" {
		return errors.New("session ID is required")
	}
	_, err := r.collection.InsertOne(ctx, session)
	return err
}

// Update replaces an existing session document.
func (r *mongoSessionRepository) Update(ctx context.Context, session *domain.BreakSession) error {
	if session.ID == "" {
		return errors.New("session ID is required for update")
	}
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": session.ID}, session)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// GetByID retrieves a session by its ID.
func (r *mongoSessionRepository) GetByID(ctx context.Context, id string) (*domain.BreakSession, error) {
	var session domain.BreakSession
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// History returns the full session history ordered by start time ascending.
func (r *mongoSessionRepository) History(ctx context.Context) ([]domain.BreakSession, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	return r.find(ctx, bson.M{}, findOptions)
}

// Recent returns the n most recent sessions, oldest first.
func (r *mongoSessionRepository) Recent(ctx context.Context, n int) ([]domain.BreakSession, error) {
	if n <= 0 {
		return nil, nil
	}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "startTime", Value: -1}}).
		SetLimit(int64(n))
	sessions, err := r.find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	// Flip back to chronological order.
	for i, j := 0, len(sessions)-1; i < j; i, j = i+1, j-1 {
		sessions[i], sessions[j] = sessions[j], sessions[i]
	}
	return sessions, nil
}

func (r *mongoSessionRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.BreakSession, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []domain.BreakSession
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

// EnsureSessionIndexes creates necessary indexes for the sessions collection.
func EnsureSessionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Analytics and recency queries read by start time.
			Keys:    bson.D{{Key: "startTime", Value: -1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Index creation failures are non-fatal; queries still work.
	}
}
