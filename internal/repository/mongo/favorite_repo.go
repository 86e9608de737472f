package mongo

import (
	"context"
	"errors"

	"alcyxob/deskbreak/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	favoriteCollectionName   = "favorite_exercises"
	completionCollectionName = "exercise_history"
)

type favoriteDoc struct {
	ID string `bson:"_id"` // Exercise id
}

// mongoFavoriteRepository implements repository.FavoriteRepository
type mongoFavoriteRepository struct {
	favorites   *mongo.Collection
	completions *mongo.Collection
}

// NewMongoFavoriteRepository creates a favorites repository backed by MongoDB.
func NewMongoFavoriteRepository(db *mongo.Database) repository.FavoriteRepository {
	return &mongoFavoriteRepository{
		favorites:   db.Collection(favoriteCollectionName),
		completions: db.Collection(completionCollectionName),
	}
}

// AddFavorite marks an exercise as a favorite. Adding twice is a no-op.
func (r *mongoFavoriteRepository) AddFavorite(ctx context.Context, exerciseID string) error {
	if exerciseID == "" {
		return errors.New("exercise ID is required")
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.favorites.ReplaceOne(ctx, bson.M{"_id": exerciseID}, favoriteDoc{ID: exerciseID}, opts)
	return err
}

// RemoveFavorite unmarks an exercise.
func (r *mongoFavoriteRepository) RemoveFavorite(ctx context.Context, exerciseID string) error {
	result, err := r.favorites.DeleteOne(ctx, bson.M{"_id": exerciseID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ListFavorites returns all favorite exercise ids.
func (r *mongoFavoriteRepository) ListFavorites(ctx context.Context) ([]string, error) {
	cursor, err := r.favorites.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []favoriteDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID)
	}
	return ids, nil
}

// AppendCompletion records one completed exercise.
func (r *mongoFavoriteRepository) AppendCompletion(ctx context.Context, record repository.CompletionRecord) error {
	if record.ExerciseID == "" {
		return errors.New("exercise ID is required")
	}
	_, err := r.completions.InsertOne(ctx, record)
	return err
}

// Completions returns the completion log ordered by completion time ascending.
func (r *mongoFavoriteRepository) Completions(ctx context.Context) ([]repository.CompletionRecord, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "completedAt", Value: 1}})
	cursor, err := r.completions.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []repository.CompletionRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// EnsureCompletionIndexes creates necessary indexes for the completion log.
func EnsureCompletionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "completedAt", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "exerciseId", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal, same as session indexes.
	}
}
