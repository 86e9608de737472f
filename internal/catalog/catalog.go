// Package catalog loads and serves the exercise catalog. The catalog is
// loaded once at startup and read-only afterwards; the recommendation engine
// receives it as a plain slice.
package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"

	"alcyxob/deskbreak/internal/domain"
)

//go:embed exercises.json
var defaultCatalog embed.FS

var (
	ErrEmptyCatalog = errors.New("catalog contains no exercises")
)

// Catalog is an immutable, ordered exercise collection with id lookups.
type Catalog struct {
	exercises []domain.Exercise
	byID      map[string]int
}

// New validates the exercise list and builds lookup indexes. Order is
// preserved: it is the tie-breaking order for recommendations.
func New(exercises []domain.Exercise) (*Catalog, error) {
	if len(exercises) == 0 {
		return nil, ErrEmptyCatalog
	}
	byID := make(map[string]int, len(exercises))
	for i, ex := range exercises {
		if err := validate(ex); err != nil {
			return nil, fmt.Errorf("exercise %d: %w", i, err)
		}
		if _, dup := byID[ex.ID]; dup {
			return nil, fmt.Errorf("duplicate exercise id %q", ex.ID)
		}
		byID[ex.ID] = i
	}
	return &Catalog{exercises: exercises, byID: byID}, nil
}

func validate(ex domain.Exercise) error {
	if ex.ID == "" {
		return errors.New("missing id")
	}
	if ex.Name == "" {
		return fmt.Errorf("exercise %q: missing name", ex.ID)
	}
	if ex.Duration <= 0 {
		return fmt.Errorf("exercise %q: duration must be positive", ex.ID)
	}
	switch ex.Difficulty {
	case domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard:
	default:
		return fmt.Errorf("exercise %q: unknown difficulty %q", ex.ID, ex.Difficulty)
	}
	return nil
}

// Parse decodes a catalog from raw JSON.
func Parse(data []byte) (*Catalog, error) {
	var exercises []domain.Exercise
	if err := json.Unmarshal(data, &exercises); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(exercises)
}

// LoadFile reads a catalog from a JSON file on disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}

// ObjectFetcher is the subset of the storage layer the catalog needs when
// the exercise data lives in object storage.
type ObjectFetcher interface {
	GetObject(ctx context.Context, objectKey string) ([]byte, error)
}

// LoadObject fetches and decodes a catalog from object storage.
func LoadObject(ctx context.Context, fetcher ObjectFetcher, objectKey string) (*Catalog, error) {
	data, err := fetcher.GetObject(ctx, objectKey)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog object %q: %w", objectKey, err)
	}
	return Parse(data)
}

// LoadDefault returns the catalog embedded in the binary.
func LoadDefault() (*Catalog, error) {
	data, err := defaultCatalog.ReadFile("exercises.json")
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Exercises returns the full ordered catalog. Callers must treat the slice
// as read-only.
func (c *Catalog) Exercises() []domain.Exercise {
	return c.exercises
}

// Len returns the number of exercises in the catalog.
func (c *Catalog) Len() int {
	return len(c.exercises)
}

// ByID returns the exercise with the given id, if present.
func (c *Catalog) ByID(id string) (domain.Exercise, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Exercise{}, false
	}
	return c.exercises[i], true
}

// ByCategory returns all exercises tagged with the category, in catalog order.
func (c *Catalog) ByCategory(category string) []domain.Exercise {
	var out []domain.Exercise
	for _, ex := range c.exercises {
		if ex.Category == category {
			out = append(out, ex)
		}
	}
	return out
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, ex := range c.exercises {
		if !seen[ex.Category] {
			seen[ex.Category] = true
			out = append(out, ex.Category)
		}
	}
	return out
}

// Random returns up to count exercises drawn without repetition. Used for
// the "surprise me" catalog browsing path, not for recommendations.
func (c *Catalog) Random(count int) []domain.Exercise {
	if count > len(c.exercises) {
		count = len(c.exercises)
	}
	perm := rand.Perm(len(c.exercises))
	out := make([]domain.Exercise, 0, count)
	for _, i := range perm[:count] {
		out = append(out, c.exercises[i])
	}
	return out
}
