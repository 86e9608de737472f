// internal/domain/exercise.go
package domain

// Difficulty of an exercise. Kept as a string type so the catalog JSON
// stays human-editable.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Exercise represents a single exercise definition in the catalog.
// The catalog is reference data: loaded once at startup and read-only
// for the lifetime of the process.
type Exercise struct {
	ID           string     `bson:"_id" json:"id"`
	Name         string     `bson:"name" json:"name"`
	Description  string     `bson:"description,omitempty" json:"description,omitempty"`
	Instructions []string   `bson:"instructions,omitempty" json:"instructions,omitempty"` // Ordered steps shown during the break
	Duration     int        `bson:"duration" json:"duration"`                             // Seconds
	Difficulty   Difficulty `bson:"difficulty" json:"difficulty"`
	Category     string     `bson:"category" json:"category"` // Free-form tag, e.g. "stretching"
	BodyParts    []string   `bson:"bodyParts,omitempty" json:"bodyParts,omitempty"`
	Equipment    []string   `bson:"equipment,omitempty" json:"equipment,omitempty"` // Empty = no equipment needed
	ImageKey     string     `bson:"imageKey,omitempty" json:"imageKey,omitempty"`   // Object storage key for an illustration, optional
}

// RequiresEquipment reports whether the exercise needs any equipment at all.
func (e *Exercise) RequiresEquipment() bool {
	return len(e.Equipment) > 0
}
