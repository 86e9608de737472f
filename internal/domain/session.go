package domain

import "time"

// SessionFeedback is the optional user feedback captured when a break ends.
type SessionFeedback struct {
	Rating   int    `bson:"rating" json:"rating"` // 1-5
	Liked    bool   `bson:"liked" json:"liked"`
	Comments string `bson:"comments,omitempty" json:"comments,omitempty"`
}

// DefaultFeedbackRating is assumed for sessions without explicit feedback
// when averaging ratings.
const DefaultFeedbackRating = 3

// BreakSession is one offered-and-tracked set of exercises between a start
// and (optional) end time. Invariants: CompletedExercises is always a subset
// of the offered exercise ids, and EndTime, when set, is >= StartTime.
type BreakSession struct {
	ID                 string           `bson:"_id" json:"id"`
	StartTime          time.Time        `bson:"startTime" json:"startTime"`
	EndTime            *time.Time       `bson:"endTime,omitempty" json:"endTime,omitempty"`
	Exercises          []Exercise       `bson:"exercises" json:"exercises"` // Offered, in recommendation order
	CompletedExercises []string         `bson:"completedExercises,omitempty" json:"completedExercises,omitempty"`
	Skipped            bool             `bson:"skipped" json:"skipped"`
	Feedback           *SessionFeedback `bson:"feedback,omitempty" json:"feedback,omitempty"`
}

// Duration returns the elapsed break time, or 0 while the session is open.
func (s *BreakSession) Duration() time.Duration {
	if s.EndTime == nil {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}

// CompletionRatio returns completed/offered, guarding the empty-offer case.
func (s *BreakSession) CompletionRatio() float64 {
	if len(s.Exercises) == 0 {
		return 0
	}
	return float64(len(s.CompletedExercises)) / float64(len(s.Exercises))
}

// RatingOrDefault returns the feedback rating, or DefaultFeedbackRating when
// no feedback was given.
func (s *BreakSession) RatingOrDefault() int {
	if s.Feedback == nil {
		return DefaultFeedbackRating
	}
	return s.Feedback.Rating
}

// Offered reports whether the exercise id was part of this session's offer.
func (s *BreakSession) Offered(exerciseID string) bool {
	for _, ex := range s.Exercises {
		if ex.ID == exerciseID {
			return true
		}
	}
	return false
}

// Completed reports whether the exercise id was already marked complete.
func (s *BreakSession) Completed(exerciseID string) bool {
	for _, id := range s.CompletedExercises {
		if id == exerciseID {
			return true
		}
	}
	return false
}
