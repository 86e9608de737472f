// Package engine holds the recommendation and analytics core. Everything in
// here is a pure function over its inputs: no clocks, no storage, no shared
// state, so callers may invoke it concurrently without coordination.
package engine

import (
	"sort"
	"strconv"
	"strings"

	"alcyxob/deskbreak/internal/domain"
)

// DefaultRecommendationCount is used when the caller asks for <= 0 exercises.
const DefaultRecommendationCount = 3

// Context carries everything the recommendation pipeline needs for one call.
type Context struct {
	Profile  domain.UserProfile
	Settings domain.BreakSettings
	// TimeOfDay is an "HH:MM" string; an unparsable value disables the
	// time-of-day prioritization pass.
	TimeOfDay string
	// CompletedExercises are exercise ids completed within the recency
	// window; they are excluded outright to avoid immediate repeats.
	CompletedExercises []string
	// PreferredCategories, when non-empty, acts as a hard category filter
	// on top of the profile's soft preferences.
	PreferredCategories []string
}

// difficulty permitted per fitness level.
var allowedDifficulties = map[domain.FitnessLevel][]domain.Difficulty{
	domain.FitnessBeginner:     {domain.DifficultyEasy},
	domain.FitnessIntermediate: {domain.DifficultyEasy, domain.DifficultyMedium},
	domain.FitnessAdvanced:     {domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard},
}

// Recommend selects up to count exercises from the catalog for the given
// context. The pipeline is: hard filter, three stable prioritization passes
// (time of day, work setup, declared preferences), stable sort by descending
// score, truncate. Deterministic for a fixed catalog and context; ties keep
// catalog order. An empty result is a valid outcome, not an error — callers
// should broaden duration or difficulty instead of treating it as a failure.
func Recommend(catalog []domain.Exercise, ctx Context, count int) []domain.Exercise {
	if count <= 0 {
		count = DefaultRecommendationCount
	}

	eligible := make([]domain.Exercise, 0, len(catalog))
	for _, ex := range catalog {
		if isEligible(ex, ctx) {
			eligible = append(eligible, ex)
		}
	}

	prioritizeByTimeOfDay(eligible, ctx.TimeOfDay)
	prioritizeByWorkSetup(eligible, ctx.Profile.WorkSetup)
	prioritizeByPreferences(eligible, ctx.Profile.PreferredExercises)

	sort.SliceStable(eligible, func(i, j int) bool {
		return score(eligible[i], ctx) > score(eligible[j], ctx)
	})

	if len(eligible) > count {
		eligible = eligible[:count]
	}
	return eligible
}

func isEligible(ex domain.Exercise, ctx Context) bool {
	if containsString(ctx.CompletedExercises, ex.ID) {
		return false
	}
	if ex.Duration > ctx.Settings.Duration*60 {
		return false
	}
	if !difficultyAppropriate(ex.Difficulty, ctx.Profile.FitnessLevel) {
		return false
	}
	if hasLimitationConflict(ex, ctx.Profile.Limitations) {
		return false
	}
	if len(ctx.PreferredCategories) > 0 && !containsString(ctx.PreferredCategories, ex.Category) {
		return false
	}
	return true
}

func difficultyAppropriate(d domain.Difficulty, level domain.FitnessLevel) bool {
	for _, allowed := range allowedDifficulties[level] {
		if d == allowed {
			return true
		}
	}
	return false
}

// hasLimitationConflict implements a conservative textual "avoid if related"
// rule: an exercise conflicts with a limitation when any word of the
// limitation phrase appears as a substring of the exercise's name,
// description or body-part tags. This is an approximation, not medical
// matching; false positives and negatives are accepted behaviour.
func hasLimitationConflict(ex domain.Exercise, limitations []string) bool {
	if len(limitations) == 0 {
		return false
	}
	text := strings.ToLower(ex.Name + " " + ex.Description + " " + strings.Join(ex.BodyParts, " "))
	for _, limitation := range limitations {
		for _, word := range strings.Fields(strings.ToLower(limitation)) {
			if strings.Contains(text, word) {
				return true
			}
		}
	}
	return false
}

// prioritizeByTimeOfDay favours energizing categories (cardio, strength)
// before 10:00 and relaxing ones (stretching, breathing) at or after 15:00.
// Mid-day keeps the incoming order.
func prioritizeByTimeOfDay(exercises []domain.Exercise, timeOfDay string) {
	hour, err := parseHour(timeOfDay)
	if err != nil {
		return
	}

	switch {
	case hour < 10:
		stableFavor(exercises, func(ex domain.Exercise) bool {
			return ex.Category == "cardio" || ex.Category == "strength"
		})
	case hour >= 15:
		stableFavor(exercises, func(ex domain.Exercise) bool {
			return ex.Category == "stretching" || ex.Category == "breathing"
		})
	}
}

// prioritizeByWorkSetup favours exercises usable while seated for desk
// workers: equipment includes a chair, or an instruction mentions sitting.
func prioritizeByWorkSetup(exercises []domain.Exercise, setup domain.WorkSetup) {
	if setup != domain.SetupDesk {
		return
	}
	stableFavor(exercises, isSeated)
}

func isSeated(ex domain.Exercise) bool {
	if containsString(ex.Equipment, "chair") {
		return true
	}
	for _, instruction := range ex.Instructions {
		if strings.Contains(instruction, "sit") {
			return true
		}
	}
	return false
}

func prioritizeByPreferences(exercises []domain.Exercise, preferred []string) {
	if len(preferred) == 0 {
		return
	}
	stableFavor(exercises, func(ex domain.Exercise) bool {
		return containsString(preferred, ex.Category)
	})
}

// stableFavor moves favoured exercises ahead of unfavoured ones without
// disturbing relative order within either group.
func stableFavor(exercises []domain.Exercise, favoured func(domain.Exercise) bool) {
	sort.SliceStable(exercises, func(i, j int) bool {
		return favoured(exercises[i]) && !favoured(exercises[j])
	})
}

// score blends weak preference signals into a small additive integer. Only
// relative order matters, so no normalization is needed.
func score(ex domain.Exercise, ctx Context) int {
	s := 0
	if containsString(ctx.PreferredCategories, ex.Category) {
		s += 10
	}
	if containsString(ctx.Profile.PreferredExercises, ex.Category) {
		s += 8
	}
	switch ex.Difficulty {
	case domain.DifficultyEasy:
		s += 3
	case domain.DifficultyMedium:
		s += 5
	default:
		s += 2
	}
	if float64(ex.Duration) <= float64(ctx.Settings.Duration)*60*0.8 {
		s += 5
	}
	if !ex.RequiresEquipment() {
		s += 3
	}
	return s
}

func parseHour(timeOfDay string) (int, error) {
	hourPart, _, _ := strings.Cut(timeOfDay, ":")
	return strconv.Atoi(hourPart)
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
