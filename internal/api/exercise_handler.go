package api

import (
	"errors"
	"net/http"
	"strconv"

	"alcyxob/deskbreak/internal/domain"
	"alcyxob/deskbreak/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs ---

// ExerciseResponse is the DTO for returning exercise details.
type ExerciseResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Instructions []string `json:"instructions,omitempty"`
	Duration     int      `json:"duration"`
	Difficulty   string   `json:"difficulty"`
	Category     string   `json:"category"`
	BodyParts    []string `json:"bodyParts,omitempty"`
	Equipment    []string `json:"equipment,omitempty"`
}

// MapExerciseToResponse converts a domain.Exercise to ExerciseResponse DTO.
func MapExerciseToResponse(ex domain.Exercise) ExerciseResponse {
	return ExerciseResponse{
		ID:           ex.ID,
		Name:         ex.Name,
		Description:  ex.Description,
		Instructions: ex.Instructions,
		Duration:     ex.Duration,
		Difficulty:   string(ex.Difficulty),
		Category:     ex.Category,
		BodyParts:    ex.BodyParts,
		Equipment:    ex.Equipment,
	}
}

// MapExercisesToResponse converts a slice of domain.Exercise to response DTOs.
func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i, ex := range exercises {
		responses[i] = MapExerciseToResponse(ex)
	}
	return responses
}

// --- Handler Methods ---

// ListExercises returns the full catalog, optionally filtered by ?category=.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		c.JSON(http.StatusOK, MapExercisesToResponse(h.exerciseService.GetExercisesByCategory(c.Request.Context(), category)))
		return
	}
	c.JSON(http.StatusOK, MapExercisesToResponse(h.exerciseService.ListExercises(c.Request.Context())))
}

// GetExercise returns one exercise by id.
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	ex, err := h.exerciseService.GetExerciseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercise.")
		}
		return
	}
	c.JSON(http.StatusOK, MapExerciseToResponse(ex))
}

// ListCategories returns the distinct catalog categories.
func (h *ExerciseHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.exerciseService.ListCategories(c.Request.Context())})
}

// RandomExercises returns ?count= random exercises (default 1).
func (h *ExerciseHandler) RandomExercises(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", "1"))
	if err != nil || count < 1 {
		abortWithError(c, http.StatusBadRequest, "count must be a positive integer.")
		return
	}
	c.JSON(http.StatusOK, MapExercisesToResponse(h.exerciseService.RandomExercises(c.Request.Context(), count)))
}

// GetExerciseImageURL returns a presigned download URL for the exercise
// illustration.
func (h *ExerciseHandler) GetExerciseImageURL(c *gin.Context) {
	url, err := h.exerciseService.GetExerciseImageURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, "Exercise not found.")
		case errors.Is(err, service.ErrNoExerciseImage):
			abortWithError(c, http.StatusNotFound, "Exercise has no image.")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to generate image URL.")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// ListFavorites returns the favorite exercises, resolved against the catalog.
func (h *ExerciseHandler) ListFavorites(c *gin.Context) {
	favorites, err := h.exerciseService.ListFavorites(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve favorites.")
		return
	}
	c.JSON(http.StatusOK, MapExercisesToResponse(favorites))
}

// AddFavorite marks an exercise as favorite.
func (h *ExerciseHandler) AddFavorite(c *gin.Context) {
	err := h.exerciseService.AddFavorite(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to add favorite.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveFavorite unmarks an exercise as favorite.
func (h *ExerciseHandler) RemoveFavorite(c *gin.Context) {
	if err := h.exerciseService.RemoveFavorite(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to remove favorite.")
		return
	}
	c.Status(http.StatusNoContent)
}
