package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"alcyxob/deskbreak/internal/domain"
	"alcyxob/deskbreak/internal/service"

	"github.com/gin-gonic/gin"
)

// BreakHandler holds the break service dependency.
type BreakHandler struct {
	breakService service.BreakService
}

// NewBreakHandler creates a new BreakHandler.
func NewBreakHandler(breakService service.BreakService) *BreakHandler {
	return &BreakHandler{breakService: breakService}
}

// --- DTOs ---

// StartBreakRequest defines the expected JSON for starting a break.
type StartBreakRequest struct {
	PreferredCategories []string `json:"preferredCategories"`
	Count               int      `json:"count" binding:"omitempty,min=1"`
}

// CompleteExerciseRequest names the exercise being marked complete.
type CompleteExerciseRequest struct {
	ExerciseID string `json:"exerciseId" binding:"required"`
}

// FeedbackRequest defines the expected JSON for session feedback.
type FeedbackRequest struct {
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Liked    bool   `json:"liked"`
	Comments string `json:"comments"`
}

// SessionResponse is the DTO for returning a break session.
type SessionResponse struct {
	ID                 string                  `json:"id"`
	StartTime          time.Time               `json:"startTime"`
	EndTime            *time.Time              `json:"endTime,omitempty"`
	Exercises          []ExerciseResponse      `json:"exercises"`
	CompletedExercises []string                `json:"completedExercises"`
	Skipped            bool                    `json:"skipped"`
	Feedback           *domain.SessionFeedback `json:"feedback,omitempty"`
}

// MapSessionToResponse converts a domain.BreakSession to SessionResponse DTO.
func MapSessionToResponse(s *domain.BreakSession) SessionResponse {
	if s == nil {
		return SessionResponse{}
	}
	completed := s.CompletedExercises
	if completed == nil {
		completed = []string{}
	}
	return SessionResponse{
		ID:                 s.ID,
		StartTime:          s.StartTime,
		EndTime:            s.EndTime,
		Exercises:          MapExercisesToResponse(s.Exercises),
		CompletedExercises: completed,
		Skipped:            s.Skipped,
		Feedback:           s.Feedback,
	}
}

// --- Handler Methods ---

// StartBreak opens a new break session with recommended exercises.
func (h *BreakHandler) StartBreak(c *gin.Context) {
	// An empty body is allowed: all fields are optional.
	var req StartBreakRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
			return
		}
	}

	session, err := h.breakService.StartBreak(c.Request.Context(), req.PreferredCategories, req.Count)
	if err != nil {
		if errors.Is(err, service.ErrNoExercisesAvailable) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to start break.")
		}
		return
	}
	c.JSON(http.StatusCreated, MapSessionToResponse(session))
}

// Recommendations previews the exercises a break would offer right now.
func (h *BreakHandler) Recommendations(c *gin.Context) {
	categories := c.QueryArray("category")
	count := 0
	if raw := c.Query("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "count must be an integer.")
			return
		}
		count = parsed
	}

	exercises, err := h.breakService.Recommendations(c.Request.Context(), categories, count)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute recommendations.")
		return
	}
	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

// GetSession returns one break session by id.
func (h *BreakHandler) GetSession(c *gin.Context) {
	session, err := h.breakService.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.sessionError(c, err, "Failed to retrieve session.")
		return
	}
	c.JSON(http.StatusOK, MapSessionToResponse(session))
}

// History returns all break sessions, oldest first.
func (h *BreakHandler) History(c *gin.Context) {
	sessions, err := h.breakService.History(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve history.")
		return
	}
	responses := make([]SessionResponse, len(sessions))
	for i := range sessions {
		responses[i] = MapSessionToResponse(&sessions[i])
	}
	c.JSON(http.StatusOK, responses)
}

// CompleteExercise marks one offered exercise as done.
func (h *BreakHandler) CompleteExercise(c *gin.Context) {
	var req CompleteExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	session, err := h.breakService.CompleteExercise(c.Request.Context(), c.Param("id"), req.ExerciseID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseNotOffered), errors.Is(err, service.ErrExerciseAlreadyCompleted), errors.Is(err, service.ErrSessionAlreadyEnded):
			abortWithError(c, http.StatusConflict, err.Error())
		default:
			h.sessionError(c, err, "Failed to complete exercise.")
		}
		return
	}
	c.JSON(http.StatusOK, MapSessionToResponse(session))
}

// EndBreak closes the session.
func (h *BreakHandler) EndBreak(c *gin.Context) {
	session, err := h.breakService.EndBreak(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSessionAlreadyEnded) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else {
			h.sessionError(c, err, "Failed to end break.")
		}
		return
	}
	c.JSON(http.StatusOK, MapSessionToResponse(session))
}

// SkipBreak closes the session as skipped.
func (h *BreakHandler) SkipBreak(c *gin.Context) {
	session, err := h.breakService.SkipBreak(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSessionAlreadyEnded) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else {
			h.sessionError(c, err, "Failed to skip break.")
		}
		return
	}
	c.JSON(http.StatusOK, MapSessionToResponse(session))
}

// SubmitFeedback attaches a rating to the session.
func (h *BreakHandler) SubmitFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	feedback := domain.SessionFeedback{Rating: req.Rating, Liked: req.Liked, Comments: req.Comments}
	session, err := h.breakService.SubmitFeedback(c.Request.Context(), c.Param("id"), feedback)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRating) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			h.sessionError(c, err, "Failed to submit feedback.")
		}
		return
	}
	c.JSON(http.StatusOK, MapSessionToResponse(session))
}

// NextBreak reports when the next break is due.
func (h *BreakHandler) NextBreak(c *gin.Context) {
	next, err := h.breakService.NextBreakTime(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute next break time.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"nextBreakTime": next})
}

func (h *BreakHandler) sessionError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, service.ErrSessionNotFound) {
		abortWithError(c, http.StatusNotFound, "Break session not found.")
		return
	}
	abortWithError(c, http.StatusInternalServerError, fallback)
}
