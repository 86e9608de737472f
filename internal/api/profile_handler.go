package api

import (
	"errors"
	"net/http"

	"alcyxob/deskbreak/internal/domain"
	"alcyxob/deskbreak/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler holds the profile service dependency.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// --- DTOs ---

// UpdateProfileRequest defines the expected JSON for updating the profile.
type UpdateProfileRequest struct {
	Name               string                     `json:"name"`
	Age                int                        `json:"age" binding:"omitempty,min=0"`
	FitnessLevel       string                     `json:"fitnessLevel" binding:"required"`
	Limitations        []string                   `json:"limitations"`
	PreferredExercises []string                   `json:"preferredExercises"`
	WorkSetup          string                     `json:"workSetup" binding:"required"`
	WorkSchedule       *domain.WorkSchedule       `json:"workSchedule"`
	Workday            *domain.WorkdayIntegration `json:"workday"`
}

// UpdateSettingsRequest defines the expected JSON for updating break settings.
type UpdateSettingsRequest struct {
	Frequency           int     `json:"frequency" binding:"required,min=1"`
	Duration            int     `json:"duration" binding:"required,min=1"`
	EnableNotifications bool    `json:"enableNotifications"`
	EnableScreenLock    bool    `json:"enableScreenLock"`
	AutoStart           bool    `json:"autoStart"`
	SoundEnabled        bool    `json:"soundEnabled"`
	Volume              float64 `json:"volume" binding:"min=0,max=1"`
}

// --- Handler Methods ---

// GetProfile returns the stored profile (or onboarding defaults).
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.GetProfile(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve profile.")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile validates and replaces the profile. Fields absent from the
// request fall back to the current stored values' zero equivalents except the
// schedule, which keeps its previous value when omitted.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	current, err := h.profileService.GetProfile(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve profile.")
		return
	}

	current.Name = req.Name
	current.Age = req.Age
	current.FitnessLevel = domain.FitnessLevel(req.FitnessLevel)
	current.Limitations = req.Limitations
	current.PreferredExercises = req.PreferredExercises
	current.WorkSetup = domain.WorkSetup(req.WorkSetup)
	if req.WorkSchedule != nil {
		current.WorkSchedule = *req.WorkSchedule
	}
	if req.Workday != nil {
		current.Workday = *req.Workday
	}

	updated, err := h.profileService.UpdateProfile(c.Request.Context(), current)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidFitnessLevel), errors.Is(err, service.ErrInvalidWorkSetup):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update profile.")
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetSettings returns the break settings (or defaults).
func (h *ProfileHandler) GetSettings(c *gin.Context) {
	settings, err := h.profileService.GetSettings(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve settings.")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings validates and replaces the break settings.
func (h *ProfileHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	settings := domain.BreakSettings{
		Frequency:           req.Frequency,
		Duration:            req.Duration,
		EnableNotifications: req.EnableNotifications,
		EnableScreenLock:    req.EnableScreenLock,
		AutoStart:           req.AutoStart,
		SoundEnabled:        req.SoundEnabled,
		Volume:              req.Volume,
	}

	updated, err := h.profileService.UpdateSettings(c.Request.Context(), settings)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSettings), errors.Is(err, service.ErrInvalidVolume):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update settings.")
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}
