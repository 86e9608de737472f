package api

import (
	"errors"
	"net/http"

	"alcyxob/deskbreak/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkdayHandler holds the workday service dependency.
type WorkdayHandler struct {
	workdayService service.WorkdayService
}

// NewWorkdayHandler creates a new WorkdayHandler.
func NewWorkdayHandler(workdayService service.WorkdayService) *WorkdayHandler {
	return &WorkdayHandler{workdayService: workdayService}
}

// ConnectRequest defines the expected JSON for connecting the calendar
// integration.
type ConnectRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Connect authenticates against the calendar provider and enables the
// integration.
func (h *WorkdayHandler) Connect(c *gin.Context) {
	var req ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.workdayService.Connect(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to connect to Workday.")
		return
	}
	if !result.Success {
		abortWithError(c, http.StatusUnauthorized, result.Error)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Disconnect drops the provider session and disables the integration.
func (h *WorkdayHandler) Disconnect(c *gin.Context) {
	if err := h.workdayService.Disconnect(c.Request.Context()); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to disconnect from Workday.")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSchedule returns the work schedule for ?start=YYYY-MM-DD&end=YYYY-MM-DD.
func (h *WorkdayHandler) GetSchedule(c *gin.Context) {
	start, end := c.Query("start"), c.Query("end")
	if start == "" || end == "" {
		abortWithError(c, http.StatusBadRequest, "start and end query parameters are required.")
		return
	}

	schedule, err := h.workdayService.GetSchedule(c.Request.Context(), start, end)
	if err != nil {
		h.workdayError(c, err, "Failed to retrieve schedule.")
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// GetMeetings returns the meetings for ?date=YYYY-MM-DD.
func (h *WorkdayHandler) GetMeetings(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		abortWithError(c, http.StatusBadRequest, "date query parameter is required.")
		return
	}

	meetings, err := h.workdayService.GetMeetings(c.Request.Context(), date)
	if err != nil {
		h.workdayError(c, err, "Failed to retrieve meetings.")
		return
	}
	c.JSON(http.StatusOK, meetings)
}

// GetTimeOff returns booked time off between ?start= and ?end=.
func (h *WorkdayHandler) GetTimeOff(c *gin.Context) {
	start, end := c.Query("start"), c.Query("end")
	if start == "" || end == "" {
		abortWithError(c, http.StatusBadRequest, "start and end query parameters are required.")
		return
	}

	entries, err := h.workdayService.GetTimeOff(c.Request.Context(), start, end)
	if err != nil {
		h.workdayError(c, err, "Failed to retrieve time off.")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// SyncPreferences pushes the current break settings to the provider.
func (h *WorkdayHandler) SyncPreferences(c *gin.Context) {
	if err := h.workdayService.SyncBreakPreferences(c.Request.Context()); err != nil {
		h.workdayError(c, err, "Failed to sync break preferences.")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkdayHandler) workdayError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, service.ErrWorkdayNotConnected) {
		abortWithError(c, http.StatusConflict, err.Error())
		return
	}
	abortWithError(c, http.StatusBadGateway, fallback)
}
