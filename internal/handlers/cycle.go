package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/mindjournal/backend/internal/models"
	"github.com/JonnyWalker81/mindjournal/backend/internal/service"
)

const cycleResource = "cycle profile"

// CycleHandler handles menstrual cycle tracking requests.
type CycleHandler struct {
	cycleService service.CycleService
}

// NewCycleHandler creates a new cycle handler
func NewCycleHandler(cycleService service.CycleService) *CycleHandler {
	return &CycleHandler{
		cycleService: cycleService,
	}
}

// GetProfile handles GET /api/v1/cycle
func (h *CycleHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	profile, err := h.cycleService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, cycleResource, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// EnableTracking handles POST /api/v1/cycle/enable
func (h *CycleHandler) EnableTracking(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.EnableTrackingRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBindError(c, err)
		return
	}

	profile, err := h.cycleService.EnableTracking(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, cycleResource, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// DisableTracking handles POST /api/v1/cycle/disable
func (h *CycleHandler) DisableTracking(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.cycleService.DisableTracking(c.Request.Context(), userID); err != nil {
		respondError(c, cycleResource, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cycle tracking disabled"})
}

// GetCurrentPhase handles GET /api/v1/cycle/phase
func (h *CycleHandler) GetCurrentPhase(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	info, err := h.cycleService.GetCurrentPhase(c.Request.Context(), userID)
	if err != nil {
		respondError(c, cycleResource, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

// GetMoodCorrelations handles GET /api/v1/cycle/mood-correlations
func (h *CycleHandler) GetMoodCorrelations(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	result, found, err := h.cycleService.GetMoodCorrelations(c.Request.Context(), userID)
	if err != nil {
		respondError(c, cycleResource, err)
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{
			"correlations": nil,
			"insights":     []models.CorrelationInsight{},
			"message":      "Insufficient cycle data",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// LogPeriodStart handles POST /api/v1/cycle/period/start
func (h *CycleHandler) LogPeriodStart(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.LogPeriodRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBindError(c, err)
		return
	}

	profile, err := h.cycleService.LogPeriodStart(c.Request.Context(), userID, req.Date)
	if err != nil {
		respondError(c, cycleResource, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// LogPeriodEnd handles POST /api/v1/cycle/period/end
func (h *CycleHandler) LogPeriodEnd(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.LogPeriodRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBindError(c, err)
		return
	}

	profile, err := h.cycleService.LogPeriodEnd(c.Request.Context(), userID, req.Date)
	if err != nil {
		respondError(c, cycleResource, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdatePreferences handles PUT /api/v1/cycle/preferences
func (h *CycleHandler) UpdatePreferences(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.CyclePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	profile, err := h.cycleService.UpdatePreferences(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, cycleResource, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
