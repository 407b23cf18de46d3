package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/mindjournal/backend/internal/models"
	"github.com/JonnyWalker81/mindjournal/backend/internal/repository"
	"github.com/JonnyWalker81/mindjournal/backend/internal/service"
)

// defaultMinStrength hides weak patterns from listings unless asked for.
const defaultMinStrength = 0.3

// PatternHandler handles pattern detection and prediction requests.
type PatternHandler struct {
	patternService service.PatternService
}

// NewPatternHandler creates a new pattern handler
func NewPatternHandler(patternService service.PatternService) *PatternHandler {
	return &PatternHandler{
		patternService: patternService,
	}
}

// DetectPatterns handles POST /api/v1/patterns/detect
func (h *PatternHandler) DetectPatterns(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.DetectPatternsRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBindError(c, err)
		return
	}

	summary, err := h.patternService.DetectPatterns(c.Request.Context(), userID, req.LookbackDays)
	if err != nil {
		respondError(c, "patterns", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Pattern detection completed",
		"summary": summary,
	})
}

// GetCycles handles GET /api/v1/patterns/cycles?lookback_days=
func (h *PatternHandler) GetCycles(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	days, err := intQuery(c, "lookback_days")
	if err != nil {
		respondBadQuery(c, err)
		return
	}

	cycles, err := h.patternService.DetectCycles(c.Request.Context(), userID, days)
	if err != nil {
		respondError(c, "emotional cycles", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cycles": cycles})
}

// GetTriggers handles GET /api/v1/patterns/triggers
func (h *PatternHandler) GetTriggers(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	triggers, err := h.patternService.DetectTriggers(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "triggers", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"triggers": triggers})
}

// GetThoughtPatterns handles GET /api/v1/patterns/thought-patterns
func (h *PatternHandler) GetThoughtPatterns(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	patterns, err := h.patternService.DetectThoughtPatterns(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "thought patterns", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"patterns": patterns})
}

// ListPatterns handles GET /api/v1/patterns?type=&min_strength=
func (h *PatternHandler) ListPatterns(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	minStrength, err := floatQuery(c, "min_strength", defaultMinStrength)
	if err != nil {
		respondBadQuery(c, err)
		return
	}

	filter := repository.PatternFilter{
		Type:        models.PatternType(c.Query("type")),
		MinStrength: minStrength,
	}

	patterns, err := h.patternService.ListPatterns(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, "patterns", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(patterns),
		"patterns": patterns,
	})
}

// GetPattern handles GET /api/v1/patterns/:id
func (h *PatternHandler) GetPattern(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "id")
	if !ok {
		return
	}

	pattern, err := h.patternService.GetPattern(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, "pattern", err)
		return
	}

	c.JSON(http.StatusOK, pattern)
}

// DeletePattern handles DELETE /api/v1/patterns/:id
func (h *PatternHandler) DeletePattern(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "id")
	if !ok {
		return
	}

	if err := h.patternService.DeletePattern(c.Request.Context(), userID, id); err != nil {
		respondError(c, "pattern", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetCopingSuggestions handles GET /api/v1/patterns/coping/suggestions?mood=
func (h *PatternHandler) GetCopingSuggestions(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	strategies, err := h.patternService.SuggestCopingStrategies(c.Request.Context(), userID, c.Query("mood"))
	if err != nil {
		respondError(c, "coping strategies", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": strategies})
}

// GeneratePredictions handles POST /api/v1/predictions/generate
func (h *PatternHandler) GeneratePredictions(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.GeneratePredictionsRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBindError(c, err)
		return
	}

	predictions, err := h.patternService.GeneratePredictions(c.Request.Context(), userID, req.DaysAhead)
	if err != nil {
		respondError(c, "predictions", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":       len(predictions),
		"predictions": predictions,
	})
}
