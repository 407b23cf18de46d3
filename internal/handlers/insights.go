package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/mindjournal/backend/internal/service"
)

// InsightHandler serves the derived insight views over a user's journal.
type InsightHandler struct {
	insightService service.InsightService
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(insightService service.InsightService) *InsightHandler {
	return &InsightHandler{
		insightService: insightService,
	}
}

// GetOverview handles GET /api/v1/insights/overview
func (h *InsightHandler) GetOverview(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	overview, err := h.insightService.GetOverview(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "overview", err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// GetMoodTrends handles GET /api/v1/insights/mood-trends?days=
func (h *InsightHandler) GetMoodTrends(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	days, err := intQuery(c, "days")
	if err != nil {
		respondBadQuery(c, err)
		return
	}

	trends, err := h.insightService.GetMoodTrends(c.Request.Context(), userID, days)
	if err != nil {
		respondError(c, "mood trends", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trends": trends})
}

// GetWeeklyReport handles GET /api/v1/insights/weekly-report
func (h *InsightHandler) GetWeeklyReport(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	report, found, err := h.insightService.GetWeeklyReport(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "weekly report", err)
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"report": nil, "message": "No entries this week yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}

// GetMonthlyReport handles GET /api/v1/insights/monthly-report
func (h *InsightHandler) GetMonthlyReport(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	report, found, err := h.insightService.GetMonthlyReport(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "monthly report", err)
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"report": nil, "message": "No entries this month yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}

// GetSimilarEntries handles GET /api/v1/insights/similar-entries/:entryId
func (h *InsightHandler) GetSimilarEntries(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	entryID, ok := pathID(c, "entryId", "entry_id")
	if !ok {
		return
	}

	similar, err := h.insightService.GetSimilarEntries(c.Request.Context(), userID, entryID)
	if err != nil {
		respondError(c, "entry", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"similar_entries": similar})
}

// GetKeywordCloud handles GET /api/v1/insights/keyword-cloud?days=
func (h *InsightHandler) GetKeywordCloud(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	days, err := intQuery(c, "days")
	if err != nil {
		respondBadQuery(c, err)
		return
	}

	keywords, err := h.insightService.GetKeywordCloud(c.Request.Context(), userID, days)
	if err != nil {
		respondError(c, "keyword cloud", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"keywords": keywords})
}

// GetEmotionalJourney handles GET /api/v1/insights/emotional-journey
func (h *InsightHandler) GetEmotionalJourney(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	journey, err := h.insightService.GetEmotionalJourney(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "emotional journey", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"journey": journey})
}
