package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/mindjournal/backend/internal/apierror"
	"github.com/JonnyWalker81/mindjournal/backend/internal/models"
	"github.com/JonnyWalker81/mindjournal/backend/internal/service"
)

// EntryHandler handles journal entry HTTP requests
type EntryHandler struct {
	entryService service.EntryService
}

// NewEntryHandler creates a new entry handler
func NewEntryHandler(entryService service.EntryService) *EntryHandler {
	return &EntryHandler{
		entryService: entryService,
	}
}

// ListEntries handles GET /api/v1/entries?page=&limit=
func (h *EntryHandler) ListEntries(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	page, err := intQuery(c, "page")
	if err != nil {
		respondBadQuery(c, err)
		return
	}
	limit, err := intQuery(c, "limit")
	if err != nil {
		respondBadQuery(c, err)
		return
	}

	result, err := h.entryService.ListEntries(c.Request.Context(), userID, page, limit)
	if err != nil {
		respondError(c, "entries", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateEntry handles POST /api/v1/entries
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidUUID) || errors.Is(err, service.ErrNotUUIDv7) {
			apierror.WriteProblem(c, apierror.NewInvalidUUIDError(apierror.GetRequestID(c), "id", req.ID))
			return
		}
		respondError(c, "entry", err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetEntry handles GET /api/v1/entries/:id
func (h *EntryHandler) GetEntry(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "id")
	if !ok {
		return
	}

	entry, err := h.entryService.GetEntry(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, "entry", err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// UpdateEntry handles PUT /api/v1/entries/:id
func (h *EntryHandler) UpdateEntry(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "id")
	if !ok {
		return
	}

	var req models.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := h.entryService.UpdateEntry(c.Request.Context(), userID, id, &req)
	if err != nil {
		respondError(c, "entry", err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteEntry handles DELETE /api/v1/entries/:id
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id", "id")
	if !ok {
		return
	}

	if err := h.entryService.DeleteEntry(c.Request.Context(), userID, id); err != nil {
		respondError(c, "entry", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SearchEntries handles GET /api/v1/entries/search?keyword=&tag=&start_date=&end_date=
func (h *EntryHandler) SearchEntries(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	start, err := dateQuery(c, "start_date")
	if err != nil {
		respondBadQuery(c, err)
		return
	}
	end, err := dateQuery(c, "end_date")
	if err != nil {
		respondBadQuery(c, err)
		return
	}

	search := models.EntrySearch{
		Keyword:   strings.TrimSpace(c.Query("keyword")),
		Tag:       strings.TrimSpace(c.Query("tag")),
		StartDate: start,
		EndDate:   end,
	}

	entries, err := h.entryService.SearchEntries(c.Request.Context(), userID, search)
	if err != nil {
		respondError(c, "entries", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(entries),
		"entries": entries,
	})
}
