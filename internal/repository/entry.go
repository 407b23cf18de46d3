package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/JonnyWalker81/mindjournal/backend/internal/models"
	"github.com/JonnyWalker81/mindjournal/backend/pkg/supabase"
)

const (
	entriesTable = "entries"
	// Sentiment is 1:1 with an entry, so PostgREST embeds it as an object.
	entrySelect = "*,sentiment:sentiments(*)"
)

type entryRepository struct {
	client *supabase.Client
}

// NewEntryRepository creates a new entry repository
func NewEntryRepository(client *supabase.Client) EntryRepository {
	return &entryRepository{client: client}
}

func (r *entryRepository) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	data := map[string]interface{}{
		"user_id": entry.UserID,
		"title":   entry.Title,
		"content": entry.Content,
		"tags":    models.NormalizeTags(entry.Tags),
	}
	if entry.ID != "" {
		data["id"] = entry.ID
	}
	if entry.Mood != nil {
		data["mood"] = *entry.Mood
	}

	body, err := r.client.Insert(ctx, entriesTable, data)
	if err != nil {
		var upstream *supabase.Error
		if errors.As(err, &upstream) && upstream.StatusCode == http.StatusConflict {
			return nil, fmt.Errorf("failed to create entry %s: %w", entry.ID, ErrConflict)
		}
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	return firstEntry(body)
}

func (r *entryRepository) GetByID(ctx context.Context, userID, id string) (*models.Entry, error) {
	query := map[string]interface{}{
		"id":      fmt.Sprintf("eq.%s", id),
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  entrySelect,
	}

	body, err := r.client.Query(ctx, entriesTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	return firstEntry(body)
}

func (r *entryRepository) GetByUserID(ctx context.Context, userID string, q models.EntryQuery) ([]models.Entry, error) {
	order := "created_at.desc"
	if q.Ascending {
		order = "created_at.asc"
	}

	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  entrySelect,
		"order":   order,
	}
	if rng := createdAtRange(q.Since, q.Until); rng != "" {
		query["and"] = rng
	}
	if q.Limit > 0 {
		query["limit"] = q.Limit
	}
	if q.Offset > 0 {
		query["offset"] = q.Offset
	}

	body, err := r.client.Query(ctx, entriesTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries: %w", err)
	}

	return decodeEntries(body)
}

func (r *entryRepository) GetTimestamps(ctx context.Context, userID string) ([]time.Time, error) {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "created_at",
		"order":   "created_at.desc",
	}

	body, err := r.client.Query(ctx, entriesTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry timestamps: %w", err)
	}

	var rows []struct {
		CreatedAt time.Time `json:"created_at"`
	}
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	timestamps := make([]time.Time, len(rows))
	for i, row := range rows {
		timestamps[i] = row.CreatedAt
	}
	return timestamps, nil
}

func (r *entryRepository) Count(ctx context.Context, userID string) (int64, error) {
	count, err := r.client.Count(ctx, entriesTable, map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}

func (r *entryRepository) CountSince(ctx context.Context, userID string, since time.Time) (int64, error) {
	count, err := r.client.Count(ctx, entriesTable, map[string]interface{}{
		"user_id":    fmt.Sprintf("eq.%s", userID),
		"created_at": fmt.Sprintf("gte.%s", formatTimestamp(since)),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count recent entries: %w", err)
	}
	return count, nil
}

func (r *entryRepository) Update(ctx context.Context, userID, id string, update *models.UpdateEntryRequest) (*models.Entry, error) {
	data := map[string]interface{}{}
	if update.Title != nil {
		data["title"] = *update.Title
	}
	if update.Content != nil {
		data["content"] = *update.Content
	}
	if update.Mood.Set {
		data["mood"] = update.Mood.Ptr()
	}
	if update.Tags != nil {
		data["tags"] = models.NormalizeTags(update.Tags)
	}

	if len(data) == 0 {
		return r.GetByID(ctx, userID, id)
	}

	query := map[string]interface{}{
		"id":      fmt.Sprintf("eq.%s", id),
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  entrySelect,
	}

	body, err := r.client.UpdateWhere(ctx, entriesTable, query, data)
	if err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	return firstEntry(body)
}

func (r *entryRepository) Delete(ctx context.Context, userID, id string) error {
	query := map[string]interface{}{
		"id":      fmt.Sprintf("eq.%s", id),
		"user_id": fmt.Sprintf("eq.%s", userID),
	}

	if err := r.client.DeleteWhere(ctx, entriesTable, query); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}

func (r *entryRepository) Search(ctx context.Context, userID string, s models.EntrySearch) ([]models.Entry, error) {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  entrySelect,
		"order":   "created_at.desc",
	}

	if kw := sanitizePattern(s.Keyword); kw != "" {
		query["or"] = fmt.Sprintf("(title.ilike.*%s*,content.ilike.*%s*)", kw, kw)
	}
	if s.Tag != "" {
		query["tags"] = fmt.Sprintf("cs.{%q}", s.Tag)
	}
	if rng := createdAtRange(s.StartDate, s.EndDate); rng != "" {
		query["and"] = rng
	}

	body, err := r.client.Query(ctx, entriesTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search entries: %w", err)
	}

	return decodeEntries(body)
}

func decodeEntries(body []byte) ([]models.Entry, error) {
	var entries []models.Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if entries == nil {
		entries = []models.Entry{}
	}
	return entries, nil
}

func firstEntry(body []byte) (*models.Entry, error) {
	entries, err := decodeEntries(body)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNotFound
	}
	return &entries[0], nil
}

// createdAtRange builds a PostgREST and=(...) filter. The upper bound is inclusive.
func createdAtRange(since, until *time.Time) string {
	var parts []string
	if since != nil {
		parts = append(parts, "created_at.gte."+formatTimestamp(*since))
	}
	if until != nil {
		parts = append(parts, "created_at.lte."+formatTimestamp(*until))
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, ",") + ")"
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.999999Z")
}

// sanitizePattern strips characters that carry meaning inside a PostgREST logic tree.
func sanitizePattern(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ',', '(', ')', '*', '"', '\\':
			return -1
		}
		return r
	}, strings.TrimSpace(s))
}
