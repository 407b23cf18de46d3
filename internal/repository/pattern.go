package repository

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/JonnyWalker81/mindjournal/backend/internal/models"
	"github.com/JonnyWalker81/mindjournal/backend/pkg/supabase"
)

const patternsTable = "patterns"

type patternRepository struct {
	client *supabase.Client
}

// NewPatternRepository creates a new pattern repository
func NewPatternRepository(client *supabase.Client) PatternRepository {
	return &patternRepository{client: client}
}

func (r *patternRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	count, err := r.client.Count(ctx, patternsTable, map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count patterns: %w", err)
	}
	return count, nil
}

func (r *patternRepository) GetByUserID(ctx context.Context, userID string, filter PatternFilter) ([]models.Pattern, error) {
	query := map[string]interface{}{
		"user_id":  fmt.Sprintf("eq.%s", userID),
		"strength": fmt.Sprintf("gte.%g", filter.MinStrength),
		"select":   "*",
		"order":    "strength.desc",
	}
	if filter.Type != "" {
		query["pattern_type"] = fmt.Sprintf("eq.%s", filter.Type)
	}

	body, err := r.client.Query(ctx, patternsTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get patterns: %w", err)
	}

	return decodePatterns(body)
}

func (r *patternRepository) GetByID(ctx context.Context, userID, id string) (*models.Pattern, error) {
	query := map[string]interface{}{
		"id":      fmt.Sprintf("eq.%s", id),
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "*",
	}

	body, err := r.client.Query(ctx, patternsTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get pattern: %w", err)
	}

	patterns, err := decodePatterns(body)
	if err != nil {
		return nil, err
	}
	if len(patterns) == 0 {
		return nil, ErrNotFound
	}
	return &patterns[0], nil
}

func (r *patternRepository) UpsertBatch(ctx context.Context, patterns []models.Pattern) ([]models.Pattern, error) {
	if len(patterns) == 0 {
		return []models.Pattern{}, nil
	}

	// PostgREST requires identical keys on every object of a bulk insert.
	rows := make([]map[string]interface{}, 0, len(patterns))
	for _, p := range patterns {
		rows = append(rows, map[string]interface{}{
			"user_id":          p.UserID,
			"pattern_type":     p.PatternType,
			"name":             p.Name,
			"description":      p.Description,
			"frequency":        p.Frequency,
			"strength":         p.Strength,
			"trigger_words":    nonNil(p.TriggerWords),
			"associated_moods": nonNil(p.AssociatedMoods),
			"time_of_day":      nonNil(p.TimeOfDay),
			"days_of_week":     nonNilInts(p.DaysOfWeek),
		})
	}

	body, err := r.client.Upsert(ctx, patternsTable, rows, "user_id,pattern_type,name")
	if err != nil {
		return nil, fmt.Errorf("failed to upsert patterns: %w", err)
	}

	return decodePatterns(body)
}

func (r *patternRepository) Delete(ctx context.Context, userID, id string) error {
	query := map[string]interface{}{
		"id":      fmt.Sprintf("eq.%s", id),
		"user_id": fmt.Sprintf("eq.%s", userID),
	}

	if err := r.client.DeleteWhere(ctx, patternsTable, query); err != nil {
		return fmt.Errorf("failed to delete pattern: %w", err)
	}
	return nil
}

func decodePatterns(body []byte) ([]models.Pattern, error) {
	var patterns []models.Pattern
	if err := json.Unmarshal(body, &patterns); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if patterns == nil {
		patterns = []models.Pattern{}
	}
	return patterns, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilInts(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}
