package repository

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/JonnyWalker81/mindjournal/backend/internal/models"
	"github.com/JonnyWalker81/mindjournal/backend/pkg/supabase"
)

const cyclesTable = "menstrual_cycles"

type cycleRepository struct {
	client *supabase.Client
}

// NewCycleRepository creates a new cycle profile repository
func NewCycleRepository(client *supabase.Client) CycleRepository {
	return &cycleRepository{client: client}
}

func (r *cycleRepository) GetByUserID(ctx context.Context, userID string) (*models.CycleProfile, error) {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "*",
	}

	body, err := r.client.Query(ctx, cyclesTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get cycle profile: %w", err)
	}

	return firstProfile(body)
}

func (r *cycleRepository) Upsert(ctx context.Context, profile *models.CycleProfile) (*models.CycleProfile, error) {
	history := profile.CycleHistory
	if history == nil {
		history = []models.CycleInterval{}
	}

	// mood_correlations is owned by UpdateCorrelations and never written here.
	data := map[string]interface{}{
		"user_id":               profile.UserID,
		"is_tracking":           profile.IsTracking,
		"average_cycle_length":  profile.AverageCycleLength,
		"last_period_start":     profile.LastPeriodStart,
		"next_predicted_period": profile.NextPredictedPeriod,
		"cycle_history":         history,
		"ovulation_day":         profile.OvulationDay,
	}

	body, err := r.client.Upsert(ctx, cyclesTable, data, "user_id")
	if err != nil {
		return nil, fmt.Errorf("failed to upsert cycle profile: %w", err)
	}

	return firstProfile(body)
}

func (r *cycleRepository) UpdateCorrelations(ctx context.Context, userID string, correlations map[models.Phase]models.PhaseCorrelation) error {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
	}
	data := map[string]interface{}{
		"mood_correlations": correlations,
	}

	body, err := r.client.UpdateWhere(ctx, cyclesTable, query, data)
	if err != nil {
		return fmt.Errorf("failed to update mood correlations: %w", err)
	}

	_, err = firstProfile(body)
	return err
}

func firstProfile(body []byte) (*models.CycleProfile, error) {
	var profiles []models.CycleProfile
	if err := json.Unmarshal(body, &profiles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(profiles) == 0 {
		return nil, ErrNotFound
	}
	return &profiles[0], nil
}
