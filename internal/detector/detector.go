// Package detector calls the black-box pattern and prediction detectors.
//
// The detectors live outside this service. They are exposed as Postgres functions
// and reached through the PostgREST RPC endpoint. A detector with nothing to report
// returns an empty collection, never an error.
package detector

//go:generate mockgen -source=detector.go -destination=mock_detector.go -package=detector

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/JonnyWalker81/mindjournal/backend/internal/models"
	"github.com/JonnyWalker81/mindjournal/backend/pkg/supabase"
)

const (
	DefaultLookbackDays = 90
	DefaultDaysAhead    = 14
)

// Detector is the set of opaque detectors the pattern and prediction endpoints use.
type Detector interface {
	DetectEmotionalCycles(ctx context.Context, userID string, lookbackDays int) ([]models.EmotionalCycle, error)
	DetectTriggerPatterns(ctx context.Context, userID string) ([]models.Pattern, error)
	DetectThoughtPatterns(ctx context.Context, userID string) ([]models.Pattern, error)
	SuggestCopingStrategies(ctx context.Context, userID, mood string) ([]models.CopingStrategy, error)
	GeneratePredictions(ctx context.Context, userID string, daysAhead int) ([]models.Prediction, error)
}

// RPCCaller is the part of the Supabase client the detectors need.
type RPCCaller interface {
	RPC(ctx context.Context, function string, params interface{}) ([]byte, error)
}

var _ RPCCaller = (*supabase.Client)(nil)

type rpcDetector struct {
	client RPCCaller
}

// NewRPCDetector creates a Detector backed by PostgREST RPC functions.
func NewRPCDetector(client RPCCaller) Detector {
	return &rpcDetector{client: client}
}

func (d *rpcDetector) DetectEmotionalCycles(ctx context.Context, userID string, lookbackDays int) ([]models.EmotionalCycle, error) {
	return call[models.EmotionalCycle](ctx, d.client, "detect_emotional_cycles", map[string]interface{}{
		"p_user_id":       userID,
		"p_lookback_days": lookbackDays,
	})
}

func (d *rpcDetector) DetectTriggerPatterns(ctx context.Context, userID string) ([]models.Pattern, error) {
	return call[models.Pattern](ctx, d.client, "detect_trigger_patterns", map[string]interface{}{
		"p_user_id": userID,
	})
}

func (d *rpcDetector) DetectThoughtPatterns(ctx context.Context, userID string) ([]models.Pattern, error) {
	return call[models.Pattern](ctx, d.client, "detect_thought_patterns", map[string]interface{}{
		"p_user_id": userID,
	})
}

func (d *rpcDetector) SuggestCopingStrategies(ctx context.Context, userID, mood string) ([]models.CopingStrategy, error) {
	params := map[string]interface{}{
		"p_user_id": userID,
		"p_mood":    nil,
	}
	if mood != "" {
		params["p_mood"] = mood
	}
	return call[models.CopingStrategy](ctx, d.client, "suggest_coping_strategies", params)
}

func (d *rpcDetector) GeneratePredictions(ctx context.Context, userID string, daysAhead int) ([]models.Prediction, error) {
	return call[models.Prediction](ctx, d.client, "generate_predictions", map[string]interface{}{
		"p_user_id":    userID,
		"p_days_ahead": daysAhead,
	})
}

func call[T any](ctx context.Context, client RPCCaller, function string, params map[string]interface{}) ([]T, error) {
	body, err := client.RPC(ctx, function, params)
	if err != nil {
		return nil, fmt.Errorf("detector %s failed: %w", function, err)
	}

	var out []T
	if len(body) > 0 {
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, fmt.Errorf("detector %s returned malformed data: %w", function, err)
		}
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
