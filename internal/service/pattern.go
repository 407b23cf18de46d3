package service

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/JonnyWalker81/mindjournal/backend/internal/detector"
	"github.com/JonnyWalker81/mindjournal/backend/internal/logger"
	"github.com/JonnyWalker81/mindjournal/backend/internal/metrics"
	"github.com/JonnyWalker81/mindjournal/backend/internal/models"
	"github.com/JonnyWalker81/mindjournal/backend/internal/repository"
)

const (
	DefaultMinPatternStrength = 0.3
	MaxLookbackDays           = 365
	MaxPredictionDays         = 90
)

type patternService struct {
	detector    detector.Detector
	patternRepo repository.PatternRepository
	metrics     *metrics.Collector
}

// NewPatternService creates a new pattern service
func NewPatternService(d detector.Detector, patternRepo repository.PatternRepository, collector *metrics.Collector) PatternService {
	return &patternService{
		detector:    d,
		patternRepo: patternRepo,
		metrics:     collector,
	}
}

// DetectPatterns runs the cycle, trigger and thought detectors concurrently and stores
// the trigger and thought patterns. Any detector failure fails the whole run.
func (s *patternService) DetectPatterns(ctx context.Context, userID string, lookbackDays int) (*models.PatternDetectionSummary, error) {
	lookbackDays, err := normalizeDays(lookbackDays, detector.DefaultLookbackDays, MaxLookbackDays)
	if err != nil {
		return nil, err
	}

	var (
		cycles   []models.EmotionalCycle
		triggers []models.Pattern
		thoughts []models.Pattern
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		cycles, err = s.DetectCycles(ctx, userID, lookbackDays)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		triggers, err = s.DetectTriggers(ctx, userID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		thoughts, err = s.DetectThoughtPatterns(ctx, userID)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	detected := make([]models.Pattern, 0, len(triggers)+len(thoughts))
	for _, list := range [][]models.Pattern{triggers, thoughts} {
		for _, pattern := range list {
			pattern.UserID = userID
			detected = append(detected, pattern)
		}
	}

	if _, err := s.patternRepo.UpsertBatch(ctx, detected); err != nil {
		return nil, fmt.Errorf("failed to save patterns: %w", err)
	}

	summary := &models.PatternDetectionSummary{
		Cycles:          len(cycles),
		Triggers:        len(triggers),
		ThoughtPatterns: len(thoughts),
		Total:           len(cycles) + len(detected),
	}

	logger.Ctx(ctx).Info("pattern detection complete",
		logger.Int("lookback_days", lookbackDays),
		logger.Int("cycles", summary.Cycles),
		logger.Int("triggers", summary.Triggers),
		logger.Int("thought_patterns", summary.ThoughtPatterns),
	)
	return summary, nil
}

func (s *patternService) ListPatterns(ctx context.Context, userID string, filter repository.PatternFilter) ([]models.Pattern, error) {
	if filter.MinStrength < 0 || filter.MinStrength > 1 {
		return nil, fmt.Errorf("%w: min strength must be between 0 and 1", ErrInvalidInput)
	}

	patterns, err := s.patternRepo.GetByUserID(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list patterns: %w", err)
	}
	return patterns, nil
}

func (s *patternService) GetPattern(ctx context.Context, userID, patternID string) (*models.Pattern, error) {
	pattern, err := s.patternRepo.GetByID(ctx, userID, patternID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pattern: %w", err)
	}
	return pattern, nil
}

func (s *patternService) DeletePattern(ctx context.Context, userID, patternID string) error {
	if _, err := s.GetPattern(ctx, userID, patternID); err != nil {
		return err
	}
	if err := s.patternRepo.Delete(ctx, userID, patternID); err != nil {
		return fmt.Errorf("failed to delete pattern: %w", err)
	}
	return nil
}

func (s *patternService) DetectCycles(ctx context.Context, userID string, lookbackDays int) ([]models.EmotionalCycle, error) {
	lookbackDays, err := normalizeDays(lookbackDays, detector.DefaultLookbackDays, MaxLookbackDays)
	if err != nil {
		return nil, err
	}
	cycles, err := s.detector.DetectEmotionalCycles(ctx, userID, lookbackDays)
	s.observe("emotional_cycles", err)
	if err != nil {
		return nil, fmt.Errorf("failed to detect emotional cycles: %w", err)
	}
	return cycles, nil
}

func (s *patternService) DetectTriggers(ctx context.Context, userID string) ([]models.Pattern, error) {
	triggers, err := s.detector.DetectTriggerPatterns(ctx, userID)
	s.observe("trigger_patterns", err)
	if err != nil {
		return nil, fmt.Errorf("failed to detect trigger patterns: %w", err)
	}
	return triggers, nil
}

func (s *patternService) DetectThoughtPatterns(ctx context.Context, userID string) ([]models.Pattern, error) {
	thoughts, err := s.detector.DetectThoughtPatterns(ctx, userID)
	s.observe("thought_patterns", err)
	if err != nil {
		return nil, fmt.Errorf("failed to detect thought patterns: %w", err)
	}
	return thoughts, nil
}

func (s *patternService) SuggestCopingStrategies(ctx context.Context, userID, mood string) ([]models.CopingStrategy, error) {
	strategies, err := s.detector.SuggestCopingStrategies(ctx, userID, mood)
	s.observe("coping_strategies", err)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest coping strategies: %w", err)
	}
	return strategies, nil
}

func (s *patternService) GeneratePredictions(ctx context.Context, userID string, daysAhead int) ([]models.Prediction, error) {
	daysAhead, err := normalizeDays(daysAhead, detector.DefaultDaysAhead, MaxPredictionDays)
	if err != nil {
		return nil, err
	}
	predictions, err := s.detector.GeneratePredictions(ctx, userID, daysAhead)
	s.observe("predictions", err)
	if err != nil {
		return nil, fmt.Errorf("failed to generate predictions: %w", err)
	}
	return predictions, nil
}

func (s *patternService) observe(name string, err error) {
	s.metrics.ObserveDetector(name, metrics.Outcome(err, true))
}

// normalizeDays applies a default for zero and rejects negative or oversized values.
func normalizeDays(days, def, limit int) (int, error) {
	switch {
	case days < 0:
		return 0, fmt.Errorf("%w: days must not be negative", ErrInvalidInput)
	case days == 0:
		return def, nil
	case days > limit:
		return 0, fmt.Errorf("%w: days must be at most %d", ErrInvalidInput, limit)
	}
	return days, nil
}
