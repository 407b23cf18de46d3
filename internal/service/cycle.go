package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/JonnyWalker81/mindjournal/backend/internal/analytics"
	"github.com/JonnyWalker81/mindjournal/backend/internal/logger"
	"github.com/JonnyWalker81/mindjournal/backend/internal/metrics"
	"github.com/JonnyWalker81/mindjournal/backend/internal/models"
	"github.com/JonnyWalker81/mindjournal/backend/internal/repository"
)

// MinHistoryForAverage is the number of logged cycles after which the average cycle
// length is recomputed from history.
const MinHistoryForAverage = 3

type cycleService struct {
	cycleRepo repository.CycleRepository
	entryRepo repository.EntryRepository
	clock     Clock
	metrics   *metrics.Collector
}

// NewCycleService creates a new cycle service
func NewCycleService(
	cycleRepo repository.CycleRepository,
	entryRepo repository.EntryRepository,
	clock Clock,
	collector *metrics.Collector,
) CycleService {
	if clock == nil {
		clock = SystemClock
	}
	return &cycleService{
		cycleRepo: cycleRepo,
		entryRepo: entryRepo,
		clock:     clock,
		metrics:   collector,
	}
}

func (s *cycleService) GetProfile(ctx context.Context, userID string) (*models.CycleProfile, error) {
	profile, err := s.cycleRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cycle profile: %w", err)
	}
	return profile, nil
}

func (s *cycleService) EnableTracking(ctx context.Context, userID string, req *models.EnableTrackingRequest) (*models.CycleProfile, error) {
	if req.CycleLength != nil {
		if err := validateCycleLength(*req.CycleLength); err != nil {
			return nil, err
		}
	}

	profile, err := s.cycleRepo.GetByUserID(ctx, userID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		profile = &models.CycleProfile{
			UserID:             userID,
			AverageCycleLength: models.DefaultCycleLength,
			OvulationDay:       models.DefaultOvulationDay,
			CycleHistory:       []models.CycleInterval{},
		}
	case err != nil:
		return nil, fmt.Errorf("failed to get cycle profile: %w", err)
	}

	profile.IsTracking = true
	if req.CycleLength != nil {
		profile.AverageCycleLength = *req.CycleLength
	}
	if req.LastPeriodStart != nil {
		start := req.LastPeriodStart.UTC()
		profile.LastPeriodStart = &start
	}
	if profile.LastPeriodStart != nil {
		profile.NextPredictedPeriod = predictNext(*profile.LastPeriodStart, profile.CycleLength())
	}

	saved, err := s.cycleRepo.Upsert(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to enable tracking: %w", err)
	}
	return saved, nil
}

// DisableTracking turns tracking off. Users without a profile have nothing to disable.
func (s *cycleService) DisableTracking(ctx context.Context, userID string) error {
	profile, err := s.cycleRepo.GetByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get cycle profile: %w", err)
	}

	profile.IsTracking = false
	if _, err := s.cycleRepo.Upsert(ctx, profile); err != nil {
		return fmt.Errorf("failed to disable tracking: %w", err)
	}
	return nil
}

func (s *cycleService) LogPeriodStart(ctx context.Context, userID string, date *time.Time) (*models.CycleProfile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	start := s.dateOrNow(date)
	profile.LastPeriodStart = &start
	profile.NextPredictedPeriod = predictNext(start, profile.CycleLength())

	saved, err := s.cycleRepo.Upsert(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to log period start: %w", err)
	}
	return saved, nil
}

// LogPeriodEnd closes the current cycle into history. Once enough cycles are logged
// the average cycle length follows the history.
func (s *cycleService) LogPeriodEnd(ctx context.Context, userID string, date *time.Time) (*models.CycleProfile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.LastPeriodStart == nil {
		return nil, fmt.Errorf("%w: no period start logged", ErrInvalidInput)
	}

	start := *profile.LastPeriodStart
	end := s.dateOrNow(date)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: period end is before period start", ErrInvalidInput)
	}

	length := int(math.Ceil(end.Sub(start).Hours() / 24))
	profile.CycleHistory = append(profile.CycleHistory, models.CycleInterval{
		StartDate: start,
		EndDate:   end,
		Length:    length,
	})

	if len(profile.CycleHistory) >= MinHistoryForAverage {
		profile.AverageCycleLength = averageLength(profile.CycleHistory)
	}

	saved, err := s.cycleRepo.Upsert(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to log period end: %w", err)
	}
	return saved, nil
}

// GetCurrentPhase reports PhaseUnknown for users without an active profile.
func (s *cycleService) GetCurrentPhase(ctx context.Context, userID string) (*models.PhaseInfo, error) {
	profile, err := s.cycleRepo.GetByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		profile = nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get cycle profile: %w", err)
	}

	info := analytics.CurrentPhase(profile, s.clock())
	return &info, nil
}

// GetMoodCorrelations computes the phase/mood correlations and then persists them as
// the profile's advisory cache. A failed cache write is logged, not returned.
func (s *cycleService) GetMoodCorrelations(ctx context.Context, userID string) (result *models.CorrelationResult, ok bool, err error) {
	defer func(start time.Time) {
		s.metrics.ObserveComputation("mood_correlations", metrics.Outcome(err, ok), time.Since(start))
	}(time.Now())

	profile, err := s.cycleRepo.GetByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get cycle profile: %w", err)
	}
	if !profile.IsTracking || profile.LastPeriodStart == nil {
		return nil, false, nil
	}

	asOf := s.clock()
	since := analytics.WindowStart(asOf, analytics.CorrelationWindowDays)
	entries, err := s.entryRepo.GetByUserID(ctx, userID, models.EntryQuery{Since: &since, Ascending: true})
	if err != nil {
		return nil, false, fmt.Errorf("failed to get entries: %w", err)
	}

	result, ok = analytics.ComputeCorrelations(profile, entries, asOf)
	if !ok {
		return nil, false, nil
	}

	s.persistCorrelations(ctx, userID, result)
	return result, true, nil
}

// persistCorrelations overwrites the cached correlations. Concurrent writers race and
// the last one wins, which is fine for a value that is always recomputed.
func (s *cycleService) persistCorrelations(ctx context.Context, userID string, result *models.CorrelationResult) {
	if err := s.cycleRepo.UpdateCorrelations(ctx, userID, result.Correlations); err != nil {
		logger.Ctx(ctx).Warn("failed to persist mood correlations",
			logger.Err(err),
			logger.Int("phases", len(result.Correlations)),
		)
	}
}

func (s *cycleService) UpdatePreferences(ctx context.Context, userID string, req *models.CyclePreferencesRequest) (*models.CycleProfile, error) {
	if req.AverageCycleLength != nil {
		if err := validateCycleLength(*req.AverageCycleLength); err != nil {
			return nil, err
		}
	}
	if req.OvulationDay != nil && (*req.OvulationDay < 1 || *req.OvulationDay > models.MaxCycleLength) {
		return nil, fmt.Errorf("%w: ovulation day must be between 1 and %d", ErrInvalidInput, models.MaxCycleLength)
	}

	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.AverageCycleLength != nil {
		profile.AverageCycleLength = *req.AverageCycleLength
	}
	if req.OvulationDay != nil {
		profile.OvulationDay = *req.OvulationDay
	}

	saved, err := s.cycleRepo.Upsert(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}
	return saved, nil
}

func (s *cycleService) dateOrNow(date *time.Time) time.Time {
	if date != nil {
		return date.UTC()
	}
	return s.clock().UTC()
}

func validateCycleLength(length int) error {
	if length < 1 || length > models.MaxCycleLength {
		return fmt.Errorf("%w: cycle length must be between 1 and %d", ErrInvalidInput, models.MaxCycleLength)
	}
	return nil
}

func predictNext(start time.Time, length int) *time.Time {
	next := start.AddDate(0, 0, length)
	return &next
}

func averageLength(history []models.CycleInterval) int {
	total := 0
	for _, h := range history {
		total += h.Length
	}
	return max(1, int(math.Round(float64(total)/float64(len(history)))))
}
