package service

import (
	"context"
	"errors"
	"time"

	"github.com/JonnyWalker81/mindjournal/backend/internal/models"
	"github.com/JonnyWalker81/mindjournal/backend/internal/repository"
)

// ErrInvalidInput marks a request rejected before any computation ran.
var ErrInvalidInput = errors.New("invalid input")

// Clock returns the reference time of a computation.
type Clock func() time.Time

// SystemClock reads the wall clock in UTC.
func SystemClock() time.Time {
	return time.Now().UTC()
}

// EntryService defines the interface for journal entry business logic
type EntryService interface {
	CreateEntry(ctx context.Context, userID string, req *models.CreateEntryRequest) (*models.Entry, error)
	GetEntry(ctx context.Context, userID, entryID string) (*models.Entry, error)
	ListEntries(ctx context.Context, userID string, page, limit int) (*models.EntryPage, error)
	UpdateEntry(ctx context.Context, userID, entryID string, req *models.UpdateEntryRequest) (*models.Entry, error)
	DeleteEntry(ctx context.Context, userID, entryID string) error
	SearchEntries(ctx context.Context, userID string, search models.EntrySearch) ([]models.Entry, error)
}

// InsightService defines the interface for the derived insight views.
// Reports return ok=false when there is nothing to report.
type InsightService interface {
	GetOverview(ctx context.Context, userID string) (*models.Overview, error)
	GetMoodTrends(ctx context.Context, userID string, days int) ([]models.MoodTrendPoint, error)
	GetWeeklyReport(ctx context.Context, userID string) (report *models.WeeklyReport, ok bool, err error)
	GetMonthlyReport(ctx context.Context, userID string) (report *models.MonthlyReport, ok bool, err error)
	GetSimilarEntries(ctx context.Context, userID, entryID string) ([]models.SimilarEntry, error)
	GetKeywordCloud(ctx context.Context, userID string, days int) ([]models.KeywordCount, error)
	GetEmotionalJourney(ctx context.Context, userID string) ([]models.JourneyPoint, error)
}

// CycleService defines the interface for cycle tracking and phase/mood correlation.
type CycleService interface {
	GetProfile(ctx context.Context, userID string) (*models.CycleProfile, error)
	EnableTracking(ctx context.Context, userID string, req *models.EnableTrackingRequest) (*models.CycleProfile, error)
	DisableTracking(ctx context.Context, userID string) error
	LogPeriodStart(ctx context.Context, userID string, date *time.Time) (*models.CycleProfile, error)
	LogPeriodEnd(ctx context.Context, userID string, date *time.Time) (*models.CycleProfile, error)
	GetCurrentPhase(ctx context.Context, userID string) (*models.PhaseInfo, error)
	GetMoodCorrelations(ctx context.Context, userID string) (result *models.CorrelationResult, ok bool, err error)
	UpdatePreferences(ctx context.Context, userID string, req *models.CyclePreferencesRequest) (*models.CycleProfile, error)
}

// PatternService defines the interface for detector-backed patterns and predictions.
type PatternService interface {
	DetectPatterns(ctx context.Context, userID string, lookbackDays int) (*models.PatternDetectionSummary, error)
	ListPatterns(ctx context.Context, userID string, filter repository.PatternFilter) ([]models.Pattern, error)
	GetPattern(ctx context.Context, userID, patternID string) (*models.Pattern, error)
	DeletePattern(ctx context.Context, userID, patternID string) error
	DetectCycles(ctx context.Context, userID string, lookbackDays int) ([]models.EmotionalCycle, error)
	DetectTriggers(ctx context.Context, userID string) ([]models.Pattern, error)
	DetectThoughtPatterns(ctx context.Context, userID string) ([]models.Pattern, error)
	SuggestCopingStrategies(ctx context.Context, userID, mood string) ([]models.CopingStrategy, error)
	GeneratePredictions(ctx context.Context, userID string, daysAhead int) ([]models.Prediction, error)
}
