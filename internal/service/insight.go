package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/JonnyWalker81/mindjournal/backend/internal/analytics"
	"github.com/JonnyWalker81/mindjournal/backend/internal/metrics"
	"github.com/JonnyWalker81/mindjournal/backend/internal/models"
	"github.com/JonnyWalker81/mindjournal/backend/internal/repository"
)

const (
	// DefaultWindowDays is the lookback used by trends and the keyword cloud.
	DefaultWindowDays  = 30
	overviewWindowDays = 30
)

type insightService struct {
	entryRepo   repository.EntryRepository
	patternRepo repository.PatternRepository
	clock       Clock
	metrics     *metrics.Collector
}

// NewInsightService creates a new insight service. A nil clock uses the system clock
// and a nil collector records nothing.
func NewInsightService(
	entryRepo repository.EntryRepository,
	patternRepo repository.PatternRepository,
	clock Clock,
	collector *metrics.Collector,
) InsightService {
	if clock == nil {
		clock = SystemClock
	}
	return &insightService{
		entryRepo:   entryRepo,
		patternRepo: patternRepo,
		clock:       clock,
		metrics:     collector,
	}
}

// GetOverview fans the store reads out in parallel and combines them. Every read
// must succeed; a failed count is never reported as zero.
func (s *insightService) GetOverview(ctx context.Context, userID string) (overview *models.Overview, err error) {
	defer s.observe("overview", time.Now(), &err, true)

	asOf := s.clock()
	since := analytics.WindowStart(asOf, overviewWindowDays)

	var (
		counts     analytics.OverviewCounts
		recent     []models.Entry
		timestamps []time.Time
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.entryRepo.Count(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to count entries: %w", err)
		}
		counts.TotalEntries = n
		return nil
	})
	g.Go(func() error {
		n, err := s.entryRepo.CountSince(gctx, userID, since)
		if err != nil {
			return fmt.Errorf("failed to count recent entries: %w", err)
		}
		counts.EntriesThisMonth = n
		return nil
	})
	g.Go(func() error {
		n, err := s.patternRepo.CountByUserID(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to count patterns: %w", err)
		}
		counts.PatternsDetected = n
		return nil
	})
	g.Go(func() error {
		entries, err := s.entryRepo.GetByUserID(gctx, userID, models.EntryQuery{Since: &since, Ascending: true})
		if err != nil {
			return fmt.Errorf("failed to get recent entries: %w", err)
		}
		recent = entries
		return nil
	})
	g.Go(func() error {
		ts, err := s.entryRepo.GetTimestamps(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to get entry timestamps: %w", err)
		}
		timestamps = ts
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := analytics.Overview(counts, analytics.Since(recent, since), timestamps)
	return &result, nil
}

func (s *insightService) GetMoodTrends(ctx context.Context, userID string, days int) (trends []models.MoodTrendPoint, err error) {
	defer s.observe("mood_trends", time.Now(), &err, true)

	since, err := s.windowStart(days)
	if err != nil {
		return nil, err
	}

	entries, err := s.entriesSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	return analytics.MoodTrends(entries), nil
}

func (s *insightService) GetWeeklyReport(ctx context.Context, userID string) (report *models.WeeklyReport, ok bool, err error) {
	defer func(start time.Time) { s.observe("weekly_report", start, &err, ok) }(time.Now())

	asOf := s.clock()
	entries, err := s.entriesSince(ctx, userID, analytics.WindowStart(asOf, analytics.WeeklyWindowDays))
	if err != nil {
		return nil, false, err
	}

	report, ok = analytics.WeeklyReport(entries, asOf)
	return report, ok, nil
}

func (s *insightService) GetMonthlyReport(ctx context.Context, userID string) (report *models.MonthlyReport, ok bool, err error) {
	defer func(start time.Time) { s.observe("monthly_report", start, &err, ok) }(time.Now())

	asOf := s.clock()
	entries, err := s.entriesSince(ctx, userID, analytics.WindowStart(asOf, analytics.MonthlyWindowDays))
	if err != nil {
		return nil, false, err
	}

	report, ok = analytics.MonthlyReport(entries, asOf)
	return report, ok, nil
}

func (s *insightService) GetSimilarEntries(ctx context.Context, userID, entryID string) (similar []models.SimilarEntry, err error) {
	defer s.observe("similar_entries", time.Now(), &err, true)

	target, err := s.entryRepo.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	candidates, err := s.entryRepo.GetByUserID(ctx, userID, models.EntryQuery{Ascending: true})
	if err != nil {
		return nil, fmt.Errorf("failed to get entries: %w", err)
	}

	return analytics.RankSimilar(target, candidates), nil
}

func (s *insightService) GetKeywordCloud(ctx context.Context, userID string, days int) (cloud []models.KeywordCount, err error) {
	defer s.observe("keyword_cloud", time.Now(), &err, true)

	since, err := s.windowStart(days)
	if err != nil {
		return nil, err
	}

	entries, err := s.entriesSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	return analytics.KeywordCloud(entries), nil
}

func (s *insightService) GetEmotionalJourney(ctx context.Context, userID string) (journey []models.JourneyPoint, err error) {
	defer s.observe("emotional_journey", time.Now(), &err, true)

	entries, err := s.entryRepo.GetByUserID(ctx, userID, models.EntryQuery{Ascending: true})
	if err != nil {
		return nil, fmt.Errorf("failed to get entries: %w", err)
	}

	return analytics.EmotionalJourney(entries), nil
}

// entriesSince loads the entries created at or after since, oldest first.
func (s *insightService) entriesSince(ctx context.Context, userID string, since time.Time) ([]models.Entry, error) {
	entries, err := s.entryRepo.GetByUserID(ctx, userID, models.EntryQuery{Since: &since, Ascending: true})
	if err != nil {
		return nil, fmt.Errorf("failed to get entries: %w", err)
	}
	return entries, nil
}

// windowStart validates a lookback in days. Zero selects DefaultWindowDays.
func (s *insightService) windowStart(days int) (time.Time, error) {
	days, err := normalizeDays(days, DefaultWindowDays, MaxLookbackDays)
	if err != nil {
		return time.Time{}, err
	}
	return analytics.WindowStart(s.clock(), days), nil
}

func (s *insightService) observe(kind string, start time.Time, err *error, hasData bool) {
	s.metrics.ObserveComputation(kind, metrics.Outcome(*err, hasData), time.Since(start))
}
