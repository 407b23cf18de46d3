package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/mindjournal/backend/internal/middleware"
	"github.com/JonnyWalker81/mindjournal/backend/internal/models"
	"github.com/JonnyWalker81/mindjournal/backend/internal/repository"
	"github.com/JonnyWalker81/mindjournal/backend/internal/service"
)

const (
	testUser    = "user-1"
	testEntryID = "0190a6f4-1c2b-7d3e-8f40-5a6b7c8d9e0f"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newRouter returns an engine where every request is authenticated as testUser.
func newRouter() *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, testUser)
		c.Next()
	})
	return router
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// The stubs embed the service interface so each test only supplies the methods
// it exercises. Calling anything else panics.

type stubEntryService struct {
	service.EntryService
	entry  *models.Entry
	page   *models.EntryPage
	err    error
	search models.EntrySearch
	userID string
}

func (s *stubEntryService) CreateEntry(_ context.Context, userID string, req *models.CreateEntryRequest) (*models.Entry, error) {
	s.userID = userID
	if s.err != nil {
		return nil, s.err
	}
	return &models.Entry{ID: "entry-1", UserID: userID, Title: req.Title, Content: req.Content, Tags: req.Tags}, nil
}

func (s *stubEntryService) GetEntry(_ context.Context, userID, _ string) (*models.Entry, error) {
	s.userID = userID
	return s.entry, s.err
}

func (s *stubEntryService) ListEntries(_ context.Context, _ string, page, limit int) (*models.EntryPage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.EntryPage{Page: page, Pages: limit, Entries: []models.Entry{}}, nil
}

func (s *stubEntryService) DeleteEntry(_ context.Context, userID, _ string) error {
	s.userID = userID
	return s.err
}

func (s *stubEntryService) SearchEntries(_ context.Context, _ string, search models.EntrySearch) ([]models.Entry, error) {
	s.search = search
	return []models.Entry{}, s.err
}

type stubInsightService struct {
	service.InsightService
	weekly  *models.WeeklyReport
	monthly *models.MonthlyReport
	err     error
	days    int
}

func (s *stubInsightService) GetMoodTrends(_ context.Context, _ string, days int) ([]models.MoodTrendPoint, error) {
	s.days = days
	if s.err != nil {
		return nil, s.err
	}
	return []models.MoodTrendPoint{}, nil
}

func (s *stubInsightService) GetWeeklyReport(context.Context, string) (*models.WeeklyReport, bool, error) {
	return s.weekly, s.weekly != nil, s.err
}

func (s *stubInsightService) GetMonthlyReport(context.Context, string) (*models.MonthlyReport, bool, error) {
	return s.monthly, s.monthly != nil, s.err
}

type stubCycleService struct {
	service.CycleService
	profile     *models.CycleProfile
	correlation *models.CorrelationResult
	err         error
	date        *time.Time
}

func (s *stubCycleService) EnableTracking(_ context.Context, userID string, req *models.EnableTrackingRequest) (*models.CycleProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	p := &models.CycleProfile{UserID: userID, IsTracking: true, AverageCycleLength: models.DefaultCycleLength}
	if req.CycleLength != nil {
		p.AverageCycleLength = *req.CycleLength
	}
	return p, nil
}

func (s *stubCycleService) GetMoodCorrelations(context.Context, string) (*models.CorrelationResult, bool, error) {
	return s.correlation, s.correlation != nil, s.err
}

func (s *stubCycleService) LogPeriodStart(_ context.Context, _ string, date *time.Time) (*models.CycleProfile, error) {
	s.date = date
	return s.profile, s.err
}

type stubPatternService struct {
	service.PatternService
	filter       repository.PatternFilter
	lookbackDays int
	daysAhead    int
	err          error
}

func (s *stubPatternService) DetectPatterns(_ context.Context, _ string, lookbackDays int) (*models.PatternDetectionSummary, error) {
	s.lookbackDays = lookbackDays
	if s.err != nil {
		return nil, s.err
	}
	return &models.PatternDetectionSummary{Cycles: 1, Triggers: 2, Total: 3}, nil
}

func (s *stubPatternService) ListPatterns(_ context.Context, _ string, filter repository.PatternFilter) ([]models.Pattern, error) {
	s.filter = filter
	return []models.Pattern{{ID: "p-1", PatternType: filter.Type, Strength: 0.8}}, s.err
}

func (s *stubPatternService) GeneratePredictions(_ context.Context, _ string, daysAhead int) ([]models.Prediction, error) {
	s.daysAhead = daysAhead
	return []models.Prediction{}, s.err
}
