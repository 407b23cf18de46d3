package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/JonnyWalker81/mindjournal/backend/internal/models"
	"github.com/JonnyWalker81/mindjournal/backend/internal/repository"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func daysAgo(n int) time.Time {
	return testNow.Add(-time.Duration(n) * 24 * time.Hour)
}

func ptr[T any](v T) *T { return &v }

// fakeEntryRepository is an in-memory EntryRepository for testing
type fakeEntryRepository struct {
	mu      sync.Mutex
	entries []models.Entry
	nextID  int

	err      error // returned by every read
	countErr error
	calls    map[string]int
}

func newFakeEntryRepository(entries ...models.Entry) *fakeEntryRepository {
	return &fakeEntryRepository{entries: entries, calls: map[string]int{}}
}

func (f *fakeEntryRepository) record(method string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[method]++
}

func (f *fakeEntryRepository) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	f.record("Create")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	e := *entry
	if e.ID == "" {
		e.ID = fmt.Sprintf("entry-%d", f.nextID)
	}
	e.CreatedAt = testNow
	e.UpdatedAt = testNow
	f.entries = append(f.entries, e)
	return &e, nil
}

func (f *fakeEntryRepository) GetByID(ctx context.Context, userID, id string) (*models.Entry, error) {
	f.record("GetByID")
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.entries {
		if e.ID == id && e.UserID == userID {
			return &e, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeEntryRepository) GetByUserID(ctx context.Context, userID string, q models.EntryQuery) ([]models.Entry, error) {
	f.record("GetByUserID")
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	out := []models.Entry{}
	for _, e := range f.entries {
		if e.UserID != userID {
			continue
		}
		if q.Since != nil && e.CreatedAt.Before(*q.Since) {
			continue
		}
		if q.Until != nil && e.CreatedAt.After(*q.Until) {
			continue
		}
		out = append(out, e)
	}

	slices.SortStableFunc(out, func(a, b models.Entry) int {
		if q.Ascending {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	if q.Offset > 0 {
		if q.Offset >= len(out) {
			return []models.Entry{}, nil
		}
		out = out[q.Offset:]
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (f *fakeEntryRepository) GetTimestamps(ctx context.Context, userID string) ([]time.Time, error) {
	entries, err := f.GetByUserID(ctx, userID, models.EntryQuery{})
	if err != nil {
		return nil, err
	}
	ts := make([]time.Time, len(entries))
	for i, e := range entries {
		ts[i] = e.CreatedAt
	}
	return ts, nil
}

func (f *fakeEntryRepository) Count(ctx context.Context, userID string) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	entries, err := f.GetByUserID(ctx, userID, models.EntryQuery{})
	return int64(len(entries)), err
}

func (f *fakeEntryRepository) CountSince(ctx context.Context, userID string, since time.Time) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	entries, err := f.GetByUserID(ctx, userID, models.EntryQuery{Since: &since})
	return int64(len(entries)), err
}

func (f *fakeEntryRepository) Update(ctx context.Context, userID, id string, update *models.UpdateEntryRequest) (*models.Entry, error) {
	f.record("Update")
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.entries {
		e := &f.entries[i]
		if e.ID != id || e.UserID != userID {
			continue
		}
		if update.Title != nil {
			e.Title = *update.Title
		}
		if update.Content != nil {
			e.Content = *update.Content
		}
		if update.Mood.Set {
			e.Mood = update.Mood.Ptr()
		}
		if update.Tags != nil {
			e.Tags = models.NormalizeTags(update.Tags)
		}
		updated := *e
		return &updated, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeEntryRepository) Delete(ctx context.Context, userID, id string) error {
	f.record("Delete")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = slices.DeleteFunc(f.entries, func(e models.Entry) bool {
		return e.ID == id && e.UserID == userID
	})
	return nil
}

func (f *fakeEntryRepository) Search(ctx context.Context, userID string, s models.EntrySearch) ([]models.Entry, error) {
	entries, err := f.GetByUserID(ctx, userID, models.EntryQuery{Since: s.StartDate, Until: s.EndDate})
	if err != nil {
		return nil, err
	}
	out := []models.Entry{}
	for _, e := range entries {
		if s.Keyword != "" && !strings.Contains(strings.ToLower(e.Title+" "+e.Content), strings.ToLower(s.Keyword)) {
			continue
		}
		if s.Tag != "" && !slices.Contains(e.Tags, s.Tag) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// fakeCycleRepository is an in-memory CycleRepository for testing
type fakeCycleRepository struct {
	mu       sync.Mutex
	profiles map[string]*models.CycleProfile

	getErr          error
	correlationsErr error
	upserts         int
	correlations    map[string]map[models.Phase]models.PhaseCorrelation
}

func newFakeCycleRepository(profiles ...*models.CycleProfile) *fakeCycleRepository {
	f := &fakeCycleRepository{
		profiles:     map[string]*models.CycleProfile{},
		correlations: map[string]map[models.Phase]models.PhaseCorrelation{},
	}
	for _, p := range profiles {
		f.profiles[p.UserID] = p
	}
	return f
}

func (f *fakeCycleRepository) GetByUserID(ctx context.Context, userID string) (*models.CycleProfile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *p
	clone.CycleHistory = slices.Clone(p.CycleHistory)
	return &clone, nil
}

func (f *fakeCycleRepository) Upsert(ctx context.Context, profile *models.CycleProfile) (*models.CycleProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts++
	stored := *profile
	if existing, ok := f.profiles[profile.UserID]; ok {
		stored.MoodCorrelations = existing.MoodCorrelations
	}
	f.profiles[profile.UserID] = &stored
	out := stored
	return &out, nil
}

func (f *fakeCycleRepository) UpdateCorrelations(ctx context.Context, userID string, correlations map[models.Phase]models.PhaseCorrelation) error {
	if f.correlationsErr != nil {
		return f.correlationsErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[userID]
	if !ok {
		return repository.ErrNotFound
	}
	p.MoodCorrelations = correlations
	f.correlations[userID] = correlations
	return nil
}

// fakePatternRepository is an in-memory PatternRepository for testing
type fakePatternRepository struct {
	mu       sync.Mutex
	patterns []models.Pattern
	countErr error
	upserted [][]models.Pattern
}

func (f *fakePatternRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, p := range f.patterns {
		if p.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakePatternRepository) GetByUserID(ctx context.Context, userID string, filter repository.PatternFilter) ([]models.Pattern, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Pattern{}
	for _, p := range f.patterns {
		if p.UserID != userID || p.Strength < filter.MinStrength {
			continue
		}
		if filter.Type != "" && p.PatternType != filter.Type {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePatternRepository) GetByID(ctx context.Context, userID, id string) (*models.Pattern, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.patterns {
		if p.ID == id && p.UserID == userID {
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakePatternRepository) UpsertBatch(ctx context.Context, patterns []models.Pattern) ([]models.Pattern, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserted = append(f.upserted, patterns)
	f.patterns = append(f.patterns, patterns...)
	return patterns, nil
}

func (f *fakePatternRepository) Delete(ctx context.Context, userID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.patterns = slices.DeleteFunc(f.patterns, func(p models.Pattern) bool {
		return p.ID == id && p.UserID == userID
	})
	return nil
}

func journalEntry(id string, createdAt time.Time, score *float64, mood string, tags ...string) models.Entry {
	e := models.Entry{
		ID:        id,
		UserID:    "user-1",
		Title:     "title " + id,
		Content:   "content " + id,
		Tags:      tags,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if mood != "" {
		e.Mood = ptr(mood)
	}
	if score != nil {
		e.Sentiment = &models.Sentiment{EntryID: id, Score: *score}
	}
	return e
}
