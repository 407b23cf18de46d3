package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/JonnyWalker81/mindjournal/backend/internal/logger"
	"github.com/JonnyWalker81/mindjournal/backend/internal/models"
	"github.com/JonnyWalker81/mindjournal/backend/internal/repository"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type entryService struct {
	entryRepo repository.EntryRepository
	clock     Clock
}

// NewEntryService creates a new entry service
func NewEntryService(entryRepo repository.EntryRepository) EntryService {
	return &entryService{entryRepo: entryRepo, clock: SystemClock}
}

func (s *entryService) CreateEntry(ctx context.Context, userID string, req *models.CreateEntryRequest) (*models.Entry, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w: title and content are required", ErrInvalidInput)
	}

	id, err := resolveEntryID(req.ID, s.clock())
	if err != nil {
		return nil, err
	}

	entry := &models.Entry{
		ID:      id,
		UserID:  userID,
		Title:   title,
		Content: req.Content,
		Mood:    trimmedOrNil(req.Mood),
		Tags:    models.NormalizeTags(req.Tags),
	}

	created, err := s.entryRepo.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	logger.Ctx(ctx).Debug("entry created",
		logger.String("entry_id", created.ID),
		logger.Int("tags", len(created.Tags)),
	)
	return created, nil
}

func (s *entryService) GetEntry(ctx context.Context, userID, entryID string) (*models.Entry, error) {
	entry, err := s.entryRepo.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	return entry, nil
}

func (s *entryService) ListEntries(ctx context.Context, userID string, page, limit int) (*models.EntryPage, error) {
	if page < 0 || limit < 0 {
		return nil, fmt.Errorf("%w: page and limit must not be negative", ErrInvalidInput)
	}
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = DefaultPageSize
	}
	limit = min(limit, MaxPageSize)

	total, err := s.entryRepo.Count(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count entries: %w", err)
	}

	entries, err := s.entryRepo.GetByUserID(ctx, userID, models.EntryQuery{
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	pages := int((total + int64(limit) - 1) / int64(limit))
	return &models.EntryPage{
		Count:   total,
		Page:    page,
		Pages:   pages,
		Entries: entries,
	}, nil
}

func (s *entryService) UpdateEntry(ctx context.Context, userID, entryID string, req *models.UpdateEntryRequest) (*models.Entry, error) {
	if req.Title != nil {
		t := strings.TrimSpace(*req.Title)
		if t == "" {
			return nil, fmt.Errorf("%w: title must not be blank", ErrInvalidInput)
		}
		req.Title = &t
	}
	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		return nil, fmt.Errorf("%w: content must not be blank", ErrInvalidInput)
	}
	if req.Mood.Valid {
		if len(req.Mood.Value) > models.MaxMoodLength {
			return nil, fmt.Errorf("%w: mood must be at most %d characters", ErrInvalidInput, models.MaxMoodLength)
		}
		// A blank mood clears it, the same as null.
		if mood := trimmedOrNil(&req.Mood.Value); mood != nil {
			req.Mood = models.NewNullable(*mood)
		} else {
			req.Mood = models.Null[string]()
		}
	}

	updated, err := s.entryRepo.Update(ctx, userID, entryID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}
	return updated, nil
}

func (s *entryService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	// Verify ownership first so a missing entry surfaces as not found.
	if _, err := s.entryRepo.GetByID(ctx, userID, entryID); err != nil {
		return fmt.Errorf("failed to get entry: %w", err)
	}

	if err := s.entryRepo.Delete(ctx, userID, entryID); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}

func (s *entryService) SearchEntries(ctx context.Context, userID string, search models.EntrySearch) ([]models.Entry, error) {
	if search.StartDate != nil && search.EndDate != nil && search.EndDate.Before(*search.StartDate) {
		return nil, fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}

	entries, err := s.entryRepo.Search(ctx, userID, search)
	if err != nil {
		return nil, fmt.Errorf("failed to search entries: %w", err)
	}
	return entries, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
