package repository

import (
	"context"
	"errors"
	"time"

	"github.com/JonnyWalker81/mindjournal/backend/internal/models"
)

// ErrNotFound is returned when a record does not exist or is not owned by the caller.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a create collides with an existing primary key, for
// example a client retrying an entry it already uploaded.
var ErrConflict = errors.New("already exists")

// EntryRepository defines the interface for journal entry data access.
// Every read is scoped to the owner and returns entries with their sentiment embedded.
type EntryRepository interface {
	Create(ctx context.Context, entry *models.Entry) (*models.Entry, error)
	GetByID(ctx context.Context, userID, id string) (*models.Entry, error)
	GetByUserID(ctx context.Context, userID string, query models.EntryQuery) ([]models.Entry, error)
	GetTimestamps(ctx context.Context, userID string) ([]time.Time, error)
	Count(ctx context.Context, userID string) (int64, error)
	CountSince(ctx context.Context, userID string, since time.Time) (int64, error)
	Update(ctx context.Context, userID, id string, update *models.UpdateEntryRequest) (*models.Entry, error)
	Delete(ctx context.Context, userID, id string) error
	Search(ctx context.Context, userID string, search models.EntrySearch) ([]models.Entry, error)
}

// CycleRepository defines the interface for cycle profile data access.
// GetByUserID returns ErrNotFound when the user never configured tracking.
type CycleRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.CycleProfile, error)
	Upsert(ctx context.Context, profile *models.CycleProfile) (*models.CycleProfile, error)
	UpdateCorrelations(ctx context.Context, userID string, correlations map[models.Phase]models.PhaseCorrelation) error
}

// PatternFilter narrows a pattern listing.
type PatternFilter struct {
	Type        models.PatternType
	MinStrength float64
}

// PatternRepository defines the interface for detected pattern data access.
type PatternRepository interface {
	CountByUserID(ctx context.Context, userID string) (int64, error)
	GetByUserID(ctx context.Context, userID string, filter PatternFilter) ([]models.Pattern, error)
	GetByID(ctx context.Context, userID, id string) (*models.Pattern, error)
	UpsertBatch(ctx context.Context, patterns []models.Pattern) ([]models.Pattern, error)
	Delete(ctx context.Context, userID, id string) error
}
