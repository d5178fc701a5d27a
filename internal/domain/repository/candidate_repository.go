package repository

import (
	"context"
	"time"

	"quizmap/internal/domain/entity"
	"quizmap/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for the duplicate registry.
var (
	// ErrCandidateNotFound is returned when a candidate row does not exist.
	ErrCandidateNotFound = errors.New("duplicate candidate not found")
	// ErrCandidateNotPending is returned when a status transition finds the
	// candidate already reviewed. This is the optimistic concurrency guard:
	// the first committer wins, later attempts get this error.
	ErrCandidateNotPending = errors.New("duplicate candidate is not pending")
)

// CandidateSort enumerates the review queue sort keys.
type CandidateSort string

// Sort keys.
const (
	SortByConfidence         CandidateSort = "confidence"
	SortByNameSimilarity     CandidateSort = "name_similarity"
	SortByLocationSimilarity CandidateSort = "location_similarity"
	SortByCreatedAt          CandidateSort = "created_at"
)

// CandidateFilter narrows and orders review queue queries.
// Zero values mean "no filter" / defaults (pending, confidence descending).
type CandidateFilter struct {
	Band     entity.ConfidenceBand
	Status   entity.CandidateStatus
	SortBy   CandidateSort
	SortAsc  bool
	Page     int
	PerPage  int
}

// CandidateStatistics aggregates the pending review queue.
type CandidateStatistics struct {
	Total          int64   `json:"total"`
	HighConfidence int64   `json:"high_confidence"`
	MediumConfidence int64 `json:"medium_confidence"`
	LowConfidence  int64   `json:"low_confidence"`
	AvgConfidence  float64 `json:"avg_confidence"`
}

// DuplicateCandidateRepository defines the durable duplicate registry.
// Pair identity is always the canonical ordered tuple (entity.NewVenuePair);
// implementations never need OR-of-two-orderings queries.
type DuplicateCandidateRepository interface {
	// FindByID retrieves a candidate by its row id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DuplicateCandidate, error)

	// FindByPair retrieves the candidate for an unordered venue pair, in any status.
	FindByPair(ctx context.Context, pair entity.VenuePair) (*entity.DuplicateCandidate, error)

	// List returns pending candidates matching the filter, excluding any pair
	// referencing a soft-deleted venue.
	List(ctx context.Context, filter CandidateFilter) ([]*entity.DuplicateCandidate, error)

	// Count returns the number of candidates List would yield across all pages.
	Count(ctx context.Context, filter CandidateFilter) (int64, error)

	// Statistics aggregates the pending queue by confidence band.
	Statistics(ctx context.Context) (*CandidateStatistics, error)

	// CreatePending inserts a new pending candidate.
	CreatePending(ctx context.Context, candidate *entity.DuplicateCandidate) error

	// UpdatePendingScores refreshes the scores of an existing pending
	// candidate in place. Returns ErrCandidateNotPending if the row has been
	// reviewed since it was read.
	UpdatePendingScores(ctx context.Context, id uuid.UUID, score entity.SimilarityScore) error

	// UpdateStatusIfPending transitions a candidate out of pending, stamping
	// the reviewer. Returns ErrCandidateNotPending when the row is no longer
	// pending, without writing anything.
	UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status entity.CandidateStatus, reviewedBy string, reviewedAt time.Time) error

	// DeleteAllPending removes every pending candidate. Used by clear_existing
	// re-scans; merged and rejected rows are retained so they never resurface.
	DeleteAllPending(ctx context.Context) (int64, error)

	// DeleteForVenue removes every candidate referencing the venue, whatever
	// its status. Used by orphan reconciliation after a hard delete upstream.
	DeleteForVenue(ctx context.Context, venueID uuid.UUID) (int64, error)

	// DeleteOrphanedPending removes pending candidates whose venues no longer
	// exist as live rows. Merged rows are untouched: their secondary venue is
	// soft-deleted by design.
	DeleteOrphanedPending(ctx context.Context) (int64, error)

	// FindExactMatches derives the ephemeral exact-match candidate set: live
	// venues sharing a normalized name plus the same postcode or city. Nothing
	// is persisted.
	FindExactMatches(ctx context.Context) ([]*entity.ExactMatch, error)
}
