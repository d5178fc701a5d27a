package usecase

import (
	"context"

	"quizmap/internal/domain/entity"
	"quizmap/internal/domain/repository"

	"github.com/google/uuid"
)

// ListCandidatesInput filters and pages the review queue.
type ListCandidatesInput struct {
	Band    entity.ConfidenceBand    `json:"band,omitempty"`
	SortBy  repository.CandidateSort `json:"sort_by,omitempty"`
	SortAsc bool                     `json:"sort_asc,omitempty"`
	Page    int                      `json:"page,omitempty"`
	PerPage int                      `json:"per_page,omitempty"`
}

// CandidateSummary is one review queue row.
type CandidateSummary struct {
	ID                 uuid.UUID              `json:"id"`
	Pair               entity.VenuePair       `json:"pair"`
	Venue1Name         string                 `json:"venue1_name"`
	Venue2Name         string                 `json:"venue2_name"`
	ConfidenceScore    float64                `json:"confidence_score"`
	NameSimilarity     float64                `json:"name_similarity"`
	LocationSimilarity float64                `json:"location_similarity"`
	MatchCriteria      []string               `json:"match_criteria"`
	Band               entity.ConfidenceBand  `json:"band"`
	Status             entity.CandidateStatus `json:"status"`
}

// ComparisonDetail is the side-by-side view of one candidate pair.
// Resolved means at least one venue is gone and the pair needs no review;
// the stale registry row has already been reconciled away.
type ComparisonDetail struct {
	Resolved         bool                       `json:"resolved"`
	Candidate        *entity.DuplicateCandidate `json:"candidate,omitempty"`
	Venue1           *entity.Venue              `json:"venue1,omitempty"`
	Venue2           *entity.Venue              `json:"venue2,omitempty"`
	Venue1Events     []*entity.Event            `json:"venue1_events,omitempty"`
	Venue2Events     []*entity.Event            `json:"venue2_events,omitempty"`
	Score            *entity.SimilarityScore    `json:"score,omitempty"` // Recomputed from current data.
	SuggestedPrimary uuid.UUID                  `json:"suggested_primary,omitempty"`
}

// RejectInput identifies a candidate either by row id or by venue pair.
type RejectInput struct {
	CandidateID *uuid.UUID `json:"candidate_id,omitempty"`
	Venue1ID    *uuid.UUID `json:"venue1_id,omitempty"`
	Venue2ID    *uuid.UUID `json:"venue2_id,omitempty"`
	ReviewedBy  string     `json:"reviewed_by"`
}

// BatchRejectInput rejects several candidates all-or-nothing.
type BatchRejectInput struct {
	CandidateIDs []uuid.UUID `json:"candidate_ids"`
	ReviewedBy   string      `json:"reviewed_by"`
}

// ReviewUsecase defines the duplicate registry's review surface.
type ReviewUsecase interface {
	// ListCandidates returns pending candidates for review, excluding pairs
	// referencing soft-deleted venues.
	ListCandidates(ctx context.Context, input *ListCandidatesInput) ([]*CandidateSummary, error)

	// CountCandidates returns the total across all pages of the same filter.
	CountCandidates(ctx context.Context, input *ListCandidatesInput) (int64, error)

	// Statistics aggregates the pending queue by confidence band.
	Statistics(ctx context.Context) (*repository.CandidateStatistics, error)

	// ExactMatches returns the ephemeral rule-based candidate set.
	ExactMatches(ctx context.Context) ([]*entity.ExactMatch, error)

	// GetComparison loads both venues side by side with recomputed sub-scores.
	// If either venue is gone it reconciles the stale registry rows and
	// returns a resolved detail instead of an error.
	GetComparison(ctx context.Context, venue1ID, venue2ID uuid.UUID) (*ComparisonDetail, error)

	// Reject marks a pending candidate as not-a-duplicate. Rejected pairs
	// never resurface on re-scan. Fails with Conflict when already reviewed.
	Reject(ctx context.Context, input *RejectInput) error

	// BatchReject rejects several candidates in one transaction; any failure
	// aborts the whole batch.
	BatchReject(ctx context.Context, input *BatchRejectInput) (*BatchResult, error)
}
