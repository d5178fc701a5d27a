// Package entity contains the core business objects of the project.
package entity

import (
	"bytes"
	"time"

	"github.com/google/uuid"
)

// CandidateStatus is the review state of a duplicate candidate.
// Only pending candidates can transition; merged and rejected are terminal.
type CandidateStatus string

// Candidate statuses.
const (
	CandidateStatusPending  CandidateStatus = "pending"
	CandidateStatusMerged   CandidateStatus = "merged"
	CandidateStatusRejected CandidateStatus = "rejected"
)

// ConfidenceBand classifies a combined confidence score for review filtering.
type ConfidenceBand string

// Confidence bands.
const (
	ConfidenceBandHigh   ConfidenceBand = "high"
	ConfidenceBandMedium ConfidenceBand = "medium"
	ConfidenceBandLow    ConfidenceBand = "low"
)

// Band thresholds: high >= 0.90, medium >= 0.75.
const (
	HighConfidenceThreshold   = 0.90
	MediumConfidenceThreshold = 0.75
)

// BandOf returns the confidence band for a combined score.
func BandOf(score float64) ConfidenceBand {
	switch {
	case score >= HighConfidenceThreshold:
		return ConfidenceBandHigh
	case score >= MediumConfidenceThreshold:
		return ConfidenceBandMedium
	default:
		return ConfidenceBandLow
	}
}

// VenuePair is the unordered identity of a candidate pair.
// Venue1 always holds the byte-wise smaller UUID so that (A,B) and (B,A)
// resolve to the same registry row without OR-of-two-orderings queries.
type VenuePair struct {
	Venue1 uuid.UUID `json:"venue1_id"`
	Venue2 uuid.UUID `json:"venue2_id"`
}

// NewVenuePair builds the canonical pair for two venue ids, in either order.
func NewVenuePair(a, b uuid.UUID) VenuePair {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}

	return VenuePair{Venue1: a, Venue2: b}
}

// Contains reports whether the pair references the given venue id.
func (p VenuePair) Contains(id uuid.UUID) bool {
	return p.Venue1 == id || p.Venue2 == id
}

// SimilarityScore is the scorer output for one venue pair.
type SimilarityScore struct {
	NameSimilarity     float64  `json:"name_similarity"`
	LocationSimilarity float64  `json:"location_similarity"`
	Confidence         float64  `json:"confidence_score"`
	MatchCriteria      []string `json:"match_criteria"`
}

// Band returns the confidence band of the combined score.
func (s SimilarityScore) Band() ConfidenceBand {
	return BandOf(s.Confidence)
}

// DuplicateCandidate is one unordered pair of venues suspected to be duplicates,
// together with its scores and review state.
type DuplicateCandidate struct {
	ID                 uuid.UUID       `json:"id"`
	Pair               VenuePair       `json:"pair"`
	ConfidenceScore    float64         `json:"confidence_score"`
	NameSimilarity     float64         `json:"name_similarity"`
	LocationSimilarity float64         `json:"location_similarity"`
	MatchCriteria      []string        `json:"match_criteria"`
	Status             CandidateStatus `json:"status"`
	ReviewedAt         *time.Time      `json:"reviewed_at,omitempty"`
	ReviewedBy         string          `json:"reviewed_by,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// Band returns the confidence band of the stored combined score.
func (c *DuplicateCandidate) Band() ConfidenceBand {
	return BandOf(c.ConfidenceScore)
}

// ExactMatch is an ephemeral, read-only candidate derived from the exact-match
// view: two live venues sharing a normalized name plus postcode or city.
// It is never persisted and carries no sub-scores.
type ExactMatch struct {
	Pair       VenuePair `json:"pair"`
	Venue1Name string    `json:"venue1_name"`
	Venue2Name string    `json:"venue2_name"`
	Criterion  string    `json:"criterion"` // "same_postcode" or "same_city"
}
