package usecase

import (
	"context"

	"github.com/google/uuid"
)

// MergeInput represents a reviewer's request to merge two venues.
// FieldOverrides name venue fields whose value must be taken from the
// secondary venue, overriding the default primary-preferring policy; names
// outside the allow-list are rejected before any write.
type MergeInput struct {
	PrimaryID      uuid.UUID `json:"primary_id"`
	SecondaryID    uuid.UUID `json:"secondary_id"`
	PerformedBy    string    `json:"performed_by"`
	FieldOverrides []string  `json:"field_overrides,omitempty"`
	Notes          string    `json:"notes,omitempty"`
}

// MergeOutput reports an executed merge.
type MergeOutput struct {
	EventsMigrated   int      `json:"events_migrated"`
	ImagesCombined   int      `json:"images_combined"`
	OverriddenFields []string `json:"overridden_fields"`
}

// MergePair is one member of a batch merge.
type MergePair struct {
	PrimaryID   uuid.UUID `json:"primary_id"`
	SecondaryID uuid.UUID `json:"secondary_id"`
}

// BatchMergeInput represents a batch of merges executed all-or-nothing:
// the first failing member rolls back every member.
type BatchMergeInput struct {
	Pairs       []MergePair `json:"pairs"`
	PerformedBy string      `json:"performed_by"`
}

// BatchResult reports a completed batch operation. Because batches are
// all-or-nothing, SuccessCount is either the full batch size or the batch
// failed as a whole.
type BatchResult struct {
	SuccessCount int `json:"success_count"`
}

// MergeUsecase defines the merge orchestrator.
type MergeUsecase interface {
	// Merge consolidates the secondary venue into the primary inside a single
	// transaction: events re-pointed, images unioned, field policy applied,
	// secondary soft-deleted, candidate transitioned to merged, audit written.
	// Fails with Conflict if the pair's candidate is no longer pending.
	Merge(ctx context.Context, input *MergeInput) (*MergeOutput, error)

	// BatchMerge executes several merges in one transaction; any failure
	// aborts the whole batch.
	BatchMerge(ctx context.Context, input *BatchMergeInput) (*BatchResult, error)
}
