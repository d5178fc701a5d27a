package repository

import (
	"context"

	"quizmap/internal/domain/entity"

	"github.com/google/uuid"
)

// MergeAuditRepository persists the audit trail of executed merges.
type MergeAuditRepository interface {
	// Create records one executed merge.
	Create(ctx context.Context, audit *entity.MergeAudit) error

	// ListByVenue returns audits where the venue was primary or secondary,
	// newest first.
	ListByVenue(ctx context.Context, venueID uuid.UUID) ([]*entity.MergeAudit, error)
}
