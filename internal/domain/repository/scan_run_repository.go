package repository

import (
	"context"

	"quizmap/internal/domain/entity"
	"quizmap/internal/errors"

	"github.com/google/uuid"
)

// ErrScanRunNotFound is returned when a scan run does not exist.
var ErrScanRunNotFound = errors.New("scan run not found")

// ScanRunRepository persists scan executions for the review UI to poll.
type ScanRunRepository interface {
	// Create inserts a new scan run, normally in the running state.
	Create(ctx context.Context, run *entity.ScanRun) error

	// Update persists the final state and stats of a scan run.
	Update(ctx context.Context, run *entity.ScanRun) error

	// FindByID retrieves a scan run.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ScanRun, error)
}
