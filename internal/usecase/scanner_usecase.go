package usecase

import (
	"context"

	"quizmap/internal/domain/entity"

	"github.com/google/uuid"
)

// TriggerScanInput represents an admin request to enqueue a candidate scan.
type TriggerScanInput struct {
	ClearExisting bool    `json:"clear_existing"`
	MinConfidence float64 `json:"min_confidence"` // 0 means the configured default.
	BatchSize     int     `json:"batch_size"`     // 0 means the configured default.
	RequestedBy   string  `json:"requested_by"`
}

// ScanInput represents one scan execution handed to the worker.
type ScanInput struct {
	ScanRunID     uuid.UUID `json:"scan_run_id"`
	ClearExisting bool      `json:"clear_existing"`
	MinConfidence float64   `json:"min_confidence"`
	BatchSize     int       `json:"batch_size"`
}

// ScanStats reports the outcome of one candidate scan.
type ScanStats struct {
	Processed        int `json:"processed"`
	DuplicatesFound  int `json:"duplicates_found"`
	DuplicatesStored int `json:"duplicates_stored"`
}

// ScannerUsecase defines the candidate scanner use cases.
// TriggerScan and GetScanRun serve the admin API; Scan runs inside the worker.
type ScannerUsecase interface {
	// TriggerScan records a scan run and publishes a scan request for the
	// background worker. It never runs the scan synchronously.
	TriggerScan(ctx context.Context, input *TriggerScanInput) (*entity.ScanRun, error)

	// GetScanRun returns a scan run for polling.
	GetScanRun(ctx context.Context, id uuid.UUID) (*entity.ScanRun, error)

	// Scan walks the live venue population, scores candidate pairs and upserts
	// them into the duplicate registry. Idempotent for unchanged inputs: a
	// second run refreshes pending rows in place and never duplicates or
	// resurrects reviewed pairs.
	Scan(ctx context.Context, input *ScanInput) (*ScanStats, error)
}
