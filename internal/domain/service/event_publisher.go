package service

import (
	"context"

	"github.com/google/uuid"
)

// ScanRequestedEvent asks the dedup worker to run one candidate scan.
// ScanRunID references the scan_runs row created by the admin API so the
// review UI can poll the outcome.
type ScanRequestedEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	ScanRunID     uuid.UUID `json:"scan_run_id"`
	ClearExisting bool      `json:"clear_existing"`
	MinConfidence float64   `json:"min_confidence"`
	BatchSize     int       `json:"batch_size"`
	RequestedBy   string    `json:"requested_by,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishScanRequested publishes a scan request for async processing
	PublishScanRequested(ctx context.Context, event *ScanRequestedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
