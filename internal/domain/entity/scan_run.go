// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScanRunStatus is the lifecycle state of one background candidate scan.
type ScanRunStatus string

// Scan run statuses.
const (
	ScanRunStatusRunning   ScanRunStatus = "running"
	ScanRunStatusCompleted ScanRunStatus = "completed"
	ScanRunStatusFailed    ScanRunStatus = "failed"
)

// ScanRun records one execution of the candidate scanner so the review UI can
// trigger a scan and poll its outcome without any synchronous coupling.
type ScanRun struct {
	ID               uuid.UUID     `json:"id"`
	Status           ScanRunStatus `json:"status"`
	Processed        int           `json:"processed"`
	DuplicatesFound  int           `json:"duplicates_found"`
	DuplicatesStored int           `json:"duplicates_stored"`
	MinConfidence    float64       `json:"min_confidence"`
	ClearExisting    bool          `json:"clear_existing"`
	Error            string        `json:"error,omitempty"`
	StartedAt        time.Time     `json:"started_at"`
	FinishedAt       *time.Time    `json:"finished_at,omitempty"`
}
