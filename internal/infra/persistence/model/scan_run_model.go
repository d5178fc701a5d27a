package model

import (
	"time"

	"github.com/google/uuid"
)

// ScanRunModel mirrors the 'scan_runs' table. Rows track asynchronous scan
// progress so the admin API can poll for completion.
type ScanRunModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Status           string    `gorm:"type:varchar(16);not null;default:'running';index"`
	Processed        int       `gorm:"not null;default:0"`
	DuplicatesFound  int       `gorm:"not null;default:0"`
	DuplicatesStored int       `gorm:"not null;default:0"`
	MinConfidence    float64   `gorm:"not null"`
	ClearExisting    bool      `gorm:"not null;default:false"`
	Error            string    `gorm:"type:text"`
	StartedAt        time.Time
	FinishedAt       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ScanRunModel) TableName() string {
	return "scan_runs"
}
