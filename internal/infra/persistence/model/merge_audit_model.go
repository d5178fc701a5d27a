package model

import (
	"time"

	"github.com/google/uuid"
)

// MergeAuditModel mirrors the 'merge_audits' table. One row per executed merge.
type MergeAuditModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PrimaryVenueID   uuid.UUID `gorm:"type:uuid;not null;index"`
	SecondaryVenueID uuid.UUID `gorm:"type:uuid;not null;index"`
	OverriddenFields string    `gorm:"type:text"`
	EventsMigrated   int       `gorm:"not null;default:0"`
	ImagesCombined   int       `gorm:"not null;default:0"`
	PerformedBy      string    `gorm:"type:varchar(255)"`
	Notes            string    `gorm:"type:text"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (MergeAuditModel) TableName() string {
	return "merge_audits"
}
