package model

import (
	"time"

	"github.com/google/uuid"
)

// DuplicateCandidateModel mirrors the 'duplicate_candidates' table. The pair
// is stored in canonical order (venue1_id < venue2_id byte-wise) and carries a
// unique index so each unordered pair has at most one row.
type DuplicateCandidateModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Venue1ID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_candidate_pair"`
	Venue2ID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_candidate_pair"`
	NameSimilarity     float64   `gorm:"not null"`
	LocationSimilarity float64   `gorm:"not null"`
	Confidence         float64   `gorm:"not null;index"`
	MatchCriteria      string    `gorm:"type:text"`
	Status             string    `gorm:"type:varchar(16);not null;default:'pending';index"`
	ReviewedAt         *time.Time
	ReviewedBy         string `gorm:"type:varchar(255)"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Venue1 *VenueModel `gorm:"foreignKey:Venue1ID"`
	Venue2 *VenueModel `gorm:"foreignKey:Venue2ID"`
}

// TableName explicitly sets the table name for GORM.
func (DuplicateCandidateModel) TableName() string {
	return "duplicate_candidates"
}
