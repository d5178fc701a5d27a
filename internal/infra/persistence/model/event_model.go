package model

import (
	"time"

	"github.com/google/uuid"
)

// EventModel mirrors the 'events' table. Each row is a recurring trivia night
// at a venue; events move between venues wholesale during a merge.
type EventModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VenueID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	DayOfWeek int       `gorm:"not null"`
	StartTime string    `gorm:"type:varchar(5)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Sources []*EventSourceModel `gorm:"foreignKey:EventID"`
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}

// EventSourceModel mirrors the 'event_sources' table.
type EventSourceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	EventID    uuid.UUID `gorm:"type:uuid;not null;index"`
	SourceID   uuid.UUID `gorm:"type:uuid;not null;index"`
	LastSeenAt time.Time
	Metadata   string `gorm:"type:jsonb"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventSourceModel) TableName() string {
	return "event_sources"
}

// SourceModel mirrors the 'sources' table.
type SourceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SourceModel) TableName() string {
	return "sources"
}
