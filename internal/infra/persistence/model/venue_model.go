package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VenueModel mirrors the 'venues' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// Merged venues stay in the table soft-deleted, with merged_into_id pointing at the survivor.
type VenueModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(255);not null;index"`
	Slug         string    `gorm:"type:varchar(255);unique;not null"`
	Address      string    `gorm:"type:text"`
	Postcode     string    `gorm:"type:varchar(16);index"`
	CityID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Latitude     *float64  `gorm:"type:double precision"`
	Longitude    *float64  `gorm:"type:double precision"`
	Website      string    `gorm:"type:varchar(512)"`
	Phone        string    `gorm:"type:varchar(64)"`
	Facebook     string    `gorm:"type:varchar(512)"`
	Instagram    string    `gorm:"type:varchar(512)"`
	Description  string    `gorm:"type:text"`
	MergedIntoID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	City   *CityModel         `gorm:"foreignKey:CityID"`
	Images []*VenueImageModel `gorm:"foreignKey:VenueID"`
}

// TableName explicitly sets the table name for GORM.
func (VenueModel) TableName() string {
	return "venues"
}

// CityModel mirrors the 'cities' table.
type CityModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Slug      string    `gorm:"type:varchar(100);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CityModel) TableName() string {
	return "cities"
}

// VenueImageModel mirrors the 'venue_images' table. SourceURL is the stable
// identity used when combining image sets across a merge.
type VenueImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VenueID   uuid.UUID `gorm:"type:uuid;not null;index"`
	SourceURL string    `gorm:"type:varchar(1024)"`
	Width     int       `gorm:"not null;default:0"`
	Height    int       `gorm:"not null;default:0"`
	Position  int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VenueImageModel) TableName() string {
	return "venue_images"
}
