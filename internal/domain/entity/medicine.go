package entity

import (
	"time"

	"github.com/google/uuid"
)

// Medicine catalog entry. Name is normalized to lowercase before persisting;
// the composite unique index on (name, strength, form) is the source of truth
// for uniqueness under concurrent writes. Application pre-checks only exist
// to produce a friendly error.
type Medicine struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null;index;uniqueIndex:idx_medicine_triple,where:is_deleted = false" json:"name"`
	Strength     string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_medicine_triple,where:is_deleted = false" json:"strength"`
	Form         string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_medicine_triple,where:is_deleted = false" json:"form"`
	Manufacturer string    `gorm:"type:varchar(255)" json:"manufacturer,omitempty"`
	IsDeleted    bool      `gorm:"not null;default:false;index" json:"isDeleted"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Medicine) TableName() string {
	return "medicines"
}
