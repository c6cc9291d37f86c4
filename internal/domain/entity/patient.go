package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is registered by a doctor; the patient authenticates with a
// generated credential delivered by email. Soft-deleted rows stay in the
// table for history but are excluded from every default read.
type Patient struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirstName    string     `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName     string     `gorm:"type:varchar(100);not null" json:"lastName"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_patient_email,where:is_deleted = false" json:"email"`
	Mobile       string     `gorm:"type:varchar(20);not null;uniqueIndex:idx_patient_mobile,where:is_deleted = false" json:"mobile"`
	DOB          *time.Time `gorm:"type:date" json:"dob,omitempty"`
	Gender       string     `gorm:"type:varchar(10)" json:"gender,omitempty"`
	Address      string     `gorm:"type:text" json:"address,omitempty"`
	Password     string     `gorm:"type:text;not null" json:"-"`
	ProfileImage string     `gorm:"type:text" json:"profileImage,omitempty"`
	JoinDate     time.Time  `gorm:"not null" json:"joinDate"`
	IsDeleted    bool       `gorm:"not null;default:false;index" json:"isDeleted"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender values
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)
