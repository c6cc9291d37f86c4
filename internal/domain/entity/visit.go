package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Visit records a consultation. DoctorID is always the authenticated doctor,
// never taken from the request body.
type Visit struct {
	ID                      uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID               uuid.UUID   `gorm:"type:uuid;not null;index" json:"patientId"`
	DoctorID                uuid.UUID   `gorm:"type:uuid;not null;index" json:"doctorId"`
	Date                    time.Time   `gorm:"not null" json:"date"`
	Diagnosis               string      `gorm:"type:text;not null" json:"diagnosis"`
	Symptoms                StringList  `gorm:"type:jsonb" json:"symptoms"`
	Vitals                  *Vitals     `gorm:"type:jsonb" json:"vitals,omitempty"`
	Notes                   string      `gorm:"type:text" json:"notes,omitempty"`
	RecommendedFollowUpDate *time.Time  `json:"recommendedFollowUpDate,omitempty"`
	FollowUpNotes           string      `gorm:"type:text" json:"followUpNotes,omitempty"`
	IsDeleted               bool        `gorm:"not null;default:false;index" json:"isDeleted"`
	CreatedAt               time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt               time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *User    `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Visit) TableName() string {
	return "visits"
}

// Vitals captured during a visit, stored as a single JSONB column.
type Vitals struct {
	Weight          float64 `json:"weight,omitempty"`
	Height          float64 `json:"height,omitempty"`
	BloodPressure   string  `json:"bloodPressure,omitempty"`
	Temperature     float64 `json:"temperature,omitempty"`
	Pulse           int     `json:"pulse,omitempty"`
	RespirationRate int     `json:"respirationRate,omitempty"`
}

// Value implements driver.Valuer for JSONB storage
func (v *Vitals) Value() (driver.Value, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

// Scan implements sql.Scanner
func (v *Vitals) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, err := jsonbBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, v)
}

// StringList is a JSONB-backed list of strings.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	bytes, err := jsonbBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, l)
}

func jsonbBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}
}
