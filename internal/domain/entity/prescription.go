package entity

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Prescription is keyed to a patient by email. Every medicine reference must
// resolve to an active catalog row at write time; later soft deletion of a
// medicine does not invalidate existing prescriptions.
type Prescription struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientEmail   string            `gorm:"type:varchar(255);not null;index" json:"patientEmail"`
	Diagnosis      string            `gorm:"type:text;not null" json:"diagnosis"`
	Symptoms       StringList        `gorm:"type:jsonb" json:"symptoms"`
	Vitals         *Vitals           `gorm:"type:jsonb" json:"vitals,omitempty"`
	ListOfMedicine PrescriptionItems `gorm:"type:jsonb;not null" json:"listOfMedicine"`
	Instructions   string            `gorm:"type:text" json:"instructions,omitempty"`
	IsDeleted      bool              `gorm:"not null;default:false;index" json:"isDeleted"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

// PrescriptionItem is one line of a prescription.
type PrescriptionItem struct {
	MedicineID   uuid.UUID `json:"medicineId"`
	Dosage       string    `json:"dosage"`
	Frequency    string    `json:"frequency"`
	Duration     string    `json:"duration"`
	Instructions string    `json:"instructions,omitempty"`
}

// PrescriptionItems is the ordered medicine list, stored as JSONB.
type PrescriptionItems []PrescriptionItem

func (p PrescriptionItems) Value() (driver.Value, error) {
	if p == nil {
		return json.Marshal([]PrescriptionItem{})
	}
	return json.Marshal(p)
}

func (p *PrescriptionItems) Scan(value interface{}) error {
	if value == nil {
		*p = nil
		return nil
	}
	bytes, err := jsonbBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, p)
}

// MedicineIDs returns the distinct medicine ids referenced by the list.
func (p PrescriptionItems) MedicineIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(p))
	ids := make([]uuid.UUID, 0, len(p))
	for _, item := range p {
		if _, ok := seen[item.MedicineID]; ok {
			continue
		}
		seen[item.MedicineID] = struct{}{}
		ids = append(ids, item.MedicineID)
	}
	return ids
}
