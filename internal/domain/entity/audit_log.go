package entity

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AuditLog records who did what to which row. Written in the same
// transaction as the mutation it describes.
type AuditLog struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	ActorID   *uuid.UUID `gorm:"type:uuid;index" json:"actorId,omitempty"`
	ActorRole string     `gorm:"type:varchar(20)" json:"actorRole,omitempty"`
	Action    string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  JSON       `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"createdAt"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, err := jsonbBytes(value)
	if err != nil {
		return err
	}

	result := map[string]interface{}{}
	err = json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Common audit actions
const (
	AuditActionDoctorLogin            = "auth.doctor.login"
	AuditActionPatientLogin           = "auth.patient.login"
	AuditActionPatientRegister        = "patient.register"
	AuditActionPatientUpdate          = "patient.update"
	AuditActionPatientDeactivate      = "patient.deactivate"
	AuditActionPasswordChange         = "patient.password_change"
	AuditActionMedicineCreate         = "medicine.create"
	AuditActionMedicineUpdate         = "medicine.update"
	AuditActionMedicineDeactivate     = "medicine.deactivate"
	AuditActionVisitCreate            = "visit.create"
	AuditActionVisitUpdate            = "visit.update"
	AuditActionVisitDeactivate        = "visit.deactivate"
	AuditActionPrescriptionCreate     = "prescription.create"
	AuditActionPrescriptionUpdate     = "prescription.update"
	AuditActionPrescriptionDeactivate = "prescription.deactivate"
)
