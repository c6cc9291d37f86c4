package entity

import "github.com/google/uuid"

// Principal is the authenticated identity attached to a request after token
// verification: a staff member or a patient.
type Principal struct {
	ID    uuid.UUID
	Email string
	Role  string
}
