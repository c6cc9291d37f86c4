package converter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Dixit-Goti/hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientToResponse_OmitsPassword(t *testing.T) {
	dob := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
	patient := &entity.Patient{
		ID:        uuid.New(),
		FirstName: "Asha",
		Email:     "asha@example.com",
		Password:  "bcrypt-hash",
		DOB:       &dob,
	}

	resp := PatientToResponse(patient)
	require.NotNil(t, resp)
	assert.Equal(t, "1990-06-15", resp.DOB)
	assert.Equal(t, entity.RolePatient, resp.Role)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "bcrypt-hash")
}

func TestPatientToResponse_Nil(t *testing.T) {
	assert.Nil(t, PatientToResponse(nil))
}
