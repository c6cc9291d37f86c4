package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVitals_ValueAndScan(t *testing.T) {
	original := &Vitals{
		Weight:        72.5,
		Height:        178,
		BloodPressure: "120/80",
		Temperature:   98.6,
		Pulse:         70,
	}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned Vitals
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, *original, scanned)
}

func TestVitals_NilValue(t *testing.T) {
	var vitals *Vitals
	value, err := vitals.Value()
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestStringList_ValueAndScan(t *testing.T) {
	original := StringList{"fever", "cough"}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned StringList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)
}

func TestStringList_NilMarshalsToEmptyArray(t *testing.T) {
	var list StringList
	value, err := list.Value()
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(value.([]byte)))
}

func TestStringList_ScanString(t *testing.T) {
	// Some drivers hand jsonb back as string rather than []byte.
	var scanned StringList
	require.NoError(t, scanned.Scan(`["a","b"]`))
	assert.Equal(t, StringList{"a", "b"}, scanned)
}

func TestStringList_ScanUnsupportedType(t *testing.T) {
	var scanned StringList
	assert.Error(t, scanned.Scan(42))
}

func TestPrescriptionItems_ValueAndScan(t *testing.T) {
	original := PrescriptionItems{
		{MedicineID: uuid.New(), Dosage: "500mg", Frequency: "bid", Duration: "5 days"},
		{MedicineID: uuid.New(), Dosage: "10ml", Frequency: "od", Duration: "3 days", Instructions: "after food"},
	}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned PrescriptionItems
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)
}

func TestPrescriptionItems_MedicineIDsDeduplicates(t *testing.T) {
	shared := uuid.New()
	other := uuid.New()
	items := PrescriptionItems{
		{MedicineID: shared, Dosage: "500mg"},
		{MedicineID: shared, Dosage: "250mg"},
		{MedicineID: other, Dosage: "10ml"},
	}

	ids := items.MedicineIDs()
	assert.Equal(t, []uuid.UUID{shared, other}, ids)
}

func TestJSON_ValueAndScan(t *testing.T) {
	original := JSON{"entity": "patient", "entity_id": "abc"}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned JSON
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, "patient", scanned["entity"])
	assert.Equal(t, "abc", scanned["entity_id"])
}
