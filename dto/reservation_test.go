package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/centralsales/sales-api/models"
)

func sampleReservation() models.Reservation {
	name := "Alice"
	phone := "555-0101"
	table := uint(7)
	return models.Reservation{
		ID:              1,
		BusinessID:      10,
		CustomerName:    &name,
		CustomerPhone:   &phone,
		AppointmentTime: time.Date(2026, 4, 1, 19, 0, 0, 0, time.UTC),
		CreatedAt:       time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		CreatedBy:       3,
		GuestNumber:     2,
		TableID:         &table,
		Status:          models.ReservationPending,
	}
}

func TestEmptyPatchIsIdentity(t *testing.T) {
	r := sampleReservation()
	before := r

	var patch ReservationPatch
	assert.NoError(t, json.Unmarshal([]byte(`{}`), &patch))

	changed := patch.ApplyTo(&r)
	assert.False(t, changed)
	assert.Equal(t, before, r)
}

func TestPatchOverwritesSuppliedFields(t *testing.T) {
	r := sampleReservation()

	var patch ReservationPatch
	assert.NoError(t, json.Unmarshal([]byte(`{"guestNumber":5,"customerName":"Bob"}`), &patch))

	assert.True(t, patch.ApplyTo(&r))
	assert.Equal(t, 5, r.GuestNumber)
	if assert.NotNil(t, r.CustomerName) {
		assert.Equal(t, "Bob", *r.CustomerName)
	}
	// everything else untouched
	assert.Equal(t, uint(10), r.BusinessID)
	assert.Equal(t, models.ReservationPending, r.Status)
}

func TestPatchBlankTextCannotClear(t *testing.T) {
	r := sampleReservation()

	var patch ReservationPatch
	assert.NoError(t, json.Unmarshal([]byte(`{"customerName":"","customerPhone":"   ","customerNote":null}`), &patch))

	patch.ApplyTo(&r)
	if assert.NotNil(t, r.CustomerName) {
		assert.Equal(t, "Alice", *r.CustomerName)
	}
	if assert.NotNil(t, r.CustomerPhone) {
		assert.Equal(t, "555-0101", *r.CustomerPhone)
	}
	assert.Nil(t, r.CustomerNote)
}

func TestPatchExplicitNullClearsReferences(t *testing.T) {
	r := sampleReservation()
	emp := uint(9)
	r.AssignedEmployee = &emp

	var patch ReservationPatch
	assert.NoError(t, json.Unmarshal([]byte(`{"tableId":null,"assignedEmployee":null}`), &patch))

	assert.True(t, patch.ApplyTo(&r))
	assert.Nil(t, r.TableID)
	assert.Nil(t, r.AssignedEmployee)
}

func TestPatchBogusStatusIgnored(t *testing.T) {
	r := sampleReservation()

	var patch ReservationPatch
	assert.NoError(t, json.Unmarshal([]byte(`{"status":"bogus"}`), &patch))

	changed := patch.ApplyTo(&r)
	assert.False(t, changed)
	assert.Equal(t, models.ReservationPending, r.Status)

	assert.NoError(t, json.Unmarshal([]byte(`{"status":"CONFIRMED"}`), &patch))
	assert.True(t, patch.ApplyTo(&r))
	assert.Equal(t, models.ReservationConfirmed, r.Status)
}

func TestCreateToModelDefaults(t *testing.T) {
	p := ReservationCreate{
		BusinessID:      10,
		AppointmentTime: time.Date(2026, 4, 1, 19, 0, 0, 0, time.UTC),
		CreatedBy:       3,
		GuestNumber:     4,
		Status:          "not-a-status",
	}
	r := p.ToModel()
	assert.Equal(t, models.ReservationPending, r.Status)
	assert.False(t, r.CreatedAt.IsZero())

	p.Status = "Completed"
	assert.Equal(t, models.ReservationCompleted, p.ToModel().Status)
}

func TestReservationProjectionShape(t *testing.T) {
	r := sampleReservation()
	note := "window seat"
	r.Items = []models.ReservationItem{
		{ID: 1, ReservationID: 1, ItemID: 40, Quantity: 2, Notes: &note},
	}

	resp := NewReservationResponse(r)
	assert.Equal(t, "pending", resp.Status)
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, uint(40), resp.Items[0].ItemID)

	// items is always an array, never null
	empty := NewReservationResponse(sampleReservation())
	raw, err := json.Marshal(empty)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), `"items":[]`)
}
