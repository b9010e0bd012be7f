package booking

import (
	"sync"
	"testing"

	"github.com/Sayed036/WoodLand-Hospital/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookSnapshotsDoctorAndPatient(t *testing.T) {
	db := setupTestDB(t)
	doctor := createDoctor(t, db, "dr-gupta", 500)
	patient := createPatient(t, db, "ravi")

	appointment, err := Book(db, patient.PatientID, doctor.DoctorID, "2024-01-10", "10:00")
	require.NoError(t, err)

	assert.Equal(t, doctor.DoctorID, appointment.DoctorID)
	assert.Equal(t, patient.PatientID, appointment.PatientID)
	assert.Equal(t, 500.0, appointment.Amount)
	assert.Equal(t, "dr-gupta", appointment.DoctorData.Name)
	assert.Equal(t, "ravi", appointment.PatientData.Name)
	assert.False(t, appointment.Cancelled)
	assert.False(t, appointment.IsCompleted)
	assert.False(t, appointment.Payment)

	booked, err := SlotsBooked(db, doctor.DoctorID)
	require.NoError(t, err)
	assert.Contains(t, booked["2024-01-10"], "10:00")
}

func TestBookSnapshotIsFrozen(t *testing.T) {
	db := setupTestDB(t)
	doctor := createDoctor(t, db, "dr-gupta", 500)
	patient := createPatient(t, db, "ravi")

	appointment, err := Book(db, patient.PatientID, doctor.DoctorID, "2024-01-10", "10:00")
	require.NoError(t, err)

	// Later profile changes must not leak into the stored snapshot.
	require.NoError(t, db.Model(doctor).Updates(map[string]interface{}{
		"fees": 900.0,
		"name": "dr-gupta-sr",
	}).Error)

	var stored models.Appointment
	require.NoError(t, db.First(&stored, appointment.AppointmentID).Error)
	assert.Equal(t, 500.0, stored.Amount)
	assert.Equal(t, 500.0, stored.DoctorData.Fees)
	assert.Equal(t, "dr-gupta", stored.DoctorData.Name)
}

func TestBookSameSlotTwiceConflicts(t *testing.T) {
	db := setupTestDB(t)
	doctor := createDoctor(t, db, "dr-gupta", 500)
	patient := createPatient(t, db, "ravi")
	other := createPatient(t, db, "meena")

	_, err := Book(db, patient.PatientID, doctor.DoctorID, "2024-01-10", "10:00")
	require.NoError(t, err)

	_, err = Book(db, other.PatientID, doctor.DoctorID, "2024-01-10", "10:00")
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestBookUnknownPatientReleasesSlot(t *testing.T) {
	db := setupTestDB(t)
	doctor := createDoctor(t, db, "dr-gupta", 500)

	_, err := Book(db, 99, doctor.DoctorID, "2024-01-10", "10:00")
	assert.ErrorIs(t, err, ErrPatientNotFound)

	// The compensating release must have freed the slot again.
	patient := createPatient(t, db, "ravi")
	_, err = Book(db, patient.PatientID, doctor.DoctorID, "2024-01-10", "10:00")
	assert.NoError(t, err)
}

func TestCancelReleasesSlotForRebooking(t *testing.T) {
	db := setupTestDB(t)
	doctor := createDoctor(t, db, "dr-gupta", 500)
	patient := createPatient(t, db, "ravi")

	appointment, err := Book(db, patient.PatientID, doctor.DoctorID, "2024-01-10", "10:00")
	require.NoError(t, err)

	require.NoError(t, Cancel(db, appointment.AppointmentID, patient.PatientID, RolePatient))

	booked, err := SlotsBooked(db, doctor.DoctorID)
	require.NoError(t, err)
	assert.NotContains(t, booked["2024-01-10"], "10:00")

	var stored models.Appointment
	require.NoError(t, db.First(&stored, appointment.AppointmentID).Error)
	assert.True(t, stored.Cancelled)

	// The freed slot is bookable again.
	_, err = Book(db, patient.PatientID, doctor.DoctorID, "2024-01-10", "10:00")
	assert.NoError(t, err)
}

func TestCancelOwnership(t *testing.T) {
	db := setupTestDB(t)
	doctor := createDoctor(t, db, "dr-gupta", 500)
	patient := createPatient(t, db, "ravi")
	other := createPatient(t, db, "meena")

	appointment, err := Book(db, patient.PatientID, doctor.DoctorID, "2024-01-10", "10:00")
	require.NoError(t, err)

	assert.ErrorIs(t, Cancel(db, appointment.AppointmentID, other.PatientID, RolePatient), ErrForbidden)
	assert.ErrorIs(t, Cancel(db, appointment.AppointmentID, doctor.DoctorID+1, RoleDoctor), ErrForbidden)
	assert.ErrorIs(t, Cancel(db, appointment.AppointmentID, 0, Role("visitor")), ErrForbidden)

	// Admin may cancel unconditionally.
	assert.NoError(t, Cancel(db, appointment.AppointmentID, 0, RoleAdmin))
}

func TestCancelTwiceDoesNotStealRebookedSlot(t *testing.T) {
	db := setupTestDB(t)
	doctor := createDoctor(t, db, "dr-gupta", 500)
	patient := createPatient(t, db, "ravi")

	first, err := Book(db, patient.PatientID, doctor.DoctorID, "2024-01-10", "10:00")
	require.NoError(t, err)
	require.NoError(t, Cancel(db, first.AppointmentID, patient.PatientID, RolePatient))

	// Someone else takes the freed slot.
	other := createPatient(t, db, "meena")
	_, err = Book(db, other.PatientID, doctor.DoctorID, "2024-01-10", "10:00")
	require.NoError(t, err)

	// Cancelling the first appointment again must not release the new
	// holder's reservation.
	require.NoError(t, Cancel(db, first.AppointmentID, patient.PatientID, RolePatient))
	booked, err := SlotsBooked(db, doctor.DoctorID)
	require.NoError(t, err)
	assert.Contains(t, booked["2024-01-10"], "10:00")
}

func TestCompleteGuards(t *testing.T) {
	db := setupTestDB(t)
	doctor := createDoctor(t, db, "dr-gupta", 500)
	patient := createPatient(t, db, "ravi")

	appointment, err := Book(db, patient.PatientID, doctor.DoctorID, "2024-01-10", "10:00")
	require.NoError(t, err)

	assert.ErrorIs(t, Complete(db, 999, doctor.DoctorID), ErrAppointmentNotFound)
	assert.ErrorIs(t, Complete(db, appointment.AppointmentID, doctor.DoctorID+1), ErrForbidden)

	require.NoError(t, Complete(db, appointment.AppointmentID, doctor.DoctorID))
	var stored models.Appointment
	require.NoError(t, db.First(&stored, appointment.AppointmentID).Error)
	assert.True(t, stored.IsCompleted)

	// A completed appointment cannot be cancelled.
	assert.ErrorIs(t, Cancel(db, appointment.AppointmentID, patient.PatientID, RolePatient), ErrAlreadyCompleted)
}

func TestCompleteCancelledAppointmentFails(t *testing.T) {
	db := setupTestDB(t)
	doctor := createDoctor(t, db, "dr-gupta", 500)
	patient := createPatient(t, db, "ravi")

	appointment, err := Book(db, patient.PatientID, doctor.DoctorID, "2024-01-10", "10:00")
	require.NoError(t, err)
	require.NoError(t, Cancel(db, appointment.AppointmentID, patient.PatientID, RolePatient))

	assert.ErrorIs(t, Complete(db, appointment.AppointmentID, doctor.DoctorID), ErrAlreadyCancelled)
}

func TestMarkPaid(t *testing.T) {
	db := setupTestDB(t)
	doctor := createDoctor(t, db, "dr-gupta", 500)
	patient := createPatient(t, db, "ravi")

	appointment, err := Book(db, patient.PatientID, doctor.DoctorID, "2024-01-10", "10:00")
	require.NoError(t, err)

	assert.ErrorIs(t, MarkPaid(db, 999), ErrAppointmentNotFound)

	require.NoError(t, MarkPaid(db, appointment.AppointmentID))
	var stored models.Appointment
	require.NoError(t, db.First(&stored, appointment.AppointmentID).Error)
	assert.True(t, stored.Payment)
}

func TestMarkPaidAfterCancelNeedsReconciliation(t *testing.T) {
	db := setupTestDB(t)
	doctor := createDoctor(t, db, "dr-gupta", 500)
	patient := createPatient(t, db, "ravi")

	appointment, err := Book(db, patient.PatientID, doctor.DoctorID, "2024-01-10", "10:00")
	require.NoError(t, err)
	require.NoError(t, Cancel(db, appointment.AppointmentID, patient.PatientID, RolePatient))

	assert.ErrorIs(t, MarkPaid(db, appointment.AppointmentID), ErrCancelledNeedsRefund)

	// A payment landing after cancellation must never be recorded.
	var stored models.Appointment
	require.NoError(t, db.First(&stored, appointment.AppointmentID).Error)
	assert.False(t, stored.Payment)
}

// A completion and a cancellation racing on the same appointment must
// resolve to exactly one outcome, never both flags at once.
func TestConcurrentCompleteAndCancelResolveToOneOutcome(t *testing.T) {
	db := setupTestDB(t)
	doctor := createDoctor(t, db, "dr-gupta", 500)
	patient := createPatient(t, db, "ravi")

	appointment, err := Book(db, patient.PatientID, doctor.DoctorID, "2024-01-10", "10:00")
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	var completeErr, cancelErr error
	go func() {
		defer wg.Done()
		completeErr = Complete(db, appointment.AppointmentID, doctor.DoctorID)
	}()
	go func() {
		defer wg.Done()
		cancelErr = Cancel(db, appointment.AppointmentID, patient.PatientID, RolePatient)
	}()
	wg.Wait()

	var stored models.Appointment
	require.NoError(t, db.First(&stored, appointment.AppointmentID).Error)
	require.False(t, stored.Cancelled && stored.IsCompleted,
		"appointment ended up both cancelled and completed")
	require.True(t, stored.Cancelled || stored.IsCompleted)

	booked, err := SlotsBooked(db, doctor.DoctorID)
	require.NoError(t, err)
	if stored.IsCompleted {
		assert.NoError(t, completeErr)
		assert.ErrorIs(t, cancelErr, ErrAlreadyCompleted)
		assert.Contains(t, booked["2024-01-10"], "10:00")
	} else {
		assert.NoError(t, cancelErr)
		assert.ErrorIs(t, completeErr, ErrAlreadyCancelled)
		assert.NotContains(t, booked["2024-01-10"], "10:00")
	}
}

// At most one non-cancelled appointment may ever hold a given slot.
func TestSingleActiveAppointmentPerSlot(t *testing.T) {
	db := setupTestDB(t)
	doctor := createDoctor(t, db, "dr-gupta", 500)
	patient := createPatient(t, db, "ravi")
	other := createPatient(t, db, "meena")

	first, err := Book(db, patient.PatientID, doctor.DoctorID, "2024-01-10", "10:00")
	require.NoError(t, err)
	require.NoError(t, Cancel(db, first.AppointmentID, patient.PatientID, RolePatient))

	_, err = Book(db, other.PatientID, doctor.DoctorID, "2024-01-10", "10:00")
	require.NoError(t, err)

	var active int64
	require.NoError(t, db.Model(&models.Appointment{}).
		Where("doctor_id = ? AND slot_date = ? AND slot_time = ? AND cancelled = ?",
			doctor.DoctorID, "2024-01-10", "10:00", false).
		Count(&active).Error)
	assert.EqualValues(t, 1, active)
}
