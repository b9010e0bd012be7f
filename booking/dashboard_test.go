package booking

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorEarnings(t *testing.T) {
	db := setupTestDB(t)
	doctor := createDoctor(t, db, "dr-gupta", 100)
	patient := createPatient(t, db, "ravi")

	amounts := []float64{100, 200, 300}
	var ids []uint
	for i, amount := range amounts {
		require.NoError(t, db.Model(doctor).Update("fees", amount).Error)
		appointment, err := Book(db, patient.PatientID, doctor.DoctorID,
			"2024-01-10", fmt.Sprintf("1%d:00", i))
		require.NoError(t, err)
		ids = append(ids, appointment.AppointmentID)
	}

	// Only the first two are completed; the third stays booked.
	require.NoError(t, Complete(db, ids[0], doctor.DoctorID))
	require.NoError(t, Complete(db, ids[1], doctor.DoctorID))

	dash, err := DoctorStats(db, doctor.DoctorID)
	require.NoError(t, err)
	assert.Equal(t, 300.0, dash.Earnings)

	// A paid-but-not-completed appointment also counts.
	require.NoError(t, MarkPaid(db, ids[2]))
	dash, err = DoctorStats(db, doctor.DoctorID)
	require.NoError(t, err)
	assert.Equal(t, 600.0, dash.Earnings)
}

func TestDoctorDistinctPatients(t *testing.T) {
	db := setupTestDB(t)
	doctor := createDoctor(t, db, "dr-gupta", 100)
	ravi := createPatient(t, db, "ravi")
	meena := createPatient(t, db, "meena")

	_, err := Book(db, ravi.PatientID, doctor.DoctorID, "2024-01-10", "10:00")
	require.NoError(t, err)
	_, err = Book(db, ravi.PatientID, doctor.DoctorID, "2024-01-11", "10:00")
	require.NoError(t, err)
	_, err = Book(db, meena.PatientID, doctor.DoctorID, "2024-01-12", "10:00")
	require.NoError(t, err)

	dash, err := DoctorStats(db, doctor.DoctorID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, dash.Appointments)
	assert.EqualValues(t, 2, dash.Patients)
}

func TestLatestFiveInReverseCreationOrder(t *testing.T) {
	db := setupTestDB(t)
	doctor := createDoctor(t, db, "dr-gupta", 100)
	patient := createPatient(t, db, "ravi")

	var ids []uint
	for i := 0; i < 7; i++ {
		appointment, err := Book(db, patient.PatientID, doctor.DoctorID,
			fmt.Sprintf("2024-01-1%d", i), "10:00")
		require.NoError(t, err)
		ids = append(ids, appointment.AppointmentID)
	}

	dash, err := AdminStats(db)
	require.NoError(t, err)
	require.Len(t, dash.LatestAppointments, 5)
	for i, appointment := range dash.LatestAppointments {
		assert.Equal(t, ids[len(ids)-1-i], appointment.AppointmentID)
	}

	docDash, err := DoctorStats(db, doctor.DoctorID)
	require.NoError(t, err)
	require.Len(t, docDash.LatestAppointments, 5)
	assert.Equal(t, ids[6], docDash.LatestAppointments[0].AppointmentID)
}

func TestAdminCounts(t *testing.T) {
	db := setupTestDB(t)
	doctor := createDoctor(t, db, "dr-gupta", 100)
	createDoctor(t, db, "dr-rao", 200)
	patient := createPatient(t, db, "ravi")

	_, err := Book(db, patient.PatientID, doctor.DoctorID, "2024-01-10", "10:00")
	require.NoError(t, err)

	dash, err := AdminStats(db)
	require.NoError(t, err)
	assert.EqualValues(t, 2, dash.Doctors)
	assert.EqualValues(t, 1, dash.Patients)
	assert.EqualValues(t, 1, dash.Appointments)
}
