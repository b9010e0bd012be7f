package booking

import (
	"errors"
	"log"

	"github.com/Sayed036/WoodLand-Hospital/models"
	"gorm.io/gorm"
)

// Role identifies who is acting on an appointment.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// Book reserves the slot and creates the appointment with doctor and
// patient data frozen at booking time. If anything fails after the
// slot was claimed, the reservation is released again so the slot is
// never left locked without an appointment behind it.
func Book(db *gorm.DB, patientID, doctorID uint, slotDate, slotTime string) (*models.Appointment, error) {
	if patientID == 0 {
		return nil, ErrValidation
	}

	if err := Reserve(db, doctorID, slotDate, slotTime); err != nil {
		return nil, err
	}

	var doctor models.Doctor
	if err := db.First(&doctor, doctorID).Error; err != nil {
		releaseQuietly(db, doctorID, slotDate, slotTime)
		return nil, err
	}

	var patient models.Patient
	if err := db.First(&patient, patientID).Error; err != nil {
		releaseQuietly(db, doctorID, slotDate, slotTime)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}

	appointment := models.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		SlotDate:  slotDate,
		SlotTime:  slotTime,
		Amount:    doctor.Fees,
		DoctorData: models.DoctorSnapshot{
			Name:       doctor.Name,
			Speciality: doctor.Speciality,
			Degree:     doctor.Degree,
			Image:      doctor.Image,
			Fees:       doctor.Fees,
			Address:    doctor.Address,
		},
		PatientData: models.PatientSnapshot{
			Name:   patient.Name,
			Email:  patient.Email,
			Phone:  patient.Phone,
			Image:  patient.Image,
			Gender: patient.Gender,
			DOB:    patient.DOB,
		},
	}
	if err := db.Create(&appointment).Error; err != nil {
		releaseQuietly(db, doctorID, slotDate, slotTime)
		return nil, err
	}
	return &appointment, nil
}

// MarkPaid records a confirmed gateway payment on the appointment.
// Payment confirmation arrives asynchronously and can race with
// cancellation: a payment landing on a cancelled appointment is not
// recorded (payment implies not cancelled) and is surfaced as
// ErrCancelledNeedsRefund so the caller can flag the order for refund.
func MarkPaid(db *gorm.DB, appointmentID uint) error {
	var appointment models.Appointment
	if err := db.First(&appointment, appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAppointmentNotFound
		}
		return err
	}
	if appointment.Cancelled {
		return ErrCancelledNeedsRefund
	}
	return db.Model(&appointment).Update("payment", true).Error
}

// Complete marks the appointment as completed by its doctor. The
// completed flag is only written while the row is still uncancelled,
// so a cancellation racing in between cannot leave an appointment
// both cancelled and completed.
func Complete(db *gorm.DB, appointmentID, doctorID uint) error {
	var appointment models.Appointment
	if err := db.First(&appointment, appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAppointmentNotFound
		}
		return err
	}
	if appointment.DoctorID != doctorID {
		return ErrForbidden
	}
	if appointment.Cancelled {
		return ErrAlreadyCancelled
	}

	result := db.Model(&models.Appointment{}).
		Where("appointment_id = ? AND cancelled = ?", appointment.AppointmentID, false).
		Update("is_completed", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAlreadyCancelled
	}
	return nil
}

// Cancel soft-cancels the appointment and releases its slot in one
// transaction: if the release fails the cancellation rolls back, so a
// cancelled appointment can never leave its slot permanently locked.
// Patients and doctors may only cancel their own appointments; admins
// may cancel any. Cancelling an already-cancelled appointment is a
// no-op so the released slot cannot be stolen from a later booking.
func Cancel(db *gorm.DB, appointmentID, requesterID uint, role Role) error {
	var appointment models.Appointment
	if err := db.First(&appointment, appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAppointmentNotFound
		}
		return err
	}

	switch role {
	case RolePatient:
		if appointment.PatientID != requesterID {
			return ErrForbidden
		}
	case RoleDoctor:
		if appointment.DoctorID != requesterID {
			return ErrForbidden
		}
	case RoleAdmin:
	default:
		return ErrForbidden
	}

	if appointment.IsCompleted {
		return ErrAlreadyCompleted
	}
	if appointment.Cancelled {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// Claim the cancellation only while the row is still active;
		// a completion or another cancel racing in makes this a miss.
		result := tx.Model(&models.Appointment{}).
			Where("appointment_id = ? AND cancelled = ? AND is_completed = ?",
				appointment.AppointmentID, false, false).
			Update("cancelled", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var current models.Appointment
			if err := tx.First(&current, appointment.AppointmentID).Error; err != nil {
				return err
			}
			if current.IsCompleted {
				return ErrAlreadyCompleted
			}
			return nil
		}
		return Release(tx, appointment.DoctorID, appointment.SlotDate, appointment.SlotTime)
	})
}

func releaseQuietly(db *gorm.DB, doctorID uint, slotDate, slotTime string) {
	if err := Release(db, doctorID, slotDate, slotTime); err != nil {
		log.Println("failed to release slot after booking error:", err)
	}
}
