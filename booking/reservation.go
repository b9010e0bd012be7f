package booking

import (
	"errors"

	"github.com/Sayed036/WoodLand-Hospital/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Reserve claims the (doctorID, slotDate, slotTime) slot. The claim is
// a single conditional insert against the composite unique index on
// slot_reservations, so two concurrent calls for the same slot cannot
// both succeed, no matter how many server instances are running.
func Reserve(db *gorm.DB, doctorID uint, slotDate, slotTime string) error {
	if doctorID == 0 || slotDate == "" || slotTime == "" {
		return ErrValidation
	}

	var doctor models.Doctor
	if err := db.First(&doctor, doctorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDoctorNotFound
		}
		return err
	}
	if !doctor.Available {
		return ErrDoctorUnavailable
	}

	reservation := models.SlotReservation{
		DoctorID: doctorID,
		SlotDate: slotDate,
		SlotTime: slotTime,
	}
	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&reservation)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Conflict target already held the slot.
		return ErrSlotTaken
	}
	return nil
}

// Release frees the slot if it is held. Releasing a slot that is
// already free is a no-op, not an error, so cancellation retries are
// safe.
func Release(db *gorm.DB, doctorID uint, slotDate, slotTime string) error {
	return db.
		Where("doctor_id = ? AND slot_date = ? AND slot_time = ?", doctorID, slotDate, slotTime).
		Delete(&models.SlotReservation{}).Error
}

// SlotsBooked builds the per-doctor map of booked slots (date ->
// times, in reservation order) from the reservation table.
func SlotsBooked(db *gorm.DB, doctorID uint) (map[string][]string, error) {
	var reservations []models.SlotReservation
	if err := db.Where("doctor_id = ?", doctorID).Order("id").Find(&reservations).Error; err != nil {
		return nil, err
	}

	booked := make(map[string][]string)
	for _, r := range reservations {
		booked[r.SlotDate] = append(booked[r.SlotDate], r.SlotTime)
	}
	return booked, nil
}
