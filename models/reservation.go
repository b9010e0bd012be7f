package models

import "time"

// SlotReservation claims one (doctor, date, time) slot. The composite
// unique index is what makes a reservation an atomic conditional
// insert: a second insert for the same slot affects zero rows.
// Only the booking package writes to this table.
type SlotReservation struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	DoctorID  uint      `json:"doctor_id" gorm:"not null;uniqueIndex:idx_doctor_slot"`
	SlotDate  string    `json:"slot_date" gorm:"not null;uniqueIndex:idx_doctor_slot"`
	SlotTime  string    `json:"slot_time" gorm:"not null;uniqueIndex:idx_doctor_slot"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
