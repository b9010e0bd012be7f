package models

import "time"

// DoctorSnapshot is the doctor data frozen into an appointment at
// booking time. It does not follow later doctor profile changes.
type DoctorSnapshot struct {
	Name       string  `json:"name"`
	Speciality string  `json:"speciality"`
	Degree     string  `json:"degree"`
	Image      string  `json:"image"`
	Fees       float64 `json:"fees"`
	Address    string  `json:"address"`
}

// PatientSnapshot is the patient data frozen into an appointment at
// booking time.
type PatientSnapshot struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Image  string `json:"image"`
	Gender string `json:"gender"`
	DOB    string `json:"dob"`
}

type Appointment struct {
	AppointmentID uint            `json:"appointment_id" gorm:"primaryKey"`
	PatientID     uint            `json:"patient_id" gorm:"not null;index"`
	DoctorID      uint            `json:"doctor_id" gorm:"not null;index"`
	SlotDate      string          `json:"slot_date" gorm:"not null"`
	SlotTime      string          `json:"slot_time" gorm:"not null"`
	Amount        float64         `json:"amount"`
	Cancelled     bool            `json:"cancelled"`
	IsCompleted   bool            `json:"is_completed"`
	Payment       bool            `json:"payment"`
	DoctorData    DoctorSnapshot  `json:"doctor_data" gorm:"serializer:json"`
	PatientData   PatientSnapshot `json:"patient_data" gorm:"serializer:json"`
	CreatedAt     time.Time       `json:"created_at" gorm:"autoCreateTime"`
}
