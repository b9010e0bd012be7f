package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Patient struct {
	PatientID uint      `json:"patient_id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null" validate:"required"`
	Email     string    `json:"email" gorm:"unique;not null" validate:"required,email"`
	Password  string    `json:"-" gorm:"not null"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Gender    string    `json:"gender"`
	DOB       string    `json:"dob"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

type PatientClaims struct {
	PatientID uint   `json:"patient_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}
