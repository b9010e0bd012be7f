package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Doctor struct {
	DoctorID   uint      `json:"doctor_id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"not null" validate:"required"`
	Email      string    `json:"email" gorm:"unique;not null" validate:"required,email"`
	Password   string    `json:"-" gorm:"not null"`
	Image      string    `json:"image"`
	Speciality string    `json:"speciality" gorm:"not null" validate:"required"`
	Degree     string    `json:"degree"`
	Experience string    `json:"experience"`
	About      string    `json:"about"`
	Fees       float64   `json:"fees" gorm:"not null" validate:"required"`
	Address    string    `json:"address"`
	Available  bool      `json:"available" gorm:"default:true"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

type DoctorClaims struct {
	DoctorID uint   `json:"doctor_id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
