package booking

import (
	"testing"

	"github.com/Sayed036/WoodLand-Hospital/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A second pooled connection would see its own empty in-memory
	// database, so pin the pool to one connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Doctor{},
		&models.Patient{},
		&models.Appointment{},
		&models.SlotReservation{},
		&models.PaymentOrder{},
	))
	return db
}

func createDoctor(t *testing.T, db *gorm.DB, name string, fees float64) *models.Doctor {
	t.Helper()
	doctor := models.Doctor{
		Name:       name,
		Email:      name + "@woodland.test",
		Password:   "hashed",
		Speciality: "General physician",
		Fees:       fees,
		Available:  true,
	}
	require.NoError(t, db.Create(&doctor).Error)
	return &doctor
}

func createPatient(t *testing.T, db *gorm.DB, name string) *models.Patient {
	t.Helper()
	patient := models.Patient{
		Name:     name,
		Email:    name + "@mail.test",
		Password: "hashed",
		Phone:    "9876543210",
	}
	require.NoError(t, db.Create(&patient).Error)
	return &patient
}
