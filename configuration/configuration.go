package configuration

import (
	"log"
	"os"

	"github.com/Sayed036/WoodLand-Hospital/models"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// hold connection to db
var DB *gorm.DB

// LoadEnv loads the .env file if one is present. In deployed
// environments the variables come from the process environment.
func LoadEnv() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println(".env file not found, using process environment")
	}
}

// ConfigDB initializes the database connection and migrates the schema
func ConfigDB() {
	dsn := os.Getenv("DB")
	if dsn == "" {
		log.Fatal("DB connection string is not set")
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to the database: ", err)
	}

	if err := DB.AutoMigrate(
		&models.Doctor{},
		&models.Patient{},
		&models.Appointment{},
		&models.SlotReservation{},
		&models.PaymentOrder{},
	); err != nil {
		log.Fatal("Failed to migrate database schema: ", err)
	}
}
