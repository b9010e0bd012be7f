package booking

import (
	"github.com/Sayed036/WoodLand-Hospital/models"
	"gorm.io/gorm"
)

// AdminDashboard holds the aggregated counts shown on the admin panel.
type AdminDashboard struct {
	Doctors            int64                `json:"doctors"`
	Patients           int64                `json:"patients"`
	Appointments       int64                `json:"appointments"`
	LatestAppointments []models.Appointment `json:"latest_appointments"`
}

// DoctorDashboard holds the aggregated figures shown on the doctor
// panel. Earnings count appointments that are completed or paid.
type DoctorDashboard struct {
	Earnings           float64              `json:"earnings"`
	Appointments       int64                `json:"appointments"`
	Patients           int64                `json:"patients"`
	LatestAppointments []models.Appointment `json:"latest_appointments"`
}

// AdminStats computes the admin dashboard. Latest appointments are the
// five most recently created, newest first.
func AdminStats(db *gorm.DB) (*AdminDashboard, error) {
	var dash AdminDashboard

	if err := db.Model(&models.Doctor{}).Count(&dash.Doctors).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Patient{}).Count(&dash.Patients).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Appointment{}).Count(&dash.Appointments).Error; err != nil {
		return nil, err
	}
	if err := db.Order("appointment_id DESC").Limit(5).
		Find(&dash.LatestAppointments).Error; err != nil {
		return nil, err
	}
	return &dash, nil
}

// DoctorStats computes the doctor dashboard for one doctor.
func DoctorStats(db *gorm.DB, doctorID uint) (*DoctorDashboard, error) {
	var dash DoctorDashboard

	if err := db.Model(&models.Appointment{}).
		Where("doctor_id = ? AND (is_completed = ? OR payment = ?)", doctorID, true, true).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&dash.Earnings).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Appointment{}).
		Where("doctor_id = ?", doctorID).
		Count(&dash.Appointments).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Appointment{}).
		Where("doctor_id = ?", doctorID).
		Distinct("patient_id").
		Count(&dash.Patients).Error; err != nil {
		return nil, err
	}
	if err := db.Where("doctor_id = ?", doctorID).
		Order("appointment_id DESC").Limit(5).
		Find(&dash.LatestAppointments).Error; err != nil {
		return nil, err
	}
	return &dash, nil
}
