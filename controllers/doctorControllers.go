package controllers

import (
	"net/http"

	"github.com/Sayed036/WoodLand-Hospital/authentication"
	"github.com/Sayed036/WoodLand-Hospital/booking"
	"github.com/Sayed036/WoodLand-Hospital/configuration"
	"github.com/Sayed036/WoodLand-Hospital/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// DoctorLogin checks credentials and returns a session token.
func DoctorLogin(c *gin.Context) {
	var loginReq struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Status": "Failed", "Message": err.Error()})
		return
	}

	var doctor models.Doctor
	if err := configuration.DB.Where("email = ?", loginReq.Email).First(&doctor).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"Status": "Failed", "Message": "Invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(doctor.Password), []byte(loginReq.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"Status": "Failed", "Message": "Invalid credentials"})
		return
	}

	token, err := authentication.GenerateDoctorToken(doctor.DoctorID, doctor.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": "Failed", "Message": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Login successful", "Token": token})
}

// doctorWithSlots is a directory entry: the doctor record plus the
// derived map of already booked slots.
type doctorWithSlots struct {
	models.Doctor
	SlotsBooked map[string][]string `json:"slots_booked"`
}

// DoctorList is the public doctor directory used by the booking page.
func DoctorList(c *gin.Context) {
	var doctors []models.Doctor
	if err := configuration.DB.Find(&doctors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": "Failed", "Message": "Failed to fetch doctors"})
		return
	}

	list := make([]doctorWithSlots, 0, len(doctors))
	for _, doctor := range doctors {
		booked, err := booking.SlotsBooked(configuration.DB, doctor.DoctorID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"Status": "Failed", "Message": "Failed to fetch booked slots"})
			return
		}
		list = append(list, doctorWithSlots{Doctor: doctor, SlotsBooked: booked})
	}

	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Doctors list fetched successfully", "Data": list})
}

// DoctorsBySpeciality filters the public directory by speciality.
func DoctorsBySpeciality(c *gin.Context) {
	var doctors []models.Doctor
	if err := configuration.DB.Where("speciality = ?", c.Param("speciality")).
		Find(&doctors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": "Failed", "Message": "Failed to fetch doctors"})
		return
	}
	if len(doctors) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"Status": "Failed", "Message": "No doctors found with the specified speciality"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Doctors list fetched successfully", "Data": doctors})
}

// ChangeAvailability toggles the authenticated doctor's availability.
func ChangeAvailability(c *gin.Context) {
	doctorID, ok := c.Get("doctorID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"Status": "Failed", "Message": "Doctor not authenticated"})
		return
	}
	toggleAvailability(c, doctorID.(uint))
}

func toggleAvailability(c *gin.Context, doctorID uint) {
	var doctor models.Doctor
	if err := configuration.DB.First(&doctor, doctorID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"Status": "Failed", "Message": "Doctor not found"})
		return
	}
	if err := configuration.DB.Model(&doctor).
		Update("available", !doctor.Available).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": "Failed", "Message": "Failed to change availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Availability changed", "Data": !doctor.Available})
}

// DoctorAppointments lists the doctor's appointments, newest first.
func DoctorAppointments(c *gin.Context) {
	doctorID, ok := c.Get("doctorID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"Status": "Failed", "Message": "Doctor not authenticated"})
		return
	}

	var appointments []models.Appointment
	if err := configuration.DB.Where("doctor_id = ?", doctorID).
		Order("appointment_id DESC").Find(&appointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": "Failed", "Message": "Failed to fetch appointments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Appointments fetched successfully", "Data": appointments})
}

// CompleteAppointment marks one of the doctor's appointments as done.
func CompleteAppointment(c *gin.Context) {
	var completeReq struct {
		AppointmentID uint `json:"appointment_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&completeReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Status": "Failed", "Message": err.Error()})
		return
	}

	doctorID, ok := c.Get("doctorID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"Status": "Failed", "Message": "Doctor not authenticated"})
		return
	}

	if err := booking.Complete(configuration.DB, completeReq.AppointmentID, doctorID.(uint)); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Appointment completed"})
}

// DoctorCancelAppointment cancels one of the doctor's appointments.
func DoctorCancelAppointment(c *gin.Context) {
	var cancelReq struct {
		AppointmentID uint `json:"appointment_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&cancelReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Status": "Failed", "Message": err.Error()})
		return
	}

	doctorID, ok := c.Get("doctorID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"Status": "Failed", "Message": "Doctor not authenticated"})
		return
	}

	if err := booking.Cancel(configuration.DB, cancelReq.AppointmentID,
		doctorID.(uint), booking.RoleDoctor); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Appointment cancelled"})
}

// DoctorDashboardView returns earnings, patient count and the latest
// appointments for the doctor panel.
func DoctorDashboardView(c *gin.Context) {
	doctorID, ok := c.Get("doctorID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"Status": "Failed", "Message": "Doctor not authenticated"})
		return
	}

	dash, err := booking.DoctorStats(configuration.DB, doctorID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": "Failed", "Message": "Failed to compute dashboard"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Dashboard fetched successfully", "Data": dash})
}

// DoctorProfile returns the authenticated doctor's profile.
func DoctorProfile(c *gin.Context) {
	doctorID, ok := c.Get("doctorID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"Status": "Failed", "Message": "Doctor not authenticated"})
		return
	}

	var doctor models.Doctor
	if err := configuration.DB.First(&doctor, doctorID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"Status": "Failed", "Message": "Doctor not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Profile fetched successfully", "Data": doctor})
}

// UpdateDoctorProfile lets the doctor adjust fees, address, about and
// availability. Appointment snapshots keep the old values.
func UpdateDoctorProfile(c *gin.Context) {
	doctorID, ok := c.Get("doctorID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"Status": "Failed", "Message": "Doctor not authenticated"})
		return
	}

	var updateReq struct {
		Fees      *float64 `json:"fees"`
		Address   *string  `json:"address"`
		About     *string  `json:"about"`
		Available *bool    `json:"available"`
	}
	if err := c.ShouldBindJSON(&updateReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Status": "Failed", "Message": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if updateReq.Fees != nil {
		updates["fees"] = *updateReq.Fees
	}
	if updateReq.Address != nil {
		updates["address"] = *updateReq.Address
	}
	if updateReq.About != nil {
		updates["about"] = *updateReq.About
	}
	if updateReq.Available != nil {
		updates["available"] = *updateReq.Available
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"Status": "Failed", "Message": "Nothing to update"})
		return
	}

	if err := configuration.DB.Model(&models.Doctor{}).
		Where("doctor_id = ?", doctorID).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": "Failed", "Message": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Profile updated successfully"})
}

// DoctorLogout revokes the current session token.
func DoctorLogout(c *gin.Context) {
	logoutCurrentToken(c)
}
