package controllers

import (
	"errors"
	"net/http"
	"os"

	"github.com/Sayed036/WoodLand-Hospital/authentication"
	"github.com/Sayed036/WoodLand-Hospital/booking"
	"github.com/Sayed036/WoodLand-Hospital/configuration"
	"github.com/Sayed036/WoodLand-Hospital/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminLogin checks the configured admin credentials and returns a
// session token.
func AdminLogin(c *gin.Context) {
	var loginReq struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Status": "Failed", "Message": err.Error()})
		return
	}

	if loginReq.Email != os.Getenv("ADMIN_EMAIL") || loginReq.Password != os.Getenv("ADMIN_PASSWORD") {
		c.JSON(http.StatusUnauthorized, gin.H{"Status": "Failed", "Message": "Invalid credentials"})
		return
	}

	token, err := authentication.GenerateAdminToken(loginReq.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": "Failed", "Message": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Login successful", "Token": token})
}

// addDoctorRequest carries the multipart fields for doctor onboarding.
type addDoctorRequest struct {
	Name       string  `form:"name" validate:"required"`
	Email      string  `form:"email" validate:"required,email"`
	Password   string  `form:"password" validate:"required,min=6"`
	Speciality string  `form:"speciality" validate:"required"`
	Degree     string  `form:"degree"`
	Experience string  `form:"experience"`
	About      string  `form:"about"`
	Fees       float64 `form:"fees" validate:"required"`
	Address    string  `form:"address"`
}

// AddDoctor onboards a new doctor: validates the submitted profile,
// uploads the photo to the image store with bounded retries and
// creates the directory record.
func AddDoctor(c *gin.Context) {
	var doctorReq addDoctorRequest
	if err := c.ShouldBind(&doctorReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Status": "Failed", "Message": "Binding error", "Data": err.Error()})
		return
	}
	if err := validate.Struct(doctorReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Status": "Failed", "Message": "Please fill all the mandatory fields", "Data": err.Error()})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Status": "Failed", "Message": "Doctor image is required"})
		return
	}

	var existing models.Doctor
	if err := configuration.DB.Where("email = ?", doctorReq.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"Status": "Failed", "Message": "Email already in use"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": "Failed", "Message": "Database error"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Status": "Failed", "Message": "Failed to read image"})
		return
	}
	defer file.Close()

	imageURL, err := UploadImage(file, "doctors")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": "Failed", "Message": "Image upload failed"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(doctorReq.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": "Failed", "Message": "Failed to hash password"})
		return
	}

	doctor := models.Doctor{
		Name:       doctorReq.Name,
		Email:      doctorReq.Email,
		Password:   string(hashedPassword),
		Image:      imageURL,
		Speciality: doctorReq.Speciality,
		Degree:     doctorReq.Degree,
		Experience: doctorReq.Experience,
		About:      doctorReq.About,
		Fees:       doctorReq.Fees,
		Address:    doctorReq.Address,
		Available:  true,
	}
	if err := configuration.DB.Create(&doctor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": "Failed", "Message": "Failed to add doctor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Doctor added successfully", "Data": doctor})
}

// AllDoctors returns every doctor with their booked slots for the
// admin panel.
func AllDoctors(c *gin.Context) {
	DoctorList(c)
}

// AdminChangeAvailability toggles any doctor's availability.
func AdminChangeAvailability(c *gin.Context) {
	var availabilityReq struct {
		DoctorID uint `json:"doctor_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&availabilityReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Status": "Failed", "Message": err.Error()})
		return
	}
	toggleAvailability(c, availabilityReq.DoctorID)
}

// AdminAppointments lists every appointment, newest first.
func AdminAppointments(c *gin.Context) {
	var appointments []models.Appointment
	if err := configuration.DB.Order("appointment_id DESC").
		Find(&appointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": "Failed", "Message": "Failed to fetch appointments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Appointments fetched successfully", "Data": appointments})
}

// AdminCancelAppointment cancels any appointment and frees its slot.
func AdminCancelAppointment(c *gin.Context) {
	var cancelReq struct {
		AppointmentID uint `json:"appointment_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&cancelReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Status": "Failed", "Message": err.Error()})
		return
	}

	if err := booking.Cancel(configuration.DB, cancelReq.AppointmentID, 0, booking.RoleAdmin); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Appointment cancelled"})
}

// AdminDashboardView returns platform-wide counts and the latest
// appointments.
func AdminDashboardView(c *gin.Context) {
	dash, err := booking.AdminStats(configuration.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": "Failed", "Message": "Failed to compute dashboard"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Dashboard fetched successfully", "Data": dash})
}

// AdminLogout revokes the current session token.
func AdminLogout(c *gin.Context) {
	logoutCurrentToken(c)
}
