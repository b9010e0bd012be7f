package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Sayed036/WoodLand-Hospital/authentication"
	"github.com/Sayed036/WoodLand-Hospital/configuration"
	"github.com/Sayed036/WoodLand-Hospital/models"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var validate = validator.New()

// PatientSignup registers a new patient and returns a session token.
func PatientSignup(c *gin.Context) {
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Status": "Failed", "Message": "Binding error", "Data": err.Error()})
		return
	}

	if err := validate.Struct(patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Status": "Failed", "Message": "Please fill all the mandatory fields", "Data": err.Error()})
		return
	}
	if len(patient.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"Status": "Failed", "Message": "Enter a stronger password"})
		return
	}

	var existing models.Patient
	if err := configuration.DB.Where("email = ?", patient.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"Status": "Failed", "Message": "Email already registered"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": "Failed", "Message": "Database error"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(patient.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": "Failed", "Message": "Failed to hash password"})
		return
	}
	patient.Password = string(hashedPassword)

	if err := configuration.DB.Create(&patient).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": "Failed", "Message": "Failed to register patient"})
		return
	}

	token, err := authentication.GeneratePatientToken(patient.PatientID, patient.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": "Failed", "Message": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Signup successful", "Token": token})
}

// PatientLogin checks credentials and returns a session token.
func PatientLogin(c *gin.Context) {
	var loginReq struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Status": "Failed", "Message": err.Error()})
		return
	}

	var patient models.Patient
	if err := configuration.DB.Where("email = ?", loginReq.Email).First(&patient).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"Status": "Failed", "Message": "Invalid email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(patient.Password), []byte(loginReq.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"Status": "Failed", "Message": "Invalid email or password"})
		return
	}

	token, err := authentication.GeneratePatientToken(patient.PatientID, patient.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": "Failed", "Message": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Login successful", "Token": token})
}

// GetProfile returns the authenticated patient's profile.
func GetProfile(c *gin.Context) {
	patientID, ok := c.Get("patientID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"Status": "Failed", "Message": "Patient not authenticated"})
		return
	}

	var patient models.Patient
	if err := configuration.DB.First(&patient, patientID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"Status": "Failed", "Message": "Patient not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Profile fetched successfully", "Data": patient})
}

// UpdateProfile updates the patient's profile fields and, when an
// image is attached, uploads it to the image store.
func UpdateProfile(c *gin.Context) {
	patientID, ok := c.Get("patientID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"Status": "Failed", "Message": "Patient not authenticated"})
		return
	}

	name := c.PostForm("name")
	phone := c.PostForm("phone")
	if name == "" || phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"Status": "Failed", "Message": "Data missing"})
		return
	}

	updates := map[string]interface{}{
		"name":    name,
		"phone":   phone,
		"address": c.PostForm("address"),
		"dob":     c.PostForm("dob"),
		"gender":  c.PostForm("gender"),
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"Status": "Failed", "Message": "Failed to read image"})
			return
		}
		defer file.Close()

		imageURL, err := UploadImage(file, "patients")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"Status": "Failed", "Message": "Image upload failed"})
			return
		}
		updates["image"] = imageURL
	}

	if err := configuration.DB.Model(&models.Patient{}).
		Where("patient_id = ?", patientID).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": "Failed", "Message": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Profile updated successfully"})
}

// PatientLogout revokes the current session token.
func PatientLogout(c *gin.Context) {
	logoutCurrentToken(c)
}

// logoutCurrentToken blacklists the bearer token set by the auth
// middleware until it would have expired anyway.
func logoutCurrentToken(c *gin.Context) {
	token := c.GetString("token")
	expiry, _ := c.Get("tokenExpiry")
	expiresAt, _ := expiry.(time.Time)

	if token != "" {
		if err := authentication.RevokeToken(token, expiresAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"Status": "Failed", "Message": "Failed to log out"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "You are successfully logged out"})
}
