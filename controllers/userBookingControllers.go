package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Sayed036/WoodLand-Hospital/booking"
	"github.com/Sayed036/WoodLand-Hospital/configuration"
	"github.com/Sayed036/WoodLand-Hospital/models"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// BookAppointment reserves the requested slot and creates the
// appointment, then sends the confirmation email in the background.
func BookAppointment(c *gin.Context) {
	var bookingReq struct {
		DoctorID uint   `json:"doctor_id" binding:"required"`
		SlotDate string `json:"slot_date" binding:"required"`
		SlotTime string `json:"slot_time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&bookingReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Status": "Failed", "Message": err.Error()})
		return
	}

	patientID, ok := c.Get("patientID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"Status": "Failed", "Message": "Patient not authenticated"})
		return
	}

	appointment, err := booking.Book(configuration.DB, patientID.(uint),
		bookingReq.DoctorID, bookingReq.SlotDate, bookingReq.SlotTime)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	SendEmailAsync(appointment.PatientData.Email,
		"Appointment Confirmed - WoodLand Hospital",
		bookingConfirmationBody(appointment))

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Appointment booked successfully",
		"Data":    appointment,
	})
}

// ListAppointments returns the patient's appointments, newest first.
func ListAppointments(c *gin.Context) {
	patientID, ok := c.Get("patientID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"Status": "Failed", "Message": "Patient not authenticated"})
		return
	}

	var appointments []models.Appointment
	if err := configuration.DB.Where("patient_id = ?", patientID).
		Order("appointment_id DESC").Find(&appointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": "Failed", "Message": "Failed to fetch appointments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Appointments fetched successfully", "Data": appointments})
}

// CancelAppointment cancels one of the patient's own appointments and
// frees its slot.
func CancelAppointment(c *gin.Context) {
	var cancelReq struct {
		AppointmentID uint `json:"appointment_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&cancelReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Status": "Failed", "Message": err.Error()})
		return
	}

	patientID, ok := c.Get("patientID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"Status": "Failed", "Message": "Patient not authenticated"})
		return
	}

	if err := booking.Cancel(configuration.DB, cancelReq.AppointmentID,
		patientID.(uint), booking.RolePatient); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Appointment cancelled"})
}

// AppointmentReceipt renders the patient's appointment as a
// downloadable PDF receipt.
func AppointmentReceipt(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Status": "Failed", "Message": "Invalid appointment ID"})
		return
	}

	patientID, ok := c.Get("patientID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"Status": "Failed", "Message": "Patient not authenticated"})
		return
	}

	var appointment models.Appointment
	if err := configuration.DB.First(&appointment, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"Status": "Failed", "Message": "Appointment not found"})
		return
	}
	if appointment.PatientID != patientID.(uint) {
		c.JSON(http.StatusForbidden, gin.H{"Status": "Failed", "Message": "Not authorized"})
		return
	}

	receipt, err := generateReceiptPDF(appointment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": "Failed", "Message": "Failed to generate receipt"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=appointment.pdf")
	c.Data(http.StatusOK, "application/pdf", receipt)
}

// generateReceiptPDF renders an appointment snapshot as a receipt.
func generateReceiptPDF(appointment models.Appointment) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.SetTextColor(26, 26, 26)
	pdf.CellFormat(0, 10, "WoodLand Hospital", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 7, "MG Road, Bangalore - Contact: +91 9876543210", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 13)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Appointment Receipt", "1", 1, "C", false, 0, "")

	addReceiptDetail(pdf, "Appointment ID", fmt.Sprintf("%d", appointment.AppointmentID))
	addReceiptDetail(pdf, "Patient Name", appointment.PatientData.Name)
	addReceiptDetail(pdf, "Doctor", appointment.DoctorData.Name)
	addReceiptDetail(pdf, "Speciality", appointment.DoctorData.Speciality)
	addReceiptDetail(pdf, "Date", appointment.SlotDate)
	addReceiptDetail(pdf, "Time", appointment.SlotTime)
	addReceiptDetail(pdf, "Fees", fmt.Sprintf("%.2f", appointment.Amount))

	status := "Pending"
	r, g, b := 255, 165, 0
	switch {
	case appointment.Cancelled:
		status = "Cancelled"
		r, g, b = 255, 0, 0
	case appointment.IsCompleted:
		status = "Completed"
		r, g, b = 0, 128, 0
	case appointment.Payment:
		status = "Paid"
		r, g, b = 0, 0, 255
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(r, g, b)
	pdf.CellFormat(0, 10, "Status: "+status, "", 1, "L", false, 0, "")

	pdf.SetTextColor(128, 128, 128)
	pdf.SetFont("Arial", "", 10)
	pdf.SetY(pdf.GetY() + 12)
	pdf.CellFormat(0, 10, "Thank you for choosing WoodLand Hospital.", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 10, "This is a computer generated receipt", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addReceiptDetail(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(45, 10, label, "1", 0, "", false, 0, "")
	pdf.CellFormat(0, 10, value, "1", 1, "", false, 0, "")
}
