package controllers

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/Sayed036/WoodLand-Hospital/models"
	"github.com/go-gomail/gomail"
)

// SendEmail sends an HTML email through the configured SMTP server.
func SendEmail(to, subject, htmlBody string) error {
	senderEmail := os.Getenv("SMTP_EMAIL")
	senderPassword := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		port = p
	}

	m := gomail.NewMessage()
	m.SetHeader("From", senderEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(host, port, senderEmail, senderPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	return nil
}

// SendEmailAsync fires the email off in the background. Notification
// failures are logged and never fail the request that triggered them.
func SendEmailAsync(to, subject, htmlBody string) {
	go func() {
		if err := SendEmail(to, subject, htmlBody); err != nil {
			log.Println("email notification failed:", err)
		}
	}()
}

// bookingConfirmationBody builds the appointment confirmation mail.
func bookingConfirmationBody(appointment *models.Appointment) string {
	return fmt.Sprintf(`
		<h2>Appointment Confirmed</h2>
		<p>Dear %s,</p>
		<p>Your appointment has been successfully booked at <b>WoodLand Hospital</b>.</p>
		<h3>Appointment Details:</h3>
		<p><b>Doctor:</b> %s</p>
		<p><b>Speciality:</b> %s</p>
		<p><b>Date:</b> %s</p>
		<p><b>Time:</b> %s</p>
		<br/>
		<p>Thank you for choosing <b>WoodLand Hospital</b>. Stay healthy!</p>`,
		appointment.PatientData.Name,
		appointment.DoctorData.Name,
		appointment.DoctorData.Speciality,
		appointment.SlotDate,
		appointment.SlotTime,
	)
}
