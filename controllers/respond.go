package controllers

import (
	"errors"
	"net/http"

	"github.com/Sayed036/WoodLand-Hospital/booking"
	"github.com/gin-gonic/gin"
)

func bookingErrorStatus(err error) int {
	switch {
	case errors.Is(err, booking.ErrValidation),
		errors.Is(err, booking.ErrDoctorUnavailable):
		return http.StatusBadRequest
	case errors.Is(err, booking.ErrDoctorNotFound),
		errors.Is(err, booking.ErrPatientNotFound),
		errors.Is(err, booking.ErrAppointmentNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, booking.ErrSlotTaken),
		errors.Is(err, booking.ErrAlreadyCancelled),
		errors.Is(err, booking.ErrAlreadyCompleted),
		errors.Is(err, booking.ErrCancelledNeedsRefund):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondBookingError translates a typed booking failure into the
// uniform response shape.
func respondBookingError(c *gin.Context, err error) {
	status := bookingErrorStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}
	c.JSON(status, gin.H{
		"Status":  "Failed",
		"Message": message,
	})
}
