package booking

import "errors"

// Typed failures returned by the reservation engine and the
// appointment lifecycle. Controllers translate these into HTTP
// responses with errors.Is.
var (
	ErrValidation           = errors.New("missing or invalid booking details")
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrPatientNotFound      = errors.New("patient not found")
	ErrDoctorUnavailable    = errors.New("doctor not available")
	ErrSlotTaken            = errors.New("slot not available")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrForbidden            = errors.New("not allowed")
	ErrAlreadyCancelled     = errors.New("cannot complete a cancelled appointment")
	ErrAlreadyCompleted     = errors.New("cannot cancel a completed appointment")
	ErrCancelledNeedsRefund = errors.New("payment received for a cancelled appointment")
)
