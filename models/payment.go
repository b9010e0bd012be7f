package models

import "time"

// Payment order statuses.
const (
	OrderStatusCreated   = "created"
	OrderStatusPaid      = "paid"
	OrderStatusRefundDue = "refund_due"
)

// PaymentOrder records a gateway order created for an appointment.
// Status moves created -> paid, or created -> refund_due when the
// gateway confirms payment for an appointment that was cancelled in
// the meantime.
type PaymentOrder struct {
	OrderID       string    `json:"order_id" gorm:"primaryKey"`
	AppointmentID uint      `json:"appointment_id" gorm:"not null;index"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Receipt       string    `json:"receipt"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
