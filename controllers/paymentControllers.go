package controllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"os"

	"github.com/Sayed036/WoodLand-Hospital/booking"
	"github.com/Sayed036/WoodLand-Hospital/configuration"
	"github.com/Sayed036/WoodLand-Hospital/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/razorpay/razorpay-go"
)

func razorpayClient() *razorpay.Client {
	return razorpay.NewClient(os.Getenv("RAZORPAY_KEY_ID"), os.Getenv("RAZORPAY_KEY_SECRET"))
}

// amountInPaise converts rupees to the integer paise the gateway
// expects. Rounding guards against float artifacts like 19.95*100
// landing at 1994.999...
func amountInPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// PayRazorpay creates a gateway order for an appointment. The order
// amount is the snapshot amount in paise.
func PayRazorpay(c *gin.Context) {
	var paymentReq struct {
		AppointmentID uint `json:"appointment_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&paymentReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Status": "Failed", "Message": err.Error()})
		return
	}

	patientID, ok := c.Get("patientID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"Status": "Failed", "Message": "Patient not authenticated"})
		return
	}

	var appointment models.Appointment
	if err := configuration.DB.First(&appointment, paymentReq.AppointmentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"Status": "Failed", "Message": "Appointment not found"})
		return
	}
	if appointment.PatientID != patientID.(uint) {
		c.JSON(http.StatusForbidden, gin.H{"Status": "Failed", "Message": "Not allowed"})
		return
	}
	if appointment.Cancelled {
		c.JSON(http.StatusConflict, gin.H{"Status": "Failed", "Message": "Appointment has been cancelled"})
		return
	}
	if appointment.Payment {
		c.JSON(http.StatusConflict, gin.H{"Status": "Failed", "Message": "Appointment is already paid"})
		return
	}

	receipt := uuid.New().String()
	orderData := map[string]interface{}{
		"amount":   amountInPaise(appointment.Amount),
		"currency": "INR",
		"receipt":  receipt,
	}

	body, err := razorpayClient().Order.Create(orderData, nil)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"Status": "Failed", "Message": "Failed to create payment order"})
		return
	}
	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		c.JSON(http.StatusBadGateway, gin.H{"Status": "Failed", "Message": "Gateway returned no order ID"})
		return
	}

	order := models.PaymentOrder{
		OrderID:       orderID,
		AppointmentID: appointment.AppointmentID,
		Amount:        appointment.Amount,
		Currency:      "INR",
		Receipt:       receipt,
		Status:        models.OrderStatusCreated,
	}
	if err := configuration.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": "Failed", "Message": "Failed to record payment order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Payment order created",
		"Data":    order,
	})
}

// VerifyRazorpay fetches the order status from the gateway and records
// the payment on the appointment if the gateway confirms it. A payment
// confirmed after the appointment was already cancelled is flagged for
// refund instead of being recorded or dropped.
func VerifyRazorpay(c *gin.Context) {
	var verifyReq struct {
		OrderID string `json:"razorpay_order_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&verifyReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"Status": "Failed", "Message": err.Error()})
		return
	}

	var order models.PaymentOrder
	if err := configuration.DB.First(&order, "order_id = ?", verifyReq.OrderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"Status": "Failed", "Message": "Unknown payment order"})
		return
	}

	orderInfo, err := razorpayClient().Order.Fetch(verifyReq.OrderID, nil, nil)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"Status": "Failed", "Message": "Failed to fetch order status"})
		return
	}
	if status, _ := orderInfo["status"].(string); status != "paid" {
		c.JSON(http.StatusBadRequest, gin.H{"Status": "Failed", "Message": "Payment not completed"})
		return
	}

	if err := booking.MarkPaid(configuration.DB, order.AppointmentID); err != nil {
		if errors.Is(err, booking.ErrCancelledNeedsRefund) {
			// Cancel won the race against the payment confirmation:
			// keep the money trail and flag the order for refund.
			if dbErr := configuration.DB.Model(&order).
				Update("status", models.OrderStatusRefundDue).Error; dbErr != nil {
				log.Println("failed to flag order for refund:", dbErr)
			}
			log.Printf("order %s paid for cancelled appointment %d, refund flagged",
				order.OrderID, order.AppointmentID)
			c.JSON(http.StatusConflict, gin.H{
				"Status":  "Failed",
				"Message": "Appointment was cancelled before payment completed, refund has been flagged",
			})
			return
		}
		respondBookingError(c, err)
		return
	}

	if err := configuration.DB.Model(&order).
		Update("status", models.OrderStatusPaid).Error; err != nil {
		log.Println("failed to mark payment order paid:", err)
	}

	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Payment successful"})
}
