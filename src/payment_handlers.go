package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"padelbook/src/core/booking"
	"padelbook/src/db"
	"padelbook/src/lib"
	"padelbook/src/lib/mailer"
	"padelbook/src/models"
	"padelbook/src/types"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
)

func midtransWebhookRoute(g *gin.Engine) *gin.RouterGroup {
	apiv1 := apiv1Group(g)
	apiv1.POST("/webhook/midtrans", func(ctx *gin.Context) {
		payload, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			log.Printf("Error reading request body: %s\n", err.Error())
			ctx.Status(http.StatusServiceUnavailable)
			return
		}
		if !gjson.ValidBytes(payload) {
			log.Println("[midtrans] Received invalid json body. Aborting")
			ctx.Status(http.StatusBadRequest)
			return
		}
		var notification types.MidtransNotification
		if err := json.Unmarshal(payload, &notification); err != nil {
			log.Printf("Error deserializing notification: %s\n", err.Error())
			ctx.Status(http.StatusBadRequest)
			return
		}
		if !lib.VerifyNotificationSignature(&notification) {
			log.Printf("Error verifying webhook signature for order %s\n", notification.OrderID)
			ctx.Status(http.StatusUnauthorized)
			return
		}

		status := lib.MapTransactionStatus(notification.TransactionStatus, notification.FraudStatus)
		log.Printf("[MidtransEvent] order=%s status=%s -> %s\n", notification.OrderID, notification.TransactionStatus, status)

		writer := booking.NewReservationWriter(db.GetDb())
		if err := writer.ConfirmPayment(ctx.Request.Context(), notification.OrderID, status); err != nil {
			log.Printf("Error applying payment status for order %s: %s\n", notification.OrderID, err.Error())
			abortWithError(ctx, err)
			return
		}
		if status == types.PAYMENT_SUCCESS {
			mailPaymentConfirmed(notification.OrderID)
		}
		ctx.Status(http.StatusOK)
	})
	return apiv1
}

// mailPaymentConfirmed sends the booking confirmation for a paid order.
// Fire-and-forget: a lookup failure is logged and the webhook still acks.
func mailPaymentConfirmed(orderID string) {
	conn := db.GetDb()
	var payment models.Payment
	if err := conn.
		Model(&models.Payment{}).
		Where("order_id = ?", orderID).
		First(&payment).
		Error; err != nil {
		log.Printf("Could not load payment for order %s: %s\n", orderID, err.Error())
		return
	}
	var reservation models.Reservation
	if err := conn.
		Model(&models.Reservation{}).
		Where("id = ?", payment.ReservationID).
		Preload("Court").
		Preload("User").
		First(&reservation).
		Error; err != nil {
		log.Printf("Could not load reservation %d for order %s: %s\n", payment.ReservationID, orderID, err.Error())
		return
	}
	if reservation.User == nil || reservation.Court == nil {
		return
	}
	mailer.NotifyReservationConfirmed(reservation.User.Email, reservation.Court.Name, reservation.StartTime, reservation.TotalPrice)
}
