package main

import (
	"log"
	"net/http"
	"time"

	"padelbook/src/config"
	"padelbook/src/core/booking"
	"padelbook/src/db"
	"padelbook/src/lib"
	"padelbook/src/lib/mailer"
	"padelbook/src/models"
	"padelbook/src/types"

	"github.com/gin-gonic/gin"
)

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateReservationRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			date, err := time.ParseInLocation(config.DATE_PARSE_FORMAT, body.Date, time.Local)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			conn := db.GetDb()
			var user models.User
			if err := conn.
				Model(&models.User{}).
				Where("id = ?", body.UserID).
				First(&user).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				return
			}

			writer := booking.NewReservationWriter(conn)
			reservation, err := writer.Create(ctx.Request.Context(), booking.CreateReservationInput{
				CourtID:   body.CourtID,
				UserID:    user.ID,
				Tier:      user.Tier,
				Date:      date,
				Slots:     body.Slots,
				PromoCode: body.PromoCode,
			})
			if err != nil {
				abortWithError(ctx, err)
				return
			}

			// Gateway hiccups must not undo the committed reservation; the
			// client can re-request a token for the pending payment.
			token, err := lib.CreateSnapTransaction(reservation.Payment.OrderID, reservation.Payment.Amount, user.Name, user.Email)
			if err != nil {
				log.Printf("Could not create payment transaction for order %s: %s\n", reservation.Payment.OrderID, err.Error())
			} else {
				if err := conn.
					Model(&models.Payment{}).
					Where("id = ?", reservation.Payment.ID).
					Update("snap_token", token).
					Error; err != nil {
					log.Printf("Could not store snap token for order %s: %s\n", reservation.Payment.OrderID, err.Error())
				}
				reservation.Payment.SnapToken = token
			}

			ctx.JSON(http.StatusCreated, gin.H{"data": reservation, "token": token})
		}).
		GET("/bookings", func(ctx *gin.Context) {
			userID := ctx.Query("user_id")
			conn := db.GetDb()
			q := conn.Model(&models.Reservation{}).Preload("Court").Preload("Payment")
			if userID != "" {
				q = q.Where("user_id = ?", userID)
			}
			var reservations []models.Reservation
			if err := q.
				Order("start_time asc").
				Find(&reservations).
				Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": reservations, "count": len(reservations)})
		}).
		PUT("/bookings/:id/cancel", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			conn := db.GetDb()
			writer := booking.NewReservationWriter(conn)
			reservation, err := writer.Cancel(ctx.Request.Context(), params.ID)
			if err != nil {
				abortWithError(ctx, err)
				return
			}

			notifyWaitlist(ctx, reservation)

			var user models.User
			if err := conn.
				Model(&models.User{}).
				Where("id = ?", reservation.UserID).
				First(&user).
				Error; err != nil {
				log.Printf("Could not load user %d for cancellation mail: %s\n", reservation.UserID, err.Error())
			} else {
				var court models.Court
				if err := conn.
					Model(&models.Court{}).
					Where("id = ?", reservation.CourtID).
					First(&court).
					Error; err == nil {
					mailer.NotifyReservationCanceled(user.Email, court.Name, reservation.StartTime)
				}
			}

			ctx.Status(http.StatusNoContent)
		}).
		POST("/waitlist", func(ctx *gin.Context) {
			var body types.JoinWaitlistRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			date, err := time.ParseInLocation(config.DATE_PARSE_FORMAT, body.Date, time.Local)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			start, _, err := booking.SlotsToTimeRange(date, []string{body.Slot}, config.SlotMinutes())
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			wl := booking.NewWaitlist(lib.GetRedisClient())
			if err := wl.Join(ctx.Request.Context(), body.CourtID, start, body.Email); err != nil {
				log.Printf("Error joining waitlist: %s\n", err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "could not join waitlist"})
				return
			}
			ctx.Status(http.StatusCreated)
		})
	return g
}

// notifyWaitlist mails everyone waiting for the freed court+start and clears
// the list. At-least-once and fire-and-forget: a duplicate mail is fine, a
// failed mail is only logged.
func notifyWaitlist(ctx *gin.Context, reservation *models.Reservation) {
	conn := db.GetDb()
	var court models.Court
	if err := conn.
		Model(&models.Court{}).
		Where("id = ?", reservation.CourtID).
		First(&court).
		Error; err != nil {
		log.Printf("Could not load court %d for waitlist notify: %s\n", reservation.CourtID, err.Error())
		return
	}
	wl := booking.NewWaitlist(lib.GetRedisClient())
	emails, err := wl.Drain(ctx.Request.Context(), reservation.CourtID, reservation.StartTime)
	if err != nil {
		log.Printf("Error draining waitlist for court %d: %s\n", reservation.CourtID, err.Error())
		return
	}
	for _, email := range emails {
		mailer.NotifySlotFreed(email, court.Name, reservation.StartTime)
	}
}
