package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"time"

	"padelbook/src/config"
	"padelbook/src/models"
	"padelbook/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateReservationInput struct {
	CourtID   uint
	UserID    uint
	Tier      types.MembershipTier
	Date      time.Time
	Slots     []string
	PromoCode string
}

type ReservationWriter struct {
	db  *gorm.DB
	now func() time.Time
}

func NewReservationWriter(db *gorm.DB) *ReservationWriter {
	return &ReservationWriter{db: db, now: time.Now}
}

func (w *ReservationWriter) validate(in CreateReservationInput) (time.Time, time.Time, error) {
	if len(in.Slots) < config.MinBookingSlots || len(in.Slots) > config.MaxBookingSlots {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: reservation must cover %d to %d slots", ErrInvalidArgument, config.MinBookingSlots, config.MaxBookingSlots)
	}
	operating := EnumerateSlots(config.OpenHour(), config.CloseHour(), config.SlotMinutes())
	for _, label := range in.Slots {
		if !slices.Contains(operating, label) {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: slot %q is outside operating hours", ErrInvalidArgument, label)
		}
	}
	contiguous, err := ContiguousSlots(in.Slots, config.SlotMinutes())
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !contiguous {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: slots must be contiguous", ErrInvalidArgument)
	}
	start, end, err := SlotsToTimeRange(in.Date, in.Slots, config.SlotMinutes())
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	now := w.now()
	if start.Before(now) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start time is in the past", ErrInvalidArgument)
	}
	if err := ValidateBookingWindow(in.Tier, start, now); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// Create conflict-checks and inserts a reservation plus its pending payment
// record in one transaction. Candidate overlapping rows are locked for the
// duration of the check so two concurrent callers cannot both pass it.
func (w *ReservationWriter) Create(ctx context.Context, in CreateReservationInput) (*models.Reservation, error) {
	start, end, err := w.validate(in)
	if err != nil {
		return nil, err
	}

	var reservation models.Reservation
	err = w.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var court models.Court
		if err := tx.
			Model(&models.Court{}).
			Where("id = ?", in.CourtID).
			First(&court).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if !court.Active {
			return ErrUnavailable
		}

		var promo *models.PromoCode
		if in.PromoCode != "" {
			var p models.PromoCode
			// Locked so two concurrent creates serialize on the use cap.
			if err := tx.
				Model(&models.PromoCode{}).
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("code = ?", in.PromoCode).
				First(&p).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrPromoInvalid
				}
				return err
			}
			promo = &p
		}

		var existing models.Reservation
		err := tx.
			Model(&models.Reservation{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("court_id = ? AND status IN ?", in.CourtID, BlockingStatuses).
			Where("start_time < ? AND end_time > ?", end, start).
			Take(&existing).
			Error
		if err == nil {
			return ErrConflict
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		quote, err := CalculatePrice(&court, in.Slots, in.Tier, promo, w.now())
		if err != nil {
			return err
		}

		reservation = models.Reservation{
			CourtID:    in.CourtID,
			UserID:     in.UserID,
			StartTime:  start,
			EndTime:    end,
			Status:     types.RESERVATION_PENDING,
			TotalPrice: quote.TotalPrice,
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return err
		}

		payment := models.Payment{
			ReservationID: reservation.ID,
			OrderID:       uuid.NewString(),
			Amount:        quote.TotalPrice,
			Status:        types.PAYMENT_PENDING,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		reservation.Payment = &payment

		if promo != nil {
			// The cap is re-checked in SQL: an increment that would exceed
			// max_uses matches no row and the whole reservation rolls back.
			res := tx.
				Model(&models.PromoCode{}).
				Where("id = ?", promo.ID).
				Where("max_uses IS NULL OR used_count < max_uses").
				UpdateColumn("used_count", gorm.Expr("used_count + ?", 1))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrPromoExhausted
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// Cancel transitions a reservation to CANCELLED. The caller is expected to
// notify waitlisted actors afterwards; that notification is deliberately not
// part of this transaction.
func (w *ReservationWriter) Cancel(ctx context.Context, reservationID uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := w.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Model(&models.Reservation{}).
			Where("id = ?", reservationID).
			First(&reservation).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if reservation.Status != types.RESERVATION_PENDING && reservation.Status != types.RESERVATION_CONFIRMED {
			return fmt.Errorf("%w: reservation %d is already %s", ErrInvalidArgument, reservationID, reservation.Status)
		}
		return w.transition(tx, &reservation, types.RESERVATION_CANCELED)
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// ConfirmPayment applies a verified gateway status to the payment record and
// moves the reservation forward: SUCCESS confirms it, FAILED cancels it via
// the same transition path as an explicit cancellation. PENDING is a no-op.
func (w *ReservationWriter) ConfirmPayment(ctx context.Context, orderID string, status types.PaymentStatus) error {
	return w.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var payment models.Payment
		if err := tx.
			Model(&models.Payment{}).
			Where("order_id = ?", orderID).
			First(&payment).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if payment.Status == status {
			return nil
		}
		// SUCCESS and FAILED are terminal; a replayed or out-of-order
		// notification cannot move a settled payment.
		if payment.Status != types.PAYMENT_PENDING {
			return fmt.Errorf("%w: payment %s is already %s", ErrInvalidArgument, orderID, payment.Status)
		}
		if err := tx.
			Model(&models.Payment{}).
			Where("id = ?", payment.ID).
			Update("status", status).
			Error; err != nil {
			return err
		}

		var reservation models.Reservation
		if err := tx.
			Model(&models.Reservation{}).
			Where("id = ?", payment.ReservationID).
			First(&reservation).
			Error; err != nil {
			return err
		}
		switch status {
		case types.PAYMENT_SUCCESS:
			return w.transition(tx, &reservation, types.RESERVATION_CONFIRMED)
		case types.PAYMENT_FAILED:
			return w.transition(tx, &reservation, types.RESERVATION_CANCELED)
		}
		return nil
	})
}

func (w *ReservationWriter) transition(tx *gorm.DB, reservation *models.Reservation, to types.ReservationStatus) error {
	if err := tx.
		Model(&models.Reservation{}).
		Where("id = ?", reservation.ID).
		Update("status", to).
		Error; err != nil {
		log.Printf("Could not transition reservation %d to %s: %s\n", reservation.ID, to, err.Error())
		return err
	}
	reservation.Status = to
	return nil
}
