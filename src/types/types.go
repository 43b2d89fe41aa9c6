package types

import (
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type ReservationStatus string

const (
	RESERVATION_PENDING   ReservationStatus = "PENDING"
	RESERVATION_CONFIRMED ReservationStatus = "CONFIRMED"
	RESERVATION_CANCELED  ReservationStatus = "CANCELLED"
	RESERVATION_COMPLETED ReservationStatus = "COMPLETED"
	RESERVATION_NO_SHOW   ReservationStatus = "NO_SHOW"
)

type PaymentStatus string

const (
	PAYMENT_PENDING PaymentStatus = "PENDING"
	PAYMENT_SUCCESS PaymentStatus = "SUCCESS"
	PAYMENT_FAILED  PaymentStatus = "FAILED"
)

type MembershipTier string

const (
	TIER_GUEST     MembershipTier = "GUEST"
	TIER_PRO       MembershipTier = "PRO"
	TIER_EXCLUSIVE MembershipTier = "EXCLUSIVE"
)

type DiscountType string

const (
	DISCOUNT_PERCENTAGE DiscountType = "PERCENTAGE"
	DISCOUNT_FIXED      DiscountType = "FIXED"
)

type TournamentStatus string

const (
	TOURNAMENT_REGISTRATION TournamentStatus = "REGISTRATION"
	TOURNAMENT_ACTIVE       TournamentStatus = "ACTIVE"
	TOURNAMENT_FINISHED     TournamentStatus = "FINISHED"
)

type AvailabilityStatus string

const (
	AVAILABILITY_OPEN         AvailabilityStatus = "Available"
	AVAILABILITY_LIMITED      AvailabilityStatus = "Limited Slots"
	AVAILABILITY_FULLY_BOOKED AvailabilityStatus = "Fully Booked"
)

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type CreateReservationRequestBody struct {
	CourtID   uint     `json:"court_id" binding:"required"`
	UserID    uint     `json:"user_id" binding:"required"`
	Date      string   `json:"date" binding:"required,bookabledate"`
	Slots     []string `json:"slots" binding:"required,min=1"`
	PromoCode string   `json:"promo_code,omitempty"`
}

type JoinWaitlistRequestBody struct {
	CourtID uint   `json:"court_id" binding:"required"`
	Date    string `json:"date" binding:"required,bookabledate"`
	Slot    string `json:"slot" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
}

type CreateTournamentRequestBody struct {
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"start_date,omitempty" binding:"omitempty,bookabledate"`
}

type RegisterEntrantRequestBody struct {
	UserID uint `json:"user_id" binding:"required"`
}

type GenerateBracketRequestBody struct {
	// Entrant ids in seeding order. Empty means "use registered entrants in
	// registration order".
	Entrants []uint `json:"entrants,omitempty"`
}

type AdvanceWinnerRequestBody struct {
	WinnerID uint   `json:"winner_id" binding:"required"`
	Score    string `json:"score,omitempty"`
}

type MidtransNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
}
