package booking

import (
	"errors"
	"fmt"

	"padelbook/src/types"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("court not found")
	ErrUnavailable     = errors.New("court is not active")
	ErrConflict        = errors.New("time range overlaps an existing reservation")

	ErrPromoInvalid   = errors.New("promo code is invalid")
	ErrPromoExpired   = errors.New("promo code has expired")
	ErrPromoExhausted = errors.New("promo code has reached its usage limit")
)

// WindowExceededError reports a booking attempt beyond the actor's tier
// window, carrying the tier and its limit for user-facing messaging.
type WindowExceededError struct {
	Tier      types.MembershipTier
	LimitDays int
}

func (e *WindowExceededError) Error() string {
	return fmt.Sprintf("%s members can only book up to %d days in advance", e.Tier, e.LimitDays)
}
