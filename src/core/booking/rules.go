package booking

import (
	"math"
	"strings"
	"time"

	"padelbook/src/config"
	"padelbook/src/models"
	"padelbook/src/types"
)

// TierWindowDays is how far ahead each membership tier may reserve. Higher
// tiers get priority access further out.
var TierWindowDays = map[types.MembershipTier]int{
	types.TIER_GUEST:     3,
	types.TIER_PRO:       7,
	types.TIER_EXCLUSIVE: 14,
}

// TierDiscountPercent is each tier's discount on the base price. EXCLUSIVE
// members play on a full waiver.
var TierDiscountPercent = map[types.MembershipTier]int64{
	types.TIER_GUEST:     0,
	types.TIER_PRO:       10,
	types.TIER_EXCLUSIVE: 100,
}

// ValidateBookingWindow checks that the target date is within the tier's
// window, counted in whole days from today.
func ValidateBookingWindow(tier types.MembershipTier, target, now time.Time) error {
	limit, ok := TierWindowDays[tier]
	if !ok {
		limit = TierWindowDays[types.TIER_GUEST]
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	targetDay := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, target.Location())
	days := int(math.Ceil(targetDay.Sub(today).Hours() / 24))
	if days > limit {
		return &WindowExceededError{Tier: tier, LimitDays: limit}
	}
	return nil
}

type Quote struct {
	BasePrice      int64  `json:"base_price"`
	Discount       int64  `json:"discount"`
	DiscountSource string `json:"discount_source,omitempty"`
	AdminFee       int64  `json:"admin_fee"`
	TotalPrice     int64  `json:"total_price"`
}

// ValidatePromo checks a fetched promo code against its activity window and
// use cap. A nil promo passes (no code supplied).
func ValidatePromo(promo *models.PromoCode, now time.Time) error {
	if promo == nil {
		return nil
	}
	if !promo.Active {
		return ErrPromoInvalid
	}
	if promo.ExpiresAt != nil && now.After(*promo.ExpiresAt) {
		return ErrPromoExpired
	}
	if promo.MaxUses != nil && promo.UsedCount >= *promo.MaxUses {
		return ErrPromoExhausted
	}
	return nil
}

// CalculatePrice prices a slot selection for a court: base price by slot
// count, tier discount, optional promo discount, then the flat admin fee.
// The discounted base is clamped at zero before the fee is added, so a
// discount can never eat the fee and the total is never negative.
func CalculatePrice(court *models.Court, slots []string, tier types.MembershipTier, promo *models.PromoCode, now time.Time) (*Quote, error) {
	if err := ValidatePromo(promo, now); err != nil {
		return nil, err
	}

	basePrice := court.HourlyPrice * int64(len(slots))
	var discount int64
	var sources []string

	switch tier {
	case types.TIER_PRO:
		discount += basePrice * TierDiscountPercent[types.TIER_PRO] / 100
		sources = append(sources, "Pro Membership")
	case types.TIER_EXCLUSIVE:
		discount += basePrice * TierDiscountPercent[types.TIER_EXCLUSIVE] / 100
		sources = append(sources, "Exclusive Membership")
	}

	if promo != nil {
		switch promo.DiscountType {
		case types.DISCOUNT_PERCENTAGE:
			discount += basePrice * promo.Value / 100
		case types.DISCOUNT_FIXED:
			discount += promo.Value
		}
		sources = append(sources, "Promo Code")
	}

	discounted := basePrice - discount
	if discounted < 0 {
		discounted = 0
	}
	return &Quote{
		BasePrice:      basePrice,
		Discount:       discount,
		DiscountSource: strings.Join(sources, " + "),
		AdminFee:       config.AdminFee,
		TotalPrice:     discounted + config.AdminFee,
	}, nil
}
