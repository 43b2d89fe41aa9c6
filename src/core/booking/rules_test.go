package booking

import (
	"testing"
	"time"

	"padelbook/src/models"
	"padelbook/src/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var padelCourt = &models.Court{ID: 1, Name: "Court A", HourlyPrice: 150000, Active: true}

func TestValidateBookingWindow(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	inDays := func(d int) time.Time { return now.AddDate(0, 0, d) }

	// GUEST is capped at 3 days; a date 5 days out is rejected with the
	// tier and limit attached, while PRO (7 days) passes.
	err := ValidateBookingWindow(types.TIER_GUEST, inDays(5), now)
	var windowErr *WindowExceededError
	require.ErrorAs(t, err, &windowErr)
	assert.Equal(t, types.TIER_GUEST, windowErr.Tier)
	assert.Equal(t, 3, windowErr.LimitDays)

	assert.NoError(t, ValidateBookingWindow(types.TIER_PRO, inDays(5), now))
	assert.NoError(t, ValidateBookingWindow(types.TIER_GUEST, inDays(3), now))
	assert.Error(t, ValidateBookingWindow(types.TIER_GUEST, inDays(4), now))
	assert.Error(t, ValidateBookingWindow(types.TIER_PRO, inDays(8), now))
	assert.NoError(t, ValidateBookingWindow(types.TIER_EXCLUSIVE, inDays(14), now))
	assert.Error(t, ValidateBookingWindow(types.TIER_EXCLUSIVE, inDays(15), now))

	// Same-day and past dates are inside every window; the writer rejects
	// past starts separately.
	assert.NoError(t, ValidateBookingWindow(types.TIER_GUEST, now, now))
}

func TestCalculatePriceGuest(t *testing.T) {
	quote, err := CalculatePrice(padelCourt, []string{"10:00", "11:00"}, types.TIER_GUEST, nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(300000), quote.BasePrice)
	assert.Equal(t, int64(0), quote.Discount)
	assert.Equal(t, "", quote.DiscountSource)
	assert.Equal(t, int64(5000), quote.AdminFee)
	assert.Equal(t, int64(305000), quote.TotalPrice)
}

func TestCalculatePricePro(t *testing.T) {
	quote, err := CalculatePrice(padelCourt, []string{"10:00", "11:00"}, types.TIER_PRO, nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(300000), quote.BasePrice)
	assert.Equal(t, int64(30000), quote.Discount)
	assert.Equal(t, "Pro Membership", quote.DiscountSource)
	assert.Equal(t, int64(275000), quote.TotalPrice)
}

func TestCalculatePriceExclusiveNeverBelowAdminFee(t *testing.T) {
	quote, err := CalculatePrice(padelCourt, []string{"10:00"}, types.TIER_EXCLUSIVE, nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(150000), quote.Discount)
	// Full waiver still pays the admin fee.
	assert.Equal(t, int64(5000), quote.TotalPrice)
}

func TestCalculatePricePromo(t *testing.T) {
	now := time.Now()

	percent := &models.PromoCode{Code: "OPENING10", DiscountType: types.DISCOUNT_PERCENTAGE, Value: 10, Active: true}
	quote, err := CalculatePrice(padelCourt, []string{"10:00", "11:00"}, types.TIER_GUEST, percent, now)
	require.NoError(t, err)
	assert.Equal(t, int64(30000), quote.Discount)
	assert.Equal(t, "Promo Code", quote.DiscountSource)
	assert.Equal(t, int64(275000), quote.TotalPrice)

	fixed := &models.PromoCode{Code: "CUT50K", DiscountType: types.DISCOUNT_FIXED, Value: 50000, Active: true}
	quote, err = CalculatePrice(padelCourt, []string{"10:00", "11:00"}, types.TIER_PRO, fixed, now)
	require.NoError(t, err)
	// Tier and promo discounts stack.
	assert.Equal(t, int64(80000), quote.Discount)
	assert.Equal(t, "Pro Membership + Promo Code", quote.DiscountSource)
	assert.Equal(t, int64(225000), quote.TotalPrice)

	// An oversized fixed discount clamps at the admin fee, never negative.
	huge := &models.PromoCode{Code: "BIG", DiscountType: types.DISCOUNT_FIXED, Value: 10000000, Active: true}
	quote, err = CalculatePrice(padelCourt, []string{"10:00"}, types.TIER_GUEST, huge, now)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), quote.TotalPrice)
}

func TestValidatePromo(t *testing.T) {
	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)
	maxUses := uint(100)

	assert.NoError(t, ValidatePromo(nil, now))
	assert.NoError(t, ValidatePromo(&models.PromoCode{Active: true, ExpiresAt: &tomorrow}, now))

	assert.ErrorIs(t, ValidatePromo(&models.PromoCode{Active: false}, now), ErrPromoInvalid)
	assert.ErrorIs(t, ValidatePromo(&models.PromoCode{Active: true, ExpiresAt: &yesterday}, now), ErrPromoExpired)
	assert.ErrorIs(t, ValidatePromo(&models.PromoCode{Active: true, MaxUses: &maxUses, UsedCount: 100}, now), ErrPromoExhausted)

	quote, err := CalculatePrice(padelCourt, []string{"10:00"}, types.TIER_GUEST, &models.PromoCode{Active: false}, now)
	assert.Nil(t, quote)
	assert.ErrorIs(t, err, ErrPromoInvalid)
}
