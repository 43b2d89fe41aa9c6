package config

import (
	"fmt"
	"os"
	"strconv"
)

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := os.Getenv("DATABASE_TIMEZONE")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

const DATE_PARSE_FORMAT = "2006-01-02"

// Operating-day defaults. Courts open and close on the hour; a slot is one
// bookable unit within the operating day.
const (
	DefaultOpenHour    = 8
	DefaultCloseHour   = 22
	DefaultSlotMinutes = 60
)

// AdminFee is a flat per-reservation fee in IDR. It is added after discounts
// and is never discounted itself.
const AdminFee int64 = 5000

// LowWaterMark is the available-slot count below which a day is reported as
// "Limited Slots".
const LowWaterMark = 5

// Reservation duration bounds, in slots.
const (
	MinBookingSlots = 1
	MaxBookingSlots = 4
)

func OpenHour() int {
	return getenvInt("COURT_OPEN_HOUR", DefaultOpenHour)
}

func CloseHour() int {
	return getenvInt("COURT_CLOSE_HOUR", DefaultCloseHour)
}

func SlotMinutes() int {
	return getenvInt("COURT_SLOT_MINUTES", DefaultSlotMinutes)
}

func PendingReservationTTLMinutes() int {
	return getenvInt("PENDING_RESERVATION_TTL_MINUTES", 30)
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
