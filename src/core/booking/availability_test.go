package booking

import (
	"context"
	"testing"
	"time"

	"padelbook/src/db"
	"padelbook/src/models"
	"padelbook/src/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reservationAt(date time.Time, fromHour, toHour int) models.Reservation {
	return models.Reservation{
		CourtID:   1,
		StartTime: date.Add(time.Duration(fromHour) * time.Hour),
		EndTime:   date.Add(time.Duration(toHour) * time.Hour),
		Status:    types.RESERVATION_CONFIRMED,
	}
}

func TestMarkAvailability(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	slots := EnumerateSlots(8, 22, 60)

	reservations := []models.Reservation{
		reservationAt(date, 10, 12),
		reservationAt(date, 15, 16),
	}
	marked, status := MarkAvailability(date, slots, 60, reservations, 5)
	require.Len(t, marked, len(slots))
	assert.Equal(t, types.AVAILABILITY_OPEN, status)

	blocked := map[string]bool{"10:00": true, "11:00": true, "15:00": true}
	for _, sa := range marked {
		assert.Equal(t, !blocked[sa.Slot], sa.Available, "slot %s", sa.Slot)
	}

	// A reservation ending at 10:00 leaves the 10:00 slot open.
	marked, _ = MarkAvailability(date, slots, 60, []models.Reservation{reservationAt(date, 8, 10)}, 5)
	for _, sa := range marked {
		if sa.Slot == "10:00" {
			assert.True(t, sa.Available)
		}
	}
}

func TestMarkAvailabilityStatusSummary(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	slots := EnumerateSlots(8, 22, 60)

	_, status := MarkAvailability(date, slots, 60, nil, 5)
	assert.Equal(t, types.AVAILABILITY_OPEN, status)

	// Book out everything but four slots.
	_, status = MarkAvailability(date, slots, 60, []models.Reservation{reservationAt(date, 8, 18)}, 5)
	assert.Equal(t, types.AVAILABILITY_LIMITED, status)

	_, status = MarkAvailability(date, slots, 60, []models.Reservation{reservationAt(date, 8, 22)}, 5)
	assert.Equal(t, types.AVAILABILITY_FULLY_BOOKED, status)
}

func TestMarkAvailabilityIdempotent(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	slots := EnumerateSlots(8, 22, 60)
	reservations := []models.Reservation{reservationAt(date, 9, 11)}

	first, firstStatus := MarkAvailability(date, slots, 60, reservations, 5)
	second, secondStatus := MarkAvailability(date, slots, 60, reservations, 5)
	assert.Equal(t, first, second)
	assert.Equal(t, firstStatus, secondStatus)
}

func TestGetDayAvailabilityBadDate(t *testing.T) {
	gdb, _ := db.NewMockDB()
	svc := NewAvailabilityService(gdb)

	_, err := svc.GetDayAvailability(context.Background(), 1, "not-a-date")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestGetDayAvailabilityCourtNotFound(t *testing.T) {
	gdb, mock := db.NewMockDB()
	svc := NewAvailabilityService(gdb)

	mock.ExpectQuery(`SELECT .* FROM "courts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.GetDayAvailability(context.Background(), 42, "2026-09-01")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
