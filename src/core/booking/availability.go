package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"padelbook/src/config"
	"padelbook/src/models"
	"padelbook/src/types"

	"gorm.io/gorm"
)

type SlotAvailability struct {
	Slot      string `json:"slot"`
	Available bool   `json:"available"`
}

type DayAvailability struct {
	CourtID uint                     `json:"court_id"`
	Date    string                   `json:"date"`
	Slots   []SlotAvailability       `json:"slots"`
	Status  types.AvailabilityStatus `json:"status"`
}

// MarkAvailability marks every enumerated slot that falls inside any of the
// given reservations as unavailable. Pure; reservations are expected to be
// pre-filtered to blocking statuses.
func MarkAvailability(date time.Time, slots []string, slotMinutes int, reservations []models.Reservation, lowWaterMark int) ([]SlotAvailability, types.AvailabilityStatus) {
	marked := make([]SlotAvailability, 0, len(slots))
	available := 0
	for _, label := range slots {
		m, err := parseSlotLabel(label)
		if err != nil {
			continue
		}
		day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		slotStart := day.Add(time.Duration(m) * time.Minute)
		slotEnd := slotStart.Add(time.Duration(slotMinutes) * time.Minute)
		open := true
		for _, r := range reservations {
			if Overlaps(slotStart, slotEnd, r.StartTime, r.EndTime) {
				open = false
				break
			}
		}
		if open {
			available++
		}
		marked = append(marked, SlotAvailability{Slot: label, Available: open})
	}
	status := types.AVAILABILITY_OPEN
	if available == 0 {
		status = types.AVAILABILITY_FULLY_BOOKED
	} else if available < lowWaterMark {
		status = types.AVAILABILITY_LIMITED
	}
	return marked, status
}

// BlockingStatuses are the reservation statuses that hold a slot.
var BlockingStatuses = []types.ReservationStatus{
	types.RESERVATION_PENDING,
	types.RESERVATION_CONFIRMED,
}

type AvailabilityService struct {
	db *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{db: db}
}

// GetDayAvailability computes per-slot availability for one court over one
// calendar day. Read-only and idempotent.
func (s *AvailabilityService) GetDayAvailability(ctx context.Context, courtID uint, dateStr string) (*DayAvailability, error) {
	date, err := time.ParseInLocation(config.DATE_PARSE_FORMAT, dateStr, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: bad date %q", ErrInvalidArgument, dateStr)
	}

	var court models.Court
	if err := s.db.WithContext(ctx).
		Model(&models.Court{}).
		Where("id = ?", courtID).
		First(&court).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	dayStart := date
	dayEnd := date.Add(24 * time.Hour)
	var reservations []models.Reservation
	if err := s.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("court_id = ? AND status IN ?", courtID, BlockingStatuses).
		Where("start_time < ? AND end_time > ?", dayEnd, dayStart).
		Find(&reservations).
		Error; err != nil {
		return nil, err
	}

	slots := EnumerateSlots(config.OpenHour(), config.CloseHour(), config.SlotMinutes())
	marked, status := MarkAvailability(date, slots, config.SlotMinutes(), reservations, config.LowWaterMark)
	return &DayAvailability{
		CourtID: courtID,
		Date:    dateStr,
		Slots:   marked,
		Status:  status,
	}, nil
}
