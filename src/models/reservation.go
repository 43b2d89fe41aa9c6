package models

import (
	"padelbook/src/types"
	"time"
)

// Reservation holds a court for [StartTime, EndTime). End is exclusive: a
// reservation ending at 10:00 does not conflict with one starting at 10:00.
type Reservation struct {
	ID         uint                    `gorm:"primarykey" json:"id"`
	CourtID    uint                    `gorm:"index" json:"court_id,omitempty"`
	UserID     uint                    `gorm:"index" json:"user_id,omitempty"`
	StartTime  time.Time               `gorm:"index" json:"start_time,omitempty"`
	EndTime    time.Time               `gorm:"index" json:"end_time,omitempty"`
	Status     types.ReservationStatus `gorm:"index;default:'PENDING'" json:"status,omitempty"`
	TotalPrice int64                   `json:"total_price,omitempty"`

	Court   *Court   `gorm:"foreignKey:court_id" json:"court,omitempty"`
	User    *User    `gorm:"foreignKey:user_id" json:"user,omitempty"`
	Payment *Payment `json:"payment,omitempty"`

	types.Timestamps
}
