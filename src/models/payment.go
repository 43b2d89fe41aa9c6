package models

import "padelbook/src/types"

type Payment struct {
	ID            uint                `gorm:"primarykey" json:"id"`
	ReservationID uint                `gorm:"index" json:"reservation_id,omitempty"`
	OrderID       string              `gorm:"uniqueIndex" json:"order_id,omitempty"`
	Amount        int64               `json:"amount,omitempty"`
	Status        types.PaymentStatus `gorm:"default:'PENDING'" json:"status,omitempty"`
	SnapToken     string              `json:"snap_token,omitempty"`

	types.Timestamps
}
