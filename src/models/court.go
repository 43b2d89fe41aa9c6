package models

import "padelbook/src/types"

type Court struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	Name        string  `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	HourlyPrice int64   `json:"hourly_price,omitempty"`
	Active      bool    `gorm:"default:true" json:"active"`

	types.Timestamps
}
