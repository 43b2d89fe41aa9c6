package models

import (
	"padelbook/src/types"
	"time"
)

type PromoCode struct {
	ID           uint               `gorm:"primarykey" json:"id"`
	Code         string             `gorm:"uniqueIndex" json:"code,omitempty"`
	DiscountType types.DiscountType `json:"discount_type,omitempty"`
	Value        int64              `json:"value,omitempty"`
	Active       bool               `gorm:"default:true" json:"active"`
	ExpiresAt    *time.Time         `json:"expires_at,omitempty"`
	MaxUses      *uint              `json:"max_uses,omitempty"`
	UsedCount    uint               `gorm:"default:0" json:"used_count,omitempty"`

	types.Timestamps
}
