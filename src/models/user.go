package models

import "padelbook/src/types"

type User struct {
	ID    uint                 `gorm:"primarykey" json:"id"`
	Name  string               `json:"name,omitempty"`
	Email string               `gorm:"uniqueIndex" json:"email,omitempty"`
	Tier  types.MembershipTier `gorm:"default:'GUEST'" json:"tier,omitempty"`

	types.Timestamps
}
