package models

import (
	"padelbook/src/types"
	"time"
)

type Tournament struct {
	ID         uint                   `gorm:"primarykey" json:"id"`
	Name       string                 `json:"name,omitempty"`
	Status     types.TournamentStatus `gorm:"default:'REGISTRATION'" json:"status,omitempty"`
	StartDate  *time.Time             `json:"start_date,omitempty"`
	ChampionID *uint                  `json:"champion_id,omitempty"`

	Champion *User               `gorm:"foreignKey:champion_id" json:"champion,omitempty"`
	Entrants []TournamentEntrant `gorm:"foreignKey:tournament_id" json:"entrants,omitempty"`

	types.Timestamps
}

type TournamentEntrant struct {
	ID           uint `gorm:"primarykey" json:"id"`
	TournamentID uint `gorm:"index" json:"tournament_id,omitempty"`
	UserID       uint `json:"user_id,omitempty"`

	User User `gorm:"foreignKey:user_id" json:"user,omitempty"`

	types.Timestamps
}
