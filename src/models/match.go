package models

import (
	"padelbook/src/types"

	"github.com/google/uuid"
)

// Match is one node of a single-elimination tree. Leaves carry Round 1,
// the final carries the highest round and a nil ParentID. TeamA/TeamB stay
// nil until seeded or propagated from a finished child match.
type Match struct {
	ID           uuid.UUID  `gorm:"primarykey;type:uuid" json:"id"`
	TournamentID uint       `gorm:"index" json:"tournament_id,omitempty"`
	Round        int        `json:"round"`
	Position     int        `json:"position"`
	TeamAID      *uint      `json:"team_a_id,omitempty"`
	TeamBID      *uint      `json:"team_b_id,omitempty"`
	WinnerID     *uint      `json:"winner_id,omitempty"`
	Score        string     `json:"score,omitempty"`
	ParentID     *uuid.UUID `gorm:"type:uuid;index" json:"parent_id,omitempty"`

	types.Timestamps
}
