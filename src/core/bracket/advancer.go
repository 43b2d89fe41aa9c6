package bracket

import (
	"context"
	"errors"
	"fmt"
	"log"

	"padelbook/src/models"
	"padelbook/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FillSlot puts the advancing team into the parent match's first open slot.
// Each parent is fed exactly once per child, so both slots already being
// full means the tree is corrupted; nothing is overwritten in that case.
func FillSlot(parent *models.Match, teamID uint) error {
	if parent == nil {
		return fmt.Errorf("%w: parent match is missing", ErrBracketCorrupted)
	}
	if parent.TeamAID == nil {
		parent.TeamAID = &teamID
		return nil
	}
	if parent.TeamBID == nil {
		parent.TeamBID = &teamID
		return nil
	}
	return fmt.Errorf("%w: both slots of match %s round %d are already filled", ErrBracketCorrupted, parent.ID, parent.Round)
}

type Advancer struct {
	db *gorm.DB
}

func NewAdvancer(db *gorm.DB) *Advancer {
	return &Advancer{db: db}
}

// AdvanceWinner records a match result and propagates the winner into the
// parent match, or finishes the tournament when the match was the final.
func (a *Advancer) AdvanceWinner(ctx context.Context, matchID uuid.UUID, winnerID uint, score string) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var match models.Match
		if err := tx.
			Model(&models.Match{}).
			Where("id = ?", matchID).
			First(&match).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMatchNotFound
			}
			return err
		}

		if match.WinnerID != nil {
			if *match.WinnerID == winnerID {
				// Duplicate submission of the same result; the winner was
				// already propagated, do nothing.
				return nil
			}
			return fmt.Errorf("%w: match %s already went to team %d", ErrMatchDecided, match.ID, *match.WinnerID)
		}

		isTeam := (match.TeamAID != nil && *match.TeamAID == winnerID) ||
			(match.TeamBID != nil && *match.TeamBID == winnerID)
		if !isTeam {
			return ErrInvalidWinner
		}

		updates := map[string]any{"winner_id": winnerID}
		if score != "" {
			updates["score"] = score
		}
		if err := tx.
			Model(&models.Match{}).
			Where("id = ?", matchID).
			Updates(updates).
			Error; err != nil {
			return err
		}

		if match.ParentID == nil {
			// The final: crown the champion, nothing left to propagate.
			return tx.
				Model(&models.Tournament{}).
				Where("id = ?", match.TournamentID).
				Updates(map[string]any{
					"status":      types.TOURNAMENT_FINISHED,
					"champion_id": winnerID,
				}).
				Error
		}

		// Locked so sibling matches advanced concurrently fill distinct slots.
		var parent models.Match
		if err := tx.
			Model(&models.Match{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", *match.ParentID).
			First(&parent).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("Bracket corrupted: match %s points at missing parent %s\n", match.ID, *match.ParentID)
				return fmt.Errorf("%w: parent match %s not found", ErrBracketCorrupted, *match.ParentID)
			}
			return err
		}
		if err := FillSlot(&parent, winnerID); err != nil {
			log.Printf("Bracket corrupted while advancing match %s: %s\n", match.ID, err.Error())
			return err
		}
		return tx.
			Model(&models.Match{}).
			Where("id = ?", parent.ID).
			Updates(map[string]any{
				"team_a_id": parent.TeamAID,
				"team_b_id": parent.TeamBID,
			}).
			Error
	})
}
