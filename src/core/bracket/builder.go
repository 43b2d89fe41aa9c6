package bracket

import (
	"context"
	"errors"
	"sort"

	"padelbook/src/models"
	"padelbook/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BracketSize returns the smallest power of two holding n entrants, and the
// number of rounds in the resulting tree.
func BracketSize(n int) (size, rounds int) {
	size = 1
	for size < n {
		size <<= 1
		rounds++
	}
	return size, rounds
}

// BuildTree constructs the full match tree for the given entrants, in memory:
// root first, then children recursively down to the round-1 leaves, each
// child linked to its parent. Leaves are seeded from the entrant list (teamA
// slots across all leaves in position order, then teamB slots), and leaves
// left with only teamA are byes whose winners are propagated upward
// immediately. The caller decides entrant order; seeding follows it as-is.
func BuildTree(tournamentID uint, entrants []uint) ([]*models.Match, error) {
	n := len(entrants)
	if n == 0 {
		return nil, ErrNoEntrants
	}
	if n == 1 {
		// A one-entrant bracket is a single bye: the entrant is champion
		// the moment the bracket exists.
		only := entrants[0]
		return []*models.Match{{
			ID:           uuid.New(),
			TournamentID: tournamentID,
			Round:        1,
			Position:     0,
			TeamAID:      &only,
			WinnerID:     &only,
		}}, nil
	}

	size, rounds := BracketSize(n)

	var matches []*models.Match
	byID := make(map[uuid.UUID]*models.Match)
	var grow func(round, position int, parent *uuid.UUID)
	grow = func(round, position int, parent *uuid.UUID) {
		m := &models.Match{
			ID:           uuid.New(),
			TournamentID: tournamentID,
			Round:        round,
			Position:     position,
			ParentID:     parent,
		}
		matches = append(matches, m)
		byID[m.ID] = m
		if round > 1 {
			grow(round-1, position*2, &m.ID)
			grow(round-1, position*2+1, &m.ID)
		}
	}
	grow(rounds, 0, nil)

	leaves := make([]*models.Match, 0, size/2)
	for _, m := range matches {
		if m.Round == 1 {
			leaves = append(leaves, m)
		}
	}
	sort.Slice(leaves, func(i, j int) bool { return leaves[i].Position < leaves[j].Position })

	for i := range leaves {
		if i < n {
			leaves[i].TeamAID = &entrants[i]
		}
	}
	for j := range leaves {
		k := len(leaves) + j
		if k < n {
			leaves[j].TeamBID = &entrants[k]
		}
	}

	for _, leaf := range leaves {
		if leaf.TeamAID != nil && leaf.TeamBID == nil {
			leaf.WinnerID = leaf.TeamAID
			parent := byID[*leaf.ParentID]
			if err := FillSlot(parent, *leaf.TeamAID); err != nil {
				return nil, err
			}
		}
	}
	return matches, nil
}

type Builder struct {
	db *gorm.DB
}

func NewBuilder(db *gorm.DB) *Builder {
	return &Builder{db: db}
}

// Generate replaces any existing bracket for the tournament with a freshly
// built one. Entrant order determines seeding; an empty list falls back to
// the tournament's registered entrants in registration order.
func (b *Builder) Generate(ctx context.Context, tournamentID uint, entrants []uint) error {
	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tournament models.Tournament
		if err := tx.
			Model(&models.Tournament{}).
			Where("id = ?", tournamentID).
			First(&tournament).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTournamentNotFound
			}
			return err
		}

		if len(entrants) == 0 {
			var registered []models.TournamentEntrant
			if err := tx.
				Model(&models.TournamentEntrant{}).
				Where("tournament_id = ?", tournamentID).
				Order("id asc").
				Find(&registered).
				Error; err != nil {
				return err
			}
			for _, e := range registered {
				entrants = append(entrants, e.UserID)
			}
		}

		matches, err := BuildTree(tournamentID, entrants)
		if err != nil {
			return err
		}

		if err := tx.
			Unscoped().
			Where("tournament_id = ?", tournamentID).
			Delete(&models.Match{}).
			Error; err != nil {
			return err
		}
		if err := tx.Create(&matches).Error; err != nil {
			return err
		}

		// A one-entrant bracket resolves at generation time.
		for _, m := range matches {
			if m.ParentID == nil && m.WinnerID != nil {
				return tx.
					Model(&models.Tournament{}).
					Where("id = ?", tournamentID).
					Updates(map[string]any{
						"status":      types.TOURNAMENT_FINISHED,
						"champion_id": *m.WinnerID,
					}).
					Error
			}
		}
		return tx.
			Model(&models.Tournament{}).
			Where("id = ?", tournamentID).
			Update("status", types.TOURNAMENT_ACTIVE).
			Error
	})
}
