package bracket

import (
	"testing"

	"padelbook/src/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBracketSize(t *testing.T) {
	cases := []struct {
		entrants, size, rounds int
	}{
		{1, 1, 0},
		{2, 2, 1},
		{3, 4, 2},
		{4, 4, 2},
		{5, 8, 3},
		{8, 8, 3},
		{9, 16, 4},
	}
	for _, c := range cases {
		size, rounds := BracketSize(c.entrants)
		assert.Equal(t, c.size, size, "entrants=%d", c.entrants)
		assert.Equal(t, c.rounds, rounds, "entrants=%d", c.entrants)
	}
}

func matchesByRound(matches []*models.Match) map[int][]*models.Match {
	byRound := make(map[int][]*models.Match)
	for _, m := range matches {
		byRound[m.Round] = append(byRound[m.Round], m)
	}
	return byRound
}

func TestBuildTreeNoEntrants(t *testing.T) {
	_, err := BuildTree(1, nil)
	assert.ErrorIs(t, err, ErrNoEntrants)
}

func TestBuildTreeSingleEntrant(t *testing.T) {
	matches, err := BuildTree(1, []uint{42})
	require.NoError(t, err)
	require.Len(t, matches, 1)

	only := matches[0]
	assert.Nil(t, only.ParentID)
	require.NotNil(t, only.TeamAID)
	assert.Equal(t, uint(42), *only.TeamAID)
	require.NotNil(t, only.WinnerID)
	assert.Equal(t, uint(42), *only.WinnerID)
}

func TestBuildTreeShape(t *testing.T) {
	matches, err := BuildTree(1, []uint{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)
	// 8 entrants: 4 + 2 + 1 matches.
	require.Len(t, matches, 7)

	byRound := matchesByRound(matches)
	assert.Len(t, byRound[1], 4)
	assert.Len(t, byRound[2], 2)
	assert.Len(t, byRound[3], 1)

	root := byRound[3][0]
	assert.Nil(t, root.ParentID)

	// Every non-root match points at a parent one round up, and every
	// parent is referenced by exactly two children.
	byID := make(map[uuid.UUID]*models.Match)
	for _, m := range matches {
		byID[m.ID] = m
	}
	children := make(map[uuid.UUID]int)
	for _, m := range matches {
		if m.ParentID == nil {
			continue
		}
		parent, ok := byID[*m.ParentID]
		require.True(t, ok)
		assert.Equal(t, m.Round+1, parent.Round)
		children[parent.ID]++
	}
	for id, count := range children {
		assert.Equal(t, 2, count, "parent %s", id)
	}

	// Full field: no byes, every leaf has both teams, nothing resolved.
	for _, leaf := range byRound[1] {
		assert.NotNil(t, leaf.TeamAID)
		assert.NotNil(t, leaf.TeamBID)
		assert.Nil(t, leaf.WinnerID)
	}
}

func TestBuildTreeSeedingOrder(t *testing.T) {
	matches, err := BuildTree(1, []uint{10, 20, 30, 40, 50, 60})
	require.NoError(t, err)

	byRound := matchesByRound(matches)
	leaves := byRound[1]
	require.Len(t, leaves, 4)

	// teamA fills across leaves in position order first, then teamB.
	teams := make(map[int][2]*uint)
	for _, leaf := range leaves {
		teams[leaf.Position] = [2]*uint{leaf.TeamAID, leaf.TeamBID}
	}
	assert.Equal(t, uint(10), *teams[0][0])
	assert.Equal(t, uint(20), *teams[1][0])
	assert.Equal(t, uint(30), *teams[2][0])
	assert.Equal(t, uint(40), *teams[3][0])
	assert.Equal(t, uint(50), *teams[0][1])
	assert.Equal(t, uint(60), *teams[1][1])
	assert.Nil(t, teams[2][1])
	assert.Nil(t, teams[3][1])
}

func TestBuildTreeFiveEntrantsByes(t *testing.T) {
	matches, err := BuildTree(1, []uint{1, 2, 3, 4, 5})
	require.NoError(t, err)
	require.Len(t, matches, 7)

	byRound := matchesByRound(matches)
	leaves := byRound[1]
	require.Len(t, leaves, 4)

	// size=8, byeCount=3: three leaves hold a single team and are already
	// resolved in that team's favor.
	byes := 0
	for _, leaf := range leaves {
		if leaf.TeamBID == nil {
			byes++
			require.NotNil(t, leaf.TeamAID)
			require.NotNil(t, leaf.WinnerID)
			assert.Equal(t, *leaf.TeamAID, *leaf.WinnerID)
		} else {
			assert.Nil(t, leaf.WinnerID)
		}
	}
	assert.Equal(t, 3, byes)

	// Bye winners propagate up: one semifinal is fully fed (two byes),
	// the other holds exactly one team while the real match plays out.
	semis := byRound[2]
	require.Len(t, semis, 2)
	partial, full := 0, 0
	for _, semi := range semis {
		a, b := semi.TeamAID != nil, semi.TeamBID != nil
		switch {
		case a && b:
			full++
		case a || b:
			partial++
		}
		assert.Nil(t, semi.WinnerID)
	}
	assert.Equal(t, 1, partial)
	assert.Equal(t, 1, full)

	// The final stays open.
	root := byRound[3][0]
	assert.Nil(t, root.TeamAID)
	assert.Nil(t, root.TeamBID)
}
