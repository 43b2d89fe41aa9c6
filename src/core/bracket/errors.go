package bracket

import "errors"

var (
	ErrNoEntrants         = errors.New("a bracket needs at least one entrant")
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrMatchNotFound      = errors.New("match not found")
	ErrInvalidWinner      = errors.New("winner must be one of the match's teams")
	ErrMatchDecided       = errors.New("match result is already recorded")

	// ErrBracketCorrupted signals an inconsistent tree, e.g. a parent match
	// whose slots are already both filled. A bug signal, never swallowed.
	ErrBracketCorrupted = errors.New("bracket state is corrupted")
)
