package t2048

// StateType represents the current session state.
type StateType string

const (
	StatePlaying  StateType = "playing"
	StateGameOver StateType = "game_over"
)

// Snapshot captures the complete session state for determinism testing.
type Snapshot struct {
	Grid    Grid
	MaxTile int // Highest tile on board
	State   StateType
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	state := StatePlaying
	if s.over {
		state = StateGameOver
	}

	return Snapshot{
		Grid:    s.grid,
		MaxTile: MaxTile(s.grid),
		State:   state,
	}
}
