package t2048

import "math/rand"

// Session owns one game: the grid, its spawner and the terminal flag.
// It enforces the turn sequence: move, then spawn on success, then run the
// game-over check only once the grid is full.
type Session struct {
	grid    Grid
	spawner *Spawner
	over    bool
}

// NewSession starts a game with two spawned tiles on an empty grid.
// The seed drives every spawn; equal seeds produce identical games.
func NewSession(seed int64) *Session {
	s := &Session{
		spawner: NewSpawner(rand.New(rand.NewSource(seed))),
	}
	s.spawnInitial()
	return s
}

// spawnInitial places the two starting tiles.
func (s *Session) spawnInitial() {
	s.spawner.Spawn(&s.grid)
	s.spawner.Spawn(&s.grid)
}

// Grid returns a copy of the current board.
func (s *Session) Grid() Grid {
	return s.grid
}

// Over returns true once no further moves are possible.
func (s *Session) Over() bool {
	return s.over
}

// Move applies one turn in the given direction and reports whether the
// board changed. When nothing moved, no tile is spawned. After a
// successful move a tile is spawned, and only if the grid is then full is
// the game-over detector consulted; a detected dead board latches Over.
// Moving on a finished session is a no-op returning false.
func (s *Session) Move(dir Direction) bool {
	if s.over {
		return false
	}

	if !s.grid.Move(dir) {
		return false
	}

	s.spawner.Spawn(&s.grid)

	// With an empty cell left the game cannot be over; skip the scan.
	if !HasEmptyCell(s.grid) && IsGameOver(s.grid) {
		s.over = true
	}

	return true
}

// Restart replaces the board with a fresh two-tile grid and clears the
// terminal flag. The spawner (and its seed sequence) carries over.
func (s *Session) Restart() {
	s.grid = Grid{}
	s.over = false
	s.spawnInitial()
}
