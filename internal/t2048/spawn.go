package t2048

import "math/rand"

// spawnFourProb is the probability that a spawned tile is a 4 instead of a 2.
const spawnFourProb = 0.10

// Spawner places new tiles into random empty cells. The random source is
// injected so tests can replay exact spawn sequences from a fixed seed.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner backed by the given random source.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// Spawn places a 2 (90%) or 4 (10%) into a uniformly random empty cell,
// mutating the grid. On a full grid it does nothing and reports ok=false;
// a full grid is not an error. Never overwrites a non-zero cell.
func (s *Spawner) Spawn(g *Grid) (Cell, bool) {
	empty := EmptyCells(*g)
	if len(empty) == 0 {
		return Cell{}, false
	}

	cell := empty[s.rng.Intn(len(empty))]

	value := 2
	if s.rng.Float64() < spawnFourProb {
		value = 4
	}

	g[cell.Y][cell.X] = value
	return cell, true
}
