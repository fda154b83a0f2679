// Package t2048 implements the 2048 sliding-tile rule engine: directional
// grid moves with single-merge-per-cell semantics, terminal-state detection
// and randomized tile spawning.
package t2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// step returns the unit vector pointing toward the direction's target edge.
func (d Direction) step() (dy, dx int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	default: // DirRight
		return 0, 1
	}
}

// Size is the board dimension.
const Size = 4

// Grid represents the 4x4 game board. 0 is an empty cell; every non-zero
// cell holds a power of two no smaller than 2.
type Grid [Size][Size]int

// Cell is a board coordinate.
type Cell struct {
	X, Y int
}

// sourceCell maps a lane and a distance from the target edge to grid
// coordinates. A lane indexes the rows or columns perpendicular to the slide
// axis; dist 0 is the cell on the target edge itself. Iterating dist in
// ascending order visits tiles nearest the edge first, so each tile settles
// before tiles behind it are considered.
func sourceCell(d Direction, lane, dist int) (y, x int) {
	switch d {
	case DirUp:
		return dist, lane
	case DirDown:
		return Size - 1 - dist, lane
	case DirLeft:
		return lane, dist
	default: // DirRight
		return lane, Size - 1 - dist
	}
}

// Move slides all tiles toward the given edge, merging equal neighbors.
// The grid is mutated in place. Each destination cell absorbs at most one
// merge per call, tracked by a call-local matrix, so a tile's value is
// either unchanged or exactly doubled. Returns true iff any cell changed.
func (g *Grid) Move(dir Direction) bool {
	dy, dx := dir.step()
	var merged [Size][Size]bool
	moved := false

	for lane := 0; lane < Size; lane++ {
		// dist 0 already rests on the target edge and cannot advance.
		for dist := 1; dist < Size; dist++ {
			y, x := sourceCell(dir, lane, dist)
			if g[y][x] == 0 {
				continue
			}

			// Advance this tile one step at a time until it hits the
			// edge, merges, or is blocked.
			for {
				ny, nx := y+dy, x+dx
				if ny < 0 || ny >= Size || nx < 0 || nx >= Size {
					break
				}

				if g[ny][nx] == 0 {
					g[ny][nx] = g[y][x]
					g[y][x] = 0
					y, x = ny, nx
					moved = true
					continue
				}

				if g[ny][nx] == g[y][x] && !merged[ny][nx] {
					g[ny][nx] *= 2
					g[y][x] = 0
					merged[ny][nx] = true
					moved = true
				}
				break
			}
		}
	}

	return moved
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(g Grid) []Cell {
	var cells []Cell
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if g[y][x] == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(g Grid) bool {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if g[y][x] == 0 {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(g Grid) int {
	maxVal := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if g[y][x] > maxVal {
				maxVal = g[y][x]
			}
		}
	}
	return maxVal
}

// TileSum returns the sum of all tile values on the board.
func TileSum(g Grid) int {
	sum := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			sum += g[y][x]
		}
	}
	return sum
}

// HasMovesAvailable returns true if any move can change the board: some
// cell is empty, or some cell equals its right or below neighbor. Checking
// only those two neighbors covers every adjacency exactly once. Scans in
// row-major order and exits on the first hit.
func HasMovesAvailable(g Grid) bool {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if g[y][x] == 0 {
				return true
			}
			if x < Size-1 && g[y][x+1] == g[y][x] {
				return true
			}
			if y < Size-1 && g[y+1][x] == g[y][x] {
				return true
			}
		}
	}
	return false
}

// IsGameOver returns true if no moves are possible.
func IsGameOver(g Grid) bool {
	return !HasMovesAvailable(g)
}
