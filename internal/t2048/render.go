package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/term2048/internal/core"
)

const (
	cellWidth  = 5 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)

	// Minimum terminal size: board (21 wide, 9 tall) + HUD.
	MinScreenW = 25
	MinScreenH = 12
)

// Palette maps a tile value to its display color.
type Palette func(value int) core.Color

// Render draws the session state to the screen.
func (s *Session) Render(dst *core.Screen, pal Palette) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		renderTooSmall(dst)
		return
	}

	boardW := Size*cellWidth + 1  // +1 for right border
	boardH := Size*cellHeight + 1 // +1 for bottom border
	hudHeight := 2

	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight + 1

	s.renderHUD(dst, boardX, boardW)
	s.renderBoard(dst, boardX, boardY, pal)

	if s.over {
		centerX := boardX + boardW/2
		centerY := boardY + boardH/2
		maxStr := fmt.Sprintf("Max tile: %d", MaxTile(s.grid))
		drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
	}
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title and max-tile info above the board.
func (s *Session) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	titleX := boardX + (boardW-len(title))/2
	dst.DrawText(titleX, 0, title)

	infoStr := fmt.Sprintf("Max: %d", MaxTile(s.grid))
	infoX := boardX + boardW - len(infoStr)
	if infoX < boardX {
		infoX = boardX
	}
	dst.DrawText(infoX, 1, infoStr)
}

// renderBoard draws the 4x4 grid with tiles.
func (s *Session) renderBoard(dst *core.Screen, boardX, boardY int, pal Palette) {
	// Draw grid borders
	for y := 0; y < Size+1; y++ {
		for x := 0; x < Size+1; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			// Draw corner/intersection
			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == Size:
				corner = '┐'
			case y == Size && x == 0:
				corner = '└'
			case y == Size && x == Size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == Size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == Size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetCell(px, py, corner, core.ColorGray)

			// Draw horizontal line to the right
			if x < Size {
				for i := 1; i < cellWidth; i++ {
					dst.SetCell(px+i, py, '─', core.ColorGray)
				}
			}

			// Draw vertical line down
			if y < Size {
				for i := 1; i < cellHeight; i++ {
					dst.SetCell(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	// Draw tiles
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			val := s.grid[y][x]
			if val == 0 {
				continue
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			// Center the value in the cell
			valStr := strconv.Itoa(val)
			padLeft := (cellWidth - 1 - len(valStr)) / 2
			if padLeft < 0 {
				padLeft = 0
			}

			color := core.ColorDefault
			if pal != nil {
				color = pal(val)
			}
			dst.DrawTextColor(cellX+padLeft, cellY, valStr, color)
		}
	}
}

// drawOverlay draws a centered boxed text overlay.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawTextColor(x, boxY+1+i, line, core.ColorBrightWhite)
	}
}

// Controls returns the control hints for the game.
func Controls() string {
	return "Arrow keys/WASD: Move | R: Restart | Q: Quit"
}
