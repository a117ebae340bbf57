package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-tui/internal/core"
	"github.com/vovakirdan/snake-tui/internal/snake"
)

// hudHeight is the number of screen rows above the board: one status line
// and one separator.
const hudHeight = 2

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// fitsBoard reports whether the screen can hold the bordered board plus
// the HUD.
func fitsBoard(dst *core.Screen, board snake.Board) bool {
	return dst.Width() >= board.Size+2 && dst.Height() >= board.Size+2+hudHeight
}

// drawGame paints a game snapshot into the screen buffer. It reads the
// snapshot only; nothing here feeds back into the core.
func drawGame(dst *core.Screen, snap snake.Snapshot) {
	dst.Clear()

	drawHUD(dst, snap)

	if !fitsBoard(dst, snap.Board) {
		drawOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	// Center the bordered board horizontally below the HUD.
	offX := (dst.Width()-snap.Board.Size-2)/2 + 1
	offY := hudHeight + 1
	dst.DrawBox(offX-1, offY-1, snap.Board.Size+2, snap.Board.Size+2)

	dst.SetColor(offX+snap.Food.X, offY+snap.Food.Y, '*', core.ColorOrange)

	for i, seg := range snap.Cells {
		if i == 0 {
			dst.SetColor(offX+seg.X, offY+seg.Y, 'O', core.ColorBrightGreen)
		} else {
			dst.SetColor(offX+seg.X, offY+seg.Y, 'o', core.ColorGreen)
		}
	}

	switch snap.Phase {
	case snake.PhaseNotStarted:
		drawOverlay(dst, "S N A K E", "Press enter to start")
	case snake.PhasePaused:
		drawOverlay(dst, "Paused", "Press space to continue")
	case snake.PhaseGameOver:
		drawOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  (r for new game)", snap.Score))
	}
}

// drawHUD draws the top status bar.
func drawHUD(dst *core.Screen, snap snake.Snapshot) {
	hud := fmt.Sprintf(" Snake  Score: %d", snap.Score)
	if snap.Phase == snake.PhaseGameOver {
		hud += "  (final)"
	}
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// drawOverlay draws a centered two-line message box.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		dst.DrawHLine(boxX+1, y, boxW-2, ' ')
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
