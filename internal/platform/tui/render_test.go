package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/snake-tui/internal/core"
	"github.com/vovakirdan/snake-tui/internal/snake"
)

func testSnapshot(phase snake.Phase) snake.Snapshot {
	return snake.Snapshot{
		Board: snake.Board{Size: 20},
		Cells: []core.Cell{{X: 10, Y: 10}, {X: 9, Y: 10}},
		Food:  core.Cell{X: 3, Y: 4},
		Dir:   snake.DirRight,
		Phase: phase,
		Score: 30,
	}
}

func TestDrawGameBoardContents(t *testing.T) {
	s := core.NewScreen(40, 26)
	snap := testSnapshot(snake.PhaseRunning)

	drawGame(s, snap)

	// Board is centered: offX = (40-22)/2 + 1, offY = hudHeight + 1.
	offX := (40-22)/2 + 1
	offY := hudHeight + 1

	if got := s.Get(offX+10, offY+10); got != 'O' {
		t.Errorf("Head cell = %q, expected 'O'", got)
	}
	if got := s.Get(offX+9, offY+10); got != 'o' {
		t.Errorf("Body cell = %q, expected 'o'", got)
	}
	if got := s.Get(offX+3, offY+4); got != '*' {
		t.Errorf("Food cell = %q, expected '*'", got)
	}

	// Border corners
	if s.Get(offX-1, offY-1) != '┌' || s.Get(offX+20, offY+20) != '┘' {
		t.Error("Board border missing")
	}

	// Colors
	if s.GetCell(offX+10, offY+10).Color != core.ColorBrightGreen {
		t.Error("Head should be bright green")
	}
	if s.GetCell(offX+3, offY+4).Color != core.ColorOrange {
		t.Error("Food should be orange")
	}
}

func TestDrawGameHUD(t *testing.T) {
	s := core.NewScreen(40, 26)
	drawGame(s, testSnapshot(snake.PhaseRunning))

	if !strings.Contains(s.Row(0), "Score: 30") {
		t.Errorf("HUD row = %q, expected score display", s.Row(0))
	}
	if !strings.Contains(s.Row(1), "─") {
		t.Error("HUD separator missing")
	}
}

func TestDrawGameOverlays(t *testing.T) {
	tests := []struct {
		phase    snake.Phase
		expected string
	}{
		{snake.PhaseNotStarted, "Press enter to start"},
		{snake.PhasePaused, "Paused"},
		{snake.PhaseGameOver, "Game Over"},
	}

	for _, tc := range tests {
		t.Run(tc.phase.String(), func(t *testing.T) {
			s := core.NewScreen(40, 26)
			drawGame(s, testSnapshot(tc.phase))

			if !strings.Contains(s.String(), tc.expected) {
				t.Errorf("Phase %s: screen missing %q", tc.phase, tc.expected)
			}
		})
	}
}

func TestDrawGameFinalScoreShown(t *testing.T) {
	s := core.NewScreen(40, 26)
	drawGame(s, testSnapshot(snake.PhaseGameOver))

	if !strings.Contains(s.String(), "Score: 30") {
		t.Error("Game over screen should surface the final score")
	}
}

func TestDrawGameTooSmall(t *testing.T) {
	s := core.NewScreen(15, 10) // Cannot hold a bordered 20×20 board
	drawGame(s, testSnapshot(snake.PhaseRunning))

	if !strings.Contains(s.String(), "Window too small") {
		t.Error("Too-small screen should show the resize overlay")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab")

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") {
		t.Errorf("RenderScreen output missing text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen should join rows with newlines, got %q", out)
	}
}
