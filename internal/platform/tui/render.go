package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/serpentlabs/serpent/internal/engine"
)

// Runes used on the board.
const (
	runeHead = 'O'
	runeBody = 'o'
	runeFood = '*'
)

// hudHeight is the number of status lines above the board.
const hudHeight = 2

// styleClass groups runes that share a lipgloss style, so runs of equal
// class can be rendered with a single escape sequence.
type styleClass int

const (
	classDefault styleClass = iota
	classSnake
	classFood
	classBorder
)

var classStyles = map[styleClass]lipgloss.Style{
	classDefault: lipgloss.NewStyle(),
	classSnake:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	classFood:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	classBorder:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

func classFor(r rune) styleClass {
	switch r {
	case runeHead, runeBody:
		return classSnake
	case runeFood:
		return classFood
	case '─', '│', '┌', '┐', '└', '┘':
		return classBorder
	default:
		return classDefault
	}
}

// DrawState renders the game state into the screen buffer. The board is
// centered below a two-line HUD; logical (0, 0) is the middle of the
// board with Y growing upward.
func DrawState(dst *Screen, p engine.Params, st engine.State) {
	dst.Clear()

	drawHUD(dst, p, st)

	// Board cell span including the border.
	span := 2*p.BoardSize + 1
	boxW := span + 2
	boxH := span + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := hudHeight

	dst.DrawBox(boxX, boxY, boxW, boxH)

	// Logical coordinates to screen cells inside the border.
	toScreen := func(x, y int) (int, int) {
		return boxX + 1 + (x + p.BoardSize), boxY + 1 + (p.BoardSize - y)
	}

	if st.HasFood {
		fx, fy := toScreen(st.Food.X, st.Food.Y)
		dst.Set(fx, fy, runeFood)
	}

	for i, seg := range st.Snake.Positions() {
		sx, sy := toScreen(seg.X, seg.Y)
		if i == 0 {
			dst.Set(sx, sy, runeHead)
		} else {
			dst.Set(sx, sy, runeBody)
		}
	}

	if st.Over {
		drawOverlay(dst, "Game Over", fmt.Sprintf("Score: %d - press R to restart", st.Score(p)))
	}
}

// drawHUD draws the top status bar.
func drawHUD(dst *Screen, p engine.Params, st engine.State) {
	hud := fmt.Sprintf(" serpent | score: %d  length: %d  ticks: %d", st.Score(p), st.Snake.Len(), st.Ticks)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// drawOverlay draws a centered two-line message box.
func drawOverlay(dst *Screen, line1, line2 string) {
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

// RenderScreen converts a screen buffer to a styled string for display.
// Adjacent runes with the same style are grouped to minimize ANSI escape
// sequences.
func RenderScreen(s *Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := classFor(s.Get(x, y))

			var run strings.Builder
			for x < s.Width() {
				r := s.Get(x, y)
				if classFor(r) != start {
					break
				}
				run.WriteRune(r)
				x++
			}

			sb.WriteString(classStyles[start].Render(run.String()))
		}
	}
	return sb.String()
}
