package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
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
			for x < s.Width() && s.GetCell(x, y).Color == startColor {
				run.WriteRune(s.GetCell(x, y).Rune)
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

// hudHeight is the number of screen rows above the board.
const hudHeight = 2

// drawBoard renders the board grid, snake and apple into the screen buffer,
// centered below the HUD rows, with a box border around the playfield.
func drawBoard(dst *core.Screen, g *game.Game) {
	w, h := g.Width(), g.Height()
	offsetX := (dst.Width() - w - 2) / 2
	offsetY := hudHeight

	dst.DrawBox(core.NewRect(offsetX, offsetY, w+2, h+2))

	if apple := g.Apple(); apple >= 0 {
		ax, ay := apple%w, apple/w
		dst.SetColored(offsetX+1+ax, offsetY+1+ay, '@', core.ColorBrightRed)
	}

	for i, cell := range g.Snake() {
		sx, sy := int(cell)%w, int(cell)/w
		r := 'o'
		color := core.ColorGreen
		if i == 0 {
			r = 'O'
			color = core.ColorBrightGreen
		}
		dst.SetColored(offsetX+1+sx, offsetY+1+sy, r, color)
	}
}

// boardFits reports whether the board plus border and HUD fit the screen.
func boardFits(dst *core.Screen, g *game.Game) bool {
	return dst.Width() >= g.Width()+2 && dst.Height() >= g.Height()+2+hudHeight
}

// drawOverlay draws a centered two-line message box over the board.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	r := core.NewRect(boxX, boxY, boxW, boxH)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(r)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// drawHUD writes the status line and a separator at the top of the screen.
func drawHUD(dst *core.Screen, text string) {
	dst.DrawText(1, 0, text)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// formatProgress renders a playback position like "37/112".
func formatProgress(applied, total int) string {
	return fmt.Sprintf("%d/%d", applied, total)
}
