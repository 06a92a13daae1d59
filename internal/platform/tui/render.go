package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with the same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
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

// DrawSnapshot draws the board grid onto the screen with its top-left
// cell at (offsetX, offsetY), surrounded by a box border. Snake segments
// are drawn first and the food last, so a food-under-snake overlap shows
// the food marker.
func DrawSnapshot(dst *core.Screen, snap snake.Snapshot, glyphs config.DisplayConfig, offsetX, offsetY int) {
	dst.DrawBox(core.NewRect(offsetX-1, offsetY-1, snap.Size+2, snap.Size+2))

	empty := glyphs.EmptyRune()
	for y := 0; y < snap.Size; y++ {
		for x := 0; x < snap.Size; x++ {
			dst.SetCell(offsetX+x, offsetY+y, empty, core.ColorGray)
		}
	}

	segment := glyphs.SnakeRune()
	for i, seg := range snap.Body {
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen // Head
		}
		dst.SetCell(offsetX+seg.X, offsetY+seg.Y, segment, color)
	}

	dst.SetCell(offsetX+snap.Food.X, offsetY+snap.Food.Y, glyphs.FoodRune(), core.ColorBrightRed)
}
