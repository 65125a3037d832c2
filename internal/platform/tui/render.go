package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dragon-arcade/internal/core"
)

// palette maps core.Color to ANSI 256-color codes.
// ColorDefault is absent: it leaves the terminal's color alone.
var palette = map[core.Color]lipgloss.Color{
	core.ColorBlack:       lipgloss.Color("0"),
	core.ColorGreen:       lipgloss.Color("2"),
	core.ColorYellow:      lipgloss.Color("3"),
	core.ColorBrightWhite: lipgloss.Color("15"),
	core.ColorBrown:       lipgloss.Color("94"),
	core.ColorNavy:        lipgloss.Color("17"),
}

type colorPair struct {
	fg, bg core.Color
}

// styleFor builds the lipgloss style for a foreground/background pair.
func styleFor(p colorPair) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c, ok := palette[p.fg]; ok {
		style = style.Foreground(c)
	}
	if c, ok := palette[p.bg]; ok {
		style = style.Background(c)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(map[colorPair]lipgloss.Style)

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)
			pair := colorPair{first.Color, first.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != pair.fg || cell.Bg != pair.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if pair == (colorPair{}) {
				sb.WriteString(run.String())
				continue
			}
			style, ok := styles[pair]
			if !ok {
				style = styleFor(pair)
				styles[pair] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
