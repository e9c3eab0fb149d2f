package viz

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/agentviz/internal/portray"
)

var (
	gridStyle  = lipgloss.NewStyle().Padding(1, 2)
	statsStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(46)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	emptyCell  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
)

// markerColors maps portrayal color ids onto 256-color terminal codes.
var markerColors = map[portray.ColorID]lipgloss.Color{
	portray.ColorBlue:   lipgloss.Color("39"),
	portray.ColorRed:    lipgloss.Color("196"),
	portray.ColorGreen:  lipgloss.Color("40"),
	portray.ColorOrange: lipgloss.Color("208"),
	portray.ColorPurple: lipgloss.Color("135"),
	portray.ColorGray:   lipgloss.Color("245"),
}

// MarkerStyle returns the terminal style for a portrayal record.
func MarkerStyle(rec portray.Record) lipgloss.Style {
	c, ok := markerColors[rec.Color]
	if !ok {
		c = markerColors[portray.ColorGray]
	}
	return lipgloss.NewStyle().Foreground(c)
}

// MarkerGlyph picks a glyph by record size: large records render as a
// full disc, small ones as a dot.
func MarkerGlyph(rec portray.Record) string {
	switch rec.Shape {
	case portray.ShapeSquare:
		if rec.Size >= portray.FavorableSize {
			return "■"
		}
		return "▪"
	case portray.ShapeCross:
		return "✚"
	default:
		if rec.Size >= portray.FavorableSize {
			return "●"
		}
		return "•"
	}
}

// ProgressBar renders run progress as a block bar.
func ProgressBar(percent float64, width int, theme Theme) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(theme.Primary).Render(bar)
}

// HistogramRows renders integer bins as horizontal bars, one row per
// wealth level, scaled to maxWidth.
func HistogramRows(bins []int, maxWidth int) []string {
	max := 0
	for _, n := range bins {
		if n > max {
			max = n
		}
	}
	if max == 0 {
		return nil
	}

	rows := make([]string, 0, len(bins))
	for w, n := range bins {
		barLen := n * maxWidth / max
		if n > 0 && barLen == 0 {
			barLen = 1
		}
		bar := strings.Repeat("█", barLen)
		style := MarkerStyle(portray.Record{Color: portray.ColorBlue, Size: portray.FavorableSize})
		if w == 0 {
			style = MarkerStyle(portray.Record{Color: portray.ColorRed, Size: portray.DepletedSize})
		}
		rows = append(rows, labelStyle.Render(strconv.Itoa(w))+style.Render(bar)+valueStyle.Render(" "+strconv.Itoa(n)))
	}
	return rows
}
