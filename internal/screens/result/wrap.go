package result

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapCells lays out cells left to right, separated by gap spaces, starting
// a new line before a cell would overflow width. Kana glyphs are double
// width, so widths are measured in terminal cells.
func wrapCells(cells []string, gap, width int) []string {
	if len(cells) == 0 {
		return nil
	}
	sep := strings.Repeat(" ", gap)

	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, c := range cells {
		w := runewidth.StringWidth(c)
		if lineWidth > 0 && lineWidth+gap+w > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteString(sep)
			lineWidth += gap
		}
		line.WriteString(c)
		lineWidth += w
	}
	return append(lines, line.String())
}
