package ui

import (
	"fmt"
	"strings"
)

const (
	ringRows  = 5
	ringCols  = 9
	ringOn    = "●"
	ringOff   = "·"
	ringLabel = 2
)

// ringCells are the segment positions, clockwise from twelve o'clock.
var ringCells = [][2]int{
	{0, 4}, {0, 5}, {1, 7}, {2, 8}, {3, 7}, {4, 5},
	{4, 4}, {4, 3}, {3, 1}, {2, 0}, {1, 1}, {0, 3},
}

// litSegments maps a percentage onto the ring, rounding to the nearest cell.
func litSegments(progress int) int {
	progress = max(0, min(100, progress))
	return (progress*len(ringCells) + 50) / 100
}

func (m Model) renderRing(progress int) string {
	grid := make([][]string, ringRows)
	for r := range grid {
		grid[r] = make([]string, ringCols)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}
	lit := litSegments(progress)
	for i, cell := range ringCells {
		seg := m.theme.RingOff.Render(ringOff)
		if i < lit {
			seg = m.theme.RingOn.Render(ringOn)
		}
		grid[cell[0]][cell[1]] = seg
	}

	text := fmt.Sprintf("%4s", fmt.Sprintf("%d%%", progress))
	for i, r := range text {
		grid[ringLabel][2+i] = m.theme.RingLabel.Render(string(r))
	}

	rows := make([]string, ringRows)
	for r := range grid {
		rows[r] = strings.Join(grid[r], "")
	}
	return strings.Join(rows, "\n")
}
