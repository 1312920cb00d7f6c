package cli

import (
	"strconv"
	"strings"

	"contagion/internal/grid"
)

// formatGrid renders a grid as text: 1-D and 2-D grids print as a block of
// '.'/'#' cells, higher ranks break into indexed plane sections.
func formatGrid(g *grid.Grid) string {
	var sb strings.Builder
	writeSection(&sb, g, g.Cells(), 0, nil)
	return sb.String()
}

func writeSection(sb *strings.Builder, g *grid.Grid, cells []uint8, axis int, prefix []int) {
	rank := g.Rank()
	if rank-axis <= 2 {
		if len(prefix) > 0 {
			sb.WriteByte('[')
			for i, c := range prefix {
				if i > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(strconv.Itoa(c))
			}
			sb.WriteString("]\n")
		}
		width := g.Dim(rank - 1)
		for i, v := range cells {
			if v != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
			if (i+1)%width == 0 {
				sb.WriteByte('\n')
			}
		}
		return
	}
	span := g.Stride(axis)
	for k := 0; k < g.Dim(axis); k++ {
		if k > 0 {
			sb.WriteByte('\n')
		}
		writeSection(sb, g, cells[k*span:(k+1)*span], axis+1, append(prefix, k))
	}
}
