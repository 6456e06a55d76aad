package maze

import "strings"

// String 返回迷宫的 ASCII 表示
//
//	+--+--+
//	|     |
//	+--+  +
//	|     |
//	+--+--+
func (m *Maze) String() string {
	var sb strings.Builder

	sb.WriteString("+")
	for c := 0; c < m.Cols; c++ {
		sb.WriteString("--+")
	}
	sb.WriteString("\n")

	for r := 0; r < m.Rows; r++ {
		sb.WriteString("|")
		for c := 0; c < m.Cols; c++ {
			sb.WriteString("  ")
			if m.IsOpen(Cell{Row: r, Col: c}, Right) {
				sb.WriteString(" ")
			} else {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")

		sb.WriteString("+")
		for c := 0; c < m.Cols; c++ {
			if m.IsOpen(Cell{Row: r, Col: c}, Down) {
				sb.WriteString("  +")
			} else {
				sb.WriteString("--+")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
