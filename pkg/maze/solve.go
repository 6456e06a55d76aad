package maze

import "fmt"

// Solve 用 BFS 在通路图上求 from 到 to 的路径
//
// 完美迷宫中两格之间只有一条简单路径，因此 BFS 的结果就是唯一解。
//
// 返回:
//   - []Cell: 包含首尾的路径；任一端越界或不可达时返回 nil
func (m *Maze) Solve(from, to Cell) []Cell {
	if !m.InBounds(from) || !m.InBounds(to) {
		return nil
	}

	prev := make(map[Cell]Cell, m.Rows*m.Cols)
	prev[from] = from
	queue := []Cell{from}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		if curr == to {
			break
		}
		for _, next := range m.Neighbors(curr) {
			if _, seen := prev[next]; seen {
				continue
			}
			prev[next] = curr
			queue = append(queue, next)
		}
	}

	if _, reached := prev[to]; !reached {
		return nil
	}

	// 回溯路径
	path := []Cell{to}
	for c := to; c != from; {
		c = prev[c]
		path = append(path, c)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Verify 检查迷宫是否为完美迷宫
//
// 检查项：
//   - 矩阵尺寸与 Rows/Cols 一致（含每一行的宽度）
//   - 起点在网格内
//   - 所有格子都已访问
//   - 通路数量为 rows*cols-1
//   - 从起点出发可以到达所有格子
//
// 边数为 n-1 且连通的图必然无环，因此以上条件即可证明通路构成生成树。
func (m *Maze) Verify() error {
	if m.Rows <= 0 || m.Cols <= 0 {
		return fmt.Errorf("grid size must be positive: rows=%d cols=%d", m.Rows, m.Cols)
	}
	if err := checkMatrix("visited", m.Visited, m.Rows, m.Cols); err != nil {
		return err
	}
	if err := checkMatrix("horizontal", m.Horizontal, m.Rows-1, m.Cols); err != nil {
		return err
	}
	if err := checkMatrix("vertical", m.Vertical, m.Rows, m.Cols-1); err != nil {
		return err
	}
	if !m.InBounds(m.Origin) {
		return fmt.Errorf("origin (%d,%d) outside %dx%d grid", m.Origin.Row, m.Origin.Col, m.Rows, m.Cols)
	}

	for r, row := range m.Visited {
		for c, visited := range row {
			if !visited {
				return fmt.Errorf("cell (%d,%d) was never visited", r, c)
			}
		}
	}

	want := m.Rows*m.Cols - 1
	if got := m.OpenEdgeCount(); got != want {
		return fmt.Errorf("open edge count = %d, want %d", got, want)
	}

	reached := map[Cell]bool{m.Origin: true}
	queue := []Cell{m.Origin}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, next := range m.Neighbors(curr) {
			if !reached[next] {
				reached[next] = true
				queue = append(queue, next)
			}
		}
	}
	if len(reached) != m.Rows*m.Cols {
		return fmt.Errorf("only %d of %d cells reachable from origin", len(reached), m.Rows*m.Cols)
	}

	return nil
}

// checkMatrix 检查矩阵的行数和每行宽度
func checkMatrix(name string, matrix [][]bool, rows, cols int) error {
	if len(matrix) != rows {
		return fmt.Errorf("%s matrix has %d rows, want %d", name, len(matrix), rows)
	}
	for r, row := range matrix {
		if len(row) != cols {
			return fmt.Errorf("%s matrix row %d has %d columns, want %d", name, r, len(row), cols)
		}
	}
	return nil
}
