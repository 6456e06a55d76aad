// Package maze 实现基于随机深度优先回溯的完美迷宫生成
//
// 生成结果用两张通道矩阵描述：
//   - Horizontal: (rows-1) × cols，Horizontal[r][c] 为 true 表示 (r,c) 与 (r+1,c) 之间是通路
//   - Vertical:   rows × (cols-1)，Vertical[r][c] 为 true 表示 (r,c) 与 (r,c+1) 之间是通路
//
// 边总是记录在下标较小的那个格子上。
package maze

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument 生成参数不合法（尺寸非正、起点越界、随机源为空）
var ErrInvalidArgument = errors.New("maze: invalid argument")

// Cell 网格中的一个格子
type Cell struct {
	Row int
	Col int
}

// Direction 相邻格子的方向
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// String 返回方向名称（用于日志）
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// offset 返回方向对应的行列偏移
func (d Direction) offset() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	}
	return 0, 0
}

// directions 邻居枚举顺序：上、右、下、左
var directions = [4]Direction{Up, Right, Down, Left}

// Maze 一次生成的结果快照
//
// Generate 返回后不应再修改其中的矩阵。
type Maze struct {
	Rows   int
	Cols   int
	Origin Cell // 雕刻起点

	Visited    [][]bool
	Horizontal [][]bool
	Vertical   [][]bool
}

// step 从当前格子出发的一次候选移动
type step struct {
	to  Cell
	dir Direction
}

// frame 显式栈中的一帧，等价于递归实现中的一次调用
type frame struct {
	cell      Cell
	neighbors []step
	next      int
}

// Generate 从 (startRow, startCol) 开始用随机 DFS 回溯雕刻迷宫
//
// 使用显式栈代替递归，访问顺序与递归版本完全一致：
// 同一随机序列下得到相同的通道布局。
//
// 参数:
//   - rows, cols: 网格尺寸，必须为正
//   - startRow, startCol: 雕刻起点，必须在网格内
//   - rng: 随机源
//
// 返回:
//   - *Maze: 生成结果，所有格子均已访问，通路构成生成树
//   - error: 参数不合法时返回包装了 ErrInvalidArgument 的错误
func Generate(rows, cols, startRow, startCol int, rng Rand) (*Maze, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("grid size %dx%d must be positive: %w", rows, cols, ErrInvalidArgument)
	}
	if startRow < 0 || startRow >= rows || startCol < 0 || startCol >= cols {
		return nil, fmt.Errorf("start cell (%d,%d) outside %dx%d grid: %w",
			startRow, startCol, rows, cols, ErrInvalidArgument)
	}
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil: %w", ErrInvalidArgument)
	}

	m := newMaze(rows, cols, Cell{Row: startRow, Col: startCol})

	stack := make([]frame, 0, rows*cols)
	stack = append(stack, m.enter(m.Origin, rng))

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.neighbors) {
			// 所有邻居处理完毕，回溯
			stack = stack[:len(stack)-1]
			continue
		}

		s := top.neighbors[top.next]
		top.next++

		if m.Visited[s.to.Row][s.to.Col] {
			continue
		}

		m.open(top.cell, s.dir)
		stack = append(stack, m.enter(s.to, rng))
	}

	return m, nil
}

// newMaze 分配全部为墙的矩阵
func newMaze(rows, cols int, origin Cell) *Maze {
	return &Maze{
		Rows:       rows,
		Cols:       cols,
		Origin:     origin,
		Visited:    makeMatrix(rows, cols),
		Horizontal: makeMatrix(rows-1, cols),
		Vertical:   makeMatrix(rows, cols-1),
	}
}

func makeMatrix(rows, cols int) [][]bool {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	matrix := make([][]bool, rows)
	for i := range matrix {
		matrix[i] = make([]bool, cols)
	}
	return matrix
}

// enter 标记格子已访问，并返回打乱后的界内邻居
func (m *Maze) enter(c Cell, rng Rand) frame {
	m.Visited[c.Row][c.Col] = true

	neighbors := make([]step, 0, len(directions))
	for _, d := range directions {
		dr, dc := d.offset()
		next := Cell{Row: c.Row + dr, Col: c.Col + dc}
		if !m.InBounds(next) {
			continue
		}
		neighbors = append(neighbors, step{to: next, dir: d})
	}
	Shuffle(neighbors, rng)

	return frame{cell: c, neighbors: neighbors}
}

// open 打通 from 与其 d 方向邻居之间的墙
func (m *Maze) open(from Cell, d Direction) {
	switch d {
	case Down:
		m.Horizontal[from.Row][from.Col] = true
	case Up:
		m.Horizontal[from.Row-1][from.Col] = true
	case Right:
		m.Vertical[from.Row][from.Col] = true
	case Left:
		m.Vertical[from.Row][from.Col-1] = true
	}
}

// InBounds 判断格子是否在网格内
func (m *Maze) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < m.Rows && c.Col >= 0 && c.Col < m.Cols
}

// IsOpen 判断 c 在 d 方向上是否为通路
// 越界方向（外墙）总是返回 false
func (m *Maze) IsOpen(c Cell, d Direction) bool {
	dr, dc := d.offset()
	if !m.InBounds(c) || !m.InBounds(Cell{Row: c.Row + dr, Col: c.Col + dc}) {
		return false
	}
	switch d {
	case Down:
		return m.Horizontal[c.Row][c.Col]
	case Up:
		return m.Horizontal[c.Row-1][c.Col]
	case Right:
		return m.Vertical[c.Row][c.Col]
	case Left:
		return m.Vertical[c.Row][c.Col-1]
	}
	return false
}

// Neighbors 返回与 c 之间有通路的相邻格子
func (m *Maze) Neighbors(c Cell) []Cell {
	result := make([]Cell, 0, len(directions))
	for _, d := range directions {
		if m.IsOpen(c, d) {
			dr, dc := d.offset()
			result = append(result, Cell{Row: c.Row + dr, Col: c.Col + dc})
		}
	}
	return result
}

// OpenEdgeCount 统计通路数量
func (m *Maze) OpenEdgeCount() int {
	count := 0
	for _, row := range m.Horizontal {
		for _, open := range row {
			if open {
				count++
			}
		}
	}
	for _, row := range m.Vertical {
		for _, open := range row {
			if open {
				count++
			}
		}
	}
	return count
}

// ClosedEdgeCount 统计内部墙数量（不含外墙）
func (m *Maze) ClosedEdgeCount() int {
	total := (m.Rows-1)*m.Cols + m.Rows*(m.Cols-1)
	return total - m.OpenEdgeCount()
}

// OppositeCorner 返回与 c 相对的网格角落
func (m *Maze) OppositeCorner(c Cell) Cell {
	return Cell{Row: m.Rows - 1 - c.Row, Col: m.Cols - 1 - c.Col}
}
