package main

import (
	"fmt"
	"strings"

	"github.com/decker502/mazeball/pkg/config"
	"github.com/decker502/mazeball/pkg/maze"
)

// 标记字符
const (
	ballRune     = 'o'
	goalRune     = '*'
	solutionRune = '.'
)

// view 终端里显示的一局迷宫
type view struct {
	maze     *maze.Maze
	seed     int64
	ball     maze.Cell
	goal     maze.Cell
	solution []maze.Cell
}

// newView 生成迷宫并求出从小球出生格到对角的解答
// seed 为 0 时基于时间生成，mc.Seed 不参与
func newView(mc config.MazeConfig, seed int64) (*view, error) {
	seed = maze.ResolveSeed(seed)
	m, err := maze.Generate(mc.Rows, mc.Cols, mc.CarveStartRow, mc.CarveStartCol, maze.NewRand(seed))
	if err != nil {
		return nil, err
	}

	ball := maze.Cell{Row: mc.BallStartRow, Col: mc.BallStartCol}
	if !m.InBounds(ball) {
		return nil, fmt.Errorf("ball start (%d,%d) outside %dx%d grid", ball.Row, ball.Col, mc.Rows, mc.Cols)
	}
	goal := m.OppositeCorner(ball)
	return &view{
		maze:     m,
		seed:     seed,
		ball:     ball,
		goal:     goal,
		solution: m.Solve(ball, goal),
	}, nil
}

// lines 返回迷宫的字符画，每个元素一行
// 格子 (r, c) 的内容位于第 2r+1 行、第 3c+1 列
func (v *view) lines(showSolution bool) [][]rune {
	text := strings.TrimRight(v.maze.String(), "\n")
	rows := strings.Split(text, "\n")
	grid := make([][]rune, len(rows))
	for i, row := range rows {
		grid[i] = []rune(row)
	}

	mark := func(c maze.Cell, r rune) {
		grid[2*c.Row+1][3*c.Col+1] = r
	}
	if showSolution {
		for _, c := range v.solution {
			mark(c, solutionRune)
		}
	}
	mark(v.goal, goalRune)
	mark(v.ball, ballRune)
	return grid
}
