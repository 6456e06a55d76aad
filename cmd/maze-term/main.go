// maze-term 在终端中预览迷宫生成结果
//
// 按键：r 重新生成，s 显示/隐藏解答，q 或 Esc 退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/mazeball/pkg/config"
	"github.com/gdamore/tcell/v2"
)

var (
	rows = flag.Int("rows", config.DefaultRows, "迷宫行数")
	cols = flag.Int("cols", config.DefaultCols, "迷宫列数")
	seed = flag.Int64("seed", 0, "随机种子，0 表示基于时间")

	ballRow = flag.Int("ball-row", 0, "小球出生行，终点在对角")
	ballCol = flag.Int("ball-col", 0, "小球出生列")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.DefaultGameConfig()
	cfg.Maze.Rows, cfg.Maze.Cols, cfg.Maze.Seed = *rows, *cols, *seed
	cfg.Maze.BallStartRow, cfg.Maze.BallStartCol = *ballRow, *ballCol
	cfg.ClampToGrid()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid maze size: %w", err)
	}

	v, err := newView(cfg.Maze, cfg.Maze.Seed)
	if err != nil {
		return fmt.Errorf("failed to generate maze: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	// tcell 占用终端，日志丢弃
	log.SetOutput(io.Discard)

	showSolution := false
	for {
		draw(screen, v, showSolution)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			if ev.Key() != tcell.KeyRune {
				continue
			}
			switch ev.Rune() {
			case 'q':
				return nil
			case 's':
				showSolution = !showSolution
			case 'r':
				next, err := newView(cfg.Maze, 0)
				if err != nil {
					return fmt.Errorf("failed to generate maze: %w", err)
				}
				v = next
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// draw 绘制迷宫和状态行
func draw(screen tcell.Screen, v *view, showSolution bool) {
	screen.Clear()

	wallStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styles := map[rune]tcell.Style{
		ballRune:     tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true),
		goalRune:     tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		solutionRune: tcell.StyleDefault.Foreground(tcell.ColorOrange),
	}

	grid := v.lines(showSolution)
	for y, row := range grid {
		for x, r := range row {
			style, ok := styles[r]
			if !ok {
				style = wallStyle
			}
			screen.SetContent(x, y, r, nil, style)
		}
	}

	status := fmt.Sprintf("%dx%d seed %d  [r] regenerate  [s] solution  [q] quit", v.maze.Rows, v.maze.Cols, v.seed)
	for x, r := range status {
		screen.SetContent(x, len(grid)+1, r, nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}

	screen.Show()
}
