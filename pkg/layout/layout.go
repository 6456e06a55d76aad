// Package layout 把迷宫通道矩阵转换为物理刚体描述
//
// 本包不依赖 ECS 和渲染，输入迷宫快照和几何参数，输出 []BodySpec，
// 由 entities 包负责把描述变成实体。
package layout

import (
	"image/color"
	"math"

	"github.com/decker502/mazeball/pkg/maze"
)

// 刚体标签
const (
	LabelWall     = "wall"
	LabelBoundary = "boundary"
	LabelGoal     = "goal"
	LabelBall     = "ball"
)

// Shape 刚体形状
type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
)

// BodySpec 单个刚体的描述
// 坐标为中心点（像素）
type BodySpec struct {
	Label  string
	Shape  Shape
	X, Y   float64
	Width  float64 // 仅矩形
	Height float64 // 仅矩形
	Radius float64 // 仅圆形
	Static bool
	Fill   color.NRGBA
}

// Geometry 迷宫在屏幕上的几何参数
type Geometry struct {
	Width, Height float64
	Rows, Cols    int
	Margin        float64
	WallThickness float64
	CellWidth     float64
	CellHeight    float64
}

// NewGeometry 根据画布尺寸和网格尺寸计算格子大小
// 格子大小 = (画布尺寸 - 2 × 边距) / 格数
func NewGeometry(width, height float64, rows, cols int, margin, wallThickness float64) Geometry {
	return Geometry{
		Width:         width,
		Height:        height,
		Rows:          rows,
		Cols:          cols,
		Margin:        margin,
		WallThickness: wallThickness,
		CellWidth:     (width - margin*2) / float64(cols),
		CellHeight:    (height - margin*2) / float64(rows),
	}
}

// CellCenter 返回格子中心的屏幕坐标
func (g Geometry) CellCenter(c maze.Cell) (x, y float64) {
	x = g.Margin + float64(c.Col)*g.CellWidth + g.CellWidth/2
	y = g.Margin + float64(c.Row)*g.CellHeight + g.CellHeight/2
	return x, y
}

// CellAt 把屏幕坐标转换为格子坐标
//
// 返回:
//   - maze.Cell: 所在格子（越界时收回到最近的格子）
//   - bool: 坐标是否落在网格内
func (g Geometry) CellAt(x, y float64) (maze.Cell, bool) {
	col := int(math.Floor((x - g.Margin) / g.CellWidth))
	row := int(math.Floor((y - g.Margin) / g.CellHeight))
	inside := row >= 0 && row < g.Rows && col >= 0 && col < g.Cols

	if row < 0 {
		row = 0
	} else if row >= g.Rows {
		row = g.Rows - 1
	}
	if col < 0 {
		col = 0
	} else if col >= g.Cols {
		col = g.Cols - 1
	}

	return maze.Cell{Row: row, Col: col}, inside
}

// Palette 各类刚体的填充颜色
type Palette struct {
	Wall     color.NRGBA
	Boundary color.NRGBA
	Goal     color.NRGBA
	Ball     color.NRGBA
}

// Options 场景构建参数
type Options struct {
	BallCell        maze.Cell
	GoalCell        maze.Cell
	BallRadiusRatio float64
	Palette         Palette
}

// Build 生成整个场景的刚体描述
//
// 顺序：外墙、水平内墙、垂直内墙、终点、小球。
//
// 参数:
//   - m: 迷宫快照
//   - g: 几何参数，Rows/Cols 应与迷宫一致
//   - opts: 小球/终点位置、小球尺寸比例、颜色
//
// 返回:
//   - []BodySpec: 刚体描述列表
func Build(m *maze.Maze, g Geometry, opts Options) []BodySpec {
	bodies := BoundaryWalls(g, opts.Palette.Boundary)
	bodies = append(bodies, InnerWalls(m, g, opts.Palette.Wall)...)
	bodies = append(bodies, Goal(g, opts.GoalCell, opts.Palette.Goal))
	bodies = append(bodies, Ball(g, opts.BallCell, opts.BallRadiusRatio, opts.Palette.Ball))
	return bodies
}

// BoundaryWalls 围住整个画布的四面静态外墙，厚度等于边距
func BoundaryWalls(g Geometry, fill color.NRGBA) []BodySpec {
	size := g.Margin
	halfSize := size / 2
	halfWidth := g.Width / 2
	halfHeight := g.Height / 2

	wall := func(x, y, w, h float64) BodySpec {
		return BodySpec{
			Label:  LabelBoundary,
			Shape:  ShapeRect,
			X:      x,
			Y:      y,
			Width:  w,
			Height: h,
			Static: true,
			Fill:   fill,
		}
	}

	return []BodySpec{
		wall(halfWidth, halfSize, g.Width, size),           // 上
		wall(halfWidth, g.Height-halfSize, g.Width, size),  // 下
		wall(halfSize, halfHeight, size, g.Height),         // 左
		wall(g.Width-halfSize, halfHeight, size, g.Height), // 右
	}
}

// InnerWalls 每条关闭的内部边对应一面静态墙
//
// 水平边 (r,c) 位于格子 (r,c) 与 (r+1,c) 之间，墙横跨一个格宽；
// 垂直边 (r,c) 位于格子 (r,c) 与 (r,c+1) 之间，墙纵跨一个格高。
// 墙长额外加上一个墙厚，使相邻墙段在拐角处闭合。
func InnerWalls(m *maze.Maze, g Geometry, fill color.NRGBA) []BodySpec {
	walls := make([]BodySpec, 0, m.ClosedEdgeCount())

	for r, row := range m.Horizontal {
		for c, open := range row {
			if open {
				continue
			}
			walls = append(walls, BodySpec{
				Label:  LabelWall,
				Shape:  ShapeRect,
				X:      g.Margin + float64(c)*g.CellWidth + g.CellWidth/2,
				Y:      g.Margin + float64(r+1)*g.CellHeight,
				Width:  g.CellWidth + g.WallThickness,
				Height: g.WallThickness,
				Static: true,
				Fill:   fill,
			})
		}
	}

	for r, row := range m.Vertical {
		for c, open := range row {
			if open {
				continue
			}
			walls = append(walls, BodySpec{
				Label:  LabelWall,
				Shape:  ShapeRect,
				X:      g.Margin + float64(c+1)*g.CellWidth,
				Y:      g.Margin + float64(r)*g.CellHeight + g.CellHeight/2,
				Width:  g.WallThickness,
				Height: g.CellHeight + g.WallThickness,
				Static: true,
				Fill:   fill,
			})
		}
	}

	return walls
}

// Goal 终点标记：位于终点格中心、半个格子大小的静态矩形
func Goal(g Geometry, cell maze.Cell, fill color.NRGBA) BodySpec {
	x, y := g.CellCenter(cell)
	return BodySpec{
		Label:  LabelGoal,
		Shape:  ShapeRect,
		X:      x,
		Y:      y,
		Width:  g.CellWidth / 2,
		Height: g.CellHeight / 2,
		Static: true,
		Fill:   fill,
	}
}

// Ball 玩家小球：位于出生格中心的动态圆形
// 半径 = 半个格子（取宽高较小者）× ratio
func Ball(g Geometry, cell maze.Cell, ratio float64, fill color.NRGBA) BodySpec {
	x, y := g.CellCenter(cell)
	half := math.Min(g.CellWidth, g.CellHeight) / 2
	return BodySpec{
		Label:  LabelBall,
		Shape:  ShapeCircle,
		X:      x,
		Y:      y,
		Radius: half * ratio,
		Static: false,
		Fill:   fill,
	}
}

// Point 屏幕坐标点
type Point struct {
	X, Y float64
}

// PathPoints 把格子路径转换为格子中心连成的折线（解答提示用）
func (g Geometry) PathPoints(cells []maze.Cell) []Point {
	points := make([]Point, 0, len(cells))
	for _, c := range cells {
		x, y := g.CellCenter(c)
		points = append(points, Point{X: x, Y: y})
	}
	return points
}
