package systems

import (
	"image/color"

	"github.com/decker502/mazeball/pkg/components"
	"github.com/decker502/mazeball/pkg/ecs"
	"github.com/decker502/mazeball/pkg/layout"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// shapeDraw 一个待绘制的纯色形状
type shapeDraw struct {
	id     ecs.EntityID
	shape  components.ColliderShape
	x, y   float32 // 矩形为左上角，圆形为圆心
	w, h   float32
	radius float32
	fill   color.NRGBA
}

// ShapeRenderSystem 以纯色填充绘制所有刚体
//
// 按实体ID升序绘制，小球最后创建，因此始终位于墙体之上。
// 可选叠加解答路径（格子中心连线）。
type ShapeRenderSystem struct {
	entityManager *ecs.EntityManager

	solution      []layout.Point
	solutionColor color.NRGBA
	solutionWidth float32
	showSolution  bool
}

// NewShapeRenderSystem 创建形状渲染系统
func NewShapeRenderSystem(em *ecs.EntityManager) *ShapeRenderSystem {
	return &ShapeRenderSystem{
		entityManager: em,
		solutionWidth: 3,
	}
}

// SetSolution 设置解答路径折线及颜色
//
// 参数:
//   - points: 折线顶点（屏幕坐标）
//   - clr: 线条颜色
//   - width: 线宽（像素），不大于 0 时保持原值
func (s *ShapeRenderSystem) SetSolution(points []layout.Point, clr color.NRGBA, width float32) {
	s.solution = points
	s.solutionColor = clr
	if width > 0 {
		s.solutionWidth = width
	}
}

// ToggleSolution 切换解答路径显示，返回切换后的状态
func (s *ShapeRenderSystem) ToggleSolution() bool {
	s.showSolution = !s.showSolution
	return s.showSolution
}

// SolutionVisible 解答路径是否显示
func (s *ShapeRenderSystem) SolutionVisible() bool {
	return s.showSolution
}

// Draw 绘制所有形状，然后绘制解答路径
func (s *ShapeRenderSystem) Draw(screen *ebiten.Image) {
	for _, d := range s.collect() {
		switch d.shape {
		case components.ColliderCircle:
			vector.DrawFilledCircle(screen, d.x, d.y, d.radius, d.fill, true)
		default:
			vector.DrawFilledRect(screen, d.x, d.y, d.w, d.h, d.fill, true)
		}
	}

	if !s.showSolution || len(s.solution) < 2 {
		return
	}
	for i := 1; i < len(s.solution); i++ {
		from, to := s.solution[i-1], s.solution[i]
		vector.StrokeLine(screen,
			float32(from.X), float32(from.Y),
			float32(to.X), float32(to.Y),
			s.solutionWidth, s.solutionColor, true)
	}
}

// collect 收集本帧需要绘制的形状
func (s *ShapeRenderSystem) collect() []shapeDraw {
	ids := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.CollisionComponent,
		*components.ShapeRenderComponent,
	](s.entityManager)

	draws := make([]shapeDraw, 0, len(ids))
	for _, id := range ids {
		render, _ := ecs.GetComponent[*components.ShapeRenderComponent](s.entityManager, id)
		if render.Hidden {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)

		d := shapeDraw{id: id, shape: col.Shape, fill: render.Fill}
		if col.Shape == components.ColliderCircle {
			d.x, d.y = float32(pos.X), float32(pos.Y)
			d.radius = float32(col.Radius)
		} else {
			d.x = float32(pos.X - col.Width/2)
			d.y = float32(pos.Y - col.Height/2)
			d.w, d.h = float32(col.Width), float32(col.Height)
		}
		draws = append(draws, d)
	}
	return draws
}
