package entities

import (
	"fmt"
	"log"

	"github.com/decker502/mazeball/pkg/components"
	"github.com/decker502/mazeball/pkg/ecs"
	"github.com/decker502/mazeball/pkg/layout"
)

// NewBodyEntity 根据刚体描述创建物理实体
//
// 每个实体都带有位置、速度、碰撞形状、刚体和填充颜色组件。
// 静态刚体同样带速度组件，胜利后墙体转为动态时直接复用。
//
// 参数:
//   - em: 实体管理器
//   - spec: layout 包生成的刚体描述
//
// 返回:
//   - ecs.EntityID: 创建的实体ID，失败返回 0
//   - error: 参数非法时返回错误
func NewBodyEntity(em *ecs.EntityManager, spec layout.BodySpec) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	collision := &components.CollisionComponent{}
	switch spec.Shape {
	case layout.ShapeRect:
		if spec.Width <= 0 || spec.Height <= 0 {
			return 0, fmt.Errorf("invalid rect size %.2fx%.2f for %q", spec.Width, spec.Height, spec.Label)
		}
		collision.Shape = components.ColliderRect
		collision.Width = spec.Width
		collision.Height = spec.Height
	case layout.ShapeCircle:
		if spec.Radius <= 0 {
			return 0, fmt.Errorf("invalid radius %.2f for %q", spec.Radius, spec.Label)
		}
		collision.Shape = components.ColliderCircle
		collision.Radius = spec.Radius
	default:
		return 0, fmt.Errorf("unknown shape %d for %q", spec.Shape, spec.Label)
	}

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.PositionComponent{X: spec.X, Y: spec.Y})
	em.AddComponent(entityID, &components.VelocityComponent{})
	em.AddComponent(entityID, collision)
	em.AddComponent(entityID, &components.RigidBodyComponent{
		Label:    spec.Label,
		IsStatic: spec.Static,
	})
	em.AddComponent(entityID, &components.ShapeRenderComponent{Fill: spec.Fill})

	return entityID, nil
}

// NewBallEntity 创建玩家小球：刚体实体 + 方向键控制组件
func NewBallEntity(em *ecs.EntityManager, spec layout.BodySpec, speed float64) (ecs.EntityID, error) {
	if spec.Label != layout.LabelBall {
		return 0, fmt.Errorf("expected %q body, got %q", layout.LabelBall, spec.Label)
	}
	if speed <= 0 {
		return 0, fmt.Errorf("ball speed must be positive, got %.2f", speed)
	}

	entityID, err := NewBodyEntity(em, spec)
	if err != nil {
		return 0, err
	}
	em.AddComponent(entityID, &components.BallControlComponent{
		Speed:   speed,
		Enabled: true,
	})

	log.Printf("[Entities] Ball created at (%.1f, %.1f), radius %.1f, speed %.0f", spec.X, spec.Y, spec.Radius, speed)
	return entityID, nil
}

// SpawnBodies 批量创建刚体，小球额外带控制组件
//
// 返回:
//   - ecs.EntityID: 小球实体ID（场景中没有小球时为 0）
//   - error: 任一刚体创建失败时返回
func SpawnBodies(em *ecs.EntityManager, specs []layout.BodySpec, ballSpeed float64) (ecs.EntityID, error) {
	var ballID ecs.EntityID
	for i, spec := range specs {
		if spec.Label == layout.LabelBall {
			id, err := NewBallEntity(em, spec, ballSpeed)
			if err != nil {
				return 0, fmt.Errorf("failed to create body %d: %w", i, err)
			}
			ballID = id
			continue
		}
		if _, err := NewBodyEntity(em, spec); err != nil {
			return 0, fmt.Errorf("failed to create body %d: %w", i, err)
		}
	}
	return ballID, nil
}
