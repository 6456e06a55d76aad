package systems

import (
	"github.com/decker502/mazeball/pkg/components"
	"github.com/decker502/mazeball/pkg/ecs"
	"github.com/decker502/mazeball/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 方向键及 WASD 别名
var (
	keysUp    = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}
	keysDown  = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
	keysLeft  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	keysRight = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
)

// BallControlSystem 把方向键映射为小球速度
//
// 规则（速度直接覆盖，不施加力）：
//   - 本帧有任意按键松开：小球速度清零
//   - 按住上/下：VY = ∓Speed；按住左/右：VX = ∓Speed，另一轴保持不变
//   - 存在冻结的 GameFreezeComponent 或组件被禁用时忽略输入
type BallControlSystem struct {
	entityManager *ecs.EntityManager
	keys          utils.KeyReader
}

// NewBallControlSystem 创建小球控制系统
func NewBallControlSystem(em *ecs.EntityManager, keys utils.KeyReader) *BallControlSystem {
	return &BallControlSystem{
		entityManager: em,
		keys:          keys,
	}
}

// Update 读取键盘并更新所有可控小球的速度
func (s *BallControlSystem) Update(deltaTime float64) {
	if s.isFrozen() {
		return
	}

	released := s.keys.AnyKeyJustReleased()
	up := utils.AnyKeyPressed(s.keys, keysUp...)
	down := utils.AnyKeyPressed(s.keys, keysDown...)
	left := utils.AnyKeyPressed(s.keys, keysLeft...)
	right := utils.AnyKeyPressed(s.keys, keysRight...)

	balls := ecs.GetEntitiesWith2[*components.BallControlComponent, *components.VelocityComponent](s.entityManager)
	for _, id := range balls {
		ctrl, _ := ecs.GetComponent[*components.BallControlComponent](s.entityManager, id)
		if !ctrl.Enabled {
			continue
		}
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		if released {
			vel.VX, vel.VY = 0, 0
		}

		// 同一轴两个方向同时按下时，后判断的方向生效
		if up {
			vel.VY = -ctrl.Speed
		}
		if down {
			vel.VY = ctrl.Speed
		}
		if left {
			vel.VX = -ctrl.Speed
		}
		if right {
			vel.VX = ctrl.Speed
		}
	}
}

// isFrozen 是否存在已冻结的 GameFreezeComponent
func (s *BallControlSystem) isFrozen() bool {
	for _, id := range ecs.GetEntitiesWith1[*components.GameFreezeComponent](s.entityManager) {
		if freeze, ok := ecs.GetComponent[*components.GameFreezeComponent](s.entityManager, id); ok && freeze.IsFrozen {
			return true
		}
	}
	return false
}
