package systems

import (
	"log"

	"github.com/decker502/mazeball/pkg/components"
	"github.com/decker502/mazeball/pkg/ecs"
	"github.com/decker502/mazeball/pkg/layout"
)

// WinResult 胜利时的结算信息
type WinResult struct {
	BallID         ecs.EntityID
	ElapsedSeconds float64
	WallsReleased  int
}

// WinPhaseSystem 胜利流程系统
//
// 小球第一次碰到终点时触发，流程不可逆：
// - Phase 1 (collapse): 内墙全部转为动态，重力提升，输入冻结
// - Phase 2 (halted): collapseSeconds 之后停止物理模拟
//
// 架构说明：
// - 通过 PhysicsSystem 的碰撞开始事件触发
// - 流程状态保存在 WinPhaseComponent 中
// - 使用 GameFreezeComponent 标记输入冻结
type WinPhaseSystem struct {
	entityManager *ecs.EntityManager
	physics       *PhysicsSystem

	winGravity      float64
	collapseSeconds float64

	// 开局以来的用时，胜利后停止累加
	elapsed float64

	phaseEntity ecs.EntityID
	onWin       func(WinResult)
}

// NewWinPhaseSystem 创建胜利流程系统并订阅碰撞事件
//
// 参数:
//   - em: 实体管理器
//   - physics: 物理系统，胜利时修改其重力并最终停止
//   - winGravity: 胜利后的重力加速度（像素/秒²）
//   - collapseSeconds: 墙体坍塌持续时间，0 表示立即停止
func NewWinPhaseSystem(em *ecs.EntityManager, physics *PhysicsSystem, winGravity, collapseSeconds float64) *WinPhaseSystem {
	s := &WinPhaseSystem{
		entityManager:   em,
		physics:         physics,
		winGravity:      winGravity,
		collapseSeconds: collapseSeconds,
	}
	physics.OnCollisionStart(s.handleCollision)
	return s
}

// SetWinCallback 设置胜利回调（由 MazeScene 调用，用于记录成绩）
func (s *WinPhaseSystem) SetWinCallback(callback func(WinResult)) {
	s.onWin = callback
}

// HasWon 是否已经进入胜利流程
func (s *WinPhaseSystem) HasWon() bool {
	return s.phaseEntity != 0
}

// Phase 返回当前阶段，未胜利时返回 0
func (s *WinPhaseSystem) Phase() components.WinPhase {
	if phase := s.phaseComponent(); phase != nil {
		return phase.CurrentPhase
	}
	return 0
}

// Elapsed 返回用时（秒），胜利后固定为触碰终点时的值
func (s *WinPhaseSystem) Elapsed() float64 {
	if phase := s.phaseComponent(); phase != nil {
		return phase.ElapsedSeconds
	}
	return s.elapsed
}

// Update 更新胜利流程
func (s *WinPhaseSystem) Update(deltaTime float64) {
	phase := s.phaseComponent()
	if phase == nil {
		s.elapsed += deltaTime
		return
	}

	phase.PhaseTimer += deltaTime

	switch phase.CurrentPhase {
	case components.WinPhaseCollapse:
		if phase.PhaseTimer >= s.collapseSeconds {
			s.halt(phase)
		}
	case components.WinPhaseHalted:
		// 终止状态
	}
}

func (s *WinPhaseSystem) phaseComponent() *components.WinPhaseComponent {
	if s.phaseEntity == 0 {
		return nil
	}
	phase, ok := ecs.GetComponent[*components.WinPhaseComponent](s.entityManager, s.phaseEntity)
	if !ok {
		return nil
	}
	return phase
}

// handleCollision 只关心小球与终点的第一次接触
func (s *WinPhaseSystem) handleCollision(e CollisionEvent) {
	if s.HasWon() {
		return
	}
	ballID, _, ok := e.Match(layout.LabelBall, layout.LabelGoal)
	if !ok {
		return
	}
	s.trigger(ballID)
}

// trigger Phase 1: 释放内墙、提升重力、冻结输入
func (s *WinPhaseSystem) trigger(ballID ecs.EntityID) {
	released := 0
	for _, id := range ecs.GetEntitiesWith1[*components.RigidBodyComponent](s.entityManager) {
		rb, _ := ecs.GetComponent[*components.RigidBodyComponent](s.entityManager, id)
		if rb.Label != layout.LabelWall || !rb.IsStatic {
			continue
		}
		if err := s.physics.SetStatic(id, false); err != nil {
			log.Printf("[WinPhaseSystem] Warning: failed to release wall %d: %v", id, err)
			continue
		}
		released++
	}

	s.physics.SetGravity(s.winGravity)

	for _, id := range ecs.GetEntitiesWith1[*components.BallControlComponent](s.entityManager) {
		ctrl, _ := ecs.GetComponent[*components.BallControlComponent](s.entityManager, id)
		ctrl.Enabled = false
	}

	phase := &components.WinPhaseComponent{
		CurrentPhase:   components.WinPhaseCollapse,
		BallID:         ballID,
		ElapsedSeconds: s.elapsed,
		WallsReleased:  released,
	}
	s.phaseEntity = s.entityManager.CreateEntity()
	s.entityManager.AddComponent(s.phaseEntity, phase)
	s.entityManager.AddComponent(s.phaseEntity, &components.GameFreezeComponent{IsFrozen: true})

	log.Printf("[WinPhaseSystem] Goal reached in %.2fs, %d walls released, collapse for %.2fs",
		s.elapsed, released, s.collapseSeconds)

	if s.onWin != nil {
		s.onWin(WinResult{
			BallID:         ballID,
			ElapsedSeconds: s.elapsed,
			WallsReleased:  released,
		})
	}

	if s.collapseSeconds <= 0 {
		s.halt(phase)
	}
}

// halt Phase 2: 停止物理模拟
func (s *WinPhaseSystem) halt(phase *components.WinPhaseComponent) {
	log.Printf("[WinPhaseSystem] Phase %s -> %s", phase.CurrentPhase, components.WinPhaseHalted)
	phase.CurrentPhase = components.WinPhaseHalted
	phase.PhaseTimer = 0
	s.physics.Stop()
}
