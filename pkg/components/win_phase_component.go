package components

import "github.com/decker502/mazeball/pkg/ecs"

// WinPhase 胜利流程阶段
type WinPhase int

const (
	// WinPhaseCollapse 墙体坍塌：所有内墙转为动态刚体并在重力下掉落
	WinPhaseCollapse WinPhase = iota + 1
	// WinPhaseHalted 模拟已停止，画面保持最后一帧
	WinPhaseHalted
)

// String 返回阶段名称（日志用）
func (p WinPhase) String() string {
	switch p {
	case WinPhaseCollapse:
		return "collapse"
	case WinPhaseHalted:
		return "halted"
	default:
		return "unknown"
	}
}

// WinPhaseComponent 胜利流程阶段组件
//
// 管理两阶段状态机：
//
// Phase 1 (collapse): 墙体掉落
//   - 内墙全部转为动态
//   - 重力提升到 winGravity
//   - 玩家输入冻结
//   - 持续 collapseSeconds 后进入 Phase 2
//
// Phase 2 (halted): 物理模拟停止，不可恢复
type WinPhaseComponent struct {
	CurrentPhase WinPhase
	PhaseTimer   float64 // 阶段计时器（秒）

	BallID         ecs.EntityID // 触发胜利的小球实体 ID
	ElapsedSeconds float64      // 从开局到触碰终点的用时（秒）
	WallsReleased  int          // 转为动态的墙体数量
}
