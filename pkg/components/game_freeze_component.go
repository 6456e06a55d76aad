package components

// GameFreezeComponent 游戏冻结组件
//
// 标记玩家输入已被冻结（到达终点后的坍塌流程期间）
//
// 系统行为：
// - BallControlSystem: 检测到此组件时，不再读取方向键
// - WinPhaseSystem: 进入胜利流程时添加此组件
type GameFreezeComponent struct {
	IsFrozen bool // 是否已冻结（防止重复冻结）
}
