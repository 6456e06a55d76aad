package components

// BallControlComponent 标记可由方向键控制的小球
//
// 按住方向键时该轴速度被设置为 ±Speed，任意按键松开时速度清零。
// Enabled 为 false 时输入被忽略（胜利后由 WinPhaseSystem 关闭）。
type BallControlComponent struct {
	Speed   float64 // 像素/秒
	Enabled bool
}
