package components

// VelocityComponent 实体速度（像素/秒）
// 静态刚体的速度由物理系统保持为 0
type VelocityComponent struct {
	VX float64
	VY float64
}
