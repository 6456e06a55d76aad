package components

// RigidBodyComponent 参与物理模拟的刚体
//
// Label 用于碰撞事件中识别刚体类别（"wall"、"boundary"、"goal"、"ball"）。
// 静态刚体不受重力影响，也不会被碰撞推开；两个静态刚体之间不做检测。
type RigidBodyComponent struct {
	Label    string
	IsStatic bool
}
