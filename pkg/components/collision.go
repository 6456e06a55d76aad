package components

// ColliderShape 碰撞体形状
type ColliderShape int

const (
	// ColliderRect 轴对齐矩形，中心对齐实体位置
	ColliderRect ColliderShape = iota
	// ColliderCircle 圆形，圆心为实体位置
	ColliderCircle
)

// String 返回形状名称（日志用）
func (s ColliderShape) String() string {
	switch s {
	case ColliderRect:
		return "rect"
	case ColliderCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// CollisionComponent 定义实体的碰撞形状
// 物理系统不处理旋转，矩形始终与坐标轴对齐
type CollisionComponent struct {
	Shape  ColliderShape
	Width  float64 // 矩形宽度（像素）
	Height float64 // 矩形高度（像素）
	Radius float64 // 圆形半径（像素）
}

// Bounds 返回碰撞体的包围盒（相对中心点的半宽、半高）
func (c *CollisionComponent) Bounds() (halfWidth, halfHeight float64) {
	if c.Shape == ColliderCircle {
		return c.Radius, c.Radius
	}
	return c.Width / 2, c.Height / 2
}
