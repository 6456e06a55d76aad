package systems

import (
	"fmt"
	"log"
	"math"

	"github.com/decker502/mazeball/pkg/components"
	"github.com/decker502/mazeball/pkg/ecs"
)

const (
	// maxStepDistance 单个子步内刚体允许移动的最大距离（像素）
	// 超过时自动增加子步数，避免高速下落的墙体穿透 5px 厚的外墙
	maxStepDistance = 2.0
	// maxSubsteps 每帧子步数上限
	maxSubsteps = 64
	// contactSlop 穿透深度小于该值视为刚好接触，不算碰撞
	contactSlop = 1e-9
)

// CollisionEvent 碰撞开始事件
// 一对刚体从不接触变为接触时发出一次，持续接触期间不再重复
type CollisionEvent struct {
	A, B           ecs.EntityID
	LabelA, LabelB string
}

// Match 判断事件是否发生在标签 x 与 y 的刚体之间（不区分顺序）
//
// 返回:
//   - idX: 标签为 x 的实体
//   - idY: 标签为 y 的实体
//   - ok: 是否匹配
func (e CollisionEvent) Match(x, y string) (idX, idY ecs.EntityID, ok bool) {
	switch {
	case e.LabelA == x && e.LabelB == y:
		return e.A, e.B, true
	case e.LabelA == y && e.LabelB == x:
		return e.B, e.A, true
	default:
		return 0, 0, false
	}
}

type contactKey struct {
	a, b ecs.EntityID
}

// body 单次更新中使用的刚体组件快照
type body struct {
	id  ecs.EntityID
	pos *components.PositionComponent
	vel *components.VelocityComponent
	col *components.CollisionComponent
	rb  *components.RigidBodyComponent
}

// PhysicsSystem 处理刚体物理：重力积分、碰撞检测与分离、碰撞开始事件
//
// 规则：
//   - 只有动态刚体受重力影响并被推开
//   - 动态刚体与静态刚体碰撞时，动态刚体被完全推出，法向速度清零
//   - 两个动态刚体碰撞时各退一半，法向相对速度清零（完全非弹性）
//   - 两个静态刚体之间不做检测
//   - 不处理旋转
type PhysicsSystem struct {
	em *ecs.EntityManager

	gravity  float64 // 竖直向下的加速度（像素/秒²）
	substeps int
	running  bool

	// 上一帧处于接触状态的刚体对
	contacts  map[contactKey]bool
	listeners []func(CollisionEvent)
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器，用于查询和操作实体组件
//   - gravity: 初始重力加速度（像素/秒²）
//   - substeps: 每帧最少子步数，小于 1 时按 1 处理
//
// 返回:
//   - *PhysicsSystem: 物理系统实例
func NewPhysicsSystem(em *ecs.EntityManager, gravity float64, substeps int) *PhysicsSystem {
	if substeps < 1 {
		substeps = 1
	}
	return &PhysicsSystem{
		em:       em,
		gravity:  gravity,
		substeps: substeps,
		running:  true,
		contacts: make(map[contactKey]bool),
	}
}

// OnCollisionStart 注册碰撞开始回调
// 回调在每帧所有子步完成后按发生顺序调用
func (ps *PhysicsSystem) OnCollisionStart(fn func(CollisionEvent)) {
	if fn != nil {
		ps.listeners = append(ps.listeners, fn)
	}
}

// SetGravity 设置重力加速度
func (ps *PhysicsSystem) SetGravity(g float64) {
	log.Printf("[PhysicsSystem] Gravity %.1f -> %.1f", ps.gravity, g)
	ps.gravity = g
}

// Gravity 返回当前重力加速度
func (ps *PhysicsSystem) Gravity() float64 {
	return ps.gravity
}

// SetStatic 切换刚体的静态/动态状态
// 转为静态时速度清零
func (ps *PhysicsSystem) SetStatic(id ecs.EntityID, static bool) error {
	rb, ok := ecs.GetComponent[*components.RigidBodyComponent](ps.em, id)
	if !ok {
		return fmt.Errorf("entity %d has no rigid body", id)
	}
	rb.IsStatic = static
	if static {
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](ps.em, id); ok {
			vel.VX, vel.VY = 0, 0
		}
	}
	return nil
}

// Stop 停止模拟，之后 Update 不再推进任何刚体
func (ps *PhysicsSystem) Stop() {
	if ps.running {
		log.Printf("[PhysicsSystem] Simulation stopped")
	}
	ps.running = false
}

// IsRunning 模拟是否仍在运行
func (ps *PhysicsSystem) IsRunning() bool {
	return ps.running
}

// Update 推进一帧物理模拟
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒）
func (ps *PhysicsSystem) Update(deltaTime float64) {
	if !ps.running || deltaTime <= 0 {
		return
	}

	bodies := ps.collectBodies()
	steps := ps.stepCount(bodies, deltaTime)
	h := deltaTime / float64(steps)

	current := make(map[contactKey]bool, len(ps.contacts))
	var events []CollisionEvent

	for i := 0; i < steps; i++ {
		ps.integrate(bodies, h)
		ps.resolve(bodies, func(a, b body) {
			key := contactKey{a: a.id, b: b.id}
			if current[key] {
				return
			}
			current[key] = true
			if !ps.contacts[key] {
				events = append(events, CollisionEvent{
					A:      a.id,
					B:      b.id,
					LabelA: a.rb.Label,
					LabelB: b.rb.Label,
				})
			}
		})
	}
	ps.contacts = current

	for _, e := range events {
		for _, fn := range ps.listeners {
			fn(e)
		}
	}
}

// collectBodies 收集所有刚体，按实体ID升序
// 缺少速度组件的刚体会被补上一个
func (ps *PhysicsSystem) collectBodies() []body {
	ids := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.CollisionComponent,
		*components.RigidBodyComponent,
	](ps.em)

	bodies := make([]body, 0, len(ids))
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](ps.em, id)
		rb, _ := ecs.GetComponent[*components.RigidBodyComponent](ps.em, id)
		vel, ok := ecs.GetComponent[*components.VelocityComponent](ps.em, id)
		if !ok {
			vel = &components.VelocityComponent{}
			ps.em.AddComponent(id, vel)
		}
		bodies = append(bodies, body{id: id, pos: pos, vel: vel, col: col, rb: rb})
	}
	return bodies
}

// stepCount 根据最快刚体的预计速度决定本帧子步数
func (ps *PhysicsSystem) stepCount(bodies []body, deltaTime float64) int {
	maxSpeed := 0.0
	for _, b := range bodies {
		if b.rb.IsStatic {
			continue
		}
		speed := math.Hypot(b.vel.VX, b.vel.VY) + math.Abs(ps.gravity)*deltaTime
		maxSpeed = math.Max(maxSpeed, speed)
	}

	steps := ps.substeps
	if need := int(math.Ceil(maxSpeed * deltaTime / maxStepDistance)); need > steps {
		steps = need
	}
	if steps > maxSubsteps {
		steps = maxSubsteps
	}
	return steps
}

// integrate 半隐式欧拉：先更新速度，再用新速度更新位置
func (ps *PhysicsSystem) integrate(bodies []body, h float64) {
	for _, b := range bodies {
		if b.rb.IsStatic {
			continue
		}
		b.vel.VY += ps.gravity * h
		b.pos.X += b.vel.VX * h
		b.pos.Y += b.vel.VY * h
	}
}

// resolve 检测所有刚体对并分离重叠的刚体
func (ps *PhysicsSystem) resolve(bodies []body, onContact func(a, b body)) {
	for i := 0; i < len(bodies); i++ {
		a := bodies[i]
		for j := i + 1; j < len(bodies); j++ {
			b := bodies[j]
			if a.rb.IsStatic && b.rb.IsStatic {
				continue
			}
			if !checkAABBCollision(a, b) {
				continue
			}
			nx, ny, depth, ok := penetration(a, b)
			if !ok {
				continue
			}
			onContact(a, b)
			separate(a, b, nx, ny, depth)
		}
	}
}

// checkAABBCollision 检查两个刚体的包围盒是否重叠（粗检测）
// 包围盒中心对齐实体位置，允许边界接触
func checkAABBCollision(a, b body) bool {
	hw1, hh1 := a.col.Bounds()
	hw2, hh2 := b.col.Bounds()

	return a.pos.X+hw1 >= b.pos.X-hw2 &&
		a.pos.X-hw1 <= b.pos.X+hw2 &&
		a.pos.Y+hh1 >= b.pos.Y-hh2 &&
		a.pos.Y-hh1 <= b.pos.Y+hh2
}

// penetration 精确检测两个刚体的穿透
//
// 返回:
//   - nx, ny: 由 a 指向 b 的单位法向量
//   - depth: 穿透深度（像素）
//   - ok: 是否穿透
func penetration(a, b body) (nx, ny, depth float64, ok bool) {
	aCircle := a.col.Shape == components.ColliderCircle
	bCircle := b.col.Shape == components.ColliderCircle

	switch {
	case aCircle && bCircle:
		nx, ny, depth = circleCircle(a.pos.X, a.pos.Y, a.col.Radius, b.pos.X, b.pos.Y, b.col.Radius)
	case aCircle:
		// 结果由矩形指向圆，取反后为 a 指向 b
		nx, ny, depth = rectCircle(b.pos.X, b.pos.Y, b.col.Width/2, b.col.Height/2, a.pos.X, a.pos.Y, a.col.Radius)
		nx, ny = -nx, -ny
	case bCircle:
		nx, ny, depth = rectCircle(a.pos.X, a.pos.Y, a.col.Width/2, a.col.Height/2, b.pos.X, b.pos.Y, b.col.Radius)
	default:
		nx, ny, depth = rectRect(a.pos.X, a.pos.Y, a.col.Width/2, a.col.Height/2, b.pos.X, b.pos.Y, b.col.Width/2, b.col.Height/2)
	}

	if depth <= contactSlop {
		return 0, 0, 0, false
	}
	return nx, ny, depth, true
}

func circleCircle(ax, ay, ar, bx, by, br float64) (nx, ny, depth float64) {
	dx, dy := bx-ax, by-ay
	dist := math.Hypot(dx, dy)
	if dist >= ar+br {
		return 0, 0, 0
	}
	if dist == 0 {
		return 1, 0, ar + br
	}
	return dx / dist, dy / dist, ar + br - dist
}

// rectCircle 矩形与圆的穿透，法向量由矩形指向圆
func rectCircle(rx, ry, hw, hh, cx, cy, r float64) (nx, ny, depth float64) {
	dx, dy := cx-rx, cy-ry
	closestX := math.Max(-hw, math.Min(hw, dx))
	closestY := math.Max(-hh, math.Min(hh, dy))
	ox, oy := dx-closestX, dy-closestY

	if ox == 0 && oy == 0 {
		// 圆心落在矩形内部（或边上）：沿穿透最浅的轴推出
		penX := hw - math.Abs(dx)
		penY := hh - math.Abs(dy)
		if penX < penY {
			return sign(dx), 0, penX + r
		}
		return 0, sign(dy), penY + r
	}

	dist := math.Hypot(ox, oy)
	if dist >= r {
		return 0, 0, 0
	}
	return ox / dist, oy / dist, r - dist
}

func rectRect(ax, ay, ahw, ahh, bx, by, bhw, bhh float64) (nx, ny, depth float64) {
	dx, dy := bx-ax, by-ay
	overlapX := ahw + bhw - math.Abs(dx)
	overlapY := ahh + bhh - math.Abs(dy)
	if overlapX <= 0 || overlapY <= 0 {
		return 0, 0, 0
	}
	if overlapX < overlapY {
		return sign(dx), 0, overlapX
	}
	return 0, sign(dy), overlapY
}

// separate 沿法向量分离两个刚体并去掉相互接近的法向速度
func separate(a, b body, nx, ny, depth float64) {
	switch {
	case a.rb.IsStatic:
		b.pos.X += nx * depth
		b.pos.Y += ny * depth
		if vn := b.vel.VX*nx + b.vel.VY*ny; vn < 0 {
			b.vel.VX -= nx * vn
			b.vel.VY -= ny * vn
		}
	case b.rb.IsStatic:
		a.pos.X -= nx * depth
		a.pos.Y -= ny * depth
		if vn := a.vel.VX*nx + a.vel.VY*ny; vn > 0 {
			a.vel.VX -= nx * vn
			a.vel.VY -= ny * vn
		}
	default:
		half := depth / 2
		a.pos.X -= nx * half
		a.pos.Y -= ny * half
		b.pos.X += nx * half
		b.pos.Y += ny * half

		rel := (b.vel.VX-a.vel.VX)*nx + (b.vel.VY-a.vel.VY)*ny
		if rel < 0 {
			a.vel.VX += nx * rel / 2
			a.vel.VY += ny * rel / 2
			b.vel.VX -= nx * rel / 2
			b.vel.VY -= ny * rel / 2
		}
	}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
