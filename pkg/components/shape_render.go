package components

import "image/color"

// ShapeRenderComponent 以纯色填充绘制碰撞形状
type ShapeRenderComponent struct {
	Fill   color.NRGBA
	Hidden bool
}
