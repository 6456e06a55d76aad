// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyReader 读取当前帧的键盘状态
// 系统只通过该接口读取输入，测试中替换为 KeyState
type KeyReader interface {
	// IsKeyPressed 按键当前是否处于按下状态
	IsKeyPressed(key ebiten.Key) bool
	// IsKeyJustPressed 按键是否在本帧刚被按下
	IsKeyJustPressed(key ebiten.Key) bool
	// AnyKeyJustReleased 本帧是否有任意按键被松开
	AnyKeyJustReleased() bool
}

// EbitenKeys 基于 ebiten/inpututil 的键盘实现
// 只能在 ebiten 的 Update 中调用
type EbitenKeys struct {
	released []ebiten.Key
}

// NewEbitenKeys 创建真实键盘读取器
func NewEbitenKeys() *EbitenKeys {
	return &EbitenKeys{}
}

// IsKeyPressed 实现 KeyReader
func (k *EbitenKeys) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// IsKeyJustPressed 实现 KeyReader
func (k *EbitenKeys) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// AnyKeyJustReleased 实现 KeyReader，复用内部切片避免每帧分配
func (k *EbitenKeys) AnyKeyJustReleased() bool {
	k.released = inpututil.AppendJustReleasedKeys(k.released[:0])
	return len(k.released) > 0
}

// KeyState 固定的按键状态快照
// 零值表示没有任何按键活动
type KeyState struct {
	Pressed     map[ebiten.Key]bool
	JustPressed map[ebiten.Key]bool
	Released    bool
}

// IsKeyPressed 实现 KeyReader
func (s *KeyState) IsKeyPressed(key ebiten.Key) bool {
	return s.Pressed[key]
}

// IsKeyJustPressed 实现 KeyReader
func (s *KeyState) IsKeyJustPressed(key ebiten.Key) bool {
	return s.JustPressed[key]
}

// AnyKeyJustReleased 实现 KeyReader
func (s *KeyState) AnyKeyJustReleased() bool {
	return s.Released
}

// Press 标记按键按下（同时记为本帧刚按下）
func (s *KeyState) Press(keys ...ebiten.Key) {
	if s.Pressed == nil {
		s.Pressed = make(map[ebiten.Key]bool)
	}
	if s.JustPressed == nil {
		s.JustPressed = make(map[ebiten.Key]bool)
	}
	for _, key := range keys {
		s.Pressed[key] = true
		s.JustPressed[key] = true
	}
}

// Release 松开按键
func (s *KeyState) Release(keys ...ebiten.Key) {
	for _, key := range keys {
		delete(s.Pressed, key)
		delete(s.JustPressed, key)
	}
	s.Released = true
}

// NextFrame 进入下一帧：清除“刚按下”和“刚松开”标记，保留按住的键
func (s *KeyState) NextFrame() {
	clear(s.JustPressed)
	s.Released = false
}

// AnyKeyPressed 任一按键处于按下状态
func AnyKeyPressed(r KeyReader, keys ...ebiten.Key) bool {
	for _, key := range keys {
		if r.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// AnyKeyJustPressed 任一按键在本帧刚被按下
func AnyKeyJustPressed(r KeyReader, keys ...ebiten.Key) bool {
	for _, key := range keys {
		if r.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
