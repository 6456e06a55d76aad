package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager 管理当前活动场景
// 同一时刻只有一个场景的 Update 和 Draw 会被调用
type SceneManager struct {
	currentScene Scene
	frames       int // 当前场景已更新的帧数
}

// NewSceneManager 创建场景管理器
// 初始没有活动场景，需要调用 SwitchTo 设置
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换活动场景并重置帧计数
func (sm *SceneManager) SwitchTo(scene Scene) {
	log.Printf("[SceneManager] Switch to %T", scene)
	sm.currentScene = scene
	sm.frames = 0
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Frames 返回当前场景已更新的帧数
func (sm *SceneManager) Frames() int {
	return sm.frames
}

// Update 更新当前场景，没有场景时不做任何事
// deltaTime 为距上一帧的秒数
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene == nil {
		return
	}
	sm.currentScene.Update(deltaTime)
	sm.frames++
}

// Draw 绘制当前场景，没有场景时不做任何事
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
