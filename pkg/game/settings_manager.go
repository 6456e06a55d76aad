package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"
)

// GameSettings 全局显示偏好
type GameSettings struct {
	Fullscreen   bool `yaml:"fullscreen"`   // 启动时是否全屏
	ShowSolution bool `yaml:"showSolution"` // 开局时是否显示解答路径
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{}
}

// SettingsManager 设置管理器
// 偏好修改后立即写回 gdata，下次启动时恢复
type SettingsManager struct {
	prop     yamlProp
	settings *GameSettings
}

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		prop:     yamlProp{manager: gdataManager, object: "settings", property: "global"},
		settings: DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}
	return sm
}

// Load 从 gdata 加载设置
// 未保存过或读取失败时使用默认设置
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()

	var loaded GameSettings
	found, err := sm.prop.load(&loaded)
	if err != nil || !found {
		return err
	}

	sm.settings = &loaded
	log.Printf("[SettingsManager] Settings loaded: fullscreen=%v showSolution=%v", loaded.Fullscreen, loaded.ShowSolution)
	return nil
}

// Save 保存设置到 gdata
func (sm *SettingsManager) Save() error {
	return sm.prop.save(sm.settings)
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetFullscreen 设置全屏偏好并立即保存
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
	sm.saveOrWarn()
}

// SetShowSolution 设置解答路径显示偏好并立即保存
func (sm *SettingsManager) SetShowSolution(enabled bool) {
	sm.settings.ShowSolution = enabled
	sm.saveOrWarn()
}

func (sm *SettingsManager) saveOrWarn() {
	if err := sm.Save(); err != nil {
		log.Printf("[SettingsManager] Warning: %v", err)
	}
}
