package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameFeatures 可开关的模拟特性
// 这些开关是全局的，跨场景持久化
type GameFeatures struct {
	DrawBoardLines bool `yaml:"drawBoardLines"` // 绘制草坪网格线（调试）
	UpdateSunScore bool `yaml:"updateSunScore"` // 收集阳光时累加分数
	GenerateSun    bool `yaml:"generateSun"`    // 天空周期性掉落阳光
}

// DefaultFeatures 返回默认特性开关
func DefaultFeatures() GameFeatures {
	return GameFeatures{
		DrawBoardLines: false,
		UpdateSunScore: true,
		GenerateSun:    true,
	}
}

// SettingsManager 特性开关的持久化
// 负责开关的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	features     GameFeatures
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "features"
)

// NewSettingsManager 创建设置管理器并尝试加载已保存的开关
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		features:     DefaultFeatures(),
	}

	// 加载失败不是致命错误，使用默认设置
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load features: %v (using defaults)", err)
	}
	return sm
}

// Load 从 gdata 加载开关
// gdataManager 为 nil 或尚未保存过时使用默认值
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.features = DefaultFeatures()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.features = DefaultFeatures()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.features = DefaultFeatures()
		return fmt.Errorf("failed to load features: %w", err)
	}

	loaded := DefaultFeatures()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.features = DefaultFeatures()
		return fmt.Errorf("failed to unmarshal features: %w", err)
	}

	sm.features = loaded
	log.Printf("[SettingsManager] Features loaded: %+v", loaded)
	return nil
}

// Save 保存开关到 gdata
// gdataManager 为 nil 时什么都不做
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.features)
	if err != nil {
		return fmt.Errorf("failed to marshal features: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save features: %w", err)
	}

	log.Printf("[SettingsManager] Features saved")
	return nil
}

// Features 返回当前开关
func (sm *SettingsManager) Features() GameFeatures {
	return sm.features
}

// SetFeatures 替换当前开关
// 注意：仅修改内存中的设置，需调用 Save() 持久化
func (sm *SettingsManager) SetFeatures(f GameFeatures) {
	sm.features = f
}
