package game

import "github.com/gonewx/pvzsim/pkg/config"

// SunState 阳光状态
type SunState struct {
	Score int // 当前阳光
}

// GameState 一局模拟的全局状态
// 特性开关是显式字段，由 SettingsManager 初始化
type GameState struct {
	Features GameFeatures
	Sun      SunState
}

// NewGameState 创建游戏状态，sm 为 nil 时使用默认开关
func NewGameState(sm *SettingsManager) *GameState {
	features := DefaultFeatures()
	if sm != nil {
		features = sm.Features()
	}
	return &GameState{
		Features: features,
		Sun:      SunState{Score: config.InitialSunScore},
	}
}

// AddSun 增加阳光，UpdateSunScore 关闭时不计分
// 返回是否计分
func (gs *GameState) AddSun(amount int) bool {
	if !gs.Features.UpdateSunScore {
		return false
	}
	gs.Sun.Score += amount
	if gs.Sun.Score > config.MaxSunScore {
		gs.Sun.Score = config.MaxSunScore
	}
	return true
}

// SpendSun 扣除阳光，不足时返回 false 且不扣除
func (gs *GameState) SpendSun(amount int) bool {
	if gs.Sun.Score < amount {
		return false
	}
	gs.Sun.Score -= amount
	return true
}
