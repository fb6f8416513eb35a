package sprite

import (
	"errors"
	"fmt"

	"github.com/gonewx/pvzsim/pkg/outline"
	"github.com/gonewx/pvzsim/pkg/types"
)

// ErrBehaviorNotFound 实体上没有指定种类的行为
var ErrBehaviorNotFound = errors.New("behavior not found")

// Frame 一次行为执行的输入
type Frame struct {
	Now      float64        // 当前帧时间戳（毫秒）
	LastTick float64        // 上一帧时间戳（毫秒）
	Pointer  types.Position // 指针位置
	Painter  outline.Painter
}

// Rate 返回本帧经过的秒数，用于按"每秒"换算的速度
func (f Frame) Rate() float64 {
	return (f.Now - f.LastTick) / 1000
}

// Behavior 绑定到一个实体的、可独立启停的逐帧逻辑
//
// Execute 只在运行中被调用，它读取实体的一致快照，返回（可选的）变更；
// 同一帧内其他行为产生的变更对它不可见。
type Behavior interface {
	Type() types.BehaviorType
	IsRunning() bool
	Start(now float64)
	Stop(now float64)
	SpriteID() string
	SetSpriteID(id string)
	// DrainInteractions 取出并清空待处理的交互事件，每个事件只会被取出一次
	DrainInteractions() []types.Interaction
	Execute(s *Sprite, f Frame) (*Mutation, error)
}

// ToggleBehavior 启动或停止行为
func ToggleBehavior(b Behavior, run bool, now float64) {
	if run {
		b.Start(now)
	} else {
		b.Stop(now)
	}
}

// FindBehavior 返回实体上第一个指定种类的行为
func (s *Sprite) FindBehavior(t types.BehaviorType) (Behavior, error) {
	for _, b := range s.Behaviors {
		if b.Type() == t {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %s on sprite %s (%s)", ErrBehaviorNotFound, t, s.ID, s.Name)
}

// HasRunningBehavior 实体上是否有运行中的指定种类行为
func (s *Sprite) HasRunningBehavior(t types.BehaviorType) bool {
	for _, b := range s.Behaviors {
		if b.Type() == t && b.IsRunning() {
			return true
		}
	}
	return false
}
