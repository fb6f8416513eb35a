package behavior

import (
	"fmt"

	"github.com/gonewx/pvzsim/pkg/config"
	"github.com/gonewx/pvzsim/pkg/sprite"
	"github.com/gonewx/pvzsim/pkg/types"
)

// Create 根据声明式数据创建行为（工厂）
func Create(data config.BehaviorData) (sprite.Behavior, error) {
	kind, err := data.BehaviorType()
	if err != nil {
		return nil, err
	}

	switch kind {
	case types.BehaviorHover:
		return NewHover(), nil
	case types.BehaviorClick:
		return NewClick(data.Callback), nil
	case types.BehaviorDrag:
		return NewDrag(data.Callback), nil
	case types.BehaviorScroll:
		return NewScroll(data.Distance, data.Rate, data.Callback), nil
	case types.BehaviorAnimate:
		return NewAnimate(data.Rate, data.Callback, data.CallbackDelay, data.MaxCycles), nil
	case types.BehaviorWalk:
		return NewWalk(data.Distance, data.Velocity, data.Callback), nil
	case types.BehaviorInterval:
		return NewInterval(data.Interval, data.Callback), nil
	case types.BehaviorCollision:
		return NewCollision(data.Margin), nil
	default:
		return nil, fmt.Errorf("%w: %s", config.ErrUnknownBehavior, kind)
	}
}

// CreateAll 按声明顺序创建实体的全部行为
func CreateAll(data []config.BehaviorData) ([]sprite.Behavior, error) {
	behaviors := make([]sprite.Behavior, 0, len(data))
	for _, d := range data {
		b, err := Create(d)
		if err != nil {
			return nil, err
		}
		behaviors = append(behaviors, b)
	}
	return behaviors, nil
}

// Run 执行实体上所有运行中的行为，按行为顺序收集变更
// 所有行为读取的都是同一个实体快照，本函数不应用任何变更
func Run(s *sprite.Sprite, f sprite.Frame) ([]*sprite.Mutation, error) {
	var mutations []*sprite.Mutation
	for _, b := range s.Behaviors {
		if !b.IsRunning() {
			continue
		}
		m, err := b.Execute(s, f)
		if err != nil {
			return nil, fmt.Errorf("%s behavior of sprite %s (%s): %w", b.Type(), s.ID, s.Name, err)
		}
		if !m.IsEmpty() {
			mutations = append(mutations, m)
		}
	}
	return mutations, nil
}

// ToggleSpriteBehaviors 启动或停止实体上指定种类的行为
func ToggleSpriteBehaviors(s *sprite.Sprite, kinds []types.BehaviorType, run bool, now float64) {
	for _, b := range s.Behaviors {
		if types.ContainsBehaviorType(kinds, b.Type()) {
			sprite.ToggleBehavior(b, run, now)
		}
	}
}

// ToggleBehaviors 对一组实体批量启停指定种类的行为
func ToggleBehaviors(sprites []*sprite.Sprite, kinds []types.BehaviorType, run bool, now float64) {
	for _, s := range sprites {
		ToggleSpriteBehaviors(s, kinds, run, now)
	}
}

// CollectInteractions 取出实体所有行为的待处理交互，每个交互只交付一次
func CollectInteractions(s *sprite.Sprite) []types.Interaction {
	var out []types.Interaction
	for _, b := range s.Behaviors {
		out = append(out, b.DrainInteractions()...)
	}
	return out
}

// Get 返回实体上第一个具体类型为 T 的行为
//
//	scroll, err := behavior.Get[*behavior.Scroll](background)
func Get[T sprite.Behavior](s *sprite.Sprite) (T, error) {
	for _, b := range s.Behaviors {
		if typed, ok := b.(T); ok {
			return typed, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %T on sprite %s (%s)", sprite.ErrBehaviorNotFound, zero, s.ID, s.Name)
}
