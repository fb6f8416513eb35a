package sprite

import "github.com/gonewx/pvzsim/pkg/types"

// Mutation 行为在一帧内对实体产生的稀疏变更
// 未设置的字段在应用时不产生任何效果
//
// 绝对字段（位置、透明度、换装索引等）是"设置"语义，重复应用结果不变；
// Damage 和 IncreaseDamage 是累加语义。
type Mutation struct {
	Position       *types.Position
	Offset         *types.Position
	Hovered        *bool
	Swap           *int // 负数表示回到默认帧集合
	Cycle          bool
	Visible        *bool
	Mute           *bool
	Damage         *float64
	IncreaseDamage *float64
	Alpha          *float64
	Walking        *bool // 启动/停止实体的 Walk 行为
	StopAnimate    bool  // 把 Animate 行为截断为只剩一个循环
}

// NewMutation 创建空变更
func NewMutation() *Mutation {
	return &Mutation{}
}

func (m *Mutation) WithPosition(p types.Position) *Mutation {
	m.Position = &p
	return m
}

func (m *Mutation) WithOffset(offset types.Position) *Mutation {
	m.Offset = &offset
	return m
}

func (m *Mutation) WithHovered(hovered bool) *Mutation {
	m.Hovered = &hovered
	return m
}

func (m *Mutation) WithSwap(index int) *Mutation {
	m.Swap = &index
	return m
}

// WithCycle 前进到下一帧
func (m *Mutation) WithCycle() *Mutation {
	m.Cycle = true
	return m
}

// Hide 设置可见性，hide=true 表示隐藏
func (m *Mutation) Hide(hide bool) *Mutation {
	visible := !hide
	m.Visible = &visible
	return m
}

func (m *Mutation) WithMute(muted bool) *Mutation {
	m.Mute = &muted
	return m
}

// WithDamage 受到伤害（累加）
func (m *Mutation) WithDamage(damage float64) *Mutation {
	m.Damage = &damage
	return m
}

// WithIncreaseDamage 提高自身攻击力（累加）
func (m *Mutation) WithIncreaseDamage(amount float64) *Mutation {
	m.IncreaseDamage = &amount
	return m
}

func (m *Mutation) WithAlpha(alpha float64) *Mutation {
	m.Alpha = &alpha
	return m
}

func (m *Mutation) WithWalking(walking bool) *Mutation {
	m.Walking = &walking
	return m
}

func (m *Mutation) WithStopAnimate() *Mutation {
	m.StopAnimate = true
	return m
}

// IsEmpty 没有设置任何字段
func (m *Mutation) IsEmpty() bool {
	return m == nil || *m == Mutation{}
}

// touchesVisuals 是否影响当前帧或位置（需要重算轮廓）
func (m *Mutation) touchesVisuals() bool {
	return m.Position != nil || m.Hovered != nil || m.Swap != nil || m.Cycle
}
