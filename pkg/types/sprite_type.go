// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "strings"

// SpriteType 定义精灵（实体）的种类
// 种类同时决定碰撞兼容性（见 TargetType）以及绑定哪一种碰撞处理器
type SpriteType int

const (
	// SpriteMeta 元实体，不参与任何碰撞（也是"无目标"的占位种类）
	SpriteMeta SpriteType = iota
	// SpriteZombie 僵尸
	SpriteZombie
	// SpritePlant 植物
	SpritePlant
	// SpriteBullet 子弹
	SpriteBullet
	// SpriteCard 植物卡片
	SpriteCard
	// SpriteSeed 种子（选卡界面）
	SpriteSeed
	// SpriteInterface 界面道具（背景、按钮、铲子等）
	SpriteInterface
	// SpriteLawnCleaner 除草车
	SpriteLawnCleaner
)

// String 返回精灵种类的字符串表示
func (t SpriteType) String() string {
	switch t {
	case SpriteZombie:
		return "Zombie"
	case SpritePlant:
		return "Plant"
	case SpriteBullet:
		return "Bullet"
	case SpriteCard:
		return "Card"
	case SpriteSeed:
		return "Seed"
	case SpriteInterface:
		return "Interface"
	case SpriteLawnCleaner:
		return "LawnCleaner"
	default:
		return "Meta"
	}
}

// ParseSpriteType 将资源数据中的字符串（不区分大小写）转换为精灵种类
// 返回 false 表示无法识别
func ParseSpriteType(s string) (SpriteType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "zombie":
		return SpriteZombie, true
	case "plant":
		return SpritePlant, true
	case "bullet":
		return SpriteBullet, true
	case "card":
		return SpriteCard, true
	case "seed":
		return SpriteSeed, true
	case "interface":
		return SpriteInterface, true
	case "lawncleaner", "lawn_cleaner":
		return SpriteLawnCleaner, true
	case "meta":
		return SpriteMeta, true
	default:
		return SpriteMeta, false
	}
}

// TargetType 返回该种类攻击的目标种类
//
// 碰撞兼容表：
//   - Zombie → Plant
//   - Bullet → Zombie
//   - Plant  → Bullet
//   - 其他种类 → Meta（即没有目标）
func (t SpriteType) TargetType() SpriteType {
	switch t {
	case SpriteZombie:
		return SpritePlant
	case SpriteBullet:
		return SpriteZombie
	case SpritePlant:
		return SpriteBullet
	default:
		return SpriteMeta
	}
}

// CanTarget 判断 t 是否可以把 other 作为碰撞目标
func (t SpriteType) CanTarget(other SpriteType) bool {
	target := t.TargetType()
	return target != SpriteMeta && target == other
}

// Collidable 该种类是否可以携带碰撞行为（有对应的碰撞处理器）
func (t SpriteType) Collidable() bool {
	switch t {
	case SpriteZombie, SpritePlant, SpriteBullet, SpriteInterface, SpriteLawnCleaner:
		return true
	default:
		return false
	}
}

// MarshalText 实现 encoding.TextMarshaler，便于 YAML 序列化
func (t SpriteType) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(t.String())), nil
}
