package types

// Callback 交互回调标识符
// 核心层只负责传递标识符，具体含义由场景/游戏层（交互接收方）解释
type Callback string

// 已知的回调标识符
const (
	CallbackNone             Callback = ""
	CallbackShowPlantChooser Callback = "ShowPlantChooser"
	CallbackStartBattle      Callback = "StartBattle"
	CallbackPlantCardClick   Callback = "PlantCardClick"
	CallbackSeedClick        Callback = "SeedClick"
	CallbackPlant            Callback = "Plant"
	CallbackShovel           Callback = "Shovel"
	CallbackSunClick         Callback = "SunClick"
	CallbackReverseSun       Callback = "ReverseSun"
	CallbackZombieDeath      Callback = "OnZombieDeath"
	CallbackLawnCleanerLost  Callback = "LawnCleanerLost"
	CallbackShootBullet      Callback = "ShootBullet"
	CallbackProduceSun       Callback = "ProduceSun"
)

// Interaction 由行为产生、交给外部接收方处理的交互事件
type Interaction struct {
	Callback Callback
	SpriteID string
}

// AttackEffect 一次性的攻击效果修饰
type AttackEffect int

const (
	AttackEffectNone AttackEffect = iota
	// AttackEffectFireBullet 子弹穿过火炬后变为火焰子弹
	AttackEffectFireBullet
)

// ParseAttackEffect 将资源数据中的字符串转换为攻击效果，空串表示没有效果
func ParseAttackEffect(s string) (AttackEffect, bool) {
	switch s {
	case "":
		return AttackEffectNone, true
	case "fire_bullet":
		return AttackEffectFireBullet, true
	default:
		return AttackEffectNone, false
	}
}
