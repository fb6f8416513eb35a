package config

// 单位配置常量
// 本文件定义了战斗反应与行为的调参数值
// 时间单位统一为毫秒

// Zombie Configuration (僵尸配置)
const (
	// ZombieAttackCooldown 僵尸攻击冷却（毫秒）
	// 冷却期间僵尸的伤害被静音，避免一次啃咬在多帧内重复结算
	ZombieAttackCooldown = 2000.0

	// ZombieArmoredLifeThreshold 护甲阈值
	// 生命值高于此值时使用带护甲的外观（走路/攻击）
	ZombieArmoredLifeThreshold = 100.0

	// ZombieHitAlpha 被击中时的闪烁透明度
	ZombieHitAlpha = 0.5

	// ZombieHitFlashDuration 被击中闪烁持续时间（毫秒），之后恢复透明度 1.0
	ZombieHitFlashDuration = 50.0

	// ZombieDeathAlpha 死亡时的透明度
	ZombieDeathAlpha = 0.9
)

// Bullet Configuration (子弹配置)
const (
	// BulletImpactDuration 子弹命中后显示"击中"外观的时长（毫秒），之后隐藏
	BulletImpactDuration = 50.0

	// FireBulletDamageBonus 火焰子弹的额外伤害
	FireBulletDamageBonus = 15.0
)

// Behavior Configuration (行为配置)
const (
	// DefaultAnimateCallbackDelay 动画循环结束后触发回调前的宽限时间（毫秒）
	DefaultAnimateCallbackDelay = 1000.0

	// DefaultAnimateMaxCycles 动画默认循环次数（0 表示无限循环）
	DefaultAnimateMaxCycles = 1

	// DefaultDelayedMutationTimeout 延迟变更计时器的默认时长（毫秒）
	DefaultDelayedMutationTimeout = 10000.0
)

// Sun Configuration (阳光配置)
const (
	// SunGenerateInterval 天空掉落阳光的间隔（毫秒）
	SunGenerateInterval = 25000.0

	// InitialSunScore 初始阳光
	InitialSunScore = 600

	// SunValue 每个阳光的价值
	SunValue = 25

	// MaxSunScore 阳光上限（原版游戏显示上限）
	MaxSunScore = 9990

	// SunflowerSunMaxCycles 向日葵阳光的动画循环次数
	SunflowerSunMaxCycles = 12

	// SunflowerSunVelocityX / SunflowerSunVelocityY 向日葵阳光弹出速度（像素/秒）
	SunflowerSunVelocityX = 30.0
	SunflowerSunVelocityY = -75.0

	// SunFallVelocityY 阳光回落速度（像素/秒）
	SunFallVelocityY = 20.0
)

// Engine Configuration (引擎配置)
const (
	// InvisibleSweepInterval 清理不可见实体的周期（毫秒）
	InvisibleSweepInterval = 1000.0
)
