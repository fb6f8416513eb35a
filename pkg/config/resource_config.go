package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/gonewx/pvzsim/pkg/types"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownSpriteType 资源数据中出现无法识别的精灵种类
	ErrUnknownSpriteType = errors.New("unknown sprite type")
	// ErrUnknownBehavior 资源数据中出现无法识别的行为名称
	ErrUnknownBehavior = errors.New("unknown behavior")
	// ErrUnknownEffect 资源数据中出现无法识别的攻击效果
	ErrUnknownEffect = errors.New("unknown attack effect")
	// ErrUnsupportedBehavior 行为与精灵的种类或帧数不匹配
	ErrUnsupportedBehavior = errors.New("behavior not supported by sprite")
)

// hoverMinCells 悬停时显示第 1 帧，所以每个帧集合至少需要两帧
const hoverMinCells = 2

// ResourceConfig 一个资源文件（例如 data/sprites/zombies.yaml）的内容
type ResourceConfig struct {
	Sprites []SpriteData `yaml:"sprites"`
}

// SpriteData 单个精灵的声明式生成数据
// 每个 Positions（或 BoardPlacements）条目会生成一个实体
type SpriteData struct {
	Name            string               `yaml:"name"`
	Kind            string               `yaml:"kind"`
	Image           string               `yaml:"image"`         // 精灵图集路径（相对于数据根目录，可选）
	Order           int                  `yaml:"order"`         // 绘制顺序
	Scale           float64              `yaml:"scale"`         // 渲染缩放（0 视为 1）
	ExactOutline    bool                 `yaml:"exact_outline"` // 是否使用精确轮廓做点击检测
	Life            float64              `yaml:"life"`
	Damage          float64              `yaml:"damage"`
	Effect          string               `yaml:"effect"` // 攻击效果，例如 fire_bullet
	Cost            int                  `yaml:"cost"`   // 种植消耗的阳光
	Positions       []types.Position     `yaml:"positions"`
	BoardPlacements []BoardPlacement     `yaml:"board"`
	Cells           []types.SpriteCell   `yaml:"cells"`
	SwapCells       [][]types.SpriteCell `yaml:"swap_cells"`
	Behaviors       []BehaviorData       `yaml:"behaviors"`
	Offset          types.Position       `yaml:"offset"` // 图像裁剪偏移
}

// BoardPlacement 以草坪行列声明的生成位置
type BoardPlacement struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// BehaviorData 行为声明，由行为管理器的工厂方法实例化
//
// 字段按行为种类解释：
//   - Animate: Rate 为每帧间隔（毫秒），MaxCycles（0 表示无限），CallbackDelay
//   - Scroll:  Rate 为速度（像素/秒），Distance 为目标距离
//   - Walk:    Velocity（像素/秒），Distance 为最大距离（0 表示不限）
//   - Interval: Interval（毫秒）
//   - Collision: Margin
type BehaviorData struct {
	Name          string                `yaml:"name"`
	Callback      types.Callback        `yaml:"callback"`
	Rate          float64               `yaml:"rate"`
	CallbackDelay *float64              `yaml:"callback_delay"`
	MaxCycles     *int                  `yaml:"max_cycles"`
	Distance      float64               `yaml:"distance"`
	Velocity      types.Velocity        `yaml:"velocity"`
	Interval      float64               `yaml:"interval"`
	Margin        types.CollisionMargin `yaml:"margin"`
	Start         bool                  `yaml:"start"` // 创建后立即启动
}

// Type 返回精灵种类，无法识别时返回错误
func (d *SpriteData) Type() (types.SpriteType, error) {
	t, ok := types.ParseSpriteType(d.Kind)
	if !ok {
		return types.SpriteMeta, fmt.Errorf("sprite %q: %w: %q", d.Name, ErrUnknownSpriteType, d.Kind)
	}
	return t, nil
}

// AttackEffect 返回精灵的攻击效果，无法识别时返回错误
func (d *SpriteData) AttackEffect() (types.AttackEffect, error) {
	e, ok := types.ParseAttackEffect(d.Effect)
	if !ok {
		return types.AttackEffectNone, fmt.Errorf("sprite %q: %w: %q", d.Name, ErrUnknownEffect, d.Effect)
	}
	return e, nil
}

// BehaviorType 返回行为种类，无法识别时返回错误
func (b *BehaviorData) BehaviorType() (types.BehaviorType, error) {
	t, ok := types.ParseBehaviorType(b.Name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownBehavior, b.Name)
	}
	return t, nil
}

// LoadResourceConfig 从文件系统加载并验证一个资源文件
// 参数:
//   - fsys: 资源文件系统（嵌入的 data 目录或 os.DirFS）
//   - name: 文件路径（fs.FS 路径格式）
func LoadResourceConfig(fsys fs.FS, name string) (*ResourceConfig, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource file %s: %w", name, err)
	}

	var rc ResourceConfig
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse resource YAML from %s: %w", name, err)
	}

	applyResourceDefaults(&rc)

	if err := rc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid resource config in %s: %w", name, err)
	}

	return &rc, nil
}

// LoadResourceDir 加载目录下所有 .yaml 资源文件并合并
func LoadResourceDir(fsys fs.FS, dir string) (*ResourceConfig, error) {
	matches, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list resource files in %s: %w", dir, err)
	}

	merged := &ResourceConfig{}
	for _, name := range matches {
		rc, err := LoadResourceConfig(fsys, name)
		if err != nil {
			return nil, err
		}
		merged.Sprites = append(merged.Sprites, rc.Sprites...)
	}
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("invalid resources in %s: %w", dir, err)
	}
	return merged, nil
}

// applyResourceDefaults 为缺失的可选字段设置默认值
func applyResourceDefaults(rc *ResourceConfig) {
	for i := range rc.Sprites {
		s := &rc.Sprites[i]
		if s.Scale == 0 {
			s.Scale = 1
		}
	}
}

// Validate 验证资源数据，提前暴露配置错误
// 重复声明按解析后的种类判断，合并多个文件后的配置同样适用
func (rc *ResourceConfig) Validate() error {
	seen := make(map[types.SpriteType]map[string]bool)
	for i := range rc.Sprites {
		s := &rc.Sprites[i]
		if s.Name == "" {
			return fmt.Errorf("sprite #%d: name is required", i)
		}
		kind, err := s.Type()
		if err != nil {
			return err
		}
		if _, err := s.AttackEffect(); err != nil {
			return err
		}
		if seen[kind] == nil {
			seen[kind] = make(map[string]bool)
		}
		if seen[kind][s.Name] {
			return fmt.Errorf("sprite %q: duplicate declaration for kind %s", s.Name, kind)
		}
		seen[kind][s.Name] = true

		if len(s.Cells) == 0 {
			return fmt.Errorf("sprite %q: at least one cell is required", s.Name)
		}
		for j, set := range s.SwapCells {
			if len(set) == 0 {
				return fmt.Errorf("sprite %q: swap cell set %d is empty", s.Name, j)
			}
		}
		for _, b := range s.Behaviors {
			if err := s.validateBehavior(kind, &b); err != nil {
				return fmt.Errorf("sprite %q: %w", s.Name, err)
			}
		}
	}
	return nil
}

// validateBehavior 检查行为能否在该精灵上运行
func (d *SpriteData) validateBehavior(kind types.SpriteType, b *BehaviorData) error {
	bt, err := b.BehaviorType()
	if err != nil {
		return err
	}

	switch bt {
	case types.BehaviorCollision:
		if !kind.Collidable() {
			return fmt.Errorf("%w: collision on kind %s", ErrUnsupportedBehavior, kind)
		}
	case types.BehaviorHover:
		if len(d.Cells) < hoverMinCells {
			return fmt.Errorf("%w: hover needs %d cells, got %d", ErrUnsupportedBehavior, hoverMinCells, len(d.Cells))
		}
		for j, set := range d.SwapCells {
			if len(set) < hoverMinCells {
				return fmt.Errorf("%w: hover needs %d cells in swap set %d, got %d",
					ErrUnsupportedBehavior, hoverMinCells, j, len(set))
			}
		}
	}
	return nil
}

// Find 按名称和种类查找精灵数据
func (rc *ResourceConfig) Find(name string, kind types.SpriteType) (*SpriteData, bool) {
	for i := range rc.Sprites {
		s := &rc.Sprites[i]
		if s.Name != name {
			continue
		}
		if t, err := s.Type(); err == nil && t == kind {
			return s, true
		}
	}
	return nil, false
}
