package game

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"log"

	"github.com/gonewx/pvzsim/pkg/config"
	"github.com/gonewx/pvzsim/pkg/outline"
	"github.com/gonewx/pvzsim/pkg/sprite"
	"github.com/gonewx/pvzsim/pkg/systems/behavior"
	"github.com/gonewx/pvzsim/pkg/types"
	"github.com/gonewx/pvzsim/pkg/utils"
)

// SpritesDir 精灵资源文件所在目录（相对于数据根目录）
const SpritesDir = "sprites"

// ResourceManager 集中管理声明式精灵数据和精灵图集
//
// 数据来自一个 fs.FS（默认是嵌入的 data 目录，开发时可以是 os.DirFS），
// 每个 sprites/*.yaml 文件声明一组精灵，图集路径相对于同一个根目录。
// 图集只解码一次并缓存，精确轮廓按图集和视觉帧缓存，所有实体共享。
//
// 非线程安全：只应在游戏循环所在的 goroutine 中使用
//
// Usage:
//
//	rm := NewResourceManager(dataFS)
//	if err := rm.Load(); err != nil {
//	    return err
//	}
//	zombies, err := rm.CreateSprites("zombie", types.SpriteZombie, now)
type ResourceManager struct {
	fsys   fs.FS
	config *config.ResourceConfig
	images   map[string]image.Image // 图集路径 → 解码后的图像
	outlines *outline.Cache
	nextID   int
}

// NewResourceManager 创建资源管理器
func NewResourceManager(fsys fs.FS) *ResourceManager {
	return &ResourceManager{
		fsys:     fsys,
		images:   make(map[string]image.Image),
		outlines: outline.NewCache(),
	}
}

// Load 加载 sprites 目录下的全部资源文件
func (rm *ResourceManager) Load() error {
	rc, err := config.LoadResourceDir(rm.fsys, SpritesDir)
	if err != nil {
		return err
	}
	rm.config = rc
	log.Printf("[ResourceManager] Loaded %d sprite declarations", len(rc.Sprites))
	return nil
}

// Reload 重新加载资源文件并清空图集和轮廓缓存
// 加载失败时保留旧数据
func (rm *ResourceManager) Reload() error {
	rc, err := config.LoadResourceDir(rm.fsys, SpritesDir)
	if err != nil {
		return fmt.Errorf("failed to reload resources: %w", err)
	}
	rm.config = rc
	rm.images = make(map[string]image.Image)
	rm.outlines = outline.NewCache()
	log.Printf("[ResourceManager] Reloaded %d sprite declarations", len(rc.Sprites))
	return nil
}

// OutlineCount 返回已缓存的精确轮廓数量
func (rm *ResourceManager) OutlineCount() int {
	return rm.outlines.Len()
}

// Config 返回当前的资源数据，Load 之前为 nil
func (rm *ResourceManager) Config() *config.ResourceConfig {
	return rm.config
}

// LoadImage 加载并缓存一张图集
func (rm *ResourceManager) LoadImage(path string) (image.Image, error) {
	if img, ok := rm.images[path]; ok {
		return img, nil
	}

	f, err := rm.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	rm.images[path] = img
	return img, nil
}

// CreateSprites 按声明的每个生成位置创建一个实体
// 声明了 start 的行为在 now 时刻启动
func (rm *ResourceManager) CreateSprites(name string, kind types.SpriteType, now float64) ([]*sprite.Sprite, error) {
	data, err := rm.find(name, kind)
	if err != nil {
		return nil, err
	}

	positions := append([]types.Position(nil), data.Positions...)
	for _, p := range data.BoardPlacements {
		positions = append(positions, utils.GetBoardPlacement(data.Cells[0], p.Row, p.Col))
	}

	out := make([]*sprite.Sprite, 0, len(positions))
	for _, pos := range positions {
		s, err := rm.build(data, kind, pos, now)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// CreateSprite 在指定位置创建一个实体（运行时生成，例如子弹和阳光）
func (rm *ResourceManager) CreateSprite(name string, kind types.SpriteType, pos types.Position, now float64) (*sprite.Sprite, error) {
	data, err := rm.find(name, kind)
	if err != nil {
		return nil, err
	}
	return rm.build(data, kind, pos, now)
}

// CreateAll 创建资源数据中所有声明了生成位置的实体
func (rm *ResourceManager) CreateAll(now float64) ([]*sprite.Sprite, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resources not loaded - call Load first")
	}

	var out []*sprite.Sprite
	for i := range rm.config.Sprites {
		data := &rm.config.Sprites[i]
		if len(data.Positions) == 0 && len(data.BoardPlacements) == 0 {
			continue
		}
		kind, err := data.Type()
		if err != nil {
			return nil, err
		}
		sprites, err := rm.CreateSprites(data.Name, kind, now)
		if err != nil {
			return nil, err
		}
		out = append(out, sprites...)
	}
	return out, nil
}

func (rm *ResourceManager) find(name string, kind types.SpriteType) (*config.SpriteData, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resources not loaded - call Load first")
	}
	data, ok := rm.config.Find(name, kind)
	if !ok {
		return nil, fmt.Errorf("%w: no resource declared for %s %s", ErrSpriteNotFound, kind, name)
	}
	return data, nil
}

func (rm *ResourceManager) build(data *config.SpriteData, kind types.SpriteType, pos types.Position, now float64) (*sprite.Sprite, error) {
	var img image.Image
	if data.Image != "" {
		loaded, err := rm.LoadImage(data.Image)
		if err != nil {
			return nil, err
		}
		img = loaded
	}

	effect, err := data.AttackEffect()
	if err != nil {
		return nil, err
	}

	behaviors, err := behavior.CreateAll(data.Behaviors)
	if err != nil {
		return nil, fmt.Errorf("sprite %s: %w", data.Name, err)
	}

	rm.nextID++
	s, err := sprite.New(sprite.Config{
		ID:           fmt.Sprintf("%s_%s_%d", kind, data.Name, rm.nextID),
		Name:         data.Name,
		Type:         kind,
		Order:        data.Order,
		Position:     pos,
		Cells:        data.Cells,
		SwapCells:    data.SwapCells,
		Scale:        data.Scale,
		Offset:       data.Offset,
		ExactOutline: data.ExactOutline,
		Outlines:     rm.outlines,
		Image:        img,
		Life:         data.Life,
		Damage:       data.Damage,
		Effect:       effect,
		Behaviors:    behaviors,
	})
	if err != nil {
		return nil, err
	}

	for i, b := range behaviors {
		if data.Behaviors[i].Start {
			b.Start(now)
		}
	}
	return s, nil
}
