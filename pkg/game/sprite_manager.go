package game

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gonewx/pvzsim/pkg/sprite"
	"github.com/gonewx/pvzsim/pkg/types"
)

// ErrSpriteNotFound 实体不存在
var ErrSpriteNotFound = errors.New("sprite not found")

// SpriteManager 管理当前场景中的全部实体
// 实体按绘制顺序（Order）稳定排序，同序的实体保持加入顺序
type SpriteManager struct {
	sprites []*sprite.Sprite
}

// NewSpriteManager 创建一个空的实体集合
func NewSpriteManager() *SpriteManager {
	return &SpriteManager{}
}

// Add 加入一个实体
func (sm *SpriteManager) Add(s *sprite.Sprite) {
	sm.sprites = append(sm.sprites, s)
	sm.sort()
}

// AddAll 批量加入实体
func (sm *SpriteManager) AddAll(sprites []*sprite.Sprite) {
	sm.sprites = append(sm.sprites, sprites...)
	sm.sort()
}

// Sort 在实体的 Order 改变后重新排序
func (sm *SpriteManager) Sort() {
	sm.sort()
}

func (sm *SpriteManager) sort() {
	slices.SortStableFunc(sm.sprites, func(a, b *sprite.Sprite) int {
		return a.Order - b.Order
	})
}

// All 返回全部实体（按绘制顺序），调用方不应修改返回的切片
func (sm *SpriteManager) All() []*sprite.Sprite {
	return sm.sprites
}

// Len 返回实体数量
func (sm *SpriteManager) Len() int {
	return len(sm.sprites)
}

// GetByID 按 ID 查找实体
func (sm *SpriteManager) GetByID(id string) (*sprite.Sprite, error) {
	for _, s := range sm.sprites {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: id %s", ErrSpriteNotFound, id)
}

// GetByNameAndType 按名称和种类查找第一个实体
func (sm *SpriteManager) GetByNameAndType(name string, kind types.SpriteType) (*sprite.Sprite, error) {
	for _, s := range sm.sprites {
		if s.Name == name && s.Type == kind {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %s %s", ErrSpriteNotFound, kind, name)
}

// GetByType 返回指定种类的全部实体
func (sm *SpriteManager) GetByType(kind types.SpriteType) []*sprite.Sprite {
	var out []*sprite.Sprite
	for _, s := range sm.sprites {
		if s.Type == kind {
			out = append(out, s)
		}
	}
	return out
}

// RemoveByIDs 移除指定 ID 的实体，返回实际移除的数量
func (sm *SpriteManager) RemoveByIDs(ids ...string) int {
	before := len(sm.sprites)
	sm.sprites = slices.DeleteFunc(sm.sprites, func(s *sprite.Sprite) bool {
		return slices.Contains(ids, s.ID)
	})
	return before - len(sm.sprites)
}

// RemoveInvisible 移除所有不可见的实体，返回移除的数量
func (sm *SpriteManager) RemoveInvisible() int {
	before := len(sm.sprites)
	sm.sprites = slices.DeleteFunc(sm.sprites, func(s *sprite.Sprite) bool {
		return !s.Visible
	})
	return before - len(sm.sprites)
}

// Clear 移除全部实体
func (sm *SpriteManager) Clear() {
	sm.sprites = nil
}
