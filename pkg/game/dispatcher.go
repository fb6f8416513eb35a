package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/gonewx/pvzsim/pkg/sprite"
	"github.com/gonewx/pvzsim/pkg/types"
)

// InteractionHandler 处理一个交互事件
// source 是产生交互的实体
type InteractionHandler func(now float64, source *sprite.Sprite) error

// Dispatcher 把行为产生的交互事件路由到场景/游戏层的处理函数
type Dispatcher struct {
	sprites  *SpriteManager
	handlers map[types.Callback]InteractionHandler
	unknown  map[types.Callback]bool // 已报告过的未注册回调
}

// NewDispatcher 创建分发器，sprites 用于按 ID 解析事件来源
func NewDispatcher(sprites *SpriteManager) *Dispatcher {
	return &Dispatcher{
		sprites:  sprites,
		handlers: make(map[types.Callback]InteractionHandler),
		unknown:  make(map[types.Callback]bool),
	}
}

// Handle 注册回调的处理函数，重复注册会替换旧的
func (d *Dispatcher) Handle(cb types.Callback, h InteractionHandler) {
	d.handlers[cb] = h
}

// Dispatch 依次处理交互事件
// 未注册的回调只记录一次日志；来源实体已被移除的事件被跳过
func (d *Dispatcher) Dispatch(now float64, interactions []types.Interaction) error {
	for _, in := range interactions {
		h, ok := d.handlers[in.Callback]
		if !ok {
			if !d.unknown[in.Callback] {
				d.unknown[in.Callback] = true
				log.Printf("[Dispatcher] No handler for %s (from %s)", in.Callback, in.SpriteID)
			}
			continue
		}

		source, err := d.sprites.GetByID(in.SpriteID)
		if errors.Is(err, ErrSpriteNotFound) {
			log.Printf("[Dispatcher] Dropping %s: source %s is gone", in.Callback, in.SpriteID)
			continue
		}

		if err := h(now, source); err != nil {
			return fmt.Errorf("handling %s from %s: %w", in.Callback, in.SpriteID, err)
		}
	}
	return nil
}
