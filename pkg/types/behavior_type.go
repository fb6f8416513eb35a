package types

import "strings"

// BehaviorType 定义行为的种类
type BehaviorType int

const (
	BehaviorHover BehaviorType = iota
	BehaviorClick
	BehaviorDrag
	BehaviorScroll
	BehaviorAnimate
	BehaviorWalk
	BehaviorInterval
	BehaviorCollision
)

var behaviorTypeNames = map[BehaviorType]string{
	BehaviorHover:     "Hover",
	BehaviorClick:     "Click",
	BehaviorDrag:      "Drag",
	BehaviorScroll:    "Scroll",
	BehaviorAnimate:   "Animate",
	BehaviorWalk:      "Walk",
	BehaviorInterval:  "Interval",
	BehaviorCollision: "Collision",
}

// String 返回行为种类名称（与资源数据中的 name 字段一致）
func (b BehaviorType) String() string {
	if name, ok := behaviorTypeNames[b]; ok {
		return name
	}
	return "Unknown"
}

// ParseBehaviorType 根据资源数据中的名称解析行为种类（不区分大小写）
func ParseBehaviorType(s string) (BehaviorType, bool) {
	s = strings.TrimSpace(s)
	for t, name := range behaviorTypeNames {
		if strings.EqualFold(name, s) {
			return t, true
		}
	}
	return 0, false
}

// ContainsBehaviorType 判断列表中是否包含指定行为种类
func ContainsBehaviorType(list []BehaviorType, t BehaviorType) bool {
	for _, item := range list {
		if item == t {
			return true
		}
	}
	return false
}
