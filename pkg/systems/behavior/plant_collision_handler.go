package behavior

// PlantCollisionHandler 植物只会被攻击，使用默认的受击/死亡反应
type PlantCollisionHandler struct {
	baseCollisionHandler
}
