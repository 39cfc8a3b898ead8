// internal/component/troop.go
package component

import (
	"go-arena-battler/internal/defs"
	"go-arena-battler/internal/types"
)

// Troop — боевой юнит. Цель хранится слабой ссылкой (EntityID):
// юнит никогда не владеет своей целью и перед использованием
// проверяет, что она ещё жива.
type Troop struct {
	Side        types.Side
	Combination *defs.Combination
	TargetID    types.EntityID // 0 — цели нет
	Cooldown    float64        // оставшееся время до следующей атаки
	AttackRange float64
	BaseDamage  float64 // урон одного юнита с учётом множителя количества
}
