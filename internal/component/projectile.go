// internal/component/projectile.go
package component

import (
	"go-arena-battler/internal/defs"
	"go-arena-battler/internal/types"
)

// Projectile — летящий снаряд. Урон вычислен один раз в момент атаки
// и переносится готовым: изменения состояния способностей между выстрелом
// и попаданием его не трогают. HasHit — защёлка одного попадания.
type Projectile struct {
	Side          types.Side
	Shape         defs.WeaponShape // LINEAR или HOMING
	Damage        float64          // итоговый урон с учётом стихии и способностей
	SourceID      types.EntityID   // стрелявший (для способностей on-hit)
	Ability       *defs.AbilityDefinition
	AbilityEffect float64 // эффективность способности стрелявшего

	TargetID   types.EntityID // слабая ссылка, только для HOMING
	AimX, AimY float64        // точка прицеливания
	Direction  float64        // текущее направление, радианы
	Speed      float64
	Lifetime   float64 // оставшееся время жизни
	HasHit     bool
}
