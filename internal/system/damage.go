// internal/system/damage.go
package system

import (
	"go-arena-battler/internal/battle"
	"go-arena-battler/internal/defs"
	"go-arena-battler/internal/entity"
	"go-arena-battler/internal/event"
	"go-arena-battler/internal/types"
	"go-arena-battler/internal/utils"
)

// DamageContext — общий конвейер входящего урона. Все системы наносят
// урон только через него: здесь модификаторы способностей, защёлка
// смерти и оповещения. Никакая способность не меняет чужого юнита
// в обход этого конвейера.
type DamageContext struct {
	ECS        *entity.ECS
	Registry   *battle.Registry
	Dispatcher *event.Dispatcher
	Rng        *utils.PRNGService
}

// ApplyDamage наносит урон цели от атакующего (attackerID может быть 0 —
// урон от эффекта). Мёртвая цель отклоняет урон: гонка «цель умерла между
// решением об атаке и применением урона» решается этой проверкой, а не
// исключением.
func (c *DamageContext) ApplyDamage(targetID, attackerID types.EntityID, damage float64) {
	c.applyDamage(targetID, attackerID, damage, true)
}

func (c *DamageContext) applyDamage(targetID, attackerID types.EntityID, damage float64, allowReflect bool) {
	health, ok := c.ECS.Healths[targetID]
	if !ok || !health.Alive {
		return
	}
	if damage <= 0 {
		return
	}

	// Входящие модификаторы способностей цели.
	if negated := c.tryNegate(targetID); negated {
		return
	}

	health.Current -= damage
	if health.Current < 0 {
		health.Current = 0
	}
	AbilityOnDamageTaken(c, targetID)

	// Отражение части уже применённого урона. Отражённый урон сам
	// не отражается, иначе две «колючки» зациклятся.
	if allowReflect && attackerID != 0 {
		c.tryReflect(targetID, attackerID, damage)
	}

	if health.Current <= 0 {
		c.kill(targetID, attackerID)
	}
}

// tryNegate — шанс полного игнорирования удара (WARD).
func (c *DamageContext) tryNegate(targetID types.EntityID) bool {
	troop, ok := c.ECS.Troops[targetID]
	if !ok {
		return false
	}
	state := c.ECS.Abilities[targetID]
	if state == nil || troop.Combination.Ability.Kind != defs.AbilityWard {
		return false
	}
	chance := troop.Combination.Ability.Chance * state.Effectiveness
	return c.Rng.Float64() < chance
}

// tryReflect возвращает атакующему часть урона (REFLECT).
func (c *DamageContext) tryReflect(targetID, attackerID types.EntityID, damage float64) {
	troop, ok := c.ECS.Troops[targetID]
	if !ok {
		return
	}
	state := c.ECS.Abilities[targetID]
	if state == nil || troop.Combination.Ability.Kind != defs.AbilityReflect {
		return
	}
	reflected := damage * troop.Combination.Ability.Power * state.Effectiveness
	if reflected > 0 {
		c.applyDamage(attackerID, targetID, reflected, false)
	}
}

// kill фиксирует смерть: защёлка Alive, снятие с учёта, хуки on-death и
// on-kill, событие и удаление сущности. Снятие с учёта идемпотентно.
func (c *DamageContext) kill(targetID, attackerID types.EntityID) {
	health := c.ECS.Healths[targetID]
	health.Alive = false

	troop, ok := c.ECS.Troops[targetID]
	if !ok {
		c.ECS.RemoveEntity(targetID)
		return
	}

	AbilityOnDeath(c, targetID)
	if attackerID != 0 {
		AbilityOnKill(c, attackerID)
	}

	c.Registry.Unregister(targetID, troop.Side)
	c.Dispatcher.Dispatch(event.Event{
		Type: event.TroopDied,
		Data: event.TroopEventData{ID: targetID, Side: troop.Side},
	})
	c.ECS.RemoveEntity(targetID)
}

// Heal лечит живого юнита, не превышая максимума.
func (c *DamageContext) Heal(id types.EntityID, amount float64) {
	health, ok := c.ECS.Healths[id]
	if !ok || !health.Alive || amount <= 0 {
		return
	}
	health.Current += amount
	if health.Current > health.Max {
		health.Current = health.Max
	}
}
