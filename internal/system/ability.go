// internal/system/ability.go
package system

import (
	"go-arena-battler/internal/component"
	"go-arena-battler/internal/defs"
	"go-arena-battler/internal/types"
)

// Способности — закрытый набор категорий. У юнита ровно восемь точек
// расширения: OnSpawn, per-tick Update, ModifyOutgoing, ModifyIncoming
// (WARD и REFLECT живут в конвейере урона), OnAttack, OnDamageTaken,
// OnKill, OnDeath. Ходить к чужим юнитам напрямую способности не могут —
// только через DamageContext.

// AbilitySystem отвечает за периодические способности.
type AbilitySystem struct {
	ctx *DamageContext
}

func NewAbilitySystem(ctx *DamageContext) *AbilitySystem {
	return &AbilitySystem{ctx: ctx}
}

// Update — точка per-tick. Сейчас периодическая категория одна —
// регенерация.
func (s *AbilitySystem) Update(deltaTime float64) {
	for id, troop := range s.ctx.ECS.Troops {
		state := s.ctx.ECS.Abilities[id]
		if state == nil {
			continue
		}
		ability := troop.Combination.Ability
		if ability.Kind == defs.AbilityRegeneration {
			s.ctx.Heal(id, ability.Power*state.Effectiveness*deltaTime)
		}
	}
}

// AbilityOnSpawn — точка initialize-on-spawn.
func AbilityOnSpawn(ctx *DamageContext, id types.EntityID, c *defs.Combination) {
	ctx.ECS.Abilities[id] = &component.AbilityState{
		Effectiveness: c.AbilityEffectiveness(),
	}
}

// AbilityModifyOutgoing применяет исходящие модификаторы атакующего.
func AbilityModifyOutgoing(ctx *DamageContext, id types.EntityID, damage float64) float64 {
	troop, ok := ctx.ECS.Troops[id]
	if !ok {
		return damage
	}
	state := ctx.ECS.Abilities[id]
	if state == nil {
		return damage
	}
	ability := troop.Combination.Ability
	switch ability.Kind {
	case defs.AbilityBerserk:
		if health, ok := ctx.ECS.Healths[id]; ok && health.Current < health.Max*0.5 {
			damage *= 1.0 + ability.Power*state.Effectiveness
		}
	case defs.AbilityFirstStrike:
		if !state.FirstStrikeUsed {
			damage *= 1.0 + ability.Power*state.Effectiveness
		}
	}
	return damage
}

// AbilityOnAttack — точка on-attack-performed: здесь гаснет «первый удар».
// Вызывается в момент атаки, а не попадания: урон снаряда уже вычислен.
func AbilityOnAttack(ctx *DamageContext, id types.EntityID) {
	if state := ctx.ECS.Abilities[id]; state != nil {
		state.FirstStrikeUsed = true
	}
}

// AbilityOnHit навешивает эффекты категории «контроль» и on-hit на жертву
// после успешного попадания. ability и effectiveness приходят снимком из
// момента атаки — для снарядов стрелявший к этому моменту может быть мёртв.
func AbilityOnHit(ctx *DamageContext, ability *defs.AbilityDefinition, effectiveness float64, victimID types.EntityID) {
	if ability == nil {
		return
	}
	health, ok := ctx.ECS.Healths[victimID]
	if !ok || !health.Alive {
		return
	}
	switch ability.Kind {
	case defs.AbilityPoison:
		ctx.ECS.PoisonEffects[victimID] = &component.PoisonEffect{
			Timer:        ability.Duration,
			TickTimer:    1.0,
			DamagePerSec: ability.Power * effectiveness,
		}
	case defs.AbilitySlowHit:
		ctx.ECS.SlowEffects[victimID] = &component.SlowEffect{
			Timer:      ability.Duration,
			SlowFactor: 1.0 - ability.Power*effectiveness,
		}
	case defs.AbilityStunHit:
		if ctx.Rng.Float64() < ability.Chance {
			ctx.ECS.StunEffects[victimID] = &component.StunEffect{Timer: ability.Duration}
		}
	case defs.AbilityRootHit:
		if ctx.Rng.Float64() < ability.Chance {
			ctx.ECS.RootEffects[victimID] = &component.RootEffect{Timer: ability.Duration}
		}
	}
}

// AbilityOnDamageTaken — точка on-damage-taken, зовётся на каждом
// пропущенном ударе. Берсерк читает здоровье в момент атаки, так что
// в базовом каталоге точка пуста.
func AbilityOnDamageTaken(ctx *DamageContext, id types.EntityID) {
	_ = ctx
	_ = id
}

// AbilityOnKill — точка on-kill: лайфстил лечит убийцу.
func AbilityOnKill(ctx *DamageContext, killerID types.EntityID) {
	troop, ok := ctx.ECS.Troops[killerID]
	if !ok {
		return
	}
	state := ctx.ECS.Abilities[killerID]
	if state == nil {
		return
	}
	if troop.Combination.Ability.Kind == defs.AbilityLifesteal {
		ctx.Heal(killerID, troop.Combination.Ability.Power*state.Effectiveness)
	}
}

// AbilityOnDeath — точка on-death. В базовом каталоге на смерть никто не
// реагирует, но точка вызывается всегда: новая способность подключится
// без правок конвейера.
func AbilityOnDeath(ctx *DamageContext, id types.EntityID) {
	_ = ctx
	_ = id
}
