// internal/system/combat.go
package system

import (
	"go-arena-battler/internal/battle"
	"go-arena-battler/internal/component"
	"go-arena-battler/internal/config"
	"go-arena-battler/internal/defs"
	"go-arena-battler/internal/types"
	"go-arena-battler/internal/utils"
	"math"
)

// CombatSystem управляет атаками юнитов: выбор цели, откат атаки,
// расчёт урона. Урон считается один раз — в момент атаки; снаряд несёт
// уже готовое число, и смерть стрелявшего по пути ничего не меняет.
type CombatSystem struct {
	ctx  *DamageContext
	pool *battle.ProjectilePool
}

func NewCombatSystem(ctx *DamageContext, pool *battle.ProjectilePool) *CombatSystem {
	return &CombatSystem{ctx: ctx, pool: pool}
}

func (s *CombatSystem) Update(deltaTime float64) {
	ecs := s.ctx.ECS
	for id, troop := range ecs.Troops {
		health, ok := ecs.Healths[id]
		if !ok || !health.Alive {
			continue
		}

		if troop.Cooldown > 0 {
			troop.Cooldown -= deltaTime
		}

		if _, stunned := ecs.StunEffects[id]; stunned {
			continue
		}

		// Цель умерла или её не было — ищем ближайшего живого врага.
		if !s.targetAlive(troop.TargetID) {
			pos := ecs.Positions[id]
			troop.TargetID = s.ctx.Registry.NearestEnemy(troop.Side, pos.X, pos.Y)
		}
		if troop.TargetID == 0 {
			continue // врагов нет — стоим без дела
		}

		pos := ecs.Positions[id]
		targetPos, ok := ecs.Positions[troop.TargetID]
		if !ok {
			troop.TargetID = 0
			continue
		}
		if utils.Dist(pos.X, pos.Y, targetPos.X, targetPos.Y) > troop.AttackRange {
			continue
		}
		if troop.Cooldown > 0 {
			continue
		}

		s.resolveAttack(id, troop)
		troop.Cooldown = troop.Combination.Weapon.Cooldown
	}
}

func (s *CombatSystem) targetAlive(id types.EntityID) bool {
	if id == 0 {
		return false
	}
	health, ok := s.ctx.ECS.Healths[id]
	return ok && health.Alive
}

// resolveAttack вычисляет итоговый урон и применяет его согласно
// форме оружия.
func (s *CombatSystem) resolveAttack(id types.EntityID, troop *component.Troop) {
	ecs := s.ctx.ECS
	targetTroop, ok := ecs.Troops[troop.TargetID]
	if !ok {
		return
	}

	damage := troop.BaseDamage
	damage *= defs.ElementMultiplier(troop.Combination.Element, targetTroop.Combination.Element)
	damage = AbilityModifyOutgoing(s.ctx, id, damage)

	state := ecs.Abilities[id]
	effectiveness := 1.0
	if state != nil {
		effectiveness = state.Effectiveness
	}
	ability := troop.Combination.Ability

	AbilityOnAttack(s.ctx, id)

	switch troop.Combination.Weapon.Shape {
	case defs.ShapeMelee:
		s.ctx.ApplyDamage(troop.TargetID, id, damage)
		AbilityOnHit(s.ctx, ability, effectiveness, troop.TargetID)
	case defs.ShapeArea:
		s.resolveAreaAttack(id, troop, damage, ability, effectiveness)
	case defs.ShapeLinear, defs.ShapeHoming:
		s.spawnProjectile(id, troop, damage, ability, effectiveness)
	}
}

// resolveAreaAttack бьёт основную цель полным уроном, всех живых врагов
// в радиусе вокруг неё — уменьшенным.
func (s *CombatSystem) resolveAreaAttack(id types.EntityID, troop *component.Troop, damage float64, ability *defs.AbilityDefinition, effectiveness float64) {
	primaryID := troop.TargetID
	primaryPos, ok := s.ctx.ECS.Positions[primaryID]
	if !ok {
		return
	}
	// Снимок до применения урона: смерть основной цели не должна
	// менять список второстепенных.
	others := s.ctx.Registry.EnemiesWithin(troop.Side, primaryPos.X, primaryPos.Y, config.AreaRadius)

	s.ctx.ApplyDamage(primaryID, id, damage)
	AbilityOnHit(s.ctx, ability, effectiveness, primaryID)

	for _, otherID := range others {
		if otherID == primaryID {
			continue
		}
		s.ctx.ApplyDamage(otherID, id, damage*config.AreaDamageFactor)
	}
}

// spawnProjectile выпускает снаряд с уже вычисленным уроном. Если пула
// нет (деградация), урон применяется немедленно: бой не должен молча
// ничего не делать.
func (s *CombatSystem) spawnProjectile(id types.EntityID, troop *component.Troop, damage float64, ability *defs.AbilityDefinition, effectiveness float64) {
	ecs := s.ctx.ECS
	pos := ecs.Positions[id]
	targetPos := ecs.Positions[troop.TargetID]

	if s.pool == nil {
		s.ctx.ApplyDamage(troop.TargetID, id, damage)
		AbilityOnHit(s.ctx, ability, effectiveness, troop.TargetID)
		return
	}

	proj := s.pool.Acquire()
	proj.Side = troop.Side
	proj.Shape = troop.Combination.Weapon.Shape
	proj.Damage = damage
	proj.SourceID = id
	proj.Ability = ability
	proj.AbilityEffect = effectiveness
	proj.AimX = targetPos.X
	proj.AimY = targetPos.Y
	proj.Direction = math.Atan2(targetPos.Y-pos.Y, targetPos.X-pos.X)
	proj.Speed = config.ProjectileSpeed
	proj.Lifetime = config.ProjectileLifetime
	if proj.Shape == defs.ShapeHoming {
		proj.TargetID = troop.TargetID
	}

	projID := ecs.NewEntity()
	ecs.Positions[projID] = &component.Position{X: pos.X, Y: pos.Y}
	ecs.Projectiles[projID] = proj
	ecs.Renderables[projID] = &component.Renderable{
		Color:  config.ElementColors[string(troop.Combination.Element)],
		Radius: config.ProjectileRadius,
	}
}
