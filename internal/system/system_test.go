// internal/system/system_test.go
package system

import (
	"go-arena-battler/internal/battle"
	"go-arena-battler/internal/component"
	"go-arena-battler/internal/defs"
	"go-arena-battler/internal/entity"
	"go-arena-battler/internal/event"
	"go-arena-battler/internal/types"
	"go-arena-battler/internal/utils"
)

// Общая обвязка тестов пакета: контекст урона с фиксированным сидом
// и ручной спавн юнитов из сочинённых на месте комбинаций.

func newTestContext(seed int64) *DamageContext {
	ecs := entity.NewECS()
	return &DamageContext{
		ECS:        ecs,
		Registry:   battle.NewRegistry(ecs),
		Dispatcher: event.NewDispatcher(),
		Rng:        utils.NewPRNGService(seed),
	}
}

type comboSpec struct {
	element  defs.Element
	shape    defs.WeaponShape
	damage   float64
	cooldown float64
	rng      float64
	health   float64
	quantity int
	ability  *defs.AbilityDefinition
}

func makeCombo(spec comboSpec) *defs.Combination {
	ability := spec.ability
	if ability == nil {
		ability = &defs.AbilityDefinition{ID: "NOOP", Kind: defs.AbilityRegeneration, Power: 0}
	}
	quantity := spec.quantity
	if quantity == 0 {
		quantity = 1
	}
	return &defs.Combination{
		ID:       "TEST_" + string(spec.element) + "_" + string(spec.shape),
		Name:     "test build",
		Body:     &defs.BodyDefinition{ID: "BODY", MaxHealth: spec.health, MoveSpeed: 60, AttackRange: spec.rng},
		Weapon:   &defs.WeaponDefinition{ID: "WEAPON", BaseDamage: spec.damage, Cooldown: spec.cooldown, Shape: spec.shape},
		Ability:  ability,
		Element:  spec.element,
		Quantity: quantity,
	}
}

func spawnTroop(ctx *DamageContext, c *defs.Combination, side types.Side, x, y float64) types.EntityID {
	id := ctx.ECS.NewEntity()
	ctx.ECS.Positions[id] = &component.Position{X: x, Y: y}
	ctx.ECS.Velocities[id] = &component.Velocity{Speed: c.Body.MoveSpeed}
	perUnit := c.PerUnitHealth()
	ctx.ECS.Healths[id] = &component.Health{Current: perUnit, Max: perUnit, Alive: true}
	ctx.ECS.Troops[id] = &component.Troop{
		Side:        side,
		Combination: c,
		AttackRange: c.Body.AttackRange,
		BaseDamage:  c.PerUnitDamage(),
	}
	AbilityOnSpawn(ctx, id, c)
	ctx.Registry.Register(id, side)
	return id
}
