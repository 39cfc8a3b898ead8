// internal/app/app_test.go
package app

import (
	"fmt"
	"go-arena-battler/internal/battle"
	"go-arena-battler/internal/defs"
	"go-arena-battler/internal/entity"
	"go-arena-battler/internal/event"
	"go-arena-battler/internal/system"
	"go-arena-battler/internal/utils"
)

// Обвязка тестов пакета: подсистемы с фиксированным сидом и сочинённые
// на месте комбинации — без каталога из JSON.

type testParts struct {
	ctx        *system.DamageContext
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	systems    *simSystems
	spawner    *Spawner
	pool       *battle.ProjectilePool
	fallback   *defs.Combination
}

func newTestParts(seed int64) *testParts {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	registry := battle.NewRegistry(ecs)
	pool := battle.NewProjectilePool(16)
	rng := utils.NewPRNGService(seed)

	ctx := &system.DamageContext{
		ECS:        ecs,
		Registry:   registry,
		Dispatcher: dispatcher,
		Rng:        rng,
	}
	systems := &simSystems{
		status:     system.NewStatusEffectSystem(ctx),
		ability:    system.NewAbilitySystem(ctx),
		movement:   system.NewMovementSystem(ctx),
		combat:     system.NewCombatSystem(ctx, pool),
		projectile: system.NewProjectileSystem(ctx, pool),
	}
	fallback := testCombo("FALLBACK", defs.ElementFire, 0, 100, 1)
	spawner := NewSpawner(ctx, fallback)
	return &testParts{
		ctx:        ctx,
		dispatcher: dispatcher,
		rng:        rng,
		systems:    systems,
		spawner:    spawner,
		pool:       pool,
		fallback:   fallback,
	}
}

// testCombo собирает валидную ближнебойную комбинацию с заданными
// уроном, здоровьем и численностью.
func testCombo(id string, element defs.Element, damage, health float64, quantity int) *defs.Combination {
	return &defs.Combination{
		ID:   id,
		Name: id,
		Body: &defs.BodyDefinition{ID: "BODY_" + id, MaxHealth: health, MoveSpeed: 60, AttackRange: 900},
		Weapon: &defs.WeaponDefinition{
			ID:         "WEAPON_" + id,
			BaseDamage: damage,
			Cooldown:   1.0,
			Shape:      defs.ShapeMelee,
		},
		Ability:  &defs.AbilityDefinition{ID: "NOOP_" + id, Kind: defs.AbilityRegeneration, Power: 0},
		Element:  element,
		Quantity: quantity,
	}
}

func testPool(n int) []*defs.Combination {
	out := make([]*defs.Combination, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, testCombo(fmt.Sprintf("COMBO_%02d", i), defs.ElementFire, 10, 100, 1))
	}
	return out
}
