// internal/system/damage_test.go
package system

import (
	"go-arena-battler/internal/defs"
	"go-arena-battler/internal/event"
	"go-arena-battler/internal/types"
	"testing"
)

func TestApplyDamageSubtractsAndClamps(t *testing.T) {
	ctx := newTestContext(1)
	c := makeCombo(comboSpec{element: defs.ElementFire, shape: defs.ShapeMelee, damage: 10, cooldown: 1, rng: 40, health: 100})
	id := spawnTroop(ctx, c, types.SideA, 0, 0)

	ctx.ApplyDamage(id, 0, 30)
	if got := ctx.ECS.Healths[id].Current; got != 70 {
		t.Fatalf("health after 30 damage = %v, want 70", got)
	}

	// Отрицательный и нулевой урон отклоняются.
	ctx.ApplyDamage(id, 0, 0)
	ctx.ApplyDamage(id, 0, -5)
	if got := ctx.ECS.Healths[id].Current; got != 70 {
		t.Fatalf("health after zero damage = %v, want 70", got)
	}
}

func TestApplyDamageDeadTargetRejected(t *testing.T) {
	ctx := newTestContext(1)
	c := makeCombo(comboSpec{element: defs.ElementFire, shape: defs.ShapeMelee, damage: 10, cooldown: 1, rng: 40, health: 100})
	id := spawnTroop(ctx, c, types.SideA, 0, 0)

	died := 0
	ctx.Dispatcher.Subscribe(event.TroopDied, event.ListenerFunc(func(e event.Event) { died++ }))

	ctx.ApplyDamage(id, 0, 500)
	if died != 1 {
		t.Fatalf("TroopDied fired %d times, want 1", died)
	}
	if ctx.Registry.AliveCount(types.SideA) != 0 {
		t.Fatal("dead troop still counted alive")
	}

	// Повторный урон по мёртвому — no-op, второй смерти нет.
	ctx.ApplyDamage(id, 0, 500)
	if died != 1 {
		t.Fatalf("damage to dead troop fired TroopDied again (%d times)", died)
	}
}

func TestWardNegatesWithCertainChance(t *testing.T) {
	ctx := newTestContext(1)
	ward := &defs.AbilityDefinition{ID: "WARD", Kind: defs.AbilityWard, Chance: 1.0}
	c := makeCombo(comboSpec{element: defs.ElementWater, shape: defs.ShapeMelee, damage: 10, cooldown: 1, rng: 40, health: 100, ability: ward})
	id := spawnTroop(ctx, c, types.SideA, 0, 0)

	for i := 0; i < 10; i++ {
		ctx.ApplyDamage(id, 0, 50)
	}
	if got := ctx.ECS.Healths[id].Current; got != 100 {
		t.Fatalf("ward with chance 1.0 let damage through: health = %v", got)
	}
}

func TestReflectReturnsShareWithoutLooping(t *testing.T) {
	ctx := newTestContext(1)
	reflect := &defs.AbilityDefinition{ID: "REFLECT", Kind: defs.AbilityReflect, Power: 0.5}
	cA := makeCombo(comboSpec{element: defs.ElementFire, shape: defs.ShapeMelee, damage: 10, cooldown: 1, rng: 40, health: 100, ability: reflect})
	cB := makeCombo(comboSpec{element: defs.ElementFire, shape: defs.ShapeMelee, damage: 10, cooldown: 1, rng: 40, health: 100, ability: reflect})
	a := spawnTroop(ctx, cA, types.SideA, 0, 0)
	b := spawnTroop(ctx, cB, types.SideB, 50, 0)

	// Обе стороны с отражением: 40 урона по A, половина назад по B,
	// и на этом цепочка обязана закончиться.
	ctx.ApplyDamage(a, b, 40)
	if got := ctx.ECS.Healths[a].Current; got != 60 {
		t.Fatalf("target health = %v, want 60", got)
	}
	if got := ctx.ECS.Healths[b].Current; got != 80 {
		t.Fatalf("attacker health after reflect = %v, want 80", got)
	}
}

func TestHealClampsAtMax(t *testing.T) {
	ctx := newTestContext(1)
	c := makeCombo(comboSpec{element: defs.ElementNature, shape: defs.ShapeMelee, damage: 10, cooldown: 1, rng: 40, health: 100})
	id := spawnTroop(ctx, c, types.SideA, 0, 0)

	ctx.ApplyDamage(id, 0, 30)
	ctx.Heal(id, 1000)
	if got := ctx.ECS.Healths[id].Current; got != 100 {
		t.Fatalf("heal overshot max: health = %v, want 100", got)
	}
}

func TestKillRemovesEntity(t *testing.T) {
	ctx := newTestContext(1)
	c := makeCombo(comboSpec{element: defs.ElementFire, shape: defs.ShapeMelee, damage: 10, cooldown: 1, rng: 40, health: 50})
	id := spawnTroop(ctx, c, types.SideA, 0, 0)

	ctx.ApplyDamage(id, 0, 50)
	if _, ok := ctx.ECS.Troops[id]; ok {
		t.Fatal("dead troop entity not removed from ECS")
	}
	if _, ok := ctx.ECS.Positions[id]; ok {
		t.Fatal("dead troop position not removed from ECS")
	}
}
