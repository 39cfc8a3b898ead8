// internal/system/status_test.go
package system

import (
	"go-arena-battler/internal/component"
	"go-arena-battler/internal/defs"
	"go-arena-battler/internal/types"
	"testing"
)

func TestStunGatesAttackAndMovement(t *testing.T) {
	ctx := newTestContext(1)
	combat := NewCombatSystem(ctx, nil)
	movement := NewMovementSystem(ctx)

	attacker := makeCombo(comboSpec{element: defs.ElementFire, shape: defs.ShapeMelee, damage: 40, cooldown: 1, rng: 60, health: 100})
	victim := makeCombo(comboSpec{element: defs.ElementFire, shape: defs.ShapeMelee, damage: 40, cooldown: 1, rng: 60, health: 100})
	a := spawnTroop(ctx, attacker, types.SideA, 200, 400)
	v := spawnTroop(ctx, victim, types.SideB, 600, 400)
	makePassive(ctx, v)
	ctx.ECS.Troops[a].TargetID = v

	ctx.ECS.StunEffects[a] = &component.StunEffect{Timer: 1.0}
	startX := ctx.ECS.Positions[a].X

	movement.Update(0.1)
	combat.Update(0.1)
	if ctx.ECS.Positions[a].X != startX {
		t.Fatal("stunned troop moved")
	}
	if ctx.ECS.Healths[v].Current != 100 {
		t.Fatal("stunned troop attacked")
	}
}

func TestRootPinsMovement(t *testing.T) {
	ctx := newTestContext(1)
	movement := NewMovementSystem(ctx)

	chaser := makeCombo(comboSpec{element: defs.ElementFire, shape: defs.ShapeMelee, damage: 40, cooldown: 1, rng: 40, health: 100})
	target := makeCombo(comboSpec{element: defs.ElementFire, shape: defs.ShapeMelee, damage: 40, cooldown: 1, rng: 40, health: 100})
	a := spawnTroop(ctx, chaser, types.SideA, 200, 400)
	v := spawnTroop(ctx, target, types.SideB, 300, 400)
	ctx.ECS.Troops[a].TargetID = v
	ctx.ECS.RootEffects[a] = &component.RootEffect{Timer: 2.0}

	movement.Update(1.0)
	if got := ctx.ECS.Positions[a].X; got != 200 {
		t.Fatalf("rooted troop moved: X = %v, want 200", got)
	}
}

func TestRootedTroopStillAttacks(t *testing.T) {
	ctx := newTestContext(1)
	combat := NewCombatSystem(ctx, nil)

	attacker := makeCombo(comboSpec{element: defs.ElementFire, shape: defs.ShapeMelee, damage: 40, cooldown: 1, rng: 60, health: 100})
	victim := makeCombo(comboSpec{element: defs.ElementFire, shape: defs.ShapeMelee, damage: 40, cooldown: 1, rng: 60, health: 100})
	a := spawnTroop(ctx, attacker, types.SideA, 200, 400)
	v := spawnTroop(ctx, victim, types.SideB, 250, 400)
	makePassive(ctx, v)
	ctx.ECS.Troops[a].TargetID = v
	ctx.ECS.RootEffects[a] = &component.RootEffect{Timer: 2.0}

	// Обездвиживание, в отличие от оглушения, атаки не блокирует.
	combat.Update(0.1)
	if got := ctx.ECS.Healths[v].Current; got != 60 {
		t.Fatalf("victim health = %v, want 60 (rooted attacker must still hit)", got)
	}
}

func TestRootAppliedOnHit(t *testing.T) {
	ctx := newTestContext(1)
	combat := NewCombatSystem(ctx, nil)

	root := &defs.AbilityDefinition{ID: "ROOT", Kind: defs.AbilityRootHit, Duration: 1.5, Chance: 1.0}
	attacker := makeCombo(comboSpec{element: defs.ElementFire, shape: defs.ShapeMelee, damage: 10, cooldown: 1, rng: 60, health: 100, ability: root})
	victim := makeCombo(comboSpec{element: defs.ElementFire, shape: defs.ShapeMelee, damage: 10, cooldown: 1, rng: 60, health: 100})
	a := spawnTroop(ctx, attacker, types.SideA, 200, 400)
	v := spawnTroop(ctx, victim, types.SideB, 250, 400)
	makePassive(ctx, v)
	ctx.ECS.Troops[a].TargetID = v

	combat.Update(0.1)
	effect, ok := ctx.ECS.RootEffects[v]
	if !ok {
		t.Fatal("root effect not applied on hit")
	}
	if effect.Timer != 1.5 {
		t.Fatalf("root timer = %v, want 1.5", effect.Timer)
	}
}

func TestStunExpires(t *testing.T) {
	ctx := newTestContext(1)
	status := NewStatusEffectSystem(ctx)

	c := makeCombo(comboSpec{element: defs.ElementFire, shape: defs.ShapeMelee, damage: 10, cooldown: 1, rng: 30, health: 100})
	id := spawnTroop(ctx, c, types.SideA, 200, 400)
	ctx.ECS.StunEffects[id] = &component.StunEffect{Timer: 0.5}

	status.Update(0.3)
	if _, ok := ctx.ECS.StunEffects[id]; !ok {
		t.Fatal("stun expired early")
	}
	status.Update(0.3)
	if _, ok := ctx.ECS.StunEffects[id]; ok {
		t.Fatal("stun did not expire")
	}
}

func TestSlowReducesMoveSpeed(t *testing.T) {
	ctx := newTestContext(1)
	movement := NewMovementSystem(ctx)

	// MoveSpeed 60 (из makeCombo), замедление вдвое.
	chaser := makeCombo(comboSpec{element: defs.ElementFire, shape: defs.ShapeMelee, damage: 10, cooldown: 1, rng: 30, health: 100})
	target := makeCombo(comboSpec{element: defs.ElementFire, shape: defs.ShapeMelee, damage: 10, cooldown: 1, rng: 30, health: 100})
	a := spawnTroop(ctx, chaser, types.SideA, 200, 400)
	v := spawnTroop(ctx, target, types.SideB, 800, 400)
	ctx.ECS.Troops[a].TargetID = v
	ctx.ECS.SlowEffects[a] = &component.SlowEffect{Timer: 5, SlowFactor: 0.5}

	movement.Update(1.0)
	moved := ctx.ECS.Positions[a].X - 200
	if moved != 30 {
		t.Fatalf("slowed troop moved %v, want 30", moved)
	}
}

func TestPoisonTicksEverySecond(t *testing.T) {
	ctx := newTestContext(1)
	status := NewStatusEffectSystem(ctx)

	c := makeCombo(comboSpec{element: defs.ElementNature, shape: defs.ShapeMelee, damage: 10, cooldown: 1, rng: 30, health: 100})
	id := spawnTroop(ctx, c, types.SideA, 200, 400)
	ctx.ECS.PoisonEffects[id] = &component.PoisonEffect{Timer: 3.5, TickTimer: 1.0, DamagePerSec: 10}

	status.Update(1.0)
	if got := ctx.ECS.Healths[id].Current; got != 90 {
		t.Fatalf("health after first poison tick = %v, want 90", got)
	}
	status.Update(1.0)
	if got := ctx.ECS.Healths[id].Current; got != 80 {
		t.Fatalf("health after second poison tick = %v, want 80", got)
	}

	// Таймер яда истёк — тиков больше нет.
	status.Update(2.0)
	status.Update(1.0)
	if got := ctx.ECS.Healths[id].Current; got < 70 {
		t.Fatalf("poison kept ticking after expiry: health = %v", got)
	}
	if _, ok := ctx.ECS.PoisonEffects[id]; ok {
		t.Fatal("expired poison effect not removed")
	}
}

func TestRegenerationHealsPerSecond(t *testing.T) {
	ctx := newTestContext(1)
	ability := NewAbilitySystem(ctx)

	regen := &defs.AbilityDefinition{ID: "REGEN", Kind: defs.AbilityRegeneration, Power: 10}
	c := makeCombo(comboSpec{element: defs.ElementNature, shape: defs.ShapeMelee, damage: 10, cooldown: 1, rng: 30, health: 100, ability: regen})
	id := spawnTroop(ctx, c, types.SideA, 200, 400)
	ctx.ApplyDamage(id, 0, 50)

	ability.Update(1.0)
	if got := ctx.ECS.Healths[id].Current; got != 60 {
		t.Fatalf("health after 1s of regeneration = %v, want 60", got)
	}
}

func TestMovementStopsAtAttackRange(t *testing.T) {
	ctx := newTestContext(1)
	movement := NewMovementSystem(ctx)

	chaser := makeCombo(comboSpec{element: defs.ElementFire, shape: defs.ShapeMelee, damage: 10, cooldown: 1, rng: 40, health: 100})
	target := makeCombo(comboSpec{element: defs.ElementFire, shape: defs.ShapeMelee, damage: 10, cooldown: 1, rng: 40, health: 100})
	a := spawnTroop(ctx, chaser, types.SideA, 200, 400)
	v := spawnTroop(ctx, target, types.SideB, 250, 400)
	ctx.ECS.Troops[a].TargetID = v

	// До цели 50, радиус атаки 40: шаг не должен перелететь границу.
	movement.Update(1.0)
	if got := ctx.ECS.Positions[a].X; got != 210 {
		t.Fatalf("chaser X = %v, want 210 (stop at attack range)", got)
	}
	movement.Update(1.0)
	if got := ctx.ECS.Positions[a].X; got != 210 {
		t.Fatalf("chaser moved past attack range: X = %v", got)
	}
}
