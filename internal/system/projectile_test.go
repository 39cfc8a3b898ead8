// internal/system/projectile_test.go
package system

import (
	"go-arena-battler/internal/battle"
	"go-arena-battler/internal/component"
	"go-arena-battler/internal/config"
	"go-arena-battler/internal/defs"
	"go-arena-battler/internal/types"
	"math"
	"testing"
)

// launchProjectile вручную выпускает снаряд из пула в сторону точки.
func launchProjectile(ctx *DamageContext, pool *battle.ProjectilePool, shape defs.WeaponShape, side types.Side, x, y, aimX, aimY, damage float64, targetID types.EntityID) types.EntityID {
	proj := pool.Acquire()
	proj.Side = side
	proj.Shape = shape
	proj.Damage = damage
	proj.AimX = aimX
	proj.AimY = aimY
	proj.Direction = math.Atan2(aimY-y, aimX-x)
	proj.Speed = config.ProjectileSpeed
	proj.Lifetime = config.ProjectileLifetime
	if shape == defs.ShapeHoming {
		proj.TargetID = targetID
	}
	id := ctx.ECS.NewEntity()
	ctx.ECS.Positions[id] = &component.Position{X: x, Y: y}
	ctx.ECS.Projectiles[id] = proj
	return id
}

func stepProjectiles(sys *ProjectileSystem, seconds, dt float64) {
	for elapsed := 0.0; elapsed < seconds; elapsed += dt {
		sys.Update(dt)
	}
}

func TestProjectileHitsEnemyExactlyOnce(t *testing.T) {
	ctx := newTestContext(1)
	pool := battle.NewProjectilePool(2)
	sys := NewProjectileSystem(ctx, pool)

	victim := makeCombo(comboSpec{element: defs.ElementFire, shape: defs.ShapeMelee, damage: 10, cooldown: 1, rng: 30, health: 100})
	v := spawnTroop(ctx, victim, types.SideB, 200, 0)

	launchProjectile(ctx, pool, defs.ShapeLinear, types.SideA, 0, 0, 200, 0, 25, 0)

	stepProjectiles(sys, 1.0, 0.02)
	if got := ctx.ECS.Healths[v].Current; got != 75 {
		t.Fatalf("victim health = %v, want 75 (single hit)", got)
	}
	if len(ctx.ECS.Projectiles) != 0 {
		t.Fatal("projectile not released after hit")
	}
	if pool.FreeCount() != 2 {
		t.Fatalf("pool free count = %d, want 2", pool.FreeCount())
	}
}

func TestProjectileIgnoresOwnSide(t *testing.T) {
	ctx := newTestContext(1)
	pool := battle.NewProjectilePool(2)
	sys := NewProjectileSystem(ctx, pool)

	friendly := makeCombo(comboSpec{element: defs.ElementFire, shape: defs.ShapeMelee, damage: 10, cooldown: 1, rng: 30, health: 100})
	f := spawnTroop(ctx, friendly, types.SideA, 200, 0)

	launchProjectile(ctx, pool, defs.ShapeLinear, types.SideA, 0, 0, 400, 0, 25, 0)

	stepProjectiles(sys, 2.0, 0.02)
	if got := ctx.ECS.Healths[f].Current; got != 100 {
		t.Fatalf("projectile hit its own side: health = %v", got)
	}
}

func TestProjectileExpiresWithoutTarget(t *testing.T) {
	ctx := newTestContext(1)
	pool := battle.NewProjectilePool(2)
	sys := NewProjectileSystem(ctx, pool)

	launchProjectile(ctx, pool, defs.ShapeLinear, types.SideA, 0, 0, 400, 0, 25, 0)
	if pool.FreeCount() != 1 {
		t.Fatalf("pool free count after launch = %d, want 1", pool.FreeCount())
	}

	stepProjectiles(sys, config.ProjectileLifetime+0.1, 0.05)
	if len(ctx.ECS.Projectiles) != 0 {
		t.Fatal("projectile survived past its lifetime")
	}
	if pool.FreeCount() != 2 {
		t.Fatalf("expired projectile not returned to pool: free = %d", pool.FreeCount())
	}
}

func TestHomingProjectileTracksTarget(t *testing.T) {
	ctx := newTestContext(1)
	pool := battle.NewProjectilePool(2)
	sys := NewProjectileSystem(ctx, pool)

	victim := makeCombo(comboSpec{element: defs.ElementFire, shape: defs.ShapeMelee, damage: 10, cooldown: 1, rng: 30, health: 100})
	v := spawnTroop(ctx, victim, types.SideB, 200, 150)

	// Стартовый прицел мимо: самонаведение обязано довернуть.
	launchProjectile(ctx, pool, defs.ShapeHoming, types.SideA, 0, 0, 200, -150, 25, v)

	stepProjectiles(sys, 3.0, 0.02)
	if got := ctx.ECS.Healths[v].Current; got != 75 {
		t.Fatalf("homing projectile missed: victim health = %v, want 75", got)
	}
}

func TestHomingFreezesAimWhenTargetDies(t *testing.T) {
	ctx := newTestContext(1)
	pool := battle.NewProjectilePool(2)
	sys := NewProjectileSystem(ctx, pool)

	victim := makeCombo(comboSpec{element: defs.ElementFire, shape: defs.ShapeMelee, damage: 10, cooldown: 1, rng: 30, health: 100})
	v := spawnTroop(ctx, victim, types.SideB, 400, 0)

	id := launchProjectile(ctx, pool, defs.ShapeHoming, types.SideA, 0, 0, 400, 0, 25, v)

	sys.Update(0.02)
	ctx.ApplyDamage(v, 0, 1000) // цель умирает в полёте

	// Обновление после смерти цели не паникует, ссылка сбрасывается,
	// снаряд летит прямо на последнюю точку прицела.
	sys.Update(0.02)
	proj := ctx.ECS.Projectiles[id]
	if proj == nil {
		t.Fatal("projectile vanished with its target")
	}
	if proj.TargetID != 0 {
		t.Fatal("dead target reference not cleared")
	}
	if proj.AimX != 400 || proj.AimY != 0 {
		t.Fatalf("aim moved after target death: (%v, %v)", proj.AimX, proj.AimY)
	}

	// Врагов больше нет — снаряд дотянет до таймера и вернётся в пул.
	stepProjectiles(sys, config.ProjectileLifetime, 0.05)
	if len(ctx.ECS.Projectiles) != 0 {
		t.Fatal("projectile not discarded after flying past frozen aim")
	}
}

func TestReleaseAllReturnsEverything(t *testing.T) {
	ctx := newTestContext(1)
	pool := battle.NewProjectilePool(4)
	sys := NewProjectileSystem(ctx, pool)

	for i := 0; i < 3; i++ {
		launchProjectile(ctx, pool, defs.ShapeLinear, types.SideA, 0, float64(i)*50, 400, 0, 10, 0)
	}
	sys.ReleaseAll()
	if len(ctx.ECS.Projectiles) != 0 {
		t.Fatal("projectiles left after ReleaseAll")
	}
	if pool.FreeCount() != 4 {
		t.Fatalf("pool free count = %d, want 4", pool.FreeCount())
	}
}

func TestPoolReusedProjectileStartsClean(t *testing.T) {
	pool := battle.NewProjectilePool(1)
	proj := pool.Acquire()
	proj.HasHit = true
	proj.Damage = 99
	proj.TargetID = 42
	pool.Release(proj)

	reused := pool.Acquire()
	if reused.HasHit || reused.Damage != 0 || reused.TargetID != 0 {
		t.Fatalf("reused projectile carries stale state: %+v", reused)
	}
}
