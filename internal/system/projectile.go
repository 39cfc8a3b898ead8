// internal/system/projectile.go
package system

import (
	"go-arena-battler/internal/battle"
	"go-arena-battler/internal/config"
	"go-arena-battler/internal/defs"
	"go-arena-battler/internal/types"
	"go-arena-battler/internal/utils"
	"math"
)

// ProjectileSystem управляет полётом снарядов и разрешением попаданий.
type ProjectileSystem struct {
	ctx  *DamageContext
	pool *battle.ProjectilePool
}

func NewProjectileSystem(ctx *DamageContext, pool *battle.ProjectilePool) *ProjectileSystem {
	return &ProjectileSystem{ctx: ctx, pool: pool}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	ecs := s.ctx.ECS
	for id, proj := range ecs.Projectiles {
		pos := ecs.Positions[id]
		if pos == nil {
			s.release(id)
			continue
		}

		// Промахнувшиеся и улетевшие снаряды умирают по таймеру,
		// никому не навредив.
		proj.Lifetime -= deltaTime
		if proj.Lifetime <= 0 {
			s.release(id)
			continue
		}

		// Самонаведение: пока цель жива — довернуть с ограниченной
		// угловой скоростью; цель умерла — прицел замирает на последней
		// известной точке, снаряд летит прямо. Никаких nil-паник.
		if proj.Shape == defs.ShapeHoming && proj.TargetID != 0 {
			if health, ok := ecs.Healths[proj.TargetID]; ok && health.Alive {
				if targetPos, ok := ecs.Positions[proj.TargetID]; ok {
					proj.AimX = targetPos.X
					proj.AimY = targetPos.Y
				}
			} else {
				proj.TargetID = 0
			}
			desired := math.Atan2(proj.AimY-pos.Y, proj.AimX-pos.X)
			proj.Direction = utils.TurnTowards(proj.Direction, desired, config.HomingTurnRate*deltaTime)
		}

		pos.X += math.Cos(proj.Direction) * proj.Speed * deltaTime
		pos.Y += math.Sin(proj.Direction) * proj.Speed * deltaTime

		s.checkCollision(id)
	}
}

// checkCollision ищет живого врага в радиусе засчитывания. Свои и уже
// мёртвые юниты попаданием не считаются, защёлка HasHit гарантирует
// ровно одно попадание на снаряд.
func (s *ProjectileSystem) checkCollision(id types.EntityID) {
	ecs := s.ctx.ECS
	proj := ecs.Projectiles[id]
	pos := ecs.Positions[id]

	hits := s.ctx.Registry.EnemiesWithin(proj.Side, pos.X, pos.Y, config.ProjectileHitDist)
	if len(hits) == 0 {
		return
	}
	if proj.HasHit {
		return
	}
	proj.HasHit = true

	victimID := hits[0]
	s.ctx.ApplyDamage(victimID, proj.SourceID, proj.Damage)
	AbilityOnHit(s.ctx, proj.Ability, proj.AbilityEffect, victimID)
	s.release(id)
}

// release возвращает снаряд в пул и убирает сущность.
func (s *ProjectileSystem) release(id types.EntityID) {
	proj := s.ctx.ECS.Projectiles[id]
	s.ctx.ECS.RemoveEntity(id)
	if s.pool != nil && proj != nil {
		s.pool.Release(proj)
	}
}

// ReleaseAll возвращает все живые снаряды в пул — вызывается при
// завершении или отмене боя.
func (s *ProjectileSystem) ReleaseAll() {
	for id := range s.ctx.ECS.Projectiles {
		s.release(id)
	}
}
