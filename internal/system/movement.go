// internal/system/movement.go
package system

import (
	"go-arena-battler/internal/config"
	"go-arena-battler/internal/types"
	"go-arena-battler/internal/utils"
	"math"
)

// MovementSystem двигает юнитов к их целям.
type MovementSystem struct {
	ctx *DamageContext
}

func NewMovementSystem(ctx *DamageContext) *MovementSystem {
	return &MovementSystem{ctx: ctx}
}

func (s *MovementSystem) Update(deltaTime float64) {
	ecs := s.ctx.ECS
	for id, troop := range ecs.Troops {
		pos, hasPos := ecs.Positions[id]
		vel, hasVel := ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}
		if _, stunned := ecs.StunEffects[id]; stunned {
			continue
		}
		if _, rooted := ecs.RootEffects[id]; rooted {
			continue
		}

		targetPos, ok := ecs.Positions[troop.TargetID]
		if troop.TargetID == 0 || !ok {
			continue // цели нет — стоим
		}

		dx := targetPos.X - pos.X
		dy := targetPos.Y - pos.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist <= troop.AttackRange {
			continue // уже в радиусе атаки
		}

		currentSpeed := vel.Speed
		if slowEffect, isSlowed := ecs.SlowEffects[id]; isSlowed {
			currentSpeed *= slowEffect.SlowFactor
		}

		moveDistance := currentSpeed * deltaTime
		// Не перелетаем: останавливаемся на границе радиуса атаки.
		maxApproach := dist - troop.AttackRange
		if moveDistance > maxApproach {
			moveDistance = maxApproach
		}
		pos.X += (dx / dist) * moveDistance
		pos.Y += (dy / dist) * moveDistance

		s.separate(id, deltaTime)

		pos.X = utils.Clamp(pos.X, config.ArenaMinX, config.ArenaMaxX)
		pos.Y = utils.Clamp(pos.Y, config.ArenaMinY, config.ArenaMaxY)
	}
}

// separate мягко расталкивает своих, чтобы группа не схлопывалась
// в одну точку.
func (s *MovementSystem) separate(id types.EntityID, deltaTime float64) {
	ecs := s.ctx.ECS
	troop := ecs.Troops[id]
	pos := ecs.Positions[id]
	for otherID, other := range ecs.Troops {
		if otherID == id || other.Side != troop.Side {
			continue
		}
		otherPos, ok := ecs.Positions[otherID]
		if !ok {
			continue
		}
		dx := pos.X - otherPos.X
		dy := pos.Y - otherPos.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist >= config.SeparationRadius || dist == 0 {
			continue
		}
		push := config.SeparationPush * deltaTime
		pos.X += (dx / dist) * push
		pos.Y += (dy / dist) * push
	}
}
