// internal/system/render.go
package system

import (
	"go-arena-battler/internal/config"
	"go-arena-battler/internal/entity"
	"go-arena-battler/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует сущности арены
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	// Сущности с Renderable: юниты с обводкой цвета стороны, снаряды без
	for id, render := range s.ecs.Renderables {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		if render.HasStroke {
			strokeColor := config.SideAColor
			if troop, ok := s.ecs.Troops[id]; ok && troop.Side == types.SideB {
				strokeColor = config.SideBColor
			}
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), render.Radius+2, strokeColor, true)
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), render.Radius, render.Color, true)
	}

	// Полоски здоровья поверх юнитов
	for id, health := range s.ecs.Healths {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos || !health.Alive || health.Max <= 0 {
			continue
		}
		if _, isTroop := s.ecs.Troops[id]; !isTroop {
			continue
		}
		x := float32(pos.X) - config.HealthBarWidth/2
		y := float32(pos.Y) - config.TroopRadius - 10
		vector.DrawFilledRect(screen, x, y, config.HealthBarWidth, config.HealthBarHeight, config.HealthBackColor, false)
		fill := float32(health.Current/health.Max) * config.HealthBarWidth
		vector.DrawFilledRect(screen, x, y, fill, config.HealthBarHeight, config.HealthFillColor, false)
	}
}
