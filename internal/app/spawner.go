// internal/app/spawner.go
package app

import (
	"go-arena-battler/internal/component"
	"go-arena-battler/internal/config"
	"go-arena-battler/internal/defs"
	"go-arena-battler/internal/event"
	"go-arena-battler/internal/system"
	"go-arena-battler/internal/types"
	"log"
)

// Spawner создаёт юнитов по комбинации, соблюдая контракт ёмкости:
// возвращает список реально созданных (не больше запрошенного).
// Оркестратор боя никогда не обходит этот контракт.
type Spawner struct {
	ctx      *system.DamageContext
	fallback *defs.Combination // заведомо валидная комбинация по умолчанию
}

func NewSpawner(ctx *system.DamageContext, fallback *defs.Combination) *Spawner {
	return &Spawner{ctx: ctx, fallback: fallback}
}

// Spawn создаёт юнитов группы. Невалидная комбинация не роняет матч:
// вместо неё спавнится запасная. Запрос сверх оставшейся ёмкости
// молча усекается.
func (s *Spawner) Spawn(c *defs.Combination, side types.Side, capacityRemaining int) []types.EntityID {
	if !c.IsValid() {
		log.Printf("Spawner: invalid combination, falling back to %s", s.fallback.Name)
		c = s.fallback
	}

	count := c.Quantity
	if count > capacityRemaining {
		log.Printf("Spawner: truncating spawn of %s from %d to %d (capacity)", c.Name, count, capacityRemaining)
		count = capacityRemaining
	}
	if count <= 0 {
		return nil
	}

	ecs := s.ctx.ECS
	created := make([]types.EntityID, 0, count)
	for i := 0; i < count; i++ {
		id := ecs.NewEntity()
		x, y := spawnPosition(side, i, count)
		ecs.Positions[id] = &component.Position{X: x, Y: y}
		ecs.Velocities[id] = &component.Velocity{Speed: c.Body.MoveSpeed}
		perUnit := c.PerUnitHealth()
		ecs.Healths[id] = &component.Health{Current: perUnit, Max: perUnit, Alive: true}
		ecs.Troops[id] = &component.Troop{
			Side:        side,
			Combination: c,
			AttackRange: c.Body.AttackRange,
			BaseDamage:  c.PerUnitDamage(),
		}
		ecs.Renderables[id] = &component.Renderable{
			Color:     config.ElementColors[string(c.Element)],
			Radius:    config.TroopRadius,
			HasStroke: true,
		}
		system.AbilityOnSpawn(s.ctx, id, c)
		s.ctx.Registry.Register(id, side)
		s.ctx.Dispatcher.Dispatch(event.Event{
			Type: event.TroopSpawned,
			Data: event.TroopEventData{ID: id, Side: side},
		})
		created = append(created, id)
	}
	return created
}

// spawnPosition расставляет группу колонной на своей половине арены.
func spawnPosition(side types.Side, index, count int) (float64, float64) {
	x := config.ArenaMinX + 80
	if side == types.SideB {
		x = config.ArenaMaxX - 80
	}
	centerY := (config.ArenaMinY + config.ArenaMaxY) / 2
	y := centerY + (float64(index)-float64(count-1)/2)*56
	return x, y
}
