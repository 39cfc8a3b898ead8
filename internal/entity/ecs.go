// internal/entity/ecs.go
package entity

import (
	"go-arena-battler/internal/component"
	"go-arena-battler/internal/types"
)

type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Troops        map[types.EntityID]*component.Troop
	Projectiles   map[types.EntityID]*component.Projectile
	Abilities     map[types.EntityID]*component.AbilityState
	SlowEffects   map[types.EntityID]*component.SlowEffect
	StunEffects   map[types.EntityID]*component.StunEffect
	RootEffects   map[types.EntityID]*component.RootEffect
	PoisonEffects map[types.EntityID]*component.PoisonEffect
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Troops:        make(map[types.EntityID]*component.Troop),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Abilities:     make(map[types.EntityID]*component.AbilityState),
		SlowEffects:   make(map[types.EntityID]*component.SlowEffect),
		StunEffects:   make(map[types.EntityID]*component.StunEffect),
		RootEffects:   make(map[types.EntityID]*component.RootEffect),
		PoisonEffects: make(map[types.EntityID]*component.PoisonEffect),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех компонентных карт. Юниты и
// снаряды уходят посреди боя, поэтому удаление собрано в одном месте.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Troops, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Abilities, id)
	delete(ecs.SlowEffects, id)
	delete(ecs.StunEffects, id)
	delete(ecs.RootEffects, id)
	delete(ecs.PoisonEffects, id)
}
