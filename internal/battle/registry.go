// internal/battle/registry.go
package battle

import (
	"go-arena-battler/internal/entity"
	"go-arena-battler/internal/types"
	"math"
)

// Registry — индекс живых юнитов по сторонам. Владеет им оркестратор боя,
// юнитам он передаётся явно: никакого глобального состояния. Мутации
// происходят только при спавне и смерти; запросы ничего не меняют.
type Registry struct {
	ecs   *entity.ECS
	sides map[types.Side]map[types.EntityID]bool
}

func NewRegistry(ecs *entity.ECS) *Registry {
	return &Registry{
		ecs: ecs,
		sides: map[types.Side]map[types.EntityID]bool{
			types.SideA: make(map[types.EntityID]bool),
			types.SideB: make(map[types.EntityID]bool),
		},
	}
}

// Register добавляет юнита. Повторная регистрация — no-op.
func (r *Registry) Register(id types.EntityID, side types.Side) {
	r.sides[side][id] = true
}

// Unregister убирает юнита. Повторное удаление — no-op, не ошибка.
func (r *Registry) Unregister(id types.EntityID, side types.Side) {
	delete(r.sides[side], id)
}

// Clear опустошает обе стороны. Вызывается перед спавном нового боя
// и при отмене матча.
func (r *Registry) Clear() {
	for side := range r.sides {
		r.sides[side] = make(map[types.EntityID]bool)
	}
}

// NearestEnemy возвращает ближайшего живого противника стороны side
// к точке (x, y), либо 0, если таких нет.
func (r *Registry) NearestEnemy(side types.Side, x, y float64) types.EntityID {
	var nearest types.EntityID
	minDist := math.MaxFloat64
	for id := range r.sides[side.Opponent()] {
		health, ok := r.ecs.Healths[id]
		if !ok || !health.Alive {
			continue
		}
		pos, ok := r.ecs.Positions[id]
		if !ok {
			continue
		}
		dx := pos.X - x
		dy := pos.Y - y
		dist := dx*dx + dy*dy
		if dist < minDist {
			minDist = dist
			nearest = id
		}
	}
	return nearest
}

// AliveCount — число живых юнитов стороны.
func (r *Registry) AliveCount(side types.Side) int {
	count := 0
	for id := range r.sides[side] {
		if health, ok := r.ecs.Healths[id]; ok && health.Alive {
			count++
		}
	}
	return count
}

// TotalHealth — суммарное оставшееся здоровье стороны.
func (r *Registry) TotalHealth(side types.Side) float64 {
	total := 0.0
	for id := range r.sides[side] {
		if health, ok := r.ecs.Healths[id]; ok && health.Alive {
			total += health.Current
		}
	}
	return total
}

// Members возвращает идентификаторы юнитов стороны (и живых, и ещё
// не убранных мёртвых) — для обхода при площадных атаках и отрисовке.
func (r *Registry) Members(side types.Side) []types.EntityID {
	out := make([]types.EntityID, 0, len(r.sides[side]))
	for id := range r.sides[side] {
		out = append(out, id)
	}
	return out
}

// EnemiesWithin собирает живых противников стороны side в радиусе radius
// от точки (x, y).
func (r *Registry) EnemiesWithin(side types.Side, x, y, radius float64) []types.EntityID {
	var out []types.EntityID
	for id := range r.sides[side.Opponent()] {
		health, ok := r.ecs.Healths[id]
		if !ok || !health.Alive {
			continue
		}
		pos, ok := r.ecs.Positions[id]
		if !ok {
			continue
		}
		dx := pos.X - x
		dy := pos.Y - y
		if dx*dx+dy*dy <= radius*radius {
			out = append(out, id)
		}
	}
	return out
}

// SideOf сообщает сторону юнита по его компоненту.
func (r *Registry) SideOf(id types.EntityID) (types.Side, bool) {
	troop, ok := r.ecs.Troops[id]
	if !ok {
		return 0, false
	}
	return troop.Side, true
}
