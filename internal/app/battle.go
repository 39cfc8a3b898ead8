// internal/app/battle.go
package app

import (
	"go-arena-battler/internal/config"
	"go-arena-battler/internal/defs"
	"go-arena-battler/internal/event"
	"go-arena-battler/internal/system"
	"go-arena-battler/internal/types"
)

// Причины победы в раунде.
const (
	ReasonElimination = "elimination"
	ReasonHealth      = "health"
)

// BattleOutcome — итог одного боя.
type BattleOutcome struct {
	Winner       types.Side
	Reason       string
	Duration     float64
	TotalHealthA float64
	TotalHealthB float64
}

// simSystems — боевые системы, прогоняемые каждый кадр в фиксированном
// порядке. Проверка победы идёт после всех мутаций здоровья кадра, так
// что тик никогда не объявляет победителя по устаревшему снимку.
type simSystems struct {
	status     *system.StatusEffectSystem
	ability    *system.AbilitySystem
	movement   *system.MovementSystem
	combat     *system.CombatSystem
	projectile *system.ProjectileSystem
}

func (ss *simSystems) update(deltaTime float64) {
	ss.status.Update(deltaTime)
	ss.ability.Update(deltaTime)
	ss.movement.Update(deltaTime)
	ss.combat.Update(deltaTime)
	ss.projectile.Update(deltaTime)
}

// Battle — оркестратор боя: спавнит обе стороны с учётом ёмкости,
// гоняет симуляцию под обратный отсчёт и решает исход.
type Battle struct {
	ctx        *system.DamageContext
	dispatcher *event.Dispatcher
	systems    *simSystems

	remaining float64
	elapsed   float64
	tickAccum float64
	done      bool
	cancelled bool
	outcome   *BattleOutcome
}

// NewBattle чистит реестр от прошлого боя, спавнит комбинации сторон и
// объявляет начало.
func NewBattle(ctx *system.DamageContext, dispatcher *event.Dispatcher, systems *simSystems, spawner *Spawner, pickA, pickB *defs.Combination) *Battle {
	b := &Battle{
		ctx:        ctx,
		dispatcher: dispatcher,
		systems:    systems,
		remaining:  config.BattleDuration,
	}
	b.clearTroops()
	spawner.Spawn(pickA, types.SideA, config.TroopsPerSide)
	spawner.Spawn(pickB, types.SideB, config.TroopsPerSide)
	dispatcher.Dispatch(event.Event{Type: event.BattleStarted})
	return b
}

// Done сообщает, завершён ли бой.
func (b *Battle) Done() bool { return b.done }

// Outcome — итог (nil, пока бой идёт).
func (b *Battle) Outcome() *BattleOutcome { return b.outcome }

// Advance продвигает бой на кадр: сначала системы, затем накопленные
// решающие тики с проверкой победы.
func (b *Battle) Advance(deltaTime float64) {
	if b.done || b.cancelled {
		return
	}

	b.systems.update(deltaTime)
	b.elapsed += deltaTime

	b.tickAccum += deltaTime
	for b.tickAccum >= config.TimerTickInterval {
		b.tickAccum -= config.TimerTickInterval
		if b.cancelled {
			return
		}
		b.remaining -= config.TimerTickInterval
		if b.remaining < 0 {
			b.remaining = 0
		}
		if b.checkVictory() {
			return
		}
	}
}

// checkVictory — мгновенная победа уничтожением либо, по исчерпании
// таймера, сравнение суммарного здоровья. Обе ничьи — одновременное
// обнуление и точное равенство здоровья — сознательно отдаются
// стороне A; это правило игры, а не симметричная монетка.
func (b *Battle) checkVictory() bool {
	reg := b.ctx.Registry
	aliveA := reg.AliveCount(types.SideA)
	aliveB := reg.AliveCount(types.SideB)
	healthA := reg.TotalHealth(types.SideA)
	healthB := reg.TotalHealth(types.SideB)

	b.dispatcher.Dispatch(event.Event{
		Type: event.BattleTick,
		Data: event.BattleTickData{
			Remaining:    b.remaining,
			AliveA:       aliveA,
			AliveB:       aliveB,
			TotalHealthA: healthA,
			TotalHealthB: healthB,
		},
	})

	if aliveA == 0 || aliveB == 0 {
		winner := types.SideA
		if aliveA == 0 && aliveB > 0 {
			winner = types.SideB
		}
		b.finish(winner, ReasonElimination, healthA, healthB)
		return true
	}

	if b.remaining <= 0 {
		winner := types.SideA
		if healthB > healthA {
			winner = types.SideB
		}
		b.finish(winner, ReasonHealth, healthA, healthB)
		return true
	}
	return false
}

func (b *Battle) finish(winner types.Side, reason string, healthA, healthB float64) {
	b.done = true
	b.outcome = &BattleOutcome{
		Winner:       winner,
		Reason:       reason,
		Duration:     b.elapsed,
		TotalHealthA: healthA,
		TotalHealthB: healthB,
	}
	// Снаряды в полёте дальше никому не нужны — сразу в пул.
	b.systems.projectile.ReleaseAll()
	b.dispatcher.Dispatch(event.Event{
		Type: event.BattleEnded,
		Data: event.BattleEndedData{
			Winner:       winner,
			Reason:       reason,
			Duration:     b.elapsed,
			TotalHealthA: healthA,
			TotalHealthB: healthB,
		},
	})
}

// Cancel прерывает бой и приводит реестр и пул в согласованное
// состояние: ни потерянных юнитов, ни утекших снарядов.
func (b *Battle) Cancel() {
	if b.done {
		b.Teardown()
		return
	}
	b.cancelled = true
	b.systems.projectile.ReleaseAll()
	b.clearTroops()
}

// Teardown убирает оставшихся юнитов завершённого боя.
func (b *Battle) Teardown() {
	b.systems.projectile.ReleaseAll()
	b.clearTroops()
}

func (b *Battle) clearTroops() {
	ecs := b.ctx.ECS
	for id := range ecs.Troops {
		ecs.RemoveEntity(id)
	}
	b.ctx.Registry.Clear()
}
