// internal/app/game.go
package app

import (
	"fmt"
	"go-arena-battler/internal/battle"
	"go-arena-battler/internal/config"
	"go-arena-battler/internal/defs"
	"go-arena-battler/internal/entity"
	"go-arena-battler/internal/event"
	"go-arena-battler/internal/system"
	"go-arena-battler/internal/types"
	"go-arena-battler/internal/utils"
)

// Game собирает симуляцию воедино: ECS, диспетчер событий, реестр
// целей, пул снарядов, боевые системы и машину фаз матча. Презентация
// подписывается на события диспетчера и влияет на симуляцию только
// через SelectOption.
type Game struct {
	ECS        *entity.ECS
	Dispatcher *event.Dispatcher
	Registry   *battle.Registry
	Pool       *battle.ProjectilePool
	Rng        *utils.PRNGService
	Ctx        *system.DamageContext
	Match      *Match
	Catalog    []*defs.Combination

	systems *simSystems

	// Сторона B выбирает сама после небольшой паузы.
	bPickDelay float64
	bPickArmed bool
}

// NewGame загружает каталог определений и связывает все подсистемы.
// Сид 0 означает недетерминированный запуск.
func NewGame(seed int64) (*Game, error) {
	if err := defs.LoadDefault(); err != nil {
		return nil, fmt.Errorf("failed to load definitions: %w", err)
	}
	catalog, err := defs.ResolveCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve combination catalog: %w", err)
	}

	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	registry := battle.NewRegistry(ecs)
	pool := battle.NewProjectilePool(config.TroopsPerSide * 8)
	rng := utils.NewPRNGService(seed)

	ctx := &system.DamageContext{
		ECS:        ecs,
		Registry:   registry,
		Dispatcher: dispatcher,
		Rng:        rng,
	}
	systems := &simSystems{
		status:     system.NewStatusEffectSystem(ctx),
		ability:    system.NewAbilitySystem(ctx),
		movement:   system.NewMovementSystem(ctx),
		combat:     system.NewCombatSystem(ctx, pool),
		projectile: system.NewProjectileSystem(ctx, pool),
	}
	spawner := NewSpawner(ctx, catalog[0])

	g := &Game{
		ECS:        ecs,
		Dispatcher: dispatcher,
		Registry:   registry,
		Pool:       pool,
		Rng:        rng,
		Ctx:        ctx,
		Catalog:    catalog,
		systems:    systems,
	}
	g.Match = NewMatch(ctx, dispatcher, rng, systems, spawner, catalog)
	return g, nil
}

// Update продвигает матч на кадр.
func (g *Game) Update(deltaTime float64) {
	g.ECS.GameTime += deltaTime
	g.autoPickForB(deltaTime)
	g.Match.Advance(deltaTime)
}

// SelectOption — единственная точка входа выбора игрока: «сторона
// выбрала вариант N». Индекс валидируется против текущих вариантов.
func (g *Game) SelectOption(side types.Side, index int) bool {
	return g.Match.Select(side, index)
}

// Cancel отменяет матч целиком.
func (g *Game) Cancel() {
	g.Match.Cancel()
}

// autoPickForB делает выбор за сторону B спустя случайную паузу —
// заглушка на месте внешнего советника по контрпикам.
func (g *Game) autoPickForB(deltaTime float64) {
	draft := g.Match.Draft()
	if g.Match.Phase() != PhaseDraft || draft == nil || draft.Pick(types.SideB) != nil {
		g.bPickArmed = false
		return
	}
	if !g.bPickArmed {
		g.bPickArmed = true
		g.bPickDelay = g.Rng.FloatRange(config.DraftAutoPickMinB, config.DraftAutoPickMaxB)
		return
	}
	g.bPickDelay -= deltaTime
	if g.bPickDelay <= 0 {
		options := draft.Options(types.SideB)
		if len(options) > 0 {
			g.Match.Select(types.SideB, g.Rng.Intn(len(options)))
		}
	}
}
