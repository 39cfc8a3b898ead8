// cmd/game/main.go
package main

import (
	"log"
	"time"

	"go-arena-battler/internal/config"
	"go-arena-battler/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

const startFromMatch = false // true — начинать сразу с матча, false — с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	sm := state.NewStateMachine()
	if startFromMatch {
		sm.SetState(state.NewMatchState(sm))
	} else {
		sm.SetState(state.NewMenuState(sm))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Arena Battler")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
