// internal/state/match_state.go
package state

import (
	"fmt"
	"log"

	"go-arena-battler/internal/app"
	"go-arena-battler/internal/config"
	"go-arena-battler/internal/event"
	"go-arena-battler/internal/system"
	"go-arena-battler/internal/types"
	"go-arena-battler/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// MatchState — экран матча. Подписан на события симуляции и передаёт
// в неё единственное воздействие: «игрок выбрал вариант N».
type MatchState struct {
	sm     *StateMachine
	game   *app.Game
	render *system.RenderSystem

	scorePanel *ui.ScorePanel
	countdown  *ui.Countdown
	buttons    []*ui.OptionButton

	inDraft     bool
	pickedIndex int
	speedIndex  int
	finalText   string
}

var speedMultipliers = []float64{1.0, 2.0}

func NewMatchState(sm *StateMachine) *MatchState {
	game, err := app.NewGame(0)
	if err != nil {
		log.Fatal(err)
	}

	face := basicfont.Face7x13
	ms := &MatchState{
		sm:          sm,
		game:        game,
		render:      system.NewRenderSystem(game.ECS),
		scorePanel:  ui.NewScorePanel(face),
		countdown:   ui.NewCountdown(config.ScreenWidth/2, 80, face),
		pickedIndex: -1,
	}

	dispatcher := game.Dispatcher
	dispatcher.Subscribe(event.DraftOptionsReady, event.ListenerFunc(ms.onOptionsReady))
	dispatcher.Subscribe(event.DraftTick, event.ListenerFunc(ms.onDraftTick))
	dispatcher.Subscribe(event.DraftLowTime, event.ListenerFunc(ms.onLowTime))
	dispatcher.Subscribe(event.DraftSelectionMade, event.ListenerFunc(ms.onSelection))
	dispatcher.Subscribe(event.DraftComplete, event.ListenerFunc(ms.onDraftComplete))
	dispatcher.Subscribe(event.BattleTick, event.ListenerFunc(ms.onBattleTick))
	dispatcher.Subscribe(event.MatchEnded, event.ListenerFunc(ms.onMatchEnded))
	return ms
}

func (ms *MatchState) Enter() {}

func (ms *MatchState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		ms.speedIndex = (ms.speedIndex + 1) % len(speedMultipliers)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ms.game.Cancel()
		ms.sm.SetState(NewMenuState(ms.sm))
		return
	}

	if ms.inDraft && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		for i, b := range ms.buttons {
			if b.Contains(mx, my) {
				ms.game.SelectOption(types.SideA, i)
				break
			}
		}
	}

	ms.game.Update(deltaTime * speedMultipliers[ms.speedIndex])
}

func (ms *MatchState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	vector.StrokeRect(screen,
		config.ArenaMinX, config.ArenaMinY,
		config.ArenaMaxX-config.ArenaMinX, config.ArenaMaxY-config.ArenaMinY,
		1, config.HealthBackColor, false)

	ms.render.Draw(screen)

	scoreA, scoreB := ms.game.Match.Score()
	ms.scorePanel.ScoreA = scoreA
	ms.scorePanel.ScoreB = scoreB
	ms.scorePanel.Round = ms.game.Match.Round()
	ms.scorePanel.Phase = ms.game.Match.Phase().String()
	ms.scorePanel.Draw(screen)

	if ms.inDraft {
		ms.countdown.Draw(screen)
		for _, b := range ms.buttons {
			b.Draw(screen)
		}
	}

	if ms.finalText != "" {
		text.Draw(screen, ms.finalText, basicfont.Face7x13,
			config.ScreenWidth/2-len(ms.finalText)*7/2, config.ScreenHeight/2, config.TextLightColor)
	}
}

func (ms *MatchState) Exit() {}

// --- обработчики событий симуляции ---

func (ms *MatchState) onOptionsReady(e event.Event) {
	data := e.Data.(event.DraftOptionsData)
	if data.Side != types.SideA {
		return
	}
	ms.inDraft = true
	ms.pickedIndex = -1
	ms.countdown.Remaining = config.DraftDuration
	ms.countdown.LowTime = false

	options := ms.game.Match.Draft().Options(types.SideA)
	ms.buttons = ms.buttons[:0]
	const w, h = 220, 60
	total := float32(len(options)) * (w + 20)
	startX := (config.ScreenWidth - total) / 2
	for i, c := range options {
		b := ui.NewOptionButton(startX+float32(i)*(w+20), config.ScreenHeight-110, w, h, basicfont.Face7x13)
		b.Label = c.Name
		b.Sub = fmt.Sprintf("%s x%d", c.Element, c.Quantity)
		b.Accent = config.ElementColors[string(c.Element)]
		ms.buttons = append(ms.buttons, b)
	}
}

func (ms *MatchState) onDraftTick(e event.Event) {
	ms.countdown.Remaining = e.Data.(event.DraftTickData).Remaining
}

func (ms *MatchState) onLowTime(event.Event) {
	ms.countdown.LowTime = true
}

func (ms *MatchState) onSelection(e event.Event) {
	data := e.Data.(event.DraftSelectionData)
	if data.Side != types.SideA {
		return
	}
	ms.pickedIndex = data.Index
	if data.Index >= 0 && data.Index < len(ms.buttons) {
		ms.buttons[data.Index].Selected = true
	}
}

func (ms *MatchState) onDraftComplete(event.Event) {
	ms.inDraft = false
}

func (ms *MatchState) onBattleTick(e event.Event) {
	ms.countdown.Remaining = e.Data.(event.BattleTickData).Remaining
}

func (ms *MatchState) onMatchEnded(e event.Event) {
	result := e.Data.(app.MatchResult)
	ms.finalText = fmt.Sprintf("MATCH OVER: side %s wins %d-%d (ESC to menu)",
		result.Winner, result.ScoreA, result.ScoreB)
}
