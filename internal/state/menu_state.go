// internal/state/menu_state.go
package state

import (
	"image/color"

	"go-arena-battler/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState — стартовый экран
type MenuState struct {
	sm *StateMachine
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{sm: sm}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewMatchState(m.sm))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	text.Draw(screen, "ARENA BATTLER", basicfont.Face7x13, config.ScreenWidth/2-55, config.ScreenHeight/2-20, config.TextLightColor)
	text.Draw(screen, "press SPACE to start a match", basicfont.Face7x13, config.ScreenWidth/2-100, config.ScreenHeight/2+10, config.TextLightColor)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
