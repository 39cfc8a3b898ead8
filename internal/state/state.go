// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — экран игры: меню или матч. Машина зовёт Enter/Exit при
// переключении экранов, Update и Draw — каждый кадр.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine держит активный экран; переходы меню <-> матч идут
// только через SetState.
type StateMachine struct {
	current State
}

// NewStateMachine создаёт машину без активного экрана: стартовый экран
// задаётся явным SetState.
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState закрывает текущий экран и открывает следующий. nil допустим:
// игра остаётся без активного экрана.
func (sm *StateMachine) SetState(next State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = next
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update обновляет активный экран, если он есть.
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает активный экран, если он есть.
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
