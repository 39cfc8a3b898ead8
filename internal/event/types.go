// internal/event/types.go
package event

import "go-arena-battler/internal/types"

const (
	PhaseChanged EventType = "PhaseChanged" // смена фазы матча

	DraftOptionsReady  EventType = "DraftOptionsReady"  // варианты предложены
	DraftTick          EventType = "DraftTick"          // тик обратного отсчёта драфта
	DraftLowTime       EventType = "DraftLowTime"       // времени осталось мало
	DraftSelectionMade EventType = "DraftSelectionMade" // сторона сделала выбор
	DraftComplete      EventType = "DraftComplete"      // обе стороны определились

	BattleStarted EventType = "BattleStarted"
	BattleTick    EventType = "BattleTick"
	BattleEnded   EventType = "BattleEnded"

	TroopSpawned EventType = "TroopSpawned"
	TroopDied    EventType = "TroopDied"

	RoundEnded EventType = "RoundEnded"
	MatchEnded EventType = "MatchEnded"
)

// PhaseChangedData — пара (предыдущая, следующая) фаза.
type PhaseChangedData struct {
	Prev  string
	Next  string
	Round int
}

// DraftOptionsData — индексы вариантов храним по именам комбинаций,
// презентация ничего не знает о самих определениях.
type DraftOptionsData struct {
	Side    types.Side
	Options []string // имена предложенных комбинаций
}

// DraftTickData — оставшееся время драфта.
type DraftTickData struct {
	Remaining float64
}

// DraftSelectionData — сделанный выбор.
type DraftSelectionData struct {
	Side     types.Side
	Index    int
	Name     string
	AutoPick bool // выбор сделан таймаутом
}

// BattleTickData — состояние боя на решающем тике.
type BattleTickData struct {
	Remaining    float64
	AliveA       int
	AliveB       int
	TotalHealthA float64
	TotalHealthB float64
}

// BattleEndedData — итог боя.
type BattleEndedData struct {
	Winner       types.Side
	Reason       string
	Duration     float64
	TotalHealthA float64
	TotalHealthB float64
}

// TroopEventData — появление или гибель юнита.
type TroopEventData struct {
	ID   types.EntityID
	Side types.Side
}
