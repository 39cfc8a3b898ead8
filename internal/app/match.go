// internal/app/match.go
package app

import (
	"go-arena-battler/internal/config"
	"go-arena-battler/internal/defs"
	"go-arena-battler/internal/event"
	"go-arena-battler/internal/system"
	"go-arena-battler/internal/types"
	"go-arena-battler/internal/utils"
	"log"

	"github.com/google/uuid"
)

// Phase — фаза матча. Внутри раунда порядок строгий, обратных
// переходов нет.
type Phase int

const (
	PhaseRoundStart Phase = iota
	PhaseDraft
	PhaseReveal
	PhaseSpawn
	PhaseBattle
	PhaseRoundEnd
	PhaseMatchEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseRoundStart:
		return "RoundStart"
	case PhaseDraft:
		return "Draft"
	case PhaseReveal:
		return "Reveal"
	case PhaseSpawn:
		return "Spawn"
	case PhaseBattle:
		return "Battle"
	case PhaseRoundEnd:
		return "RoundEnd"
	case PhaseMatchEnd:
		return "MatchEnd"
	}
	return "Unknown"
}

// Match — машина фаз матча: RoundStart → Draft → Reveal → Spawn →
// Battle → RoundEnd, по кругу до победного счёта. Вся машина тикает
// по 100 мс; флаг отмены проверяется на каждом тике, и отмена посреди
// фазы сворачивает активный драфт или бой без утечек.
type Match struct {
	ctx        *system.DamageContext
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	systems    *simSystems
	spawner    *Spawner

	phase     Phase
	round     int
	scoreA    int
	scoreB    int
	delay     float64 // оставшаяся пауза неинтерактивной фазы
	tickAccum float64
	cancelled bool

	draftPool []*defs.Combination
	bags      map[types.Side]*Bag
	reserved  map[types.Side]*defs.Combination
	genSeq    int

	draft  *Draft
	battle *Battle
	pickA  *defs.Combination
	pickB  *defs.Combination

	rounds []RoundResult
	result *MatchResult
}

func NewMatch(ctx *system.DamageContext, dispatcher *event.Dispatcher, rng *utils.PRNGService, systems *simSystems, spawner *Spawner, pool []*defs.Combination) *Match {
	return &Match{
		ctx:        ctx,
		dispatcher: dispatcher,
		rng:        rng,
		systems:    systems,
		spawner:    spawner,
		phase:      PhaseRoundStart,
		round:      1,
		delay:      config.RoundStartDelay,
		draftPool:  append([]*defs.Combination(nil), pool...),
		bags: map[types.Side]*Bag{
			types.SideA: NewBag(rng, config.DraftBagMemory),
			types.SideB: NewBag(rng, config.DraftBagMemory),
		},
		reserved: make(map[types.Side]*defs.Combination),
	}
}

// Phase — текущая фаза.
func (m *Match) Phase() Phase { return m.phase }

// Round — номер текущего раунда (1..7).
func (m *Match) Round() int { return m.round }

// Score возвращает счёт (A, B).
func (m *Match) Score() (int, int) { return m.scoreA, m.scoreB }

// Draft — активный драфт (nil вне фазы драфта).
func (m *Match) Draft() *Draft { return m.draft }

// Result — итог матча (nil, пока матч не кончился).
func (m *Match) Result() *MatchResult { return m.result }

// Rounds — итоги завершённых раундов.
func (m *Match) Rounds() []RoundResult { return m.rounds }

// SetReserved закрепляет за стороной гарантированный вариант драфта.
func (m *Match) SetReserved(side types.Side, c *defs.Combination) {
	m.reserved[side] = c
}

// Select пробрасывает выбор стороны в активный драфт. Единственная
// точка, через которую внешний мир влияет на симуляцию.
func (m *Match) Select(side types.Side, index int) bool {
	if m.phase != PhaseDraft || m.draft == nil {
		return false
	}
	return m.draft.Select(side, index)
}

// Cancel отменяет матч. Активная фаза сворачивается: юниты снимаются
// с учёта, снаряды возвращаются в пул.
func (m *Match) Cancel() {
	if m.cancelled {
		return
	}
	m.cancelled = true
	if m.draft != nil {
		m.draft.Cancel()
	}
	if m.battle != nil {
		m.battle.Cancel()
	}
}

// Cancelled сообщает, отменён ли матч.
func (m *Match) Cancelled() bool { return m.cancelled }

// Advance продвигает матч на кадр.
func (m *Match) Advance(deltaTime float64) {
	if m.cancelled || m.phase == PhaseMatchEnd {
		return
	}

	switch m.phase {
	case PhaseDraft:
		m.draft.Advance(deltaTime)
		if m.draft.Complete() {
			m.pickA = m.draft.Pick(types.SideA)
			m.pickB = m.draft.Pick(types.SideB)
			m.draft = nil
			m.transition(PhaseReveal, config.RevealDelay)
		}
	case PhaseBattle:
		m.battle.Advance(deltaTime)
		if m.battle.Done() {
			m.recordRound(m.battle.Outcome())
			m.transition(PhaseRoundEnd, config.RoundEndDelay)
		}
	default:
		m.advanceDelay(deltaTime)
	}
}

// advanceDelay отсчитывает паузу неинтерактивной фазы решающими тиками,
// проверяя отмену на каждом.
func (m *Match) advanceDelay(deltaTime float64) {
	m.tickAccum += deltaTime
	for m.tickAccum >= config.TimerTickInterval {
		m.tickAccum -= config.TimerTickInterval
		if m.cancelled {
			return
		}
		m.delay -= config.TimerTickInterval
		if m.delay > 0 {
			continue
		}
		m.leaveDelayPhase()
		return
	}
}

// leaveDelayPhase переходит из истёкшей паузы в следующую фазу.
func (m *Match) leaveDelayPhase() {
	switch m.phase {
	case PhaseRoundStart:
		m.startDraft()
	case PhaseReveal:
		m.transition(PhaseSpawn, config.SpawnDelay)
	case PhaseSpawn:
		m.startBattle()
	case PhaseRoundEnd:
		m.nextRoundOrEnd()
	}
}

func (m *Match) startDraft() {
	m.transition(PhaseDraft, 0)
	m.draft = NewDraft(m.dispatcher, m.rng, m.draftPool, m.bags, m.reserved)
}

func (m *Match) startBattle() {
	m.transition(PhaseBattle, 0)
	m.battle = NewBattle(m.ctx, m.dispatcher, m.systems, m.spawner, m.pickA, m.pickB)
}

func (m *Match) recordRound(outcome *BattleOutcome) {
	if outcome.Winner == types.SideA {
		m.scoreA++
	} else {
		m.scoreB++
	}
	m.rounds = append(m.rounds, RoundResult{
		ID:           uuid.New(),
		Round:        m.round,
		Winner:       outcome.Winner,
		Reason:       outcome.Reason,
		Duration:     outcome.Duration,
		TotalHealthA: outcome.TotalHealthA,
		TotalHealthB: outcome.TotalHealthB,
		PickA:        comboName(m.pickA),
		PickB:        comboName(m.pickB),
	})
	m.dispatcher.Dispatch(event.Event{Type: event.RoundEnded, Data: m.rounds[len(m.rounds)-1]})
}

// comboName терпит nil-выбор: спаунер в этом случае выставит
// запасную комбинацию, а запись раунда не должна падать.
func comboName(c *defs.Combination) string {
	if c == nil {
		return "(fallback)"
	}
	return c.Name
}

// nextRoundOrEnd завершает матч при победном счёте либо заводит
// следующий раунд, пополнив пул драфта сгенерированным вариантом.
func (m *Match) nextRoundOrEnd() {
	if m.battle != nil {
		m.battle.Teardown()
		m.battle = nil
	}

	if m.scoreA >= config.RoundsToWin || m.scoreB >= config.RoundsToWin || m.round >= config.MaxRounds {
		m.finishMatch()
		return
	}

	m.round++
	m.growPool()
	m.transition(PhaseRoundStart, config.RoundStartDelay)
}

func (m *Match) growPool() {
	m.genSeq++
	variant, err := defs.GenerateVariant(m.rng.Rand(), m.genSeq)
	if err != nil {
		log.Printf("Match: could not generate draft variant: %v", err)
		return
	}
	m.draftPool = append(m.draftPool, variant)
}

func (m *Match) finishMatch() {
	winner := types.SideA
	if m.scoreB > m.scoreA {
		winner = types.SideB
	}
	m.result = &MatchResult{
		ID:     uuid.New(),
		Winner: winner,
		ScoreA: m.scoreA,
		ScoreB: m.scoreB,
		Rounds: m.rounds,
	}
	m.transition(PhaseMatchEnd, 0)
	m.dispatcher.Dispatch(event.Event{Type: event.MatchEnded, Data: *m.result})
}

// transition публикует пару (предыдущая, следующая) фаза и взводит
// паузу новой фазы.
func (m *Match) transition(next Phase, delay float64) {
	prev := m.phase
	m.phase = next
	m.delay = delay
	m.dispatcher.Dispatch(event.Event{
		Type: event.PhaseChanged,
		Data: event.PhaseChangedData{Prev: prev.String(), Next: next.String(), Round: m.round},
	})
}
