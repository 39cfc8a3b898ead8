// internal/app/draft.go
package app

import (
	"go-arena-battler/internal/config"
	"go-arena-battler/internal/defs"
	"go-arena-battler/internal/event"
	"go-arena-battler/internal/types"
	"go-arena-battler/internal/utils"
)

// Draft — ограниченный по времени выбор одной комбинации из трёх
// предложенных, для каждой стороны независимо. Отсчёт идёт решающими
// тиками по 100 мс; по истечении времени невыбравшая сторона получает
// случайный вариант из своих предложенных. Выбор после таймаута
// отклоняется; первый валидный выбор стороны фиксируется намертво.
type Draft struct {
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService

	options map[types.Side][]*defs.Combination
	picked  map[types.Side]*defs.Combination

	remaining    float64
	tickAccum    float64
	lowTimeFired bool
	complete     bool
	cancelled    bool
}

// NewDraft раздаёт варианты из мешков сторон. reserved, если задан,
// занимает нулевой слот своей стороны, не расходуя мешок: стратегический
// пик гарантированно присутствует среди вариантов.
func NewDraft(dispatcher *event.Dispatcher, rng *utils.PRNGService, pool []*defs.Combination, bags map[types.Side]*Bag, reserved map[types.Side]*defs.Combination) *Draft {
	d := &Draft{
		dispatcher: dispatcher,
		rng:        rng,
		options:    make(map[types.Side][]*defs.Combination),
		picked:     make(map[types.Side]*defs.Combination),
		remaining:  config.DraftDuration,
	}
	for _, side := range []types.Side{types.SideA, types.SideB} {
		opts := make([]*defs.Combination, 0, config.DraftOptionCount)
		if r := reserved[side]; r != nil {
			opts = append(opts, r)
		}
		// Ограничение попыток защищает от вырожденного пула, который не
		// может дать трёх различных вариантов: мешок после дообсыпки
		// вправе повторить уже предложенное.
		for attempts := 0; len(opts) < config.DraftOptionCount && attempts < 4*config.DraftOptionCount; attempts++ {
			c := bags[side].Draw(pool)
			if c == nil {
				break
			}
			if draftOffered(opts, c.ID) {
				continue
			}
			opts = append(opts, c)
		}
		d.options[side] = opts

		names := make([]string, len(opts))
		for i, c := range opts {
			names[i] = c.Name
		}
		dispatcher.Dispatch(event.Event{
			Type: event.DraftOptionsReady,
			Data: event.DraftOptionsData{Side: side, Options: names},
		})
	}
	return d
}

// draftOffered проверяет, занята ли комбинация одним из слотов предложения.
func draftOffered(opts []*defs.Combination, id string) bool {
	for _, o := range opts {
		if o.ID == id {
			return true
		}
	}
	return false
}

// Options возвращает предложенные стороне варианты.
func (d *Draft) Options(side types.Side) []*defs.Combination {
	return d.options[side]
}

// Pick возвращает зафиксированный выбор стороны (nil, пока его нет).
func (d *Draft) Pick(side types.Side) *defs.Combination {
	return d.picked[side]
}

// Complete сообщает, определились ли обе стороны.
func (d *Draft) Complete() bool {
	return d.complete
}

// Select — единственная точка входа выбора. Валидирует индекс против
// предложенных вариантов; повторный и послетаймаутный выбор отклоняется.
func (d *Draft) Select(side types.Side, index int) bool {
	if d.complete || d.cancelled {
		return false
	}
	if d.picked[side] != nil {
		return false
	}
	opts := d.options[side]
	if index < 0 || index >= len(opts) {
		return false
	}
	d.lockIn(side, index, false)
	d.maybeComplete()
	return true
}

// Advance продвигает отсчёт. Тик — 100 мс; на каждом тике проверяется
// отмена, на пороге остатка времени один раз уходит предупреждение.
func (d *Draft) Advance(deltaTime float64) {
	if d.complete || d.cancelled {
		return
	}
	d.tickAccum += deltaTime
	for d.tickAccum >= config.TimerTickInterval {
		d.tickAccum -= config.TimerTickInterval
		if d.cancelled {
			return
		}
		d.remaining -= config.TimerTickInterval
		if d.remaining < 0 {
			d.remaining = 0
		}
		d.dispatcher.Dispatch(event.Event{
			Type: event.DraftTick,
			Data: event.DraftTickData{Remaining: d.remaining},
		})
		if !d.lowTimeFired && d.remaining <= config.DraftLowTimeMark {
			d.lowTimeFired = true
			d.dispatcher.Dispatch(event.Event{Type: event.DraftLowTime})
		}
		if d.remaining <= 0 {
			d.timeout()
			return
		}
	}
}

// Cancel прерывает драфт; дальнейшие выборы и тики игнорируются.
func (d *Draft) Cancel() {
	d.cancelled = true
}

// timeout добирает выбор за молчавшие стороны равновероятно из их
// вариантов и завершает драфт безусловно: сторона, оставшаяся вовсе без
// вариантов (пустой пул), остаётся с nil-выбором, но матч в фазе драфта
// не зависает.
func (d *Draft) timeout() {
	for _, side := range []types.Side{types.SideA, types.SideB} {
		if d.picked[side] != nil {
			continue
		}
		opts := d.options[side]
		if len(opts) == 0 {
			continue
		}
		d.lockIn(side, d.rng.Intn(len(opts)), true)
	}
	d.complete = true
	d.dispatcher.Dispatch(event.Event{Type: event.DraftComplete})
}

func (d *Draft) lockIn(side types.Side, index int, auto bool) {
	pick := d.options[side][index]
	d.picked[side] = pick
	d.dispatcher.Dispatch(event.Event{
		Type: event.DraftSelectionMade,
		Data: event.DraftSelectionData{Side: side, Index: index, Name: pick.Name, AutoPick: auto},
	})
}

func (d *Draft) maybeComplete() {
	if d.picked[types.SideA] != nil && d.picked[types.SideB] != nil {
		d.complete = true
		d.dispatcher.Dispatch(event.Event{Type: event.DraftComplete})
	}
}
