// internal/app/bag.go
package app

import (
	"go-arena-battler/internal/defs"
	"go-arena-battler/internal/utils"
)

// Bag — мешок без возврата с памятью последних выборов. Из пула
// исключаются последние memory вытянутых комбинаций, остаток
// перемешивается; тянем, пока мешок не опустеет, потом пересобираем.
// Повтор невозможен в пределах min(memory, len(pool)-1) подряд идущих
// вытяжек; когда пул мал, память урезается и повторы допускаются.
type Bag struct {
	rng    *utils.PRNGService
	memory int
	recent []string // ID последних вытянутых, новые в конце
	bag    []*defs.Combination
}

func NewBag(rng *utils.PRNGService, memory int) *Bag {
	return &Bag{rng: rng, memory: memory}
}

// Draw вытягивает комбинацию из мешка, пересобирая его при необходимости
// из текущего пула (пул может расти между раундами).
func (b *Bag) Draw(pool []*defs.Combination) *defs.Combination {
	if len(pool) == 0 {
		return nil
	}
	if len(b.bag) == 0 {
		b.refill(pool)
	}
	n := len(b.bag)
	pick := b.bag[n-1]
	b.bag = b.bag[:n-1]

	b.recent = append(b.recent, pick.ID)
	if len(b.recent) > b.memory {
		b.recent = b.recent[len(b.recent)-b.memory:]
	}
	return pick
}

// refill собирает новый мешок: пул минус недавние, перемешанный.
// Если недавние закрывают весь пул, окно памяти сужается со старых
// записей, пока не останется хотя бы один кандидат.
func (b *Bag) refill(pool []*defs.Combination) {
	excluded := append([]string(nil), b.recent...)
	for {
		candidates := filterExcluded(pool, excluded)
		if len(candidates) > 0 {
			b.rng.Shuffle(len(candidates), func(i, j int) {
				candidates[i], candidates[j] = candidates[j], candidates[i]
			})
			b.bag = candidates
			return
		}
		// Пул меньше памяти — забываем самую старую запись.
		excluded = excluded[1:]
	}
}

func filterExcluded(pool []*defs.Combination, excluded []string) []*defs.Combination {
	out := make([]*defs.Combination, 0, len(pool))
	for _, c := range pool {
		if !contains(excluded, c.ID) {
			out = append(out, c)
		}
	}
	return out
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
