// internal/battle/pool.go
package battle

import "go-arena-battler/internal/component"

// ProjectilePool — типизированный пул снарядов со свободным списком.
// Снаряды создаются и умирают с высокой частотой; пул делает выделение
// амортизированно O(1). Acquire инициализирует экземпляр (или создаёт
// новый, если список пуст), Release очищает разовое состояние и
// возвращает его в список.
type ProjectilePool struct {
	free []*component.Projectile
}

func NewProjectilePool(capacity int) *ProjectilePool {
	p := &ProjectilePool{
		free: make([]*component.Projectile, 0, capacity),
	}
	for i := 0; i < capacity; i++ {
		p.free = append(p.free, &component.Projectile{})
	}
	return p
}

// Acquire выдаёт чистый снаряд.
func (p *ProjectilePool) Acquire() *component.Projectile {
	if n := len(p.free); n > 0 {
		proj := p.free[n-1]
		p.free = p.free[:n-1]
		return proj
	}
	return &component.Projectile{}
}

// Release очищает снаряд и возвращает его в свободный список.
// Защёлка HasHit и слабая ссылка на цель обнуляются именно здесь,
// чтобы переиспользованный экземпляр не унаследовал чужое попадание.
func (p *ProjectilePool) Release(proj *component.Projectile) {
	if proj == nil {
		return
	}
	*proj = component.Projectile{}
	p.free = append(p.free, proj)
}

// FreeCount — размер свободного списка (для тестов и диагностики).
func (p *ProjectilePool) FreeCount() int {
	return len(p.free)
}
