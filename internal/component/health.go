// internal/component/health.go
package component

// Health — компонент здоровья. Alive защёлкивается в false в момент
// смерти: мёртвая сущность обязана отклонять дальнейший урон.
type Health struct {
	Current float64
	Max     float64
	Alive   bool
}
