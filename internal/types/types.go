// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности в ECS.
type EntityID uint64

// Side — сторона боя. В раунде всегда ровно две стороны.
type Side int

const (
	SideA Side = iota // игрок
	SideB             // противник
)

// Opponent возвращает противоположную сторону.
func (s Side) Opponent() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

func (s Side) String() string {
	if s == SideA {
		return "A"
	}
	return "B"
}
