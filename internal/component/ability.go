// internal/component/ability.go
package component

// AbilityState — локальное состояние способности юнита. Сами параметры
// живут в defs.AbilityDefinition; здесь только то, что меняется в бою.
type AbilityState struct {
	Effectiveness   float64 // масштаб эффекта по множителю количества
	FirstStrikeUsed bool    // «первый удар» уже сработал
}
