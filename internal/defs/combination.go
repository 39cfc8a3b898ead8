// internal/defs/combination.go
package defs

import "fmt"

// CombinationDefinition is the raw catalog entry referencing its parts by ID.
type CombinationDefinition struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BodyID    string  `json:"body_id"`
	WeaponID  string  `json:"weapon_id"`
	AbilityID string  `json:"ability_id"`
	Element   Element `json:"element"`
	Quantity  int     `json:"quantity"`
}

// Combination is a resolved, immutable troop build: all four module
// references plus the quantity multiplier. Combinations are plain values;
// generated variants live on the heap like any other value and need no
// pooling.
type Combination struct {
	ID       string
	Name     string
	Body     *BodyDefinition
	Weapon   *WeaponDefinition
	Ability  *AbilityDefinition
	Element  Element
	Quantity int
}

// IsValid reports whether the combination may spawn: all four module
// references present and a quantity in {1,2,3,5}. Validity is checked,
// never assumed.
func (c *Combination) IsValid() bool {
	if c == nil {
		return false
	}
	if c.Body == nil || c.Weapon == nil || c.Ability == nil {
		return false
	}
	if !IsValidElement(c.Element) {
		return false
	}
	return IsValidQuantity(c.Quantity)
}

// PerUnitHealth is the max health of a single unit of the group.
func (c *Combination) PerUnitHealth() float64 {
	return c.Body.MaxHealth * QuantityFactor(c.Quantity)
}

// PerUnitDamage is the base weapon damage of a single unit of the group.
func (c *Combination) PerUnitDamage() float64 {
	return c.Weapon.BaseDamage * QuantityFactor(c.Quantity)
}

// AbilityEffectiveness scales the ability's magnitude down with quantity.
func (c *Combination) AbilityEffectiveness() float64 {
	return QuantityFactor(c.Quantity)
}

// Resolve builds a Combination from a catalog entry, failing if any
// referenced part is missing from the libraries.
func Resolve(def CombinationDefinition) (*Combination, error) {
	body, ok := BodyLibrary[def.BodyID]
	if !ok {
		return nil, fmt.Errorf("combination %s: unknown body %q", def.ID, def.BodyID)
	}
	weapon, ok := WeaponLibrary[def.WeaponID]
	if !ok {
		return nil, fmt.Errorf("combination %s: unknown weapon %q", def.ID, def.WeaponID)
	}
	ability, ok := AbilityLibrary[def.AbilityID]
	if !ok {
		return nil, fmt.Errorf("combination %s: unknown ability %q", def.ID, def.AbilityID)
	}
	c := &Combination{
		ID:       def.ID,
		Name:     def.Name,
		Body:     body,
		Weapon:   weapon,
		Ability:  ability,
		Element:  def.Element,
		Quantity: def.Quantity,
	}
	if !c.IsValid() {
		return nil, fmt.Errorf("combination %s: invalid element %q or quantity %d", def.ID, def.Element, def.Quantity)
	}
	return c, nil
}
