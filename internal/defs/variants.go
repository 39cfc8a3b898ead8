// internal/defs/variants.go
package defs

import (
	"fmt"
	"math/rand"
	"sort"
)

// GenerateVariant remixes random catalog parts into a new combination.
// Variants are ordinary values: they join the draft pool for the rest of
// the match and disappear with it.
func GenerateVariant(rng *rand.Rand, seq int) (*Combination, error) {
	if len(BodyLibrary) == 0 || len(WeaponLibrary) == 0 || len(AbilityLibrary) == 0 {
		return nil, fmt.Errorf("definition libraries are not loaded")
	}
	body := pickBody(rng)
	weapon := pickWeapon(rng)
	ability := pickAbility(rng)
	element := Elements[rng.Intn(len(Elements))]
	quantity := Quantities[rng.Intn(len(Quantities))]

	c := &Combination{
		ID:       fmt.Sprintf("GEN_%04d", seq),
		Name:     fmt.Sprintf("%s %s", element, body.Name),
		Body:     body,
		Weapon:   weapon,
		Ability:  ability,
		Element:  element,
		Quantity: quantity,
	}
	if !c.IsValid() {
		return nil, fmt.Errorf("generated variant %s is invalid", c.ID)
	}
	return c, nil
}

// Map iteration order is random but not seeded; the sorted key walk keeps
// generated variants reproducible for a fixed seed.
func pickBody(rng *rand.Rand) *BodyDefinition {
	return BodyLibrary[pickKey(rng, keysOf(BodyLibrary))]
}

func pickWeapon(rng *rand.Rand) *WeaponDefinition {
	return WeaponLibrary[pickKey(rng, keysOf(WeaponLibrary))]
}

func pickAbility(rng *rand.Rand) *AbilityDefinition {
	return AbilityLibrary[pickKey(rng, keysOf(AbilityLibrary))]
}

func keysOf[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func pickKey(rng *rand.Rand, keys []string) string {
	return keys[rng.Intn(len(keys))]
}
