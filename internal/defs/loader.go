// internal/defs/loader.go
package defs

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed data/*.json
var defaultData embed.FS

// BodyLibrary holds all body definitions, keyed by their ID.
var BodyLibrary map[string]*BodyDefinition

// WeaponLibrary holds all weapon definitions, keyed by their ID.
var WeaponLibrary map[string]*WeaponDefinition

// AbilityLibrary holds all ability definitions, keyed by their ID.
var AbilityLibrary map[string]*AbilityDefinition

// CombinationCatalog holds the base combination entries in file order.
// The first entry doubles as the known-good fallback build.
var CombinationCatalog []CombinationDefinition

// LoadDefault populates every library from the embedded data files.
func LoadDefault() error {
	bodies, err := defaultData.ReadFile("data/bodies.json")
	if err != nil {
		return fmt.Errorf("failed to read embedded body definitions: %w", err)
	}
	weapons, err := defaultData.ReadFile("data/weapons.json")
	if err != nil {
		return fmt.Errorf("failed to read embedded weapon definitions: %w", err)
	}
	abilities, err := defaultData.ReadFile("data/abilities.json")
	if err != nil {
		return fmt.Errorf("failed to read embedded ability definitions: %w", err)
	}
	combos, err := defaultData.ReadFile("data/combinations.json")
	if err != nil {
		return fmt.Errorf("failed to read embedded combination catalog: %w", err)
	}
	return loadAll(bodies, weapons, abilities, combos)
}

// LoadFromFiles populates the libraries from external JSON files, overriding
// the embedded defaults.
func LoadFromFiles(bodiesPath, weaponsPath, abilitiesPath, combosPath string) error {
	bodies, err := os.ReadFile(bodiesPath)
	if err != nil {
		return fmt.Errorf("failed to read body definitions file: %w", err)
	}
	weapons, err := os.ReadFile(weaponsPath)
	if err != nil {
		return fmt.Errorf("failed to read weapon definitions file: %w", err)
	}
	abilities, err := os.ReadFile(abilitiesPath)
	if err != nil {
		return fmt.Errorf("failed to read ability definitions file: %w", err)
	}
	combos, err := os.ReadFile(combosPath)
	if err != nil {
		return fmt.Errorf("failed to read combination catalog file: %w", err)
	}
	return loadAll(bodies, weapons, abilities, combos)
}

func loadAll(bodies, weapons, abilities, combos []byte) error {
	var bodyDefs []BodyDefinition
	if err := json.Unmarshal(bodies, &bodyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal body definitions: %w", err)
	}
	var weaponDefs []WeaponDefinition
	if err := json.Unmarshal(weapons, &weaponDefs); err != nil {
		return fmt.Errorf("failed to unmarshal weapon definitions: %w", err)
	}
	var abilityDefs []AbilityDefinition
	if err := json.Unmarshal(abilities, &abilityDefs); err != nil {
		return fmt.Errorf("failed to unmarshal ability definitions: %w", err)
	}
	var comboDefs []CombinationDefinition
	if err := json.Unmarshal(combos, &comboDefs); err != nil {
		return fmt.Errorf("failed to unmarshal combination catalog: %w", err)
	}

	BodyLibrary = make(map[string]*BodyDefinition, len(bodyDefs))
	for i := range bodyDefs {
		BodyLibrary[bodyDefs[i].ID] = &bodyDefs[i]
	}
	WeaponLibrary = make(map[string]*WeaponDefinition, len(weaponDefs))
	for i := range weaponDefs {
		if !validWeaponShape(weaponDefs[i].Shape) {
			return fmt.Errorf("weapon %s: unknown shape %q", weaponDefs[i].ID, weaponDefs[i].Shape)
		}
		WeaponLibrary[weaponDefs[i].ID] = &weaponDefs[i]
	}
	AbilityLibrary = make(map[string]*AbilityDefinition, len(abilityDefs))
	for i := range abilityDefs {
		if !validAbilityKinds[abilityDefs[i].Kind] {
			return fmt.Errorf("ability %s: unknown kind %q", abilityDefs[i].ID, abilityDefs[i].Kind)
		}
		AbilityLibrary[abilityDefs[i].ID] = &abilityDefs[i]
	}
	CombinationCatalog = comboDefs
	return nil
}

func validWeaponShape(s WeaponShape) bool {
	switch s {
	case ShapeMelee, ShapeLinear, ShapeHoming, ShapeArea:
		return true
	}
	return false
}

// ResolveCatalog resolves every catalog entry, skipping (and reporting)
// invalid ones. At least one valid combination is required.
func ResolveCatalog() ([]*Combination, error) {
	out := make([]*Combination, 0, len(CombinationCatalog))
	for _, def := range CombinationCatalog {
		c, err := Resolve(def)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("combination catalog is empty")
	}
	return out, nil
}
