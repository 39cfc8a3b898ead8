// internal/defs/types.go
package defs

// Element is one of the three cyclic elements. Each element is strong
// against exactly one other and weak against exactly one other.
type Element string

const (
	ElementFire   Element = "FIRE"
	ElementWater  Element = "WATER"
	ElementNature Element = "NATURE"
)

// beats maps each element to the one it has the advantage over:
// Fire > Nature > Water > Fire.
var beats = map[Element]Element{
	ElementFire:   ElementNature,
	ElementNature: ElementWater,
	ElementWater:  ElementFire,
}

// ElementMultiplier returns the damage multiplier for an attack of element
// att against a defender of element def: 1.5 on advantage, 0.75 on
// disadvantage, 1.0 otherwise.
func ElementMultiplier(att, def Element) float64 {
	if beats[att] == def {
		return 1.5
	}
	if beats[def] == att {
		return 0.75
	}
	return 1.0
}

// Elements lists all valid elements.
var Elements = []Element{ElementFire, ElementWater, ElementNature}

// IsValidElement reports whether e is one of the three known elements.
func IsValidElement(e Element) bool {
	_, ok := beats[e]
	return ok
}

// WeaponShape defines how a weapon delivers its damage.
type WeaponShape string

const (
	ShapeMelee  WeaponShape = "MELEE"
	ShapeLinear WeaponShape = "LINEAR"
	ShapeHoming WeaponShape = "HOMING"
	ShapeArea   WeaponShape = "AREA"
)

// BodyDefinition holds the static stats of a troop body.
type BodyDefinition struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	MaxHealth   float64 `json:"max_health"`
	MoveSpeed   float64 `json:"move_speed"`
	AttackRange float64 `json:"attack_range"`
}

// WeaponDefinition holds the static stats of a weapon.
type WeaponDefinition struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	BaseDamage float64     `json:"base_damage"`
	Cooldown   float64     `json:"cooldown"` // seconds between attacks
	Shape      WeaponShape `json:"shape"`
}

// AbilityKind is the closed set of ability categories. Every concrete
// ability is one of these kinds with its own parameters; there is no
// lookup-by-name instantiation.
type AbilityKind string

const (
	AbilityRegeneration AbilityKind = "REGENERATION" // periodic: heal per second
	AbilityBerserk      AbilityKind = "BERSERK"      // conditional: bonus outgoing damage below half health
	AbilityFirstStrike  AbilityKind = "FIRST_STRIKE" // conditional: first attack multiplied, once
	AbilityPoison       AbilityKind = "POISON"       // on-hit: damage over time on the victim
	AbilitySlowHit      AbilityKind = "SLOW_HIT"     // control: slows the victim
	AbilityStunHit      AbilityKind = "STUN_HIT"     // control: chance to stun the victim
	AbilityRootHit      AbilityKind = "ROOT_HIT"     // control: chance to pin the victim in place
	AbilityReflect      AbilityKind = "REFLECT"      // incoming: returns part of the damage
	AbilityWard         AbilityKind = "WARD"         // incoming: chance to negate a hit
	AbilityLifesteal    AbilityKind = "LIFESTEAL"    // on-kill: heals on killing blow
)

var validAbilityKinds = map[AbilityKind]bool{
	AbilityRegeneration: true,
	AbilityBerserk:      true,
	AbilityFirstStrike:  true,
	AbilityPoison:       true,
	AbilitySlowHit:      true,
	AbilityStunHit:      true,
	AbilityRootHit:      true,
	AbilityReflect:      true,
	AbilityWard:         true,
	AbilityLifesteal:    true,
}

// AbilityDefinition holds the static parameters of an ability. The meaning
// of the numeric fields depends on the kind; unused fields stay zero.
type AbilityDefinition struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Kind     AbilityKind `json:"kind"`
	Power    float64     `json:"power"`    // main magnitude (heal/s, damage multiplier, reflected share...)
	Duration float64     `json:"duration"` // effect duration where applicable
	Chance   float64     `json:"chance"`   // trigger chance in [0,1] where applicable
}

// Quantities are the only legal troop group sizes.
var Quantities = []int{1, 2, 3, 5}

// IsValidQuantity reports whether q is a legal group size.
func IsValidQuantity(q int) bool {
	for _, v := range Quantities {
		if v == q {
			return true
		}
	}
	return false
}

// QuantityFactor scales per-unit stats and ability effectiveness so that
// the total power of a group stays roughly constant as quantity rises.
func QuantityFactor(q int) float64 {
	switch q {
	case 1:
		return 1.0
	case 2:
		return 0.6
	case 3:
		return 0.45
	case 5:
		return 0.3
	default:
		return 0.0
	}
}
