// Package domain holds the shared value types and error taxonomy used by
// the combat, encounter, and condition packages.
package domain

// DamageType identifies one of the standard damage types.
type DamageType string

const (
	DamageAcid        DamageType = "acid"
	DamageBludgeoning DamageType = "bludgeoning"
	DamageCold        DamageType = "cold"
	DamageFire        DamageType = "fire"
	DamageForce       DamageType = "force"
	DamageLightning   DamageType = "lightning"
	DamageNecrotic    DamageType = "necrotic"
	DamagePiercing    DamageType = "piercing"
	DamagePoison      DamageType = "poison"
	DamagePsychic     DamageType = "psychic"
	DamageRadiant     DamageType = "radiant"
	DamageSlashing    DamageType = "slashing"
	DamageThunder     DamageType = "thunder"
)

// Ability identifies one of the six ability scores used for saving throws.
type Ability string

const (
	Strength     Ability = "strength"
	Dexterity    Ability = "dexterity"
	Constitution Ability = "constitution"
	Intelligence Ability = "intelligence"
	Wisdom       Ability = "wisdom"
	Charisma     Ability = "charisma"
)

// Valid reports whether a is one of the six known abilities.
func (a Ability) Valid() bool {
	switch a {
	case Strength, Dexterity, Constitution, Intelligence, Wisdom, Charisma:
		return true
	}
	return false
}

// DamageTypeSet is a lookup set of damage types (resistances, vulnerabilities,
// or immunities for one participant).
type DamageTypeSet map[DamageType]struct{}

// NewDamageTypeSet builds a set from the given types.
func NewDamageTypeSet(types ...DamageType) DamageTypeSet {
	s := make(DamageTypeSet, len(types))
	for _, t := range types {
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether t is in the set. A nil set has no members.
func (s DamageTypeSet) Has(t DamageType) bool {
	_, ok := s[t]
	return ok
}

// Types returns the members of the set in unspecified order.
func (s DamageTypeSet) Types() []DamageType {
	out := make([]DamageType, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	return out
}
