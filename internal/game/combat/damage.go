package combat

import "github.com/cory-johannsen/gametable/internal/game/domain"

// DamageInput describes one damage roll plus the target's defensive sets.
type DamageInput struct {
	// DamageRoll is the total rolled on the damage dice plus DamageBonus,
	// i.e. the number a player reads off the table.
	DamageRoll int
	// DamageBonus is the flat bonus portion of DamageRoll. On a critical
	// hit only the dice portion (DamageRoll-DamageBonus) is doubled.
	DamageBonus int
	// DamageType selects which resistance/vulnerability/immunity entries
	// apply.
	DamageType domain.DamageType
	// IsCritical doubles the dice portion of the damage.
	IsCritical bool

	Resistances     domain.DamageTypeSet
	Vulnerabilities domain.DamageTypeSet
	Immunities      domain.DamageTypeSet
}

// DamageCalc is the outcome of CalculateDamage.
type DamageCalc struct {
	// BaseDamage is the damage after critical doubling, before defenses.
	BaseDamage int
	// DamageBeforeResistances equals BaseDamage; kept separate so callers
	// can log the pre-defense figure explicitly.
	DamageBeforeResistances int
	// FinalDamage is the amount to apply. It is NOT clamped at zero here;
	// the HP state machine clamps at application time.
	FinalDamage int

	EffectiveResistance    bool
	EffectiveVulnerability bool
	EffectiveImmunity      bool
}

// CalculateDamage computes the final damage for one hit.
//
// Critical hits double only the dice portion: (roll-bonus)*2 + bonus.
// Immunity zeroes the damage and short-circuits; resistance and
// vulnerability on the same type cancel; resistance halves rounding down;
// vulnerability doubles. Negative and zero rolls are permitted inputs and
// pass through unmodified by any clamping.
func CalculateDamage(in DamageInput) DamageCalc {
	base := in.DamageRoll
	if in.IsCritical {
		base = (in.DamageRoll-in.DamageBonus)*2 + in.DamageBonus
	}

	out := DamageCalc{
		BaseDamage:              base,
		DamageBeforeResistances: base,
		FinalDamage:             base,
	}

	if in.Immunities.Has(in.DamageType) {
		out.FinalDamage = 0
		out.EffectiveImmunity = true
		return out
	}

	resisted := in.Resistances.Has(in.DamageType)
	vulnerable := in.Vulnerabilities.Has(in.DamageType)
	switch {
	case resisted && vulnerable:
		// cancel: damage unmodified, neither flag reported as effective
	case resisted:
		out.EffectiveResistance = true
		out.FinalDamage = floorHalf(base)
	case vulnerable:
		out.EffectiveVulnerability = true
		out.FinalDamage = base * 2
	}
	return out
}

// floorHalf halves n rounding toward negative infinity, matching the
// tabletop convention of rounding damage down.
func floorHalf(n int) int {
	if n < 0 && n%2 != 0 {
		return n/2 - 1
	}
	return n / 2
}
