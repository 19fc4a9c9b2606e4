package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/gametable/internal/game/combat"
	"github.com/cory-johannsen/gametable/internal/game/domain"
)

func TestCheckHit_NaturalOne_AlwaysMisses(t *testing.T) {
	r := combat.CheckHit(combat.HitInput{AttackRoll: 1, AttackBonus: 50, TargetAC: 5})
	assert.False(t, r.Hit)
	assert.False(t, r.IsCritical)
	assert.True(t, r.IsNaturalOne)
	assert.Equal(t, 51, r.TotalAttackRoll)
}

func TestCheckHit_NaturalTwenty_AlwaysCrits(t *testing.T) {
	r := combat.CheckHit(combat.HitInput{AttackRoll: 20, AttackBonus: -10, TargetAC: 30})
	assert.True(t, r.Hit)
	assert.True(t, r.IsCritical)
	assert.True(t, r.IsNaturalTwenty)
}

func TestCheckHit_MeetsAC_Hits(t *testing.T) {
	r := combat.CheckHit(combat.HitInput{AttackRoll: 12, AttackBonus: 3, TargetAC: 15})
	assert.True(t, r.Hit)
	assert.False(t, r.IsCritical)
}

func TestCheckHit_BelowAC_Misses(t *testing.T) {
	r := combat.CheckHit(combat.HitInput{AttackRoll: 12, AttackBonus: 2, TargetAC: 15})
	assert.False(t, r.Hit)
}

func TestPropertyCheckHit_NaturalRolls(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		bonus := rapid.IntRange(-20, 20).Draw(rt, "bonus")
		ac := rapid.IntRange(1, 40).Draw(rt, "ac")

		one := combat.CheckHit(combat.HitInput{AttackRoll: 1, AttackBonus: bonus, TargetAC: ac})
		assert.False(rt, one.Hit, "natural 1 must always miss")
		assert.False(rt, one.IsCritical, "natural 1 must never crit")

		twenty := combat.CheckHit(combat.HitInput{AttackRoll: 20, AttackBonus: bonus, TargetAC: ac})
		assert.True(rt, twenty.Hit, "natural 20 must always hit")
		assert.True(rt, twenty.IsCritical, "natural 20 must always crit")
	})
}

func TestCalculateDamage_CritDoublesDiceOnly(t *testing.T) {
	// roll=5 (dice 2 + bonus 3), crit => (5-3)*2+3 = 7, not 16
	out := combat.CalculateDamage(combat.DamageInput{
		DamageRoll: 5, DamageBonus: 3, DamageType: domain.DamageSlashing, IsCritical: true,
	})
	assert.Equal(t, 7, out.BaseDamage)
	assert.Equal(t, 7, out.FinalDamage)
}

func TestCalculateDamage_ResistanceHalvesRoundingDown(t *testing.T) {
	out := combat.CalculateDamage(combat.DamageInput{
		DamageRoll: 4, DamageBonus: 2, DamageType: domain.DamageFire,
		Resistances: domain.NewDamageTypeSet(domain.DamageFire),
	})
	assert.Equal(t, 6, out.BaseDamage)
	assert.Equal(t, 3, out.FinalDamage)
	assert.True(t, out.EffectiveResistance)

	odd := combat.CalculateDamage(combat.DamageInput{
		DamageRoll: 7, DamageType: domain.DamageFire,
		Resistances: domain.NewDamageTypeSet(domain.DamageFire),
	})
	assert.Equal(t, 3, odd.FinalDamage, "7/2 must round down")
}

func TestCalculateDamage_ResistanceAndVulnerabilityCancel(t *testing.T) {
	out := combat.CalculateDamage(combat.DamageInput{
		DamageRoll: 8, DamageType: domain.DamageCold,
		Resistances:     domain.NewDamageTypeSet(domain.DamageCold),
		Vulnerabilities: domain.NewDamageTypeSet(domain.DamageCold),
	})
	assert.Equal(t, 8, out.FinalDamage)
	assert.False(t, out.EffectiveResistance)
	assert.False(t, out.EffectiveVulnerability)
}

func TestCalculateDamage_VulnerabilityDoubles(t *testing.T) {
	out := combat.CalculateDamage(combat.DamageInput{
		DamageRoll: 6, DamageType: domain.DamageRadiant,
		Vulnerabilities: domain.NewDamageTypeSet(domain.DamageRadiant),
	})
	assert.Equal(t, 12, out.FinalDamage)
	assert.True(t, out.EffectiveVulnerability)
}

func TestCalculateDamage_ImmunityZeroes(t *testing.T) {
	out := combat.CalculateDamage(combat.DamageInput{
		DamageRoll: 999, DamageType: domain.DamagePoison,
		Immunities: domain.NewDamageTypeSet(domain.DamagePoison),
		// immunity must win even when the type is also listed elsewhere
		Resistances:     domain.NewDamageTypeSet(domain.DamagePoison),
		Vulnerabilities: domain.NewDamageTypeSet(domain.DamagePoison),
	})
	assert.Equal(t, 0, out.FinalDamage)
	assert.True(t, out.EffectiveImmunity)
	assert.False(t, out.EffectiveResistance)
	assert.False(t, out.EffectiveVulnerability)
}

func TestCalculateDamage_NegativeRollsPassThrough(t *testing.T) {
	out := combat.CalculateDamage(combat.DamageInput{DamageRoll: -3, DamageType: domain.DamageAcid})
	assert.Equal(t, -3, out.FinalDamage, "resolver must not clamp; the HP machine clamps")
}

func TestPropertyCalculateDamage_ImmunityAlwaysZero(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		roll := rapid.IntRange(-100, 100).Draw(rt, "roll")
		bonus := rapid.IntRange(-20, 20).Draw(rt, "bonus")
		crit := rapid.Bool().Draw(rt, "crit")
		out := combat.CalculateDamage(combat.DamageInput{
			DamageRoll: roll, DamageBonus: bonus, IsCritical: crit,
			DamageType: domain.DamageNecrotic,
			Immunities: domain.NewDamageTypeSet(domain.DamageNecrotic),
		})
		assert.Zero(rt, out.FinalDamage, "immunity must zero damage regardless of magnitude")
	})
}

func TestPropertyCalculateDamage_ResistanceNeverIncreases(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		roll := rapid.IntRange(0, 200).Draw(rt, "roll")
		out := combat.CalculateDamage(combat.DamageInput{
			DamageRoll: roll, DamageType: domain.DamageFire,
			Resistances: domain.NewDamageTypeSet(domain.DamageFire),
		})
		assert.LessOrEqual(rt, out.FinalDamage, out.BaseDamage)
		assert.Equal(rt, roll/2, out.FinalDamage)
	})
}
