// Package combat implements pure attack and damage resolution. Nothing in
// this package performs I/O or mutates persistent state; callers feed the
// results into the encounter HP state machine.
package combat

// HitInput describes one attack roll against a target's armor class.
type HitInput struct {
	// AttackRoll is the raw d20 result, before bonuses.
	AttackRoll int
	// AttackBonus is the attacker's total to-hit bonus.
	AttackBonus int
	// TargetAC is the defender's armor class.
	TargetAC int
}

// HitResult is the outcome of CheckHit.
type HitResult struct {
	Hit             bool
	TotalAttackRoll int
	IsCritical      bool
	IsNaturalOne    bool
	IsNaturalTwenty bool
}

// CheckHit resolves whether an attack lands.
// A natural 1 always misses and is never a critical, regardless of bonus.
// A natural 20 always hits and is always a critical, regardless of AC.
// Otherwise the attack hits iff AttackRoll+AttackBonus >= TargetAC.
//
// Postcondition: IsCritical implies Hit; IsNaturalOne implies !Hit.
func CheckHit(in HitInput) HitResult {
	r := HitResult{
		TotalAttackRoll: in.AttackRoll + in.AttackBonus,
		IsNaturalOne:    in.AttackRoll == 1,
		IsNaturalTwenty: in.AttackRoll == 20,
	}
	switch {
	case r.IsNaturalOne:
		// auto-miss
	case r.IsNaturalTwenty:
		r.Hit = true
		r.IsCritical = true
	default:
		r.Hit = r.TotalAttackRoll >= in.TargetAC
	}
	return r
}
