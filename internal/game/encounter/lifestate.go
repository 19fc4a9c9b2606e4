package encounter

// LifeState is the explicit consciousness state machine for a participant:
//
//	Conscious -> Dying (hp reaches 0)
//	Dying     -> Dead (3 failures, or massive damage)
//	Dying     -> Stabilized (3 successes; still unconscious)
//	Dying     -> Conscious (healing, or a natural-20 death save)
//	Stabilized -> Conscious (healing)
//	Dead is terminal.
type LifeState int

const (
	Conscious LifeState = iota
	Dying
	Stabilized
	Dead
)

// String returns a human-readable life-state label.
func (s LifeState) String() string {
	switch s {
	case Conscious:
		return "conscious"
	case Dying:
		return "dying"
	case Stabilized:
		return "stabilized"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// lifeStateOf derives the life state from hit points and death-save
// counters. Death takes precedence over stabilization so that massive
// damage (failures forced to 3) reads as Dead regardless of successes.
func lifeStateOf(currentHP, successes, failures int) LifeState {
	switch {
	case failures >= 3:
		return Dead
	case currentHP > 0:
		return Conscious
	case successes >= 3:
		return Stabilized
	default:
		return Dying
	}
}

// DeathSaveOutcome classifies one death-save roll.
type DeathSaveOutcome string

const (
	// SaveCriticalSuccess is a natural 20: revive at 1 HP.
	SaveCriticalSuccess DeathSaveOutcome = "critical_success"
	// SaveSuccess is a roll of 10-19: one success.
	SaveSuccess DeathSaveOutcome = "success"
	// SaveFailure is a roll of 2-9: one failure.
	SaveFailure DeathSaveOutcome = "failure"
	// SaveCriticalFailure is a natural 1: two failures.
	SaveCriticalFailure DeathSaveOutcome = "critical_failure"
)

// applyDeathSave is the pure death-save transition. It returns the updated
// success/failure counters (capped at 3), the outcome class, and whether
// the roll revives the participant at 1 HP.
//
// Precondition: roll in [1,20]; the participant is at 0 HP and not dead.
func applyDeathSave(successes, failures, roll int) (newSuccesses, newFailures int, outcome DeathSaveOutcome, revived bool) {
	switch {
	case roll == 20:
		return 0, 0, SaveCriticalSuccess, true
	case roll == 1:
		return successes, capSaves(failures + 2), SaveCriticalFailure, false
	case roll >= 10:
		return capSaves(successes + 1), failures, SaveSuccess, false
	default:
		return successes, capSaves(failures + 1), SaveFailure, false
	}
}

func capSaves(n int) int {
	if n > 3 {
		return 3
	}
	return n
}
