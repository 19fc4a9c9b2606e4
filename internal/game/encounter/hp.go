package encounter

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/gametable/internal/game/combat"
	"github.com/cory-johannsen/gametable/internal/game/domain"
)

// HPTracker owns hit points, temp HP, consciousness, and death saves for
// the participants of every encounter. Mutations serialise on the shared
// per-encounter keyed lock.
type HPTracker struct {
	store  Store
	locks  *KeyedLock
	logger *zap.Logger
	now    func() time.Time
}

// NewHPTracker creates an HPTracker sharing the Manager's store and lock.
//
// Precondition: store, locks, and logger must be non-nil.
func NewHPTracker(store Store, locks *KeyedLock, logger *zap.Logger) *HPTracker {
	return &HPTracker{store: store, locks: locks, logger: logger, now: time.Now}
}

// DamageRequest describes one incoming hit.
type DamageRequest struct {
	// Amount is the damage before the target's defenses. Must be >= 0.
	Amount     int
	DamageType domain.DamageType
	// IgnoreResistances skips resistance/vulnerability evaluation, for
	// damage already resolved upstream by the damage resolver.
	IgnoreResistances bool
	// IgnoreImmunities skips immunity evaluation.
	IgnoreImmunities    bool
	SourceParticipantID string
	SourceDescription   string
}

// DamageResult reports the application of one hit.
type DamageResult struct {
	ParticipantID string
	// DamageRequested is the pre-defense amount.
	DamageRequested int
	// DamageApplied is the post-modifier amount (after resistance,
	// vulnerability, and immunity), clamped at zero.
	DamageApplied  int
	TempHPAbsorbed int
	HPLost         int
	CurrentHP      int
	TempHP         int
	MaxHP          int
	IsConscious    bool
	// MassiveDamage is true when the hit killed the participant
	// instantly (already at 0 HP and the post-temp-HP damage reached
	// max HP).
	MassiveDamage bool
	Life          LifeState

	EffectiveResistance    bool
	EffectiveVulnerability bool
	EffectiveImmunity      bool
}

// HealingResult reports the application of healing.
type HealingResult struct {
	ParticipantID   string
	AmountRequested int
	AmountHealed    int
	Overheal        int
	CurrentHP       int
	// Revived is true when the participant was unconscious and is now
	// conscious; death-save counters were reset to zero.
	Revived bool
}

// DeathSaveResult reports one death-save roll.
type DeathSaveResult struct {
	ParticipantID string
	Roll          int
	Outcome       DeathSaveOutcome
	Successes     int
	Failures      int
	Life          LifeState
	// Revived is true on a natural 20: the participant is back at 1 HP.
	Revived   bool
	CurrentHP int
}

// InitializeParticipantStatus creates the status row for a participant
// that was added without one. currentHP nil starts at maxHP.
func (h *HPTracker) InitializeParticipantStatus(ctx context.Context, participantID string, maxHP int, currentHP *int) (*ParticipantStatus, error) {
	if maxHP <= 0 {
		return nil, domain.Invalid("maxHp", "must be > 0, got %d", maxHP)
	}
	if currentHP != nil && *currentHP < 0 {
		return nil, domain.Invalid("currentHp", "must be >= 0, got %d", *currentHP)
	}
	if _, err := h.store.GetParticipant(ctx, participantID); err != nil {
		return nil, err
	}

	st := newStatus(participantID, ParticipantInput{MaxHP: maxHP, CurrentHP: currentHP}, h.now())
	if err := h.store.CreateStatus(ctx, st); err != nil {
		return nil, fmt.Errorf("creating status: %w", err)
	}
	return st, nil
}

// GetParticipantStatus returns the participant's current status row.
func (h *HPTracker) GetParticipantStatus(ctx context.Context, participantID string) (*ParticipantStatus, error) {
	return h.store.GetStatus(ctx, participantID)
}

// CheckConscious reports whether the participant is conscious.
func (h *HPTracker) CheckConscious(ctx context.Context, participantID string) (bool, error) {
	st, err := h.store.GetStatus(ctx, participantID)
	if err != nil {
		return false, err
	}
	return st.IsConscious(), nil
}

// GetDamageLog returns the encounter's append-only damage audit trail.
func (h *HPTracker) GetDamageLog(ctx context.Context, encounterID string) ([]*DamageLogEntry, error) {
	return h.store.ListDamageLog(ctx, encounterID)
}

// ApplyDamage resolves req against the participant's defensive sets,
// consumes temp HP first, floors real HP at zero, applies the massive
// damage rule, and appends a damage-log entry whenever req.Amount > 0
// (even when fully absorbed or resisted to zero, for audit).
func (h *HPTracker) ApplyDamage(ctx context.Context, participantID string, req DamageRequest) (*DamageResult, error) {
	if req.Amount < 0 {
		return nil, domain.Invalid("damageAmount", "must be >= 0, got %d", req.Amount)
	}

	p, err := h.store.GetParticipant(ctx, participantID)
	if err != nil {
		return nil, err
	}

	unlock := h.locks.Lock(p.EncounterID)
	defer unlock()

	e, err := h.store.GetEncounter(ctx, p.EncounterID)
	if err != nil {
		return nil, err
	}
	st, err := h.store.GetStatus(ctx, participantID)
	if err != nil {
		return nil, err
	}

	in := combat.DamageInput{DamageRoll: req.Amount, DamageType: req.DamageType}
	if !req.IgnoreResistances {
		in.Resistances = p.Resistances
		in.Vulnerabilities = p.Vulnerabilities
	}
	if !req.IgnoreImmunities {
		in.Immunities = p.Immunities
	}
	calc := combat.CalculateDamage(in)

	applied := calc.FinalDamage
	if applied < 0 {
		applied = 0
	}

	wasAtZero := st.CurrentHP == 0

	absorbed := applied
	if absorbed > st.TempHP {
		absorbed = st.TempHP
	}
	st.TempHP -= absorbed

	remainder := applied - absorbed
	hpLost := remainder
	if hpLost > st.CurrentHP {
		hpLost = st.CurrentHP
	}
	st.CurrentHP -= hpLost

	massive := wasAtZero && st.MaxHP > 0 && remainder >= st.MaxHP
	if massive {
		st.DeathSaveFailures = 3
	}

	st.UpdatedAt = h.now()
	if err := h.store.SaveStatus(ctx, st); err != nil {
		return nil, fmt.Errorf("saving status: %w", err)
	}

	if req.Amount > 0 {
		entry := &DamageLogEntry{
			ID:                  uuid.NewString(),
			EncounterID:         p.EncounterID,
			ParticipantID:       participantID,
			Amount:              applied,
			DamageType:          req.DamageType,
			SourceParticipantID: req.SourceParticipantID,
			SourceDescription:   req.SourceDescription,
			Round:               e.CurrentRound,
			CreatedAt:           h.now(),
		}
		if err := h.store.AppendDamageLog(ctx, entry); err != nil {
			return nil, fmt.Errorf("appending damage log: %w", err)
		}
	}

	h.logger.Debug("damage applied",
		zap.String("encounter_id", p.EncounterID),
		zap.String("participant_id", participantID),
		zap.Int("requested", req.Amount),
		zap.Int("applied", applied),
		zap.Int("current_hp", st.CurrentHP),
		zap.Bool("massive", massive),
	)
	return &DamageResult{
		ParticipantID:          participantID,
		DamageRequested:        req.Amount,
		DamageApplied:          applied,
		TempHPAbsorbed:         absorbed,
		HPLost:                 hpLost,
		CurrentHP:              st.CurrentHP,
		TempHP:                 st.TempHP,
		MaxHP:                  st.MaxHP,
		IsConscious:            st.IsConscious(),
		MassiveDamage:          massive,
		Life:                   st.Life(),
		EffectiveResistance:    calc.EffectiveResistance,
		EffectiveVulnerability: calc.EffectiveVulnerability,
		EffectiveImmunity:      calc.EffectiveImmunity,
	}, nil
}

// HealDamage restores hit points, clamped at max HP. Healing an
// unconscious participant above 0 HP revives them and resets both
// death-save counters. The dead cannot be healed.
func (h *HPTracker) HealDamage(ctx context.Context, participantID string, amount int, source string) (*HealingResult, error) {
	if amount < 0 {
		return nil, domain.Invalid("amount", "healing must be >= 0, got %d", amount)
	}

	p, err := h.store.GetParticipant(ctx, participantID)
	if err != nil {
		return nil, err
	}

	unlock := h.locks.Lock(p.EncounterID)
	defer unlock()

	st, err := h.store.GetStatus(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if st.Life() == Dead {
		return nil, domain.NotPermitted("participant %q is dead and cannot be healed", participantID)
	}

	wasUnconscious := !st.IsConscious()
	healed := amount
	if st.CurrentHP+healed > st.MaxHP {
		healed = st.MaxHP - st.CurrentHP
	}
	st.CurrentHP += healed

	revived := wasUnconscious && st.CurrentHP > 0
	if revived {
		st.DeathSaveSuccesses = 0
		st.DeathSaveFailures = 0
	}

	st.UpdatedAt = h.now()
	if err := h.store.SaveStatus(ctx, st); err != nil {
		return nil, fmt.Errorf("saving status: %w", err)
	}

	h.logger.Debug("healing applied",
		zap.String("participant_id", participantID),
		zap.Int("requested", amount),
		zap.Int("healed", healed),
		zap.String("source", source),
		zap.Bool("revived", revived),
	)
	return &HealingResult{
		ParticipantID:   participantID,
		AmountRequested: amount,
		AmountHealed:    healed,
		Overheal:        amount - healed,
		CurrentHP:       st.CurrentHP,
		Revived:         revived,
	}, nil
}

// SetTempHP grants temporary hit points. Temp HP does not stack: the new
// value is the maximum of the existing and requested values.
func (h *HPTracker) SetTempHP(ctx context.Context, participantID string, amount int) (*ParticipantStatus, error) {
	if amount < 0 {
		return nil, domain.Invalid("amount", "temp HP must be >= 0, got %d", amount)
	}

	p, err := h.store.GetParticipant(ctx, participantID)
	if err != nil {
		return nil, err
	}

	unlock := h.locks.Lock(p.EncounterID)
	defer unlock()

	st, err := h.store.GetStatus(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if amount > st.TempHP {
		st.TempHP = amount
		st.UpdatedAt = h.now()
		if err := h.store.SaveStatus(ctx, st); err != nil {
			return nil, fmt.Errorf("saving status: %w", err)
		}
	}
	return st, nil
}

// RollDeathSave applies one death-save roll for an unconscious, dying
// participant. A natural 20 revives at 1 HP and resets both counters; a
// natural 1 counts as two failures; three failures mean death; three
// successes mean the participant is stabilized (still unconscious, no
// further saves required).
func (h *HPTracker) RollDeathSave(ctx context.Context, participantID string, roll int) (*DeathSaveResult, error) {
	if roll < 1 || roll > 20 {
		return nil, domain.Invalid("roll", "must be in [1,20], got %d", roll)
	}

	p, err := h.store.GetParticipant(ctx, participantID)
	if err != nil {
		return nil, err
	}

	unlock := h.locks.Lock(p.EncounterID)
	defer unlock()

	st, err := h.store.GetStatus(ctx, participantID)
	if err != nil {
		return nil, err
	}
	switch st.Life() {
	case Conscious:
		return nil, domain.NotPermitted("participant %q is conscious and cannot roll death saves", participantID)
	case Dead:
		return nil, domain.NotPermitted("participant %q is already dead", participantID)
	case Stabilized:
		return nil, domain.NotPermitted("participant %q is stabilized and needs no death saves", participantID)
	}

	successes, failures, outcome, revived := applyDeathSave(st.DeathSaveSuccesses, st.DeathSaveFailures, roll)
	st.DeathSaveSuccesses = successes
	st.DeathSaveFailures = failures
	if revived {
		st.CurrentHP = 1
	}

	st.UpdatedAt = h.now()
	if err := h.store.SaveStatus(ctx, st); err != nil {
		return nil, fmt.Errorf("saving status: %w", err)
	}

	h.logger.Debug("death save rolled",
		zap.String("participant_id", participantID),
		zap.Int("roll", roll),
		zap.String("outcome", string(outcome)),
		zap.Int("successes", successes),
		zap.Int("failures", failures),
	)
	return &DeathSaveResult{
		ParticipantID: participantID,
		Roll:          roll,
		Outcome:       outcome,
		Successes:     successes,
		Failures:      failures,
		Life:          st.Life(),
		Revived:       revived,
		CurrentHP:     st.CurrentHP,
	}, nil
}
