package condition

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/gametable/internal/game/domain"
	"github.com/cory-johannsen/gametable/internal/game/encounter"
)

// HookRunner runs an optional Lua hook for a condition event. Runs are
// best-effort: failures are the runner's to log, never the engine's to
// propagate.
type HookRunner interface {
	Run(hook, participantID, conditionName string)
}

// Engine applies, removes, aggregates, and expires condition instances.
// Mutations serialise on the per-encounter keyed lock shared with the
// encounter manager.
type Engine struct {
	store   Store
	library *Library
	enc     encounter.Store
	locks   *encounter.KeyedLock
	hooks   HookRunner
	logger  *zap.Logger
	now     func() time.Time
}

// NewEngine creates a condition Engine.
//
// Precondition: store, library, enc, locks, and logger must be non-nil;
// hooks may be nil (no scripted hooks).
func NewEngine(store Store, library *Library, enc encounter.Store, locks *encounter.KeyedLock, hooks HookRunner, logger *zap.Logger) *Engine {
	return &Engine{
		store:   store,
		library: library,
		enc:     enc,
		locks:   locks,
		hooks:   hooks,
		logger:  logger,
		now:     time.Now,
	}
}

// ApplyInput describes one condition application.
type ApplyInput struct {
	ParticipantID string
	ConditionName string
	DurationKind  DurationKind
	// DurationValue is required (> 0) for rounds/minutes/hours.
	DurationValue int
	SaveDC        int
	SaveAbility   domain.Ability
	Source        string
	// CurrentRound overrides the encounter's stored round when non-nil
	// (callers mid-advance already know the round they are in).
	CurrentRound *int
}

// ApplyResult is the outcome of ApplyCondition.
type ApplyResult struct {
	Condition *Instance
	// Warnings lists detected conflicts; they are informational and the
	// condition was applied regardless.
	Warnings []Conflict
}

// ApplyCondition validates and inserts a condition instance, resolving
// conflicts against the currently active set. Existing conditions that
// the new one supersedes are auto-deactivated; every conflict surfaces as
// a non-fatal warning.
func (e *Engine) ApplyCondition(ctx context.Context, in ApplyInput) (*ApplyResult, error) {
	entry, ok := e.library.Get(in.ConditionName)
	if !ok {
		return nil, domain.NotFound("condition", in.ConditionName)
	}
	if !in.DurationKind.Valid() {
		return nil, domain.Invalid("durationKind", "unknown kind %q", in.DurationKind)
	}
	switch in.DurationKind {
	case DurationRounds, DurationMinutes, DurationHours:
		if in.DurationValue <= 0 {
			return nil, domain.Invalid("durationValue", "must be > 0 for %s durations, got %d", in.DurationKind, in.DurationValue)
		}
	}
	if in.SaveDC < 0 {
		return nil, domain.Invalid("saveDC", "must be >= 0, got %d", in.SaveDC)
	}
	if in.SaveDC > 0 && !in.SaveAbility.Valid() {
		return nil, domain.Invalid("saveAbility", "unknown ability %q", in.SaveAbility)
	}

	p, err := e.enc.GetParticipant(ctx, in.ParticipantID)
	if err != nil {
		return nil, err
	}

	unlock := e.locks.Lock(p.EncounterID)
	defer unlock()

	round := 0
	if in.CurrentRound != nil {
		round = *in.CurrentRound
	} else {
		enc, err := e.enc.GetEncounter(ctx, p.EncounterID)
		if err != nil {
			return nil, err
		}
		round = enc.CurrentRound
	}

	active, err := e.store.ListConditionsByParticipant(ctx, in.ParticipantID, true)
	if err != nil {
		return nil, fmt.Errorf("listing active conditions: %w", err)
	}
	names := make([]string, len(active))
	for i, inst := range active {
		names[i] = inst.ConditionName
	}
	warnings := CheckConflicts(names, entry.Name)
	for _, w := range warnings {
		if !w.DeactivatesExisting {
			continue
		}
		for _, inst := range active {
			if inst.ConditionName == w.Existing {
				if err := e.store.DeactivateCondition(ctx, inst.ID); err != nil {
					return nil, fmt.Errorf("deactivating superseded condition: %w", err)
				}
				e.runHook(lookupHook(e.library, inst.ConditionName, hookRemove), inst.ParticipantID, inst.ConditionName)
			}
		}
	}

	inst := &Instance{
		ID:             uuid.NewString(),
		ParticipantID:  in.ParticipantID,
		ConditionName:  entry.Name,
		DurationKind:   in.DurationKind,
		DurationValue:  in.DurationValue,
		SaveDC:         in.SaveDC,
		SaveAbility:    in.SaveAbility,
		Source:         in.Source,
		AppliedAtRound: round,
		ExpiresAtRound: expiryRound(in.DurationKind, in.DurationValue, round),
		IsActive:       true,
		CreatedAt:      e.now(),
	}
	if err := e.store.CreateCondition(ctx, inst); err != nil {
		return nil, fmt.Errorf("creating condition instance: %w", err)
	}
	e.runHook(entry.LuaOnApply, in.ParticipantID, entry.Name)

	e.logger.Debug("condition applied",
		zap.String("participant_id", in.ParticipantID),
		zap.String("condition", entry.Name),
		zap.String("duration_kind", string(in.DurationKind)),
		zap.Int("applied_at_round", round),
		zap.Int("warnings", len(warnings)),
	)
	return &ApplyResult{Condition: inst, Warnings: warnings}, nil
}

// RemoveCondition soft-deactivates an active instance. History is never
// hard-deleted.
func (e *Engine) RemoveCondition(ctx context.Context, conditionID string) error {
	inst, err := e.store.GetCondition(ctx, conditionID)
	if err != nil {
		return err
	}
	if !inst.IsActive {
		return domain.NotFound("active condition", conditionID)
	}

	p, err := e.enc.GetParticipant(ctx, inst.ParticipantID)
	if err != nil {
		return err
	}
	unlock := e.locks.Lock(p.EncounterID)
	defer unlock()

	if err := e.store.DeactivateCondition(ctx, conditionID); err != nil {
		return err
	}
	e.runHook(lookupHook(e.library, inst.ConditionName, hookRemove), inst.ParticipantID, inst.ConditionName)
	return nil
}

// SaveResult is the outcome of AttemptSave.
type SaveResult struct {
	Saved            bool
	ConditionRemoved bool
	Message          string
}

// AttemptSave rolls a configured saving throw against an active
// condition. Success (roll >= DC) removes the condition.
func (e *Engine) AttemptSave(ctx context.Context, conditionID string, saveRoll int) (*SaveResult, error) {
	inst, err := e.store.GetCondition(ctx, conditionID)
	if err != nil {
		return nil, err
	}
	if !inst.IsActive {
		return nil, domain.NotFound("active condition", conditionID)
	}
	if inst.SaveDC <= 0 {
		return nil, domain.NotPermitted("condition %q has no saving throw configured", inst.ConditionName)
	}

	p, err := e.enc.GetParticipant(ctx, inst.ParticipantID)
	if err != nil {
		return nil, err
	}
	unlock := e.locks.Lock(p.EncounterID)
	defer unlock()

	if saveRoll < inst.SaveDC {
		return &SaveResult{
			Saved:   false,
			Message: fmt.Sprintf("%s save failed: %d vs DC %d, %s persists", inst.SaveAbility, saveRoll, inst.SaveDC, inst.ConditionName),
		}, nil
	}

	if err := e.store.DeactivateCondition(ctx, conditionID); err != nil {
		return nil, err
	}
	e.runHook(lookupHook(e.library, inst.ConditionName, hookRemove), inst.ParticipantID, inst.ConditionName)
	return &SaveResult{
		Saved:            true,
		ConditionRemoved: true,
		Message:          fmt.Sprintf("%s save succeeded: %d vs DC %d, %s removed", inst.SaveAbility, saveRoll, inst.SaveDC, inst.ConditionName),
	}, nil
}

// ActiveCondition joins an instance with its library entry.
type ActiveCondition struct {
	Instance *Instance
	Entry    *LibraryEntry
}

// GetActiveConditions returns the participant's active conditions joined
// to their library metadata.
func (e *Engine) GetActiveConditions(ctx context.Context, participantID string) ([]*ActiveCondition, error) {
	if _, err := e.enc.GetParticipant(ctx, participantID); err != nil {
		return nil, err
	}
	instances, err := e.store.ListConditionsByParticipant(ctx, participantID, true)
	if err != nil {
		return nil, err
	}
	out := make([]*ActiveCondition, 0, len(instances))
	for _, inst := range instances {
		entry, ok := e.library.Get(inst.ConditionName)
		if !ok {
			// Library content changed under a live instance; surface
			// the instance without metadata rather than hiding it.
			entry = &LibraryEntry{Name: inst.ConditionName}
		}
		out = append(out, &ActiveCondition{Instance: inst, Entry: entry})
	}
	return out, nil
}

// GetMechanicalEffects folds every active condition's effect descriptor
// into one merged set under most-restrictive-wins precedence.
func (e *Engine) GetMechanicalEffects(ctx context.Context, participantID string) (AggregatedMechanicalEffects, error) {
	active, err := e.GetActiveConditions(ctx, participantID)
	if err != nil {
		return AggregatedMechanicalEffects{}, err
	}
	sets := make([]EffectSet, 0, len(active))
	sources := make([]string, 0, len(active))
	for _, ac := range active {
		sets = append(sets, ac.Entry.Effects)
		sources = append(sources, ac.Entry.Name)
	}
	return Aggregate(sets, sources), nil
}

// GetLibrary returns every library entry.
func (e *Engine) GetLibrary() []*LibraryEntry {
	return e.library.All()
}

// PendingSave asks the caller to roll a saving throw for an until_save
// condition at a round boundary.
type PendingSave struct {
	ConditionID   string
	ParticipantID string
	ConditionName string
	SaveDC        int
	SaveAbility   domain.Ability
}

// AdvanceResult is the outcome of AdvanceConditionDurations.
type AdvanceResult struct {
	ExpiredConditions  []*Instance
	SavingThrowsNeeded []PendingSave
}

// AdvanceConditionDurations runs at a round boundary: every active
// condition on the encounter's participants whose expiry round has been
// reached is deactivated, and until_save conditions with a configured DC
// surface a pending-save request instead of being auto-resolved.
func (e *Engine) AdvanceConditionDurations(ctx context.Context, encounterID string, currentRound int) (*AdvanceResult, error) {
	if _, err := e.enc.GetEncounter(ctx, encounterID); err != nil {
		return nil, err
	}

	unlock := e.locks.Lock(encounterID)
	defer unlock()

	participants, err := e.enc.ListParticipants(ctx, encounterID)
	if err != nil {
		return nil, fmt.Errorf("listing participants: %w", err)
	}

	out := &AdvanceResult{}
	for _, p := range participants {
		instances, err := e.store.ListConditionsByParticipant(ctx, p.ID, true)
		if err != nil {
			return nil, err
		}
		for _, inst := range instances {
			if inst.ExpiresAtRound != nil && *inst.ExpiresAtRound <= currentRound {
				if err := e.store.DeactivateCondition(ctx, inst.ID); err != nil {
					return nil, fmt.Errorf("expiring condition: %w", err)
				}
				e.runHook(lookupHook(e.library, inst.ConditionName, hookExpire), inst.ParticipantID, inst.ConditionName)
				out.ExpiredConditions = append(out.ExpiredConditions, inst)
				continue
			}
			if inst.DurationKind == DurationUntilSave && inst.SaveDC > 0 {
				out.SavingThrowsNeeded = append(out.SavingThrowsNeeded, PendingSave{
					ConditionID:   inst.ID,
					ParticipantID: inst.ParticipantID,
					ConditionName: inst.ConditionName,
					SaveDC:        inst.SaveDC,
					SaveAbility:   inst.SaveAbility,
				})
			}
		}
	}

	e.logger.Debug("condition durations advanced",
		zap.String("encounter_id", encounterID),
		zap.Int("round", currentRound),
		zap.Int("expired", len(out.ExpiredConditions)),
		zap.Int("saves_needed", len(out.SavingThrowsNeeded)),
	)
	return out, nil
}

type hookEvent int

const (
	hookRemove hookEvent = iota
	hookExpire
)

// lookupHook resolves the configured Lua hook name for a condition event.
func lookupHook(lib *Library, conditionName string, event hookEvent) string {
	entry, ok := lib.Get(conditionName)
	if !ok {
		return ""
	}
	switch event {
	case hookRemove:
		return entry.LuaOnRemove
	case hookExpire:
		return entry.LuaOnExpire
	default:
		return ""
	}
}

// runHook dispatches an optional Lua hook.
func (e *Engine) runHook(hook, participantID, conditionName string) {
	if hook == "" || e.hooks == nil {
		return
	}
	e.hooks.Run(hook, participantID, conditionName)
}
