package condition_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/gametable/internal/game/condition"
	"github.com/cory-johannsen/gametable/internal/game/domain"
	"github.com/cory-johannsen/gametable/internal/game/encounter"
	"github.com/cory-johannsen/gametable/internal/storage/memory"
)

type seqSource struct{ v int }

func (s *seqSource) Intn(n int) int { return s.v % n }

// hookRecorder captures hook dispatches for assertion.
type hookRecorder struct {
	calls []string
}

func (r *hookRecorder) Run(hook, participantID, conditionName string) {
	r.calls = append(r.calls, fmt.Sprintf("%s:%s", hook, conditionName))
}

func testLibrary() *condition.Library {
	lib := condition.NewLibrary()
	lib.Register(&condition.LibraryEntry{
		Name:        "poisoned",
		Description: "Disadvantage on attack rolls and ability checks.",
		Effects: condition.EffectSet{
			"attack_rolls":   condition.RollEffect(condition.RollDisadvantage),
			"ability_checks": condition.RollEffect(condition.RollDisadvantage),
		},
		LuaOnApply:  "on_poisoned_apply",
		LuaOnRemove: "on_poisoned_remove",
		LuaOnExpire: "on_poisoned_expire",
	})
	lib.Register(&condition.LibraryEntry{
		Name: "prone",
		Effects: condition.EffectSet{
			"attack_rolls": condition.RollEffect(condition.RollDisadvantage),
		},
	})
	lib.Register(&condition.LibraryEntry{
		Name: "incapacitated",
		Effects: condition.EffectSet{
			"actions":   condition.ActionEffect(condition.ActionNone),
			"reactions": condition.ActionEffect(condition.ActionNone),
		},
	})
	lib.Register(&condition.LibraryEntry{
		Name: "unconscious",
		Effects: condition.EffectSet{
			"incapacitated": condition.BoolEffect(true),
			"speed":         condition.NumericEffect(0),
			"saving_throws_str": condition.RollEffect(condition.RollAutoFail),
		},
		LuaOnRemove: "on_unconscious_remove",
	})
	lib.Register(&condition.LibraryEntry{
		Name: "restrained",
		Effects: condition.EffectSet{
			"attack_rolls": condition.RollEffect(condition.RollDisadvantage),
			"speed":        condition.NumericEffect(0),
		},
	})
	return lib
}

type engineFixture struct {
	engine *condition.Engine
	store  *memory.Store
	hooks  *hookRecorder
	encID  string
	pid    string
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	store := memory.NewStore()
	locks := encounter.NewKeyedLock()
	m := encounter.NewManager(store, &seqSource{v: 9}, locks, zap.NewNop())
	state, err := m.StartCombat(context.Background(), "session-1",
		[]encounter.ParticipantInput{{Name: "Fighter", MaxHP: 20}}, false)
	require.NoError(t, err)

	hooks := &hookRecorder{}
	return &engineFixture{
		engine: condition.NewEngine(store, testLibrary(), store, locks, hooks, zap.NewNop()),
		store:  store,
		hooks:  hooks,
		encID:  state.Encounter.ID,
		pid:    state.Participants[0].ID,
	}
}

func (f *engineFixture) apply(t *testing.T, in condition.ApplyInput) *condition.Instance {
	t.Helper()
	in.ParticipantID = f.pid
	res, err := f.engine.ApplyCondition(context.Background(), in)
	require.NoError(t, err)
	return res.Condition
}

func TestApplyCondition_RoundsDuration(t *testing.T) {
	f := newEngineFixture(t)
	inst := f.apply(t, condition.ApplyInput{
		ConditionName: "poisoned",
		DurationKind:  condition.DurationRounds,
		DurationValue: 2,
		Source:        "spider bite",
	})

	assert.Equal(t, 1, inst.AppliedAtRound)
	require.NotNil(t, inst.ExpiresAtRound)
	assert.Equal(t, 3, *inst.ExpiresAtRound)
	assert.Contains(t, f.hooks.calls, "on_poisoned_apply:poisoned")
}

func TestApplyCondition_DurationConversions(t *testing.T) {
	f := newEngineFixture(t)

	minutes := f.apply(t, condition.ApplyInput{
		ConditionName: "poisoned",
		DurationKind:  condition.DurationMinutes,
		DurationValue: 1,
	})
	require.NotNil(t, minutes.ExpiresAtRound)
	assert.Equal(t, 11, *minutes.ExpiresAtRound, "one minute is ten rounds")

	hours := f.apply(t, condition.ApplyInput{
		ConditionName: "prone",
		DurationKind:  condition.DurationHours,
		DurationValue: 1,
	})
	require.NotNil(t, hours.ExpiresAtRound)
	assert.Equal(t, 601, *hours.ExpiresAtRound, "one hour is six hundred rounds")

	permanent := f.apply(t, condition.ApplyInput{
		ConditionName: "restrained",
		DurationKind:  condition.DurationPermanent,
	})
	assert.Nil(t, permanent.ExpiresAtRound)
}

func TestApplyCondition_Validation(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	_, err := f.engine.ApplyCondition(ctx, condition.ApplyInput{
		ParticipantID: f.pid, ConditionName: "petrichor",
		DurationKind: condition.DurationRounds, DurationValue: 1,
	})
	assert.True(t, domain.IsNotFound(err), "unknown condition names are rejected")

	_, err = f.engine.ApplyCondition(ctx, condition.ApplyInput{
		ParticipantID: f.pid, ConditionName: "poisoned",
		DurationKind: condition.DurationRounds, DurationValue: 0,
	})
	assert.True(t, domain.IsValidation(err))

	_, err = f.engine.ApplyCondition(ctx, condition.ApplyInput{
		ParticipantID: f.pid, ConditionName: "poisoned",
		DurationKind: condition.DurationUntilSave, SaveDC: 13, SaveAbility: "luck",
	})
	assert.True(t, domain.IsValidation(err), "a save DC requires a known ability")
}

func TestApplyCondition_DuplicateWarnsButApplies(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	f.apply(t, condition.ApplyInput{
		ConditionName: "poisoned",
		DurationKind:  condition.DurationRounds, DurationValue: 3,
	})
	res, err := f.engine.ApplyCondition(ctx, condition.ApplyInput{
		ParticipantID: f.pid, ConditionName: "poisoned",
		DurationKind: condition.DurationRounds, DurationValue: 5,
	})
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, condition.ConflictDuplicate, res.Warnings[0].Kind)

	active, err := f.engine.GetActiveConditions(ctx, f.pid)
	require.NoError(t, err)
	assert.Len(t, active, 2, "duplicates stack as separate instances")
}

func TestApplyCondition_SupersededDeactivatesAndRunsHook(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	prone := f.apply(t, condition.ApplyInput{
		ConditionName: "prone",
		DurationKind:  condition.DurationPermanent,
	})
	res, err := f.engine.ApplyCondition(ctx, condition.ApplyInput{
		ParticipantID: f.pid, ConditionName: "unconscious",
		DurationKind: condition.DurationPermanent,
	})
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.True(t, res.Warnings[0].DeactivatesExisting)

	got, err := f.store.GetCondition(ctx, prone.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive, "the superseded instance is soft-deactivated, not deleted")

	active, err := f.engine.GetActiveConditions(ctx, f.pid)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "unconscious", active[0].Entry.Name)
}

func TestRemoveCondition(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	inst := f.apply(t, condition.ApplyInput{
		ConditionName: "poisoned",
		DurationKind:  condition.DurationRounds, DurationValue: 3,
	})
	require.NoError(t, f.engine.RemoveCondition(ctx, inst.ID))
	assert.Contains(t, f.hooks.calls, "on_poisoned_remove:poisoned")

	err := f.engine.RemoveCondition(ctx, inst.ID)
	assert.True(t, domain.IsNotFound(err), "removing an inactive instance fails")
}

func TestAttemptSave(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	inst := f.apply(t, condition.ApplyInput{
		ConditionName: "poisoned",
		DurationKind:  condition.DurationUntilSave,
		SaveDC:        13,
		SaveAbility:   domain.Constitution,
	})

	res, err := f.engine.AttemptSave(ctx, inst.ID, 12)
	require.NoError(t, err)
	assert.False(t, res.Saved)
	assert.False(t, res.ConditionRemoved)

	res, err = f.engine.AttemptSave(ctx, inst.ID, 13)
	require.NoError(t, err)
	assert.True(t, res.Saved, "meeting the DC succeeds")
	assert.True(t, res.ConditionRemoved)

	_, err = f.engine.AttemptSave(ctx, inst.ID, 15)
	assert.True(t, domain.IsNotFound(err), "the instance is no longer active")
}

func TestAttemptSave_NoDCConfigured(t *testing.T) {
	f := newEngineFixture(t)
	inst := f.apply(t, condition.ApplyInput{
		ConditionName: "prone",
		DurationKind:  condition.DurationPermanent,
	})
	_, err := f.engine.AttemptSave(context.Background(), inst.ID, 15)
	assert.True(t, domain.IsBusinessLogic(err))
}

func TestAdvanceConditionDurations_ExpiryBoundary(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	// Applied at round 1 for 2 rounds: expires at round 3.
	inst := f.apply(t, condition.ApplyInput{
		ConditionName: "poisoned",
		DurationKind:  condition.DurationRounds, DurationValue: 2,
	})

	res, err := f.engine.AdvanceConditionDurations(ctx, f.encID, 2)
	require.NoError(t, err)
	assert.Empty(t, res.ExpiredConditions, "still active during round 2")

	res, err = f.engine.AdvanceConditionDurations(ctx, f.encID, 3)
	require.NoError(t, err)
	require.Len(t, res.ExpiredConditions, 1)
	assert.Equal(t, inst.ID, res.ExpiredConditions[0].ID)
	assert.Contains(t, f.hooks.calls, "on_poisoned_expire:poisoned")

	active, err := f.engine.GetActiveConditions(ctx, f.pid)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestAdvanceConditionDurations_UntilSavePrompts(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	f.apply(t, condition.ApplyInput{
		ConditionName: "restrained",
		DurationKind:  condition.DurationUntilSave,
		SaveDC:        14,
		SaveAbility:   domain.Strength,
	})

	res, err := f.engine.AdvanceConditionDurations(ctx, f.encID, 2)
	require.NoError(t, err)
	require.Len(t, res.SavingThrowsNeeded, 1)
	pending := res.SavingThrowsNeeded[0]
	assert.Equal(t, "restrained", pending.ConditionName)
	assert.Equal(t, 14, pending.SaveDC)
	assert.Equal(t, domain.Strength, pending.SaveAbility)
}

func TestGetMechanicalEffects_MergesActiveConditions(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	f.apply(t, condition.ApplyInput{
		ConditionName: "poisoned",
		DurationKind:  condition.DurationPermanent,
	})
	f.apply(t, condition.ApplyInput{
		ConditionName: "restrained",
		DurationKind:  condition.DurationPermanent,
	})

	got, err := f.engine.GetMechanicalEffects(ctx, f.pid)
	require.NoError(t, err)
	assert.Equal(t, condition.RollEffect(condition.RollDisadvantage), got.Effects["attack_rolls"])
	assert.Equal(t, condition.NumericEffect(0), got.Effects["speed"])
	assert.Equal(t, []string{"poisoned", "restrained"}, got.Sources)
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "poisoned.yaml"), []byte(`
name: poisoned
description: Disadvantage on attack rolls and ability checks.
effects:
  attack_rolls: disadvantage
  ability_checks: disadvantage
icon: icons/poisoned.svg
lua_on_apply: on_poisoned_apply
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	lib, err := condition.LoadDirectory(dir)
	require.NoError(t, err)

	entry, ok := lib.Get("Poisoned")
	require.True(t, ok, "lookup is case-insensitive")
	assert.Equal(t, condition.RollEffect(condition.RollDisadvantage), entry.Effects["attack_rolls"])
	assert.Equal(t, "on_poisoned_apply", entry.LuaOnApply)
	assert.Len(t, lib.All(), 1, "non-yaml files are skipped")
}

func TestLoadDirectory_RejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(`
name: bad
severity: high
`), 0o644))
	_, err := condition.LoadDirectory(dir)
	assert.Error(t, err)
}
