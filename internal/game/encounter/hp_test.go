package encounter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/gametable/internal/game/domain"
	"github.com/cory-johannsen/gametable/internal/game/encounter"
	"github.com/cory-johannsen/gametable/internal/storage/memory"
)

type hpFixture struct {
	tracker *encounter.HPTracker
	store   *memory.Store
	encID   string
	pid     string
}

// hpTestingT is satisfied by both *testing.T and *rapid.T so the fixture
// can be built inside rapid.Check property bodies.
type hpTestingT interface {
	Helper()
	Errorf(format string, args ...interface{})
	FailNow()
}

func newHPFixture(t hpTestingT, input encounter.ParticipantInput) *hpFixture {
	t.Helper()
	store := memory.NewStore()
	locks := encounter.NewKeyedLock()
	m := encounter.NewManager(store, &seqSource{values: []int{9}}, locks, zap.NewNop())
	state, err := m.StartCombat(context.Background(), "session-1",
		[]encounter.ParticipantInput{input}, false)
	require.NoError(t, err)
	return &hpFixture{
		tracker: encounter.NewHPTracker(store, locks, zap.NewNop()),
		store:   store,
		encID:   state.Encounter.ID,
		pid:     state.Participants[0].ID,
	}
}

func slashing(amount int) encounter.DamageRequest {
	return encounter.DamageRequest{Amount: amount, DamageType: domain.DamageSlashing}
}

func TestApplyDamage_ReducesHPAndClampsAtZero(t *testing.T) {
	f := newHPFixture(t, encounter.ParticipantInput{Name: "Goblin", MaxHP: 7})
	ctx := context.Background()

	res, err := f.tracker.ApplyDamage(ctx, f.pid, slashing(5))
	require.NoError(t, err)
	assert.Equal(t, 2, res.CurrentHP)
	assert.True(t, res.IsConscious)

	res, err = f.tracker.ApplyDamage(ctx, f.pid, slashing(10))
	require.NoError(t, err)
	assert.Equal(t, 0, res.CurrentHP, "hp floors at zero, never negative")
	assert.False(t, res.IsConscious)
	assert.Equal(t, encounter.Dying, res.Life)
	assert.False(t, res.MassiveDamage, "the blow that drops a conscious target is not instant death")
}

func TestApplyDamage_TempHPConsumedFirst(t *testing.T) {
	f := newHPFixture(t, encounter.ParticipantInput{Name: "Fighter", MaxHP: 20})
	ctx := context.Background()

	_, err := f.tracker.SetTempHP(ctx, f.pid, 5)
	require.NoError(t, err)

	res, err := f.tracker.ApplyDamage(ctx, f.pid, slashing(8))
	require.NoError(t, err)
	assert.Equal(t, 5, res.TempHPAbsorbed)
	assert.Equal(t, 3, res.HPLost)
	assert.Equal(t, 17, res.CurrentHP)
	assert.Equal(t, 0, res.TempHP)
}

func TestApplyDamage_ResistanceHalvesWithFloor(t *testing.T) {
	f := newHPFixture(t, encounter.ParticipantInput{
		Name: "Barbarian", MaxHP: 20,
		Resistances: []domain.DamageType{domain.DamageSlashing},
	})
	res, err := f.tracker.ApplyDamage(context.Background(), f.pid, slashing(7))
	require.NoError(t, err)
	assert.Equal(t, 3, res.DamageApplied)
	assert.Equal(t, 17, res.CurrentHP)
	assert.True(t, res.EffectiveResistance)
}

func TestApplyDamage_ImmunityZeroesButStillLogged(t *testing.T) {
	f := newHPFixture(t, encounter.ParticipantInput{
		Name: "Golem", MaxHP: 30,
		Immunities: []domain.DamageType{domain.DamageSlashing},
	})
	ctx := context.Background()

	res, err := f.tracker.ApplyDamage(ctx, f.pid, slashing(12))
	require.NoError(t, err)
	assert.Equal(t, 0, res.DamageApplied)
	assert.Equal(t, 30, res.CurrentHP)
	assert.True(t, res.EffectiveImmunity)

	log, err := f.tracker.GetDamageLog(ctx, f.encID)
	require.NoError(t, err)
	require.Len(t, log, 1, "fully-resisted hits still produce an audit entry")
	assert.Equal(t, 0, log[0].Amount)
	assert.Equal(t, 1, log[0].Round)
}

func TestApplyDamage_IgnoreFlags(t *testing.T) {
	f := newHPFixture(t, encounter.ParticipantInput{
		Name: "Golem", MaxHP: 30,
		Resistances: []domain.DamageType{domain.DamageSlashing},
		Immunities:  []domain.DamageType{domain.DamageSlashing},
	})
	ctx := context.Background()

	res, err := f.tracker.ApplyDamage(ctx, f.pid, encounter.DamageRequest{
		Amount:            10,
		DamageType:        domain.DamageSlashing,
		IgnoreImmunities:  true,
		IgnoreResistances: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, res.DamageApplied, "resolved damage is applied verbatim when both flags are set")
	assert.Equal(t, 20, res.CurrentHP)
}

func TestApplyDamage_MassiveDamageAtZeroHP(t *testing.T) {
	f := newHPFixture(t, encounter.ParticipantInput{Name: "Goblin", MaxHP: 7})
	ctx := context.Background()

	_, err := f.tracker.ApplyDamage(ctx, f.pid, slashing(7))
	require.NoError(t, err)

	res, err := f.tracker.ApplyDamage(ctx, f.pid, slashing(7))
	require.NoError(t, err)
	assert.True(t, res.MassiveDamage)
	assert.Equal(t, encounter.Dead, res.Life)

	st, err := f.tracker.GetParticipantStatus(ctx, f.pid)
	require.NoError(t, err)
	assert.Equal(t, 3, st.DeathSaveFailures)
}

func TestApplyDamage_AtZeroHP_BelowMaxIsNotMassive(t *testing.T) {
	f := newHPFixture(t, encounter.ParticipantInput{Name: "Goblin", MaxHP: 7})
	ctx := context.Background()

	_, err := f.tracker.ApplyDamage(ctx, f.pid, slashing(7))
	require.NoError(t, err)

	res, err := f.tracker.ApplyDamage(ctx, f.pid, slashing(6))
	require.NoError(t, err)
	assert.False(t, res.MassiveDamage)
	assert.Equal(t, encounter.Dying, res.Life)
}

func TestApplyDamage_TempHPSoaksBeforeMassiveCheck(t *testing.T) {
	f := newHPFixture(t, encounter.ParticipantInput{Name: "Goblin", MaxHP: 7})
	ctx := context.Background()

	_, err := f.tracker.ApplyDamage(ctx, f.pid, slashing(7))
	require.NoError(t, err)
	_, err = f.tracker.SetTempHP(ctx, f.pid, 5)
	require.NoError(t, err)

	// 10 incoming, 5 soaked, remainder 5 < max 7: not massive.
	res, err := f.tracker.ApplyDamage(ctx, f.pid, slashing(10))
	require.NoError(t, err)
	assert.False(t, res.MassiveDamage)
	assert.Equal(t, encounter.Dying, res.Life)
}

func TestApplyDamage_NegativeAmountRejected(t *testing.T) {
	f := newHPFixture(t, encounter.ParticipantInput{Name: "Goblin", MaxHP: 7})
	_, err := f.tracker.ApplyDamage(context.Background(), f.pid, slashing(-1))
	assert.True(t, domain.IsValidation(err))
}

func TestSetTempHP_MaxNotStack(t *testing.T) {
	f := newHPFixture(t, encounter.ParticipantInput{Name: "Fighter", MaxHP: 20})
	ctx := context.Background()

	st, err := f.tracker.SetTempHP(ctx, f.pid, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, st.TempHP)

	st, err = f.tracker.SetTempHP(ctx, f.pid, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, st.TempHP, "a smaller grant keeps the existing temp HP")

	st, err = f.tracker.SetTempHP(ctx, f.pid, 8)
	require.NoError(t, err)
	assert.Equal(t, 8, st.TempHP, "a larger grant replaces, never sums")
}

func TestHealDamage_ClampAndRevive(t *testing.T) {
	f := newHPFixture(t, encounter.ParticipantInput{Name: "Fighter", MaxHP: 20})
	ctx := context.Background()

	_, err := f.tracker.ApplyDamage(ctx, f.pid, slashing(20))
	require.NoError(t, err)
	_, err = f.tracker.RollDeathSave(ctx, f.pid, 5)
	require.NoError(t, err)

	res, err := f.tracker.HealDamage(ctx, f.pid, 30, "cure wounds")
	require.NoError(t, err)
	assert.Equal(t, 20, res.AmountHealed)
	assert.Equal(t, 10, res.Overheal)
	assert.Equal(t, 20, res.CurrentHP)
	assert.True(t, res.Revived)

	st, err := f.tracker.GetParticipantStatus(ctx, f.pid)
	require.NoError(t, err)
	assert.Zero(t, st.DeathSaveSuccesses, "revival resets the save counters")
	assert.Zero(t, st.DeathSaveFailures)
}

func TestHealDamage_DeadCannotBeHealed(t *testing.T) {
	f := newHPFixture(t, encounter.ParticipantInput{Name: "Goblin", MaxHP: 7})
	ctx := context.Background()

	_, err := f.tracker.ApplyDamage(ctx, f.pid, slashing(7))
	require.NoError(t, err)
	_, err = f.tracker.ApplyDamage(ctx, f.pid, slashing(7))
	require.NoError(t, err)

	_, err = f.tracker.HealDamage(ctx, f.pid, 5, "too late")
	assert.True(t, domain.IsBusinessLogic(err))
}

func TestRollDeathSave_Sequences(t *testing.T) {
	ctx := context.Background()

	drop := func(t *testing.T) *hpFixture {
		f := newHPFixture(t, encounter.ParticipantInput{Name: "Fighter", MaxHP: 10})
		_, err := f.tracker.ApplyDamage(ctx, f.pid, slashing(10))
		require.NoError(t, err)
		return f
	}

	t.Run("three successes stabilize", func(t *testing.T) {
		f := drop(t)
		var res *encounter.DeathSaveResult
		var err error
		for i := 0; i < 3; i++ {
			res, err = f.tracker.RollDeathSave(ctx, f.pid, 12)
			require.NoError(t, err)
		}
		assert.Equal(t, 3, res.Successes)
		assert.Equal(t, encounter.Stabilized, res.Life)
		assert.False(t, res.Revived, "stabilized participants stay unconscious at 0 HP")

		_, err = f.tracker.RollDeathSave(ctx, f.pid, 12)
		assert.True(t, domain.IsBusinessLogic(err), "stabilized participants need no further saves")
	})

	t.Run("three failures die", func(t *testing.T) {
		f := drop(t)
		var res *encounter.DeathSaveResult
		var err error
		for i := 0; i < 3; i++ {
			res, err = f.tracker.RollDeathSave(ctx, f.pid, 5)
			require.NoError(t, err)
		}
		assert.Equal(t, 3, res.Failures)
		assert.Equal(t, encounter.Dead, res.Life)

		_, err = f.tracker.RollDeathSave(ctx, f.pid, 15)
		assert.True(t, domain.IsBusinessLogic(err))
	})

	t.Run("natural one counts twice", func(t *testing.T) {
		f := drop(t)
		res, err := f.tracker.RollDeathSave(ctx, f.pid, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, res.Failures)
		assert.Equal(t, encounter.Dying, res.Life)

		res, err = f.tracker.RollDeathSave(ctx, f.pid, 1)
		require.NoError(t, err)
		assert.Equal(t, 3, res.Failures, "the second natural one caps at three, not four")
		assert.Equal(t, encounter.Dead, res.Life)
	})

	t.Run("natural twenty revives at one HP", func(t *testing.T) {
		f := drop(t)
		_, err := f.tracker.RollDeathSave(ctx, f.pid, 7)
		require.NoError(t, err)

		res, err := f.tracker.RollDeathSave(ctx, f.pid, 20)
		require.NoError(t, err)
		assert.True(t, res.Revived)
		assert.Equal(t, 1, res.CurrentHP)
		assert.Equal(t, encounter.Conscious, res.Life)
		assert.Zero(t, res.Successes)
		assert.Zero(t, res.Failures)
	})

	t.Run("boundary rolls", func(t *testing.T) {
		f := drop(t)
		res, err := f.tracker.RollDeathSave(ctx, f.pid, 9)
		require.NoError(t, err)
		assert.Equal(t, encounter.SaveFailure, res.Outcome)

		res, err = f.tracker.RollDeathSave(ctx, f.pid, 10)
		require.NoError(t, err)
		assert.Equal(t, encounter.SaveSuccess, res.Outcome)
	})
}

func TestRollDeathSave_InvalidStates(t *testing.T) {
	f := newHPFixture(t, encounter.ParticipantInput{Name: "Fighter", MaxHP: 10})
	ctx := context.Background()

	_, err := f.tracker.RollDeathSave(ctx, f.pid, 10)
	assert.True(t, domain.IsBusinessLogic(err), "conscious participants do not roll death saves")

	_, err = f.tracker.RollDeathSave(ctx, f.pid, 0)
	assert.True(t, domain.IsValidation(err))
	_, err = f.tracker.RollDeathSave(ctx, f.pid, 21)
	assert.True(t, domain.IsValidation(err))
}

func TestHPInvariants_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		maxHP := rapid.IntRange(1, 50).Draw(t, "maxHP")
		f := newHPFixture(t, encounter.ParticipantInput{Name: "Subject", MaxHP: maxHP})
		ctx := context.Background()

		ops := rapid.IntRange(1, 20).Draw(t, "ops")
		for i := 0; i < ops; i++ {
			switch rapid.IntRange(0, 2).Draw(t, "op") {
			case 0:
				_, err := f.tracker.ApplyDamage(ctx, f.pid, slashing(rapid.IntRange(0, 60).Draw(t, "dmg")))
				require.NoError(t, err)
			case 1:
				if _, err := f.tracker.HealDamage(ctx, f.pid, rapid.IntRange(0, 60).Draw(t, "heal"), "test"); err != nil {
					require.True(t, domain.IsBusinessLogic(err))
				}
			case 2:
				_, err := f.tracker.SetTempHP(ctx, f.pid, rapid.IntRange(0, 20).Draw(t, "temp"))
				require.NoError(t, err)
			}

			st, err := f.tracker.GetParticipantStatus(ctx, f.pid)
			require.NoError(t, err)
			require.GreaterOrEqual(t, st.CurrentHP, 0)
			require.LessOrEqual(t, st.CurrentHP, st.MaxHP)
			require.GreaterOrEqual(t, st.TempHP, 0)
			require.LessOrEqual(t, st.DeathSaveFailures, 3)
			require.LessOrEqual(t, st.DeathSaveSuccesses, 3)
		}
	})
}

// TestCombatScenario_FighterVersusGoblin walks one full exchange through
// the manager and tracker together.
func TestCombatScenario_FighterVersusGoblin(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	locks := encounter.NewKeyedLock()
	m := encounter.NewManager(store, &seqSource{values: []int{9}}, locks, zap.NewNop())
	tracker := encounter.NewHPTracker(store, locks, zap.NewNop())

	state, err := m.StartCombat(ctx, "session-duel", []encounter.ParticipantInput{
		{Name: "Fighter", MaxHP: 24, InitiativeModifier: 2, Initiative: intp(17)},
		{Name: "Goblin", MaxHP: 7, InitiativeModifier: 1, Initiative: intp(12)},
	}, false)
	require.NoError(t, err)

	current, err := m.GetCurrentTurn(ctx, state.Encounter.ID)
	require.NoError(t, err)
	require.Equal(t, "Fighter", current.Name)

	var goblinID string
	for _, p := range state.Participants {
		if p.Name == "Goblin" {
			goblinID = p.ID
		}
	}

	// Fighter hits for 8 slashing; the goblin drops.
	res, err := tracker.ApplyDamage(ctx, goblinID, encounter.DamageRequest{
		Amount: 8, DamageType: domain.DamageSlashing, SourceDescription: "longsword",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.CurrentHP)
	assert.False(t, res.MassiveDamage)
	assert.False(t, res.IsConscious)

	adv, err := m.AdvanceTurn(ctx, state.Encounter.ID)
	require.NoError(t, err)
	assert.Equal(t, "Goblin", adv.CurrentParticipant.Name)

	save, err := tracker.RollDeathSave(ctx, goblinID, 14)
	require.NoError(t, err)
	assert.Equal(t, encounter.SaveSuccess, save.Outcome)

	log, err := tracker.GetDamageLog(ctx, state.Encounter.ID)
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, "longsword", log[0].SourceDescription)
}
