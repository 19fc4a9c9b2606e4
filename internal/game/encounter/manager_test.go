package encounter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/gametable/internal/game/encounter"
	"github.com/cory-johannsen/gametable/internal/storage/memory"
)

// seqSource feeds deterministic Intn values so initiative rolls are
// predictable in tests.
type seqSource struct {
	values []int
	idx    int
}

func (s *seqSource) Intn(n int) int {
	v := s.values[s.idx%len(s.values)]
	s.idx++
	return v % n
}

func newManager(t *testing.T, rolls ...int) (*encounter.Manager, *memory.Store) {
	t.Helper()
	if len(rolls) == 0 {
		rolls = []int{9} // face value 10
	}
	store := memory.NewStore()
	m := encounter.NewManager(store, &seqSource{values: rolls}, encounter.NewKeyedLock(), zap.NewNop())
	return m, store
}

func roster(names ...string) []encounter.ParticipantInput {
	out := make([]encounter.ParticipantInput, len(names))
	for i, n := range names {
		out[i] = encounter.ParticipantInput{Name: n, MaxHP: 10}
	}
	return out
}

func intp(v int) *int { return &v }

func TestStartCombat_InitialState(t *testing.T) {
	m, _ := newManager(t)
	state, err := m.StartCombat(context.Background(), "session-1", roster("Fighter", "Goblin"), false)
	require.NoError(t, err)

	assert.Equal(t, encounter.StatusActive, state.Encounter.Status)
	assert.Equal(t, 1, state.Encounter.CurrentRound)
	assert.Equal(t, 0, state.Encounter.CurrentTurnIndex)
	assert.Len(t, state.Participants, 2)
	assert.Len(t, state.Statuses, 2)
	for _, p := range state.Participants {
		st := state.Statuses[p.ID]
		require.NotNil(t, st)
		assert.Equal(t, 10, st.CurrentHP)
		assert.True(t, st.IsConscious())
	}
}

func TestStartCombat_SurpriseRound_StartsAtZero(t *testing.T) {
	m, _ := newManager(t)
	state, err := m.StartCombat(context.Background(), "session-1", roster("Fighter"), true)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Encounter.CurrentRound)
}

func TestStartCombat_RejectsInvalidRoster(t *testing.T) {
	m, _ := newManager(t)
	_, err := m.StartCombat(context.Background(), "session-1",
		[]encounter.ParticipantInput{{Name: "Ghost", MaxHP: 0}}, false)
	require.Error(t, err)

	_, err = m.StartCombat(context.Background(), "", roster("Fighter"), false)
	require.Error(t, err)
}

func TestTurnOrder_SortsByTotalThenModifierThenSequence(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()
	inputs := []encounter.ParticipantInput{
		{Name: "Slow", MaxHP: 10, Initiative: intp(10), InitiativeModifier: 1},
		{Name: "TiedLowMod", MaxHP: 10, Initiative: intp(15), InitiativeModifier: 1},
		{Name: "TiedHighMod", MaxHP: 10, Initiative: intp(15), InitiativeModifier: 3},
		{Name: "TiedSameA", MaxHP: 10, Initiative: intp(12), InitiativeModifier: 2},
		{Name: "TiedSameB", MaxHP: 10, Initiative: intp(12), InitiativeModifier: 2},
	}
	state, err := m.StartCombat(ctx, "session-1", inputs, false)
	require.NoError(t, err)

	var names []string
	for _, p := range state.Participants {
		names = append(names, p.Name)
	}
	// Total desc, modifier desc, creation order asc.
	assert.Equal(t, []string{"TiedHighMod", "TiedLowMod", "TiedSameA", "TiedSameB", "Slow"}, names)
}

func TestRollInitiative_GeneratedAndSupplied(t *testing.T) {
	m, _ := newManager(t, 14) // face value 15
	ctx := context.Background()
	state, err := m.StartCombat(ctx, "session-1",
		[]encounter.ParticipantInput{{Name: "Fighter", MaxHP: 10, InitiativeModifier: 2}}, false)
	require.NoError(t, err)
	pid := state.Participants[0].ID

	generated, err := m.RollInitiative(ctx, state.Encounter.ID, pid, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 15, generated.Roll)
	assert.Equal(t, 2, generated.Modifier)
	assert.Equal(t, 17, generated.Total)

	supplied, err := m.RollInitiative(ctx, state.Encounter.ID, pid, intp(7), intp(4))
	require.NoError(t, err)
	assert.Equal(t, 11, supplied.Total)

	_, err = m.RollInitiative(ctx, state.Encounter.ID, pid, intp(21), nil)
	require.Error(t, err, "supplied roll outside [1,20] must be rejected")
}

func TestAdvanceTurn_ThreeParticipants_WrapsOnce(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()
	inputs := []encounter.ParticipantInput{
		{Name: "A", MaxHP: 10, Initiative: intp(20)},
		{Name: "B", MaxHP: 10, Initiative: intp(15)},
		{Name: "C", MaxHP: 10, Initiative: intp(10)},
	}
	state, err := m.StartCombat(ctx, "session-1", inputs, false)
	require.NoError(t, err)
	encID := state.Encounter.ID

	first, err := m.AdvanceTurn(ctx, encID)
	require.NoError(t, err)
	assert.Equal(t, "A", first.PreviousParticipant.Name)
	assert.Equal(t, "B", first.CurrentParticipant.Name)
	assert.False(t, first.NewRound, "first advance must not increment the round")
	assert.Equal(t, 1, first.RoundNumber)

	second, err := m.AdvanceTurn(ctx, encID)
	require.NoError(t, err)
	assert.Equal(t, "C", second.CurrentParticipant.Name)
	assert.False(t, second.NewRound)

	third, err := m.AdvanceTurn(ctx, encID)
	require.NoError(t, err)
	assert.Equal(t, "A", third.CurrentParticipant.Name, "three advances must return to the first participant")
	assert.True(t, third.NewRound, "the wrap must increment the round exactly once")
	assert.Equal(t, 2, third.RoundNumber)
}

func TestAdvanceTurn_NoActiveParticipants(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()
	state, err := m.StartCombat(ctx, "session-1", nil, false)
	require.NoError(t, err)

	_, err = m.AdvanceTurn(ctx, state.Encounter.ID)
	assert.ErrorIs(t, err, encounter.ErrNoParticipants)
}

func TestAdvanceTurn_CompletedEncounterFails(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()
	state, err := m.StartCombat(ctx, "session-1", roster("Fighter"), false)
	require.NoError(t, err)

	ended, err := m.EndCombat(ctx, state.Encounter.ID)
	require.NoError(t, err)
	assert.Equal(t, encounter.StatusCompleted, ended.Status)
	require.NotNil(t, ended.EndedAt)

	_, err = m.AdvanceTurn(ctx, state.Encounter.ID)
	assert.ErrorIs(t, err, encounter.ErrEncounterNotActive)

	_, err = m.EndCombat(ctx, state.Encounter.ID)
	assert.ErrorIs(t, err, encounter.ErrEncounterNotActive, "endCombat is terminal and not repeatable")
}

func TestReorderInitiative_ResortsImmediately(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()
	inputs := []encounter.ParticipantInput{
		{Name: "A", MaxHP: 10, Initiative: intp(20)},
		{Name: "B", MaxHP: 10, Initiative: intp(10)},
	}
	state, err := m.StartCombat(ctx, "session-1", inputs, false)
	require.NoError(t, err)

	var bID string
	for _, p := range state.Participants {
		if p.Name == "B" {
			bID = p.ID
		}
	}
	require.NoError(t, m.ReorderInitiative(ctx, state.Encounter.ID, bID, 25))

	ordered, err := m.CalculateTurnOrder(ctx, state.Encounter.ID)
	require.NoError(t, err)
	assert.Equal(t, "B", ordered[0].Name)
}

func TestAddAndRemoveParticipant(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()
	state, err := m.StartCombat(ctx, "session-1", roster("Fighter"), false)
	require.NoError(t, err)

	goblin, err := m.AddParticipant(ctx, state.Encounter.ID, encounter.ParticipantInput{
		Name: "Goblin", MaxHP: 7, Initiative: intp(18),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, goblin.Sequence)

	current, err := m.GetCurrentTurn(ctx, state.Encounter.ID)
	require.NoError(t, err)
	assert.Equal(t, "Goblin", current.Name)

	require.NoError(t, m.RemoveParticipant(ctx, goblin.ID))
	current, err = m.GetCurrentTurn(ctx, state.Encounter.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fighter", current.Name)
}

func TestGetCombatState_UnknownEncounter(t *testing.T) {
	m, _ := newManager(t)
	_, err := m.GetCombatState(context.Background(), "nope")
	require.Error(t, err)
}

func TestAdvanceTurn_StaleWriterDetected(t *testing.T) {
	m, store := newManager(t)
	ctx := context.Background()
	state, err := m.StartCombat(ctx, "session-1", roster("A", "B"), false)
	require.NoError(t, err)

	// A concurrent writer that observed an outdated pointer must fail.
	err = store.UpdateTurn(ctx, state.Encounter.ID, 99, 99, 100, 0)
	assert.ErrorIs(t, err, encounter.ErrStaleEncounter)

	// The manager itself observed the current pointer, so it proceeds.
	_, err = m.AdvanceTurn(ctx, state.Encounter.ID)
	assert.NoError(t, err)
}
