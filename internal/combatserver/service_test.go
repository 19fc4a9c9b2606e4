package combatserver

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	combatv1 "github.com/cory-johannsen/gametable/internal/combatserver/combatv1"
	"github.com/cory-johannsen/gametable/internal/game/condition"
	"github.com/cory-johannsen/gametable/internal/game/dice"
	"github.com/cory-johannsen/gametable/internal/game/encounter"
	"github.com/cory-johannsen/gametable/internal/storage/memory"
)

// fixedSource always rolls the same face so test outcomes are stable.
type fixedSource struct{ v int }

func (s fixedSource) Intn(int) int { return s.v }

func testLibrary() *condition.Library {
	lib := condition.NewLibrary()
	lib.Register(&condition.LibraryEntry{
		Name:        "poisoned",
		Description: "Disadvantage on attack rolls and ability checks.",
		Effects: condition.EffectSet{
			"attack_rolls":   condition.RollEffect(condition.RollDisadvantage),
			"ability_checks": condition.RollEffect(condition.RollDisadvantage),
		},
	})
	lib.Register(&condition.LibraryEntry{
		Name:        "prone",
		Description: "Crawling only; disadvantage on attack rolls.",
		Effects: condition.EffectSet{
			"attack_rolls": condition.RollEffect(condition.RollDisadvantage),
		},
	})
	lib.Register(&condition.LibraryEntry{
		Name:        "unconscious",
		Description: "Drops everything and falls prone.",
		Effects: condition.EffectSet{
			"incapacitated": condition.BoolEffect(true),
			"speed":         condition.NumericEffect(0),
		},
	})
	return lib
}

// testCombatServer starts an in-process gRPC server over the in-memory
// store and returns a connected client.
func testCombatServer(t *testing.T) combatv1.CombatServiceClient {
	t.Helper()

	store := memory.NewStore()
	logger := zaptest.NewLogger(t)
	locks := encounter.NewKeyedLock()

	manager := encounter.NewManager(store, fixedSource{9}, locks, logger)
	tracker := encounter.NewHPTracker(store, locks, logger)
	engine := condition.NewEngine(store, testLibrary(), store, locks, nil, logger)
	roller := dice.NewRoller(fixedSource{9}, logger)

	svc := NewCombatServiceServer(manager, tracker, engine, roller, logger)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	grpcServer := grpc.NewServer()
	combatv1.RegisterCombatServiceServer(grpcServer, svc)

	go func() { _ = grpcServer.Serve(lis) }()
	t.Cleanup(func() { grpcServer.Stop() })

	conn, err := grpc.NewClient(lis.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return combatv1.NewCombatServiceClient(conn)
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// startTwo starts an encounter with pre-rolled initiative so the turn
// order is Fighter (17) then Goblin (12).
func startTwo(t *testing.T, ctx context.Context, client combatv1.CombatServiceClient) *combatv1.CombatState {
	t.Helper()
	fighterInit, goblinInit := int32(17), int32(12)
	state, err := client.StartCombat(ctx, &combatv1.StartCombatRequest{
		SessionId: "session-1",
		Participants: []*combatv1.ParticipantInput{
			{Name: "Fighter", CharacterId: "char-1", MaxHp: 24, InitiativeModifier: 2, Initiative: &fighterInit},
			{Name: "Goblin", NpcRef: "goblin", MaxHp: 7, Initiative: &goblinInit},
		},
	})
	require.NoError(t, err)
	return state
}

func participantID(state *combatv1.CombatState, name string) string {
	for _, p := range state.Participants {
		if p.Name == name {
			return p.Id
		}
	}
	return ""
}

func TestCombatService_StartCombatAndTurnCycle(t *testing.T) {
	client := testCombatServer(t)
	ctx := testContext(t)

	state := startTwo(t, ctx, client)
	require.Len(t, state.Participants, 2)
	require.Len(t, state.Statuses, 2)
	assert.Equal(t, "active", state.Encounter.Status)
	assert.Equal(t, int32(1), state.Encounter.CurrentRound)

	current, err := client.GetCurrentTurn(ctx, &combatv1.GetCurrentTurnRequest{EncounterId: state.Encounter.Id})
	require.NoError(t, err)
	assert.Equal(t, "Fighter", current.Name)

	order, err := client.GetTurnOrder(ctx, &combatv1.GetTurnOrderRequest{EncounterId: state.Encounter.Id})
	require.NoError(t, err)
	require.Len(t, order.Participants, 2)
	assert.Equal(t, "Fighter", order.Participants[0].Name)
	assert.Equal(t, "Goblin", order.Participants[1].Name)

	adv, err := client.AdvanceTurn(ctx, &combatv1.AdvanceTurnRequest{EncounterId: state.Encounter.Id})
	require.NoError(t, err)
	assert.Equal(t, "Goblin", adv.CurrentParticipant.Name)
	assert.False(t, adv.NewRound)

	adv, err = client.AdvanceTurn(ctx, &combatv1.AdvanceTurnRequest{EncounterId: state.Encounter.Id})
	require.NoError(t, err)
	assert.Equal(t, "Fighter", adv.CurrentParticipant.Name)
	assert.True(t, adv.NewRound)
	assert.Equal(t, int32(2), adv.RoundNumber)

	ended, err := client.EndCombat(ctx, &combatv1.EndCombatRequest{EncounterId: state.Encounter.Id})
	require.NoError(t, err)
	assert.Equal(t, "completed", ended.Status)
}

func TestCombatService_RollDice(t *testing.T) {
	client := testCombatServer(t)
	ctx := testContext(t)

	// fixedSource{9} yields a face of 10 on every die.
	roll, err := client.RollDice(ctx, &combatv1.RollDiceRequest{Expression: "2d6+3"})
	require.NoError(t, err)
	assert.Equal(t, []int32{10, 10}, roll.Dice)
	assert.Equal(t, int32(3), roll.Modifier)
	assert.Equal(t, int32(23), roll.Total)

	_, err = client.RollDice(ctx, &combatv1.RollDiceRequest{Expression: "not dice"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestCombatService_RollInitiativeUsesSource(t *testing.T) {
	client := testCombatServer(t)
	ctx := testContext(t)

	state, err := client.StartCombat(ctx, &combatv1.StartCombatRequest{
		SessionId: "session-1",
		Participants: []*combatv1.ParticipantInput{
			{Name: "Rogue", MaxHp: 16, InitiativeModifier: 4},
		},
	})
	require.NoError(t, err)

	// fixedSource{9} yields a d20 face of 10.
	roll, err := client.RollInitiative(ctx, &combatv1.RollInitiativeRequest{
		EncounterId:   state.Encounter.Id,
		ParticipantId: state.Participants[0].Id,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(10), roll.Roll)
	assert.Equal(t, int32(4), roll.Modifier)
	assert.Equal(t, int32(14), roll.Total)
}

func TestCombatService_DamageToDeathSaves(t *testing.T) {
	client := testCombatServer(t)
	ctx := testContext(t)

	state := startTwo(t, ctx, client)
	goblinID := participantID(state, "Goblin")
	require.NotEmpty(t, goblinID)

	res, err := client.ApplyDamage(ctx, &combatv1.ApplyDamageRequest{
		ParticipantId:     goblinID,
		Amount:            6,
		DamageType:        "slashing",
		SourceDescription: "longsword",
	})
	require.NoError(t, err)
	assert.Equal(t, int32(1), res.CurrentHp)
	assert.True(t, res.IsConscious)

	res, err = client.ApplyDamage(ctx, &combatv1.ApplyDamageRequest{
		ParticipantId: goblinID,
		Amount:        3,
		DamageType:    "slashing",
	})
	require.NoError(t, err)
	assert.Equal(t, int32(0), res.CurrentHp)
	assert.False(t, res.IsConscious)
	assert.False(t, res.MassiveDamage)
	assert.Equal(t, "dying", res.LifeState)

	save, err := client.RollDeathSave(ctx, &combatv1.RollDeathSaveRequest{ParticipantId: goblinID, Roll: 14})
	require.NoError(t, err)
	assert.Equal(t, "success", save.Outcome)
	assert.Equal(t, int32(1), save.Successes)

	heal, err := client.HealDamage(ctx, &combatv1.HealDamageRequest{ParticipantId: goblinID, Amount: 5, Source: "healing word"})
	require.NoError(t, err)
	assert.True(t, heal.Revived)
	assert.Equal(t, int32(5), heal.CurrentHp)

	st, err := client.GetParticipantStatus(ctx, &combatv1.GetParticipantStatusRequest{ParticipantId: goblinID})
	require.NoError(t, err)
	assert.Equal(t, int32(0), st.DeathSaveSuccesses, "revival resets counters")
	assert.True(t, st.IsConscious)

	log, err := client.GetDamageLog(ctx, &combatv1.GetDamageLogRequest{EncounterId: state.Encounter.Id})
	require.NoError(t, err)
	require.Len(t, log.Entries, 2)
	assert.Equal(t, "longsword", log.Entries[0].SourceDescription)
}

func TestCombatService_ConditionLifecycle(t *testing.T) {
	client := testCombatServer(t)
	ctx := testContext(t)

	state := startTwo(t, ctx, client)
	fighterID := participantID(state, "Fighter")

	applied, err := client.ApplyCondition(ctx, &combatv1.ApplyConditionRequest{
		ParticipantId: fighterID,
		ConditionName: "poisoned",
		DurationKind:  "rounds",
		DurationValue: 1,
		Source:        "spider bite",
	})
	require.NoError(t, err)
	assert.Empty(t, applied.Warnings)
	require.NotNil(t, applied.Condition.ExpiresAtRound)
	assert.Equal(t, int32(2), *applied.Condition.ExpiresAtRound)

	// unconscious supersedes prone; both warnings surface, prone is
	// auto-deactivated.
	_, err = client.ApplyCondition(ctx, &combatv1.ApplyConditionRequest{
		ParticipantId: fighterID,
		ConditionName: "prone",
		DurationKind:  "permanent",
	})
	require.NoError(t, err)
	uncResp, err := client.ApplyCondition(ctx, &combatv1.ApplyConditionRequest{
		ParticipantId: fighterID,
		ConditionName: "unconscious",
		DurationKind:  "permanent",
	})
	require.NoError(t, err)
	require.Len(t, uncResp.Warnings, 1)
	assert.Equal(t, "superseded", uncResp.Warnings[0].Kind)
	assert.True(t, uncResp.Warnings[0].DeactivatesExisting)

	active, err := client.GetActiveConditions(ctx, &combatv1.GetActiveConditionsRequest{ParticipantId: fighterID})
	require.NoError(t, err)
	names := make([]string, len(active.Conditions))
	for i, ac := range active.Conditions {
		names[i] = ac.Instance.ConditionName
	}
	assert.ElementsMatch(t, []string{"poisoned", "unconscious"}, names)

	effects, err := client.GetMechanicalEffects(ctx, &combatv1.GetMechanicalEffectsRequest{ParticipantId: fighterID})
	require.NoError(t, err)
	byKey := make(map[string]string, len(effects.Effects))
	for _, e := range effects.Effects {
		byKey[e.Key] = e.Value
	}
	assert.Equal(t, "disadvantage", byKey["attack_rolls"])
	assert.Equal(t, "true", byKey["incapacitated"])
	assert.Equal(t, "0", byKey["speed"])

	// Round boundary expires the one-round poison.
	_, err = client.AdvanceTurn(ctx, &combatv1.AdvanceTurnRequest{EncounterId: state.Encounter.Id})
	require.NoError(t, err)
	adv, err := client.AdvanceTurn(ctx, &combatv1.AdvanceTurnRequest{EncounterId: state.Encounter.Id})
	require.NoError(t, err)
	require.True(t, adv.NewRound)
	require.Len(t, adv.ExpiredConditions, 1)
	assert.Equal(t, "poisoned", adv.ExpiredConditions[0].ConditionName)

	rm, err := client.RemoveCondition(ctx, &combatv1.RemoveConditionRequest{ConditionId: uncResp.Condition.Id})
	require.NoError(t, err)
	require.NotNil(t, rm)

	active, err = client.GetActiveConditions(ctx, &combatv1.GetActiveConditionsRequest{ParticipantId: fighterID})
	require.NoError(t, err)
	assert.Empty(t, active.Conditions)
}

func TestCombatService_ListConditionLibrary(t *testing.T) {
	client := testCombatServer(t)
	ctx := testContext(t)

	lib, err := client.ListConditionLibrary(ctx, &combatv1.ListConditionLibraryRequest{})
	require.NoError(t, err)
	require.Len(t, lib.Conditions, 3)
	names := make([]string, len(lib.Conditions))
	for i, c := range lib.Conditions {
		names[i] = c.Name
	}
	assert.ElementsMatch(t, []string{"poisoned", "prone", "unconscious"}, names)
}

func TestCombatService_ErrorCodes(t *testing.T) {
	client := testCombatServer(t)
	ctx := testContext(t)

	_, err := client.GetCombatState(ctx, &combatv1.GetCombatStateRequest{EncounterId: "missing"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.StartCombat(ctx, &combatv1.StartCombatRequest{
		SessionId:    "session-1",
		Participants: []*combatv1.ParticipantInput{{Name: "Broken", MaxHp: 0}},
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	state := startTwo(t, ctx, client)
	fighterID := participantID(state, "Fighter")

	// Death saves are only legal while dying.
	_, err = client.RollDeathSave(ctx, &combatv1.RollDeathSaveRequest{ParticipantId: fighterID, Roll: 10})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = client.ApplyCondition(ctx, &combatv1.ApplyConditionRequest{
		ParticipantId: fighterID,
		ConditionName: "poisoned",
		DurationKind:  "fortnights",
		DurationValue: 1,
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
