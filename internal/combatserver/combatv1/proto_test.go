package combatv1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	combatv1 "github.com/cory-johannsen/gametable/internal/combatserver/combatv1"
)

func TestProto_StartCombatRequest_Roundtrip(t *testing.T) {
	hp := int32(18)
	orig := &combatv1.StartCombatRequest{
		SessionId: "session-1",
		Participants: []*combatv1.ParticipantInput{
			{
				Name:               "Fighter",
				CharacterId:        "char-1",
				MaxHp:              24,
				CurrentHp:          &hp,
				InitiativeModifier: 2,
				Resistances:        []string{"slashing"},
			},
			{Name: "Goblin", NpcRef: "goblin", MaxHp: 7},
		},
		SurpriseRound: true,
	}
	data, err := proto.Marshal(orig)
	require.NoError(t, err)
	got := &combatv1.StartCombatRequest{}
	require.NoError(t, proto.Unmarshal(data, got))
	assert.Equal(t, orig.SessionId, got.SessionId)
	assert.True(t, got.SurpriseRound)
	require.Len(t, got.Participants, 2)
	require.NotNil(t, got.Participants[0].CurrentHp)
	assert.Equal(t, int32(18), *got.Participants[0].CurrentHp)
	assert.Nil(t, got.Participants[1].CurrentHp)
	assert.Equal(t, []string{"slashing"}, got.Participants[0].Resistances)
}

func TestProto_DamageResult_Roundtrip(t *testing.T) {
	orig := &combatv1.DamageResult{
		ParticipantId:       "p1",
		DamageRequested:     12,
		DamageApplied:       6,
		TempHpAbsorbed:      2,
		HpLost:              4,
		CurrentHp:           3,
		IsConscious:         true,
		LifeState:           "conscious",
		EffectiveResistance: true,
	}
	data, err := proto.Marshal(orig)
	require.NoError(t, err)
	var got combatv1.DamageResult
	require.NoError(t, proto.Unmarshal(data, &got))
	assert.Equal(t, orig.DamageApplied, got.DamageApplied)
	assert.Equal(t, orig.TempHpAbsorbed, got.TempHpAbsorbed)
	assert.True(t, got.EffectiveResistance)
	assert.False(t, got.MassiveDamage)
}

func TestProto_TurnAdvance_Roundtrip(t *testing.T) {
	expiry := int32(3)
	orig := &combatv1.TurnAdvance{
		PreviousParticipant: &combatv1.Participant{Id: "p1", Name: "Fighter"},
		CurrentParticipant:  &combatv1.Participant{Id: "p2", Name: "Goblin"},
		NewRound:            true,
		RoundNumber:         2,
		ExpiredConditions: []*combatv1.ConditionInstance{
			{Id: "c1", ConditionName: "poisoned", ExpiresAtRound: &expiry},
		},
		SavingThrowsNeeded: []*combatv1.PendingSave{
			{ConditionId: "c2", ConditionName: "restrained", SaveDc: 14, SaveAbility: "strength"},
		},
	}
	data, err := proto.Marshal(orig)
	require.NoError(t, err)
	var got combatv1.TurnAdvance
	require.NoError(t, proto.Unmarshal(data, &got))
	assert.Equal(t, "Goblin", got.CurrentParticipant.Name)
	assert.True(t, got.NewRound)
	require.Len(t, got.ExpiredConditions, 1)
	require.NotNil(t, got.ExpiredConditions[0].ExpiresAtRound)
	assert.Equal(t, int32(3), *got.ExpiredConditions[0].ExpiresAtRound)
	require.Len(t, got.SavingThrowsNeeded, 1)
	assert.Equal(t, int32(14), got.SavingThrowsNeeded[0].SaveDc)
}

func TestProto_ApplyConditionResponse_Roundtrip(t *testing.T) {
	orig := &combatv1.ApplyConditionResponse{
		Condition: &combatv1.ConditionInstance{
			Id: "c1", ConditionName: "unconscious", DurationKind: "permanent", IsActive: true,
		},
		Warnings: []*combatv1.ConflictWarning{
			{Kind: "superseded", Existing: "prone", Applied: "unconscious", DeactivatesExisting: true},
		},
	}
	data, err := proto.Marshal(orig)
	require.NoError(t, err)
	var got combatv1.ApplyConditionResponse
	require.NoError(t, proto.Unmarshal(data, &got))
	assert.Equal(t, "unconscious", got.Condition.ConditionName)
	assert.Nil(t, got.Condition.ExpiresAtRound)
	require.Len(t, got.Warnings, 1)
	assert.True(t, got.Warnings[0].DeactivatesExisting)
}
