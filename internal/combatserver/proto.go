package combatserver

import (
	"fmt"
	"sort"

	combatv1 "github.com/cory-johannsen/gametable/internal/combatserver/combatv1"
	"github.com/cory-johannsen/gametable/internal/game/condition"
	"github.com/cory-johannsen/gametable/internal/game/domain"
	"github.com/cory-johannsen/gametable/internal/game/encounter"
)

// Conversions between wire messages and domain types. Kept out of the
// RPC handlers so the handlers read as orchestration only.

func damageTypesFromStrings(in []string) []domain.DamageType {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.DamageType, len(in))
	for i, s := range in {
		out[i] = domain.DamageType(s)
	}
	return out
}

func damageSetToStrings(s domain.DamageTypeSet) []string {
	types := s.Types()
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	sort.Strings(out)
	return out
}

func participantInputFromProto(p *combatv1.ParticipantInput) encounter.ParticipantInput {
	if p == nil {
		return encounter.ParticipantInput{}
	}
	return encounter.ParticipantInput{
		CharacterID:        p.GetCharacterId(),
		NPCRef:             p.GetNpcRef(),
		Name:               p.GetName(),
		MaxHP:              int(p.GetMaxHp()),
		CurrentHP:          intPtr(p.CurrentHp),
		InitiativeModifier: int(p.GetInitiativeModifier()),
		Initiative:         intPtr(p.Initiative),
		Resistances:        damageTypesFromStrings(p.GetResistances()),
		Vulnerabilities:    damageTypesFromStrings(p.GetVulnerabilities()),
		Immunities:         damageTypesFromStrings(p.GetImmunities()),
	}
}

func encounterToProto(e *encounter.Encounter) *combatv1.Encounter {
	if e == nil {
		return nil
	}
	return &combatv1.Encounter{
		Id:               e.ID,
		SessionId:        e.SessionID,
		Status:           string(e.Status),
		CurrentRound:     int32(e.CurrentRound),
		CurrentTurnIndex: int32(e.CurrentTurnIndex),
	}
}

func participantToProto(p *encounter.Participant) *combatv1.Participant {
	if p == nil {
		return nil
	}
	return &combatv1.Participant{
		Id:                 p.ID,
		EncounterId:        p.EncounterID,
		CharacterId:        p.CharacterID,
		NpcRef:             p.NPCRef,
		Name:               p.Name,
		InitiativeTotal:    int32(p.InitiativeTotal),
		InitiativeModifier: int32(p.InitiativeModifier),
		TurnOrder:          int32(p.TurnOrder),
		IsActive:           p.IsActive,
		Resistances:        damageSetToStrings(p.Resistances),
		Vulnerabilities:    damageSetToStrings(p.Vulnerabilities),
		Immunities:         damageSetToStrings(p.Immunities),
	}
}

func statusToProto(st *encounter.ParticipantStatus) *combatv1.ParticipantStatus {
	if st == nil {
		return nil
	}
	return &combatv1.ParticipantStatus{
		ParticipantId:      st.ParticipantID,
		MaxHp:              int32(st.MaxHP),
		CurrentHp:          int32(st.CurrentHP),
		TempHp:             int32(st.TempHP),
		DeathSaveSuccesses: int32(st.DeathSaveSuccesses),
		DeathSaveFailures:  int32(st.DeathSaveFailures),
		IsConscious:        st.IsConscious(),
		LifeState:          st.Life().String(),
	}
}

func combatStateToProto(state *encounter.CombatState) *combatv1.CombatState {
	out := &combatv1.CombatState{
		Encounter:    encounterToProto(state.Encounter),
		Participants: make([]*combatv1.Participant, len(state.Participants)),
	}
	for i, p := range state.Participants {
		out.Participants[i] = participantToProto(p)
	}
	// Statuses follow the participant order so clients can zip the two.
	for _, p := range state.Participants {
		if st, ok := state.Statuses[p.ID]; ok {
			out.Statuses = append(out.Statuses, statusToProto(st))
		}
	}
	return out
}

func conditionToProto(inst *condition.Instance) *combatv1.ConditionInstance {
	if inst == nil {
		return nil
	}
	out := &combatv1.ConditionInstance{
		Id:             inst.ID,
		ParticipantId:  inst.ParticipantID,
		ConditionName:  inst.ConditionName,
		DurationKind:   string(inst.DurationKind),
		DurationValue:  int32(inst.DurationValue),
		SaveDc:         int32(inst.SaveDC),
		SaveAbility:    string(inst.SaveAbility),
		Source:         inst.Source,
		AppliedAtRound: int32(inst.AppliedAtRound),
		IsActive:       inst.IsActive,
	}
	if inst.ExpiresAtRound != nil {
		v := int32(*inst.ExpiresAtRound)
		out.ExpiresAtRound = &v
	}
	return out
}

func definitionToProto(entry *condition.LibraryEntry) *combatv1.ConditionDefinition {
	if entry == nil {
		return nil
	}
	out := &combatv1.ConditionDefinition{
		Name:        entry.Name,
		Description: entry.Description,
		Icon:        entry.Icon,
	}
	for _, key := range sortedEffectKeys(entry.Effects) {
		out.Effects = append(out.Effects, &combatv1.MechanicalEffect{
			Key:   key,
			Value: effectValueString(entry.Effects[key]),
		})
	}
	return out
}

func sortedEffectKeys(set condition.EffectSet) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// effectValueString renders a tagged effect value in the same textual
// form the condition YAML uses.
func effectValueString(e condition.Effect) string {
	switch e.Kind {
	case condition.KindRoll:
		return string(e.Roll)
	case condition.KindNumeric:
		return fmt.Sprintf("%d", e.Num)
	case condition.KindBool:
		return fmt.Sprintf("%t", e.Flag)
	case condition.KindAction:
		return string(e.Action)
	default:
		return ""
	}
}
