// Package combatserver exposes the combat engine over gRPC.
package combatserver

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	combatv1 "github.com/cory-johannsen/gametable/internal/combatserver/combatv1"
	"github.com/cory-johannsen/gametable/internal/game/condition"
	"github.com/cory-johannsen/gametable/internal/game/dice"
	"github.com/cory-johannsen/gametable/internal/game/domain"
	"github.com/cory-johannsen/gametable/internal/game/encounter"
)

// CombatServiceServer implements the gRPC CombatService over the
// encounter manager, HP tracker, and condition engine.
type CombatServiceServer struct {
	combatv1.UnimplementedCombatServiceServer
	manager    *encounter.Manager
	hp         *encounter.HPTracker
	conditions *condition.Engine
	roller     *dice.Roller
	logger     *zap.Logger
}

// NewCombatServiceServer creates a CombatServiceServer.
//
// Precondition: all arguments must be non-nil.
func NewCombatServiceServer(
	manager *encounter.Manager,
	hp *encounter.HPTracker,
	conditions *condition.Engine,
	roller *dice.Roller,
	logger *zap.Logger,
) *CombatServiceServer {
	return &CombatServiceServer{
		manager:    manager,
		hp:         hp,
		conditions: conditions,
		roller:     roller,
		logger:     logger,
	}
}

// rpcError maps domain errors onto gRPC status codes.
func rpcError(err error) error {
	switch {
	case err == nil:
		return nil
	case domain.IsNotFound(err):
		return status.Error(codes.NotFound, err.Error())
	case domain.IsValidation(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case domain.IsBusinessLogic(err):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, encounter.ErrStaleEncounter):
		return status.Error(codes.Aborted, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

// StartCombat creates an encounter with its initial roster.
func (s *CombatServiceServer) StartCombat(ctx context.Context, req *combatv1.StartCombatRequest) (*combatv1.CombatState, error) {
	inputs := make([]encounter.ParticipantInput, len(req.GetParticipants()))
	for i, p := range req.GetParticipants() {
		inputs[i] = participantInputFromProto(p)
	}
	state, err := s.manager.StartCombat(ctx, req.GetSessionId(), inputs, req.GetSurpriseRound())
	if err != nil {
		return nil, rpcError(err)
	}
	return combatStateToProto(state), nil
}

// GetCombatState returns the full encounter snapshot.
func (s *CombatServiceServer) GetCombatState(ctx context.Context, req *combatv1.GetCombatStateRequest) (*combatv1.CombatState, error) {
	state, err := s.manager.GetCombatState(ctx, req.GetEncounterId())
	if err != nil {
		return nil, rpcError(err)
	}
	return combatStateToProto(state), nil
}

// EndCombat completes the encounter.
func (s *CombatServiceServer) EndCombat(ctx context.Context, req *combatv1.EndCombatRequest) (*combatv1.Encounter, error) {
	e, err := s.manager.EndCombat(ctx, req.GetEncounterId())
	if err != nil {
		return nil, rpcError(err)
	}
	return encounterToProto(e), nil
}

// AddParticipant adds a roster member mid-encounter.
func (s *CombatServiceServer) AddParticipant(ctx context.Context, req *combatv1.AddParticipantRequest) (*combatv1.Participant, error) {
	p, err := s.manager.AddParticipant(ctx, req.GetEncounterId(), participantInputFromProto(req.GetParticipant()))
	if err != nil {
		return nil, rpcError(err)
	}
	return participantToProto(p), nil
}

// RemoveParticipant deactivates a roster member.
func (s *CombatServiceServer) RemoveParticipant(ctx context.Context, req *combatv1.RemoveParticipantRequest) (*combatv1.RemoveParticipantResponse, error) {
	if err := s.manager.RemoveParticipant(ctx, req.GetParticipantId()); err != nil {
		return nil, rpcError(err)
	}
	return &combatv1.RemoveParticipantResponse{}, nil
}

// RollDice evaluates a dice expression server-side so clients share the
// audited random source.
func (s *CombatServiceServer) RollDice(_ context.Context, req *combatv1.RollDiceRequest) (*combatv1.DiceRoll, error) {
	res, err := s.roller.RollExpr(req.GetExpression())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	out := &combatv1.DiceRoll{
		Expression: res.Expression,
		Modifier:   int32(res.Modifier),
		Total:      int32(res.Total()),
	}
	for _, d := range res.Dice {
		out.Dice = append(out.Dice, int32(d))
	}
	return out, nil
}

// RollInitiative rolls or records initiative for one participant.
func (s *CombatServiceServer) RollInitiative(ctx context.Context, req *combatv1.RollInitiativeRequest) (*combatv1.InitiativeRoll, error) {
	roll, err := s.manager.RollInitiative(ctx, req.GetEncounterId(), req.GetParticipantId(),
		intPtr(req.Roll), intPtr(req.Modifier))
	if err != nil {
		return nil, rpcError(err)
	}
	return &combatv1.InitiativeRoll{
		ParticipantId: roll.ParticipantID,
		Roll:          int32(roll.Roll),
		Modifier:      int32(roll.Modifier),
		Total:         int32(roll.Total),
	}, nil
}

// ReorderInitiative overrides a participant's initiative total.
func (s *CombatServiceServer) ReorderInitiative(ctx context.Context, req *combatv1.ReorderInitiativeRequest) (*combatv1.ReorderInitiativeResponse, error) {
	if err := s.manager.ReorderInitiative(ctx, req.GetEncounterId(), req.GetParticipantId(), int(req.GetNewTotal())); err != nil {
		return nil, rpcError(err)
	}
	return &combatv1.ReorderInitiativeResponse{}, nil
}

// GetTurnOrder returns the active roster in turn order.
func (s *CombatServiceServer) GetTurnOrder(ctx context.Context, req *combatv1.GetTurnOrderRequest) (*combatv1.TurnOrder, error) {
	ordered, err := s.manager.CalculateTurnOrder(ctx, req.GetEncounterId())
	if err != nil {
		return nil, rpcError(err)
	}
	out := &combatv1.TurnOrder{Participants: make([]*combatv1.Participant, len(ordered))}
	for i, p := range ordered {
		out.Participants[i] = participantToProto(p)
	}
	return out, nil
}

// GetCurrentTurn returns whose turn it is.
func (s *CombatServiceServer) GetCurrentTurn(ctx context.Context, req *combatv1.GetCurrentTurnRequest) (*combatv1.Participant, error) {
	p, err := s.manager.GetCurrentTurn(ctx, req.GetEncounterId())
	if err != nil {
		return nil, rpcError(err)
	}
	return participantToProto(p), nil
}

// AdvanceTurn moves the turn pointer. At a round boundary it also
// advances condition durations, folding expirations and pending saving
// throws into the response.
func (s *CombatServiceServer) AdvanceTurn(ctx context.Context, req *combatv1.AdvanceTurnRequest) (*combatv1.TurnAdvance, error) {
	adv, err := s.manager.AdvanceTurn(ctx, req.GetEncounterId())
	if err != nil {
		return nil, rpcError(err)
	}
	out := &combatv1.TurnAdvance{
		PreviousParticipant: participantToProto(adv.PreviousParticipant),
		CurrentParticipant:  participantToProto(adv.CurrentParticipant),
		NewRound:            adv.NewRound,
		RoundNumber:         int32(adv.RoundNumber),
	}
	if adv.NewRound {
		res, err := s.conditions.AdvanceConditionDurations(ctx, req.GetEncounterId(), adv.RoundNumber)
		if err != nil {
			return nil, rpcError(fmt.Errorf("advancing condition durations: %w", err))
		}
		for _, inst := range res.ExpiredConditions {
			out.ExpiredConditions = append(out.ExpiredConditions, conditionToProto(inst))
		}
		for _, ps := range res.SavingThrowsNeeded {
			out.SavingThrowsNeeded = append(out.SavingThrowsNeeded, &combatv1.PendingSave{
				ConditionId:   ps.ConditionID,
				ParticipantId: ps.ParticipantID,
				ConditionName: ps.ConditionName,
				SaveDc:        int32(ps.SaveDC),
				SaveAbility:   string(ps.SaveAbility),
			})
		}
	}
	return out, nil
}

// ApplyDamage applies damage to a participant.
func (s *CombatServiceServer) ApplyDamage(ctx context.Context, req *combatv1.ApplyDamageRequest) (*combatv1.DamageResult, error) {
	res, err := s.hp.ApplyDamage(ctx, req.GetParticipantId(), encounter.DamageRequest{
		Amount:              int(req.GetAmount()),
		DamageType:          domain.DamageType(req.GetDamageType()),
		IgnoreResistances:   req.GetIgnoreResistances(),
		IgnoreImmunities:    req.GetIgnoreImmunities(),
		SourceParticipantID: req.GetSourceParticipantId(),
		SourceDescription:   req.GetSourceDescription(),
	})
	if err != nil {
		return nil, rpcError(err)
	}
	return &combatv1.DamageResult{
		ParticipantId:          res.ParticipantID,
		DamageRequested:        int32(res.DamageRequested),
		DamageApplied:          int32(res.DamageApplied),
		TempHpAbsorbed:         int32(res.TempHPAbsorbed),
		HpLost:                 int32(res.HPLost),
		CurrentHp:              int32(res.CurrentHP),
		TempHp:                 int32(res.TempHP),
		IsConscious:            res.IsConscious,
		MassiveDamage:          res.MassiveDamage,
		LifeState:              res.Life.String(),
		EffectiveResistance:    res.EffectiveResistance,
		EffectiveVulnerability: res.EffectiveVulnerability,
		EffectiveImmunity:      res.EffectiveImmunity,
	}, nil
}

// HealDamage restores hit points.
func (s *CombatServiceServer) HealDamage(ctx context.Context, req *combatv1.HealDamageRequest) (*combatv1.HealingResult, error) {
	res, err := s.hp.HealDamage(ctx, req.GetParticipantId(), int(req.GetAmount()), req.GetSource())
	if err != nil {
		return nil, rpcError(err)
	}
	return &combatv1.HealingResult{
		ParticipantId:   res.ParticipantID,
		AmountRequested: int32(res.AmountRequested),
		AmountHealed:    int32(res.AmountHealed),
		Overheal:        int32(res.Overheal),
		CurrentHp:       int32(res.CurrentHP),
		Revived:         res.Revived,
	}, nil
}

// SetTempHp grants temporary hit points.
func (s *CombatServiceServer) SetTempHp(ctx context.Context, req *combatv1.SetTempHpRequest) (*combatv1.ParticipantStatus, error) {
	st, err := s.hp.SetTempHP(ctx, req.GetParticipantId(), int(req.GetAmount()))
	if err != nil {
		return nil, rpcError(err)
	}
	return statusToProto(st), nil
}

// RollDeathSave records one death-save roll.
func (s *CombatServiceServer) RollDeathSave(ctx context.Context, req *combatv1.RollDeathSaveRequest) (*combatv1.DeathSaveResult, error) {
	res, err := s.hp.RollDeathSave(ctx, req.GetParticipantId(), int(req.GetRoll()))
	if err != nil {
		return nil, rpcError(err)
	}
	return &combatv1.DeathSaveResult{
		ParticipantId: res.ParticipantID,
		Roll:          int32(res.Roll),
		Outcome:       string(res.Outcome),
		Successes:     int32(res.Successes),
		Failures:      int32(res.Failures),
		LifeState:     res.Life.String(),
		Revived:       res.Revived,
		CurrentHp:     int32(res.CurrentHP),
	}, nil
}

// GetParticipantStatus returns the participant's HP and save counters.
func (s *CombatServiceServer) GetParticipantStatus(ctx context.Context, req *combatv1.GetParticipantStatusRequest) (*combatv1.ParticipantStatus, error) {
	st, err := s.hp.GetParticipantStatus(ctx, req.GetParticipantId())
	if err != nil {
		return nil, rpcError(err)
	}
	return statusToProto(st), nil
}

// GetDamageLog returns the encounter's damage audit trail.
func (s *CombatServiceServer) GetDamageLog(ctx context.Context, req *combatv1.GetDamageLogRequest) (*combatv1.DamageLog, error) {
	entries, err := s.hp.GetDamageLog(ctx, req.GetEncounterId())
	if err != nil {
		return nil, rpcError(err)
	}
	out := &combatv1.DamageLog{Entries: make([]*combatv1.DamageLogEntry, len(entries))}
	for i, e := range entries {
		out.Entries[i] = &combatv1.DamageLogEntry{
			Id:                  e.ID,
			ParticipantId:       e.ParticipantID,
			Amount:              int32(e.Amount),
			DamageType:          string(e.DamageType),
			SourceParticipantId: e.SourceParticipantID,
			SourceDescription:   e.SourceDescription,
			Round:               int32(e.Round),
		}
	}
	return out, nil
}

// ApplyCondition applies a status condition to a participant.
func (s *CombatServiceServer) ApplyCondition(ctx context.Context, req *combatv1.ApplyConditionRequest) (*combatv1.ApplyConditionResponse, error) {
	res, err := s.conditions.ApplyCondition(ctx, condition.ApplyInput{
		ParticipantID: req.GetParticipantId(),
		ConditionName: req.GetConditionName(),
		DurationKind:  condition.DurationKind(req.GetDurationKind()),
		DurationValue: int(req.GetDurationValue()),
		SaveDC:        int(req.GetSaveDc()),
		SaveAbility:   domain.Ability(req.GetSaveAbility()),
		Source:        req.GetSource(),
	})
	if err != nil {
		return nil, rpcError(err)
	}
	out := &combatv1.ApplyConditionResponse{Condition: conditionToProto(res.Condition)}
	for _, w := range res.Warnings {
		out.Warnings = append(out.Warnings, &combatv1.ConflictWarning{
			Kind:                string(w.Kind),
			Existing:            w.Existing,
			Applied:             w.Applied,
			DeactivatesExisting: w.DeactivatesExisting,
			Message:             w.Message,
		})
	}
	return out, nil
}

// RemoveCondition deactivates an active condition instance.
func (s *CombatServiceServer) RemoveCondition(ctx context.Context, req *combatv1.RemoveConditionRequest) (*combatv1.RemoveConditionResponse, error) {
	if err := s.conditions.RemoveCondition(ctx, req.GetConditionId()); err != nil {
		return nil, rpcError(err)
	}
	return &combatv1.RemoveConditionResponse{}, nil
}

// AttemptSave rolls a saving throw against an active condition.
func (s *CombatServiceServer) AttemptSave(ctx context.Context, req *combatv1.AttemptSaveRequest) (*combatv1.SaveResult, error) {
	res, err := s.conditions.AttemptSave(ctx, req.GetConditionId(), int(req.GetSaveRoll()))
	if err != nil {
		return nil, rpcError(err)
	}
	return &combatv1.SaveResult{
		Saved:            res.Saved,
		ConditionRemoved: res.ConditionRemoved,
		Message:          res.Message,
	}, nil
}

// GetActiveConditions returns the participant's active conditions.
func (s *CombatServiceServer) GetActiveConditions(ctx context.Context, req *combatv1.GetActiveConditionsRequest) (*combatv1.ActiveConditions, error) {
	active, err := s.conditions.GetActiveConditions(ctx, req.GetParticipantId())
	if err != nil {
		return nil, rpcError(err)
	}
	out := &combatv1.ActiveConditions{Conditions: make([]*combatv1.ActiveCondition, len(active))}
	for i, ac := range active {
		out.Conditions[i] = &combatv1.ActiveCondition{
			Instance:   conditionToProto(ac.Instance),
			Definition: definitionToProto(ac.Entry),
		}
	}
	return out, nil
}

// GetMechanicalEffects returns the merged effect set across every active
// condition on the participant.
func (s *CombatServiceServer) GetMechanicalEffects(ctx context.Context, req *combatv1.GetMechanicalEffectsRequest) (*combatv1.MechanicalEffects, error) {
	agg, err := s.conditions.GetMechanicalEffects(ctx, req.GetParticipantId())
	if err != nil {
		return nil, rpcError(err)
	}
	out := &combatv1.MechanicalEffects{Sources: agg.Sources}
	for _, key := range sortedEffectKeys(agg.Effects) {
		out.Effects = append(out.Effects, &combatv1.MechanicalEffect{
			Key:   key,
			Value: effectValueString(agg.Effects[key]),
		})
	}
	return out, nil
}

// ListConditionLibrary returns every condition definition.
func (s *CombatServiceServer) ListConditionLibrary(_ context.Context, _ *combatv1.ListConditionLibraryRequest) (*combatv1.ConditionLibrary, error) {
	entries := s.conditions.GetLibrary()
	out := &combatv1.ConditionLibrary{Conditions: make([]*combatv1.ConditionDefinition, len(entries))}
	for i, e := range entries {
		out.Conditions[i] = definitionToProto(e)
	}
	return out, nil
}
