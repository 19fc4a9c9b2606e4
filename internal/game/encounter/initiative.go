package encounter

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/cory-johannsen/gametable/internal/game/dice"
	"github.com/cory-johannsen/gametable/internal/game/domain"
)

// RollInitiative records an initiative roll for one participant and
// recomputes the encounter's turn order. When roll is nil a d20 is rolled;
// when modifier is nil the participant's stored modifier is used.
func (m *Manager) RollInitiative(ctx context.Context, encounterID, participantID string, roll, modifier *int) (*InitiativeRoll, error) {
	if roll != nil && (*roll < 1 || *roll > 20) {
		return nil, domain.Invalid("roll", "must be in [1,20], got %d", *roll)
	}

	unlock := m.locks.Lock(encounterID)
	defer unlock()

	e, err := m.store.GetEncounter(ctx, encounterID)
	if err != nil {
		return nil, err
	}
	if !e.Active() {
		return nil, ErrEncounterNotActive
	}

	p, err := m.participantIn(ctx, encounterID, participantID)
	if err != nil {
		return nil, err
	}

	rolled := 0
	if roll != nil {
		rolled = *roll
	} else {
		rolled = dice.D20(m.src)
	}
	mod := p.InitiativeModifier
	if modifier != nil {
		mod = *modifier
	}
	total := rolled + mod

	if err := m.store.UpdateInitiative(ctx, participantID, total, mod); err != nil {
		return nil, fmt.Errorf("updating initiative: %w", err)
	}
	if _, err := m.recomputeTurnOrder(ctx, encounterID); err != nil {
		return nil, err
	}

	m.logger.Debug("initiative rolled",
		zap.String("encounter_id", encounterID),
		zap.String("participant_id", participantID),
		zap.Int("roll", rolled),
		zap.Int("modifier", mod),
		zap.Int("total", total),
	)
	return &InitiativeRoll{ParticipantID: participantID, Roll: rolled, Modifier: mod, Total: total}, nil
}

// ReorderInitiative is an administrative override that sets a
// participant's initiative total directly and re-sorts immediately.
func (m *Manager) ReorderInitiative(ctx context.Context, encounterID, participantID string, newValue int) error {
	unlock := m.locks.Lock(encounterID)
	defer unlock()

	e, err := m.store.GetEncounter(ctx, encounterID)
	if err != nil {
		return err
	}
	if !e.Active() {
		return ErrEncounterNotActive
	}

	p, err := m.participantIn(ctx, encounterID, participantID)
	if err != nil {
		return err
	}
	if err := m.store.UpdateInitiative(ctx, participantID, newValue, p.InitiativeModifier); err != nil {
		return fmt.Errorf("updating initiative: %w", err)
	}
	_, err = m.recomputeTurnOrder(ctx, encounterID)
	return err
}

// CalculateTurnOrder recomputes and persists the turn order, returning the
// active roster in turn order.
func (m *Manager) CalculateTurnOrder(ctx context.Context, encounterID string) ([]*Participant, error) {
	unlock := m.locks.Lock(encounterID)
	defer unlock()
	if _, err := m.store.GetEncounter(ctx, encounterID); err != nil {
		return nil, err
	}
	return m.recomputeTurnOrder(ctx, encounterID)
}

// AdvanceTurn moves the turn pointer to the next active participant. A
// wrap back to index 0 increments the round counter; the pointer starts at
// index 0 when combat begins, so the first advance of a multi-participant
// encounter never spuriously increments the round.
//
// The persisted update is conditioned on the previously observed
// round/turn pointer; a concurrent writer surfaces as ErrStaleEncounter.
func (m *Manager) AdvanceTurn(ctx context.Context, encounterID string) (*TurnAdvance, error) {
	unlock := m.locks.Lock(encounterID)
	defer unlock()

	e, err := m.store.GetEncounter(ctx, encounterID)
	if err != nil {
		return nil, err
	}
	if !e.Active() {
		return nil, ErrEncounterNotActive
	}

	roster, err := m.activeRoster(ctx, encounterID)
	if err != nil {
		return nil, err
	}
	if len(roster) == 0 {
		return nil, ErrNoParticipants
	}

	prevIdx := e.CurrentTurnIndex % len(roster)
	newIdx := (prevIdx + 1) % len(roster)
	newRound := newIdx == 0
	round := e.CurrentRound
	if newRound {
		round++
	}

	if err := m.store.UpdateTurn(ctx, encounterID, e.CurrentRound, e.CurrentTurnIndex, round, newIdx); err != nil {
		return nil, err
	}

	m.logger.Debug("turn advanced",
		zap.String("encounter_id", encounterID),
		zap.Int("turn_index", newIdx),
		zap.Int("round", round),
		zap.Bool("new_round", newRound),
	)
	return &TurnAdvance{
		PreviousParticipant: roster[prevIdx],
		CurrentParticipant:  roster[newIdx],
		NewRound:            newRound,
		RoundNumber:         round,
	}, nil
}

// activeRoster returns the active participants sorted into turn order.
func (m *Manager) activeRoster(ctx context.Context, encounterID string) ([]*Participant, error) {
	all, err := m.store.ListParticipants(ctx, encounterID)
	if err != nil {
		return nil, fmt.Errorf("listing participants: %w", err)
	}
	var roster []*Participant
	for _, p := range all {
		if p.IsActive {
			roster = append(roster, p)
		}
	}
	sort.SliceStable(roster, func(i, j int) bool { return roster[i].TurnOrder < roster[j].TurnOrder })
	return roster, nil
}

// recomputeTurnOrder sorts the active roster by initiative and persists
// the resulting indices. Caller must hold the encounter lock.
func (m *Manager) recomputeTurnOrder(ctx context.Context, encounterID string) ([]*Participant, error) {
	all, err := m.store.ListParticipants(ctx, encounterID)
	if err != nil {
		return nil, fmt.Errorf("listing participants: %w", err)
	}
	var roster []*Participant
	for _, p := range all {
		if p.IsActive {
			roster = append(roster, p)
		}
	}
	sortByInitiative(roster)

	order := make(map[string]int, len(roster))
	for i, p := range roster {
		p.TurnOrder = i
		order[p.ID] = i
	}
	if err := m.store.SetTurnOrder(ctx, encounterID, order); err != nil {
		return nil, fmt.Errorf("persisting turn order: %w", err)
	}
	return roster, nil
}

// sortByInitiative orders participants by initiative total descending,
// ties broken by initiative modifier descending, final ties by creation
// sequence ascending so the order is fully deterministic.
func sortByInitiative(ps []*Participant) {
	sort.SliceStable(ps, func(i, j int) bool {
		a, b := ps[i], ps[j]
		if a.InitiativeTotal != b.InitiativeTotal {
			return a.InitiativeTotal > b.InitiativeTotal
		}
		if a.InitiativeModifier != b.InitiativeModifier {
			return a.InitiativeModifier > b.InitiativeModifier
		}
		return a.Sequence < b.Sequence
	})
}

// participantIn fetches a participant and verifies encounter membership.
func (m *Manager) participantIn(ctx context.Context, encounterID, participantID string) (*Participant, error) {
	p, err := m.store.GetParticipant(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if p.EncounterID != encounterID {
		return nil, domain.NotFound("participant", participantID)
	}
	return p, nil
}
