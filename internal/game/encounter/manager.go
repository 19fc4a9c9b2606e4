package encounter

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/gametable/internal/game/dice"
	"github.com/cory-johannsen/gametable/internal/game/domain"
)

// ErrEncounterNotActive is returned when a combat mutation targets an
// encounter that has already completed.
var ErrEncounterNotActive = domain.NotPermitted("encounter is not active")

// ErrNoParticipants is returned by AdvanceTurn when the active roster is
// empty.
var ErrNoParticipants = domain.NotPermitted("encounter has no active participants")

// Manager orchestrates encounter lifecycle, roster, and turn order.
// All mutating methods serialise on the per-encounter keyed lock.
type Manager struct {
	store  Store
	src    dice.Source
	locks  *KeyedLock
	logger *zap.Logger
	now    func() time.Time
}

// NewManager creates a Manager.
//
// Precondition: store, src, locks, and logger must be non-nil.
func NewManager(store Store, src dice.Source, locks *KeyedLock, logger *zap.Logger) *Manager {
	return &Manager{
		store:  store,
		src:    src,
		locks:  locks,
		logger: logger,
		now:    time.Now,
	}
}

// StartCombat creates a new encounter for sessionID with the given roster.
// A surprise round starts the encounter at round 0; otherwise round 1.
// The turn pointer starts at index 0.
//
// Postcondition: Returns the full combat state with statuses initialised
// and turn order computed.
func (m *Manager) StartCombat(ctx context.Context, sessionID string, inputs []ParticipantInput, surpriseRound bool) (*CombatState, error) {
	if sessionID == "" {
		return nil, domain.Invalid("sessionId", "must not be empty")
	}
	for i, in := range inputs {
		if in.Name == "" {
			return nil, domain.Invalid("participants", "participant %d has no name", i)
		}
		if in.MaxHP <= 0 {
			return nil, domain.Invalid("participants", "participant %q maxHp must be > 0", in.Name)
		}
	}

	e := &Encounter{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Status:    StatusActive,
		CreatedAt: m.now(),
	}
	if !surpriseRound {
		e.CurrentRound = 1
	}
	if err := m.store.CreateEncounter(ctx, e); err != nil {
		return nil, fmt.Errorf("creating encounter: %w", err)
	}

	statuses := make(map[string]*ParticipantStatus, len(inputs))
	for i, in := range inputs {
		p := newParticipant(e.ID, i, in)
		if err := m.store.CreateParticipant(ctx, p); err != nil {
			return nil, fmt.Errorf("creating participant %q: %w", in.Name, err)
		}
		st := newStatus(p.ID, in, m.now())
		if err := m.store.CreateStatus(ctx, st); err != nil {
			return nil, fmt.Errorf("creating status for %q: %w", in.Name, err)
		}
		statuses[p.ID] = st
	}

	ordered, err := m.recomputeTurnOrder(ctx, e.ID)
	if err != nil {
		return nil, err
	}

	m.logger.Info("combat started",
		zap.String("encounter_id", e.ID),
		zap.String("session_id", sessionID),
		zap.Int("participants", len(inputs)),
		zap.Bool("surprise_round", surpriseRound),
	)
	return &CombatState{Encounter: e, Participants: ordered, Statuses: statuses}, nil
}

// AddParticipant adds one participant to an active encounter and
// recomputes the turn order.
func (m *Manager) AddParticipant(ctx context.Context, encounterID string, in ParticipantInput) (*Participant, error) {
	if in.Name == "" {
		return nil, domain.Invalid("name", "must not be empty")
	}
	if in.MaxHP <= 0 {
		return nil, domain.Invalid("maxHp", "must be > 0, got %d", in.MaxHP)
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

	existing, err := m.store.ListParticipants(ctx, encounterID)
	if err != nil {
		return nil, fmt.Errorf("listing participants: %w", err)
	}

	p := newParticipant(encounterID, len(existing), in)
	if err := m.store.CreateParticipant(ctx, p); err != nil {
		return nil, fmt.Errorf("creating participant: %w", err)
	}
	if err := m.store.CreateStatus(ctx, newStatus(p.ID, in, m.now())); err != nil {
		return nil, fmt.Errorf("creating status: %w", err)
	}
	if _, err := m.recomputeTurnOrder(ctx, encounterID); err != nil {
		return nil, err
	}

	m.logger.Info("participant added",
		zap.String("encounter_id", encounterID),
		zap.String("participant_id", p.ID),
		zap.String("name", p.Name),
	)
	return p, nil
}

// RemoveParticipant deactivates a participant (removed or fled) and
// recomputes the turn order. The row is kept for the historical record.
func (m *Manager) RemoveParticipant(ctx context.Context, participantID string) error {
	p, err := m.store.GetParticipant(ctx, participantID)
	if err != nil {
		return err
	}

	unlock := m.locks.Lock(p.EncounterID)
	defer unlock()

	if err := m.store.DeactivateParticipant(ctx, participantID); err != nil {
		return err
	}
	_, err = m.recomputeTurnOrder(ctx, p.EncounterID)
	return err
}

// EndCombat transitions the encounter to completed. Completed is terminal:
// every further combat mutation fails with ErrEncounterNotActive.
func (m *Manager) EndCombat(ctx context.Context, encounterID string) (*Encounter, error) {
	unlock := m.locks.Lock(encounterID)
	defer unlock()

	e, err := m.store.GetEncounter(ctx, encounterID)
	if err != nil {
		return nil, err
	}
	if !e.Active() {
		return nil, ErrEncounterNotActive
	}

	endedAt := m.now()
	if err := m.store.CompleteEncounter(ctx, encounterID, endedAt); err != nil {
		return nil, fmt.Errorf("completing encounter: %w", err)
	}
	e.Status = StatusCompleted
	e.EndedAt = &endedAt

	m.logger.Info("combat ended",
		zap.String("encounter_id", encounterID),
		zap.Int("rounds", e.CurrentRound),
	)
	return e, nil
}

// GetCombatState returns the encounter, its roster, and all statuses.
func (m *Manager) GetCombatState(ctx context.Context, encounterID string) (*CombatState, error) {
	e, err := m.store.GetEncounter(ctx, encounterID)
	if err != nil {
		return nil, err
	}
	ps, err := m.store.ListParticipants(ctx, encounterID)
	if err != nil {
		return nil, fmt.Errorf("listing participants: %w", err)
	}
	statuses := make(map[string]*ParticipantStatus, len(ps))
	for _, p := range ps {
		st, err := m.store.GetStatus(ctx, p.ID)
		if err != nil {
			if domain.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		statuses[p.ID] = st
	}
	return &CombatState{Encounter: e, Participants: ps, Statuses: statuses}, nil
}

// GetCurrentTurn returns the participant whose turn it currently is.
func (m *Manager) GetCurrentTurn(ctx context.Context, encounterID string) (*Participant, error) {
	e, err := m.store.GetEncounter(ctx, encounterID)
	if err != nil {
		return nil, err
	}
	roster, err := m.activeRoster(ctx, encounterID)
	if err != nil {
		return nil, err
	}
	if len(roster) == 0 {
		return nil, ErrNoParticipants
	}
	return roster[e.CurrentTurnIndex%len(roster)], nil
}

// newParticipant builds a roster member from its input.
func newParticipant(encounterID string, sequence int, in ParticipantInput) *Participant {
	p := &Participant{
		ID:                 uuid.NewString(),
		EncounterID:        encounterID,
		CharacterID:        in.CharacterID,
		NPCRef:             in.NPCRef,
		Name:               in.Name,
		InitiativeModifier: in.InitiativeModifier,
		Sequence:           sequence,
		IsActive:           true,
		Resistances:        domain.NewDamageTypeSet(in.Resistances...),
		Vulnerabilities:    domain.NewDamageTypeSet(in.Vulnerabilities...),
		Immunities:         domain.NewDamageTypeSet(in.Immunities...),
	}
	if in.Initiative != nil {
		p.InitiativeTotal = *in.Initiative
	}
	return p
}

// newStatus builds the initial ParticipantStatus for a roster member.
func newStatus(participantID string, in ParticipantInput, now time.Time) *ParticipantStatus {
	current := in.MaxHP
	if in.CurrentHP != nil {
		current = clamp(*in.CurrentHP, 0, in.MaxHP)
	}
	return &ParticipantStatus{
		ParticipantID: participantID,
		MaxHP:         in.MaxHP,
		CurrentHP:     current,
		UpdatedAt:     now,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
