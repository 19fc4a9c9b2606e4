// Package memory provides an in-memory implementation of the encounter
// and condition repositories. It backs unit tests and single-process
// deployments; production wiring uses the postgres package.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cory-johannsen/gametable/internal/game/condition"
	"github.com/cory-johannsen/gametable/internal/game/domain"
	"github.com/cory-johannsen/gametable/internal/game/encounter"
)

// Store holds all rows in process memory. All methods are safe for
// concurrent use; value copies are returned so callers cannot mutate
// stored state without going back through the store.
type Store struct {
	mu           sync.RWMutex
	encounters   map[string]*encounter.Encounter
	participants map[string]*encounter.Participant
	statuses     map[string]*encounter.ParticipantStatus
	damageLog    map[string][]*encounter.DamageLogEntry // keyed by encounter ID
	conditions   map[string]*condition.Instance
	// conditionSeq preserves insertion order per participant.
	conditionSeq map[string][]string
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		encounters:   make(map[string]*encounter.Encounter),
		participants: make(map[string]*encounter.Participant),
		statuses:     make(map[string]*encounter.ParticipantStatus),
		damageLog:    make(map[string][]*encounter.DamageLogEntry),
		conditions:   make(map[string]*condition.Instance),
		conditionSeq: make(map[string][]string),
	}
}

var (
	_ encounter.Store = (*Store)(nil)
	_ condition.Store = (*Store)(nil)
)

// CreateEncounter stores a new encounter row.
func (s *Store) CreateEncounter(_ context.Context, e *encounter.Encounter) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *e
	s.encounters[e.ID] = &cp
	return nil
}

// GetEncounter returns the encounter or a NotFoundError.
func (s *Store) GetEncounter(_ context.Context, id string) (*encounter.Encounter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.encounters[id]
	if !ok {
		return nil, domain.NotFound("encounter", id)
	}
	cp := *e
	return &cp, nil
}

// UpdateTurn applies the optimistic round/turn update.
func (s *Store) UpdateTurn(_ context.Context, id string, prevRound, prevTurnIndex, newRound, newTurnIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.encounters[id]
	if !ok {
		return domain.NotFound("encounter", id)
	}
	if e.CurrentRound != prevRound || e.CurrentTurnIndex != prevTurnIndex {
		return encounter.ErrStaleEncounter
	}
	e.CurrentRound = newRound
	e.CurrentTurnIndex = newTurnIndex
	return nil
}

// CompleteEncounter transitions the encounter to completed.
func (s *Store) CompleteEncounter(_ context.Context, id string, endedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.encounters[id]
	if !ok {
		return domain.NotFound("encounter", id)
	}
	e.Status = encounter.StatusCompleted
	e.EndedAt = &endedAt
	return nil
}

// CreateParticipant stores a new participant row.
func (s *Store) CreateParticipant(_ context.Context, p *encounter.Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.participants[p.ID] = &cp
	return nil
}

// GetParticipant returns the participant or a NotFoundError.
func (s *Store) GetParticipant(_ context.Context, id string) (*encounter.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.participants[id]
	if !ok {
		return nil, domain.NotFound("participant", id)
	}
	cp := *p
	return &cp, nil
}

// ListParticipants returns the encounter's participants ordered by
// creation sequence.
func (s *Store) ListParticipants(_ context.Context, encounterID string) ([]*encounter.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*encounter.Participant
	for _, p := range s.participants {
		if p.EncounterID == encounterID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sequence < out[j].Sequence })
	return out, nil
}

// UpdateInitiative sets a participant's initiative total and modifier.
func (s *Store) UpdateInitiative(_ context.Context, id string, total, modifier int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.participants[id]
	if !ok {
		return domain.NotFound("participant", id)
	}
	p.InitiativeTotal = total
	p.InitiativeModifier = modifier
	return nil
}

// SetTurnOrder persists computed turn-order indices.
func (s *Store) SetTurnOrder(_ context.Context, encounterID string, order map[string]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, idx := range order {
		p, ok := s.participants[id]
		if !ok || p.EncounterID != encounterID {
			return domain.NotFound("participant", id)
		}
		p.TurnOrder = idx
	}
	return nil
}

// DeactivateParticipant marks a participant inactive.
func (s *Store) DeactivateParticipant(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.participants[id]
	if !ok {
		return domain.NotFound("participant", id)
	}
	p.IsActive = false
	return nil
}

// CreateStatus stores a participant's status row.
func (s *Store) CreateStatus(_ context.Context, st *encounter.ParticipantStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *st
	s.statuses[st.ParticipantID] = &cp
	return nil
}

// GetStatus returns the status row or a NotFoundError.
func (s *Store) GetStatus(_ context.Context, participantID string) (*encounter.ParticipantStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.statuses[participantID]
	if !ok {
		return nil, domain.NotFound("participant status", participantID)
	}
	cp := *st
	return &cp, nil
}

// SaveStatus overwrites the status row.
func (s *Store) SaveStatus(_ context.Context, st *encounter.ParticipantStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.statuses[st.ParticipantID]; !ok {
		return domain.NotFound("participant status", st.ParticipantID)
	}
	cp := *st
	s.statuses[st.ParticipantID] = &cp
	return nil
}

// AppendDamageLog appends an immutable damage-log entry.
func (s *Store) AppendDamageLog(_ context.Context, entry *encounter.DamageLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *entry
	s.damageLog[entry.EncounterID] = append(s.damageLog[entry.EncounterID], &cp)
	return nil
}

// ListDamageLog returns the encounter's damage log in append order.
func (s *Store) ListDamageLog(_ context.Context, encounterID string) ([]*encounter.DamageLogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.damageLog[encounterID]
	out := make([]*encounter.DamageLogEntry, len(entries))
	for i, e := range entries {
		cp := *e
		out[i] = &cp
	}
	return out, nil
}

// CreateCondition stores a condition instance.
func (s *Store) CreateCondition(_ context.Context, inst *condition.Instance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *inst
	if inst.ExpiresAtRound != nil {
		v := *inst.ExpiresAtRound
		cp.ExpiresAtRound = &v
	}
	s.conditions[inst.ID] = &cp
	s.conditionSeq[inst.ParticipantID] = append(s.conditionSeq[inst.ParticipantID], inst.ID)
	return nil
}

// GetCondition returns the instance or a NotFoundError.
func (s *Store) GetCondition(_ context.Context, id string) (*condition.Instance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inst, ok := s.conditions[id]
	if !ok {
		return nil, domain.NotFound("condition", id)
	}
	cp := copyInstance(inst)
	return cp, nil
}

// ListConditionsByParticipant returns instances in creation order.
func (s *Store) ListConditionsByParticipant(_ context.Context, participantID string, activeOnly bool) ([]*condition.Instance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*condition.Instance
	for _, id := range s.conditionSeq[participantID] {
		inst := s.conditions[id]
		if activeOnly && !inst.IsActive {
			continue
		}
		out = append(out, copyInstance(inst))
	}
	return out, nil
}

// DeactivateCondition soft-deletes an instance.
func (s *Store) DeactivateCondition(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	inst, ok := s.conditions[id]
	if !ok {
		return domain.NotFound("condition", id)
	}
	inst.IsActive = false
	return nil
}

func copyInstance(inst *condition.Instance) *condition.Instance {
	cp := *inst
	if inst.ExpiresAtRound != nil {
		v := *inst.ExpiresAtRound
		cp.ExpiresAtRound = &v
	}
	return &cp
}
