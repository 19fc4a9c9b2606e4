package encounter

import (
	"context"
	"errors"
	"time"
)

// ErrStaleEncounter is returned by EncounterStore.UpdateTurn when the
// encounter's round/turn pointer no longer matches the observed values,
// meaning another writer advanced the encounter concurrently.
var ErrStaleEncounter = errors.New("encounter turn state changed concurrently")

// EncounterStore persists Encounter rows.
type EncounterStore interface {
	CreateEncounter(ctx context.Context, e *Encounter) error
	GetEncounter(ctx context.Context, id string) (*Encounter, error)
	// UpdateTurn writes the new round/turn pointer only if the stored
	// pointer still equals (prevRound, prevTurnIndex). Returns
	// ErrStaleEncounter otherwise.
	UpdateTurn(ctx context.Context, id string, prevRound, prevTurnIndex, newRound, newTurnIndex int) error
	// CompleteEncounter transitions the encounter to StatusCompleted.
	CompleteEncounter(ctx context.Context, id string, endedAt time.Time) error
}

// ParticipantStore persists Participant rows.
type ParticipantStore interface {
	CreateParticipant(ctx context.Context, p *Participant) error
	GetParticipant(ctx context.Context, id string) (*Participant, error)
	// ListParticipants returns all participants of the encounter ordered
	// by Sequence ascending.
	ListParticipants(ctx context.Context, encounterID string) ([]*Participant, error)
	UpdateInitiative(ctx context.Context, id string, total, modifier int) error
	// SetTurnOrder persists the computed turn-order index per participant.
	SetTurnOrder(ctx context.Context, encounterID string, order map[string]int) error
	DeactivateParticipant(ctx context.Context, id string) error
}

// StatusStore persists ParticipantStatus rows (1:1 with Participant).
type StatusStore interface {
	CreateStatus(ctx context.Context, s *ParticipantStatus) error
	GetStatus(ctx context.Context, participantID string) (*ParticipantStatus, error)
	SaveStatus(ctx context.Context, s *ParticipantStatus) error
}

// DamageLogStore persists the append-only damage audit log.
type DamageLogStore interface {
	AppendDamageLog(ctx context.Context, entry *DamageLogEntry) error
	// ListDamageLog returns entries for the encounter ordered by
	// creation time ascending.
	ListDamageLog(ctx context.Context, encounterID string) ([]*DamageLogEntry, error)
}

// Store aggregates the persistence capabilities the encounter services
// need. Production wiring uses the Postgres repositories; tests use the
// in-memory store.
type Store interface {
	EncounterStore
	ParticipantStore
	StatusStore
	DamageLogStore
}
