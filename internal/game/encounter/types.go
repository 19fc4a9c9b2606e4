// Package encounter implements encounter lifecycle, initiative and turn
// order, and the hit-point/death-save state machine. All mutating
// operations on a single encounter are serialised through a keyed lock;
// separate encounters share no mutable state and run fully concurrently.
package encounter

import (
	"time"

	"github.com/cory-johannsen/gametable/internal/game/domain"
)

// Status is the lifecycle state of an encounter.
type Status string

const (
	// StatusActive means the encounter accepts combat mutations.
	StatusActive Status = "active"
	// StatusCompleted is terminal; all further combat mutations fail.
	StatusCompleted Status = "completed"
)

// Encounter is one combat encounter owned by a game session.
// CurrentRound 0 denotes a surprise round.
type Encounter struct {
	ID               string
	SessionID        string
	Status           Status
	CurrentRound     int
	CurrentTurnIndex int
	CreatedAt        time.Time
	EndedAt          *time.Time
}

// Active reports whether the encounter still accepts combat mutations.
func (e *Encounter) Active() bool { return e.Status == StatusActive }

// Participant is one member of an encounter's roster. Identity fields are
// immutable after creation; TurnOrder is recomputed whenever any
// participant's initiative changes.
type Participant struct {
	ID          string
	EncounterID string
	// CharacterID optionally links to a player character record.
	CharacterID string
	// NPCRef optionally links to an NPC template.
	NPCRef string
	Name   string

	InitiativeTotal    int
	InitiativeModifier int
	// TurnOrder is the participant's index in the computed turn order.
	TurnOrder int
	// Sequence is the creation order within the encounter. It is the
	// documented tertiary initiative tie-break (total desc, modifier
	// desc, sequence asc) so turn order is fully deterministic.
	Sequence int
	// IsActive is false once the participant is removed or flees.
	IsActive bool

	Resistances     domain.DamageTypeSet
	Vulnerabilities domain.DamageTypeSet
	Immunities      domain.DamageTypeSet
}

// ParticipantStatus tracks one participant's hit points and death saves.
//
// Invariants: 0 <= CurrentHP <= MaxHP; TempHP >= 0;
// DeathSaveSuccesses and DeathSaveFailures in [0,3].
// Consciousness is derived: a participant is conscious iff CurrentHP > 0.
type ParticipantStatus struct {
	ParticipantID      string
	MaxHP              int
	CurrentHP          int
	TempHP             int
	DeathSaveSuccesses int
	DeathSaveFailures  int
	UpdatedAt          time.Time
}

// IsConscious reports whether the participant is conscious.
func (s *ParticipantStatus) IsConscious() bool { return s.CurrentHP > 0 }

// Life returns the derived life state for the current counters.
func (s *ParticipantStatus) Life() LifeState {
	return lifeStateOf(s.CurrentHP, s.DeathSaveSuccesses, s.DeathSaveFailures)
}

// DamageLogEntry is one append-only audit record of damage applied to a
// participant. Entries are never mutated or deleted, even after the owning
// encounter ends.
type DamageLogEntry struct {
	ID                  string
	EncounterID         string
	ParticipantID       string
	Amount              int
	DamageType          domain.DamageType
	SourceParticipantID string
	SourceDescription   string
	Round               int
	CreatedAt           time.Time
}

// ParticipantInput describes a roster member at creation time.
type ParticipantInput struct {
	CharacterID        string
	NPCRef             string
	Name               string
	MaxHP              int
	CurrentHP          *int // nil = start at MaxHP
	InitiativeModifier int
	// Initiative, when non-nil, is a pre-rolled initiative total.
	Initiative *int

	Resistances     []domain.DamageType
	Vulnerabilities []domain.DamageType
	Immunities      []domain.DamageType
}

// CombatState is the full snapshot returned by StartCombat/GetCombatState.
type CombatState struct {
	Encounter    *Encounter
	Participants []*Participant
	Statuses     map[string]*ParticipantStatus
}

// InitiativeRoll is the result of rolling initiative for one participant.
type InitiativeRoll struct {
	ParticipantID string
	Roll          int
	Modifier      int
	Total         int
}

// TurnAdvance describes one advanceTurn transition.
type TurnAdvance struct {
	PreviousParticipant *Participant
	CurrentParticipant  *Participant
	// NewRound is true when the turn pointer wrapped and the round
	// counter was incremented.
	NewRound    bool
	RoundNumber int
}
