package condition

import (
	"context"
	"time"

	"github.com/cory-johannsen/gametable/internal/game/domain"
)

// DurationKind is how a condition instance's lifetime is measured.
type DurationKind string

const (
	DurationRounds  DurationKind = "rounds"
	DurationMinutes DurationKind = "minutes"
	DurationHours   DurationKind = "hours"
	// DurationUntilSave lasts until a successful saving throw.
	DurationUntilSave DurationKind = "until_save"
	DurationPermanent DurationKind = "permanent"
)

// Valid reports whether k is a known duration kind.
func (k DurationKind) Valid() bool {
	switch k {
	case DurationRounds, DurationMinutes, DurationHours, DurationUntilSave, DurationPermanent:
		return true
	}
	return false
}

// Rounds per minute and hour at 6 seconds per round.
const (
	roundsPerMinute = 10
	roundsPerHour   = 600
)

// expiryRound converts a timed duration into an absolute expiry round, or
// nil for until_save and permanent conditions.
func expiryRound(kind DurationKind, value, appliedAtRound int) *int {
	var delta int
	switch kind {
	case DurationRounds:
		delta = value
	case DurationMinutes:
		delta = value * roundsPerMinute
	case DurationHours:
		delta = value * roundsPerHour
	default:
		return nil
	}
	expiry := appliedAtRound + delta
	return &expiry
}

// Instance is one applied condition on a participant. Instances are
// soft-deactivated (IsActive=false) rather than deleted, preserving
// history.
type Instance struct {
	ID            string
	ParticipantID string
	ConditionName string
	DurationKind  DurationKind
	DurationValue int
	// SaveDC and SaveAbility configure the saving throw for
	// until_save conditions; SaveDC 0 means no save is configured.
	SaveDC         int
	SaveAbility    domain.Ability
	Source         string
	AppliedAtRound int
	// ExpiresAtRound is derived from the duration; nil for until_save
	// and permanent conditions.
	ExpiresAtRound *int
	IsActive       bool
	CreatedAt      time.Time
}

// Store persists condition instances.
type Store interface {
	CreateCondition(ctx context.Context, inst *Instance) error
	GetCondition(ctx context.Context, id string) (*Instance, error)
	// ListConditionsByParticipant returns the participant's instances
	// ordered by creation time ascending. activeOnly filters to
	// IsActive instances.
	ListConditionsByParticipant(ctx context.Context, participantID string, activeOnly bool) ([]*Instance, error)
	// DeactivateCondition soft-deletes an instance.
	DeactivateCondition(ctx context.Context, id string) error
}
