package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cory-johannsen/gametable/internal/game/condition"
	"github.com/cory-johannsen/gametable/internal/game/domain"
)

var _ condition.Store = (*Store)(nil)

// CreateCondition inserts a condition instance.
func (s *Store) CreateCondition(ctx context.Context, inst *condition.Instance) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO conditions
		 (id, participant_id, condition_name, duration_kind, duration_value,
		  save_dc, save_ability, source, applied_at_round, expires_at_round, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		inst.ID, inst.ParticipantID, inst.ConditionName, string(inst.DurationKind), inst.DurationValue,
		inst.SaveDC, string(inst.SaveAbility), inst.Source, inst.AppliedAtRound, inst.ExpiresAtRound,
		inst.IsActive, inst.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting condition: %w", err)
	}
	return nil
}

const conditionColumns = `id, participant_id, condition_name, duration_kind, duration_value,
	save_dc, save_ability, source, applied_at_round, expires_at_round, is_active, created_at`

func scanCondition(row pgx.Row) (*condition.Instance, error) {
	var (
		inst          condition.Instance
		kind, ability string
	)
	err := row.Scan(&inst.ID, &inst.ParticipantID, &inst.ConditionName, &kind, &inst.DurationValue,
		&inst.SaveDC, &ability, &inst.Source, &inst.AppliedAtRound, &inst.ExpiresAtRound,
		&inst.IsActive, &inst.CreatedAt)
	if err != nil {
		return nil, err
	}
	inst.DurationKind = condition.DurationKind(kind)
	inst.SaveAbility = domain.Ability(ability)
	return &inst, nil
}

// GetCondition retrieves a condition instance by ID.
func (s *Store) GetCondition(ctx context.Context, id string) (*condition.Instance, error) {
	inst, err := scanCondition(s.db.QueryRow(ctx,
		`SELECT `+conditionColumns+` FROM conditions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("condition", id)
		}
		return nil, fmt.Errorf("querying condition: %w", err)
	}
	return inst, nil
}

// ListConditionsByParticipant returns the participant's condition
// instances ordered by creation time ascending.
func (s *Store) ListConditionsByParticipant(ctx context.Context, participantID string, activeOnly bool) ([]*condition.Instance, error) {
	query := `SELECT ` + conditionColumns + ` FROM conditions WHERE participant_id = $1`
	if activeOnly {
		query += ` AND is_active`
	}
	query += ` ORDER BY created_at, id`

	rows, err := s.db.Query(ctx, query, participantID)
	if err != nil {
		return nil, fmt.Errorf("querying conditions: %w", err)
	}
	defer rows.Close()

	var out []*condition.Instance
	for rows.Next() {
		inst, err := scanCondition(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning condition: %w", err)
		}
		out = append(out, inst)
	}
	return out, rows.Err()
}

// DeactivateCondition soft-deletes an instance. History is never
// hard-deleted.
func (s *Store) DeactivateCondition(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE conditions SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivating condition: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("condition", id)
	}
	return nil
}
