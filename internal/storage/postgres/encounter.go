package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/gametable/internal/game/domain"
	"github.com/cory-johannsen/gametable/internal/game/encounter"
)

// Store provides PostgreSQL persistence for encounters, participants,
// statuses, damage logs, and condition instances. It implements both the
// encounter and condition repository interfaces.
type Store struct {
	db *pgxpool.Pool
}

// NewStore creates a Store backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

var _ encounter.Store = (*Store)(nil)

// CreateEncounter inserts a new encounter row.
func (s *Store) CreateEncounter(ctx context.Context, e *encounter.Encounter) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO encounters (id, session_id, status, current_round, current_turn_index, created_at, ended_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.SessionID, string(e.Status), e.CurrentRound, e.CurrentTurnIndex, e.CreatedAt, e.EndedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting encounter: %w", err)
	}
	return nil
}

// GetEncounter retrieves an encounter by ID.
//
// Postcondition: Returns the encounter or a NotFoundError.
func (s *Store) GetEncounter(ctx context.Context, id string) (*encounter.Encounter, error) {
	var (
		e      encounter.Encounter
		status string
	)
	err := s.db.QueryRow(ctx,
		`SELECT id, session_id, status, current_round, current_turn_index, created_at, ended_at
		 FROM encounters WHERE id = $1`,
		id,
	).Scan(&e.ID, &e.SessionID, &status, &e.CurrentRound, &e.CurrentTurnIndex, &e.CreatedAt, &e.EndedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("encounter", id)
		}
		return nil, fmt.Errorf("querying encounter: %w", err)
	}
	e.Status = encounter.Status(status)
	return &e, nil
}

// UpdateTurn applies the optimistic round/turn update: the row is only
// written when the stored pointer still matches what the caller observed.
//
// Postcondition: Returns ErrStaleEncounter when a concurrent writer moved
// the pointer first.
func (s *Store) UpdateTurn(ctx context.Context, id string, prevRound, prevTurnIndex, newRound, newTurnIndex int) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE encounters
		 SET current_round = $1, current_turn_index = $2
		 WHERE id = $3 AND current_round = $4 AND current_turn_index = $5`,
		newRound, newTurnIndex, id, prevRound, prevTurnIndex,
	)
	if err != nil {
		return fmt.Errorf("updating turn: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Distinguish a moved pointer from a missing row.
		var exists bool
		if err := s.db.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM encounters WHERE id = $1)`, id,
		).Scan(&exists); err != nil {
			return fmt.Errorf("checking encounter existence: %w", err)
		}
		if !exists {
			return domain.NotFound("encounter", id)
		}
		return encounter.ErrStaleEncounter
	}
	return nil
}

// CompleteEncounter transitions the encounter to completed.
func (s *Store) CompleteEncounter(ctx context.Context, id string, endedAt time.Time) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE encounters SET status = $1, ended_at = $2 WHERE id = $3`,
		string(encounter.StatusCompleted), endedAt, id,
	)
	if err != nil {
		return fmt.Errorf("completing encounter: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("encounter", id)
	}
	return nil
}

// CreateParticipant inserts a new participant row.
func (s *Store) CreateParticipant(ctx context.Context, p *encounter.Participant) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO participants
		 (id, encounter_id, character_id, npc_ref, name,
		  initiative_total, initiative_modifier, turn_order, sequence, is_active,
		  resistances, vulnerabilities, immunities)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.ID, p.EncounterID, p.CharacterID, p.NPCRef, p.Name,
		p.InitiativeTotal, p.InitiativeModifier, p.TurnOrder, p.Sequence, p.IsActive,
		setToStrings(p.Resistances), setToStrings(p.Vulnerabilities), setToStrings(p.Immunities),
	)
	if err != nil {
		return fmt.Errorf("inserting participant: %w", err)
	}
	return nil
}

const participantColumns = `id, encounter_id, character_id, npc_ref, name,
	initiative_total, initiative_modifier, turn_order, sequence, is_active,
	resistances, vulnerabilities, immunities`

func scanParticipant(row pgx.Row) (*encounter.Participant, error) {
	var (
		p                    encounter.Participant
		resist, vuln, immune []string
	)
	err := row.Scan(&p.ID, &p.EncounterID, &p.CharacterID, &p.NPCRef, &p.Name,
		&p.InitiativeTotal, &p.InitiativeModifier, &p.TurnOrder, &p.Sequence, &p.IsActive,
		&resist, &vuln, &immune)
	if err != nil {
		return nil, err
	}
	p.Resistances = stringsToSet(resist)
	p.Vulnerabilities = stringsToSet(vuln)
	p.Immunities = stringsToSet(immune)
	return &p, nil
}

// GetParticipant retrieves a participant by ID.
func (s *Store) GetParticipant(ctx context.Context, id string) (*encounter.Participant, error) {
	p, err := scanParticipant(s.db.QueryRow(ctx,
		`SELECT `+participantColumns+` FROM participants WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("participant", id)
		}
		return nil, fmt.Errorf("querying participant: %w", err)
	}
	return p, nil
}

// ListParticipants returns the encounter's participants ordered by
// creation sequence.
func (s *Store) ListParticipants(ctx context.Context, encounterID string) ([]*encounter.Participant, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+participantColumns+` FROM participants
		 WHERE encounter_id = $1 ORDER BY sequence`, encounterID)
	if err != nil {
		return nil, fmt.Errorf("querying participants: %w", err)
	}
	defer rows.Close()

	var out []*encounter.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning participant: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// UpdateInitiative sets a participant's initiative total and modifier.
func (s *Store) UpdateInitiative(ctx context.Context, id string, total, modifier int) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE participants SET initiative_total = $1, initiative_modifier = $2 WHERE id = $3`,
		total, modifier, id,
	)
	if err != nil {
		return fmt.Errorf("updating initiative: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("participant", id)
	}
	return nil
}

// SetTurnOrder persists computed turn-order indices in one transaction.
func (s *Store) SetTurnOrder(ctx context.Context, encounterID string, order map[string]int) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning turn-order transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	for id, idx := range order {
		tag, err := tx.Exec(ctx,
			`UPDATE participants SET turn_order = $1 WHERE id = $2 AND encounter_id = $3`,
			idx, id, encounterID,
		)
		if err != nil {
			return fmt.Errorf("updating turn order: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.NotFound("participant", id)
		}
	}
	return tx.Commit(ctx)
}

// DeactivateParticipant marks a participant inactive.
func (s *Store) DeactivateParticipant(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE participants SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivating participant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("participant", id)
	}
	return nil
}

// CreateStatus inserts a participant's status row.
func (s *Store) CreateStatus(ctx context.Context, st *encounter.ParticipantStatus) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO participant_statuses
		 (participant_id, max_hp, current_hp, temp_hp, death_save_successes, death_save_failures, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		st.ParticipantID, st.MaxHP, st.CurrentHP, st.TempHP,
		st.DeathSaveSuccesses, st.DeathSaveFailures, st.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting status: %w", err)
	}
	return nil
}

// GetStatus retrieves a participant's status row.
func (s *Store) GetStatus(ctx context.Context, participantID string) (*encounter.ParticipantStatus, error) {
	var st encounter.ParticipantStatus
	err := s.db.QueryRow(ctx,
		`SELECT participant_id, max_hp, current_hp, temp_hp, death_save_successes, death_save_failures, updated_at
		 FROM participant_statuses WHERE participant_id = $1`,
		participantID,
	).Scan(&st.ParticipantID, &st.MaxHP, &st.CurrentHP, &st.TempHP,
		&st.DeathSaveSuccesses, &st.DeathSaveFailures, &st.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("participant status", participantID)
		}
		return nil, fmt.Errorf("querying status: %w", err)
	}
	return &st, nil
}

// SaveStatus overwrites the status row.
func (s *Store) SaveStatus(ctx context.Context, st *encounter.ParticipantStatus) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE participant_statuses
		 SET max_hp = $1, current_hp = $2, temp_hp = $3,
		     death_save_successes = $4, death_save_failures = $5, updated_at = $6
		 WHERE participant_id = $7`,
		st.MaxHP, st.CurrentHP, st.TempHP,
		st.DeathSaveSuccesses, st.DeathSaveFailures, st.UpdatedAt,
		st.ParticipantID,
	)
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("participant status", st.ParticipantID)
	}
	return nil
}

// AppendDamageLog appends an immutable damage-log entry.
func (s *Store) AppendDamageLog(ctx context.Context, entry *encounter.DamageLogEntry) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO damage_log
		 (id, encounter_id, participant_id, amount, damage_type,
		  source_participant_id, source_description, round, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		entry.ID, entry.EncounterID, entry.ParticipantID, entry.Amount, string(entry.DamageType),
		entry.SourceParticipantID, entry.SourceDescription, entry.Round, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting damage log entry: %w", err)
	}
	return nil
}

// ListDamageLog returns the encounter's damage log in append order.
func (s *Store) ListDamageLog(ctx context.Context, encounterID string) ([]*encounter.DamageLogEntry, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, encounter_id, participant_id, amount, damage_type,
		        source_participant_id, source_description, round, created_at
		 FROM damage_log WHERE encounter_id = $1 ORDER BY created_at, id`,
		encounterID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying damage log: %w", err)
	}
	defer rows.Close()

	var out []*encounter.DamageLogEntry
	for rows.Next() {
		var (
			e  encounter.DamageLogEntry
			dt string
		)
		if err := rows.Scan(&e.ID, &e.EncounterID, &e.ParticipantID, &e.Amount, &dt,
			&e.SourceParticipantID, &e.SourceDescription, &e.Round, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning damage log entry: %w", err)
		}
		e.DamageType = domain.DamageType(dt)
		out = append(out, &e)
	}
	return out, rows.Err()
}

func setToStrings(set domain.DamageTypeSet) []string {
	out := make([]string, 0, len(set))
	for _, t := range set.Types() {
		out = append(out, string(t))
	}
	return out
}

func stringsToSet(vals []string) domain.DamageTypeSet {
	types := make([]domain.DamageType, len(vals))
	for i, v := range vals {
		types[i] = domain.DamageType(v)
	}
	return domain.NewDamageTypeSet(types...)
}
