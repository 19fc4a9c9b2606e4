// Package testutil provides test helpers including container management.
package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/cory-johannsen/gametable/internal/config"
	"github.com/cory-johannsen/gametable/internal/storage/postgres"
)

// PostgresContainer wraps a testcontainers PostgreSQL instance.
type PostgresContainer struct {
	container testcontainers.Container
	Pool      *postgres.Pool
	RawPool   *pgxpool.Pool
	Config    config.DatabaseConfig
}

// NewPostgresContainer starts a PostgreSQL test container and returns
// a connected Pool.
//
// Precondition: Docker must be available.
// Postcondition: Returns a running container with a connected pool,
// or fails the test.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()
	ctx := context.Background()
	start := time.Now()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("starting postgres container: %v [%s]", err, time.Since(start))
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("getting container host: %v", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("getting mapped port: %v", err)
	}

	dbCfg := config.DatabaseConfig{
		Host:            host,
		Port:            mappedPort.Int(),
		User:            "test",
		Password:        "test",
		Name:            "test",
		SSLMode:         "disable",
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: 5 * time.Minute,
	}

	pool, err := postgres.NewPool(ctx, dbCfg)
	if err != nil {
		t.Fatalf("connecting to test postgres: %v [%s]", err, time.Since(start))
	}

	t.Logf("postgres container started [%s]", time.Since(start))

	pc := &PostgresContainer{
		container: container,
		Pool:      pool,
		RawPool:   pool.DB(),
		Config:    dbCfg,
	}

	t.Cleanup(func() {
		pool.Close()
		_ = container.Terminate(ctx)
	})

	return pc
}

// ApplyMigrations runs the schema creation SQL directly for tests.
// This avoids requiring the migrate tool in the test environment.
//
// Precondition: Pool must be connected.
// Postcondition: The combat tables exist in the test database.
func (pc *PostgresContainer) ApplyMigrations(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	start := time.Now()

	schema := `
		CREATE TABLE IF NOT EXISTS encounters (
			id                 UUID         PRIMARY KEY,
			session_id         TEXT         NOT NULL,
			status             VARCHAR(16)  NOT NULL,
			current_round      INT          NOT NULL,
			current_turn_index INT          NOT NULL,
			created_at         TIMESTAMPTZ  NOT NULL,
			ended_at           TIMESTAMPTZ
		);
		CREATE TABLE IF NOT EXISTS participants (
			id                  UUID         PRIMARY KEY,
			encounter_id        UUID         NOT NULL REFERENCES encounters (id),
			character_id        TEXT         NOT NULL DEFAULT '',
			npc_ref             TEXT         NOT NULL DEFAULT '',
			name                TEXT         NOT NULL,
			initiative_total    INT          NOT NULL,
			initiative_modifier INT          NOT NULL,
			turn_order          INT          NOT NULL,
			sequence            INT          NOT NULL,
			is_active           BOOLEAN      NOT NULL,
			resistances         TEXT[]       NOT NULL DEFAULT '{}',
			vulnerabilities     TEXT[]       NOT NULL DEFAULT '{}',
			immunities          TEXT[]       NOT NULL DEFAULT '{}'
		);
		CREATE TABLE IF NOT EXISTS participant_statuses (
			participant_id       UUID        PRIMARY KEY REFERENCES participants (id),
			max_hp               INT         NOT NULL,
			current_hp           INT         NOT NULL,
			temp_hp              INT         NOT NULL,
			death_save_successes INT         NOT NULL,
			death_save_failures  INT         NOT NULL,
			updated_at           TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS damage_log (
			id                    UUID        PRIMARY KEY,
			encounter_id          UUID        NOT NULL REFERENCES encounters (id),
			participant_id        UUID        NOT NULL REFERENCES participants (id),
			amount                INT         NOT NULL,
			damage_type           VARCHAR(16) NOT NULL,
			source_participant_id TEXT        NOT NULL DEFAULT '',
			source_description    TEXT        NOT NULL DEFAULT '',
			round                 INT         NOT NULL,
			created_at            TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS conditions (
			id               UUID        PRIMARY KEY,
			participant_id   UUID        NOT NULL REFERENCES participants (id),
			condition_name   TEXT        NOT NULL,
			duration_kind    VARCHAR(16) NOT NULL,
			duration_value   INT         NOT NULL,
			save_dc          INT         NOT NULL,
			save_ability     VARCHAR(16) NOT NULL DEFAULT '',
			source           TEXT        NOT NULL DEFAULT '',
			applied_at_round INT         NOT NULL,
			expires_at_round INT,
			is_active        BOOLEAN     NOT NULL,
			created_at       TIMESTAMPTZ NOT NULL
		);
	`

	_, err := pc.RawPool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("applying migrations: %v", err)
	}
	t.Logf("migrations applied [%s]", time.Since(start))
}

// NewPool starts a postgres container, applies the schema, and returns
// the raw pool. Cleanup is registered on t.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	pc := NewPostgresContainer(t)
	pc.ApplyMigrations(t)
	return pc.RawPool
}

// DSN returns the connection string for the test database.
func (pc *PostgresContainer) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		pc.Config.User, pc.Config.Password,
		pc.Config.Host, pc.Config.Port,
		pc.Config.Name, pc.Config.SSLMode,
	)
}
