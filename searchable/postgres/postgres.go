package postgres

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/nonibytes/searchable/searchable"
	"github.com/nonibytes/searchable/searchable/ddl"
)

// Connect opens a database/sql handle over the pgx driver and verifies
// the connection
func Connect(ctx context.Context, dsn string) (*sql.DB, error) {
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, searchable.Wrap(searchable.ErrIO, "parse dsn", err)
	}

	db := stdlib.OpenDB(*cfg)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, searchable.Wrap(searchable.ErrIO, "ping database", err)
	}
	return db, nil
}

// HookRunner collects registered DDL per table and executes it when the
// caller signals the two lifecycle points: table created and table
// dropped. Statements run in registration order. It implements
// searchable.Registrar.
type HookRunner struct {
	afterCreate map[string][]string
	afterDrop   map[string][]string
}

// NewHookRunner returns an empty runner
func NewHookRunner() *HookRunner {
	return &HookRunner{
		afterCreate: make(map[string][]string),
		afterDrop:   make(map[string][]string),
	}
}

// Register stores one statement for the table under the given phase
func (r *HookRunner) Register(table string, phase ddl.Phase, statement string) {
	switch phase {
	case ddl.AfterCreate:
		r.afterCreate[table] = append(r.afterCreate[table], statement)
	case ddl.AfterDrop:
		r.afterDrop[table] = append(r.afterDrop[table], statement)
	}
}

// Statements returns the registered statements for a table and phase,
// in registration order
func (r *HookRunner) Statements(table string, phase ddl.Phase) []string {
	if phase == ddl.AfterDrop {
		return r.afterDrop[table]
	}
	return r.afterCreate[table]
}

// TableCreated executes the after-create statements registered for the
// table. The caller owns transactional boundaries; the runner executes
// statements one by one on the handle it is given.
func (r *HookRunner) TableCreated(ctx context.Context, db *sql.DB, table string) error {
	return r.exec(ctx, db, r.afterCreate[table])
}

// TableDropped executes the after-drop statements registered for the
// table
func (r *HookRunner) TableDropped(ctx context.Context, db *sql.DB, table string) error {
	return r.exec(ctx, db, r.afterDrop[table])
}

func (r *HookRunner) exec(ctx context.Context, db *sql.DB, stmts []string) error {
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return searchable.Wrap(searchable.ErrSQL, "execute ddl", err)
		}
	}
	return nil
}

var _ searchable.Registrar = (*HookRunner)(nil)
