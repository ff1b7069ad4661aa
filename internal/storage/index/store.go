// Package index holds the local catalog index: a thin Store adapter over an
// embedded (or server) relational database and the Repository of upserts and
// readers built on top of it.
package index

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

//go:embed schema/sqlite.sql
var sqliteSchema string

//go:embed schema/postgres.sql
var postgresSchema string

// ErrUndefinedParam is returned when a statement parameter has no value.
// Binding a nil interface would silently write NULL; typed nil pointers
// are the way to store an explicit NULL.
var ErrUndefinedParam = errors.New("undefined query parameter")

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

type Config struct {
	Driver string
	Path   string // sqlite file
	DSN    string // postgres connection string
}

// Store runs parameterized statements. Mutations accumulate in a pending
// transaction until Save commits them; Close discards anything unsaved.
type Store struct {
	mu     sync.Mutex
	db     *sqlx.DB
	tx     *sqlx.Tx
	logger *slog.Logger
}

// Open connects to the index. A missing sqlite file is created from the
// schema template; an existing one is used as-is.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*Store, error) {
	logger = logger.With("component", "index", "driver", cfg.Driver)

	switch cfg.Driver {
	case DriverSQLite, "":
		return openSQLite(ctx, cfg.Path, logger)
	case DriverPostgres:
		db, err := sqlx.ConnectContext(ctx, DriverPostgres, cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		if _, err := db.ExecContext(ctx, postgresSchema); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
		return &Store{db: db, logger: logger}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func openSQLite(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	_, statErr := os.Stat(path)
	exists := statErr == nil

	if !exists {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create index dir: %w", err)
		}
	}

	db, err := sqlx.Open(DriverSQLite, path)
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	// The pending transaction holds the only connection.
	db.SetMaxOpenConns(1)

	if !exists {
		if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
			db.Close()
			_ = os.Remove(path)
			return nil, fmt.Errorf("initialize index from schema: %w", err)
		}
		logger.Info("created index", "path", path)
	} else {
		logger.Debug("loaded index", "path", path)
	}

	return &Store{db: db, logger: logger}, nil
}

// Query selects every matching row into dest, a pointer to a slice.
// params is nil, a positional []any, or a named map[string]any.
func (s *Store) Query(ctx context.Context, dest any, query string, params any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, args, err := s.bind(query, params)
	if err != nil {
		return err
	}
	if err := sqlx.SelectContext(ctx, s.queryer(), dest, q, args...); err != nil {
		return fmt.Errorf("query: %w", err)
	}
	return nil
}

// Get selects a single row into dest. It reports false when there is no row.
func (s *Store) Get(ctx context.Context, dest any, query string, params any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, args, err := s.bind(query, params)
	if err != nil {
		return false, err
	}
	err = sqlx.GetContext(ctx, s.queryer(), dest, q, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query: %w", err)
	}
	return true, nil
}

// Run executes a statement or a batch of statements separated by ";".
// Positional params are consumed across the batch in placeholder order;
// named params are bound to every statement.
func (s *Store) Run(ctx context.Context, query string, params any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	statements := splitStatements(query)
	bound := make([]boundStatement, 0, len(statements))

	switch p := params.(type) {
	case []any:
		if err := checkDefined(p); err != nil {
			return err
		}
		offset := 0
		for _, stmt := range statements {
			n := countPlaceholders(stmt)
			if offset+n > len(p) {
				return fmt.Errorf("%w: statement needs %d parameters, %d left", ErrUndefinedParam, n, len(p)-offset)
			}
			bound = append(bound, boundStatement{query: s.db.Rebind(stmt), args: p[offset : offset+n]})
			offset += n
		}
		if offset != len(p) {
			return fmt.Errorf("%w: batch takes %d parameters, got %d", ErrUndefinedParam, offset, len(p))
		}
	default:
		for _, stmt := range statements {
			q, args, err := s.bind(stmt, params)
			if err != nil {
				return err
			}
			bound = append(bound, boundStatement{query: q, args: args})
		}
	}

	if s.tx == nil {
		// The pending transaction outlives the caller's context.
		tx, err := s.db.BeginTxx(context.WithoutCancel(ctx), nil)
		if err != nil {
			return fmt.Errorf("begin: %w", err)
		}
		s.tx = tx
	}

	// A failing batch is undone as a whole. Earlier unsaved runs stay pending.
	if _, err := s.tx.ExecContext(ctx, "SAVEPOINT run_batch"); err != nil {
		return fmt.Errorf("begin batch: %w", err)
	}
	for _, b := range bound {
		if _, err := s.tx.ExecContext(ctx, b.query, b.args...); err != nil {
			s.undoBatch(ctx)
			return fmt.Errorf("exec: %w", err)
		}
	}
	if _, err := s.tx.ExecContext(ctx, "RELEASE SAVEPOINT run_batch"); err != nil {
		s.undoBatch(ctx)
		return fmt.Errorf("end batch: %w", err)
	}
	return nil
}

// undoBatch rolls back to the batch savepoint. If that fails the whole
// pending transaction is dropped so later statements start clean.
func (s *Store) undoBatch(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	_, err := s.tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT run_batch")
	if err == nil {
		_, err = s.tx.ExecContext(ctx, "RELEASE SAVEPOINT run_batch")
	}
	if err != nil {
		s.logger.Warn("discarded unsaved index changes", "error", err)
		_ = s.tx.Rollback()
		s.tx = nil
	}
}

// Save persists everything run since the previous Save.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tx == nil {
		return nil
	}
	err := s.tx.Commit()
	s.tx = nil
	if err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Close discards unsaved mutations and releases the database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tx != nil {
		_ = s.tx.Rollback()
		s.tx = nil
		s.logger.Warn("discarded unsaved index changes")
	}
	return s.db.Close()
}

func (s *Store) queryer() sqlx.QueryerContext {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

type boundStatement struct {
	query string
	args  []any
}

func (s *Store) bind(query string, params any) (string, []any, error) {
	switch p := params.(type) {
	case nil:
		return s.db.Rebind(query), nil, nil
	case []any:
		if err := checkDefined(p); err != nil {
			return "", nil, err
		}
		if n := countPlaceholders(query); n != len(p) {
			return "", nil, fmt.Errorf("%w: statement needs %d parameters, got %d", ErrUndefinedParam, n, len(p))
		}
		return s.db.Rebind(query), p, nil
	case map[string]any:
		q, args, err := sqlx.Named(query, p)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrUndefinedParam, err)
		}
		if err := checkDefined(args); err != nil {
			return "", nil, err
		}
		return s.db.Rebind(q), args, nil
	default:
		return "", nil, fmt.Errorf("unsupported parameter type %T", params)
	}
}

func checkDefined(args []any) error {
	for i, a := range args {
		if a == nil {
			return fmt.Errorf("%w at position %d", ErrUndefinedParam, i)
		}
	}
	return nil
}

// splitStatements splits a batch on semicolons outside quoted literals.
func splitStatements(batch string) []string {
	var (
		out     []string
		current strings.Builder
		quoted  bool
	)
	for _, r := range batch {
		switch {
		case r == '\'':
			quoted = !quoted
		case r == ';' && !quoted:
			if stmt := strings.TrimSpace(current.String()); stmt != "" {
				out = append(out, stmt)
			}
			current.Reset()
			continue
		}
		current.WriteRune(r)
	}
	if stmt := strings.TrimSpace(current.String()); stmt != "" {
		out = append(out, stmt)
	}
	return out
}

func countPlaceholders(stmt string) int {
	var n int
	quoted := false
	for _, r := range stmt {
		switch {
		case r == '\'':
			quoted = !quoted
		case r == '?' && !quoted:
			n++
		}
	}
	return n
}
