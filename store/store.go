// Package store persists solve runs and their per-interval results in SQLite.
//
// Schema:
//
//	runs    (id, created_at, function, derivative, method, start, end, step,
//	         tolerance, max_iterations)
//	results (run_id, position, lo, hi, root, iterations, status)
//
// A NaN root (failure without an estimate) is stored as NULL and read back as NaN.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/katalvlaran/lvroot/roots"
)

// ErrRunNotFound is returned by Run for an unknown id.
var ErrRunNotFound = errors.New("store: run not found")

// Run is one scan+refine invocation and its results.
type Run struct {
	ID         string
	CreatedAt  time.Time
	Function   string
	Derivative string
	Method     roots.Method
	Start      float64
	End        float64
	Step       float64
	Config     roots.Config
	Results    []roots.Result
}

// NewRun returns a Run with a fresh id and the current time.
func NewRun() Run {
	return Run{ID: uuid.NewString(), CreatedAt: time.Now().UTC()}
}

// Summary counts results per status.
func (r Run) Summary() map[roots.Status]int {
	out := make(map[roots.Status]int)
	for _, res := range r.Results {
		out[res.Status]++
	}

	return out
}

// Store is a SQLite-backed run store. Safe for concurrent use.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (or creates) the database at path and ensures the schema.
// Use ":memory:" for a throwaway store.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("db path cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite only supports a single writer

	s := &Store{db: db, logger: logger}
	if err := s.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	const schema = `
	PRAGMA foreign_keys = ON;

	CREATE TABLE IF NOT EXISTS runs (
		id             TEXT PRIMARY KEY,
		created_at     INTEGER NOT NULL,
		function       TEXT NOT NULL,
		derivative     TEXT NOT NULL DEFAULT '',
		method         TEXT NOT NULL,
		start          REAL NOT NULL,
		"end"          REAL NOT NULL,
		step           REAL NOT NULL,
		tolerance      REAL NOT NULL,
		max_iterations INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS results (
		run_id     TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		position   INTEGER NOT NULL,
		lo         REAL NOT NULL,
		hi         REAL NOT NULL,
		root       REAL,
		iterations INTEGER NOT NULL,
		status     TEXT NOT NULL,
		PRIMARY KEY (run_id, position)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
	`
	_, err := s.db.ExecContext(ctx, schema)

	return err
}

// SaveRun stores run and its results in one transaction. An empty ID is
// replaced with a fresh uuid; the stored id is returned.
func (s *Store) SaveRun(ctx context.Context, run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, function, derivative, method, start, "end", step, tolerance, max_iterations)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt.UnixNano(), run.Function, run.Derivative, run.Method.String(),
		run.Start, run.End, run.Step, run.Config.Tolerance, run.Config.MaxIterations,
	)
	if err != nil {
		return "", fmt.Errorf("insert run %s: %w", run.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO results (run_id, position, lo, hi, root, iterations, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare result insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range run.Results {
		root := sql.NullFloat64{Float64: r.Root, Valid: !math.IsNaN(r.Root)}
		if _, err := stmt.ExecContext(ctx, run.ID, i, r.Interval.Lo, r.Interval.Hi, root, r.Iterations, r.Status.String()); err != nil {
			return "", fmt.Errorf("insert result %d of run %s: %w", i, run.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit run %s: %w", run.ID, err)
	}
	s.logger.Debug("run stored", "run_id", run.ID, "results", len(run.Results))

	return run.ID, nil
}

// Run loads one run with its results in their original order.
func (s *Store) Run(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, function, derivative, method, start, "end", step, tolerance, max_iterations
		FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("load run %s: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT lo, hi, root, iterations, status
		FROM results WHERE run_id = ? ORDER BY position`, id)
	if err != nil {
		return Run{}, fmt.Errorf("load results of run %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			r      = roots.Result{Method: run.Method}
			root   sql.NullFloat64
			status string
		)
		if err := rows.Scan(&r.Interval.Lo, &r.Interval.Hi, &root, &r.Iterations, &status); err != nil {
			return Run{}, fmt.Errorf("scan result of run %s: %w", id, err)
		}
		r.Root = math.NaN()
		if root.Valid {
			r.Root = root.Float64
		}
		if r.Status, err = parseStatus(status); err != nil {
			return Run{}, err
		}
		run.Results = append(run.Results, r)
	}

	return run, rows.Err()
}

// ListRuns returns the most recent runs first, without their results.
// limit <= 0 means no limit.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, function, derivative, method, start, "end", step, tolerance, max_iterations
		FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// DeleteRun removes a run and, through the foreign key, its results.
func (s *Store) DeleteRun(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete run %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}

	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var (
		run     Run
		created int64
		method  string
	)
	err := row.Scan(&run.ID, &created, &run.Function, &run.Derivative, &method,
		&run.Start, &run.End, &run.Step, &run.Config.Tolerance, &run.Config.MaxIterations)
	if err != nil {
		return Run{}, err
	}
	run.CreatedAt = time.Unix(0, created).UTC()
	if run.Method, err = roots.ParseMethod(method); err != nil {
		return Run{}, err
	}

	return run, nil
}

// parseStatus is the inverse of roots.Status.String.
func parseStatus(s string) (roots.Status, error) {
	for st := roots.Converged; st <= roots.NonConvergence; st++ {
		if st.String() == s {
			return st, nil
		}
	}

	return 0, fmt.Errorf("store: unknown status %q", s)
}
