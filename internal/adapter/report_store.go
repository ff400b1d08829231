package adapter

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	m "github.com/mouse-blink/tptester/internal/model"
)

// ReportStore persists suite runs and their per-case outcomes.
type ReportStore interface {
	// SaveRun stores the run and its outcomes and returns the new run ID.
	SaveRun(run m.RunRecord, summary m.SuiteSummary) (string, error)
	// ListRuns returns up to limit runs, newest first. limit <= 0 means all.
	ListRuns(limit int) ([]m.RunRecord, error)
	// LoadOutcomes returns the outcomes of a run in execution order.
	LoadOutcomes(runID string) ([]m.TestOutcome, error)
	Close() error
}

const reportSchema = `
CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,
    program TEXT NOT NULL,
    wrapper TEXT,
    started_at TEXT NOT NULL,
    finished_at TEXT NOT NULL,
    total INTEGER NOT NULL DEFAULT 0,
    passed INTEGER NOT NULL DEFAULT 0,
    skipped INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS case_results (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    test_index TEXT NOT NULL,
    input TEXT,
    status TEXT NOT NULL,
    exit_code INTEGER,
    user_time REAL,
    system_time REAL,
    output TEXT NOT NULL,
    failed_file TEXT,
    UNIQUE(run_id, position)
);

CREATE INDEX IF NOT EXISTS idx_case_results_run ON case_results(run_id);
CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at DESC);
`

// DefaultReportStorePath returns ~/.tptester/history.db.
func DefaultReportStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".tptester", "history.db")
	}

	return filepath.Join(home, ".tptester", "history.db")
}

// SQLiteReportStore is a ReportStore backed by a SQLite file.
type SQLiteReportStore struct {
	db     *sql.DB
	logger *log.Logger
}

// NewSQLiteReportStore opens (creating if needed) the database at path.
func NewSQLiteReportStore(path string, logger *log.Logger) (*SQLiteReportStore, error) {
	if logger == nil {
		logger = log.Default()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, errors.Wrapf(err, "failed to create directory for %s", path)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(30000)")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}

	// One writer at a time; the suite never writes concurrently.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "failed to connect to %s", path)
	}

	if _, err := db.Exec(reportSchema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to initialise schema")
	}

	logger.Debug("opened report store", "path", path)

	return &SQLiteReportStore{db: db, logger: logger}, nil
}

// SaveRun implements ReportStore.
func (s *SQLiteReportStore) SaveRun(run m.RunRecord, summary m.SuiteSummary) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", errors.Wrap(err, "failed to begin transaction")
	}

	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`INSERT INTO runs (run_id, program, wrapper, started_at, finished_at, total, passed, skipped)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Program, run.Wrapper,
		formatTime(run.StartedAt), formatTime(run.FinishedAt),
		summary.Total, summary.Passed, len(summary.Skipped))
	if err != nil {
		return "", errors.Wrap(err, "failed to insert run")
	}

	for pos, o := range summary.Outcomes {
		_, err = tx.Exec(`INSERT INTO case_results
			(run_id, position, test_index, input, status, exit_code, user_time, system_time, output, failed_file)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID, pos, string(o.Index), string(o.Input), string(o.Status),
			exitCodeValue(o), timeValue(o, o.UserTime), timeValue(o, o.SystemTime),
			o.Output.String(), string(o.FailedFile))
		if err != nil {
			return "", errors.Wrapf(err, "failed to insert outcome for case %s", o.Index)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", errors.Wrap(err, "failed to commit run")
	}

	s.logger.Debug("saved run", "id", run.ID, "cases", len(summary.Outcomes))

	return run.ID, nil
}

// ListRuns implements ReportStore.
func (s *SQLiteReportStore) ListRuns(limit int) ([]m.RunRecord, error) {
	query := `SELECT run_id, program, COALESCE(wrapper, ''), started_at, finished_at, total, passed, skipped
		FROM runs ORDER BY started_at DESC, rowid DESC`

	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"

		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query runs")
	}

	defer func() { _ = rows.Close() }()

	var runs []m.RunRecord

	for rows.Next() {
		var (
			run               m.RunRecord
			started, finished string
		)

		if err := rows.Scan(&run.ID, &run.Program, &run.Wrapper, &started, &finished, &run.Total, &run.Passed, &run.Skipped); err != nil {
			return nil, errors.Wrap(err, "failed to scan run")
		}

		run.StartedAt = parseTime(started)
		run.FinishedAt = parseTime(finished)
		runs = append(runs, run)
	}

	return runs, errors.Wrap(rows.Err(), "failed to iterate runs")
}

// LoadOutcomes implements ReportStore.
func (s *SQLiteReportStore) LoadOutcomes(runID string) ([]m.TestOutcome, error) {
	rows, err := s.db.Query(`SELECT test_index, COALESCE(input, ''), status, exit_code, user_time, system_time, output, COALESCE(failed_file, '')
		FROM case_results WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query outcomes of run %s", runID)
	}

	defer func() { _ = rows.Close() }()

	var outcomes []m.TestOutcome

	for rows.Next() {
		var (
			o                 m.TestOutcome
			index, input      string
			status, output    string
			failedFile        string
			exitCode          sql.NullInt64
			userTime, sysTime sql.NullFloat64
		)

		if err := rows.Scan(&index, &input, &status, &exitCode, &userTime, &sysTime, &output, &failedFile); err != nil {
			return nil, errors.Wrap(err, "failed to scan outcome")
		}

		o.Index = m.TestIndex(index)
		o.Input = m.Path(input)
		o.Status = m.CaseStatus(status)
		o.ExitCode = int(exitCode.Int64)
		o.UserTime = nullSeconds(userTime)
		o.SystemTime = nullSeconds(sysTime)
		o.Output = parseOutputMatch(output)
		o.FailedFile = m.Path(failedFile)
		outcomes = append(outcomes, o)
	}

	return outcomes, errors.Wrap(rows.Err(), "failed to iterate outcomes")
}

// Close implements ReportStore.
func (s *SQLiteReportStore) Close() error {
	return s.db.Close()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}

	return t
}

// exitCodeValue is NULL for skipped cases.
func exitCodeValue(o m.TestOutcome) any {
	if o.Status == m.StatusSkipped {
		return nil
	}

	return o.ExitCode
}

// timeValue keeps the launch-failure sentinel out of the database.
func timeValue(o m.TestOutcome, v float64) any {
	if o.Status == m.StatusSkipped || o.Status == m.StatusLaunchError || v < 0 {
		return nil
	}

	return v
}

func nullSeconds(v sql.NullFloat64) float64 {
	if !v.Valid {
		return m.SentinelTime
	}

	return v.Float64
}

func parseOutputMatch(s string) m.OutputMatch {
	switch s {
	case m.OutputMatched.String():
		return m.OutputMatched
	case m.OutputDiffered.String():
		return m.OutputDiffered
	default:
		return m.OutputUnchecked
	}
}
