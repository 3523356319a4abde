package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/leroux1606/compliancekit/internal/config"
	"github.com/leroux1606/compliancekit/internal/model"
)

// Store provides SQLite-based storage for scan results.
// It manages connection pooling and provides methods for saving and
// querying scans.
//
// Design decision: one database file holds every scanned site rather
// than a file per site. Score-over-time queries and batch summaries
// span sites, and a single file keeps backup/restore trivial.
type Store struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures Store behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default store options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// DefaultDir returns the default directory for the scan database,
// following the XDG base directory specification.
func DefaultDir() string {
	return filepath.Join(xdg.DataHome, config.AppName)
}

// Open opens or creates a scan result store in the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*Store, error) {
	dbPath := filepath.Join(dbDir, "compliancekit.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (s *Store) createTables() error {
	schema := `
	-- Scans store one complete scan result each. The full result is kept
	-- as JSON for exact replay; the scalar columns exist for queries.
	CREATE TABLE IF NOT EXISTS scans (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		url TEXT NOT NULL,
		host TEXT NOT NULL,
		success INTEGER NOT NULL,
		score INTEGER NOT NULL,
		error TEXT,
		scanned_at DATETIME NOT NULL,
		elapsed_ms INTEGER NOT NULL,
		result_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_scans_host ON scans(host);
	CREATE INDEX IF NOT EXISTS idx_scans_scanned_at ON scans(scanned_at);

	-- Per-scan cookie observations
	CREATE TABLE IF NOT EXISTS cookies (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		scan_id INTEGER NOT NULL REFERENCES scans(id),
		name TEXT NOT NULL,
		domain TEXT NOT NULL,
		category TEXT NOT NULL,
		third_party INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_cookies_scan ON cookies(scan_id);
	CREATE INDEX IF NOT EXISTS idx_cookies_name ON cookies(name);

	-- Per-scan script and tracking pixel observations
	CREATE TABLE IF NOT EXISTS scripts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		scan_id INTEGER NOT NULL REFERENCES scans(id),
		url TEXT,
		delivery TEXT NOT NULL,
		category TEXT NOT NULL,
		name TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_scripts_scan ON scripts(scan_id);

	-- Per-scan compliance findings
	CREATE TABLE IF NOT EXISTS findings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		scan_id INTEGER NOT NULL REFERENCES scans(id),
		type TEXT NOT NULL,
		severity TEXT NOT NULL,
		title TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_findings_scan ON findings(scan_id);
	CREATE INDEX IF NOT EXISTS idx_findings_severity ON findings(severity);
	`

	_, err := s.db.ExecContext(context.Background(), schema)
	return err
}

// SaveResult persists a complete scan result and returns the scan ID.
// The full result is stored as JSON alongside relational cookie, script,
// and finding rows, all written in a single transaction.
func (s *Store) SaveResult(ctx context.Context, result *model.ScanResult) (int64, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize result: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	res, err := tx.ExecContext(ctx, `
	INSERT INTO scans (url, host, success, score, error, scanned_at, elapsed_ms, result_json)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		result.URL,
		hostOf(result.URL),
		boolToInt(result.Success),
		result.Score,
		result.Error,
		result.ScannedAt.UTC().Format(time.RFC3339Nano),
		result.Elapsed.Milliseconds(),
		string(resultJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert scan: %w", err)
	}

	scanID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get scan id: %w", err)
	}

	for _, c := range result.Cookies {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO cookies (scan_id, name, domain, category, third_party)
		VALUES (?, ?, ?, ?, ?)
		`, scanID, c.Name, c.Domain, string(c.Category), boolToInt(c.ThirdParty)); err != nil {
			return 0, fmt.Errorf("failed to insert cookie: %w", err)
		}
	}

	for _, sc := range result.Scripts {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO scripts (scan_id, url, delivery, category, name)
		VALUES (?, ?, ?, ?, ?)
		`, scanID, sc.URL, string(sc.Delivery), string(sc.Category), sc.Name); err != nil {
			return 0, fmt.Errorf("failed to insert script: %w", err)
		}
	}

	for _, f := range result.Findings {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO findings (scan_id, type, severity, title)
		VALUES (?, ?, ?, ?)
		`, scanID, string(f.Type), f.Severity.String(), f.Title); err != nil {
			return 0, fmt.Errorf("failed to insert finding: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit scan: %w", err)
	}

	return scanID, nil
}

// LastResult retrieves the most recent scan result for a host.
// Returns nil when the host has never been scanned.
func (s *Store) LastResult(ctx context.Context, host string) (*model.ScanResult, error) {
	query := `
	SELECT result_json FROM scans
	WHERE host = ?
	ORDER BY scanned_at DESC, id DESC
	LIMIT 1
	`

	var resultJSON string
	err := s.db.QueryRowContext(ctx, query, host).Scan(&resultJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scan result: %w", err)
	}

	var result model.ScanResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to parse result: %w", err)
	}

	return &result, nil
}

// ScanSummary is lightweight metadata about one stored scan.
type ScanSummary struct {
	// ID is the scan's database identifier.
	ID int64

	// URL is the scanned page.
	URL string

	// Success is false for scans that failed before producing a score.
	Success bool

	// Score is the final compliance score. Zero for failed scans.
	Score int

	// ScannedAt is when the scan started.
	ScannedAt time.Time
}

// History retrieves metadata for every stored scan of a host, newest first.
func (s *Store) History(ctx context.Context, host string) ([]ScanSummary, error) {
	query := `
	SELECT id, url, success, score, scanned_at FROM scans
	WHERE host = ?
	ORDER BY scanned_at DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, host)
	if err != nil {
		return nil, fmt.Errorf("failed to query scan history: %w", err)
	}
	defer rows.Close()

	var history []ScanSummary
	for rows.Next() {
		var (
			sum       ScanSummary
			success   int
			scannedAt string
		)
		if err := rows.Scan(&sum.ID, &sum.URL, &success, &sum.Score, &scannedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		sum.Success = success != 0
		sum.ScannedAt = parseTimestamp(scannedAt)
		history = append(history, sum)
	}

	return history, rows.Err()
}

// ResultByID retrieves a full scan result by its database identifier.
// Returns nil when no scan with that ID exists.
func (s *Store) ResultByID(ctx context.Context, id int64) (*model.ScanResult, error) {
	var resultJSON string
	err := s.db.QueryRowContext(ctx, "SELECT result_json FROM scans WHERE id = ?", id).Scan(&resultJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scan result: %w", err)
	}

	var result model.ScanResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to parse result: %w", err)
	}

	return &result, nil
}

// ListHosts returns every scanned host, sorted alphabetically.
func (s *Store) ListHosts(ctx context.Context) ([]string, error) {
	query := `
	SELECT DISTINCT host FROM scans
	ORDER BY host
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list hosts: %w", err)
	}
	defer rows.Close()

	var hosts []string
	for rows.Next() {
		var host string
		if err := rows.Scan(&host); err != nil {
			return nil, fmt.Errorf("failed to scan host: %w", err)
		}
		hosts = append(hosts, host)
	}

	return hosts, rows.Err()
}

// hostOf extracts the hostname used as the history key. Falls back to
// the raw string for unparseable URLs so the row is still saved.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return rawURL
	}
	return u.Hostname()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// timestampFormats are the layouts SQLite may hand back depending on how
// the value was written.
var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05.999999999-07:00",
}

func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
