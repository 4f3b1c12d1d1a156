package history

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/pressly/goose/v3"

	_ "github.com/mattn/go-sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/multicourt/vbl-scanner/internal/schedule"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Client is the SQL-backed history store.
type Client struct {
	db *sql.DB
}

// Ensure Client implements the Store interface.
var _ Store = (*Client)(nil)

// New opens the history database and brings the schema up to date.
// For local-only databases, dbPath is the filename and primaryURL is empty.
// With a primaryURL the store talks to a Turso remote instead.
func New(dbPath, primaryURL, authToken string) (*Client, error) {
	var dsn string
	if primaryURL == "" {
		log.Info("Initializing local scan history database", "path", dbPath)
		dsn = "file:" + dbPath
	} else {
		log.Info("Initializing Turso scan history database", "url", primaryURL)
		dsn = primaryURL + "?authToken=" + authToken
	}

	db, err := sql.Open("libsql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate history database: %w", err)
	}

	return &Client{db: db}, nil
}

func migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
}

// Close closes the underlying database.
func (c *Client) Close() error {
	return c.db.Close()
}

// SaveScan records one completed scan result, payload included.
func (c *Client) SaveScan(ctx context.Context, result *schedule.ScanResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to serialize scan result: %w", err)
	}

	_, err = c.db.ExecContext(ctx, `
        INSERT INTO scans (id, url, status, match_type, type_detail, total_matches, scanned_at, payload_json)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(),
		result.URL,
		result.Status,
		result.MatchType,
		result.TypeDetail,
		result.TotalMatches(),
		result.Timestamp,
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to insert scan: %w", err)
	}
	return nil
}

// RecentScans returns the newest scans, most recent first.
func (c *Client) RecentScans(ctx context.Context, limit int) ([]ScanRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := c.db.QueryContext(ctx, `
        SELECT id, url, status, match_type, type_detail, total_matches, scanned_at, payload_json
        FROM scans ORDER BY scanned_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query scans: %w", err)
	}
	defer rows.Close()

	var out []ScanRow
	for rows.Next() {
		var row ScanRow
		var scannedAt string
		if err := rows.Scan(&row.ID, &row.URL, &row.Status, &row.MatchType, &row.TypeDetail, &row.TotalMatches, &scannedAt, &row.Payload); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, scannedAt); err == nil {
			row.ScannedAt = t
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// SaveDivisionSeeds snapshots a division's roster and seeding, replacing any
// previous snapshot entries for the same teams.
func (c *Client) SaveDivisionSeeds(ctx context.Context, divisionID int, seeds []TeamSeed) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, s := range seeds {
		var seed any
		if s.Seed != nil {
			seed = *s.Seed
		}
		_, err := tx.ExecContext(ctx, `
            INSERT INTO division_seeds (division_id, team_id, name, seed, updated_at)
            VALUES (?, ?, ?, ?, ?)
            ON CONFLICT (division_id, team_id) DO UPDATE SET
                name = excluded.name,
                seed = excluded.seed,
                updated_at = excluded.updated_at`,
			divisionID, s.TeamID, s.Name, seed, now)
		if err != nil {
			return fmt.Errorf("failed to upsert seed for team %d: %w", s.TeamID, err)
		}
	}
	return tx.Commit()
}

// DivisionSeeds returns the last snapshot for a division, seeded teams first.
func (c *Client) DivisionSeeds(ctx context.Context, divisionID int) ([]TeamSeed, error) {
	rows, err := c.db.QueryContext(ctx, `
        SELECT team_id, name, seed FROM division_seeds
        WHERE division_id = ? ORDER BY seed IS NULL, seed, team_id`, divisionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query division seeds: %w", err)
	}
	defer rows.Close()

	var out []TeamSeed
	for rows.Next() {
		var s TeamSeed
		var seed sql.NullInt64
		if err := rows.Scan(&s.TeamID, &s.Name, &seed); err != nil {
			return nil, fmt.Errorf("failed to scan seed row: %w", err)
		}
		if seed.Valid {
			v := int(seed.Int64)
			s.Seed = &v
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
