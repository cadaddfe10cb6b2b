package library

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"slipstream/internal/melee"
	"slipstream/internal/slp"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current index layout. Bump on schema changes; a
// mismatched index is reported rather than migrated, since it can always be
// rebuilt from the replay files.
const schemaVersion = 1

// ErrSchemaMismatch indicates the index was written by an incompatible
// version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Entry is one indexed replay.
type Entry struct {
	Path      string
	Size      int64
	ModTime   time.Time
	Info      slp.GameInfo
	ScannedAt time.Time
}

// Store is the replay index backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open connects to the index database at path, creating it and its schema
// when absent.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open index db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	err = s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: index has version %d, expected %d (delete %s to rebuild)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

const entryColumns = "path, size, mod_time, format_version, stage, low_port, low_character, low_costume, high_port, high_character, high_costume, scanned_at"

// Upsert inserts or replaces the index row for entry.Path.
func (s *Store) Upsert(ctx context.Context, entry *Entry) error {
	if entry == nil {
		return errors.New("entry is nil")
	}
	entry.ScannedAt = time.Now().UTC()
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO replays (`+entryColumns+`)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT(path) DO UPDATE SET
             size = excluded.size, mod_time = excluded.mod_time,
             format_version = excluded.format_version, stage = excluded.stage,
             low_port = excluded.low_port, low_character = excluded.low_character,
             low_costume = excluded.low_costume, high_port = excluded.high_port,
             high_character = excluded.high_character, high_costume = excluded.high_costume,
             scanned_at = excluded.scanned_at`,
		entry.Path,
		entry.Size,
		entry.ModTime.UTC().Format(time.RFC3339Nano),
		entry.Info.Version.String(),
		uint16(entry.Info.Stage),
		entry.Info.Low.Port,
		uint8(entry.Info.Low.Fighter.Character),
		entry.Info.Low.Fighter.Costume,
		entry.Info.High.Port,
		uint8(entry.Info.High.Fighter.Character),
		entry.Info.High.Fighter.Costume,
		entry.ScannedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("upsert replay: %w", err)
	}
	return nil
}

// Get fetches the index row for a path, or nil when it is not indexed.
func (s *Store) Get(ctx context.Context, path string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM replays WHERE path = ?`, path)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get replay: %w", err)
	}
	return entry, nil
}

// All returns every indexed replay ordered by path.
func (s *Store) All(ctx context.Context) ([]*Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+entryColumns+` FROM replays ORDER BY path`)
	if err != nil {
		return nil, fmt.Errorf("list replays: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Remove deletes the index row for a path.
func (s *Store) Remove(ctx context.Context, path string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM replays WHERE path = ?`, path); err != nil {
		return fmt.Errorf("delete replay: %w", err)
	}
	return nil
}

// Count returns the number of indexed replays.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM replays`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count replays: %w", err)
	}
	return n, nil
}

func scanEntry(scanner interface{ Scan(dest ...any) error }) (*Entry, error) {
	var (
		path                    string
		size                    int64
		modRaw, scannedRaw      string
		formatVersion           string
		stage                   uint16
		lowPort, highPort       uint8
		lowChar, highChar       uint8
		lowCostume, highCostume uint8
	)
	if err := scanner.Scan(
		&path, &size, &modRaw, &formatVersion, &stage,
		&lowPort, &lowChar, &lowCostume,
		&highPort, &highChar, &highCostume,
		&scannedRaw,
	); err != nil {
		return nil, err
	}

	entry := &Entry{
		Path: path,
		Size: size,
		Info: slp.GameInfo{
			Version: parseVersion(formatVersion),
			Stage:   melee.Stage(stage),
			Low: slp.PlayerInfo{
				Port:    lowPort,
				Fighter: melee.CharacterColour{Character: melee.Character(lowChar), Costume: lowCostume},
			},
			High: slp.PlayerInfo{
				Port:    highPort,
				Fighter: melee.CharacterColour{Character: melee.Character(highChar), Costume: highCostume},
			},
		},
	}
	if t, err := time.Parse(time.RFC3339Nano, modRaw); err == nil {
		entry.ModTime = t
	}
	if t, err := time.Parse(time.RFC3339Nano, scannedRaw); err == nil {
		entry.ScannedAt = t
	}
	return entry, nil
}

func parseVersion(s string) slp.Version {
	var v slp.Version
	fmt.Sscanf(s, "%d.%d.%d", &v.Major, &v.Minor, &v.Patch)
	return v
}
