// Package palcache persists probed terminal palettes in SQLite so repeat
// runs in the same terminal can skip the OSC round trip. Keyed by terminal
// identity (TERM_PROGRAM or TERM); entries go stale after a TTL because
// users change their color schemes. Uses the pure-Go modernc.org/sqlite
// driver to avoid CGO dependencies.
package palcache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/termtint/internal/colormath"
	"github.com/vovakirdan/termtint/internal/probe"
)

// DefaultTTL is how long a cached palette is trusted.
const DefaultTTL = 24 * time.Hour

// Store manages the SQLite database connection for palette persistence.
type Store struct {
	db *sql.DB
}

// Entry is one cached palette row, as listed by Entries.
type Entry struct {
	Identity   string
	Colors     int
	CapturedAt time.Time
}

// DefaultPath returns the cache location under the user home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".termtint", "palettes.db")
}

// Open creates or opens the cache database at the given path. It creates
// parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("palcache: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("palcache: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("palcache: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("palcache: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("palcache: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS palettes (
			identity TEXT PRIMARY KEY,
			ansi TEXT NOT NULL,
			foreground TEXT,
			background TEXT,
			captured_at INTEGER NOT NULL
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Put stores or replaces the palette for a terminal identity.
func (s *Store) Put(identity string, snap *probe.Snapshot) error {
	if identity == "" || snap == nil {
		return fmt.Errorf("palcache: nothing to store")
	}
	_, err := s.db.Exec(
		`INSERT INTO palettes (identity, ansi, foreground, background, captured_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(identity) DO UPDATE SET
			ansi = excluded.ansi,
			foreground = excluded.foreground,
			background = excluded.background,
			captured_at = excluded.captured_at`,
		identity, encodeANSI(snap.ANSI), encodeColor(snap.Foreground),
		encodeColor(snap.Background), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("palcache: cannot save palette: %w", err)
	}
	return nil
}

// Get returns the cached palette for a terminal identity along with its
// capture time, or (nil, zero, nil) when no row exists.
func (s *Store) Get(identity string) (*probe.Snapshot, time.Time, error) {
	row := s.db.QueryRow(
		`SELECT ansi, foreground, background, captured_at
		 FROM palettes WHERE identity = ?`, identity,
	)

	var ansi, fg, bg string
	var capturedAt int64
	switch err := row.Scan(&ansi, &fg, &bg, &capturedAt); {
	case err == sql.ErrNoRows:
		return nil, time.Time{}, nil
	case err != nil:
		return nil, time.Time{}, fmt.Errorf("palcache: cannot scan row: %w", err)
	}

	snap := &probe.Snapshot{
		ANSI:       decodeANSI(ansi),
		Foreground: decodeColor(fg),
		Background: decodeColor(bg),
	}
	return snap, time.Unix(capturedAt, 0), nil
}

// Fresh is Get restricted to entries younger than ttl.
func (s *Store) Fresh(identity string, ttl time.Duration) (*probe.Snapshot, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	snap, capturedAt, err := s.Get(identity)
	if err != nil || snap == nil {
		return nil, err
	}
	if time.Since(capturedAt) > ttl {
		return nil, nil
	}
	return snap, nil
}

// Entries lists all cached palettes, newest first.
func (s *Store) Entries() ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT identity, ansi, captured_at
		 FROM palettes ORDER BY captured_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("palcache: cannot query palettes: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ansi string
		var capturedAt int64
		if err := rows.Scan(&e.Identity, &ansi, &capturedAt); err != nil {
			return nil, fmt.Errorf("palcache: cannot scan row: %w", err)
		}
		e.Colors = len(decodeANSI(ansi))
		e.CapturedAt = time.Unix(capturedAt, 0)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("palcache: row iteration error: %w", err)
	}
	return entries, nil
}

// Clear removes every cached palette.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM palettes"); err != nil {
		return fmt.Errorf("palcache: cannot clear: %w", err)
	}
	return nil
}

// encodeANSI packs an index->color map as "0:#rrggbb 1:#rrggbb ...".
func encodeANSI(colors map[int]colormath.RGB) string {
	parts := make([]string, 0, len(colors))
	for i := 0; i < 16; i++ {
		if rgb, ok := colors[i]; ok {
			parts = append(parts, fmt.Sprintf("%d:%s", i, rgb.Hex()))
		}
	}
	return strings.Join(parts, " ")
}

func decodeANSI(s string) map[int]colormath.RGB {
	colors := make(map[int]colormath.RGB)
	for _, part := range strings.Fields(s) {
		idx, hex, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		var i int
		if _, err := fmt.Sscanf(idx, "%d", &i); err != nil || i < 0 || i > 15 {
			continue
		}
		if rgb, ok := colormath.ParseHex(hex); ok {
			colors[i] = rgb
		}
	}
	return colors
}

func encodeColor(c *colormath.RGB) string {
	if c == nil {
		return ""
	}
	return c.Hex()
}

func decodeColor(s string) *colormath.RGB {
	if rgb, ok := colormath.ParseHex(s); ok {
		return &rgb
	}
	return nil
}
