package probe

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite3 driver

	"termplay/internal/logging"
	"termplay/internal/metrics"
	"termplay/internal/startup"
)

// Default timeout for cache database operations
const defaultTimeout = 5 * time.Second

// Cache remembers probed resolutions between runs, keyed by input path
// plus file size and modification time. A repeat playback of an unchanged
// file skips the ffprobe round trip entirely.
type Cache struct {
	db     *sql.DB
	dbPath string
}

// DefaultDir returns the cache directory: TERMPLAY_CACHE_DIR when set,
// otherwise a termplay directory under the user cache root.
func DefaultDir() (string, error) {
	if dir := startup.Getenv("TERMPLAY_CACHE_DIR", ""); dir != "" {
		return dir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("no usable cache directory: %w", err)
	}
	return filepath.Join(base, "termplay"), nil
}

// OpenCache opens the probe cache under dir, creating the directory and
// the database file as needed.
func OpenCache(ctx context.Context, dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	dbPath := filepath.Join(dir, "probe.db")

	// Use WAL mode; busy_timeout prevents "database is locked" errors
	// when two players share the cache
	connStr := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000", dbPath)

	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open probe cache: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logging.Error("failed to close probe cache after ping failure: %v", closeErr)
		}
		return nil, fmt.Errorf("failed to connect to probe cache: %w", err)
	}

	c := &Cache{db: db, dbPath: dbPath}
	if err := c.initialize(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logging.Error("failed to close probe cache after initialization failure: %v", closeErr)
		}
		return nil, fmt.Errorf("failed to initialize probe cache schema: %w", err)
	}

	logging.Debug("Probe cache at %s", dbPath)
	return c, nil
}

func (c *Cache) initialize(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS probes (
		path TEXT PRIMARY KEY,
		size INTEGER NOT NULL,
		mod_time INTEGER NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		probed_at INTEGER NOT NULL DEFAULT (strftime('%s', 'now'))
	);
	`

	execCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := c.db.ExecContext(execCtx, schema)
	return err
}

// Close releases the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Lookup returns the cached resolution for input if the file still has the
// size and modification time recorded with it. Every failure, including
// inputs that cannot be stat'ed (URLs, devices), is just a miss.
func (c *Cache) Lookup(ctx context.Context, input string) (Resolution, bool) {
	fi, err := os.Stat(input)
	if err != nil {
		metrics.ProbeCacheMisses.Inc()
		return Resolution{}, false
	}

	queryCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var res Resolution
	err = c.db.QueryRowContext(queryCtx,
		`SELECT width, height FROM probes WHERE path = ? AND size = ? AND mod_time = ?`,
		input, fi.Size(), fi.ModTime().Unix(),
	).Scan(&res.Width, &res.Height)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logging.Debug("Probe cache lookup failed: %v", err)
		}
		metrics.ProbeCacheMisses.Inc()
		return Resolution{}, false
	}

	metrics.ProbeCacheHits.Inc()
	logging.Debug("Probe cache hit for %s: %dx%d", input, res.Width, res.Height)
	return res, true
}

// Store records the probed resolution for input. Inputs that cannot be
// stat'ed are skipped without error.
func (c *Cache) Store(ctx context.Context, input string, res Resolution) error {
	fi, err := os.Stat(input)
	if err != nil {
		return nil
	}

	execCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err = c.db.ExecContext(execCtx,
		`INSERT OR REPLACE INTO probes (path, size, mod_time, width, height, probed_at)
		 VALUES (?, ?, ?, ?, ?, strftime('%s', 'now'))`,
		input, fi.Size(), fi.ModTime().Unix(), res.Width, res.Height,
	)
	if err != nil {
		return fmt.Errorf("failed to store probe result: %w", err)
	}
	return nil
}
