package progress

import (
	"context"
	"database/sql"
	stderrors "errors"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/block-cats/internal/errors"
	"github.com/KirkDiggler/block-cats/internal/pkg/clock"
)

// MemoryDSN opens a private in-memory SQLite database
const MemoryDSN = ":memory:"

const (
	createBlobsTable = `CREATE TABLE IF NOT EXISTS progress_blobs (
	key TEXT PRIMARY KEY,
	data BLOB NOT NULL,
	updated_at INTEGER NOT NULL
)`
	selectBlob = `SELECT data FROM progress_blobs WHERE key = ?`
	upsertBlob = `INSERT INTO progress_blobs (key, data, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`
)

// SQLiteConfig holds the configuration for the SQLite repository
type SQLiteConfig struct {
	// Path is the database file, or MemoryDSN
	Path string
	// Clock stamps updated_at; defaults to the real clock
	Clock clock.Clock
}

// Validate ensures the path is set
func (c *SQLiteConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Path", c.Path, vb)
	return vb.Build()
}

// SQLiteRepository implements Repository on a single SQLite table
type SQLiteRepository struct {
	Repository
	db *sql.DB
}

// OpenSQLite opens, and if needed creates, the progress database
func OpenSQLite(ctx context.Context, cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	dsn := cfg.Path
	if dsn != MemoryDSN {
		dsn = filepath.Clean(strings.TrimSpace(dsn)) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open sqlite database")
	}
	if cfg.Path == MemoryDSN {
		// each connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
	}

	if _, err := db.ExecContext(ctx, createBlobsTable); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to create progress table")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &SQLiteRepository{
		Repository: &blobRepository{store: &sqliteStore{db: db, clock: clk}},
		db:         db,
	}, nil
}

// Close closes the underlying database
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

type sqliteStore struct {
	db    *sql.DB
	clock clock.Clock
}

func (s *sqliteStore) get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, selectBlob, key).Scan(&data)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("%s not found", key)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read from sqlite")
	}
	return data, nil
}

func (s *sqliteStore) set(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx, upsertBlob, key, data, s.clock.Now().UnixMilli())
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write to sqlite")
	}
	return nil
}
