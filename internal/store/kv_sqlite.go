package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/notesapp/pocketnotes/internal/config"
	"github.com/notesapp/pocketnotes/internal/logger"
	"github.com/notesapp/pocketnotes/migrations"
)

// sqliteKeyValue is the SQLite-backed implementation of [KeyValue]. All
// values live in a single kv_store table; a Set is a single upsert
// statement, which gives every key the single-statement atomicity the
// repositories rely on.
type sqliteKeyValue struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewSQLiteKeyValue opens (creating if necessary) the SQLite database at
// cfg.DSN, runs pending schema migrations, and returns a [KeyValue] backed
// by it.
func NewSQLiteKeyValue(ctx context.Context, cfg config.DB, log *logger.Logger) (KeyValue, error) {
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewSQLiteKeyValue").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewSQLiteKeyValue").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLiteKeyValue").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewSQLiteKeyValue").Msg("connected to database successfully")

	if err = migrations.Migrate(conn); err != nil {
		log.Err(err).Str("func", "NewSQLiteKeyValue").Msg("migration failed")
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &sqliteKeyValue{db: conn, logger: log}, nil
}

func (s *sqliteKeyValue) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("value").
		From("kv_store").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "sqliteKeyValue.Get").Str("key", key).Msg("failed to build select query")
		return "", fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value string
	row := s.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		log.Err(err).Str("func", "sqliteKeyValue.Get").Str("key", key).Msg("failed to scan value row")
		return "", fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return value, nil
}

func (s *sqliteKeyValue) Set(ctx context.Context, key string, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert("kv_store").
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "sqliteKeyValue.Set").Str("key", key).Msg("failed to build upsert query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqliteKeyValue.Set").Str("key", key).Msg("failed to execute upsert")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKeyValue) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete("kv_store").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "sqliteKeyValue.Delete").Str("key", key).Msg("failed to build delete query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqliteKeyValue.Delete").Str("key", key).Msg("failed to execute delete")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKeyValue) Close() error {
	return s.db.Close()
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err = os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("error creating DB dir: %w", err)
			}
		}

		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
