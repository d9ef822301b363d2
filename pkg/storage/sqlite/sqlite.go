package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/watchlist/pkg/logger"
	"github.com/kasuboski/watchlist/pkg/storage"
	"github.com/kasuboski/watchlist/pkg/storage/sqlite/schema/gen/table"
	sqlite3 "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// selectAlias makes query results map onto model.Title whatever the table is called
const selectAlias = "title"

type SQLite struct {
	db     *sql.DB
	tables storage.Tables
	mu     sync.Mutex
}

// New creates a new sqlite database given a path to the database file
func New(ctx context.Context, filePath string, tables storage.Tables) (storage.Storage, error) {
	log := logger.FromCtx(ctx)

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}

	// sqlite serializes writers anyway and :memory: databases are per connection
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	log.Debugw("opened sqlite database", "path", filePath)

	return &SQLite{
		db:     db,
		tables: tables,
	}, nil
}

// RunMigrations brings the schema up to date
func (s *SQLite) RunMigrations(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromCtx(ctx)
	if err := runMigrations(s.db); err != nil {
		return err
	}

	version, _, err := s.GetMigrationVersion()
	if err != nil {
		return err
	}
	log.Debugw("migrations applied", "version", version)

	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// table returns the table for kind, unaliased for writes
func (s *SQLite) table(kind storage.Kind) (*table.TitleTable, error) {
	name, err := s.tables.Name(kind)
	if err != nil {
		return nil, err
	}
	return table.Title.WithName(name), nil
}

// selectTable returns the table for kind aliased so rows scan into model.Title
func (s *SQLite) selectTable(kind storage.Kind) (*table.TitleTable, error) {
	t, err := s.table(kind)
	if err != nil {
		return nil, err
	}
	return t.AS(selectAlias), nil
}

func (s *SQLite) handleStatement(ctx context.Context, stmt sqlite.Statement) (sql.Result, error) {
	log := logger.FromCtx(ctx)
	var result sql.Result

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Debug("failed to init transaction", zap.Error(err))
		return result, err
	}

	result, err = stmt.ExecContext(ctx, tx)
	if err != nil {
		log.Debug("failed to execute statement", zap.String("query", stmt.DebugSql()), zap.Error(err))
		tx.Rollback()
		return result, err
	}

	return result, tx.Commit()
}

// mapError translates driver errors to storage errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintPrimaryKey, sqlite3.ErrConstraintUnique:
			return fmt.Errorf("%w: %s", storage.ErrAlreadyExists, sqliteErr.Error())
		}
	}

	return err
}
