package mysql

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/kasuboski/watchlist/pkg/logger"
	"github.com/kasuboski/watchlist/pkg/storage"
	"github.com/kasuboski/watchlist/pkg/storage/sqlite/schema/gen/model"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const (
	columns = "id, title, year, watched, rating, comments, poster, summary, critic, backdrop"

	errDuplicateEntry = 1062
)

type MySQL struct {
	db     *sqlx.DB
	tables storage.Tables
}

// New connects to the mysql database described by dsn
func New(ctx context.Context, dsn string, tables storage.Tables) (storage.Storage, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid mysql dsn: %w", err)
	}
	// report matched rather than changed rows so updates that change nothing still count
	cfg.ClientFoundRows = true

	db, err := sqlx.ConnectContext(ctx, "mysql", cfg.FormatDSN())
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Debugw("connected to mysql", "addr", cfg.Addr, "database", cfg.DBName)

	return NewWithDB(db, tables), nil
}

// NewWithDB wraps an existing connection
func NewWithDB(db *sqlx.DB, tables storage.Tables) *MySQL {
	return &MySQL{
		db:     db,
		tables: tables,
	}
}

func (s *MySQL) RunMigrations(ctx context.Context) error {
	migrations, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(goose.DialectMySQL, s.db.DB, migrations)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log := logger.FromCtx(ctx)
	for _, r := range results {
		log.Debugw("applied migration", "version", r.Source.Version, "duration", r.Duration)
	}

	return nil
}

func (s *MySQL) Close() error {
	return s.db.Close()
}

func (s *MySQL) table(kind storage.Kind) (string, error) {
	name, err := s.tables.Name(kind)
	if err != nil {
		return "", err
	}
	return "`" + strings.ReplaceAll(name, "`", "") + "`", nil
}

func (s *MySQL) CreateTitle(ctx context.Context, kind storage.Kind, title model.Title) (int64, error) {
	table, err := s.table(kind)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (:id, :title, :year, :watched, :rating, :comments, :poster, :summary, :critic, :backdrop)", table, columns)
	_, err = s.db.NamedExecContext(ctx, query, title)
	if err != nil {
		return 0, mapError(err)
	}

	return title.ID, nil
}

func (s *MySQL) GetTitle(ctx context.Context, kind storage.Kind, id int64) (model.Title, error) {
	var title model.Title

	table, err := s.table(kind)
	if err != nil {
		return title, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", columns, table)
	err = s.db.GetContext(ctx, &title, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return title, storage.ErrNotFound
	}

	return title, err
}

func (s *MySQL) ListTitles(ctx context.Context, kind storage.Kind) ([]*model.Title, error) {
	table, err := s.table(kind)
	if err != nil {
		return nil, err
	}

	titles := make([]*model.Title, 0)
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", columns, table)
	if err := s.db.SelectContext(ctx, &titles, query); err != nil {
		return nil, err
	}

	return titles, nil
}

func (s *MySQL) ListTitlesWithoutBackdrop(ctx context.Context, kind storage.Kind) ([]*model.Title, error) {
	table, err := s.table(kind)
	if err != nil {
		return nil, err
	}

	titles := make([]*model.Title, 0)
	query := fmt.Sprintf("SELECT %s FROM %s WHERE backdrop IS NULL ORDER BY id", columns, table)
	if err := s.db.SelectContext(ctx, &titles, query); err != nil {
		return nil, err
	}

	return titles, nil
}

func (s *MySQL) ListTitleIDs(ctx context.Context, kind storage.Kind, ids ...int64) ([]int64, error) {
	found := make([]int64, 0)
	if len(ids) == 0 {
		return found, nil
	}

	table, err := s.table(kind)
	if err != nil {
		return nil, err
	}

	query, args, err := sqlx.In(fmt.Sprintf("SELECT id FROM %s WHERE id IN (?)", table), ids)
	if err != nil {
		return nil, err
	}

	if err := s.db.SelectContext(ctx, &found, s.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	return found, nil
}

func (s *MySQL) UpdateTitle(ctx context.Context, kind storage.Kind, id int64, update storage.TitleUpdate) (model.Title, error) {
	table, err := s.table(kind)
	if err != nil {
		return model.Title{}, err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Title{}, err
	}
	defer tx.Rollback()

	var current model.Title
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ? FOR UPDATE", columns, table)
	err = tx.GetContext(ctx, &current, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return current, storage.ErrNotFound
	}
	if err != nil {
		return current, err
	}

	if update.Empty() {
		return current, nil
	}

	update.Apply(&current)

	query = fmt.Sprintf("UPDATE %s SET title = :title, year = :year, watched = :watched, rating = :rating, comments = :comments, poster = :poster, summary = :summary WHERE id = :id", table)
	if _, err := tx.NamedExecContext(ctx, query, current); err != nil {
		return model.Title{}, fmt.Errorf("failed to update title %d: %w", id, err)
	}

	return current, tx.Commit()
}

func (s *MySQL) UpdateTitleBackdrop(ctx context.Context, kind storage.Kind, id int64, backdrop string) error {
	table, err := s.table(kind)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, fmt.Sprintf("UPDATE %s SET backdrop = ? WHERE id = ?", table), backdrop, id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func mapError(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == errDuplicateEntry {
		return fmt.Errorf("%w: %s", storage.ErrAlreadyExists, mysqlErr.Message)
	}
	return err
}
