package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/watchlist/pkg/logger"
	"github.com/kasuboski/watchlist/pkg/storage"
	"github.com/kasuboski/watchlist/pkg/storage/sqlite/schema/gen/model"
)

// CreateTitle stores a new title. Storing an id twice returns storage.ErrAlreadyExists
func (s *SQLite) CreateTitle(ctx context.Context, kind storage.Kind, title model.Title) (int64, error) {
	t, err := s.table(kind)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stmt := t.INSERT(t.AllColumns).MODEL(title)
	_, err = s.handleStatement(ctx, stmt)
	if err != nil {
		return 0, mapError(err)
	}

	return title.ID, nil
}

// GetTitle returns the title with the given id
func (s *SQLite) GetTitle(ctx context.Context, kind storage.Kind, id int64) (model.Title, error) {
	t, err := s.selectTable(kind)
	if err != nil {
		return model.Title{}, err
	}

	var title model.Title
	stmt := t.SELECT(t.AllColumns).FROM(t).WHERE(t.ID.EQ(sqlite.Int64(id)))
	err = stmt.QueryContext(ctx, s.db, &title)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return title, storage.ErrNotFound
		}
		return title, err
	}

	return title, nil
}

// ListTitles lists every stored title of kind
func (s *SQLite) ListTitles(ctx context.Context, kind storage.Kind) ([]*model.Title, error) {
	return s.listTitles(ctx, kind, nil)
}

// ListTitlesWithoutBackdrop lists the titles that have no backdrop yet
func (s *SQLite) ListTitlesWithoutBackdrop(ctx context.Context, kind storage.Kind) ([]*model.Title, error) {
	t, err := s.selectTable(kind)
	if err != nil {
		return nil, err
	}

	return s.listTitles(ctx, kind, t.Backdrop.IS_NULL())
}

func (s *SQLite) listTitles(ctx context.Context, kind storage.Kind, where sqlite.BoolExpression) ([]*model.Title, error) {
	log := logger.FromCtx(ctx)

	t, err := s.selectTable(kind)
	if err != nil {
		return nil, err
	}

	stmt := t.SELECT(t.AllColumns).FROM(t)
	if where != nil {
		stmt = stmt.WHERE(where)
	}
	stmt = stmt.ORDER_BY(t.ID.ASC())

	titles := make([]*model.Title, 0)
	err = stmt.QueryContext(ctx, s.db, &titles)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		log.Errorw("failed to list titles", "kind", kind, "error", err)
		return nil, err
	}

	return titles, nil
}

// ListTitleIDs returns the subset of ids that are stored
func (s *SQLite) ListTitleIDs(ctx context.Context, kind storage.Kind, ids ...int64) ([]int64, error) {
	found := make([]int64, 0)
	if len(ids) == 0 {
		return found, nil
	}

	t, err := s.selectTable(kind)
	if err != nil {
		return nil, err
	}

	in := make([]sqlite.Expression, len(ids))
	for i, id := range ids {
		in[i] = sqlite.Int64(id)
	}

	var titles []model.Title
	stmt := t.SELECT(t.ID).FROM(t).WHERE(t.ID.IN(in...))
	err = stmt.QueryContext(ctx, s.db, &titles)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, err
	}

	for _, title := range titles {
		found = append(found, title.ID)
	}

	return found, nil
}

// UpdateTitle applies a partial update and returns the stored result
func (s *SQLite) UpdateTitle(ctx context.Context, kind storage.Kind, id int64, update storage.TitleUpdate) (model.Title, error) {
	t, err := s.table(kind)
	if err != nil {
		return model.Title{}, err
	}
	st := t.AS(selectAlias)

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Title{}, err
	}
	defer tx.Rollback()

	var current model.Title
	err = st.SELECT(st.AllColumns).FROM(st).WHERE(st.ID.EQ(sqlite.Int64(id))).QueryContext(ctx, tx, &current)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return model.Title{}, storage.ErrNotFound
		}
		return model.Title{}, err
	}

	if update.Empty() {
		return current, nil
	}

	update.Apply(&current)

	stmt := t.UPDATE(t.MutableColumns.Except(t.Critic, t.Backdrop)).MODEL(current).WHERE(t.ID.EQ(sqlite.Int64(id)))
	_, err = stmt.ExecContext(ctx, tx)
	if err != nil {
		return model.Title{}, fmt.Errorf("failed to update title %d: %w", id, err)
	}

	return current, tx.Commit()
}

// UpdateTitleBackdrop sets the backdrop url of a title
func (s *SQLite) UpdateTitleBackdrop(ctx context.Context, kind storage.Kind, id int64, backdrop string) error {
	t, err := s.table(kind)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stmt := t.UPDATE().SET(t.Backdrop.SET(sqlite.String(backdrop))).WHERE(t.ID.EQ(sqlite.Int64(id)))
	res, err := s.handleStatement(ctx, stmt)
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
