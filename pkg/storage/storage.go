package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/kasuboski/watchlist/pkg/storage/sqlite/schema/gen/model"
	"github.com/oapi-codegen/nullable"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_storage.go github.com/kasuboski/watchlist/pkg/storage Storage

var (
	ErrNotFound      = errors.New("not found in storage")
	ErrAlreadyExists = errors.New("already exists in storage")
)

// Kind selects which watchlist table an operation targets
type Kind string

const (
	KindMovie  Kind = "movie"
	KindSeries Kind = "series"
)

func (k Kind) Valid() bool {
	return k == KindMovie || k == KindSeries
}

// ParseKind accepts the singular and plural spelling of a kind
func ParseKind(s string) (Kind, error) {
	switch s {
	case "movie", "movies":
		return KindMovie, nil
	case "series", "tv", "show", "shows":
		return KindSeries, nil
	}
	return "", fmt.Errorf("unknown kind %q", s)
}

// Tables maps each kind to the table holding it
type Tables struct {
	Movie  string
	Series string
}

const (
	DefaultMovieTable  = "movies"
	DefaultSeriesTable = "series"
)

// Name returns the table for kind, falling back to the default names
func (t Tables) Name(kind Kind) (string, error) {
	switch kind {
	case KindMovie:
		if t.Movie == "" {
			return DefaultMovieTable, nil
		}
		return t.Movie, nil
	case KindSeries:
		if t.Series == "" {
			return DefaultSeriesTable, nil
		}
		return t.Series, nil
	}
	return "", fmt.Errorf("unknown kind %q", kind)
}

type Storage interface {
	RunMigrations(ctx context.Context) error
	Close() error
	TitleStorage
}

type TitleStorage interface {
	CreateTitle(ctx context.Context, kind Kind, title model.Title) (int64, error)
	GetTitle(ctx context.Context, kind Kind, id int64) (model.Title, error)
	ListTitles(ctx context.Context, kind Kind) ([]*model.Title, error)
	ListTitleIDs(ctx context.Context, kind Kind, ids ...int64) ([]int64, error)
	ListTitlesWithoutBackdrop(ctx context.Context, kind Kind) ([]*model.Title, error)
	UpdateTitle(ctx context.Context, kind Kind, id int64, update TitleUpdate) (model.Title, error)
	UpdateTitleBackdrop(ctx context.Context, kind Kind, id int64, backdrop string) error
}

// TitleUpdate describes a partial update of a title.
// Unspecified fields are left as is; fields explicitly set to null are cleared.
// The critic score and the backdrop are not part of it, they only change on add and backdrop refresh.
type TitleUpdate struct {
	Title    nullable.Nullable[string]
	Year     nullable.Nullable[string]
	Watched  nullable.Nullable[bool]
	Rating   nullable.Nullable[int32]
	Comments nullable.Nullable[string]
	Poster   nullable.Nullable[string]
	Summary  nullable.Nullable[string]
}

// Empty reports whether the update would change nothing
func (u TitleUpdate) Empty() bool {
	return !u.Title.IsSpecified() &&
		!u.Year.IsSpecified() &&
		!u.Watched.IsSpecified() &&
		!u.Rating.IsSpecified() &&
		!u.Comments.IsSpecified() &&
		!u.Poster.IsSpecified() &&
		!u.Summary.IsSpecified()
}

// Apply merges the update into title
func (u TitleUpdate) Apply(title *model.Title) {
	applyPtr(u.Title, &title.Title)
	applyPtr(u.Year, &title.Year)
	applyPtr(u.Rating, &title.Rating)
	applyPtr(u.Comments, &title.Comments)
	applyPtr(u.Poster, &title.Poster)
	applyPtr(u.Summary, &title.Summary)

	// watched is not nullable in storage so null means not watched
	if u.Watched.IsSpecified() {
		title.Watched = false
		if v, err := u.Watched.Get(); err == nil {
			title.Watched = v
		}
	}
}

func applyPtr[T any](field nullable.Nullable[T], dst **T) {
	if !field.IsSpecified() {
		return
	}

	if field.IsNull() {
		*dst = nil
		return
	}

	v := field.MustGet()
	*dst = &v
}
