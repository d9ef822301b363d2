package manager

import (
	"context"
	"fmt"
	"strings"

	"github.com/kasuboski/watchlist/pkg/logger"
	"github.com/kasuboski/watchlist/pkg/storage"
	"github.com/kasuboski/watchlist/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/watchlist/pkg/tmdb"
	"go.uber.org/zap"
)

// SearchTitles queries tmdb and marks the results that are already on the watchlist
func (m MediaManager) SearchTitles(ctx context.Context, kind storage.Kind, query string) ([]SearchResult, error) {
	log := logger.FromCtx(ctx)

	query = strings.TrimSpace(query)
	if query == "" {
		log.Debug("search query is empty", zap.String("kind", string(kind)))
		return nil, ErrEmptyQuery
	}

	var (
		res *tmdb.SearchResponse
		err error
	)
	switch kind {
	case storage.KindMovie:
		res, err = m.tmdb.SearchMovie(ctx, query)
	case storage.KindSeries:
		res, err = m.tmdb.SearchTV(ctx, query)
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidRequest, kind)
	}
	if err != nil {
		log.Error("search failed request", zap.String("kind", string(kind)), zap.Error(err))
		return nil, err
	}

	ids := make([]int64, len(res.Results))
	for i, r := range res.Results {
		ids[i] = r.ID
	}

	stored, err := m.storage.ListTitleIDs(ctx, kind, ids...)
	if err != nil {
		log.Error("failed to look up stored titles", zap.Error(err))
		return nil, err
	}

	added := make(map[int64]struct{}, len(stored))
	for _, id := range stored {
		added[id] = struct{}{}
	}

	results := make([]SearchResult, 0, len(res.Results))
	for _, r := range res.Results {
		_, ok := added[r.ID]
		results = append(results, SearchResult{
			Title: m.candidate(r),
			Added: ok,
		})
	}

	log.Debugw("search complete", "kind", kind, "query", query, "results", len(results))
	return results, nil
}

func (m MediaManager) candidate(r tmdb.SearchResult) model.Title {
	title := model.Title{
		ID:       r.ID,
		Title:    ptrOrNil(r.DisplayTitle()),
		Year:     ptrOrNil(r.Year()),
		Summary:  ptrOrNil(r.Overview),
		Poster:   m.images.Poster(r.PosterPath),
		Backdrop: m.images.Backdrop(r.BackdropPath),
	}
	return title
}

func ptrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
