package manager

import (
	"context"

	"github.com/kasuboski/watchlist/pkg/logger"
	"github.com/kasuboski/watchlist/pkg/storage"
	"github.com/kasuboski/watchlist/pkg/tmdb"
	"go.uber.org/zap"
)

// RefreshBackdrops fills in the backdrop of every title that lacks one, one title at a time.
// Titles updated before a failure stay updated.
func (m MediaManager) RefreshBackdrops(ctx context.Context, kind storage.Kind) (RefreshBackdropsResponse, error) {
	log := logger.FromCtx(ctx).With(zap.String("kind", string(kind)))
	res := RefreshBackdropsResponse{Updated: make([]UpdatedBackdrop, 0)}

	titles, err := m.storage.ListTitlesWithoutBackdrop(ctx, kind)
	if err != nil {
		log.Error("failed to list titles without backdrop", zap.Error(err))
		return res, err
	}

	for _, title := range titles {
		var details *tmdb.Details
		if kind == storage.KindSeries {
			details, err = m.tmdb.TVDetails(ctx, title.ID)
		} else {
			details, err = m.tmdb.MovieDetails(ctx, title.ID)
		}
		if err != nil {
			log.Errorw("failed to get details", "id", title.ID, "error", err)
			return res, err
		}

		backdrop := m.images.Backdrop(details.BackdropPath)
		if backdrop == nil {
			log.Debugw("no backdrop available", "id", title.ID)
			continue
		}

		err = m.storage.UpdateTitleBackdrop(ctx, kind, title.ID, *backdrop)
		if err != nil {
			log.Errorw("failed to store backdrop", "id", title.ID, "error", err)
			return res, err
		}

		res.Updated = append(res.Updated, UpdatedBackdrop{
			Title:    title.Title,
			Backdrop: *backdrop,
		})
	}

	log.Infow("refreshed backdrops", "checked", len(titles), "updated", len(res.Updated))
	return res, nil
}
