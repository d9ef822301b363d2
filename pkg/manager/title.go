package manager

import (
	"context"
	"errors"
	"fmt"

	"github.com/kasuboski/watchlist/pkg/logger"
	"github.com/kasuboski/watchlist/pkg/omdb"
	"github.com/kasuboski/watchlist/pkg/storage"
	"github.com/kasuboski/watchlist/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/watchlist/pkg/tmdb"
	"go.uber.org/zap"
)

// AddTitle stores a new title with its critic score.
// Adding an id that is already stored returns storage.ErrAlreadyExists.
func (m MediaManager) AddTitle(ctx context.Context, kind storage.Kind, request AddTitleRequest) (model.Title, error) {
	log := logger.FromCtx(ctx).With(zap.Int64("id", request.ID), zap.String("kind", string(kind)))

	if err := m.validate.Struct(request); err != nil {
		return model.Title{}, fmt.Errorf("%w: %s", ErrInvalidRequest, err.Error())
	}

	title := request.model()
	title.Critic = m.criticScore(ctx, kind, request.ID)

	_, err := m.storage.CreateTitle(ctx, kind, title)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			log.Debug("title already on watchlist")
		} else {
			log.Error("failed to store title", zap.Error(err))
		}
		return model.Title{}, err
	}

	log.Infow("added title", "title", title.Title)
	return title, nil
}

// AddTitleByID looks the id up in the catalog and adds it unwatched
func (m MediaManager) AddTitleByID(ctx context.Context, kind storage.Kind, id int64) (model.Title, error) {
	if err := m.validateID(id); err != nil {
		return model.Title{}, err
	}

	var (
		details *tmdb.Details
		err     error
	)
	switch kind {
	case storage.KindMovie:
		details, err = m.tmdb.MovieDetails(ctx, id)
	case storage.KindSeries:
		details, err = m.tmdb.TVDetails(ctx, id)
	default:
		return model.Title{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidRequest, kind)
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get details", zap.Int64("id", id), zap.Error(err))
		return model.Title{}, err
	}

	c := m.candidate(tmdb.SearchResult{
		ID:           id,
		Title:        details.Title,
		Name:         details.Name,
		ReleaseDate:  details.ReleaseDate,
		FirstAirDate: details.FirstAirDate,
		Overview:     details.Overview,
		PosterPath:   details.PosterPath,
		BackdropPath: details.BackdropPath,
	})
	return m.AddTitle(ctx, kind, AddTitleRequest{
		ID:       c.ID,
		Title:    c.Title,
		Year:     c.Year,
		Poster:   c.Poster,
		Summary:  c.Summary,
		Backdrop: c.Backdrop,
	})
}

// criticScore returns the Rotten Tomatoes score of a title if one can be found.
// A missing score never prevents the title from being added.
func (m MediaManager) criticScore(ctx context.Context, kind storage.Kind, id int64) *string {
	log := logger.FromCtx(ctx)

	if m.omdb == nil {
		return nil
	}

	var (
		ids *tmdb.ExternalIDs
		err error
	)
	if kind == storage.KindSeries {
		ids, err = m.tmdb.TVExternalIDs(ctx, id)
	} else {
		ids, err = m.tmdb.MovieExternalIDs(ctx, id)
	}
	if err != nil {
		log.Warnw("failed to get external ids", "id", id, "error", err)
		return nil
	}

	if ids.ImdbID == nil || *ids.ImdbID == "" {
		log.Debugw("title has no imdb id", "id", id)
		return nil
	}

	ratings, err := m.omdb.GetRatings(ctx, *ids.ImdbID)
	if err != nil {
		log.Warnw("failed to get ratings", "imdbID", *ids.ImdbID, "error", err)
		return nil
	}

	score, ok := ratings.Find(omdb.SourceRottenTomatoes)
	if !ok {
		return nil
	}
	return &score
}

// GetTitles returns the stored titles with the given id. It is empty when the id is unknown.
func (m MediaManager) GetTitles(ctx context.Context, kind storage.Kind, id int64) ([]model.Title, error) {
	if err := m.validateID(id); err != nil {
		return nil, err
	}

	title, err := m.storage.GetTitle(ctx, kind, id)
	if errors.Is(err, storage.ErrNotFound) {
		return []model.Title{}, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get title", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return []model.Title{title}, nil
}

// ListTitles lists every title of kind
func (m MediaManager) ListTitles(ctx context.Context, kind storage.Kind) ([]*model.Title, error) {
	titles, err := m.storage.ListTitles(ctx, kind)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list titles", zap.String("kind", string(kind)), zap.Error(err))
		return nil, err
	}
	return titles, nil
}

// UpdateTitle changes the fields present in the request and returns the stored title.
// An unknown id returns storage.ErrNotFound.
func (m MediaManager) UpdateTitle(ctx context.Context, kind storage.Kind, request UpdateTitleRequest) (model.Title, error) {
	log := logger.FromCtx(ctx).With(zap.Int64("id", request.ID), zap.String("kind", string(kind)))

	if request.ID <= 0 {
		return model.Title{}, fmt.Errorf("%w: id is required", ErrInvalidRequest)
	}

	if request.Rating.IsSpecified() && !request.Rating.IsNull() {
		rating := request.Rating.MustGet()
		if err := m.validate.Var(rating, "gte=0,lte=10"); err != nil {
			return model.Title{}, fmt.Errorf("%w: rating must be between 0 and 10, got %d", ErrInvalidRequest, rating)
		}
	}

	title, err := m.storage.UpdateTitle(ctx, kind, request.ID, request.update())
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Error("failed to update title", zap.Error(err))
		}
		return model.Title{}, err
	}

	log.Debug("updated title")
	return title, nil
}
