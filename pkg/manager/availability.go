package manager

import (
	"context"
	"fmt"

	"github.com/kasuboski/watchlist/pkg/cache"
	"github.com/kasuboski/watchlist/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Availability reports whether a movie is available or requested on the media server
func (m MediaManager) Availability(ctx context.Context, id int64) (AvailabilityResponse, error) {
	if m.ombi == nil {
		return AvailabilityResponse{}, fmt.Errorf("ombi: %w", ErrNotConfigured)
	}
	if err := m.validateID(id); err != nil {
		return AvailabilityResponse{}, err
	}

	a, err := m.ombi.MovieAvailability(ctx, id)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to check availability", zap.Int64("id", id), zap.Error(err))
		return AvailabilityResponse{}, err
	}

	return AvailabilityResponse{
		Availability: a.Available,
		Requested:    a.Requested,
	}, nil
}

// BulkAvailability checks many movies with bounded concurrency.
// Any failed lookup fails the whole call.
func (m MediaManager) BulkAvailability(ctx context.Context, ids []int64) (map[int64]AvailabilityResponse, error) {
	if m.ombi == nil {
		return nil, fmt.Errorf("ombi: %w", ErrNotConfigured)
	}
	if err := m.validate.Struct(BulkIDRequest{IDs: ids}); err != nil {
		return nil, fmt.Errorf("%w: ids must be positive catalog ids", ErrInvalidRequest)
	}

	results := cache.New[int64, AvailabilityResponse]()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.availabilityConcurrency())
	for _, id := range ids {
		if _, ok := results.Get(id); ok {
			continue
		}
		results.Set(id, AvailabilityResponse{})

		g.Go(func() error {
			a, err := m.Availability(gctx, id)
			if err != nil {
				return fmt.Errorf("availability of %d: %w", id, err)
			}
			results.Set(id, a)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results.Entries(), nil
}

// RequestTitle asks the media server to get a movie.
// Movies that are already requested or available return ErrAlreadyRequested without a new request.
func (m MediaManager) RequestTitle(ctx context.Context, id int64) (RequestResponse, error) {
	log := logger.FromCtx(ctx).With(zap.Int64("id", id))

	if m.ombi == nil {
		return RequestResponse{}, fmt.Errorf("ombi: %w", ErrNotConfigured)
	}
	if err := m.validateID(id); err != nil {
		return RequestResponse{}, err
	}

	a, err := m.ombi.MovieAvailability(ctx, id)
	if err != nil {
		log.Error("failed to check availability before request", zap.Error(err))
		return RequestResponse{}, err
	}

	if a.Available || a.Requested {
		log.Debugw("skipping request", "available", a.Available, "requested", a.Requested)
		return RequestResponse{}, ErrAlreadyRequested
	}

	data, err := m.ombi.RequestMovie(ctx, id)
	if err != nil {
		log.Error("failed to request movie", zap.Error(err))
		return RequestResponse{}, err
	}

	log.Info("requested movie")
	return RequestResponse{
		Success: true,
		Data:    data,
	}, nil
}
