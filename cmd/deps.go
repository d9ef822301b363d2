package cmd

import (
	"context"
	"fmt"

	"github.com/kasuboski/watchlist/config"
	"github.com/kasuboski/watchlist/pkg/http"
	"github.com/kasuboski/watchlist/pkg/manager"
	"github.com/kasuboski/watchlist/pkg/omdb"
	"github.com/kasuboski/watchlist/pkg/ombi"
	"github.com/kasuboski/watchlist/pkg/storage"
	"github.com/kasuboski/watchlist/pkg/storage/mysql"
	"github.com/kasuboski/watchlist/pkg/storage/sqlite"
	"github.com/kasuboski/watchlist/pkg/tmdb"
	"github.com/spf13/viper"
)

func readConfig() (config.Config, error) {
	cfg, err := config.New(viper.GetViper())
	if err != nil {
		return cfg, fmt.Errorf("failed to read configuration: %w", err)
	}

	return cfg, cfg.Validate()
}

// openStorage connects to the configured store and brings its schema up to date
func openStorage(ctx context.Context, cfg config.Storage) (storage.Storage, error) {
	tables := storage.Tables{Movie: cfg.MovieTable, Series: cfg.SeriesTable}

	var (
		store storage.Storage
		err   error
	)
	switch cfg.Driver {
	case config.StorageDriverMySQL:
		store, err = mysql.New(ctx, cfg.DSN, tables)
	default:
		store, err = sqlite.New(ctx, cfg.FilePath, tables)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create storage connection: %w", err)
	}

	if err := store.RunMigrations(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// newManager wires the api clients. OMDb and Ombi are left out when they are not configured.
func newManager(cfg config.Config, store storage.Storage) (manager.MediaManager, error) {
	doer := http.NewRateLimitedHTTPClient(
		http.WithMaxRetries(cfg.TMDB.MaxRetries),
		http.WithBaseBackoff(cfg.TMDB.BaseBackoff),
	)

	tmdbClient, err := tmdb.New(cfg.TMDB.URI, cfg.TMDB.APIKey, tmdb.WithHTTPClient(doer))
	if err != nil {
		return manager.MediaManager{}, fmt.Errorf("failed to create tmdb client: %w", err)
	}

	var omdbClient manager.OMDbClientInterface
	if cfg.OMDb.APIKey != "" {
		c, err := omdb.New(cfg.OMDb.URI, cfg.OMDb.APIKey)
		if err != nil {
			return manager.MediaManager{}, fmt.Errorf("failed to create omdb client: %w", err)
		}
		omdbClient = c
	}

	var ombiClient manager.OmbiClientInterface
	if cfg.Ombi.URI != "" {
		c, err := ombi.New(cfg.Ombi.URI, cfg.Ombi.APIKey, ombi.WithRequestOnBehalf(cfg.Ombi.RequestOnBehalf))
		if err != nil {
			return manager.MediaManager{}, fmt.Errorf("failed to create ombi client: %w", err)
		}
		ombiClient = c
	}

	images := tmdb.ImageURL{Base: cfg.TMDB.ImageURI}
	return manager.New(tmdbClient, omdbClient, ombiClient, store, images, cfg.Manager), nil
}
