package manager

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kasuboski/watchlist/config"
	"github.com/kasuboski/watchlist/pkg/omdb"
	"github.com/kasuboski/watchlist/pkg/ombi"
	"github.com/kasuboski/watchlist/pkg/storage"
	"github.com/kasuboski/watchlist/pkg/tmdb"
)

var (
	ErrEmptyQuery       = errors.New("search query is empty")
	ErrAlreadyRequested = errors.New("title is already requested or available")
	ErrInvalidRequest   = errors.New("invalid request")
	ErrNotConfigured    = errors.New("integration is not configured")
)

const defaultAvailabilityConcurrency = 8

type TMDBClientInterface tmdb.ClientInterface
type OMDbClientInterface omdb.ClientInterface
type OmbiClientInterface ombi.ClientInterface

// MediaManager implements the watchlist use cases on top of the store and the external apis.
// omdb and ombi may be nil when they are not configured.
type MediaManager struct {
	tmdb     TMDBClientInterface
	omdb     OMDbClientInterface
	ombi     OmbiClientInterface
	storage  storage.Storage
	images   tmdb.ImageURL
	config   config.Manager
	validate *validator.Validate
}

func New(tmdbClient TMDBClientInterface, omdbClient OMDbClientInterface, ombiClient OmbiClientInterface, storage storage.Storage, images tmdb.ImageURL, managerConfig config.Manager) MediaManager {
	return MediaManager{
		tmdb:     tmdbClient,
		omdb:     omdbClient,
		ombi:     ombiClient,
		storage:  storage,
		images:   images,
		config:   managerConfig,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (m MediaManager) validateID(id int64) error {
	if err := m.validate.Struct(IDRequest{ID: id}); err != nil {
		return fmt.Errorf("%w: id must be a positive catalog id, got %d", ErrInvalidRequest, id)
	}
	return nil
}

func (m MediaManager) availabilityConcurrency() int {
	if m.config.AvailabilityConcurrency <= 0 {
		return defaultAvailabilityConcurrency
	}
	return m.config.AvailabilityConcurrency
}
