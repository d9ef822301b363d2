package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/kasuboski/watchlist/pkg/manager"
	"github.com/kasuboski/watchlist/pkg/storage"
	"go.uber.org/zap"
)

type GenericResponse struct {
	Response any `json:"response"`
}

// ErrorResponse is the body of every failed api call
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// Server houses all dependencies for the watchlist server to work such as loggers, clients, configurations, etc.
type Server struct {
	baseLogger *zap.SugaredLogger
	manager    manager.MediaManager
	sessions   sessions.Store
}

// New creates a new watchlist server
func New(logger *zap.SugaredLogger, manager manager.MediaManager, store sessions.Store) Server {
	return Server{
		baseLogger: logger,
		manager:    manager,
		sessions:   store,
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, resp ErrorResponse) error {
	return writeResponse(w, status, resp)
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// Router builds the handler tree without starting to listen
func (s Server) Router() http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	rtr.HandleFunc("/", s.WatchlistPage(storage.KindMovie)).Methods(http.MethodGet)
	rtr.HandleFunc("/series", s.WatchlistPage(storage.KindSeries)).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	api.HandleFunc("/movies", s.ListTitles(storage.KindMovie)).Methods(http.MethodGet, http.MethodPost)
	api.HandleFunc("/series", s.ListTitles(storage.KindSeries)).Methods(http.MethodGet, http.MethodPost)
	api.HandleFunc("/movies/updateBackdrops", s.RefreshBackdrops(storage.KindMovie)).Methods(http.MethodPost)
	api.HandleFunc("/series/updateBackdrops", s.RefreshBackdrops(storage.KindSeries)).Methods(http.MethodPost)

	for prefix, kind := range map[string]storage.Kind{"/movie": storage.KindMovie, "/series": storage.KindSeries} {
		sub := api.PathPrefix(prefix).Subrouter()
		sub.HandleFunc("/search", s.SearchTitles(kind)).Methods(http.MethodPost)
		sub.HandleFunc("/add", s.AddTitle(kind)).Methods(http.MethodPost)
		sub.HandleFunc("/get", s.GetTitle(kind)).Methods(http.MethodPost)
		sub.HandleFunc("/update", s.UpdateTitle(kind)).Methods(http.MethodPost)
	}

	plex := api.PathPrefix("/plex").Subrouter()
	plex.HandleFunc("/availability", s.Availability()).Methods(http.MethodPost)
	plex.HandleFunc("/availability/bulk", s.BulkAvailability()).Methods(http.MethodPost)
	plex.HandleFunc("/request", s.RequestTitle()).Methods(http.MethodPost)

	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
	)(rtr)
}

// Serve starts the http server and blocks until ctx is cancelled
func (s Server) Serve(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		s.baseLogger.Info("serving...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}
