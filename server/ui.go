package server

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"

	"github.com/gorilla/sessions"
	"github.com/kasuboski/watchlist/pkg/logger"
	"github.com/kasuboski/watchlist/pkg/manager"
	"github.com/kasuboski/watchlist/pkg/storage"
	"github.com/kasuboski/watchlist/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/watchlist/pkg/view"
	"go.uber.org/zap"
)

const sessionName = "watchlist"

// NewSessionStore returns a cookie store for display preferences
func NewSessionStore(key []byte) *sessions.CookieStore {
	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 365,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// viewOptions resolves the display options from the query string, then the session, then defaults
func (s Server) viewOptions(w http.ResponseWriter, r *http.Request, kind storage.Kind) view.Options {
	log := logger.FromCtx(r.Context())
	opts := view.DefaultOptions()

	if s.sessions == nil {
		return opts.Merge(r.URL.Query())
	}

	session, err := s.sessions.Get(r, sessionName)
	if err != nil {
		log.Debug("discarding invalid session", zap.Error(err))
	}

	if saved, ok := session.Values[string(kind)].(string); ok {
		if q, err := url.ParseQuery(saved); err == nil {
			opts = opts.Merge(q)
		}
	}
	opts = opts.Merge(r.URL.Query())

	session.Values[string(kind)] = opts.Query().Encode()
	if err := session.Save(r, w); err != nil {
		log.Warn("failed to save session", zap.Error(err))
	}

	return opts
}

// WatchlistPage renders the watchlist of kind as html
func (s Server) WatchlistPage(kind storage.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		opts := s.viewOptions(w, r, kind)

		titles, err := s.manager.ListTitles(r.Context(), kind)
		if err != nil {
			http.Error(w, "failed to list titles", http.StatusInternalServerError)
			return
		}

		var status map[int64]view.Status
		if kind == storage.KindMovie {
			status = s.availability(r, titles)
		}

		var buf bytes.Buffer
		if err := view.Render(&buf, view.NewPage(kind, titles, status, opts)); err != nil {
			log.Error("failed to render page", zap.Error(err))
			http.Error(w, "failed to render page", http.StatusInternalServerError)
			return
		}

		w.Header().Set("content-type", "text/html; charset=utf-8")
		buf.WriteTo(w)
	}
}

// availability looks up the request status of every movie. It is nil when requests are unavailable.
func (s Server) availability(r *http.Request, titles []*model.Title) map[int64]view.Status {
	log := logger.FromCtx(r.Context())

	ids := make([]int64, len(titles))
	for i, t := range titles {
		ids[i] = t.ID
	}

	res, err := s.manager.BulkAvailability(r.Context(), ids)
	if errors.Is(err, manager.ErrNotConfigured) {
		return nil
	}
	if err != nil {
		log.Warn("failed to check availability", zap.Error(err))
		return nil
	}

	status := make(map[int64]view.Status, len(res))
	for id, a := range res {
		status[id] = view.Status{Available: a.Availability, Requested: a.Requested}
	}
	return status
}
