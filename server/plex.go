package server

import (
	"net/http"

	"github.com/kasuboski/watchlist/pkg/manager"
	"github.com/kasuboski/watchlist/pkg/storage"
)

// Availability reports whether a movie is available or requested on the media server
func (s Server) Availability() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request manager.IDRequest
		if err := decodeBody(r, &request); err != nil {
			writeManagerError(w, r, storage.KindMovie, "Failed to check availability", err)
			return
		}

		res, err := s.manager.Availability(r.Context(), request.ID)
		if err != nil {
			writeManagerError(w, r, storage.KindMovie, "Failed to check availability", err)
			return
		}

		respond(w, r, res)
	}
}

// BulkAvailability reports availability for many movies keyed by id
func (s Server) BulkAvailability() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request manager.BulkIDRequest
		if err := decodeBody(r, &request); err != nil {
			writeManagerError(w, r, storage.KindMovie, "Failed to check availability", err)
			return
		}

		res, err := s.manager.BulkAvailability(r.Context(), request.IDs)
		if err != nil {
			writeManagerError(w, r, storage.KindMovie, "Failed to check availability", err)
			return
		}

		respond(w, r, res)
	}
}

func (s Server) RequestTitle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request manager.IDRequest
		if err := decodeBody(r, &request); err != nil {
			writeManagerError(w, r, storage.KindMovie, "Failed to request movie", err)
			return
		}

		res, err := s.manager.RequestTitle(r.Context(), request.ID)
		if err != nil {
			writeManagerError(w, r, storage.KindMovie, "Failed to request movie", err)
			return
		}

		respond(w, r, res)
	}
}
