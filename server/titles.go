package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/kasuboski/watchlist/pkg/logger"
	"github.com/kasuboski/watchlist/pkg/manager"
	"github.com/kasuboski/watchlist/pkg/storage"
	"github.com/kasuboski/watchlist/pkg/storage/sqlite/schema/gen/model"
	"go.uber.org/zap"
)

var errInvalidBody = errors.New("invalid request body")

// decodeBody reads a json body into v. An empty body leaves v untouched.
func decodeBody(r *http.Request, v any) error {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		return errInvalidBody
	}

	if len(strings.TrimSpace(string(b))) == 0 {
		return nil
	}

	if err := json.Unmarshal(b, v); err != nil {
		logger.FromCtx(r.Context()).Debug("invalid request body", zap.ByteString("body", b))
		return errInvalidBody
	}
	return nil
}

func kindName(kind storage.Kind) string {
	if kind == storage.KindSeries {
		return "Series"
	}
	return "Movie"
}

// writeManagerError maps errors from the manager onto status codes
func writeManagerError(w http.ResponseWriter, r *http.Request, kind storage.Kind, failure string, err error) {
	log := logger.FromCtx(r.Context())

	var (
		status = http.StatusInternalServerError
		resp   = ErrorResponse{Error: failure, Message: err.Error()}
	)

	switch {
	case errors.Is(err, errInvalidBody):
		status = http.StatusBadRequest
		resp = ErrorResponse{Error: err.Error(), Code: "invalid_body"}
	case errors.Is(err, manager.ErrEmptyQuery):
		status = http.StatusBadRequest
		resp = ErrorResponse{Error: "Search query is required", Code: "empty_query"}
	case errors.Is(err, manager.ErrInvalidRequest):
		status = http.StatusBadRequest
		resp = ErrorResponse{Error: err.Error(), Code: "invalid_request"}
	case errors.Is(err, storage.ErrAlreadyExists):
		status = http.StatusConflict
		resp = ErrorResponse{Error: kindName(kind) + " already exists", Code: "already_exists"}
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
		resp = ErrorResponse{Error: kindName(kind) + " not found", Code: "not_found"}
	case errors.Is(err, manager.ErrAlreadyRequested):
		status = http.StatusConflict
		resp = ErrorResponse{Error: "Movie already requested or available", Code: "already_requested"}
	case errors.Is(err, manager.ErrNotConfigured):
		status = http.StatusServiceUnavailable
		resp = ErrorResponse{Error: failure, Code: "not_configured", Message: err.Error()}
	}

	if status >= http.StatusInternalServerError {
		log.Errorw(failure, "error", err)
	}

	if werr := writeErrorResponse(w, status, resp); werr != nil {
		log.Error("failed to write response", zap.Error(werr))
	}
}

func respond(w http.ResponseWriter, r *http.Request, body any) {
	if err := writeResponse(w, http.StatusOK, body); err != nil {
		logger.FromCtx(r.Context()).Error("failed to write response", zap.Error(err))
	}
}

// ListTitles returns every stored title of kind
func (s Server) ListTitles(kind storage.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titles, err := s.manager.ListTitles(r.Context(), kind)
		if err != nil {
			writeManagerError(w, r, kind, "Failed to list titles", err)
			return
		}

		if titles == nil {
			titles = []*model.Title{}
		}
		respond(w, r, titles)
	}
}

// SearchTitles searches the catalog and marks results that are already on the watchlist
func (s Server) SearchTitles(kind storage.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request manager.SearchRequest
		if err := decodeBody(r, &request); err != nil {
			writeManagerError(w, r, kind, "Failed to search", err)
			return
		}

		results, err := s.manager.SearchTitles(r.Context(), kind, request.Search)
		if err != nil {
			writeManagerError(w, r, kind, "Failed to search", err)
			return
		}

		respond(w, r, results)
	}
}

func (s Server) AddTitle(kind storage.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request manager.AddTitleRequest
		if err := decodeBody(r, &request); err != nil {
			writeManagerError(w, r, kind, "Failed to add title", err)
			return
		}

		title, err := s.manager.AddTitle(r.Context(), kind, request)
		if err != nil {
			writeManagerError(w, r, kind, "Failed to add title", err)
			return
		}

		respond(w, r, title)
	}
}

// GetTitle returns an array holding the title, empty when the id is unknown
func (s Server) GetTitle(kind storage.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request manager.IDRequest
		if err := decodeBody(r, &request); err != nil {
			writeManagerError(w, r, kind, "Failed to get title", err)
			return
		}

		titles, err := s.manager.GetTitles(r.Context(), kind, request.ID)
		if err != nil {
			writeManagerError(w, r, kind, "Failed to get title", err)
			return
		}

		respond(w, r, titles)
	}
}

func (s Server) UpdateTitle(kind storage.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request manager.UpdateTitleRequest
		if err := decodeBody(r, &request); err != nil {
			writeManagerError(w, r, kind, "Failed to update title", err)
			return
		}

		title, err := s.manager.UpdateTitle(r.Context(), kind, request)
		if err != nil {
			writeManagerError(w, r, kind, "Failed to update title", err)
			return
		}

		respond(w, r, title)
	}
}

func (s Server) RefreshBackdrops(kind storage.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := s.manager.RefreshBackdrops(r.Context(), kind)
		if err != nil {
			writeManagerError(w, r, kind, "Failed to update backdrops", err)
			return
		}

		respond(w, r, res)
	}
}
