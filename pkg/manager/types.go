package manager

import (
	"encoding/json"

	"github.com/kasuboski/watchlist/pkg/storage"
	"github.com/kasuboski/watchlist/pkg/storage/sqlite/schema/gen/model"
	"github.com/oapi-codegen/nullable"
)

type SearchRequest struct {
	Search string `json:"search"`
}

// SearchResult is a catalog candidate shaped like a stored title.
// Added reports whether the id is already on the watchlist.
type SearchResult struct {
	model.Title
	Added bool `json:"added"`
}

type IDRequest struct {
	ID int64 `json:"id" validate:"gt=0"`
}

type BulkIDRequest struct {
	IDs []int64 `json:"ids" validate:"dive,gt=0"`
}

// AddTitleRequest is the record to store. The critic score is looked up, never taken from the caller.
type AddTitleRequest struct {
	ID       int64   `json:"id" validate:"gt=0"`
	Title    *string `json:"title"`
	Year     *string `json:"year"`
	Watched  bool    `json:"watched"`
	Rating   *int32  `json:"rating" validate:"omitempty,gte=0,lte=10"`
	Comments *string `json:"comments"`
	Poster   *string `json:"poster"`
	Summary  *string `json:"summary"`
	Backdrop *string `json:"backdrop"`
}

func (r AddTitleRequest) model() model.Title {
	return model.Title{
		ID:       r.ID,
		Title:    r.Title,
		Year:     r.Year,
		Watched:  r.Watched,
		Rating:   r.Rating,
		Comments: r.Comments,
		Poster:   r.Poster,
		Summary:  r.Summary,
	}
}

// UpdateTitleRequest is a partial record. Fields missing from the body are left alone,
// fields sent as null are cleared. Derived fields like added or available are ignored.
type UpdateTitleRequest struct {
	ID       int64                     `json:"id"`
	Title    nullable.Nullable[string] `json:"title,omitempty"`
	Year     nullable.Nullable[string] `json:"year,omitempty"`
	Watched  nullable.Nullable[bool]   `json:"watched,omitempty"`
	Rating   nullable.Nullable[int32]  `json:"rating,omitempty"`
	Comments nullable.Nullable[string] `json:"comments,omitempty"`
	Poster   nullable.Nullable[string] `json:"poster,omitempty"`
	Summary  nullable.Nullable[string] `json:"summary,omitempty"`
}

func (r UpdateTitleRequest) update() storage.TitleUpdate {
	return storage.TitleUpdate{
		Title:    r.Title,
		Year:     r.Year,
		Watched:  r.Watched,
		Rating:   r.Rating,
		Comments: r.Comments,
		Poster:   r.Poster,
		Summary:  r.Summary,
	}
}

type UpdatedBackdrop struct {
	Title    *string `json:"title"`
	Backdrop string  `json:"backdrop"`
}

type RefreshBackdropsResponse struct {
	Updated []UpdatedBackdrop `json:"updated"`
}

type AvailabilityResponse struct {
	Availability bool `json:"availability"`
	Requested    bool `json:"requested"`
}

type RequestResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}
