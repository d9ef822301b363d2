package tmdb

// SearchResponse is a page of movie or tv search results
type SearchResponse struct {
	Page         int            `json:"page"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
	Results      []SearchResult `json:"results"`
}

// SearchResult covers both movie and tv results. Movies populate Title and ReleaseDate,
// tv shows populate Name and FirstAirDate.
type SearchResult struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
}

// DisplayTitle returns the title for movies and the name for tv shows
func (r SearchResult) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Name
}

// Year returns the release year, or an empty string when the date is unknown
func (r SearchResult) Year() string {
	date := r.ReleaseDate
	if date == "" {
		date = r.FirstAirDate
	}
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}

// ExternalIDs are the identifiers other providers use for a title
type ExternalIDs struct {
	ID     int64   `json:"id"`
	ImdbID *string `json:"imdb_id"`
	TvdbID *int64  `json:"tvdb_id"`
}

// Details is the subset of the movie and tv details payloads the watchlist reads
type Details struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
}
