package model

// Title is a row of either watchlist table. Movies and series share the same shape.
type Title struct {
	ID       int64   `sql:"primary_key" json:"id"`
	Title    *string `json:"title"`
	Year     *string `json:"year"`
	Watched  bool    `json:"watched"`
	Rating   *int32  `json:"rating"`
	Comments *string `json:"comments"`
	Poster   *string `json:"poster"`
	Summary  *string `json:"summary"`
	Critic   *string `json:"critic"`
	Backdrop *string `json:"backdrop"`
}
