package manager

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kasuboski/watchlist/config"
	"github.com/kasuboski/watchlist/pkg/omdb"
	"github.com/kasuboski/watchlist/pkg/storage"
	"github.com/kasuboski/watchlist/pkg/storage/sqlite"
	"github.com/kasuboski/watchlist/pkg/tmdb"
	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaManager_Functional(t *testing.T) {
	ctx := context.Background()

	mux := http.NewServeMux()
	mux.HandleFunc("/3/search/movie", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"page":1,"results":[
			{"id":603,"title":"The Matrix","release_date":"1999-03-30","poster_path":"/m.jpg"},
			{"id":604,"title":"The Matrix Reloaded","release_date":"2003-05-15"}]}`))
	})
	mux.HandleFunc("/3/movie/603/external_ids", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":603,"imdb_id":"tt0133093"}`))
	})
	mux.HandleFunc("/3/movie/603", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":603,"title":"The Matrix","backdrop_path":"/backdrop.jpg"}`))
	})
	mux.HandleFunc("/omdb/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Response":"True","Ratings":[{"Source":"Rotten Tomatoes","Value":"83%"}]}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	tmdbClient, err := tmdb.New(server.URL, "token", tmdb.WithHTTPClient(server.Client()))
	require.NoError(t, err)
	omdbClient, err := omdb.New(server.URL+"/omdb/", "key", omdb.WithHTTPClient(server.Client()))
	require.NoError(t, err)

	store, err := sqlite.New(ctx, ":memory:", storage.Tables{})
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.RunMigrations(ctx))

	m := New(tmdbClient, omdbClient, nil, store, tmdb.ImageURL{}, config.Manager{})

	results, err := m.SearchTitles(ctx, storage.KindMovie, "matrix")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.False(t, results[0].Added)

	added, err := m.AddTitle(ctx, storage.KindMovie, AddTitleRequest{
		ID:      603,
		Title:   results[0].Title.Title,
		Year:    results[0].Year,
		Poster:  results[0].Poster,
		Watched: false,
	})
	require.NoError(t, err)
	assert.Equal(t, "83%", *added.Critic)

	_, err = m.AddTitle(ctx, storage.KindMovie, AddTitleRequest{ID: 603, Title: ptr("Something Else")})
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)

	stored, err := m.GetTitles(ctx, storage.KindMovie, 603)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "The Matrix", *stored[0].Title)

	results, err = m.SearchTitles(ctx, storage.KindMovie, "matrix")
	require.NoError(t, err)
	assert.True(t, results[0].Added)
	assert.False(t, results[1].Added)

	updated, err := m.UpdateTitle(ctx, storage.KindMovie, UpdateTitleRequest{
		ID:      603,
		Watched: nullable.NewNullableWithValue(true),
		Rating:  nullable.NewNullableWithValue(int32(10)),
	})
	require.NoError(t, err)
	assert.True(t, updated.Watched)
	assert.Equal(t, "83%", *updated.Critic)

	refreshed, err := m.RefreshBackdrops(ctx, storage.KindMovie)
	require.NoError(t, err)
	require.Len(t, refreshed.Updated, 1)
	assert.Equal(t, "https://image.tmdb.org/t/p/original/backdrop.jpg", refreshed.Updated[0].Backdrop)

	refreshed, err = m.RefreshBackdrops(ctx, storage.KindMovie)
	require.NoError(t, err)
	assert.Empty(t, refreshed.Updated)

	titles, err := m.ListTitles(ctx, storage.KindMovie)
	require.NoError(t, err)
	require.Len(t, titles, 1)
	assert.Equal(t, int32(10), *titles[0].Rating)
}
