package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kasuboski/watchlist/config"
	"github.com/kasuboski/watchlist/pkg/manager"
	"github.com/kasuboski/watchlist/pkg/ombi"
	ombiMocks "github.com/kasuboski/watchlist/pkg/ombi/mocks"
	"github.com/kasuboski/watchlist/pkg/storage"
	storageMocks "github.com/kasuboski/watchlist/pkg/storage/mocks"
	"github.com/kasuboski/watchlist/pkg/storage/sqlite"
	"github.com/kasuboski/watchlist/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/watchlist/pkg/tmdb"
	tmdbMocks "github.com/kasuboski/watchlist/pkg/tmdb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func ptr[T any](v T) *T {
	return &v
}

type testServer struct {
	*httptest.Server
	tmdb *tmdbMocks.MockClientInterface
}

// newTestServer serves the router over an in-memory sqlite store. ombiClient may be nil.
func newTestServer(t *testing.T, ombiClient manager.OmbiClientInterface) testServer {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.New(ctx, ":memory:", storage.Tables{})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.RunMigrations(ctx))

	tmdbClient := tmdbMocks.NewMockClientInterface(gomock.NewController(t))

	m := manager.New(tmdbClient, nil, ombiClient, store, tmdb.ImageURL{}, config.Manager{})

	s := New(zap.NewNop().Sugar(), m, NewSessionStore([]byte("0123456789abcdef0123456789abcdef")))
	srv := httptest.NewServer(s.Router())
	t.Cleanup(srv.Close)

	return testServer{Server: srv, tmdb: tmdbClient}
}

func (ts testServer) post(t *testing.T, path, body string) (int, []byte) {
	t.Helper()
	resp, err := ts.Client().Post(ts.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, b
}

func decodeError(t *testing.T, b []byte) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(b, &resp))
	return resp
}

func TestServer_Healthz(t *testing.T) {
	t.Run("healthz", func(t *testing.T) {
		s := Server{baseLogger: zap.NewNop().Sugar()}

		req, err := http.NewRequest("GET", "/healthz", nil)
		assert.NoError(t, err)

		rr := httptest.NewRecorder()

		handler := s.Healthz()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		assert.Equal(t, "application/json", rr.Header().Get("content-type"))

		var response GenericResponse
		err = json.Unmarshal(rr.Body.Bytes(), &response)

		assert.NoError(t, err)
		assert.Equal(t, "ok", response.Response)
	})
}

func TestServer_AddTitle(t *testing.T) {
	ts := newTestServer(t, nil)
	body := `{"id":603,"title":"The Matrix","year":"1999","watched":false}`

	status, b := ts.post(t, "/api/movie/add", body)
	require.Equal(t, http.StatusOK, status, string(b))

	var title model.Title
	require.NoError(t, json.Unmarshal(b, &title))
	assert.Equal(t, int64(603), title.ID)
	assert.Equal(t, ptr("The Matrix"), title.Title)

	status, b = ts.post(t, "/api/movie/add", body)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Movie already exists", decodeError(t, b).Error)

	t.Run("series is a separate list", func(t *testing.T) {
		status, _ := ts.post(t, "/api/series/add", body)
		assert.Equal(t, http.StatusOK, status)

		status, b := ts.post(t, "/api/series/add", body)
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, "Series already exists", decodeError(t, b).Error)
	})

	t.Run("rating out of range", func(t *testing.T) {
		status, b := ts.post(t, "/api/movie/add", `{"id":604,"rating":11}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "invalid_request", decodeError(t, b).Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		status, b := ts.post(t, "/api/movie/add", `{"id":`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "invalid request body", decodeError(t, b).Error)
	})
}

func TestServer_GetAndList(t *testing.T) {
	ts := newTestServer(t, nil)

	status, b := ts.post(t, "/api/movies", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(b))

	status, b = ts.post(t, "/api/movie/get", `{"id":603}`)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(b))

	status, _ = ts.post(t, "/api/movie/add", `{"id":603,"title":"The Matrix"}`)
	require.Equal(t, http.StatusOK, status)

	status, b = ts.post(t, "/api/movie/get", `{"id":603}`)
	require.Equal(t, http.StatusOK, status)
	var titles []model.Title
	require.NoError(t, json.Unmarshal(b, &titles))
	require.Len(t, titles, 1)
	assert.Equal(t, ptr("The Matrix"), titles[0].Title)

	resp, err := ts.Client().Get(ts.URL + "/api/movies")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&titles))
	assert.Len(t, titles, 1)
}

func TestServer_UpdateTitle(t *testing.T) {
	ts := newTestServer(t, nil)

	status, _ := ts.post(t, "/api/movie/add", `{"id":603,"title":"The Matrix","comments":"again"}`)
	require.Equal(t, http.StatusOK, status)

	t.Run("partial update", func(t *testing.T) {
		status, b := ts.post(t, "/api/movie/update", `{"id":603,"watched":true,"rating":9}`)
		require.Equal(t, http.StatusOK, status, string(b))

		var title model.Title
		require.NoError(t, json.Unmarshal(b, &title))
		assert.True(t, title.Watched)
		assert.Equal(t, ptr(int32(9)), title.Rating)
		assert.Equal(t, ptr("again"), title.Comments)
		assert.Equal(t, ptr("The Matrix"), title.Title)
	})

	t.Run("null clears", func(t *testing.T) {
		status, b := ts.post(t, "/api/movie/update", `{"id":603,"comments":null}`)
		require.Equal(t, http.StatusOK, status)

		var title model.Title
		require.NoError(t, json.Unmarshal(b, &title))
		assert.Nil(t, title.Comments)
	})

	t.Run("unknown id", func(t *testing.T) {
		status, b := ts.post(t, "/api/movie/update", `{"id":42,"watched":true}`)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "not_found", decodeError(t, b).Code)
	})

	t.Run("rating out of range", func(t *testing.T) {
		status, _ := ts.post(t, "/api/movie/update", `{"id":603,"rating":-1}`)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("missing id", func(t *testing.T) {
		status, _ := ts.post(t, "/api/movie/update", `{"watched":true}`)
		assert.Equal(t, http.StatusBadRequest, status)
	})
	t.Run("backdrop only changes on refresh", func(t *testing.T) {
		status, _ := ts.post(t, "/api/movie/add", `{"id":604,"title":"Reloaded","backdrop":"https://image.tmdb.org/t/p/original/r.jpg"}`)
		require.Equal(t, http.StatusOK, status)

		status, b := ts.post(t, "/api/movie/update", `{"id":604,"backdrop":"https://elsewhere/x.jpg","watched":true}`)
		require.Equal(t, http.StatusOK, status, string(b))

		status, b = ts.post(t, "/api/movie/get", `{"id":604}`)
		require.Equal(t, http.StatusOK, status)
		var titles []model.Title
		require.NoError(t, json.Unmarshal(b, &titles))
		require.Len(t, titles, 1)
		assert.True(t, titles[0].Watched)
		assert.Equal(t, ptr("https://image.tmdb.org/t/p/original/r.jpg"), titles[0].Backdrop)

		status, _ = ts.post(t, "/api/movie/update", `{"id":604,"backdrop":null}`)
		require.Equal(t, http.StatusOK, status)
		status, b = ts.post(t, "/api/movie/get", `{"id":604}`)
		require.Equal(t, http.StatusOK, status)
		require.NoError(t, json.Unmarshal(b, &titles))
		assert.Equal(t, ptr("https://image.tmdb.org/t/p/original/r.jpg"), titles[0].Backdrop)
	})
}

func TestServer_SearchTitles(t *testing.T) {
	t.Run("empty query", func(t *testing.T) {
		ts := newTestServer(t, nil)
		status, b := ts.post(t, "/api/movie/search", `{"search":""}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "empty_query", decodeError(t, b).Code)
	})

	t.Run("marks added", func(t *testing.T) {
		ts := newTestServer(t, nil)
		status, _ := ts.post(t, "/api/series/add", `{"id":1396,"title":"Breaking Bad"}`)
		require.Equal(t, http.StatusOK, status)

		ts.tmdb.EXPECT().SearchTV(gomock.Any(), "breaking").Return(&tmdb.SearchResponse{
			Results: []tmdb.SearchResult{
				{ID: 1396, Name: "Breaking Bad", FirstAirDate: "2008-01-20"},
				{ID: 2000, Name: "Breaking Point"},
			},
		}, nil)

		status, b := ts.post(t, "/api/series/search", `{"search":"breaking"}`)
		require.Equal(t, http.StatusOK, status, string(b))

		var results []manager.SearchResult
		require.NoError(t, json.Unmarshal(b, &results))
		require.Len(t, results, 2)
		assert.True(t, results[0].Added)
		assert.Equal(t, ptr("2008"), results[0].Year)
		assert.False(t, results[1].Added)
	})

	t.Run("catalog failure", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.tmdb.EXPECT().SearchMovie(gomock.Any(), "matrix").Return(nil, errors.New("unavailable"))

		status, b := ts.post(t, "/api/movie/search", `{"search":"matrix"}`)
		assert.Equal(t, http.StatusInternalServerError, status)
		resp := decodeError(t, b)
		assert.Equal(t, "Failed to search", resp.Error)
		assert.Contains(t, resp.Message, "unavailable")
	})
}

func TestServer_RefreshBackdrops(t *testing.T) {
	ts := newTestServer(t, nil)
	status, _ := ts.post(t, "/api/movie/add", `{"id":603,"title":"The Matrix"}`)
	require.Equal(t, http.StatusOK, status)

	ts.tmdb.EXPECT().MovieDetails(gomock.Any(), int64(603)).Return(&tmdb.Details{ID: 603, BackdropPath: ptr("/b.jpg")}, nil)

	status, b := ts.post(t, "/api/movies/updateBackdrops", "")
	require.Equal(t, http.StatusOK, status, string(b))
	assert.JSONEq(t, `{"updated":[{"title":"The Matrix","backdrop":"https://image.tmdb.org/t/p/original/b.jpg"}]}`, string(b))
}

func TestServer_Plex(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		ts := newTestServer(t, nil)
		status, b := ts.post(t, "/api/plex/availability", `{"id":603}`)
		assert.Equal(t, http.StatusServiceUnavailable, status)
		assert.Equal(t, "not_configured", decodeError(t, b).Code)
	})

	t.Run("availability", func(t *testing.T) {
		client := ombiMocks.NewMockClientInterface(gomock.NewController(t))
		client.EXPECT().MovieAvailability(gomock.Any(), int64(603)).Return(&ombi.Availability{Available: true}, nil)
		ts := newTestServer(t, client)

		status, b := ts.post(t, "/api/plex/availability", `{"id":603}`)
		require.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"availability":true,"requested":false}`, string(b))
	})

	t.Run("bulk availability", func(t *testing.T) {
		client := ombiMocks.NewMockClientInterface(gomock.NewController(t))
		client.EXPECT().MovieAvailability(gomock.Any(), int64(603)).Return(&ombi.Availability{Available: true}, nil)
		client.EXPECT().MovieAvailability(gomock.Any(), int64(604)).Return(&ombi.Availability{Requested: true}, nil)
		ts := newTestServer(t, client)

		status, b := ts.post(t, "/api/plex/availability/bulk", `{"ids":[603,604]}`)
		require.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"603":{"availability":true,"requested":false},"604":{"availability":false,"requested":true}}`, string(b))
	})

	t.Run("request", func(t *testing.T) {
		client := ombiMocks.NewMockClientInterface(gomock.NewController(t))
		client.EXPECT().MovieAvailability(gomock.Any(), int64(603)).Return(&ombi.Availability{}, nil)
		client.EXPECT().RequestMovie(gomock.Any(), int64(603)).Return(json.RawMessage(`{"result":true}`), nil)
		ts := newTestServer(t, client)

		status, b := ts.post(t, "/api/plex/request", `{"id":603}`)
		require.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"success":true,"data":{"result":true}}`, string(b))
	})

	t.Run("missing or negative id", func(t *testing.T) {
		// the mock fails the test on any call
		client := ombiMocks.NewMockClientInterface(gomock.NewController(t))
		ts := newTestServer(t, client)

		for path, body := range map[string]string{
			"/api/plex/request":           `{}`,
			"/api/plex/availability":      `{"id":-5}`,
			"/api/plex/availability/bulk": `{"ids":[603,0]}`,
			"/api/movie/get":              `{}`,
		} {
			status, b := ts.post(t, path, body)
			assert.Equal(t, http.StatusBadRequest, status, path)
			assert.Equal(t, "invalid_request", decodeError(t, b).Code, path)
		}
	})

	t.Run("already requested", func(t *testing.T) {
		client := ombiMocks.NewMockClientInterface(gomock.NewController(t))
		client.EXPECT().MovieAvailability(gomock.Any(), int64(603)).Return(&ombi.Availability{Requested: true}, nil)
		ts := newTestServer(t, client)

		status, b := ts.post(t, "/api/plex/request", `{"id":603}`)
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, "already_requested", decodeError(t, b).Code)
	})
}

func TestServer_ListTitles_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)
	store.EXPECT().ListTitles(gomock.Any(), storage.KindSeries).Return(nil, errors.New("disk I/O error"))

	m := manager.New(tmdbMocks.NewMockClientInterface(ctrl), nil, nil, store, tmdb.ImageURL{}, config.Manager{})
	s := New(zap.NewNop().Sugar(), m, nil)

	rr := httptest.NewRecorder()
	s.ListTitles(storage.KindSeries).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/series", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	resp := decodeError(t, rr.Body.Bytes())
	assert.Equal(t, "Failed to list titles", resp.Error)
	assert.Equal(t, "disk I/O error", resp.Message)
}

func TestServer_WatchlistPage(t *testing.T) {
	client := ombiMocks.NewMockClientInterface(gomock.NewController(t))
	client.EXPECT().MovieAvailability(gomock.Any(), gomock.Any()).Return(&ombi.Availability{Available: true}, nil).AnyTimes()
	ts := newTestServer(t, client)

	status, _ := ts.post(t, "/api/movie/add", `{"id":603,"title":"The Matrix","year":"1999"}`)
	require.Equal(t, http.StatusOK, status)

	resp, err := ts.Client().Get(ts.URL + "/?layout=list&sort=year")
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("content-type"), "text/html")
	assert.Contains(t, string(b), "The Matrix")
	assert.Contains(t, string(b), "Available")

	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)

	t.Run("options come from the session", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, ts.URL+"/", nil)
		require.NoError(t, err)
		for _, c := range cookies {
			req.AddCookie(c)
		}

		resp, err := ts.Client().Do(req)
		require.NoError(t, err)
		b, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)

		assert.Contains(t, string(b), `<option value="list" selected>`)
	})

	t.Run("series page", func(t *testing.T) {
		resp, err := ts.Client().Get(ts.URL + "/series")
		require.NoError(t, err)
		b, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(b), "Series")
	})
}

func TestServer_SearchAndAddFromPage(t *testing.T) {
	ts := newTestServer(t, nil)

	get := func(path string) string {
		resp, err := ts.Client().Get(ts.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		return string(b)
	}

	page := get("/series")
	assert.Contains(t, page, `<form class="search" data-search>`)
	assert.Contains(t, page, `placeholder="Add a series"`)

	ts.tmdb.EXPECT().SearchTV(gomock.Any(), "lost").Return(&tmdb.SearchResponse{
		Results: []tmdb.SearchResult{{ID: 4607, Name: "Lost", FirstAirDate: "2004-09-22", Overview: "Survivors of a plane crash."}},
	}, nil).Times(2)

	status, b := ts.post(t, "/api/series/search", `{"search":"lost"}`)
	require.Equal(t, http.StatusOK, status, string(b))
	var results []manager.SearchResult
	require.NoError(t, json.Unmarshal(b, &results))
	require.Len(t, results, 1)
	require.False(t, results[0].Added)

	// the add button posts the search result back unwatched
	r := results[0]
	add, err := json.Marshal(map[string]any{
		"id":       r.ID,
		"title":    r.Title.Title,
		"year":     r.Year,
		"poster":   r.Poster,
		"summary":  r.Summary,
		"backdrop": r.Backdrop,
		"watched":  false,
	})
	require.NoError(t, err)
	status, b = ts.post(t, "/api/series/add", string(add))
	require.Equal(t, http.StatusOK, status, string(b))

	status, b = ts.post(t, "/api/series/search", `{"search":"lost"}`)
	require.Equal(t, http.StatusOK, status, string(b))
	require.NoError(t, json.Unmarshal(b, &results))
	require.Len(t, results, 1)
	assert.True(t, results[0].Added)

	page = get("/series")
	assert.Contains(t, page, "Lost")
	assert.Contains(t, page, "Survivors of a plane crash.")
}
