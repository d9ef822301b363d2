package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/oapi-codegen/runtime"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_tmdb_client.go github.com/kasuboski/watchlist/pkg/tmdb ClientInterface

const (
	DefaultURI      = "https://api.themoviedb.org"
	DefaultImageURI = "https://image.tmdb.org/t/p"

	posterSize   = "w500"
	backdropSize = "original"
)

// HttpRequestDoer performs HTTP requests.
type HttpRequestDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RequestEditorFn is called on every request before it is sent
type RequestEditorFn func(ctx context.Context, req *http.Request) error

// ClientInterface is the part of the TMDB v3 api the watchlist uses
type ClientInterface interface {
	SearchMovie(ctx context.Context, query string) (*SearchResponse, error)
	SearchTV(ctx context.Context, query string) (*SearchResponse, error)
	MovieExternalIDs(ctx context.Context, movieID int64) (*ExternalIDs, error)
	TVExternalIDs(ctx context.Context, seriesID int64) (*ExternalIDs, error)
	MovieDetails(ctx context.Context, movieID int64) (*Details, error)
	TVDetails(ctx context.Context, seriesID int64) (*Details, error)
}

type Client struct {
	Server         string
	Client         HttpRequestDoer
	RequestEditors []RequestEditorFn
}

// ClientOption allows setting custom parameters during construction
type ClientOption func(*Client) error

// New creates a TMDB client authenticating with the given bearer token
func New(server, apiKey string, opts ...ClientOption) (*Client, error) {
	opts = append([]ClientOption{WithRequestEditorFn(SetRequestAPIKey(apiKey))}, opts...)
	return NewClient(server, opts...)
}

// NewClient creates a new Client, with reasonable defaults
func NewClient(server string, opts ...ClientOption) (*Client, error) {
	client := Client{
		Server: server,
	}

	for _, o := range opts {
		if err := o(&client); err != nil {
			return nil, err
		}
	}

	if client.Server == "" {
		client.Server = DefaultURI
	}
	if !strings.HasSuffix(client.Server, "/") {
		client.Server += "/"
	}

	if client.Client == nil {
		client.Client = &http.Client{}
	}

	return &client, nil
}

// WithHTTPClient allows overriding the default Doer
func WithHTTPClient(doer HttpRequestDoer) ClientOption {
	return func(c *Client) error {
		c.Client = doer
		return nil
	}
}

// WithRequestEditorFn allows setting up a callback function, which will be
// called right before sending the request
func WithRequestEditorFn(fn RequestEditorFn) ClientOption {
	return func(c *Client) error {
		c.RequestEditors = append(c.RequestEditors, fn)
		return nil
	}
}

func SetRequestAPIKey(apiKey string) RequestEditorFn {
	return func(ctx context.Context, req *http.Request) error {
		req.Header.Add("Authorization", "Bearer "+apiKey)
		req.Header.Add("accept", "application/json")
		return nil
	}
}

// SearchMovie searches movies by title
func (c *Client) SearchMovie(ctx context.Context, query string) (*SearchResponse, error) {
	return c.search(ctx, "3/search/movie", query)
}

// SearchTV searches tv shows by name
func (c *Client) SearchTV(ctx context.Context, query string) (*SearchResponse, error) {
	return c.search(ctx, "3/search/tv", query)
}

func (c *Client) search(ctx context.Context, operationPath, query string) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")
	params.Set("language", "en-US")
	params.Set("page", "1")

	res := new(SearchResponse)
	err := c.get(ctx, operationPath, params, res)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// MovieExternalIDs returns the imdb and tvdb ids of a movie
func (c *Client) MovieExternalIDs(ctx context.Context, movieID int64) (*ExternalIDs, error) {
	return c.externalIDs(ctx, "movie", "movie_id", movieID)
}

// TVExternalIDs returns the imdb and tvdb ids of a tv show
func (c *Client) TVExternalIDs(ctx context.Context, seriesID int64) (*ExternalIDs, error) {
	return c.externalIDs(ctx, "tv", "series_id", seriesID)
}

func (c *Client) externalIDs(ctx context.Context, kind, paramName string, id int64) (*ExternalIDs, error) {
	pathParam, err := runtime.StyleParamWithLocation("simple", false, paramName, runtime.ParamLocationPath, id)
	if err != nil {
		return nil, err
	}

	res := new(ExternalIDs)
	err = c.get(ctx, fmt.Sprintf("3/%s/%s/external_ids", kind, pathParam), nil, res)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// MovieDetails returns the primary information about a movie
func (c *Client) MovieDetails(ctx context.Context, movieID int64) (*Details, error) {
	return c.details(ctx, "movie", "movie_id", movieID)
}

// TVDetails returns the primary information about a tv show
func (c *Client) TVDetails(ctx context.Context, seriesID int64) (*Details, error) {
	return c.details(ctx, "tv", "series_id", seriesID)
}

func (c *Client) details(ctx context.Context, kind, paramName string, id int64) (*Details, error) {
	pathParam, err := runtime.StyleParamWithLocation("simple", false, paramName, runtime.ParamLocationPath, id)
	if err != nil {
		return nil, err
	}

	res := new(Details)
	err = c.get(ctx, fmt.Sprintf("3/%s/%s", kind, pathParam), nil, res)
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (c *Client) get(ctx context.Context, operationPath string, params url.Values, out any) error {
	serverURL, err := url.Parse(c.Server)
	if err != nil {
		return err
	}

	queryURL, err := serverURL.Parse(operationPath)
	if err != nil {
		return err
	}
	if params != nil {
		queryURL.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, queryURL.String(), nil)
	if err != nil {
		return err
	}

	for _, r := range c.RequestEditors {
		if err := r(ctx, req); err != nil {
			return err
		}
	}

	res, err := c.Client.Do(req)
	if err != nil {
		// rate limited doers hand back the last response with the error
		if res != nil {
			res.Body.Close()
		}
		return err
	}
	defer res.Body.Close()

	return parseResponse(res, out)
}

func parseResponse(res *http.Response, out any) error {
	b, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d %s", res.StatusCode, string(b))
	}

	if len(b) == 0 {
		return fmt.Errorf("empty response body")
	}

	return json.Unmarshal(b, out)
}

// ImageURL builds poster and backdrop urls from the paths returned by the api
type ImageURL struct {
	Base string
}

// Poster returns the w500 poster url for path or nil if the path is empty
func (i ImageURL) Poster(path *string) *string {
	return i.build(posterSize, path)
}

// Backdrop returns the original size backdrop url for path or nil if the path is empty
func (i ImageURL) Backdrop(path *string) *string {
	return i.build(backdropSize, path)
}

func (i ImageURL) build(size string, path *string) *string {
	if path == nil || *path == "" {
		return nil
	}

	base := i.Base
	if base == "" {
		base = DefaultImageURI
	}

	u := strings.TrimSuffix(base, "/") + "/" + size + *path
	return &u
}
