package ombi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/oapi-codegen/runtime"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_ombi_client.go github.com/kasuboski/watchlist/pkg/ombi ClientInterface

type HttpRequestDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientInterface reports and actions media requests
type ClientInterface interface {
	MovieAvailability(ctx context.Context, movieID int64) (*Availability, error)
	RequestMovie(ctx context.Context, movieID int64) (json.RawMessage, error)
}

// Availability is the request state of a movie on the media server
type Availability struct {
	Available bool `json:"available"`
	Requested bool `json:"requested"`
}

type movieRequest struct {
	TheMovieDbID        int64  `json:"theMovieDbId"`
	Is4kRequest         bool   `json:"is4kRequest"`
	RequestOnBehalf     string `json:"requestOnBehalf"`
	RootFolderOverride  int    `json:"rootFolderOverride"`
	QualityPathOverride int    `json:"qualityPathOverride"`
}

type Client struct {
	server          string
	apiKey          string
	requestOnBehalf string
	client          HttpRequestDoer
}

type ClientOption func(*Client)

func WithHTTPClient(doer HttpRequestDoer) ClientOption {
	return func(c *Client) {
		c.client = doer
	}
}

// WithRequestOnBehalf sets the Ombi user new requests are made for
func WithRequestOnBehalf(user string) ClientOption {
	return func(c *Client) {
		c.requestOnBehalf = user
	}
}

func New(server, apiKey string, opts ...ClientOption) (*Client, error) {
	if server == "" {
		return nil, errors.New("ombi uri is required")
	}

	if _, err := url.Parse(server); err != nil {
		return nil, fmt.Errorf("invalid ombi uri: %w", err)
	}

	if !strings.HasSuffix(server, "/") {
		server += "/"
	}

	c := &Client{
		server: server,
		apiKey: apiKey,
		client: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// MovieAvailability looks up whether a movie is available or already requested
func (c *Client) MovieAvailability(ctx context.Context, movieID int64) (*Availability, error) {
	pathParam, err := runtime.StyleParamWithLocation("simple", false, "movieId", runtime.ParamLocationPath, movieID)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodGet, "api/v2/Search/movie/"+pathParam, nil)
	if err != nil {
		return nil, err
	}

	b, err := c.do(req)
	if err != nil {
		return nil, err
	}

	res := new(Availability)
	if err := json.Unmarshal(b, res); err != nil {
		return nil, fmt.Errorf("decoding availability: %w", err)
	}

	return res, nil
}

// RequestMovie submits a request for the movie and returns Ombi's response as is
func (c *Client) RequestMovie(ctx context.Context, movieID int64) (json.RawMessage, error) {
	body, err := json.Marshal(movieRequest{
		TheMovieDbID:    movieID,
		RequestOnBehalf: c.requestOnBehalf,
	})
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "api/v1/Request/movie", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	b, err := c.do(req)
	if err != nil {
		return nil, err
	}

	if len(b) == 0 || !json.Valid(b) {
		return json.RawMessage("null"), nil
	}

	return json.RawMessage(b), nil
}

func (c *Client) newRequest(ctx context.Context, method, operationPath string, body io.Reader) (*http.Request, error) {
	serverURL, err := url.Parse(c.server)
	if err != nil {
		return nil, err
	}

	u, err := serverURL.Parse(operationPath)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("ApiKey", c.apiKey)
	req.Header.Set("Accept", "application/json")

	return req, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("ombi %s %s: unexpected status: %d %s", req.Method, req.URL.Path, res.StatusCode, string(b))
	}

	return b, nil
}
