package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_omdb_client.go github.com/kasuboski/watchlist/pkg/omdb ClientInterface

const (
	DefaultURI = "http://www.omdbapi.com"

	SourceRottenTomatoes = "Rotten Tomatoes"
)

type HttpRequestDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type ClientInterface interface {
	GetRatings(ctx context.Context, imdbID string) (Ratings, error)
}

// Rating is a single named score such as {"Source": "Rotten Tomatoes", "Value": "87%"}
type Rating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

type Ratings []Rating

// Find returns the value reported by source
func (r Ratings) Find(source string) (string, bool) {
	for _, rating := range r {
		if rating.Source == source {
			return rating.Value, true
		}
	}
	return "", false
}

type titleResponse struct {
	Response string  `json:"Response"`
	Error    string  `json:"Error"`
	Ratings  Ratings `json:"Ratings"`
}

type Client struct {
	server string
	apiKey string
	client HttpRequestDoer
}

type ClientOption func(*Client)

func WithHTTPClient(doer HttpRequestDoer) ClientOption {
	return func(c *Client) {
		c.client = doer
	}
}

// New creates an OMDb client for the given server and api key
func New(server, apiKey string, opts ...ClientOption) (*Client, error) {
	if server == "" {
		server = DefaultURI
	}

	if _, err := url.Parse(server); err != nil {
		return nil, fmt.Errorf("invalid omdb uri: %w", err)
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

// GetRatings looks up a title by imdb id and returns its ratings.
// A title OMDb does not know about has no ratings rather than being an error.
func (c *Client) GetRatings(ctx context.Context, imdbID string) (Ratings, error) {
	u, err := url.Parse(c.server)
	if err != nil {
		return nil, err
	}

	q := u.Query()
	q.Set("i", imdbID)
	q.Set("apikey", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d %s", res.StatusCode, string(b))
	}

	var title titleResponse
	err = json.Unmarshal(b, &title)
	if err != nil {
		return nil, err
	}

	if title.Response == "False" {
		return Ratings{}, nil
	}

	return title.Ratings, nil
}
