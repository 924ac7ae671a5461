package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the public OMDb API root.
const DefaultBaseURL = "https://www.omdbapi.com/"

// Match is a resolved title with its release year (0 when unknown).
type Match struct {
	Title string
	Year  int
}

// Client provides access to the OMDb API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates an OMDb client.
func New(apiKey, baseURL string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("omdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

type titlePayload struct {
	Response string `json:"Response"`
	Title    string `json:"Title"`
	Year     string `json:"Year"`
}

type searchPayload struct {
	Response string `json:"Response"`
	Search   []struct {
		Title string `json:"Title"`
		Year  string `json:"Year"`
	} `json:"Search"`
}

// SearchTitle resolves a title, trying the exact-title endpoint first and
// falling back to search. With a year, a matching-year search entry is
// preferred over the first. A nil result means nothing matched.
func (c *Client) SearchTitle(ctx context.Context, query string, year int) (*Match, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}

	params := url.Values{}
	params.Set("t", query)
	if year > 0 {
		params.Set("y", strconv.Itoa(year))
	}
	var exact titlePayload
	if err := c.get(ctx, params, &exact); err != nil {
		return nil, fmt.Errorf("omdb title lookup: %w", err)
	}
	if exact.Response == "True" && exact.Title != "" {
		return &Match{Title: exact.Title, Year: parseYear(exact.Year)}, nil
	}

	params = url.Values{}
	params.Set("s", query)
	if year > 0 {
		params.Set("y", strconv.Itoa(year))
	}
	var results searchPayload
	if err := c.get(ctx, params, &results); err != nil {
		return nil, fmt.Errorf("omdb search: %w", err)
	}
	if len(results.Search) == 0 {
		return nil, nil
	}
	if year > 0 {
		for _, item := range results.Search {
			if item.Title != "" && parseYear(item.Year) == year {
				return &Match{Title: item.Title, Year: year}, nil
			}
		}
	}
	first := results.Search[0]
	if first.Title == "" {
		return nil, nil
	}
	return &Match{Title: first.Title, Year: parseYear(first.Year)}, nil
}

func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	endpoint, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return fmt.Errorf("parse omdb url: %w", err)
	}
	params.Set("apikey", c.apiKey)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("omdb returned %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// parseYear handles plain years plus series ranges such as "2010-2012".
func parseYear(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	for _, sep := range []string{"–", "-"} {
		if head, _, found := strings.Cut(value, sep); found {
			value = head
			break
		}
	}
	year, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return year
}
