// Package restcountries loads flags from the REST Countries API.
package restcountries

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

const (
	DefaultBaseURL = "https://restcountries.com"
	allPath        = "/v3.1/all"
)

// country is the subset of the API response the quiz needs.
type country struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Flags struct {
		PNG string `json:"png"`
	} `json:"flags"`
}

// Client is a flag provider backed by the REST Countries API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Client. An empty baseURL falls back to DefaultBaseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// LoadFlags fetches every country with its common name and PNG flag.
// It makes exactly one request and never retries.
func (c *Client) LoadFlags(ctx context.Context) ([]entities.FlagRecord, error) {
	u, err := url.Parse(c.baseURL + allPath)
	if err != nil {
		return nil, &entities.FetchError{Err: fmt.Errorf("parse url: %w", err)}
	}
	u.RawQuery = url.Values{"fields": {"name,flags"}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &entities.FetchError{Err: fmt.Errorf("new request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &entities.FetchError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &entities.FetchError{StatusCode: resp.StatusCode}
	}

	var countries []country
	if err := json.NewDecoder(resp.Body).Decode(&countries); err != nil {
		return nil, &entities.FetchError{Err: fmt.Errorf("decode response: %w", err)}
	}

	records := make([]entities.FlagRecord, 0, len(countries))
	for _, ct := range countries {
		records = append(records, entities.FlagRecord{
			CountryName:  ct.Name.Common,
			FlagImageRef: ct.Flags.PNG,
		})
	}

	return records, nil
}
