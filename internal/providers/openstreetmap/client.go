package openstreetmap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cosmicmatch/internal/config"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Search/
// Sample request: https://nominatim.openstreetmap.org/search?q=London&format=jsonv2&limit=1
const (
	defaultBaseURL   = "https://nominatim.openstreetmap.org"
	defaultUserAgent = "cosmicmatch/1.0"
	requestTimeout   = 15 * time.Second
)

// ErrNoResults is returned when a query matches no place
var ErrNoResults = errors.New("no matching place")

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *slog.Logger
}

func NewClient(cfg config.GeocoderConfig, logger *slog.Logger) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = defaultBaseURL
	}
	agent := cfg.UserAgent
	if agent == "" {
		agent = defaultUserAgent
	}
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    base,
		userAgent:  agent,
		logger:     logger.With("component", "openstreetmap-client"),
	}
}

// Search returns the best match for a free-text place query
func (c *Client) Search(ctx context.Context, query string) (*PlaceAPIResponse, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "jsonv2")
	q.Set("addressdetails", "1")
	q.Set("limit", "1")

	c.logger.Debug("searching OpenStreetMap for place", "query", query)

	var results []PlaceAPIResponse
	if err := c.get(ctx, "/search", q, &results); err != nil {
		c.logger.Error("failed to search OpenStreetMap",
			"query", query,
			"error", err,
		)
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoResults, query)
	}

	c.logger.Debug("successfully searched OpenStreetMap",
		"query", query,
		"display_name", results[0].DisplayName,
	)

	return &results[0], nil
}

// Lookup reverse geocodes a coordinate pair
func (c *Client) Lookup(ctx context.Context, latitude, longitude float64) (*PlaceAPIResponse, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("format", "jsonv2")
	q.Set("addressdetails", "1")

	c.logger.Debug("fetching OpenStreetMap location data",
		"latitude", latitude,
		"longitude", longitude,
	)

	var raw json.RawMessage
	if err := c.get(ctx, "/reverse", q, &raw); err != nil {
		c.logger.Error("failed to fetch OpenStreetMap data",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, err
	}

	var notFound reverseErrorResponse
	if err := json.Unmarshal(raw, &notFound); err == nil && notFound.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrNoResults, notFound.Error)
	}

	var apiResp PlaceAPIResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("successfully fetched OpenStreetMap location data",
		"latitude", latitude,
		"longitude", longitude,
		"display_name", apiResp.DisplayName,
	)

	return &apiResp, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	// Nominatim's usage policy requires an identifying User-Agent
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
