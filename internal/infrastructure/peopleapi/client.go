// Package peopleapi implements the HTTP client for the external
// people-search service: filter-based search and detailed profile lookup
// by ID, with extraction of the upstream document shapes into domain
// profiles.
package peopleapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/recruitu/backend/internal/core/domain/profile"
	"github.com/recruitu/backend/internal/core/domain/search"
	"github.com/recruitu/backend/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// Config holds people API client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the people-search API.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *logrus.Logger
}

var _ ports.PeopleClient = (*Client)(nil)

// NewClient creates a people API client.
func NewClient(cfg *Config, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

// searchResponse is the raw upstream search payload: each result wraps the
// profile in a "document" object.
type searchResponse struct {
	Results []struct {
		Document profile.SearchResult `json:"document"`
	} `json:"results"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Count int `json:"count"`
}

// peopleResponse is the raw upstream people payload: profiles keyed by ID,
// with the usable fields nested under "linkedin".
type peopleResponse struct {
	Results map[string]struct {
		LinkedIn profile.Detailed `json:"linkedin"`
	} `json:"results"`
}

// SearchFormatted implements ports.PeopleClient. Upstream failures degrade
// to an empty envelope with Success=false so search stays best-effort.
func (c *Client) SearchFormatted(ctx context.Context, filters search.Filters) *search.ResultEnvelope {
	raw, err := c.search(ctx, filters)
	if err != nil {
		if c.logger != nil {
			c.logger.WithError(err).Error("people search failed")
		}
		return &search.ResultEnvelope{
			Results: []profile.SearchResult{},
			Page:    filters.Page,
			Filters: filters,
			Success: false,
			Error:   err.Error(),
		}
	}

	results := make([]profile.SearchResult, 0, len(raw.Results))
	for _, item := range raw.Results {
		if item.Document.IsEmpty() {
			continue
		}
		results = append(results, item.Document)
	}

	envelope := &search.ResultEnvelope{
		Results: results,
		Total:   raw.Total,
		Page:    raw.Page,
		Count:   raw.Count,
		Filters: filters,
		Success: true,
	}
	if envelope.Total == 0 {
		envelope.Total = len(results)
	}
	if envelope.Page == 0 {
		envelope.Page = filters.Page
	}
	if envelope.Count == 0 {
		envelope.Count = len(results)
	}
	return envelope
}

func (c *Client) search(ctx context.Context, filters search.Filters) (*searchResponse, error) {
	endpoint := c.baseURL + "/search?" + queryValues(filters).Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned status %d", resp.StatusCode)
	}

	var raw searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return &raw, nil
}

// GetUser implements ports.PeopleClient. A user absent from the response
// is (nil, nil), not an error.
func (c *Client) GetUser(ctx context.Context, id string) (*profile.Detailed, error) {
	endpoint := c.baseURL + "/people?" + url.Values{"ids": {id}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build people request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("people request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("people API returned status %d", resp.StatusCode)
	}

	var raw peopleResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode people response: %w", err)
	}

	entry, ok := raw.Results[id]
	if !ok {
		if c.logger != nil {
			c.logger.WithField("user_id", id).Info("user not found in people API response")
		}
		return nil, nil
	}
	user := entry.LinkedIn
	if user.ID == "" {
		user.ID = id
	}
	return &user, nil
}

// Ping checks reachability of the people API, used by health checks. Any
// HTTP response counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?count=1", nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func queryValues(f search.Filters) url.Values {
	v := url.Values{}
	setIfPresent(v, "name", f.Name)
	setIfPresent(v, "current_company", f.CurrentCompany)
	setIfPresent(v, "previous_company", f.PreviousCompany)
	setIfPresent(v, "sector", f.Sector)
	setIfPresent(v, "title", f.Title)
	setIfPresent(v, "role", f.Role)
	setIfPresent(v, "school", f.School)
	setIfPresent(v, "city", f.City)
	if f.UndergraduateYear != 0 {
		v.Set("undergraduate_year", strconv.Itoa(f.UndergraduateYear))
	}
	v.Set("page", strconv.Itoa(f.Page))
	v.Set("count", strconv.Itoa(f.Count))
	return v
}

func setIfPresent(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}
