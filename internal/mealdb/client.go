package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/cuisine-explorer/internal/logger"
	"github.com/ytget/cuisine-explorer/internal/model"
)

// DefaultBaseURL is the public TheMealDB v1 endpoint with the shared test key
const DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

// envelope is the response shape of every endpoint. A null or missing
// "meals" key decodes to a nil slice.
type envelope struct {
	Meals []RawRecord `json:"meals"`
}

// Client fetches and normalizes recipes. It holds no per-request state.
type Client struct {
	baseURL    string
	httpClient *http.Client
	pick       func(n int) int // uniform index in [0, n)
}

// NewClient creates a new client. A nil httpClient uses a client without timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		pick:       rand.IntN,
	}
}

// SetPicker replaces the function that chooses among filter matches
func (c *Client) SetPicker(pick func(n int) int) {
	if pick == nil {
		pick = rand.IntN
	}
	c.pick = pick
}

// BaseURL returns the configured API root
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Fetch resolves q to a single normalized recipe. Filter queries take two
// requests: the filter itself and a lookup of one randomly picked match.
func (c *Client) Fetch(ctx context.Context, q Query) (*model.Recipe, error) {
	if q.IsFilter() {
		partials, err := c.FetchPartials(ctx, q)
		if err != nil {
			return nil, err
		}

		idx := c.pick(len(partials))
		if idx < 0 || idx >= len(partials) {
			idx = 0
		}
		chosen := partials[idx]
		logger.Debug("picked filter match",
			zap.String("query", q.String()),
			zap.Int("matches", len(partials)),
			zap.String("id", chosen.ID),
		)

		return c.Fetch(ctx, ByID(chosen.ID))
	}

	records, err := c.get(ctx, q)
	if err != nil {
		return nil, err
	}

	recipe := Normalize(records[0])
	if strings.TrimSpace(recipe.Name) == "" {
		return nil, fmt.Errorf("%w: %s returned a record without a name", ErrEmptyResult, q)
	}
	return recipe, nil
}

// FetchPartials runs a country or category filter and returns every match
// that carries an id.
func (c *Client) FetchPartials(ctx context.Context, q Query) ([]model.PartialRecipe, error) {
	if !q.IsFilter() {
		return nil, fmt.Errorf("query %s does not return partial records", q)
	}

	records, err := c.get(ctx, q)
	if err != nil {
		return nil, err
	}

	partials := make([]model.PartialRecipe, 0, len(records))
	for _, raw := range records {
		p := NormalizePartial(raw)
		if p.ID == "" {
			continue
		}
		partials = append(partials, p)
	}
	if len(partials) == 0 {
		return nil, fmt.Errorf("%w: %s matched no usable records", ErrEmptyResult, q)
	}
	return partials, nil
}

// get performs one GET and returns the non-null records of the envelope
func (c *Client) get(ctx context.Context, q Query) ([]RawRecord, error) {
	path, params, err := q.endpoint()
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	requestID := uuid.NewString()
	netErr := func(status int, cause error) error {
		logger.Warn("recipe request failed",
			zap.String("request_id", requestID),
			zap.String("query", q.String()),
			zap.Int("status", status),
			zap.Error(cause),
		)
		return &NetworkError{
			Op:         q.String(),
			URL:        endpoint,
			StatusCode: status,
			RequestID:  requestID,
			Err:        cause,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, netErr(0, fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	logger.Debug("fetching recipes",
		zap.String("request_id", requestID),
		zap.String("query", q.String()),
		zap.String("url", endpoint),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, netErr(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, netErr(resp.StatusCode, fmt.Errorf("unexpected status %s", resp.Status))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, netErr(resp.StatusCode, fmt.Errorf("failed to decode response: %w", err))
	}

	records := make([]RawRecord, 0, len(env.Meals))
	for _, raw := range env.Meals {
		if raw != nil {
			records = append(records, raw)
		}
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyResult, q)
	}

	logger.Debug("recipes received",
		zap.String("request_id", requestID),
		zap.Int("records", len(records)),
	)
	return records, nil
}
