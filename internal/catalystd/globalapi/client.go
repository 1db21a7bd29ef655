// Package globalapi is the HTTP adapter for the CityCatalyst Global API.
//
// Every lookup is a plain GET against the remote host: no retries, no
// caching, and a hard client-side timeout so an unreachable host cannot
// stall a conversation turn. Non-2xx responses are hard failures.
package globalapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/openearth/catalyst/internal/pkg/errno"
	"github.com/openearth/catalyst/pkg/utils/json"
)

const (
	// DefaultBaseURL is the public CityCatalyst Global API host.
	DefaultBaseURL = "https://ccglobal.openearth.dev"

	// DefaultTimeout bounds every outbound request.
	DefaultTimeout = 10 * time.Second

	// DefaultGWP is the Global Warming Potential standard applied when the
	// caller does not pick one.
	DefaultGWP = "ar5"
)

// Client talks to one Global API host. Safe for concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a Client for baseURL. Zero timeout means DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the configured host, mostly for startup logging.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// get performs a GET and returns the raw body. Transport failures map to
// errno.ErrUnreachableRemote, non-2xx statuses to errno.ErrRemoteRejected.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json, text/csv;q=0.9, */*;q=0.8")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", errno.ErrUnreachableRemote, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body of %s: %v", errno.ErrUnreachableRemote, path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: GET %s returned %d: %s",
			errno.ErrRemoteRejected, path, resp.StatusCode, truncate(string(body), 256))
	}

	return body, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	body, err := c.get(ctx, path, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// Health checks the service and its database connection.
func (c *Client) Health(ctx context.Context) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := c.getJSON(ctx, "/health", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CityEmissions returns the total CO2eq (100yr) emissions value for one
// source/city/year/GPC-reference combination, as the raw JSON literal found
// at totals.emissions.co2eq_100yr. A response without that path yields
// "null" rather than an error.
func (c *Client) CityEmissions(ctx context.Context, source, city, year, gpcReferenceNumber, gwp string) (string, error) {
	if gwp == "" {
		gwp = DefaultGWP
	}

	path := fmt.Sprintf("/api/v1/source/%s/city/%s/%s/%s",
		url.PathEscape(source),
		url.PathEscape(city),
		url.PathEscape(year),
		url.PathEscape(gpcReferenceNumber),
	)

	body, err := c.get(ctx, path, url.Values{"gwp": {gwp}})
	if err != nil {
		return "", err
	}

	total := gjson.GetBytes(body, "totals.emissions.co2eq_100yr")
	if !total.Exists() {
		return "null", nil
	}
	return total.Raw, nil
}

// CityArea returns the boundary area for a city locode.
func (c *Client) CityArea(ctx context.Context, locode string) (map[string]interface{}, error) {
	path := fmt.Sprintf("/api/v0/cityboundary/city/%s/area", url.PathEscape(locode))
	var out map[string]interface{}
	if err := c.getJSON(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CitiesByCountry lists the cities known for an ISO alpha-2 country code.
func (c *Client) CitiesByCountry(ctx context.Context, countryCode string) (interface{}, error) {
	path := fmt.Sprintf("/api/v0/ccra/city/%s", url.PathEscape(countryCode))
	var out interface{}
	if err := c.getJSON(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Catalogue fetches and parses the datasource catalogue. Sourced fresh on
// every call; derivations must not assume any caching.
func (c *Client) Catalogue(ctx context.Context) (*Catalogue, error) {
	var out Catalogue
	if err := c.getJSON(ctx, "/api/v0/catalogue", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CatalogueRaw returns the catalogue body untouched. With format "csv" the
// endpoint answers CSV text, which is passed through verbatim; any other
// format value is forwarded as-is and the body surfaced unparsed.
func (c *Client) CatalogueRaw(ctx context.Context, format string) (string, error) {
	query := url.Values{}
	if format != "" {
		query.Set("format", format)
	}
	body, err := c.get(ctx, "/api/v0/catalogue", query)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
