package entitlement

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// HTTPClient is the REST client for the entitlement service.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPClient constructs a client for the entitlement service at baseURL.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type subscriberResponse struct {
	Entitlements map[string]struct {
		Active bool `json:"active"`
	} `json:"entitlements"`
}

func (c *HTTPClient) Snapshot(ctx context.Context, alias string) (*Snapshot, error) {
	endpoint := c.baseURL + "/v1/subscribers/" + url.PathEscape(alias)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build snapshot request: %w", err)
	}
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch entitlement snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("entitlement service returned %d", resp.StatusCode)
	}

	var body subscriberResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode entitlement snapshot: %w", err)
	}

	snap := &Snapshot{
		Alias:     alias,
		Active:    make(map[string]bool, len(body.Entitlements)),
		FetchedAt: time.Now(),
	}
	for name, ent := range body.Entitlements {
		snap.Active[name] = ent.Active
	}
	return snap, nil
}

func (c *HTTPClient) LogOut(ctx context.Context, alias string) error {
	endpoint := c.baseURL + "/v1/subscribers/" + url.PathEscape(alias) + "/logout"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build logout request: %w", err)
	}
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("entitlement logout: %w", err)
	}
	defer resp.Body.Close()

	// 404 means the alias was never registered or is already dissociated;
	// logout is declarative.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent &&
		resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("entitlement service returned %d", resp.StatusCode)
	}
	return nil
}

func (c *HTTPClient) authorize(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}
