package homeassistant

import (
	"context"
	"encoding/json"
	"fmt"
	"ha-sync/internal/domain/model"
	"net/http"
	"strings"
	"time"
)

// requestTimeout bounds each state fetch; there are no retries.
const requestTimeout = 10 * time.Second

type Client struct {
	url        string
	token      string
	httpClient *http.Client
}

func NewClient(url, token string) *Client {
	return &Client{
		url:        strings.TrimRight(url, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

func (c *Client) GetState(ctx context.Context, entityID string) (*model.EntityState, error) {
	url := c.url + "/api/states/" + entityID

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HA API error: %d", resp.StatusCode)
	}

	// UseNumber keeps latitude/longitude as their literal wire text instead
	// of float64, so "40.0" stays "40.0" all the way to the recorder.
	var state model.EntityState
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&state); err != nil {
		return nil, err
	}

	return &state, nil
}
