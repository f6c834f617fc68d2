package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/uuidfeed/internal/client/models"
	"github.com/dmitrijs2005/uuidfeed/internal/common"
)

// HTTPClient talks to the uuidfeed HTTP API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns a client for the API at baseURL whose calls time out
// after timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type errorBody struct {
	Error string `json:"error"`
	UUID  string `json:"uuid"`
}

// Generate requests one UUID. A collision yields a result with Collision
// set and a nil error.
func (c *HTTPClient) Generate(ctx context.Context, clientID string, isGift bool) (*models.GenerateResult, error) {
	body := map[string]any{"clientId": clientID, "isGift": isGift}

	var res models.GenerateResult
	status, eb, err := c.do(ctx, http.MethodPost, "/generate", body, &res)
	if err != nil {
		return nil, err
	}
	if status == http.StatusConflict {
		return &models.GenerateResult{UUID: eb.UUID, Collision: true}, nil
	}
	return &res, nil
}

// BulkGenerate requests count UUIDs; a collision rejects the whole batch
// with common.ErrCollision.
func (c *HTTPClient) BulkGenerate(ctx context.Context, clientID string, count int) ([]string, error) {
	body := map[string]any{"clientId": clientID, "count": count}

	var res struct {
		UUIDs []string `json:"uuids"`
	}
	status, _, err := c.do(ctx, http.MethodPost, "/bulk-generate", body, &res)
	if err != nil {
		return nil, err
	}
	if status == http.StatusConflict {
		return nil, common.ErrCollision
	}
	return res.UUIDs, nil
}

func (c *HTTPClient) Stats(ctx context.Context) (*models.Stats, error) {
	var st models.Stats
	if _, _, err := c.do(ctx, http.MethodGet, "/stats", nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// History returns recent records newest first; limit <= 0 uses the server
// default.
func (c *HTTPClient) History(ctx context.Context, limit int) ([]models.Record, error) {
	path := "/history"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var items []models.Record
	if _, _, err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FeedConfig fetches the feed address and a token for clientID.
func (c *HTTPClient) FeedConfig(ctx context.Context, clientID string) (*models.FeedConfig, error) {
	var fc models.FeedConfig
	if _, _, err := c.do(ctx, http.MethodGet, "/config?clientId="+url.QueryEscape(clientID), nil, &fc); err != nil {
		return nil, err
	}
	return &fc, nil
}

// do sends the request and decodes a 2xx body into out. A 409 is returned
// as a status with its decoded error body; other non-2xx statuses become
// errors.
func (c *HTTPClient) do(ctx context.Context, method, path string, in any, out any) (int, *errorBody, error) {
	var reader io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return 0, nil, fmt.Errorf("error encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("error building request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out != nil {
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return resp.StatusCode, nil, fmt.Errorf("error decoding response: %w", err)
			}
		}
		return resp.StatusCode, nil, nil

	case resp.StatusCode == http.StatusConflict:
		eb := &errorBody{}
		_ = json.NewDecoder(resp.Body).Decode(eb)
		return resp.StatusCode, eb, nil

	case resp.StatusCode >= 500:
		return resp.StatusCode, nil, fmt.Errorf("%w: %s", ErrUnavailable, readError(resp.Body, resp.Status))

	default:
		return resp.StatusCode, nil, fmt.Errorf("%w: %s", common.ErrInvalidRequest, readError(resp.Body, resp.Status))
	}
}

func readError(r io.Reader, fallback string) string {
	eb := &errorBody{}
	if err := json.NewDecoder(r).Decode(eb); err != nil || eb.Error == "" {
		return fallback
	}
	return eb.Error
}
