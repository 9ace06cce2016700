package category

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katiyar-electronics/bill-engine/constants"
	"github.com/katiyar-electronics/bill-engine/internal/common"
)

// Client resolves a model number to an asset category via a web search
// API: the ranked result snippets are scanned for the first keyword from
// the fixed category vocabulary.
type Client struct {
	cfg    common.LookupConfig
	client *http.Client
	logger *slog.Logger
}

func NewClient(cfg common.LookupConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Enabled reports whether the client has credentials to query with. A
// disabled client resolves every query to the empty category.
func (c *Client) Enabled() bool {
	return c.cfg.APIKey != "" && c.cfg.EngineID != ""
}

type searchResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
	} `json:"items"`
}

// Detect queries the search API once for the model number and matches the
// result text against the category vocabulary. No retry.
func (c *Client) Detect(ctx context.Context, modelNumber string) (constants.Category, error) {
	if modelNumber == "" || !c.Enabled() {
		return "", nil
	}

	reqID := uuid.New().String()
	start := time.Now()

	q := url.Values{}
	q.Set("key", c.cfg.APIKey)
	q.Set("cx", c.cfg.EngineID)
	q.Set("q", modelNumber)
	endpoint := c.cfg.BaseURL + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("lookup.http.build_request_error", "req_id", reqID, "error", err)
		return "", fmt.Errorf("build request: %w", err)
	}

	c.logger.Info("lookup.http.request", "req_id", reqID, "model", modelNumber)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("lookup.http.send_error", "req_id", reqID, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return "", err
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Warn("lookup.http.response_body_close_error", "req_id", reqID, "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)

	c.logger.Info("lookup.http.response",
		"req_id", reqID,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("non-2xx status: %d", resp.StatusCode)
	}

	var sr searchResponse
	if err := json.Unmarshal(raw, &sr); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	var sb strings.Builder
	for _, item := range sr.Items {
		sb.WriteString(item.Title)
		sb.WriteString(" ")
		sb.WriteString(item.Snippet)
		sb.WriteString(" ")
	}

	cat := constants.MatchCategory(sb.String())
	c.logger.Info("lookup.resolved", "req_id", reqID, "model", modelNumber, "category", string(cat))
	return cat, nil
}
